package telegram

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mklimuk/scratchpad-pilot/pkg/editor"
	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// Bot wraps the Telegram bot API and dependencies. Captures run through a
// short-lived editor session so they take the same save-then-snapshot path
// as an interactive editing session.
type Bot struct {
	API     *tgbotapi.BotAPI
	Notes   editor.NoteStore
	Archive editor.Snapshotter
	stopCh  chan struct{}
}

// NewBot creates a new Telegram bot
func NewBot(token string, notes editor.NoteStore, archive editor.Snapshotter) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("error creating Telegram bot: %w", err)
	}

	return &Bot{
		API:     api,
		Notes:   notes,
		Archive: archive,
		stopCh:  make(chan struct{}),
	}, nil
}

// Start begins polling for updates in a goroutine
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.API.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case <-b.stopCh:
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				if update.Message != nil {
					b.handleMessage(update.Message)
				}
			}
		}
	}()

	return nil
}

// Stop stops polling for updates
func (b *Bot) Stop() {
	close(b.stopCh)
	b.API.StopReceivingUpdates()
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	command, content := ParseCommand(msg.Text)
	switch command {
	case "/note":
		b.handleCapture(msg, content)
	case "/status":
		b.handleStatus(msg)
	}
}

// capture persists one message through an editor session: one flush, then
// close. The session creates the note and fires the version snapshot.
func (b *Bot) capture(content string) (*note.Note, error) {
	sess := editor.NewSession(b.Notes, b.Archive)
	if err := sess.FlushNow(TruncateTitle(content), content); err != nil {
		return nil, err
	}
	n := sess.ActiveNote()
	if err := sess.Close(); err != nil {
		return nil, err
	}
	return n, nil
}

func (b *Bot) handleCapture(msg *tgbotapi.Message, content string) {
	if _, err := b.capture(content); err != nil {
		reply := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("Error creating note: %v", err))
		if _, err := b.API.Send(reply); err != nil {
			log.Printf("Failed to send Telegram error reply: %v", err)
		}
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Saved to scratchpad")
	if _, err := b.API.Send(reply); err != nil {
		log.Printf("Failed to send Telegram reply: %v", err)
	}
}

func (b *Bot) handleStatus(msg *tgbotapi.Message) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, "Scratchpad Pilot is Online. Ready to capture.")
	if _, err := b.API.Send(reply); err != nil {
		log.Printf("Failed to send Telegram status reply: %v", err)
	}
}

// ParseCommand extracts the command and content from a message text.
// Returns the command (e.g. "/note", "/status") and the remaining content.
func ParseCommand(text string) (command, content string) {
	if strings.HasPrefix(text, "/note ") {
		return "/note", strings.TrimPrefix(text, "/note ")
	}
	if text == "/status" {
		return "/status", ""
	}
	return "", text
}

// TruncateTitle returns a title derived from content, truncated to 20 chars with "..." if needed.
func TruncateTitle(content string) string {
	if len(content) > 20 {
		return content[:20] + "..."
	}
	return content
}
