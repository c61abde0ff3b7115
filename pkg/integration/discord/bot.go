package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mklimuk/scratchpad-pilot/pkg/editor"
	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// Bot wraps the Discord session and dependencies. Captures run through a
// short-lived editor session so they take the same save-then-snapshot path
// as an interactive editing session.
type Bot struct {
	Session *discordgo.Session
	Notes   editor.NoteStore
	Archive editor.Snapshotter
}

// NewBot creates a new Discord bot
func NewBot(token string, notes editor.NoteStore, archive editor.Snapshotter) (*Bot, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	bot := &Bot{
		Session: dg,
		Notes:   notes,
		Archive: archive,
	}

	dg.AddHandler(bot.messageCreate)

	return bot, nil
}

// Start opens the websocket connection
func (b *Bot) Start() error {
	return b.Session.Open()
}

// Stop closes the websocket connection
func (b *Bot) Stop() error {
	return b.Session.Close()
}

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from self
	if m.Author.ID == s.State.User.ID {
		return
	}

	if strings.HasPrefix(m.Content, "!note ") {
		content := strings.TrimPrefix(m.Content, "!note ")
		b.handleCapture(s, m, content)
	} else if m.Content == "!status" {
		b.handleStatus(s, m)
	}
}

// capture persists one message through an editor session: one flush, then
// close. The session creates the note and fires the version snapshot.
func (b *Bot) capture(content string) (*note.Note, error) {
	title := content
	if len(content) > 20 {
		title = content[:20] + "..."
	}

	sess := editor.NewSession(b.Notes, b.Archive)
	if err := sess.FlushNow(title, content); err != nil {
		return nil, err
	}
	n := sess.ActiveNote()
	if err := sess.Close(); err != nil {
		return nil, err
	}
	return n, nil
}

func (b *Bot) handleCapture(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	if _, err := b.capture(content); err != nil {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Error creating note: %v", err))
		return
	}

	s.ChannelMessageSend(m.ChannelID, "✅ Saved to scratchpad")
}

func (b *Bot) handleStatus(s *discordgo.Session, m *discordgo.MessageCreate) {
	s.ChannelMessageSend(m.ChannelID, "🤖 Scratchpad Pilot is Online. Ready to capture.")
}
