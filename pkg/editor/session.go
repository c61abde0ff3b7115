package editor

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// DefaultQuietPeriod is the delay after the last edit before an autosave is
// issued.
const DefaultQuietPeriod = 2 * time.Second

// NoteStore is the persistence surface a session saves through.
// *db.Repository satisfies it.
type NoteStore interface {
	CreateNote(title, content string) (*note.Note, error)
	UpdateNote(id, title, content string) (*note.Note, error)
}

// Snapshotter records a best-effort version after each successful save.
// It must absorb its own failures; the session never checks.
type Snapshotter interface {
	Snapshot(n *note.Note, format note.Format, isProcessed bool, meta *note.ProcessingMetadata)
}

// Session coordinates autosave for one open document. Edits are debounced:
// within the quiet window only the most recent edit is ever persisted.
// A save arriving while another is in flight is dropped, not queued — the
// session is deliberately lossy with last-writer-wins semantics, and callers
// must not "fix" that into a queue.
//
// Sessions are independent; no state crosses session boundaries.
type Session struct {
	notes   NoteStore
	archive Snapshotter
	quiet   time.Duration

	mu             sync.Mutex
	active         *note.Note
	format         note.Format
	pendingTitle   string
	pendingContent string
	dirty          bool
	timer          *time.Timer
	isSaving       bool
	lastSavedAt    time.Time
	lastErr        error
	closed         bool
}

// Option configures a Session.
type Option func(*Session)

// WithQuietPeriod overrides the debounce window.
func WithQuietPeriod(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.quiet = d
		}
	}
}

// WithActiveNote starts the session on an existing note.
func WithActiveNote(n *note.Note) Option {
	return func(s *Session) { s.active = n }
}

// NewSession creates a session over the given store and archive. archive may
// be nil to disable version snapshots.
func NewSession(notes NoteStore, archive Snapshotter, opts ...Option) *Session {
	s := &Session{
		notes:   notes,
		archive: archive,
		quiet:   DefaultQuietPeriod,
		format:  note.FormatDefault,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnEdit records the latest title/content and re-arms the debounce timer.
// Intermediate edits within the quiet window are coalesced.
func (s *Session) OnEdit(title, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.pendingTitle = title
	s.pendingContent = content
	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiet, s.autosave)
}

// SetFormat records the format tagged onto subsequent version snapshots.
// It never touches note content.
func (s *Session) SetFormat(f note.Format) {
	if !f.Valid() {
		return
	}
	s.mu.Lock()
	s.format = f
	s.mu.Unlock()
}

// FlushNow cancels any pending debounce timer and saves the given state
// immediately. Used on tab-hide and teardown, where waiting out the quiet
// window would risk losing the edit. Returns the save error for callers that
// care; background paths ignore it.
func (s *Session) FlushNow(title, content string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		// Cancel the pending autosave so it cannot race in behind this
		// flush and duplicate the save.
		s.timer.Stop()
		s.timer = nil
	}
	s.pendingTitle = title
	s.pendingContent = content
	s.dirty = true
	s.mu.Unlock()

	return s.save()
}

// SwitchActiveNote flushes unsaved edits of the current document, waits for
// that save to finish, and only then moves the active pointer to next (nil
// starts a fresh unsaved document). Edits are never silently dropped on
// switch. Blank current content skips the flush.
func (s *Session) SwitchActiveNote(next *note.Note, currentTitle, currentContent string) error {
	var err error
	if strings.TrimSpace(currentContent) != "" {
		err = s.FlushNow(currentTitle, currentContent)
	}

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.active = next
	s.pendingTitle = ""
	s.pendingContent = ""
	s.dirty = false
	s.mu.Unlock()

	return err
}

// Close flushes any unsaved edits and stops the session. Further operations
// are no-ops.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	needsFlush := s.dirty
	title, content := s.pendingTitle, s.pendingContent
	s.mu.Unlock()

	var err error
	if needsFlush {
		err = s.FlushNow(title, content)
	}

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return err
}

// ActiveNote returns the note currently being edited, nil for a fresh
// document.
func (s *Session) ActiveNote() *note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// LastSavedAt returns the time of the last successful save.
func (s *Session) LastSavedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSavedAt
}

// LastError returns the error of the most recent failed save, cleared by the
// next successful one.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// IsSaving reports whether a save is currently in flight.
func (s *Session) IsSaving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSaving
}

// autosave runs when the debounce timer fires. Errors are recorded on the
// session, never raised: a failed background save must not take down the
// editing session.
func (s *Session) autosave() {
	if err := s.save(); err != nil {
		log.Printf("editor: autosave failed: %v", err)
	}
}

// save persists the pending state. If no note is active and content is blank
// it performs no repository calls at all. If no note is active it creates one
// and adopts it; otherwise it updates in place. Every successful save fires a
// best-effort version snapshot.
func (s *Session) save() error {
	s.mu.Lock()
	if s.isSaving {
		// Single-flight: a save racing in behind an in-flight one is
		// dropped. The next edit re-arms the timer with fresher content.
		s.mu.Unlock()
		return nil
	}
	title := s.pendingTitle
	content := s.pendingContent
	active := s.active
	format := s.format
	if active == nil && strings.TrimSpace(content) == "" {
		s.dirty = false
		s.mu.Unlock()
		return nil
	}
	s.isSaving = true
	s.mu.Unlock()

	var saved *note.Note
	var err error
	if active == nil {
		saved, err = s.notes.CreateNote(title, content)
	} else {
		saved, err = s.notes.UpdateNote(active.ID, title, content)
	}

	s.mu.Lock()
	s.isSaving = false
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	s.lastErr = nil
	s.lastSavedAt = time.Now()
	s.dirty = false
	if active == nil {
		s.active = saved
	}
	s.mu.Unlock()

	if s.archive != nil {
		s.archive.Snapshot(saved, format, false, nil)
	}
	return nil
}
