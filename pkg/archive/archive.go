package archive

import (
	"fmt"
	"log"

	"github.com/mklimuk/scratchpad-pilot/pkg/identity"
	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// Store is the persistence surface the archive needs for version rows.
// *db.Repository satisfies it.
type Store interface {
	InsertVersion(noteID, userID, title, content string, format note.Format, isProcessed bool, meta *note.ProcessingMetadata) (*note.Version, error)
	ListVersions(noteID, userID string, limit int) ([]note.Version, error)
	GetVersion(id, userID string) (*note.Version, error)
	DeleteVersion(id, userID string) error
	DeleteVersionsForNote(noteID, userID string) error
}

// NoteUpdater writes restored content back onto the live note.
type NoteUpdater interface {
	UpdateNote(id, title, content string) (*note.Note, error)
}

// Archive is the append-only log of note snapshots. It only reads note
// identity and never owns Note lifetime.
type Archive struct {
	store Store
	notes NoteUpdater
	users identity.Provider
}

// New creates a version archive.
func New(store Store, notes NoteUpdater, users identity.Provider) *Archive {
	return &Archive{store: store, notes: notes, users: users}
}

// CreateVersion appends a snapshot for a note on behalf of an explicit user.
func (a *Archive) CreateVersion(noteID, userID, title, content string, format note.Format, isProcessed bool, meta *note.ProcessingMetadata) (*note.Version, error) {
	return a.store.InsertVersion(noteID, userID, title, content, format, isProcessed, meta)
}

// Snapshot is the best-effort variant used behind autosave. It resolves the
// user from the identity provider and absorbs every failure: versioning is
// subordinate to the note save that triggered it and must never surface as a
// save error. A missing user aborts silently.
func (a *Archive) Snapshot(n *note.Note, format note.Format, isProcessed bool, meta *note.ProcessingMetadata) {
	if n == nil {
		return
	}
	userID, ok := a.users.CurrentUser()
	if !ok {
		log.Printf("archive: no current user, skipping snapshot for note %s", n.ID)
		return
	}
	if _, err := a.store.InsertVersion(n.ID, userID, n.Title, n.Content, format, isProcessed, meta); err != nil {
		log.Printf("archive: failed to snapshot note %s: %v", n.ID, err)
	}
}

// ListVersions returns versions for a note, newest first. limit <= 0 returns
// all of them.
func (a *Archive) ListVersions(noteID, userID string, limit int) ([]note.Version, error) {
	return a.store.ListVersions(noteID, userID, limit)
}

// DeleteVersion prunes a single version.
func (a *Archive) DeleteVersion(id, userID string) error {
	return a.store.DeleteVersion(id, userID)
}

// DeleteAllForNote prunes every version of a note.
func (a *Archive) DeleteAllForNote(noteID, userID string) error {
	return a.store.DeleteVersionsForNote(noteID, userID)
}

// Restore writes a version's title/content back onto the live note, then
// appends a new version pointing at the restored one. The archive never
// rewinds: restoring always grows the log by one.
func (a *Archive) Restore(versionID, userID string) (*note.Note, error) {
	v, err := a.store.GetVersion(versionID, userID)
	if err != nil {
		return nil, err
	}

	n, err := a.notes.UpdateNote(v.NoteID, v.Title, v.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to restore note %s: %w", v.NoteID, err)
	}

	meta := &note.ProcessingMetadata{
		RestoredFrom:        v.ID,
		RestoredFromVersion: v.VersionNumber,
	}
	if _, err := a.store.InsertVersion(n.ID, userID, n.Title, n.Content, v.Format, v.IsProcessed, meta); err != nil {
		// The live note is already restored; the missing marker version is
		// logged and absorbed like any other snapshot failure.
		log.Printf("archive: failed to record restore marker for note %s: %v", n.ID, err)
	}

	return n, nil
}
