package db

import (
	"errors"
	"testing"
	"time"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	database, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return NewRepository(database)
}

func TestNoteCRUD(t *testing.T) {
	repo := setupTestRepo(t)

	// Create with explicit title
	n, err := repo.CreateNote("Groceries", "- milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.ID == "" {
		t.Fatal("expected server-assigned id")
	}
	if n.CreatedAt.IsZero() || n.UpdatedAt.IsZero() {
		t.Fatal("expected server-assigned timestamps")
	}

	// Blank title defaults
	untitled, err := repo.CreateNote("", "hello")
	if err != nil {
		t.Fatalf("create untitled: %v", err)
	}
	if untitled.Title != note.DefaultTitle {
		t.Errorf("title = %q, want %q", untitled.Title, note.DefaultTitle)
	}

	// Update
	time.Sleep(5 * time.Millisecond)
	updated, err := repo.UpdateNote(n.ID, "Groceries", "- milk\n- eggs")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "- milk\n- eggs" {
		t.Errorf("content = %q", updated.Content)
	}
	if !updated.UpdatedAt.After(n.UpdatedAt) {
		t.Errorf("expected updated_at to advance: %v -> %v", n.UpdatedAt, updated.UpdatedAt)
	}

	// List ordered by updated_at desc: n was updated last
	notes, err := repo.ListNotes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != n.ID {
		t.Errorf("expected most recently updated note first, got %s", notes[0].ID)
	}

	// Delete
	if err := repo.DeleteNote(untitled.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteNote(untitled.ID); !errors.Is(err, note.ErrNoteNotFound) {
		t.Errorf("delete missing = %v, want ErrNoteNotFound", err)
	}

	// Update missing
	if _, err := repo.UpdateNote("nonexistent", "t", "c"); !errors.Is(err, note.ErrNoteNotFound) {
		t.Errorf("update missing = %v, want ErrNoteNotFound", err)
	}
}

func TestVersionNumbering(t *testing.T) {
	repo := setupTestRepo(t)

	n, err := repo.CreateNote("Doc", "v1")
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	// Serialized saves get 1..M with no gaps or repeats
	for i := 1; i <= 5; i++ {
		v, err := repo.InsertVersion(n.ID, "user-1", "Doc", "content", note.FormatDefault, false, nil)
		if err != nil {
			t.Fatalf("insert version %d: %v", i, err)
		}
		if v.VersionNumber != i {
			t.Errorf("version number = %d, want %d", v.VersionNumber, i)
		}
	}

	// Numbering is per note
	other, err := repo.CreateNote("Other", "x")
	if err != nil {
		t.Fatalf("create other: %v", err)
	}
	v, err := repo.InsertVersion(other.ID, "user-1", "Other", "x", note.FormatDefault, false, nil)
	if err != nil {
		t.Fatalf("insert version for other: %v", err)
	}
	if v.VersionNumber != 1 {
		t.Errorf("other note starts at %d, want 1", v.VersionNumber)
	}

	// Deleting a non-latest version leaves no repeats
	versions, err := repo.ListVersions(n.ID, "user-1", 0)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 5 {
		t.Fatalf("expected 5 versions, got %d", len(versions))
	}
	if err := repo.DeleteVersion(versions[3].ID, "user-1"); err != nil {
		t.Fatalf("delete version: %v", err)
	}
	next, err := repo.InsertVersion(n.ID, "user-1", "Doc", "content", note.FormatDefault, false, nil)
	if err != nil {
		t.Fatalf("insert after delete: %v", err)
	}
	if next.VersionNumber != 6 {
		t.Errorf("version number after delete = %d, want 6", next.VersionNumber)
	}

	// Numbering is shared across users of the same note; only listing is
	// scoped per user
	theirs, err := repo.InsertVersion(n.ID, "user-2", "Doc", "content", note.FormatDefault, false, nil)
	if err != nil {
		t.Fatalf("insert as second user: %v", err)
	}
	if theirs.VersionNumber != 7 {
		t.Errorf("second user's version number = %d, want 7", theirs.VersionNumber)
	}
	onlyTheirs, err := repo.ListVersions(n.ID, "user-2", 0)
	if err != nil {
		t.Fatalf("list for second user: %v", err)
	}
	if len(onlyTheirs) != 1 {
		t.Errorf("second user sees %d versions, want 1", len(onlyTheirs))
	}
}

func TestVersionListAndMetadata(t *testing.T) {
	repo := setupTestRepo(t)

	n, _ := repo.CreateNote("Doc", "body")

	meta := &note.ProcessingMetadata{Model: "gpt-4o-mini", PromptType: "diary", Provider: "openai", Temperature: 0.7}
	if _, err := repo.InsertVersion(n.ID, "user-1", "Doc", "body", note.FormatDiary, true, meta); err != nil {
		t.Fatalf("insert: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := repo.InsertVersion(n.ID, "user-1", "Doc", "body2", note.FormatDiary, false, nil); err != nil {
		t.Fatalf("insert: %v", err)
	}

	versions, err := repo.ListVersions(n.ID, "user-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(versions))
	}
	// Newest first
	if versions[0].VersionNumber != 2 {
		t.Errorf("first version number = %d, want 2", versions[0].VersionNumber)
	}
	if versions[1].Metadata == nil || versions[1].Metadata.Model != "gpt-4o-mini" {
		t.Errorf("metadata not round-tripped: %+v", versions[1].Metadata)
	}
	if !versions[1].IsProcessed {
		t.Error("expected is_processed to persist")
	}
	if versions[1].Format != note.FormatDiary {
		t.Errorf("format = %q", versions[1].Format)
	}

	// Limit
	limited, err := repo.ListVersions(n.ID, "user-1", 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 || limited[0].VersionNumber != 2 {
		t.Errorf("limited list = %+v", limited)
	}

	// Scoped by user
	foreign, err := repo.ListVersions(n.ID, "someone-else", 0)
	if err != nil {
		t.Fatalf("list foreign: %v", err)
	}
	if len(foreign) != 0 {
		t.Errorf("expected no versions for other user, got %d", len(foreign))
	}

	// Delete all
	if err := repo.DeleteVersionsForNote(n.ID, "user-1"); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	remaining, _ := repo.ListVersions(n.ID, "user-1", 0)
	if len(remaining) != 0 {
		t.Errorf("expected empty archive, got %d", len(remaining))
	}
}

func TestVersionsSurviveNoteDeletion(t *testing.T) {
	repo := setupTestRepo(t)

	n, _ := repo.CreateNote("Doomed", "body")
	if _, err := repo.InsertVersion(n.ID, "user-1", "Doomed", "body", note.FormatDefault, false, nil); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.DeleteNote(n.ID); err != nil {
		t.Fatalf("delete note: %v", err)
	}

	// No cascade: the version outlives the note
	versions, err := repo.ListVersions(n.ID, "user-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(versions) != 1 {
		t.Errorf("expected orphaned version to survive, got %d", len(versions))
	}
}

func TestPromptCRUD(t *testing.T) {
	repo := setupTestRepo(t)

	p, err := repo.CreatePrompt("user-1", "My Diary Prompt", "diary", "Rewrite: {content}")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.IsDefault {
		t.Error("user prompt must not be default")
	}
	if !p.IsActive {
		t.Error("new prompt should be active")
	}

	got, err := repo.GetPrompt(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PromptText != "Rewrite: {content}" {
		t.Errorf("prompt text = %q", got.PromptText)
	}

	// Deactivated prompts disappear from the listing
	if _, err := repo.UpdatePrompt(p.ID, "My Diary Prompt", "Rewrite: {content}", false); err != nil {
		t.Fatalf("update: %v", err)
	}
	prompts, err := repo.ListPrompts("user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(prompts) != 0 {
		t.Errorf("expected inactive prompt to be hidden, got %d", len(prompts))
	}

	if err := repo.DeletePrompt(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetPrompt(p.ID); !errors.Is(err, note.ErrPromptNotFound) {
		t.Errorf("get deleted = %v, want ErrPromptNotFound", err)
	}
}
