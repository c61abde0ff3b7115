package archive

import (
	"errors"
	"testing"

	"github.com/mklimuk/scratchpad-pilot/pkg/db"
	"github.com/mklimuk/scratchpad-pilot/pkg/identity"
	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

func setupArchive(t *testing.T, users identity.Provider) (*Archive, *db.Repository) {
	t.Helper()
	database, err := db.NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	repo := db.NewRepository(database)
	return New(repo, repo, users), repo
}

func TestRestoreGrowsTheLog(t *testing.T) {
	arch, repo := setupArchive(t, identity.Static("user-1"))

	n, err := repo.CreateNote("Doc", "hello")
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	v1, err := arch.CreateVersion(n.ID, "user-1", n.Title, "hello", note.FormatDefault, false, nil)
	if err != nil {
		t.Fatalf("version 1: %v", err)
	}
	if _, err := repo.UpdateNote(n.ID, "Doc", "hello world"); err != nil {
		t.Fatalf("update note: %v", err)
	}
	if _, err := arch.CreateVersion(n.ID, "user-1", "Doc", "hello world", note.FormatDefault, false, nil); err != nil {
		t.Fatalf("version 2: %v", err)
	}

	restored, err := arch.Restore(v1.ID, "user-1")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Content != "hello" {
		t.Errorf("restored content = %q, want %q", restored.Content, "hello")
	}

	// Restoring appends; it never rewinds the log
	versions, err := arch.ListVersions(n.ID, "user-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("expected 3 versions after restore, got %d", len(versions))
	}
	marker := versions[0]
	if marker.VersionNumber != 3 {
		t.Errorf("marker version number = %d, want 3", marker.VersionNumber)
	}
	if marker.Metadata == nil {
		t.Fatal("marker version missing metadata")
	}
	if marker.Metadata.RestoredFrom != v1.ID {
		t.Errorf("restoredFrom = %q, want %q", marker.Metadata.RestoredFrom, v1.ID)
	}
	if marker.Metadata.RestoredFromVersion != 1 {
		t.Errorf("restoredFromVersion = %d, want 1", marker.Metadata.RestoredFromVersion)
	}
	if marker.Content != "hello" {
		t.Errorf("marker content = %q, want %q", marker.Content, "hello")
	}
}

func TestRestoreUnknownVersion(t *testing.T) {
	arch, _ := setupArchive(t, identity.Static("user-1"))

	if _, err := arch.Restore("missing", "user-1"); !errors.Is(err, note.ErrVersionNotFound) {
		t.Errorf("restore missing = %v, want ErrVersionNotFound", err)
	}
}

func TestRestoreIsScopedToUser(t *testing.T) {
	arch, repo := setupArchive(t, identity.Static("user-1"))

	n, _ := repo.CreateNote("Doc", "hello")
	v, err := arch.CreateVersion(n.ID, "user-1", "Doc", "hello", note.FormatDefault, false, nil)
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	if _, err := arch.Restore(v.ID, "someone-else"); !errors.Is(err, note.ErrVersionNotFound) {
		t.Errorf("restore as other user = %v, want ErrVersionNotFound", err)
	}
}

func TestSnapshotUsesIdentityProvider(t *testing.T) {
	arch, repo := setupArchive(t, identity.Static("user-1"))

	n, _ := repo.CreateNote("Doc", "body")
	arch.Snapshot(n, note.FormatDiary, false, nil)

	versions, err := repo.ListVersions(n.ID, "user-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(versions) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(versions))
	}
	if versions[0].UserID != "user-1" {
		t.Errorf("snapshot user = %q", versions[0].UserID)
	}
	if versions[0].Format != note.FormatDiary {
		t.Errorf("snapshot format = %q", versions[0].Format)
	}
}

func TestSnapshotSkipsWithoutUser(t *testing.T) {
	arch, repo := setupArchive(t, identity.Static(""))

	n, _ := repo.CreateNote("Doc", "body")

	// Must not panic and must not write anything
	arch.Snapshot(n, note.FormatDefault, false, nil)
	arch.Snapshot(nil, note.FormatDefault, false, nil)

	versions, err := repo.ListVersions(n.ID, "user-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(versions) != 0 {
		t.Errorf("expected no snapshots without an identity, got %d", len(versions))
	}
}

// failingStore rejects every insert to prove Snapshot absorbs failures.
type failingStore struct {
	Store
}

func (failingStore) InsertVersion(noteID, userID, title, content string, format note.Format, isProcessed bool, meta *note.ProcessingMetadata) (*note.Version, error) {
	return nil, errors.New("insert rejected")
}

func TestSnapshotAbsorbsStoreFailure(t *testing.T) {
	arch := New(failingStore{}, nil, identity.Static("user-1"))

	// Must not panic; the caller never sees the failure
	arch.Snapshot(&note.Note{ID: "n1", Title: "Doc", Content: "body"}, note.FormatDefault, false, nil)
}
