package discord

import (
	"fmt"
	"testing"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

type fakeStore struct {
	calls []string
}

func (f *fakeStore) CreateNote(title, content string) (*note.Note, error) {
	f.calls = append(f.calls, fmt.Sprintf("create %q %q", title, content))
	return &note.Note{ID: "n1", Title: title, Content: content}, nil
}

func (f *fakeStore) UpdateNote(id, title, content string) (*note.Note, error) {
	f.calls = append(f.calls, fmt.Sprintf("update %s %q %q", id, title, content))
	return &note.Note{ID: id, Title: title, Content: content}, nil
}

type fakeArchive struct {
	snapshots []string
}

func (f *fakeArchive) Snapshot(n *note.Note, format note.Format, isProcessed bool, meta *note.ProcessingMetadata) {
	f.snapshots = append(f.snapshots, fmt.Sprintf("%s %s", n.ID, format))
}

func TestCaptureRunsSavePipeline(t *testing.T) {
	store := &fakeStore{}
	arch := &fakeArchive{}
	b := &Bot{Notes: store, Archive: arch}

	n, err := b.capture("remember to review the quarterly report")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if n == nil || n.ID != "n1" {
		t.Fatalf("captured note = %+v", n)
	}

	// One create through the session, title truncated
	if len(store.calls) != 1 {
		t.Fatalf("store calls = %v", store.calls)
	}
	want := `create "remember to review t..." "remember to review the quarterly report"`
	if store.calls[0] != want {
		t.Errorf("call = %s, want %s", store.calls[0], want)
	}

	// The session fired the version snapshot for the created note
	if len(arch.snapshots) != 1 || arch.snapshots[0] != fmt.Sprintf("n1 %s", note.FormatDefault) {
		t.Errorf("snapshots = %v", arch.snapshots)
	}

	// Short captures keep the full content as title
	if _, err := b.capture("short"); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if store.calls[1] != `create "short" "short"` {
		t.Errorf("call = %s", store.calls[1])
	}
}
