package telegram

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

	n, err := b.capture("buy milk and eggs for the weekend")
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
	want := `create "buy milk and eggs fo..." "buy milk and eggs for the weekend"`
	if store.calls[0] != want {
		t.Errorf("call = %s, want %s", store.calls[0], want)
	}

	// The session fired the version snapshot for the created note
	if len(arch.snapshots) != 1 || arch.snapshots[0] != fmt.Sprintf("n1 %s", note.FormatDefault) {
		t.Errorf("snapshots = %v", arch.snapshots)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text        string
		wantCommand string
		wantContent string
	}{
		{"/note buy milk", "/note", "buy milk"},
		{"/status", "/status", ""},
		{"just chatting", "", "just chatting"},
		{"/notebook", "", "/notebook"},
		{"/note ", "/note", ""},
	}

	for _, tt := range tests {
		command, content := ParseCommand(tt.text)
		if command != tt.wantCommand || content != tt.wantContent {
			t.Errorf("ParseCommand(%q) = %q, %q; want %q, %q",
				tt.text, command, content, tt.wantCommand, tt.wantContent)
		}
	}
}

func TestTruncateTitle(t *testing.T) {
	if got := TruncateTitle("short"); got != "short" {
		t.Errorf("TruncateTitle(short) = %q", got)
	}
	if got := TruncateTitle("exactly twenty chars"); got != "exactly twenty chars" {
		t.Errorf("TruncateTitle(20 chars) = %q", got)
	}
	long := "this content is definitely longer than twenty characters"
	want := "this content is defi..."
	if got := TruncateTitle(long); got != want {
		t.Errorf("TruncateTitle(long) = %q, want %q", got, want)
	}
}
