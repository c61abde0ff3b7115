package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

type staticLister []note.Note

func (s staticLister) ListNotes() ([]note.Note, error) { return s, nil }

func TestExportWritesMarkdownWithFrontmatter(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	notes := staticLister{
		{ID: "abcdef12-3456-7890-abcd-ef1234567890", Title: "Weekly Plan", Content: "- ship it", CreatedAt: now, UpdatedAt: now},
		{ID: "short", Title: "Tiny", Content: "x", CreatedAt: now, UpdatedAt: now},
	}

	e := NewExporter(notes, dir, nil)
	if err := e.Export(); err != nil {
		t.Fatalf("export: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "Weekly Plan-abcdef12.md"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	body := string(raw)
	if !strings.HasPrefix(body, "---\n") {
		t.Errorf("missing frontmatter open: %q", body)
	}
	if !strings.Contains(body, "title: Weekly Plan") {
		t.Errorf("missing title: %q", body)
	}
	if !strings.Contains(body, "created: \"2026-03-14T09:26:53Z\"") &&
		!strings.Contains(body, "created: 2026-03-14T09:26:53Z") {
		t.Errorf("missing created timestamp: %q", body)
	}
	if !strings.HasSuffix(body, "---\n- ship it") {
		t.Errorf("content not appended after frontmatter: %q", body)
	}

	// Short ids are used as-is
	if _, err := os.Stat(filepath.Join(dir, "Tiny-short.md")); err != nil {
		t.Errorf("short id export missing: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain title", "plain title"},
		{"a/b\\c:d", "a-b-c-d"},
		{`what? "quotes" <and> |pipes|*`, "what- -quotes- -and- -pipes--"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
