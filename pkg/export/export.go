package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// frontmatter is the YAML header written on every exported note.
type frontmatter struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Created string `yaml:"created"`
	Updated string `yaml:"updated"`
}

// Lister is the read surface the exporter needs. *db.Repository satisfies it.
type Lister interface {
	ListNotes() ([]note.Note, error)
}

// Exporter writes every note as a markdown file with YAML frontmatter and
// optionally commits the snapshot to a git remote.
type Exporter struct {
	notes Lister
	dir   string
	git   *GitManager
}

// NewExporter creates an exporter writing into dir. git may be nil to skip
// the commit/push step.
func NewExporter(notes Lister, dir string, git *GitManager) *Exporter {
	return &Exporter{notes: notes, dir: dir, git: git}
}

// Export writes all notes and, when configured, syncs the directory.
func (e *Exporter) Export() error {
	notes, err := e.notes.ListNotes()
	if err != nil {
		return fmt.Errorf("failed to list notes for export: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	for _, n := range notes {
		if err := e.writeNote(n); err != nil {
			return err
		}
	}

	if e.git != nil {
		return e.git.Sync(fmt.Sprintf("Export %d notes: %s", len(notes), time.Now().Format(time.RFC3339)))
	}
	return nil
}

func (e *Exporter) writeNote(n note.Note) error {
	fm := frontmatter{
		ID:      n.ID,
		Title:   n.Title,
		Created: n.CreatedAt.Format(time.RFC3339),
		Updated: n.UpdatedAt.Format(time.RFC3339),
	}
	fmData, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	content := fmt.Sprintf("---\n%s---\n%s", string(fmData), n.Content)
	path := filepath.Join(e.dir, SanitizeFilename(n.Title)+"-"+shortID(n.ID)+".md")

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SanitizeFilename removes characters invalid in filenames.
func SanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	for _, char := range invalid {
		name = strings.ReplaceAll(name, char, "-")
	}
	return strings.TrimSpace(name)
}

// shortID keeps filenames stable across title edits without dragging the
// full uuid in.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
