package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// Repository handles data access for notes, versions and prompts.
type Repository struct {
	db *DB
}

// NewRepository creates a new Repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ListNotes returns all notes ordered by updated_at descending.
func (r *Repository) ListNotes() ([]note.Note, error) {
	rows, err := r.db.Query(`SELECT id, title, content, created_at, updated_at FROM notes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNote returns a single note by id.
func (r *Repository) GetNote(id string) (*note.Note, error) {
	row := r.db.QueryRow(`SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?`, id)

	var n note.Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, note.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &n, nil
}

// CreateNote inserts a new note with a server-assigned id and timestamps.
// A blank title defaults to "Untitled Note".
func (r *Repository) CreateNote(title, content string) (*note.Note, error) {
	if title == "" {
		title = note.DefaultTitle
	}
	now := time.Now().UTC()
	n := &note.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.Exec(
		`INSERT INTO notes (id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return n, nil
}

// UpdateNote overwrites title and content of an existing note and bumps
// updated_at. Returns note.ErrNoteNotFound for unknown ids.
func (r *Repository) UpdateNote(id, title, content string) (*note.Note, error) {
	if title == "" {
		title = note.DefaultTitle
	}
	now := time.Now().UTC()

	res, err := r.db.Exec(
		`UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if affected == 0 {
		return nil, note.ErrNoteNotFound
	}

	return r.GetNote(id)
}

// DeleteNote removes a note. Versions are intentionally left in place: the
// archive holds weak references and is pruned independently. Deleting an
// unknown id returns note.ErrNoteNotFound.
func (r *Repository) DeleteNote(id string) error {
	res, err := r.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if affected == 0 {
		return note.ErrNoteNotFound
	}
	return nil
}
