package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// InsertVersion appends a snapshot for a note, assigning the next version
// number as max(existing)+1 over every version of the note regardless of
// owner. The read and the insert are not wrapped in a transaction, so two
// writers hitting the same note at once can both observe the same max and
// duplicate a number. That mirrors the observed behavior of the system this
// replaces; serialized saves get strictly increasing numbers with no gaps.
func (r *Repository) InsertVersion(noteID, userID, title, content string, format note.Format, isProcessed bool, meta *note.ProcessingMetadata) (*note.Version, error) {
	var current sql.NullInt64
	err := r.db.QueryRow(
		`SELECT MAX(version_number) FROM note_versions WHERE note_id = ?`,
		noteID,
	).Scan(&current)
	if err != nil {
		return nil, fmt.Errorf("failed to get current version number: %w", err)
	}

	next := 1
	if current.Valid {
		next = int(current.Int64) + 1
	}

	var metaJSON sql.NullString
	if meta != nil {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal processing metadata: %w", err)
		}
		metaJSON = sql.NullString{String: string(raw), Valid: true}
	}

	v := &note.Version{
		ID:            uuid.NewString(),
		NoteID:        noteID,
		UserID:        userID,
		Title:         title,
		Content:       content,
		Format:        format,
		VersionNumber: next,
		IsProcessed:   isProcessed,
		Metadata:      meta,
		CreatedAt:     time.Now().UTC(),
	}

	_, err = r.db.Exec(
		`INSERT INTO note_versions (id, note_id, user_id, title, content, format, version_number, is_processed, processing_metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.NoteID, v.UserID, v.Title, v.Content, string(v.Format), v.VersionNumber, v.IsProcessed, metaJSON, v.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note version: %w", err)
	}
	return v, nil
}

// ListVersions returns versions for a note, newest first. A limit <= 0 means
// no limit.
func (r *Repository) ListVersions(noteID, userID string, limit int) ([]note.Version, error) {
	query := `SELECT id, note_id, user_id, title, content, format, version_number, is_processed, processing_metadata, created_at
		 FROM note_versions WHERE note_id = ? AND user_id = ?
		 ORDER BY created_at DESC, version_number DESC`
	args := []interface{}{noteID, userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list note versions: %w", err)
	}
	defer rows.Close()

	var versions []note.Version
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list note versions: %w", err)
	}
	return versions, nil
}

// GetVersion returns a single version by id.
func (r *Repository) GetVersion(id, userID string) (*note.Version, error) {
	row := r.db.QueryRow(
		`SELECT id, note_id, user_id, title, content, format, version_number, is_processed, processing_metadata, created_at
		 FROM note_versions WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	v, err := scanVersion(row)
	if err == sql.ErrNoRows {
		return nil, note.ErrVersionNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteVersion removes a single version.
func (r *Repository) DeleteVersion(id, userID string) error {
	res, err := r.db.Exec(`DELETE FROM note_versions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note version: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete note version: %w", err)
	}
	if affected == 0 {
		return note.ErrVersionNotFound
	}
	return nil
}

// DeleteVersionsForNote removes every version for a note.
func (r *Repository) DeleteVersionsForNote(noteID, userID string) error {
	_, err := r.db.Exec(`DELETE FROM note_versions WHERE note_id = ? AND user_id = ?`, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note versions: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVersion(row rowScanner) (*note.Version, error) {
	var v note.Version
	var format string
	var metaJSON sql.NullString
	err := row.Scan(&v.ID, &v.NoteID, &v.UserID, &v.Title, &v.Content, &format, &v.VersionNumber, &v.IsProcessed, &metaJSON, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan note version: %w", err)
	}
	v.Format = note.Format(format)
	if metaJSON.Valid && metaJSON.String != "" {
		var meta note.ProcessingMetadata
		if err := json.Unmarshal([]byte(metaJSON.String), &meta); err != nil {
			return nil, fmt.Errorf("failed to parse processing metadata: %w", err)
		}
		v.Metadata = &meta
	}
	return &v, nil
}
