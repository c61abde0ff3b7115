package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// ListPrompts returns the user's active prompts, newest first. Built-in
// prompts are not stored; the catalog synthesizes them on top of this list.
func (r *Repository) ListPrompts(userID string) ([]note.Prompt, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, template_type, prompt_text, is_default, is_active, created_at, updated_at
		 FROM prompts WHERE user_id = ? AND is_active = 1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []note.Prompt
	for rows.Next() {
		var p note.Prompt
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.TemplateType, &p.PromptText, &p.IsDefault, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prompt: %w", err)
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	return prompts, nil
}

// GetPrompt returns a stored prompt by id.
func (r *Repository) GetPrompt(id string) (*note.Prompt, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, name, template_type, prompt_text, is_default, is_active, created_at, updated_at
		 FROM prompts WHERE id = ?`,
		id,
	)
	var p note.Prompt
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.TemplateType, &p.PromptText, &p.IsDefault, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, note.ErrPromptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}
	return &p, nil
}

// CreatePrompt stores a new user-authored prompt.
func (r *Repository) CreatePrompt(userID, name, templateType, promptText string) (*note.Prompt, error) {
	now := time.Now().UTC()
	p := &note.Prompt{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         name,
		TemplateType: templateType,
		PromptText:   promptText,
		IsDefault:    false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.db.Exec(
		`INSERT INTO prompts (id, user_id, name, template_type, prompt_text, is_default, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Name, p.TemplateType, p.PromptText, p.IsDefault, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}
	return p, nil
}

// UpdatePrompt overwrites name, text and active flag of a stored prompt.
func (r *Repository) UpdatePrompt(id, name, promptText string, isActive bool) (*note.Prompt, error) {
	res, err := r.db.Exec(
		`UPDATE prompts SET name = ?, prompt_text = ?, is_active = ?, updated_at = ? WHERE id = ?`,
		name, promptText, isActive, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update prompt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update prompt: %w", err)
	}
	if affected == 0 {
		return nil, note.ErrPromptNotFound
	}
	return r.GetPrompt(id)
}

// DeletePrompt removes a stored prompt.
func (r *Repository) DeletePrompt(id string) error {
	res, err := r.db.Exec(`DELETE FROM prompts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	if affected == 0 {
		return note.ErrPromptNotFound
	}
	return nil
}
