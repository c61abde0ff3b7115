package note

import "time"

// DefaultTitle is assigned when a note is saved with a blank title.
const DefaultTitle = "Untitled Note"

// Note is a single markdown document, the unit of autosave.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Version is an immutable snapshot of a note's title/content/format at a
// point in time, numbered per note. The NoteID is a weak reference: versions
// survive note deletion and are pruned independently.
type Version struct {
	ID            string              `json:"id"`
	NoteID        string              `json:"noteId"`
	UserID        string              `json:"userId"`
	Title         string              `json:"title"`
	Content       string              `json:"content"`
	Format        Format              `json:"format"`
	VersionNumber int                 `json:"versionNumber"`
	IsProcessed   bool                `json:"isProcessed"`
	Metadata      *ProcessingMetadata `json:"processingMetadata,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ProcessingMetadata records how a processed or restored version came to be.
// Only a handful of fields are ever populated, so this is a struct rather
// than an open map.
type ProcessingMetadata struct {
	Model               string  `json:"model,omitempty"`
	PromptType          string  `json:"promptType,omitempty"`
	Provider            string  `json:"provider,omitempty"`
	Temperature         float64 `json:"temperature,omitempty"`
	RestoredFrom        string  `json:"restoredFrom,omitempty"`
	RestoredFromVersion int     `json:"restoredFromVersion,omitempty"`
}

// Prompt is a named template with a single {content} placeholder, submitted
// to the completion service to enhance a note. Built-in prompts carry ids of
// the form "default_<type>" and are synthesized at read time; user prompts
// are persisted.
type Prompt struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId,omitempty"`
	Name         string    `json:"name"`
	TemplateType string    `json:"templateType"`
	PromptText   string    `json:"promptText"`
	IsDefault    bool      `json:"isDefault"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
