package prompt

import (
	"sort"
	"strings"
	"time"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// builtinPrefix marks synthesized registry ids.
const builtinPrefix = "default_"

// Store is the persistence surface for user-authored prompts.
// *db.Repository satisfies it.
type Store interface {
	ListPrompts(userID string) ([]note.Prompt, error)
	GetPrompt(id string) (*note.Prompt, error)
	CreatePrompt(userID, name, templateType, promptText string) (*note.Prompt, error)
	UpdatePrompt(id, name, promptText string, isActive bool) (*note.Prompt, error)
	DeletePrompt(id string) error
}

// Catalog resolves named templates: built-ins from the in-memory registry,
// everything else from storage.
type Catalog struct {
	store Store
}

// NewCatalog creates a catalog over the given store.
func NewCatalog(store Store) *Catalog {
	return &Catalog{store: store}
}

// IsBuiltin reports whether id names a synthesized built-in template.
func IsBuiltin(id string) bool {
	return strings.HasPrefix(id, builtinPrefix)
}

// Resolve returns the template for id. Ids prefixed "default_" synthesize a
// built-in without a storage round-trip; all other ids look up a user
// template. Unknown ids return note.ErrPromptNotFound.
func (c *Catalog) Resolve(id string) (*note.Prompt, error) {
	if IsBuiltin(id) {
		templateType := strings.TrimPrefix(id, builtinPrefix)
		b, ok := builtins[templateType]
		if !ok {
			return nil, note.ErrPromptNotFound
		}
		return synthesize(templateType, b), nil
	}
	return c.store.GetPrompt(id)
}

// ResolveType returns the built-in template for a template type, falling back
// to the default type for unknown names.
func ResolveType(templateType string) *note.Prompt {
	b, ok := builtins[templateType]
	if !ok {
		templateType = "default"
		b = builtins[templateType]
	}
	return synthesize(templateType, b)
}

// List merges the user's active stored prompts (newest first) with every
// built-in template.
func (c *Catalog) List(userID string) ([]note.Prompt, error) {
	prompts, err := c.store.ListPrompts(userID)
	if err != nil {
		return nil, err
	}
	for _, templateType := range TemplateTypes() {
		prompts = append(prompts, *synthesize(templateType, builtins[templateType]))
	}
	return prompts, nil
}

// ListByType returns the user templates matching templateType plus the single
// built-in for that type.
func (c *Catalog) ListByType(templateType, userID string) ([]note.Prompt, error) {
	all, err := c.List(userID)
	if err != nil {
		return nil, err
	}
	var matched []note.Prompt
	for _, p := range all {
		if p.TemplateType == templateType {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Create stores a new user-authored template.
func (c *Catalog) Create(userID, name, templateType, promptText string) (*note.Prompt, error) {
	return c.store.CreatePrompt(userID, name, templateType, promptText)
}

// Update rewrites a user-authored template. Built-in ids are immutable.
func (c *Catalog) Update(id, name, promptText string, isActive bool) (*note.Prompt, error) {
	if IsBuiltin(id) {
		return nil, note.ErrBuiltinPrompt
	}
	return c.store.UpdatePrompt(id, name, promptText, isActive)
}

// Delete removes a user-authored template. Built-in ids are immutable.
func (c *Catalog) Delete(id string) error {
	if IsBuiltin(id) {
		return note.ErrBuiltinPrompt
	}
	return c.store.DeletePrompt(id)
}

// TemplateTypes lists the built-in template types in stable order.
func TemplateTypes() []string {
	types := make([]string, 0, len(builtins))
	for t := range builtins {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Describe returns the display name and description of a built-in type.
func Describe(templateType string) (name, description string, ok bool) {
	b, found := builtins[templateType]
	if !found {
		return "", "", false
	}
	return b.Name, b.Description, true
}

// Render substitutes the note content into the template's placeholder.
func Render(template, content string) string {
	return strings.ReplaceAll(template, Placeholder, content)
}

func synthesize(templateType string, b builtin) *note.Prompt {
	now := time.Now().UTC()
	return &note.Prompt{
		ID:           builtinPrefix + templateType,
		Name:         b.Name,
		TemplateType: templateType,
		PromptText:   b.Template,
		IsDefault:    true,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
