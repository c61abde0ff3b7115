package note

import "errors"

var (
	// ErrNoteNotFound is returned when a referenced note id does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrVersionNotFound is returned when a referenced version id does not exist.
	ErrVersionNotFound = errors.New("note version not found")

	// ErrPromptNotFound is returned when a prompt id resolves to nothing.
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrBuiltinPrompt is returned on attempts to mutate a default_* prompt.
	ErrBuiltinPrompt = errors.New("built-in prompts cannot be modified")
)
