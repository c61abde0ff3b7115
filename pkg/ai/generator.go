package ai

import "context"

// Generator defines the interface for text generation
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
