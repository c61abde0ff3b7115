package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiDefaultModel = "gemini-pro"

// GeminiClient wraps the Gemini API client
type GeminiClient struct {
	genaiClient *genai.Client
	model       *genai.GenerativeModel
	modelName   string
}

// Ensure GeminiClient implements Generator
var _ Generator = (*GeminiClient)(nil)

// NewGeminiClient creates a new Gemini client. An empty model pins the default.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if modelName == "" {
		modelName = geminiDefaultModel
	}
	model := client.GenerativeModel(modelName)
	temperature := float32(defaultTemperature)
	maxTokens := int32(defaultMaxTokens)
	model.Temperature = &temperature
	model.MaxOutputTokens = &maxTokens

	return &GeminiClient{
		genaiClient: client,
		model:       model,
		modelName:   modelName,
	}, nil
}

// Model returns the pinned model id.
func (c *GeminiClient) Model() string { return c.modelName }

// Close closes the client
func (c *GeminiClient) Close() error {
	return c.genaiClient.Close()
}

// GenerateText generates text from a prompt
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return sb.String(), nil
}
