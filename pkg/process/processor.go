package process

import (
	"context"
	"fmt"
	"log"

	"github.com/mklimuk/scratchpad-pilot/pkg/ai"
	"github.com/mklimuk/scratchpad-pilot/pkg/note"
	"github.com/mklimuk/scratchpad-pilot/pkg/prompt"
)

// Temperature is the fixed creativity parameter submitted with every
// completion request.
const Temperature = 0.7

// Selector names the template to process with. Resolution priority:
// CustomPrompt > PromptID > PromptType > the default type.
type Selector struct {
	CustomPrompt string
	PromptID     string
	PromptType   string
}

// Result is the outcome of a processing call. TemplateType is the resolved,
// always-known type, usable for tagging a persisted processed version.
// Fallback marks results produced locally after a failed completion call;
// those are a pure function of the input and selector.
type Result struct {
	Content      string
	PromptUsed   string
	TemplateType string
	Fallback     bool
}

// Processor submits note content plus a resolved template to the completion
// service. It never persists anything; the caller decides whether the
// enhanced text becomes a processed version.
type Processor struct {
	generator ai.Generator
	catalog   *prompt.Catalog
	provider  string
	model     string
}

// NewProcessor creates a processor over the given generator and catalog.
// provider and model identify the pinned backend for audit metadata.
func NewProcessor(generator ai.Generator, catalog *prompt.Catalog, provider, model string) *Processor {
	return &Processor{generator: generator, catalog: catalog, provider: provider, model: model}
}

// Metadata describes how a processed result was produced, for tagging the
// version that persists it.
func (p *Processor) Metadata(promptType string) *note.ProcessingMetadata {
	return &note.ProcessingMetadata{
		Model:       p.model,
		PromptType:  promptType,
		Provider:    p.provider,
		Temperature: Temperature,
	}
}

// Process resolves the template, substitutes the content into its
// placeholder and submits one completion request. A failed or empty
// completion degrades to the deterministic per-type fallback: the
// enhancement flow always has something to show and never surfaces a hard
// error to the user.
func (p *Processor) Process(ctx context.Context, content string, sel Selector) Result {
	templateType, template, promptName := p.resolve(sel)

	rendered := prompt.Render(template, content)

	text, err := p.generator.GenerateText(ctx, rendered)
	if err != nil || text == "" {
		if err != nil {
			log.Printf("process: completion call failed, falling back: %v", err)
		}
		return Result{
			Content:      fallback(templateType, content),
			PromptUsed:   fmt.Sprintf("%s processing (fallback mode)", templateType),
			TemplateType: templateType,
			Fallback:     true,
		}
	}

	return Result{
		Content:      text,
		PromptUsed:   promptName,
		TemplateType: templateType,
	}
}

// resolve picks the template text per the selector priority. The template
// type always resolves to a known type so the fallback stays deterministic.
func (p *Processor) resolve(sel Selector) (templateType, template, promptName string) {
	templateType = sel.PromptType
	if _, _, ok := prompt.Describe(templateType); !ok {
		templateType = "default"
	}

	if sel.CustomPrompt != "" {
		return templateType, sel.CustomPrompt, "custom prompt"
	}

	if sel.PromptID != "" {
		if resolved, err := p.catalog.Resolve(sel.PromptID); err == nil {
			if _, _, ok := prompt.Describe(resolved.TemplateType); ok {
				templateType = resolved.TemplateType
			}
			return templateType, resolved.PromptText, resolved.Name
		}
		log.Printf("process: prompt id %q did not resolve, using type %q", sel.PromptID, templateType)
	}

	resolved := prompt.ResolveType(templateType)
	return templateType, resolved.PromptText, resolved.Name
}
