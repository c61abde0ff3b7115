package api

import (
	"encoding/json"
	"net/http"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
	"github.com/mklimuk/scratchpad-pilot/pkg/process"
)

// ProcessRequest represents the payload for POST /process-content. NoteID is
// optional; when set, the processed result is also persisted as a processed
// version of that note.
type ProcessRequest struct {
	Content      string `json:"content"`
	PromptType   string `json:"promptType"`
	PromptID     string `json:"promptId"`
	CustomPrompt string `json:"customPrompt"`
	UserID       string `json:"userId"`
	NoteID       string `json:"noteId"`
}

// ProcessResponse mirrors the processing function's wire shape. Warning is
// set when the completion service failed and the fallback produced the
// result; the call itself still succeeds.
type ProcessResponse struct {
	Success          bool   `json:"success"`
	ProcessedContent string `json:"processedContent"`
	PromptUsed       string `json:"promptUsed"`
	Warning          string `json:"warning,omitempty"`
}

// HandleProcessContent handles POST /process-content
func (h *Handler) HandleProcessContent(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		http.Error(w, "Content is required", http.StatusBadRequest)
		return
	}

	userID := h.userID(r, req.UserID)
	if h.Limiter != nil && !h.Limiter.Allow(h.clientKey(r, userID)) {
		http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	// Resolve the target note before spending a completion call on it.
	var target *note.Note
	if req.NoteID != "" {
		var err error
		target, err = h.Repo.GetNote(req.NoteID)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	result := h.Processor.Process(r.Context(), req.Content, process.Selector{
		CustomPrompt: req.CustomPrompt,
		PromptID:     req.PromptID,
		PromptType:   req.PromptType,
	})

	if target != nil {
		format := note.Format(result.TemplateType)
		if !format.Valid() {
			format = note.FormatDefault
		}
		meta := h.Processor.Metadata(result.TemplateType)
		if _, err := h.Archive.CreateVersion(target.ID, userID, target.Title, result.Content, format, true, meta); err != nil {
			writeError(w, err)
			return
		}
	}

	resp := ProcessResponse{
		Success:          true,
		ProcessedContent: result.Content,
		PromptUsed:       result.PromptUsed,
	}
	if result.Fallback {
		resp.Warning = "LLM processing failed, using fallback processing"
	}
	writeJSON(w, http.StatusOK, resp)
}
