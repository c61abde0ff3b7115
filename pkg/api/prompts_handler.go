package api

import (
	"encoding/json"
	"net/http"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
	"github.com/mklimuk/scratchpad-pilot/pkg/prompt"
)

// CreatePromptRequest represents the payload for creating a user prompt
type CreatePromptRequest struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	TemplateType string `json:"templateType"`
	PromptText   string `json:"promptText"`
}

// UpdatePromptRequest represents the payload for updating a user prompt
type UpdatePromptRequest struct {
	Name       string `json:"name"`
	PromptText string `json:"promptText"`
	IsActive   *bool  `json:"isActive"`
}

// HandleListPrompts handles GET /prompts. The response merges the user's
// stored prompts with the synthesized built-ins; ?type= narrows to one
// template type.
func (h *Handler) HandleListPrompts(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r, "")

	var prompts []note.Prompt
	var err error
	if templateType := r.URL.Query().Get("type"); templateType != "" {
		prompts, err = h.Catalog.ListByType(templateType, userID)
	} else {
		prompts, err = h.Catalog.List(userID)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if prompts == nil {
		prompts = []note.Prompt{}
	}
	writeJSON(w, http.StatusOK, prompts)
}

// HandleListTemplateTypes handles GET /prompts/types
func (h *Handler) HandleListTemplateTypes(w http.ResponseWriter, r *http.Request) {
	types := map[string]map[string]string{}
	for _, t := range prompt.TemplateTypes() {
		name, description, _ := prompt.Describe(t)
		types[t] = map[string]string{"name": name, "description": description}
	}
	writeJSON(w, http.StatusOK, types)
}

// HandleGetPrompt handles GET /prompts/{id}
func (h *Handler) HandleGetPrompt(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.Resolve(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleCreatePrompt handles POST /prompts
func (h *Handler) HandleCreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req CreatePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.PromptText == "" {
		http.Error(w, "name and promptText are required", http.StatusBadRequest)
		return
	}
	if req.TemplateType == "" {
		req.TemplateType = "default"
	}

	p, err := h.Catalog.Create(h.userID(r, req.UserID), req.Name, req.TemplateType, req.PromptText)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// HandleUpdatePrompt handles PUT /prompts/{id}
func (h *Handler) HandleUpdatePrompt(w http.ResponseWriter, r *http.Request) {
	var req UpdatePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p, err := h.Catalog.Update(r.PathValue("id"), req.Name, req.PromptText, isActive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleDeletePrompt handles DELETE /prompts/{id}
func (h *Handler) HandleDeletePrompt(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Delete(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
