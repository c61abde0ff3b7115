package api

import (
	"net/http"
)

// NewRouter creates a new HTTP router
func NewRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /notes", h.HandleListNotes)
	mux.HandleFunc("POST /notes", h.HandleCreateNote)
	mux.HandleFunc("PUT /notes/{id}", h.HandleUpdateNote)
	mux.HandleFunc("DELETE /notes/{id}", h.HandleDeleteNote)
	mux.HandleFunc("DELETE /notes/{noteId}/versions", h.HandleDeleteVersionsForNote)

	mux.HandleFunc("POST /note-versions", h.HandleCreateVersion)
	mux.HandleFunc("GET /note-versions/{noteId}", h.HandleListVersions)
	mux.HandleFunc("DELETE /note-versions/{versionId}", h.HandleDeleteVersion)
	mux.HandleFunc("POST /note-versions/{versionId}/restore", h.HandleRestoreVersion)

	mux.HandleFunc("GET /prompts", h.HandleListPrompts)
	mux.HandleFunc("GET /prompts/types", h.HandleListTemplateTypes)
	mux.HandleFunc("GET /prompts/{id}", h.HandleGetPrompt)
	mux.HandleFunc("POST /prompts", h.HandleCreatePrompt)
	mux.HandleFunc("PUT /prompts/{id}", h.HandleUpdatePrompt)
	mux.HandleFunc("DELETE /prompts/{id}", h.HandleDeletePrompt)

	mux.HandleFunc("POST /process-content", h.HandleProcessContent)

	mux.HandleFunc("POST /export", h.HandleExport)

	return mux
}
