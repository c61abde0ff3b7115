package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mklimuk/scratchpad-pilot/pkg/note"
)

// CreateVersionRequest represents the payload for POST /note-versions
type CreateVersionRequest struct {
	NoteID      string                   `json:"noteId"`
	UserID      string                   `json:"userId"`
	Title       string                   `json:"title"`
	Content     string                   `json:"content"`
	Format      string                   `json:"format"`
	IsProcessed bool                     `json:"isProcessed"`
	Metadata    *note.ProcessingMetadata `json:"processingMetadata"`
}

// HandleCreateVersion handles POST /note-versions
func (h *Handler) HandleCreateVersion(w http.ResponseWriter, r *http.Request) {
	var req CreateVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.NoteID == "" {
		http.Error(w, "noteId is required", http.StatusBadRequest)
		return
	}

	format := note.Format(req.Format)
	if !format.Valid() {
		format = note.FormatDefault
	}

	v, err := h.Archive.CreateVersion(req.NoteID, h.userID(r, req.UserID), req.Title, req.Content, format, req.IsProcessed, req.Metadata)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// HandleListVersions handles GET /note-versions/{noteId}
func (h *Handler) HandleListVersions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	versions, err := h.Archive.ListVersions(r.PathValue("noteId"), h.userID(r, ""), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if versions == nil {
		versions = []note.Version{}
	}
	writeJSON(w, http.StatusOK, versions)
}

// HandleDeleteVersion handles DELETE /note-versions/{versionId}
func (h *Handler) HandleDeleteVersion(w http.ResponseWriter, r *http.Request) {
	if err := h.Archive.DeleteVersion(r.PathValue("versionId"), h.userID(r, "")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteVersionsForNote handles DELETE /notes/{noteId}/versions
func (h *Handler) HandleDeleteVersionsForNote(w http.ResponseWriter, r *http.Request) {
	if err := h.Archive.DeleteAllForNote(r.PathValue("noteId"), h.userID(r, "")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRestoreVersion handles POST /note-versions/{versionId}/restore.
// Restoring never rewinds the archive: the live note is rewritten and a new
// version linking back to the restored one is appended on top.
func (h *Handler) HandleRestoreVersion(w http.ResponseWriter, r *http.Request) {
	n, err := h.Archive.Restore(r.PathValue("versionId"), h.userID(r, ""))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
