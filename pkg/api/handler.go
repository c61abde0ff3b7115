package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/mklimuk/scratchpad-pilot/pkg/archive"
	"github.com/mklimuk/scratchpad-pilot/pkg/db"
	"github.com/mklimuk/scratchpad-pilot/pkg/note"
	"github.com/mklimuk/scratchpad-pilot/pkg/process"
	"github.com/mklimuk/scratchpad-pilot/pkg/prompt"
	"github.com/mklimuk/scratchpad-pilot/pkg/ratelimit"
)

// Exporter pushes a markdown snapshot of all notes somewhere durable.
type Exporter interface {
	Export() error
}

// Handler holds dependencies for API handlers
type Handler struct {
	Repo          *db.Repository
	Archive       *archive.Archive
	Catalog       *prompt.Catalog
	Processor     *process.Processor
	Limiter       *ratelimit.Limiter
	Exporter      Exporter
	DefaultUserID string
}

// userID resolves the acting user: explicit parameter first, then the
// configured default.
func (h *Handler) userID(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if q := r.URL.Query().Get("userId"); q != "" {
		return q
	}
	return h.DefaultUserID
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses: unknown ids to 404,
// built-in mutation to 403, everything else is an opaque persistence failure.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, note.ErrNoteNotFound),
		errors.Is(err, note.ErrVersionNotFound),
		errors.Is(err, note.ErrPromptNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, note.ErrBuiltinPrompt):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, fmt.Sprintf("Persistence failure: %v", err), http.StatusInternalServerError)
	}
}

// CreateNoteRequest represents the payload for creating or updating a note.
// Format is only consulted on create, to seed an empty note with the
// format's markdown skeleton.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Format  string `json:"format"`
}

// HandleListNotes handles GET /notes
func (h *Handler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Repo.ListNotes()
	if err != nil {
		writeError(w, err)
		return
	}
	if notes == nil {
		notes = []note.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

// HandleCreateNote handles POST /notes
func (h *Handler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Seed an empty new note from the format skeleton. Non-empty content is
	// never touched by a format.
	if req.Content == "" {
		if f := note.Format(req.Format); f.Valid() {
			req.Content = f.Skeleton()
		}
	}

	n, err := h.Repo.CreateNote(req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// HandleUpdateNote handles PUT /notes/{id}
func (h *Handler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	n, err := h.Repo.UpdateNote(r.PathValue("id"), req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// HandleDeleteNote handles DELETE /notes/{id}. Versions are not cascaded;
// the archive outlives the note and is pruned through its own endpoints.
func (h *Handler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteNote(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleExport handles POST /export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if h.Exporter == nil {
		http.Error(w, "Export not configured", http.StatusNotFound)
		return
	}
	go func() {
		if err := h.Exporter.Export(); err != nil {
			fmt.Printf("Export failed: %v\n", err)
		}
	}()
	w.WriteHeader(http.StatusAccepted)
}

// clientKey picks the rate-limit key: the acting user, falling back to the
// remote address for anonymous calls.
func (h *Handler) clientKey(r *http.Request, userID string) string {
	if userID != "" {
		return userID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
