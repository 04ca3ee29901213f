package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

type noteResponse struct {
	*domain.Note
	Summary *domain.Summary `json:"summary,omitempty"`
}

func (rt *Router) notesCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		rt.createNote(w, r)
	case http.MethodGet:
		rt.listNotes(w, r)
	default:
		writeMethodNotAllowed(w)
	}
}

func (rt *Router) createNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	note, summary, err := rt.noteUC.Create(r.Context(), req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	rt.recordSummaryCreated(summary)

	writeJSON(w, http.StatusCreated, noteResponse{Note: note, Summary: summary})
}

func (rt *Router) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := rt.noteUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (rt *Router) noteByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/notes/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "note id is required"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		note, err := rt.noteUC.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, note)
	case http.MethodDelete:
		if err := rt.noteUC.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
	default:
		writeMethodNotAllowed(w)
	}
}
