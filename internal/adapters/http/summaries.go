package httpadapter

import (
	"io"
	"net/http"
	"strings"
)

func (rt *Router) uploadPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read upload"})
		return
	}

	summary, err := rt.ingestUC.Upload(r.Context(), fileHeader.Filename, data)
	if err != nil {
		writeError(w, err)
		return
	}
	rt.recordSummaryCreated(summary)

	writeJSON(w, http.StatusCreated, summary)
}

func (rt *Router) listSummaries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	summaries, err := rt.summaryUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (rt *Router) refreshSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/refresh-summary/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "summary id is required"})
		return
	}

	refreshed, err := rt.summaryUC.Refresh(r.Context(), id)
	if rt.metrics != nil {
		rt.metrics.RefreshObserved(serviceName, err)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "summary": refreshed})
}
