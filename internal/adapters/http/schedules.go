package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (rt *Router) scheduleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		rt.createSchedule(w, r)
	case http.MethodGet:
		schedules, err := rt.scheduleUC.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, schedules)
	default:
		writeMethodNotAllowed(w)
	}
}

func (rt *Router) createSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title            string `json:"title"`
		Description      string `json:"description"`
		ScheduledTime    string `json:"scheduled_time"`
		NotificationType string `json:"notification_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	schedule, err := rt.scheduleUC.Create(r.Context(), req.Title, req.Description, req.NotificationType, req.ScheduledTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, schedule)
}

func (rt *Router) upcomingSchedules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	schedules, err := rt.scheduleUC.ListUpcoming(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (rt *Router) completeSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeMethodNotAllowed(w)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/schedule/")
	id, ok := strings.CutSuffix(rest, "/complete")
	if !ok || id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "schedule id is required"})
		return
	}

	if err := rt.scheduleUC.MarkCompleted(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "completed", "id": id})
}
