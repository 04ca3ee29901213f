package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kirillkom/resource-assistant/internal/core/usecase"
)

func (rt *Router) processCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req struct {
		Command string         `json:"command"`
		Context map[string]any `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "command is required"})
		return
	}

	result := usecase.DispatchCommand(req.Command)
	if rt.metrics != nil {
		rt.metrics.CommandDispatched(serviceName, string(result.Action))
	}
	writeJSON(w, http.StatusOK, result)
}
