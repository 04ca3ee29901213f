package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kirillkom/resource-assistant/internal/config"
	"github.com/kirillkom/resource-assistant/internal/core/domain"
	"github.com/kirillkom/resource-assistant/internal/core/ports"
	"github.com/kirillkom/resource-assistant/internal/observability/metrics"
)

const serviceName = "api"

type Router struct {
	summaryUC  ports.SummaryService
	ingestUC   ports.DocumentIngestor
	noteUC     ports.NoteService
	scheduleUC ports.ScheduleService
	pinger     ports.Pinger
	online     ports.OnlineSummarizer
	metrics    *metrics.HTTPServerMetrics
	cfg        config.Config
}

type RouterDeps struct {
	SummaryUC  ports.SummaryService
	IngestUC   ports.DocumentIngestor
	NoteUC     ports.NoteService
	ScheduleUC ports.ScheduleService
	Pinger     ports.Pinger
	Online     ports.OnlineSummarizer
	Metrics    *metrics.HTTPServerMetrics
	Config     config.Config
}

func NewRouter(deps RouterDeps) *Router {
	return &Router{
		summaryUC:  deps.SummaryUC,
		ingestUC:   deps.IngestUC,
		noteUC:     deps.NoteUC,
		scheduleUC: deps.ScheduleUC,
		pinger:     deps.Pinger,
		online:     deps.Online,
		metrics:    deps.Metrics,
		cfg:        deps.Config,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.Handle("/metrics", rt.metrics.Handler())
	mux.HandleFunc("/api/connection-status", rt.connectionStatus)
	mux.HandleFunc("/api/notes", rt.notesCollection)
	mux.HandleFunc("/api/notes/", rt.noteByID)
	mux.HandleFunc("/api/schedule", rt.scheduleCollection)
	mux.HandleFunc("/api/schedule/upcoming", rt.upcomingSchedules)
	mux.HandleFunc("/api/schedule/", rt.completeSchedule)
	mux.HandleFunc("/api/upload-pdf", rt.uploadPDF)
	mux.HandleFunc("/api/summaries", rt.listSummaries)
	mux.HandleFunc("/api/refresh-summary/", rt.refreshSummary)
	mux.HandleFunc("/api/copilot/process-command", rt.processCommand)

	var handler http.Handler = mux
	handler = apiKeyMiddleware(handler, rt.cfg.CopilotAPIKey)
	handler = backpressureMiddleware(handler, rt.cfg.APIMaxConcurrent, 100*time.Millisecond)
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = corsMiddleware(handler)
	handler = accessLogMiddleware(handler, rt.metrics)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) connectionStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	database := "connected"
	if err := rt.pinger.Ping(r.Context()); err != nil {
		database = "disconnected"
	}
	ai := "not_configured"
	if rt.online.Available() {
		ai = "configured"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"database":    database,
		"ai":          ai,
		"server_time": time.Now().UTC().Format(time.RFC3339),
	})
}

// recordSummaryCreated counts the stored record. When the online summarizer
// was available but the record carries no online summary, the single creation
// attempt must have failed, so the error outcome is counted too.
func (rt *Router) recordSummaryCreated(summary *domain.Summary) {
	if rt.metrics == nil || summary == nil {
		return
	}
	rt.metrics.SummaryCreated(serviceName, string(summary.SourceKind), summary.HasOnlineSummary)
	if rt.online.Available() && !summary.HasOnlineSummary {
		rt.metrics.OnlineAttemptFailed(serviceName)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}
