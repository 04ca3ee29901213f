package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/kirillkom/resource-assistant/internal/adapters/http"
	"github.com/kirillkom/resource-assistant/internal/bootstrap"
	"github.com/kirillkom/resource-assistant/internal/config"
	"github.com/kirillkom/resource-assistant/internal/observability/logging"
	"github.com/kirillkom/resource-assistant/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup("api", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	router := httpadapter.NewRouter(httpadapter.RouterDeps{
		SummaryUC:  app.SummaryUC,
		IngestUC:   app.IngestUC,
		NoteUC:     app.NoteUC,
		ScheduleUC: app.ScheduleUC,
		Pinger:     app.SummaryRepo,
		Online:     app.Online,
		Metrics:    metrics.NewHTTPServerMetrics("api"),
		Config:     cfg,
	})
	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api_listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("api server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api_shutdown_error", "error", err)
	}
}
