package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kirillkom/resource-assistant/internal/bootstrap"
	"github.com/kirillkom/resource-assistant/internal/config"
	"github.com/kirillkom/resource-assistant/internal/core/domain"
	"github.com/kirillkom/resource-assistant/internal/observability/logging"
	"github.com/kirillkom/resource-assistant/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup("worker", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics()
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("worker_metrics_server_error", "error", err)
		}
	}()

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.ReminderScanSpec, func() {
		scanCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		start := time.Now()
		published, err := app.ReminderUC.ScanOnce(scanCtx, time.Now().UTC())
		workerMetrics.ObserveScan(published, time.Since(start), err)
		if err != nil {
			logger.Error("reminder_scan_failed", "error", err)
			return
		}
		if published > 0 {
			logger.Info("reminder_scan_complete", "published", published)
		}
	})
	if err != nil {
		log.Fatalf("invalid reminder scan spec %q: %v", cfg.ReminderScanSpec, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	logger.Info("worker_started", "subject", cfg.NATSSubject, "scan_spec", cfg.ReminderScanSpec)

	err = app.Queue.SubscribeReminderDue(ctx, func(_ context.Context, reminder domain.Reminder) error {
		workerMetrics.ReminderConsumed()
		logger.Info("reminder_delivered",
			"schedule_id", reminder.ScheduleID,
			"title", reminder.Title,
			"notification_type", reminder.NotificationType,
			"scheduled_time", reminder.ScheduledTime,
		)
		return nil
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)
}
