package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirillkom/resource-assistant/internal/config"
	"github.com/kirillkom/resource-assistant/internal/core/ports"
	"github.com/kirillkom/resource-assistant/internal/core/usecase"
	"github.com/kirillkom/resource-assistant/internal/infrastructure/extractor/pdftext"
	"github.com/kirillkom/resource-assistant/internal/infrastructure/extractor/sheet"
	"github.com/kirillkom/resource-assistant/internal/infrastructure/llm/openai"
	natsqueue "github.com/kirillkom/resource-assistant/internal/infrastructure/queue/nats"
	"github.com/kirillkom/resource-assistant/internal/infrastructure/repository/postgres"
	"github.com/kirillkom/resource-assistant/internal/infrastructure/resilience"
)

// App holds the wired dependency graph shared by the api and worker binaries.
type App struct {
	Config config.Config
	Logger *slog.Logger

	DB          *sql.DB
	SummaryRepo *postgres.SummaryRepository
	Queue       *natsqueue.Queue

	SummaryUC  *usecase.SummarizeUseCase
	IngestUC   *usecase.IngestDocumentUseCase
	NoteUC     *usecase.NotesUseCase
	ScheduleUC *usecase.SchedulesUseCase
	ReminderUC *usecase.ReminderScanUseCase

	Online ports.OnlineSummarizer
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	summaryRepo := postgres.NewSummaryRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)

	llmExecutor := resilience.NewExecutor(resilience.SingleAttemptPolicy())
	online := openai.NewSummarizer(openai.Config{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		Temperature: float32(cfg.OpenAITemperature),
		Timeout:     time.Duration(cfg.OpenAITimeoutSeconds) * time.Second,
	}, llmExecutor)

	queueExecutor := resilience.NewExecutor(resilience.QueuePolicy())
	queue, err := natsqueue.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, natsqueue.Options{
		ResilienceExecutor: queueExecutor,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	summaryUC := usecase.NewSummarizeUseCase(summaryRepo, online, usecase.SummarizerConfig{
		NoteExcerptRunes:     cfg.NoteExcerptChars,
		DocumentExcerptRunes: cfg.DocumentExcerptChars,
		OnlineSampleRunes:    cfg.OnlineSampleChars,
		NoteMaxTokens:        cfg.NoteSummaryMaxTokens,
		DocumentMaxTokens:    cfg.DocumentSummaryMaxTokens,
	}, logger)

	ingestUC := usecase.NewIngestDocumentUseCase(
		pdftext.NewExtractor(),
		map[string]ports.TextExtractor{
			".xlsx": sheet.NewExtractor(),
			".xlsm": sheet.NewExtractor(),
		},
		summaryUC,
	)

	return &App{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		SummaryRepo: summaryRepo,
		Queue:       queue,
		SummaryUC:   summaryUC,
		IngestUC:    ingestUC,
		NoteUC:      usecase.NewNotesUseCase(noteRepo, summaryUC),
		ScheduleUC:  usecase.NewSchedulesUseCase(scheduleRepo),
		ReminderUC:  usecase.NewReminderScanUseCase(scheduleRepo, queue, logger),
		Online:      online,
	}, nil
}

func (a *App) Close() {
	if a.Queue != nil {
		a.Queue.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
