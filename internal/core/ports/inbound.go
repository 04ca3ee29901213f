package ports

import (
	"context"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

// SummaryService is the inbound contract for the summarization pipeline.
type SummaryService interface {
	Create(ctx context.Context, text string, kind domain.SourceKind, label string) (*domain.Summary, error)
	Refresh(ctx context.Context, id string) (string, error)
	List(ctx context.Context) ([]domain.Summary, error)
}

// DocumentIngestor is the inbound contract for document upload.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename string, data []byte) (*domain.Summary, error)
}

// NoteService is the inbound contract for note CRUD.
type NoteService interface {
	Create(ctx context.Context, title, content string) (*domain.Note, *domain.Summary, error)
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context) ([]domain.Note, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleService is the inbound contract for schedule CRUD and completion.
type ScheduleService interface {
	Create(ctx context.Context, title, description, notificationType string, scheduledTime string) (*domain.Schedule, error)
	List(ctx context.Context) ([]domain.Schedule, error)
	ListUpcoming(ctx context.Context) ([]domain.Schedule, error)
	MarkCompleted(ctx context.Context, id string) error
}
