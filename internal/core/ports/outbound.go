package ports

import (
	"context"
	"time"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

// SummaryStore persists summary records.
type SummaryStore interface {
	Create(ctx context.Context, summary *domain.Summary) error
	GetByID(ctx context.Context, id string) (*domain.Summary, error)
	List(ctx context.Context) ([]domain.Summary, error)
	UpdateOnlineSummary(ctx context.Context, id, onlineSummary string) error
}

// NoteStore persists notes.
type NoteStore interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context) ([]domain.Note, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleStore persists schedules and drives the reminder scan.
type ScheduleStore interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	List(ctx context.Context) ([]domain.Schedule, error)
	ListUpcoming(ctx context.Context, after time.Time) ([]domain.Schedule, error)
	MarkCompleted(ctx context.Context, id string) error
	ListDue(ctx context.Context, now time.Time) ([]domain.Schedule, error)
	MarkNotified(ctx context.Context, id string, at time.Time) error
}

// TextExtractor converts raw document bytes into a single text blob.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// OnlineSummarizer wraps the external AI text-generation capability.
// Available reports whether a credential is configured; Summarize makes
// exactly one call and never retries.
type OnlineSummarizer interface {
	Available() bool
	Summarize(ctx context.Context, text, instruction string, maxTokens int) (string, error)
}

// ReminderQueue publishes and consumes due-reminder events.
type ReminderQueue interface {
	PublishReminderDue(ctx context.Context, reminder domain.Reminder) error
	SubscribeReminderDue(ctx context.Context, handler func(context.Context, domain.Reminder) error) error
}

// Pinger reports storage connectivity for the status probe.
type Pinger interface {
	Ping(ctx context.Context) error
}
