package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
	"github.com/kirillkom/resource-assistant/internal/core/ports"
)

// ReminderScanUseCase publishes due-reminder events for schedules whose time
// has passed. A schedule is published at most once: it is marked notified
// only after a successful publish, so a failed publish is retried on the next
// scan.
type ReminderScanUseCase struct {
	schedules ports.ScheduleStore
	queue     ports.ReminderQueue
	logger    *slog.Logger
}

func NewReminderScanUseCase(
	schedules ports.ScheduleStore,
	queue ports.ReminderQueue,
	logger *slog.Logger,
) *ReminderScanUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderScanUseCase{
		schedules: schedules,
		queue:     queue,
		logger:    logger,
	}
}

// ScanOnce publishes events for all currently due schedules and returns how
// many were published.
func (uc *ReminderScanUseCase) ScanOnce(ctx context.Context, now time.Time) (int, error) {
	due, err := uc.schedules.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due schedules: %w", err)
	}

	published := 0
	for _, schedule := range due {
		reminder := domain.Reminder{
			ScheduleID:       schedule.ID,
			Title:            schedule.Title,
			Description:      schedule.Description,
			ScheduledTime:    schedule.ScheduledTime,
			NotificationType: schedule.NotificationType,
		}
		if err := uc.queue.PublishReminderDue(ctx, reminder); err != nil {
			uc.logger.Warn("reminder_publish_failed", "schedule_id", schedule.ID, "error", err)
			continue
		}
		if err := uc.schedules.MarkNotified(ctx, schedule.ID, now); err != nil {
			uc.logger.Warn("reminder_mark_notified_failed", "schedule_id", schedule.ID, "error", err)
			continue
		}
		published++
	}
	return published, nil
}
