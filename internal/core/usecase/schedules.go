package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
	"github.com/kirillkom/resource-assistant/internal/core/ports"
)

// SchedulesUseCase handles schedule CRUD and completion. Scheduled times come
// in as RFC3339 strings from the API.
type SchedulesUseCase struct {
	schedules ports.ScheduleStore
}

func NewSchedulesUseCase(schedules ports.ScheduleStore) *SchedulesUseCase {
	return &SchedulesUseCase{schedules: schedules}
}

func (uc *SchedulesUseCase) Create(
	ctx context.Context,
	title, description, notificationType string,
	scheduledTime string,
) (*domain.Schedule, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create schedule", errors.New("title is required"))
	}
	at, err := time.Parse(time.RFC3339, scheduledTime)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create schedule", fmt.Errorf("scheduled_time: %w", err))
	}

	schedule := &domain.Schedule{
		ID:               uuid.NewString(),
		Title:            title,
		Description:      description,
		ScheduledTime:    at.UTC(),
		NotificationType: notificationType,
		CreatedAt:        time.Now().UTC(),
	}
	if err := uc.schedules.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("store schedule: %w", err)
	}
	return schedule, nil
}

func (uc *SchedulesUseCase) List(ctx context.Context) ([]domain.Schedule, error) {
	schedules, err := uc.schedules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

func (uc *SchedulesUseCase) ListUpcoming(ctx context.Context) ([]domain.Schedule, error) {
	schedules, err := uc.schedules.ListUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list upcoming schedules: %w", err)
	}
	return schedules, nil
}

func (uc *SchedulesUseCase) MarkCompleted(ctx context.Context, id string) error {
	if err := uc.schedules.MarkCompleted(ctx, id); err != nil {
		return fmt.Errorf("complete schedule: %w", err)
	}
	return nil
}
