package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

type ScheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = `id, title, description, scheduled_time, notification_type, is_completed, notified_at, created_at`

func (r *ScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO schedules (`+scheduleColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`,
		schedule.ID, schedule.Title, schedule.Description, schedule.ScheduledTime,
		schedule.NotificationType, schedule.IsCompleted, schedule.NotifiedAt, schedule.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) List(ctx context.Context) ([]domain.Schedule, error) {
	return r.query(ctx, `
SELECT `+scheduleColumns+`
FROM schedules
ORDER BY scheduled_time ASC
`)
}

func (r *ScheduleRepository) ListUpcoming(ctx context.Context, after time.Time) ([]domain.Schedule, error) {
	return r.query(ctx, `
SELECT `+scheduleColumns+`
FROM schedules
WHERE scheduled_time >= $1 AND NOT is_completed
ORDER BY scheduled_time ASC
`, after)
}

// ListDue returns uncompleted schedules whose time has passed and that have
// not been announced yet.
func (r *ScheduleRepository) ListDue(ctx context.Context, now time.Time) ([]domain.Schedule, error) {
	return r.query(ctx, `
SELECT `+scheduleColumns+`
FROM schedules
WHERE scheduled_time <= $1 AND NOT is_completed AND notified_at IS NULL
ORDER BY scheduled_time ASC
`, now)
}

func (r *ScheduleRepository) MarkCompleted(ctx context.Context, id string) error {
	return r.setFlag(ctx, "complete schedule", `
UPDATE schedules SET is_completed = TRUE WHERE id = $1
`, id)
}

func (r *ScheduleRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	return r.setFlag(ctx, "mark schedule notified", `
UPDATE schedules SET notified_at = $2 WHERE id = $1
`, id, at)
}

func (r *ScheduleRepository) query(ctx context.Context, query string, args ...any) ([]domain.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Schedule, 0)
	for rows.Next() {
		var schedule domain.Schedule
		var notifiedAt sql.NullTime
		err := rows.Scan(
			&schedule.ID, &schedule.Title, &schedule.Description, &schedule.ScheduledTime,
			&schedule.NotificationType, &schedule.IsCompleted, &notifiedAt, &schedule.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		if notifiedAt.Valid {
			at := notifiedAt.Time
			schedule.NotifiedAt = &at
		}
		out = append(out, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules: %w", err)
	}
	return out, nil
}

func (r *ScheduleRepository) setFlag(ctx context.Context, operation, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", operation, err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrNotFound, operation, fmt.Errorf("%v", args[0]))
	}
	return nil
}
