package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

type SummaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

func (r *SummaryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SummaryRepository) Create(ctx context.Context, summary *domain.Summary) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO summaries (
	id, source_kind, source_label, full_text_length, offline_summary, online_summary, has_online_summary, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`,
		summary.ID, string(summary.SourceKind), summary.SourceLabel, summary.FullTextLength,
		summary.OfflineSummary, nullString(summary.OnlineSummary), summary.HasOnlineSummary,
		summary.CreatedAt, summary.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}
	return nil
}

func (r *SummaryRepository) GetByID(ctx context.Context, id string) (*domain.Summary, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, source_kind, source_label, full_text_length, offline_summary, online_summary, has_online_summary, created_at, updated_at
FROM summaries
WHERE id = $1
`, id)

	summary, err := scanSummary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrNotFound, "get summary", fmt.Errorf("id=%s", id))
		}
		return nil, fmt.Errorf("scan summary: %w", err)
	}
	return summary, nil
}

func (r *SummaryRepository) List(ctx context.Context) ([]domain.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, source_kind, source_label, full_text_length, offline_summary, online_summary, has_online_summary, created_at, updated_at
FROM summaries
ORDER BY created_at DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Summary, 0)
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, *summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}
	return out, nil
}

// UpdateOnlineSummary is the only mutation allowed after creation.
func (r *SummaryRepository) UpdateOnlineSummary(ctx context.Context, id, onlineSummary string) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE summaries
SET online_summary = $2, has_online_summary = TRUE, updated_at = $3
WHERE id = $1
`, id, onlineSummary, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update online summary: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update online summary rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrNotFound, "update online summary", fmt.Errorf("id=%s", id))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (*domain.Summary, error) {
	var summary domain.Summary
	var kind string
	var online sql.NullString

	err := row.Scan(
		&summary.ID, &kind, &summary.SourceLabel, &summary.FullTextLength,
		&summary.OfflineSummary, &online, &summary.HasOnlineSummary,
		&summary.CreatedAt, &summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	summary.SourceKind = domain.SourceKind(kind)
	summary.OnlineSummary = online.String
	return &summary, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
