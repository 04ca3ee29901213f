package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO notes (id, title, content, summary_id, created_at)
VALUES ($1,$2,$3,$4,$5)
`, note.ID, note.Title, note.Content, note.SummaryID, note.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, content, summary_id, created_at
FROM notes
WHERE id = $1
`, id)

	var note domain.Note
	err := row.Scan(&note.ID, &note.Title, &note.Content, &note.SummaryID, &note.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrNotFound, "get note", fmt.Errorf("id=%s", id))
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return &note, nil
}

func (r *NoteRepository) List(ctx context.Context) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, content, summary_id, created_at
FROM notes
ORDER BY created_at DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Note, 0)
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.SummaryID, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note row: %w", err)
		}
		out = append(out, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return out, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrNotFound, "delete note", fmt.Errorf("id=%s", id))
	}
	return nil
}
