package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

func newSummaryRepoWithMock(t *testing.T) (*SummaryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &SummaryRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestSummaryGetByIDReturnsNotFound(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, source_kind, source_label").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSummaryGetByIDScansNullOnlineSummary(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "source_kind", "source_label", "full_text_length",
		"offline_summary", "online_summary", "has_online_summary", "created_at", "updated_at",
	}).AddRow("s-1", "document", "report.pdf", 1200, "excerpt...", nil, false, now, now)

	mock.ExpectQuery("SELECT id, source_kind, source_label").
		WithArgs("s-1").
		WillReturnRows(rows)

	summary, err := repo.GetByID(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if summary.OnlineSummary != "" || summary.HasOnlineSummary {
		t.Fatalf("expected absent online summary, got %+v", summary)
	}
	if summary.SourceKind != domain.SourceDocument {
		t.Fatalf("expected document kind, got %s", summary.SourceKind)
	}
}

func TestUpdateOnlineSummaryReturnsNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE summaries").
		WithArgs("missing", "new summary", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOnlineSummary(context.Background(), "missing", "new summary")
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSummaryCreateBindsAllFields(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	summary := &domain.Summary{
		ID:               "s-2",
		SourceKind:       domain.SourceNote,
		SourceLabel:      "Meeting",
		FullTextLength:   42,
		OfflineSummary:   "excerpt",
		OnlineSummary:    "ai summary",
		HasOnlineSummary: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	mock.ExpectExec("INSERT INTO summaries").
		WithArgs("s-2", "note", "Meeting", 42, "excerpt", sqlmock.AnyArg(), true, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), summary); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
