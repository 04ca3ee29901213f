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

// NotesUseCase handles note CRUD. Creating a note also produces a summary
// record through the summarization pipeline; the note keeps a reference to it.
type NotesUseCase struct {
	notes      ports.NoteStore
	summarizer ports.SummaryService
}

func NewNotesUseCase(notes ports.NoteStore, summarizer ports.SummaryService) *NotesUseCase {
	return &NotesUseCase{
		notes:      notes,
		summarizer: summarizer,
	}
}

func (uc *NotesUseCase) Create(ctx context.Context, title, content string) (*domain.Note, *domain.Summary, error) {
	if strings.TrimSpace(title) == "" {
		return nil, nil, domain.WrapError(domain.ErrInvalidInput, "create note", errors.New("title is required"))
	}
	if strings.TrimSpace(content) == "" {
		return nil, nil, domain.WrapError(domain.ErrInvalidInput, "create note", errors.New("content is required"))
	}

	summary, err := uc.summarizer.Create(ctx, content, domain.SourceNote, title)
	if err != nil {
		return nil, nil, fmt.Errorf("summarize note: %w", err)
	}

	note := &domain.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		SummaryID: summary.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.notes.Create(ctx, note); err != nil {
		return nil, nil, fmt.Errorf("store note: %w", err)
	}
	return note, summary, nil
}

func (uc *NotesUseCase) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	note, err := uc.notes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load note: %w", err)
	}
	return note, nil
}

func (uc *NotesUseCase) List(ctx context.Context) ([]domain.Note, error) {
	notes, err := uc.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (uc *NotesUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
