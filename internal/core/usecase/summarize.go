package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
	"github.com/kirillkom/resource-assistant/internal/core/ports"
)

const ellipsisMarker = "..."

const (
	noteInstruction     = "Summarize the following note:"
	documentInstruction = "Summarize the following document:"
	refreshInstruction  = "Create an improved summary:"
)

// SummarizerConfig bounds the offline excerpts and the online sample/output.
type SummarizerConfig struct {
	NoteExcerptRunes     int
	DocumentExcerptRunes int
	OnlineSampleRunes    int
	NoteMaxTokens        int
	DocumentMaxTokens    int
}

func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{
		NoteExcerptRunes:     400,
		DocumentExcerptRunes: 500,
		OnlineSampleRunes:    2000,
		NoteMaxTokens:        300,
		DocumentMaxTokens:    400,
	}
}

// excerpt is the offline summarizer: the first limit runes of text, with an
// ellipsis appended only when the text is longer than the limit. Total and
// deterministic.
func excerpt(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + ellipsisMarker
}

func firstRunes(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// SummarizeUseCase composes the offline excerpt and the at-most-one online
// call into a durable summary record.
//
// Create is fail-open: an online failure degrades the record to offline-only
// and never fails the operation. Refresh is fail-closed: the user explicitly
// asked for an online re-summarization, so unavailability and call failures
// surface to the caller and the stored record stays untouched. Keep the
// asymmetry.
type SummarizeUseCase struct {
	store  ports.SummaryStore
	online ports.OnlineSummarizer
	cfg    SummarizerConfig
	logger *slog.Logger
}

func NewSummarizeUseCase(
	store ports.SummaryStore,
	online ports.OnlineSummarizer,
	cfg SummarizerConfig,
	logger *slog.Logger,
) *SummarizeUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummarizeUseCase{
		store:  store,
		online: online,
		cfg:    cfg,
		logger: logger,
	}
}

func (uc *SummarizeUseCase) Create(
	ctx context.Context,
	text string,
	kind domain.SourceKind,
	label string,
) (*domain.Summary, error) {
	excerptLimit := uc.cfg.NoteExcerptRunes
	instruction := noteInstruction
	maxTokens := uc.cfg.NoteMaxTokens
	if kind == domain.SourceDocument {
		excerptLimit = uc.cfg.DocumentExcerptRunes
		instruction = documentInstruction
		maxTokens = uc.cfg.DocumentMaxTokens
	}

	now := time.Now().UTC()
	summary := &domain.Summary{
		ID:             uuid.NewString(),
		SourceKind:     kind,
		SourceLabel:    label,
		FullTextLength: utf8.RuneCountInString(text),
		OfflineSummary: excerpt(text, excerptLimit),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if uc.online.Available() {
		sample := firstRunes(text, uc.cfg.OnlineSampleRunes)
		online, err := uc.online.Summarize(ctx, sample, instruction, maxTokens)
		if err != nil {
			uc.logger.Warn("online_summary_skipped",
				"summary_id", summary.ID,
				"source_kind", string(kind),
				"error", err,
			)
		} else {
			summary.OnlineSummary = online
			summary.HasOnlineSummary = true
		}
	}

	if err := uc.store.Create(ctx, summary); err != nil {
		return nil, fmt.Errorf("store summary: %w", err)
	}
	return summary, nil
}

// Refresh re-attempts the online summary for an existing record, using the
// stored offline summary as input. On success only the online fields change.
func (uc *SummarizeUseCase) Refresh(ctx context.Context, id string) (string, error) {
	if !uc.online.Available() {
		return "", domain.WrapError(domain.ErrUnavailable, "refresh summary", errors.New("no api key configured"))
	}

	summary, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("load summary: %w", err)
	}

	sample := firstRunes(summary.OfflineSummary, uc.cfg.OnlineSampleRunes)
	improved, err := uc.online.Summarize(ctx, sample, refreshInstruction, uc.cfg.DocumentMaxTokens)
	if err != nil {
		return "", fmt.Errorf("refresh online summary: %w", err)
	}

	if err := uc.store.UpdateOnlineSummary(ctx, summary.ID, improved); err != nil {
		return "", fmt.Errorf("store refreshed summary: %w", err)
	}
	return improved, nil
}

func (uc *SummarizeUseCase) List(ctx context.Context) ([]domain.Summary, error) {
	summaries, err := uc.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	return summaries, nil
}
