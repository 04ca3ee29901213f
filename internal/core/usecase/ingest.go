package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
	"github.com/kirillkom/resource-assistant/internal/core/ports"
)

// IngestDocumentUseCase turns an uploaded document into a summary record.
// The extractor is chosen by file extension; unknown extensions fall back to
// the default (PDF) extractor. Extraction failure aborts the upload before
// anything is stored.
type IngestDocumentUseCase struct {
	extractors map[string]ports.TextExtractor
	fallback   ports.TextExtractor
	summarizer ports.SummaryService
}

func NewIngestDocumentUseCase(
	fallback ports.TextExtractor,
	extractors map[string]ports.TextExtractor,
	summarizer ports.SummaryService,
) *IngestDocumentUseCase {
	return &IngestDocumentUseCase{
		extractors: extractors,
		fallback:   fallback,
		summarizer: summarizer,
	}
}

func (uc *IngestDocumentUseCase) Upload(ctx context.Context, filename string, data []byte) (*domain.Summary, error) {
	if len(data) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "upload document", fmt.Errorf("empty file %q", filename))
	}

	text, err := uc.extractorFor(filename).Extract(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	summary, err := uc.summarizer.Create(ctx, text, domain.SourceDocument, filename)
	if err != nil {
		return nil, fmt.Errorf("summarize document: %w", err)
	}
	return summary, nil
}

func (uc *IngestDocumentUseCase) extractorFor(filename string) ports.TextExtractor {
	ext := strings.ToLower(filepath.Ext(filename))
	if extractor, ok := uc.extractors[ext]; ok {
		return extractor
	}
	return uc.fallback
}
