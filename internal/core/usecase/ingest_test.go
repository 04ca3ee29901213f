package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
	"github.com/kirillkom/resource-assistant/internal/core/ports"
)

type extractorFake struct {
	text  string
	err   error
	calls int
}

func (f *extractorFake) Extract(_ context.Context, _ []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type summaryServiceFake struct {
	created     *domain.Summary
	createdText string
	createdKind domain.SourceKind
	err         error
}

func (f *summaryServiceFake) Create(_ context.Context, text string, kind domain.SourceKind, label string) (*domain.Summary, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdText = text
	f.createdKind = kind
	f.created = &domain.Summary{ID: "s-1", SourceKind: kind, SourceLabel: label, OfflineSummary: text}
	return f.created, nil
}

func (f *summaryServiceFake) Refresh(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *summaryServiceFake) List(context.Context) ([]domain.Summary, error) {
	return nil, errors.New("not implemented")
}

func TestUploadExtractsAndSummarizes(t *testing.T) {
	pdf := &extractorFake{text: "page one\npage two"}
	summarizer := &summaryServiceFake{}
	uc := NewIngestDocumentUseCase(pdf, nil, summarizer)

	summary, err := uc.Upload(context.Background(), "report.pdf", []byte("%PDF-"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if summarizer.createdText != "page one\npage two" {
		t.Fatalf("expected extracted text passed through, got %q", summarizer.createdText)
	}
	if summarizer.createdKind != domain.SourceDocument {
		t.Fatalf("expected document source kind, got %s", summarizer.createdKind)
	}
	if summary.SourceLabel != "report.pdf" {
		t.Fatalf("expected filename as label, got %q", summary.SourceLabel)
	}
}

func TestUploadMalformedDocumentStoresNothing(t *testing.T) {
	pdf := &extractorFake{err: domain.WrapError(domain.ErrMalformedDocument, "parse pdf", errors.New("bad xref"))}
	summarizer := &summaryServiceFake{}
	uc := NewIngestDocumentUseCase(pdf, nil, summarizer)

	_, err := uc.Upload(context.Background(), "broken.pdf", []byte("not a pdf"))
	if !domain.IsKind(err, domain.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
	if summarizer.created != nil {
		t.Fatalf("expected no summary created on extraction failure")
	}
}

func TestUploadRoutesByExtension(t *testing.T) {
	pdf := &extractorFake{text: "pdf text"}
	sheet := &extractorFake{text: "sheet text"}
	summarizer := &summaryServiceFake{}
	uc := NewIngestDocumentUseCase(pdf, map[string]ports.TextExtractor{".xlsx": sheet}, summarizer)

	if _, err := uc.Upload(context.Background(), "Budget.XLSX", []byte("PK")); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if sheet.calls != 1 || pdf.calls != 0 {
		t.Fatalf("expected xlsx routed to sheet extractor, pdf=%d sheet=%d", pdf.calls, sheet.calls)
	}

	if _, err := uc.Upload(context.Background(), "notes.bin", []byte("data")); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if pdf.calls != 1 {
		t.Fatalf("expected unknown extension to fall back to pdf extractor")
	}
}

func TestUploadEmptyFileRejected(t *testing.T) {
	uc := NewIngestDocumentUseCase(&extractorFake{}, nil, &summaryServiceFake{})

	_, err := uc.Upload(context.Background(), "empty.pdf", nil)
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
