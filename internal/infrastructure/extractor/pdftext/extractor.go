// Package pdftext extracts plain text from PDF uploads.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract concatenates per-page text in document order, pages joined by a
// single newline, with outer whitespace trimmed. Unparseable input yields
// ErrMalformedDocument and no partial result. The pdf package panics on some
// malformed files; the recover folds those into the same error kind.
func (e *Extractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = domain.WrapError(domain.ErrMalformedDocument, "parse pdf", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.WrapError(domain.ErrMalformedDocument, "parse pdf", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			// Keep the page slot so ordering survives; the page just has no content.
			pages = append(pages, "")
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", domain.WrapError(domain.ErrMalformedDocument, "extract pdf page",
				fmt.Errorf("page %d: %w", pageNum, err))
		}
		pages = append(pages, pageText)
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}
