// Package sheet extracts plain text from XLSX uploads.
package sheet

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract joins cell values row by row, sheets in workbook order. Rows become
// space-joined lines; empty rows are dropped; outer whitespace is trimmed.
func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", domain.WrapError(domain.ErrMalformedDocument, "parse spreadsheet", err)
	}
	defer workbook.Close()

	var builder strings.Builder
	for _, sheetName := range workbook.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		rows, err := workbook.GetRows(sheetName)
		if err != nil {
			return "", domain.WrapError(domain.ErrMalformedDocument, "read spreadsheet rows",
				fmt.Errorf("sheet %q: %w", sheetName, err))
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " "))
			if line == "" {
				continue
			}
			builder.WriteString(line)
			builder.WriteString("\n")
		}
	}

	return strings.TrimSpace(builder.String()), nil
}
