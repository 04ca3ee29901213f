package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

// buildTwoPagePDF assembles a minimal two-page PDF with one text run per
// page, computing the cross-reference offsets as the objects are written.
func buildTwoPagePDF(t *testing.T, firstText, secondText string) []byte {
	t.Helper()

	contentStream := func(text string) string {
		return fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	}
	streamObject := func(text string) string {
		body := contentStream(text)
		return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(body), body)
	}
	pageObject := func(contentsRef string) string {
		return "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 7 0 R >> >> /Contents " + contentsRef + " >>"
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 5 0 R] /Count 2 >>",
		pageObject("4 0 R"),
		streamObject(firstText),
		pageObject("6 0 R"),
		streamObject(secondText),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, body := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)
	return buf.Bytes()
}

func TestExtractMultiPageJoinsPagesInOrder(t *testing.T) {
	extractor := NewExtractor()

	data := buildTwoPagePDF(t, "alpha page", "beta page")
	got, err := extractor.Extract(context.Background(), data)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if got != "alpha page\n\nbeta page" {
		t.Fatalf("unexpected extracted text %q", got)
	}
	if strings.Index(got, "alpha page") > strings.Index(got, "beta page") {
		t.Fatalf("pages out of document order: %q", got)
	}
	if got != strings.TrimSpace(got) {
		t.Fatalf("expected outer whitespace trimmed, got %q", got)
	}
}

func TestExtractGarbageBytesReturnsMalformedDocument(t *testing.T) {
	extractor := NewExtractor()

	for _, input := range [][]byte{
		[]byte("this is not a pdf"),
		[]byte{},
		[]byte("%PDF-1.4 truncated without trailer"),
	} {
		text, err := extractor.Extract(context.Background(), input)
		if !domain.IsKind(err, domain.ErrMalformedDocument) {
			t.Fatalf("Extract(%q) expected ErrMalformedDocument, got %v", input, err)
		}
		if text != "" {
			t.Fatalf("expected no partial result, got %q", text)
		}
	}
}
