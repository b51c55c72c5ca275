package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"omnirag/internal/docstore"
)

// maxPDFPages caps extraction so very large uploads stay responsive
// while still capturing most content.
const maxPDFPages = 50

// PDFExtractor extracts per-page text from PDF uploads using pdfcpu.
type PDFExtractor struct {
	conf *model.Configuration
}

// NewPDFExtractor creates a new PDF extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{
		conf: model.NewDefaultConfiguration(),
	}
}

// Extract parses the PDF and concatenates per-page content with page
// boundary markers, stopping after maxPDFPages pages. Callers convert
// any error into the fixed placeholder content; extraction failures
// never block ingestion.
func (e *PDFExtractor) Extract(ctx context.Context, filename string, data []byte) (Result, error) {
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), e.conf)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read pdf: %w", err)
	}

	pageCount := pdfCtx.PageCount
	if pageCount > maxPDFPages {
		pageCount = maxPDFPages
	}

	var builder strings.Builder
	for pageNr := 1; pageNr <= pageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		reader, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
		if err != nil {
			return Result{}, fmt.Errorf("failed to extract page %d: %w", pageNr, err)
		}
		if reader == nil {
			continue
		}

		content, err := io.ReadAll(reader)
		if err != nil {
			return Result{}, fmt.Errorf("failed to read page %d content: %w", pageNr, err)
		}

		fmt.Fprintf(&builder, "--- Page %d ---\n%s\n\n", pageNr, printableText(content))
	}

	return Result{
		Title:   titleFromFilename(filename),
		Content: builder.String(),
		Type:    docstore.TypePDF,
	}, nil
}

// printableText reduces a raw page content stream to its printable
// runes. Operator noise remains, but the literal text survives, which is
// what keyword retrieval needs.
func printableText(raw []byte) string {
	var builder strings.Builder
	builder.Grow(len(raw))
	for _, r := range string(raw) {
		if r == '\n' || r == '\t' || (r >= 0x20 && r != 0xFFFD) {
			builder.WriteRune(r)
		}
	}
	return strings.TrimSpace(builder.String())
}
