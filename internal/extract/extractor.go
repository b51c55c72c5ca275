// Package extract turns uploaded files into document titles and text
// bodies. The retrieval core depends only on the Extractor interface;
// the concrete PDF, Markdown and plain-text implementations live here at
// the ingestion boundary.
package extract

import (
	"context"
	"path/filepath"
	"strings"
	"unicode"

	"omnirag/internal/docstore"
)

// FailurePlaceholder replaces the content of a document whose file could
// not be parsed. Ingestion proceeds anyway; the user is expected to edit
// or re-upload manually.
const FailurePlaceholder = "Error reading file. Please try copy-pasting the content."

// Result is the outcome of extracting one uploaded file.
type Result struct {
	Title   string
	Content string
	Type    docstore.DocType
}

// Extractor converts raw uploaded bytes into document text.
type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) (Result, error)
}

// TypeForFilename maps a filename extension to a document type.
func TypeForFilename(filename string) docstore.DocType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return docstore.TypePDF
	case ".md", ".markdown":
		return docstore.TypeMarkdown
	default:
		return docstore.TypeText
	}
}

// ForType returns the extractor for a document type.
func ForType(docType docstore.DocType) Extractor {
	switch docType {
	case docstore.TypePDF:
		return NewPDFExtractor()
	case docstore.TypeMarkdown:
		return NewMarkdownExtractor()
	default:
		return TextExtractor{}
	}
}

// titleFromFilename derives a display title from a filename by dropping
// the extension and capitalizing each word.
func titleFromFilename(filename string) string {
	name := filepath.Base(filename)
	ext := filepath.Ext(name)
	if ext != "" {
		name = name[:len(name)-len(ext)]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
