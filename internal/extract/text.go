package extract

import (
	"context"

	"omnirag/internal/docstore"
)

// TextExtractor passes plain text through unchanged.
type TextExtractor struct{}

// Extract returns the file body as-is with a title derived from the
// filename. It cannot fail.
func (TextExtractor) Extract(ctx context.Context, filename string, data []byte) (Result, error) {
	return Result{
		Title:   titleFromFilename(filename),
		Content: string(data),
		Type:    docstore.TypeText,
	}, nil
}
