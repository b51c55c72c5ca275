package extract

import (
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"omnirag/internal/docstore"
)

// MarkdownExtractor lifts a display title out of markdown via goldmark
// AST parsing. The body is kept verbatim so retrieval sees the same text
// the user wrote.
type MarkdownExtractor struct {
	parser goldmark.Markdown
}

// NewMarkdownExtractor creates a new markdown extractor.
func NewMarkdownExtractor() *MarkdownExtractor {
	return &MarkdownExtractor{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// Extract parses the markdown and returns it unchanged as content, with
// the first level-1 heading as the title (first level-2 heading if there
// is no level 1, filename otherwise).
func (e *MarkdownExtractor) Extract(ctx context.Context, filename string, data []byte) (Result, error) {
	title := titleFromFilename(filename)
	if len(data) > 0 {
		doc := e.parser.Parser().Parse(text.NewReader(data))
		if heading := firstHeading(doc, data); heading != "" {
			title = heading
		}
	}

	return Result{
		Title:   title,
		Content: string(data),
		Type:    docstore.TypeMarkdown,
	}, nil
}

// firstHeading returns the text of the first # heading, or the first ##
// heading when no # exists, or "".
func firstHeading(doc ast.Node, content []byte) string {
	var firstH1, firstH2 string

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if heading, ok := n.(*ast.Heading); ok {
			headingText := nodeText(heading, content)
			if heading.Level == 1 && firstH1 == "" {
				firstH1 = headingText
			} else if heading.Level == 2 && firstH2 == "" && firstH1 == "" {
				firstH2 = headingText
			}
			if firstH1 != "" {
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	if firstH1 != "" {
		return firstH1
	}
	return firstH2
}

// nodeText collects the plain text under a node.
func nodeText(n ast.Node, content []byte) string {
	var builder strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			builder.Write(v.Segment.Value(content))
		case *ast.String:
			builder.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(builder.String())
}
