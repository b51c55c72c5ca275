package retrieval

import (
	"fmt"
	"strings"

	"omnirag/internal/docstore"
)

// NoContextSentinel is the context block sent to generation when
// retrieval produced nothing.
const NoContextSentinel = "CONTEXT: No relevant documents found in knowledge base."

const snippetSeparator = "\n\n---\n\n"

// AssembleContext renders the selected documents into the context block
// of a generation prompt. Input order is preserved exactly; it signals
// relative relevance to the model and to anything inspecting the
// retrieved-context record of an exchange.
func AssembleContext(selected []docstore.Document) string {
	if len(selected) == 0 {
		return NoContextSentinel
	}

	var builder strings.Builder
	builder.WriteString("CONTEXT:\n")
	for i, doc := range selected {
		if i > 0 {
			builder.WriteString(snippetSeparator)
		}
		fmt.Fprintf(&builder, "Source: %s\nContent: %s", doc.Title, doc.Content)
	}
	return builder.String()
}
