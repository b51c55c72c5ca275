package retrieval

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and strips every rune that is neither a word
// character (letter, digit, underscore) nor whitespace. Queries, titles
// and content all pass through here before any comparison; nothing in
// this package ever compares un-normalized text.
func Normalize(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Tokenize splits normalized text on whitespace runs and drops tokens
// shorter than 2 runes. Single-character remnants disappear, but short
// acronyms like "ai" or "hr" survive. Order of first appearance is kept
// and duplicates are not collapsed; the scorer counts each occurrence.
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len([]rune(field)) < 2 {
			continue
		}
		tokens = append(tokens, field)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
