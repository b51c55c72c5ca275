package retrieval

import (
	"strings"

	"omnirag/internal/docstore"
)

const (
	phraseContentBonus  = 10
	phraseTitleBonus    = 20
	keywordContentBonus = 1
	keywordTitleBonus   = 3
)

// Score computes the relevance of doc to query. The query as a whole
// phrase is worth more than its individual keywords, and title matches
// are worth more than content matches. A keyword repeated in the query
// is credited once per occurrence. The result is never negative, and the
// function is pure: identical inputs always produce identical scores.
func Score(query string, doc docstore.Document) int {
	normalizedQuery := Normalize(query)
	content := Normalize(doc.Content)
	title := Normalize(doc.Title)

	score := 0
	if strings.Contains(content, normalizedQuery) {
		score += phraseContentBonus
	}
	if strings.Contains(title, normalizedQuery) {
		score += phraseTitleBonus
	}

	for _, keyword := range Tokenize(normalizedQuery) {
		if strings.Contains(content, keyword) {
			score += keywordContentBonus
		}
		if strings.Contains(title, keyword) {
			score += keywordTitleBonus
		}
	}
	return score
}
