package retrieval

import (
	"sort"
	"time"

	"omnirag/internal/docstore"
)

// DefaultLimit is the number of documents handed to generation when the
// caller does not ask for a specific count.
const DefaultLimit = 5

// ScoredCandidate pairs a document with its score and recency key for
// the duration of one retrieval pass. Candidates are never stored; the
// full active set is rescanned on every query.
type ScoredCandidate struct {
	Document   docstore.Document
	Score      int
	RecencyKey int64
}

// Rank scores every active document in docs against query and returns
// the candidates sorted by score descending, with more recently uploaded
// documents ranking higher on ties. Inactive documents never appear.
func Rank(query string, docs []docstore.Document) []ScoredCandidate {
	candidates := make([]ScoredCandidate, 0, len(docs))
	for _, doc := range docs {
		if !doc.Active {
			continue
		}
		candidates = append(candidates, ScoredCandidate{
			Document:   doc,
			Score:      Score(query, doc),
			RecencyKey: recencyKey(doc.UploadDate),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].RecencyKey > candidates[j].RecencyKey
	})
	return candidates
}

// Select returns the ordered top documents for query, at most limit of
// them. Only documents with a positive score are taken. If nothing
// scores above zero but active documents exist, the score cutoff is
// dropped and the most recent documents are returned instead, so
// generation always receives some context when any active document
// exists (context stuffing). An empty active set yields an empty result.
func Select(query string, docs []docstore.Document, limit int) []docstore.Document {
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates := Rank(query, docs)
	if len(candidates) == 0 {
		return nil
	}

	selected := make([]docstore.Document, 0, limit)
	for _, candidate := range candidates {
		if candidate.Score <= 0 {
			break
		}
		selected = append(selected, candidate.Document)
		if len(selected) == limit {
			break
		}
	}

	if len(selected) == 0 {
		// Context stuffing: all candidates are tied at zero, so this is
		// simply most-recent-first.
		for _, candidate := range candidates {
			selected = append(selected, candidate.Document)
			if len(selected) == limit {
				break
			}
		}
	}
	return selected
}

// recencyKey parses an upload date into a millisecond timestamp for
// tiebreaking. Unparseable dates sort as oldest rather than failing.
func recencyKey(uploadDate string) int64 {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, uploadDate); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
