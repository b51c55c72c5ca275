package docstore

// DocType identifies the format a document was ingested from.
// It is informational only and plays no role in retrieval.
type DocType string

const (
	TypePDF      DocType = "PDF"
	TypeMarkdown DocType = "Markdown"
	TypeText     DocType = "Text"
)

// Document is a single entry in the knowledge base.
// A document is immutable after ingestion except for Active,
// which the user toggles to include or exclude it from retrieval.
type Document struct {
	// ID is a UUID, stable for the document's lifetime.
	ID string `json:"id"`
	// Title is the display name and a retrieval signal.
	Title string `json:"title"`
	// Type records the ingestion format (PDF, Markdown or Text).
	Type DocType `json:"type"`
	// Content is the full extracted text body.
	Content string `json:"content"`
	// UploadDate is the ingestion date in "2006-01-02" form,
	// used only as a recency tiebreak during retrieval.
	UploadDate string `json:"upload_date"`
	// Active marks whether the document participates in retrieval.
	Active bool `json:"active"`
}
