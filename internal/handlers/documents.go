package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"omnirag/internal/contextutil"
	"omnirag/internal/docstore"
	"omnirag/internal/extract"
)

// maxUploadBytes bounds multipart uploads.
const maxUploadBytes = 20 << 20

// DocumentsHandler handles knowledge base management requests.
type DocumentsHandler struct {
	store docstore.Store
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(store docstore.Store) *DocumentsHandler {
	return &DocumentsHandler{store: store}
}

// CreateDocumentRequest is the payload for pasting a document directly.
type CreateDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SetActiveRequest is the payload for toggling retrieval eligibility.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// List returns all documents.
func (h *DocumentsHandler) List(w http.ResponseWriter, r *http.Request) {
	docs := h.store.List(r.Context())
	writeJSON(w, http.StatusOK, docs)
}

// Create ingests a document from pasted title and content.
func (h *DocumentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	doc := docstore.Document{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Type:       extract.TypeForFilename(req.Title),
		Content:    req.Content,
		UploadDate: time.Now().Format("2006-01-02"),
		Active:     true,
	}
	if err := h.store.Add(ctx, doc); err != nil {
		logger.ErrorContext(ctx, "failed to add document", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add document")
		return
	}

	logger.InfoContext(ctx, "document ingested", "id", doc.ID, "title", doc.Title, "type", doc.Type)
	writeJSON(w, http.StatusCreated, doc)
}

// Upload ingests a document from a multipart file upload, extracting
// text according to the file type. Extraction failures produce a
// placeholder body instead of blocking ingestion.
func (h *DocumentsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "missing or oversized file field", "error", err)
		writeError(w, http.StatusBadRequest, "A file field is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.WarnContext(ctx, "failed to read upload", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to read upload")
		return
	}

	docType := extract.TypeForFilename(header.Filename)
	result, err := extract.ForType(docType).Extract(ctx, header.Filename, data)
	if err != nil {
		logger.WarnContext(ctx, "extraction failed, ingesting placeholder",
			"filename", header.Filename,
			"error", err,
		)
		result = extract.Result{
			Title:   header.Filename,
			Content: extract.FailurePlaceholder,
			Type:    docType,
		}
	}

	if title := r.FormValue("title"); title != "" {
		result.Title = title
	}

	doc := docstore.Document{
		ID:         uuid.NewString(),
		Title:      result.Title,
		Type:       result.Type,
		Content:    result.Content,
		UploadDate: time.Now().Format("2006-01-02"),
		Active:     true,
	}
	if err := h.store.Add(ctx, doc); err != nil {
		logger.ErrorContext(ctx, "failed to add document", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add document")
		return
	}

	logger.InfoContext(ctx, "document uploaded", "id", doc.ID, "title", doc.Title, "type", doc.Type, "bytes", len(data))
	writeJSON(w, http.StatusCreated, doc)
}

// SetActive toggles a document's retrieval eligibility.
func (h *DocumentsHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	id := chi.URLParam(r, "id")

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.SetActive(ctx, id, req.Active); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}
		logger.ErrorContext(ctx, "failed to toggle document", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update document")
		return
	}

	logger.InfoContext(ctx, "document toggled", "id", id, "active", req.Active)
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a document permanently.
func (h *DocumentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}
		logger.ErrorContext(ctx, "failed to delete document", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	logger.InfoContext(ctx, "document deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
