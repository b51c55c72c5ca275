package handlers

import (
	"net/http"
	"time"

	"omnirag/internal/docstore"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	store docstore.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store docstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Documents int    `json:"documents"`
}

// ServeHTTP handles HTTP requests for health checks.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Documents: len(h.store.List(r.Context())),
	})
}
