package handlers

import (
	"net/http"

	"omnirag/internal/service"
)

// MetricsHandler serves the evaluation dashboard payload.
type MetricsHandler struct {
	metrics *service.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// ServeHTTP handles HTTP requests for metrics.
func (h *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.metrics.Report())
}
