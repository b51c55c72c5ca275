package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"omnirag/internal/contextutil"
	"omnirag/internal/history"
	"omnirag/internal/service"
)

// HistoryHandler serves the chat transcript and records feedback.
type HistoryHandler struct {
	transcript *history.Log
	metrics    *service.MetricsService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(transcript *history.Log, metrics *service.MetricsService) *HistoryHandler {
	return &HistoryHandler{transcript: transcript, metrics: metrics}
}

// FeedbackRequest is the payload for rating a model reply.
type FeedbackRequest struct {
	Feedback history.Feedback `json:"feedback"`
}

// List returns the transcript in exchange order.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.transcript.List(r.Context()))
}

// Feedback records the user's verdict on a message.
func (h *HistoryHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	id := chi.URLParam(r, "id")

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.Feedback {
	case history.FeedbackNone, history.FeedbackPositive, history.FeedbackNegative:
	default:
		writeError(w, http.StatusBadRequest, "Feedback must be positive, negative or empty")
		return
	}

	if err := h.transcript.SetFeedback(ctx, id, req.Feedback); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Message not found")
			return
		}
		logger.ErrorContext(ctx, "failed to record feedback", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to record feedback")
		return
	}
	h.metrics.RecordFeedback(req.Feedback)

	logger.InfoContext(ctx, "feedback recorded", "id", id, "feedback", req.Feedback)
	w.WriteHeader(http.StatusNoContent)
}
