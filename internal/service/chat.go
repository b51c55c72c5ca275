package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService omnirag/internal/service ChatService

import (
	"context"
	"log/slog"

	"omnirag/internal/contextutil"
	"omnirag/internal/docstore"
	"omnirag/internal/history"
	"omnirag/internal/rag"
)

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message string
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	Reply            string
	RetrievedContext []string
	LatencyMs        int64
}

// ChatService runs user queries through retrieval and generation and
// maintains the conversation transcript.
type ChatService interface {
	// ProcessChat processes a chat request and returns a response.
	ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// chatService implements ChatService.
type chatService struct {
	engine     rag.Engine
	store      docstore.Store
	settings   *SettingsService
	transcript *history.Log
	metrics    *MetricsService
	logger     *slog.Logger
}

// NewChatService creates a new ChatService.
func NewChatService(
	engine rag.Engine,
	store docstore.Store,
	settings *SettingsService,
	transcript *history.Log,
	metrics *MetricsService,
) ChatService {
	return &chatService{
		engine:     engine,
		store:      store,
		settings:   settings,
		transcript: transcript,
		metrics:    metrics,
		logger:     slog.Default(),
	}
}

// ProcessChat validates the message, snapshots the document collection,
// runs the RAG cycle and records the exchange in the transcript.
func (s *chatService) ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Message == "" {
		logger.WarnContext(ctx, "empty message in chat request")
		return ChatResponse{}, &ValidationError{
			Field:   "message",
			Message: "cannot be empty",
		}
	}

	documents := s.store.List(ctx)
	s.transcript.AppendUser(ctx, req.Message)

	answer := s.engine.Answer(ctx, rag.AnswerRequest{
		Query:             req.Message,
		Documents:         documents,
		SystemInstruction: s.settings.Instruction(),
	})

	s.transcript.AppendModel(ctx, answer.Text, answer.RetrievedContext, answer.LatencyMs)
	s.metrics.RecordQuery(answer.LatencyMs, answer.Fallback)

	logger.InfoContext(ctx, "chat request processed",
		"message_length", len(req.Message),
		"reply_length", len(answer.Text),
		"context_documents", len(answer.RetrievedContext),
		"latency_ms", answer.LatencyMs,
	)

	return ChatResponse{
		Reply:            answer.Text,
		RetrievedContext: answer.RetrievedContext,
		LatencyMs:        answer.LatencyMs,
	}, nil
}
