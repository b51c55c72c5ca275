package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_generator.go -package=mocks omnirag/internal/rag Generator
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks -mock_names=Engine=MockEngine omnirag/internal/rag Engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"omnirag/internal/contextutil"
	"omnirag/internal/retrieval"
)

// Generator produces text for an assembled prompt. This interface is
// defined from the engine's perspective (consumer-first); the concrete
// implementation is the llm client.
type Generator interface {
	// Generate sends the prompt and system instruction to the
	// generation service and returns the model's text.
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// Engine runs the retrieval-augmented generation cycle.
type Engine interface {
	// Answer retrieves context for the query from the given document
	// snapshot, calls generation, and returns the exchange outcome.
	// Answer is total: generation failures are converted into fixed
	// user-facing text, never returned as errors.
	Answer(ctx context.Context, req AnswerRequest) AnswerResponse
}

// ragEngine implements the Engine interface.
type ragEngine struct {
	generator Generator
	limit     int
	logger    *slog.Logger
}

// NewEngine creates a new RAG engine. limit caps how many documents are
// passed as context per query; zero means the retrieval default.
func NewEngine(generator Generator, limit int) Engine {
	if limit <= 0 {
		limit = retrieval.DefaultLimit
	}
	return &ragEngine{
		generator: generator,
		limit:     limit,
		logger:    slog.Default(),
	}
}

// Answer runs one retrieval-plus-generation cycle.
func (e *ragEngine) Answer(ctx context.Context, req AnswerRequest) AnswerResponse {
	started := time.Now()
	logger := contextutil.LoggerFromContext(ctx)

	limit := req.Limit
	if limit <= 0 {
		limit = e.limit
	}

	selected := retrieval.Select(req.Query, req.Documents, limit)
	contextBlock := retrieval.AssembleContext(selected)

	// Any document with a positive score would have ranked first and
	// passed the cutoff, so a zero-scoring leader means the selection
	// came from the fallback path.
	fallback := len(selected) > 0 && retrieval.Score(req.Query, selected[0]) == 0
	if fallback {
		logger.InfoContext(ctx, "no keyword matches, falling back to most recent active documents",
			"selected", len(selected),
		)
	}

	titles := make([]string, 0, len(selected))
	for _, doc := range selected {
		titles = append(titles, doc.Title)
	}

	instruction := req.SystemInstruction
	if instruction == "" {
		instruction = BaseSystemInstruction
	}

	prompt := fmt.Sprintf("%s\n\nUSER QUERY: %s\n\nRESPONSE:\n", contextBlock, req.Query)

	logger.InfoContext(ctx, "RAG query started",
		"query_length", len(req.Query),
		"documents", len(req.Documents),
		"selected", len(selected),
		"context_length", len(contextBlock),
	)
	logger.DebugContext(ctx, "retrieved context", "titles", titles)

	text, err := e.generator.Generate(ctx, prompt, instruction)
	if err != nil {
		logger.ErrorContext(ctx, "generation failed", "error", err)
		return AnswerResponse{
			Text:             GenerationErrorText,
			RetrievedContext: []string{},
			Fallback:         fallback,
			LatencyMs:        time.Since(started).Milliseconds(),
		}
	}
	if text == "" {
		logger.WarnContext(ctx, "generation returned an empty body")
		text = EmptyGenerationText
	}

	latency := time.Since(started).Milliseconds()
	logger.InfoContext(ctx, "RAG query completed",
		"answer_length", len(text),
		"latency_ms", latency,
	)

	return AnswerResponse{
		Text:             text,
		RetrievedContext: titles,
		Fallback:         fallback,
		LatencyMs:        latency,
	}
}
