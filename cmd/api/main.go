package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"omnirag/internal/config"
	"omnirag/internal/docstore"
	"omnirag/internal/history"
	"omnirag/internal/http"
	"omnirag/internal/llm"
	"omnirag/internal/rag"
	"omnirag/internal/service"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx := context.Background()

	// Initialize the in-memory knowledge base
	store := docstore.NewMemoryStore()
	if cfg.SeedDocuments {
		if err := docstore.Seed(ctx, store); err != nil {
			log.Fatalf("Failed to seed documents: %v", err)
		}
		slog.Info("Knowledge base seeded", "documents", len(store.List(ctx)))
	}

	// Create the generation client (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.Temperature, cfg.GenTimeout)

	// Create the RAG engine
	ragEngine := rag.NewEngine(llmClient, cfg.RetrievalLimit)
	slog.Info("RAG engine initialized", "retrieval_limit", cfg.RetrievalLimit)

	// Create services
	settings := service.NewSettingsService()
	metrics := service.NewMetricsService()
	transcript := history.NewLog()
	chatService := service.NewChatService(ragEngine, store, settings, transcript, metrics)

	// Create router with dependencies
	router := http.NewRouter(&http.Deps{
		ChatService: chatService,
		Store:       store,
		Settings:    settings,
		Metrics:     metrics,
		Transcript:  transcript,
	})

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel, "temperature", cfg.Temperature)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
