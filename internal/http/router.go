package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"omnirag/internal/docstore"
	"omnirag/internal/handlers"
	"omnirag/internal/history"
	"omnirag/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService service.ChatService
	Store       docstore.Store
	Settings    *service.SettingsService
	Metrics     *service.MetricsService
	Transcript  *history.Log
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	documentsHandler := handlers.NewDocumentsHandler(deps.Store)
	historyHandler := handlers.NewHistoryHandler(deps.Transcript, deps.Metrics)
	metricsHandler := handlers.NewMetricsHandler(deps.Metrics)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)

		r.Get("/documents", documentsHandler.List)
		r.Post("/documents", documentsHandler.Create)
		r.Post("/documents/upload", documentsHandler.Upload)
		r.Patch("/documents/{id}/active", documentsHandler.SetActive)
		r.Delete("/documents/{id}", documentsHandler.Delete)

		r.Get("/history", historyHandler.List)
		r.Post("/history/{id}/feedback", historyHandler.Feedback)

		r.Method(http.MethodGet, "/metrics", metricsHandler)

		r.Get("/settings/instruction", settingsHandler.GetInstruction)
		r.Put("/settings/instruction", settingsHandler.PutInstruction)
	})

	r.Method(http.MethodGet, "/healthz", handlers.NewHealthHandler(deps.Store))

	return r
}
