package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"omnirag/internal/docstore"
	"omnirag/internal/history"
	"omnirag/internal/service"
	"omnirag/internal/service/mocks"
)

func newTestDeps(t *testing.T, ctrl *gomock.Controller) (*Deps, *mocks.MockChatService) {
	t.Helper()
	chatService := mocks.NewMockChatService(ctrl)
	return &Deps{
		ChatService: chatService,
		Store:       docstore.NewMemoryStore(),
		Settings:    service.NewSettingsService(),
		Metrics:     service.NewMetricsService(),
		Transcript:  history.NewLog(),
	}, chatService
}

func TestRouterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, chatService := newTestDeps(t, ctrl)
	chatService.EXPECT().
		ProcessChat(gomock.Any(), gomock.Any()).
		Return(service.ChatResponse{Reply: "hi"}, nil)

	router := NewRouter(deps)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"chat", http.MethodPost, "/api/chat", `{"message":"hello"}`, http.StatusOK},
		{"documents list", http.MethodGet, "/api/documents", "", http.StatusOK},
		{"history", http.MethodGet, "/api/history", "", http.StatusOK},
		{"metrics", http.MethodGet, "/api/metrics", "", http.StatusOK},
		{"settings get", http.MethodGet, "/api/settings/instruction", "", http.StatusOK},
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _ := newTestDeps(t, ctrl)
	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouterSettingsRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _ := newTestDeps(t, ctrl)
	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodPut, "/api/settings/instruction", strings.NewReader(`{"instruction":"Be brief."}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/settings/instruction", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload struct {
		Instruction string `json:"instruction"`
	}
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if payload.Instruction != "Be brief." {
		t.Errorf("instruction = %q, want Be brief.", payload.Instruction)
	}
}
