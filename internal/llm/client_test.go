package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGenerateSuccess(t *testing.T) {
	var gotReq ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		resp := ChatResponse{
			Choices: []ChatChoice{
				{Message: ChatChoiceMessage{Role: "assistant", Content: "The stipend is $1,000."}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", 0.3, time.Second)
	text, err := client.Generate(context.Background(), "CONTEXT: ...", "You are a knowledge assistant.")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "The stipend is $1,000." {
		t.Errorf("Generate() = %q", text)
	}

	if gotReq.Model != "test-model" {
		t.Errorf("request model = %q, want test-model", gotReq.Model)
	}
	if gotReq.Temperature != 0.3 {
		t.Errorf("request temperature = %v, want 0.3", gotReq.Temperature)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("unexpected messages %v", gotReq.Messages)
	}
}

func TestGenerateOmitsEmptySystemInstruction(t *testing.T) {
	var gotReq ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		resp := ChatResponse{Choices: []ChatChoice{{Message: ChatChoiceMessage{Content: "ok"}}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "model", 0.3, time.Second)
	if _, err := client.Generate(context.Background(), "hello", ""); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("expected a single user message, got %v", gotReq.Messages)
	}
}

func TestGenerateBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "model", 0.3, time.Second)
	_, err := client.Generate(context.Background(), "hello", "")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error %q should mention the status code", err)
	}
}

func TestGenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ChatResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "model", 0.3, time.Second)
	if _, err := client.Generate(context.Background(), "hello", ""); err == nil {
		t.Fatal("expected error when no choices are returned")
	}
}

func TestGenerateEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := ChatResponse{Choices: []ChatChoice{{Message: ChatChoiceMessage{Content: ""}}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "model", 0.3, time.Second)
	text, err := client.Generate(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "" {
		t.Errorf("Generate() = %q, want empty string", text)
	}
}

func TestGenerateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(ChatResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "model", 0.3, 20*time.Millisecond)
	if _, err := client.Generate(context.Background(), "hello", ""); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewClientDefaultTemperature(t *testing.T) {
	client := NewClient("http://localhost", "key", "model", 0, time.Second)
	if client.Temperature != DefaultTemperature {
		t.Errorf("Temperature = %v, want %v", client.Temperature, DefaultTemperature)
	}
}
