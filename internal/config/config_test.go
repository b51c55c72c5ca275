package config

import (
	"log/slog"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("LLM_API_KEY", "test-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLMBaseURL != "http://localhost:8080" {
		t.Errorf("LLMBaseURL = %q", cfg.LLMBaseURL)
	}
	if cfg.LLMModel != "gemini-2.5-flash" {
		t.Errorf("LLMModel = %q", cfg.LLMModel)
	}
	if cfg.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", cfg.Temperature)
	}
	if cfg.GenTimeout != 60*time.Second {
		t.Errorf("GenTimeout = %v, want 60s", cfg.GenTimeout)
	}
	if cfg.RetrievalLimit != 5 {
		t.Errorf("RetrievalLimit = %d, want 5", cfg.RetrievalLimit)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
	if !cfg.SeedDocuments {
		t.Error("SeedDocuments should default to true")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LLM_BASE_URL", "https://llm.internal")
	t.Setenv("LLM_MODEL", "my-model")
	t.Setenv("GEN_TEMPERATURE", "0.7")
	t.Setenv("GEN_TIMEOUT_SECS", "10")
	t.Setenv("RETRIEVAL_LIMIT", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SEED_DOCUMENTS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLMBaseURL != "https://llm.internal" || cfg.LLMModel != "my-model" {
		t.Errorf("LLM settings = %q / %q", cfg.LLMBaseURL, cfg.LLMModel)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", cfg.Temperature)
	}
	if cfg.GenTimeout != 10*time.Second {
		t.Errorf("GenTimeout = %v, want 10s", cfg.GenTimeout)
	}
	if cfg.RetrievalLimit != 3 {
		t.Errorf("RetrievalLimit = %d, want 3", cfg.RetrievalLimit)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.SeedDocuments {
		t.Error("SeedDocuments should be false")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"missing api key", "LLM_API_KEY", ""},
		{"bad temperature", "GEN_TEMPERATURE", "abc"},
		{"temperature out of range", "GEN_TEMPERATURE", "3.5"},
		{"bad timeout", "GEN_TIMEOUT_SECS", "zero"},
		{"negative timeout", "GEN_TIMEOUT_SECS", "-1"},
		{"bad limit", "RETRIEVAL_LIMIT", "many"},
		{"zero limit", "RETRIEVAL_LIMIT", "0"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad log format", "LOG_FORMAT", "xml"},
		{"bad seed flag", "SEED_DOCUMENTS", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.val)

			if _, err := Load(); err == nil {
				t.Errorf("Load() should fail when %s=%q", tt.key, tt.val)
			}
		})
	}
}
