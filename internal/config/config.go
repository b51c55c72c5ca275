package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL     string
	LLMModel       string
	LLMAPIKey      string
	Temperature    float32
	GenTimeout     time.Duration
	RetrievalLimit int
	APIPort        string
	LogLevel       slog.Level
	LogFormat      string
	SeedDocuments  bool
}

// Load reads configuration from environment variables and returns a
// Config struct. It applies defaults for optional fields and validates
// the rest. If a .env file exists in the current directory, it is
// loaded first; environment variables already set take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LLMBaseURL: getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMModel:   getEnv("LLM_MODEL", "gemini-2.5-flash"),
		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		APIPort:    getEnv("API_PORT", "9000"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
	}

	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	// Temperature is kept low to bias generation toward extractive
	// answers grounded in the retrieved context.
	temperature, err := parseFloat("GEN_TEMPERATURE", 0.3)
	if err != nil {
		return nil, err
	}
	if temperature < 0 || temperature > 2 {
		return nil, fmt.Errorf("GEN_TEMPERATURE must be between 0 and 2, got %v", temperature)
	}
	cfg.Temperature = float32(temperature)

	timeoutSecs, err := parseInt("GEN_TIMEOUT_SECS", 60)
	if err != nil {
		return nil, err
	}
	if timeoutSecs <= 0 {
		return nil, fmt.Errorf("GEN_TIMEOUT_SECS must be greater than 0")
	}
	cfg.GenTimeout = time.Duration(timeoutSecs) * time.Second

	cfg.RetrievalLimit, err = parseInt("RETRIEVAL_LIMIT", 5)
	if err != nil {
		return nil, err
	}
	if cfg.RetrievalLimit <= 0 {
		return nil, fmt.Errorf("RETRIEVAL_LIMIT must be greater than 0")
	}

	cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg.SeedDocuments, err = parseBool("SEED_DOCUMENTS", true)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return value, nil
}

func parseFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number: %w", key, err)
	}
	return value, nil
}

func parseBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a valid boolean: %w", key, err)
	}
	return value, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", raw)
	}
}
