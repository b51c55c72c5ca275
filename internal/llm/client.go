package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTemperature biases generation toward extractive, low-variance
// answers, which suits grounded question answering.
const DefaultTemperature = float32(0.3)

// Client is a client for an OpenAI-compatible chat completions API.
// The model identifier and sampling temperature are fixed at
// construction; callers supply only the prompt and system instruction.
type Client struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	client      *http.Client
}

// NewClient creates a new generation client. A timeout of zero means the
// request is bounded only by the caller's context.
func NewClient(baseURL, apiKey, model string, temperature float32, timeout time.Duration) *Client {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &Client{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		Model:       model,
		Temperature: temperature,
		client:      &http.Client{Timeout: timeout},
	}
}

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents the request payload for chat completions.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
}

// ChatChoiceMessage represents the message in a chat choice.
type ChatChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatChoice represents a single choice in the chat response.
type ChatChoice struct {
	Index        int               `json:"index"`
	Message      ChatChoiceMessage `json:"message"`
	FinishReason string            `json:"finish_reason"`
}

// ChatResponse represents the response from the chat completions API.
type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Choices []ChatChoice `json:"choices"`
}

// Generate sends prompt with the given system instruction to the
// generation service and returns the model's text. An empty instruction
// omits the system message. Failures are returned as errors; converting
// them into user-facing text is the caller's responsibility.
func (c *Client) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	url := fmt.Sprintf("%s/v1/chat/completions", c.BaseURL)

	messages := make([]ChatMessage, 0, 2)
	if systemInstruction != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: systemInstruction})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: prompt})

	payload := ChatRequest{
		Model:       c.Model,
		Messages:    messages,
		Temperature: c.Temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return chatResp.Choices[0].Message.Content, nil
}
