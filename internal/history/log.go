// Package history keeps the in-memory chat transcript for the single
// conversation this process serves.
package history

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Feedback is the user's verdict on a model message.
type Feedback string

const (
	FeedbackNone     Feedback = ""
	FeedbackPositive Feedback = "positive"
	FeedbackNegative Feedback = "negative"
)

// ErrNotFound is returned when no message with the requested ID exists.
var ErrNotFound = errors.New("message not found")

// Message is one entry in the transcript.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "model"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	// RetrievedContext lists document titles in selection order, highest
	// relevance first. Only present on model messages.
	RetrievedContext []string `json:"retrieved_context,omitempty"`
	// LatencyMs is the retrieval-plus-generation wall time. Only present
	// on model messages.
	LatencyMs int64    `json:"latency_ms,omitempty"`
	Feedback  Feedback `json:"feedback,omitempty"`
}

// Log is a mutex-guarded in-memory transcript.
type Log struct {
	mu       sync.RWMutex
	messages []Message
}

// NewLog creates an empty transcript.
func NewLog() *Log {
	return &Log{}
}

// AppendUser records a user message and returns it.
func (l *Log) AppendUser(ctx context.Context, text string) Message {
	msg := Message{
		ID:        uuid.NewString(),
		Role:      "user",
		Text:      text,
		Timestamp: time.Now(),
	}
	l.append(msg)
	return msg
}

// AppendModel records a model reply and returns it.
func (l *Log) AppendModel(ctx context.Context, text string, retrievedContext []string, latencyMs int64) Message {
	msg := Message{
		ID:               uuid.NewString(),
		Role:             "model",
		Text:             text,
		Timestamp:        time.Now(),
		RetrievedContext: retrievedContext,
		LatencyMs:        latencyMs,
	}
	l.append(msg)
	return msg
}

func (l *Log) append(msg Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

// List returns a snapshot copy of the transcript in exchange order.
func (l *Log) List(ctx context.Context) []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// SetFeedback records the user's verdict on a message. Passing
// FeedbackNone clears a previous verdict.
func (l *Log) SetFeedback(ctx context.Context, id string, feedback Feedback) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.messages {
		if l.messages[i].ID == id {
			l.messages[i].Feedback = feedback
			return nil
		}
	}
	return ErrNotFound
}
