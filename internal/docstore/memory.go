package docstore

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no document with the requested ID exists.
var ErrNotFound = errors.New("document not found")

// Store manages the document collection.
// This interface is defined from the consumers' perspective; the only
// implementation in this process is the in-memory store below.
type Store interface {
	// List returns a snapshot copy of all documents in insertion order.
	List(ctx context.Context) []Document
	// Get returns the document with the given ID.
	Get(ctx context.Context, id string) (Document, error)
	// Add inserts a new document.
	Add(ctx context.Context, doc Document) error
	// SetActive toggles a document's retrieval eligibility.
	SetActive(ctx context.Context, id string, active bool) error
	// Delete removes a document permanently.
	Delete(ctx context.Context, id string) error
}

// MemoryStore is a mutex-guarded in-memory document collection.
// All reads hand out copies, so a retrieval pass operates on a stable
// snapshot even if the collection is mutated mid-request.
type MemoryStore struct {
	mu   sync.RWMutex
	docs []Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns a snapshot copy of all documents in insertion order.
func (s *MemoryStore) List(ctx context.Context) []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Get returns the document with the given ID, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return Document{}, ErrNotFound
}

// Add inserts a new document. IDs must be unique within the collection.
func (s *MemoryStore) Add(ctx context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.docs {
		if existing.ID == doc.ID {
			return errors.New("duplicate document id")
		}
	}
	s.docs = append(s.docs, doc)
	return nil
}

// SetActive toggles a document's retrieval eligibility.
func (s *MemoryStore) SetActive(ctx context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i].Active = active
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes a document permanently.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
