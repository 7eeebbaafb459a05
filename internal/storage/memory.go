package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/draftforge/go-sitegen/internal/document"
)

// MemoryStore keeps documents in process memory. Documents are cloned on the
// way in and out so callers can keep mutating their copies without aliasing
// stored state. Intended for tests and embedded setups without a database.
type MemoryStore struct {
	mu        sync.RWMutex
	documents map[uuid.UUID]*document.Document
	published map[uuid.UUID]time.Time
	clock     func() time.Time
}

// MemoryOption mutates the store during construction.
type MemoryOption func(*MemoryStore)

// WithMemoryClock overrides the timestamp source.
func WithMemoryClock(clock func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	store := &MemoryStore{
		documents: map[uuid.UUID]*document.Document{},
		published: map[uuid.UUID]time.Time{},
		clock:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Load returns a copy of the stored document for a project.
func (s *MemoryStore) Load(_ context.Context, projectID uuid.UUID) (*document.Document, error) {
	if projectID == uuid.Nil {
		return nil, ErrProjectRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[projectID]
	if !ok {
		return nil, &DocumentNotFoundError{ProjectID: projectID}
	}
	return document.Clone(doc), nil
}

// Save stores a copy of the document, replacing any previous version.
func (s *MemoryStore) Save(_ context.Context, doc *document.Document) error {
	if doc == nil {
		return document.ErrDocumentRequired
	}
	if doc.ProjectID == uuid.Nil {
		return ErrProjectRequired
	}

	stored := document.Clone(doc)
	stored.UpdatedAt = s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ProjectID] = stored
	return nil
}

// Publish marks the project's document as live.
func (s *MemoryStore) Publish(_ context.Context, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return ErrProjectRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[projectID]; !ok {
		return &DocumentNotFoundError{ProjectID: projectID}
	}
	s.published[projectID] = s.clock()
	return nil
}

// PublishedAt reports when the project was last published.
func (s *MemoryStore) PublishedAt(projectID uuid.UUID) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.published[projectID]
	return at, ok
}

// Delete removes the project's document.
func (s *MemoryStore) Delete(_ context.Context, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return ErrProjectRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[projectID]; !ok {
		return &DocumentNotFoundError{ProjectID: projectID}
	}
	delete(s.documents, projectID)
	delete(s.published, projectID)
	return nil
}
