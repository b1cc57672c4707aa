// Package store provides the in-memory quote repository.
package store

import (
	"context"
	"sync"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// Memory is an in-memory, insertion-ordered quote repository.
// It lives for the process lifetime; there is no persistence and no
// teardown. Safe for concurrent use, though the dispatcher is the only
// expected writer.
type Memory struct {
	mu     sync.RWMutex
	quotes []*domain.Quote
	seen   map[string]struct{}
}

// NewMemory creates an empty repository.
func NewMemory() *Memory {
	return &Memory{
		seen: make(map[string]struct{}),
	}
}

// Add appends quote to the collection.
// Returns domain.ErrDuplicate if a stored quote renders to the same text.
func (s *Memory) Add(_ context.Context, quote *domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rendered := quote.Render()
	if _, ok := s.seen[rendered]; ok {
		return domain.NewDuplicateError(rendered)
	}

	s.seen[rendered] = struct{}{}
	s.quotes = append(s.quotes, quote)

	return nil
}

// List returns the rendered text of every stored quote, oldest first.
func (s *Memory) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	texts := make([]string, len(s.quotes))
	for i, q := range s.quotes {
		texts[i] = q.Render()
	}

	return texts, nil
}

// Len reports how many quotes are stored.
func (s *Memory) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes), nil
}
