// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never infrastructure types
//   - Error returns use domain error types (ErrDuplicate, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// QuoteRepository stores quotes in insertion order. There is deliberately
// no update or delete: the collection only ever grows within a process.
type QuoteRepository interface {
	// Add appends a quote to the collection.
	// Returns domain.ErrDuplicate if a stored quote already renders to
	// the same text, regardless of either quote's mode.
	Add(ctx context.Context, quote *domain.Quote) error

	// List returns the rendered text of every stored quote in
	// insertion order.
	List(ctx context.Context) ([]string, error)

	// Len reports how many quotes are stored.
	Len(ctx context.Context) (int, error)
}
