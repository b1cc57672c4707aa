// Package domain contains core business entities and rules.
package domain

import "github.com/google/uuid"

// MaxQuoteLength is the maximum number of characters a stored quote may have.
const MaxQuoteLength = 50

// Quote represents a saved quote with the transformation that produced it.
// This is a domain entity - it has no knowledge of external systems.
// It is immutable after creation.
type Quote struct {
	// ID is the unique identifier for this quote.
	ID string

	// Text is the rendered text of the quote, after any transformation.
	Text string

	// Mode records which transformation produced Text.
	Mode VariantMode
}

// NewQuote creates a quote with a fresh identifier.
// Text must already be in its rendered form; duplicate detection
// compares rendered text only, never the mode.
func NewQuote(text string, mode VariantMode) *Quote {
	return &Quote{
		ID:   uuid.NewString(),
		Text: text,
		Mode: mode,
	}
}

// Render returns the text used for display and for duplicate detection.
func (q *Quote) Render() string {
	return q.Text
}
