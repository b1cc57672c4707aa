// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT presentation errors.
// They are infrastructure-agnostic and can be mapped to exit codes or
// user-facing messages by the outer layers.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidCommand indicates the command matched no recognized form.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrQuoteTooLong indicates a quote exceeds MaxQuoteLength.
	ErrQuoteTooLong = errors.New("quote is too long")

	// ErrNotModified indicates a transformation left its input unchanged.
	ErrNotModified = errors.New("quote was not modified")

	// ErrNotImplemented indicates a recognized but unfinished feature.
	ErrNotImplemented = errors.New("not implemented")

	// ErrDuplicate indicates the rendered text is already stored.
	ErrDuplicate = errors.New("duplicate quote")
)

// InvalidCommandError provides context for invalid command errors.
type InvalidCommandError struct {
	Command string
}

// Error implements the error interface.
func (e *InvalidCommandError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("invalid command %q", e.Command)
	}

	return "invalid command"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidCommandError) Unwrap() error {
	return ErrInvalidCommand
}

// NewInvalidCommandError creates an invalid command error with context.
func NewInvalidCommandError(command string) error {
	return &InvalidCommandError{Command: command}
}

// QuoteTooLongError provides context for length violations.
type QuoteTooLongError struct {
	Length int
	Limit  int
}

// Error implements the error interface.
func (e *QuoteTooLongError) Error() string {
	return fmt.Sprintf("quote is too long: %d characters exceeds limit of %d", e.Length, e.Limit)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *QuoteTooLongError) Unwrap() error {
	return ErrQuoteTooLong
}

// NewQuoteTooLongError creates a too-long error with context.
func NewQuoteTooLongError(length, limit int) error {
	return &QuoteTooLongError{Length: length, Limit: limit}
}

// NotImplementedError provides context for unfinished features.
type NotImplementedError struct {
	Feature string
}

// Error implements the error interface.
func (e *NotImplementedError) Error() string {
	if e.Feature != "" {
		return e.Feature + " not implemented"
	}

	return "not implemented"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// NewNotImplementedError creates a not-implemented error with context.
func NewNotImplementedError(feature string) error {
	return &NotImplementedError{Feature: feature}
}

// DuplicateError provides context for duplicate entries.
type DuplicateError struct {
	Text string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("quote %q has already been added", e.Text)
	}

	return "quote has already been added"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// NewDuplicateError creates a duplicate error with context.
func NewDuplicateError(text string) error {
	return &DuplicateError{Text: text}
}

// IsInvalidCommand checks if an error is an invalid command error.
func IsInvalidCommand(err error) bool {
	return errors.Is(err, ErrInvalidCommand)
}

// IsQuoteTooLong checks if an error is a too-long error.
func IsQuoteTooLong(err error) bool {
	return errors.Is(err, ErrQuoteTooLong)
}

// IsNotModified checks if an error is a not-modified error.
func IsNotModified(err error) bool {
	return errors.Is(err, ErrNotModified)
}

// IsNotImplemented checks if an error is a not-implemented error.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsDuplicate checks if an error is a duplicate error.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
