// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidLeg           = errors.New("invalid leg")
	ErrInvalidMarketContext = errors.New("invalid market context")
	ErrLegIndexOutOfRange   = errors.New("leg index out of range")
	ErrEmptyStrategy        = errors.New("strategy has no legs")
	ErrConfigInvalid        = errors.New("invalid configuration")
)

// LegError represents a validation failure on a strategy leg.
type LegError struct {
	Index  int // -1 when the leg is not yet part of a strategy
	Field  string
	Reason string
}

func (e *LegError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid leg %d: %s: %s", e.Index+1, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid leg: %s: %s", e.Field, e.Reason)
}

func (e *LegError) Unwrap() error {
	return ErrInvalidLeg
}

// NewLegError creates a new LegError.
func NewLegError(index int, field, reason string) *LegError {
	return &LegError{
		Index:  index,
		Field:  field,
		Reason: reason,
	}
}

// MarketContextError represents a validation failure on market inputs.
type MarketContextError struct {
	Field   string
	Value   float64
	Message string
}

func (e *MarketContextError) Error() string {
	return fmt.Sprintf("invalid market context: %s (%.2f): %s", e.Field, e.Value, e.Message)
}

func (e *MarketContextError) Unwrap() error {
	return ErrInvalidMarketContext
}

// NewMarketContextError creates a new MarketContextError.
func NewMarketContextError(field string, value float64, message string) *MarketContextError {
	return &MarketContextError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ValidationError represents a generic input validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
