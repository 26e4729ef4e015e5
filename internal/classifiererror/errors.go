// Package classifiererror defines the error kinds of the classification pipeline.
package classifiererror

import (
	"errors"
	"fmt"
)

// Failure kinds of the AI strategy. They never reach the caller of the
// classifier; the orchestrator recovers from all of them.
var (
	// ErrAIUnavailable means the AI strategy cannot be attempted (no credentials,
	// rate limited).
	ErrAIUnavailable = errors.New("ai strategy unavailable")
	// ErrAITransport means the provider call could not be completed.
	ErrAITransport = errors.New("ai transport error")
	// ErrAIResponse means the provider reply could not be turned into a category.
	ErrAIResponse = errors.New("ai response error")
)

// ValidationError represents a rejected classification request
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AIError carries the failure kind of an AI attempt together with its cause
type AIError struct {
	Kind     error
	Provider string
	Err      error
}

func (e *AIError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Provider, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewAIError builds an AIError of the given kind.
func NewAIError(kind error, provider string, err error) *AIError {
	return &AIError{Kind: kind, Provider: provider, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Kind returns the AI failure kind carried by err, or nil.
func Kind(err error) error {
	for _, kind := range []error{ErrAIUnavailable, ErrAITransport, ErrAIResponse} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
