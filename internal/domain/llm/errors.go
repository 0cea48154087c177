package llm

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a provider call failed. Classification is
// derived from typed errors and HTTP status codes, never from matching
// error message text.
type FailureKind string

const (
	FailureAuth          FailureKind = "auth"
	FailureRateLimited   FailureKind = "rate_limited"
	FailureUnreachable   FailureKind = "unreachable"
	FailureTimeout       FailureKind = "timeout"
	FailureEmptyResponse FailureKind = "empty_response"
	FailureUnknown       FailureKind = "unknown"
)

// ErrMissingCredential is returned when a provider is constructed without
// the API key it needs. It surfaces at startup, before any request is served.
var ErrMissingCredential = errors.New("missing provider credential")

// ProviderError wraps a provider failure with its origin and classification.
type ProviderError struct {
	Provider string
	Kind     FailureKind
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Kind)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError constructs a classified provider failure.
func NewProviderError(provider string, kind FailureKind, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}

// KindOf extracts the failure kind from an error chain. Returns
// FailureUnknown when the error does not carry a ProviderError.
func KindOf(err error) FailureKind {
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return provErr.Kind
	}
	return FailureUnknown
}
