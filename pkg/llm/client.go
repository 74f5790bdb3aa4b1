package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client sends a single natural-language prompt to a remote
// text-generation model and returns the normalized payload string.
// Implementations do not retry and do not stream; every call is an
// independent request that settles with one complete response.
type Client interface {
	Query(ctx context.Context, prompt string) (string, error)
	QueryWithImage(ctx context.Context, prompt string, imageBase64 string) (string, error)
}

var (
	// ErrKeyNotConfigured means the upstream credential is missing or still
	// a placeholder. This is a deployment problem, not something the user
	// can retry their way out of.
	ErrKeyNotConfigured = errors.New("llm: api key is not configured")

	// ErrEmptyCompletion means the model answered but the response carried
	// no usable content (no choices, empty text, or a safety-filter block).
	ErrEmptyCompletion = errors.New("llm: received an empty response from the model")

	// ErrUnavailable covers transport-level failures where the endpoint
	// could not be reached at all.
	ErrUnavailable = errors.New("llm: assistant is unreachable, please try again later")
)

// UpstreamError is a non-2xx answer from the model provider. Message holds
// the provider's own human-readable error text so it can be surfaced
// verbatim to the caller.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("llm: upstream request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("llm: upstream error: %s", e.Message)
}
