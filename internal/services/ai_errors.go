package services

import (
	"errors"
	"fmt"

	"goindia/pkg/llm"
	"goindia/pkg/utils"
)

// mapAIError translates gateway failures into the service-layer
// taxonomy. Upstream errors keep the provider's own message so it can be
// shown verbatim; everything else collapses to the generic buckets.
func mapAIError(err error) error {
	var upstream *llm.UpstreamError
	switch {
	case errors.Is(err, llm.ErrKeyNotConfigured):
		return utils.ErrAIKeyNotConfigured
	case errors.As(err, &upstream):
		return fmt.Errorf("%w: %s", utils.ErrAIUpstream, upstream.Message)
	case errors.Is(err, llm.ErrEmptyCompletion):
		return utils.ErrMalformedAIResponse
	default:
		return utils.ErrAIUnavailable
	}
}
