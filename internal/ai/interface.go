package ai

import (
	"context"
)

// Provider defines the contract for the completion endpoint.
// This interface allows swapping model providers without touching the
// conversation pipeline.
type Provider interface {
	// Recommend sends the assembled context and prior turns plus the current
	// user message, and decomposes the reply into its two sections.
	// turns[0] is expected to carry the formatted system prompt.
	Recommend(ctx context.Context, turns []Turn, userMessage string) (ResponseSections, error)

	// ModelID reports the model the provider targets, used for token
	// budgeting of the outbound message window.
	ModelID() string
}
