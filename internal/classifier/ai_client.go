package classifier

import (
	"context"
)

// CompletionRequest is a single-turn chat completion request.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
	// JSONMode asks the provider to constrain its output to a JSON object
	// where the provider supports it.
	JSONMode bool
}

// CompletionClient defines the interface for external completion services.
// This abstraction allows the AI strategy to be tested independently of
// external API calls and keeps the provider choice a configuration matter.
type CompletionClient interface {
	// Complete sends the request and returns the raw text of the reply.
	// Errors are *classifiererror.AIError values of kind ErrAITransport or
	// ErrAIResponse.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Model returns the concrete model identifier used for completions.
	Model() string

	// Provider returns the provider name, e.g. "groq".
	Provider() string
}
