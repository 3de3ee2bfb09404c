// Package llm is the content-generation gateway: a thin adapter over an
// external text-generation service, plus the prompt construction and
// response reshaping this application needs.
package llm

import "context"

// Request contains the parameters for a single generation call.
type Request struct {
	// Model is the model identifier (e.g. "claude-haiku-4-5-20251001").
	Model string

	// System is the system instruction.
	System string

	// Prompt is the user message.
	Prompt string

	// MaxTokens caps the response length.
	MaxTokens int

	// JSON hints that the reply should be machine-readable JSON. Providers
	// without a native JSON mode may ignore it; the prompt carries the
	// format instructions either way.
	JSON bool
}

// Provider is implemented by each upstream text-generation backend.
// This abstraction keeps the gateway testable and lets dev setups run on
// the offline lorem provider.
type Provider interface {
	// Complete performs one generation call and returns the produced text.
	Complete(ctx context.Context, req *Request) (string, error)

	// Name returns the provider name (e.g. "anthropic", "lorem")
	Name() string

	// SupportsModel returns true if the provider supports the given model.
	SupportsModel(model string) bool
}
