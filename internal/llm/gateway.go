package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"inkwell/internal/domain"
)

const (
	contentSystemPrompt = "You are a helpful writing assistant that generates high-quality content " +
		"based on the user's current document and prompt. Provide thorough, well-structured " +
		"responses that match the style and tone of the user's existing content."

	suggestionsSystemPrompt = "You are a helpful writing assistant that generates suggestion prompts " +
		"based on the user's current document content. Generate prompts that would help the user " +
		"expand, refine, or improve their document."

	contentMaxTokens     = 1000
	suggestionsMaxTokens = 2048
)

// Gateway sends document context to a generation provider and reshapes the
// replies. It performs no retries; failures propagate once, except for
// suggestion generation which degrades to the fixed default list.
type Gateway struct {
	provider Provider
	model    string
	logger   *slog.Logger
}

// NewGateway creates a gateway over the given provider and model.
func NewGateway(provider Provider, model string, logger *slog.Logger) *Gateway {
	return &Gateway{
		provider: provider,
		model:    model,
		logger:   logger,
	}
}

// GenerateContent produces text for a suggestion prompt against the current
// document. Upstream failure surfaces as a domain.GenerationError; the
// suggestion's state is the caller's concern.
func (g *Gateway) GenerateContent(ctx context.Context, documentContent, prompt string) (string, error) {
	basis := "content"
	if strings.TrimSpace(documentContent) == "" {
		basis = "empty document"
	}

	userPrompt := fmt.Sprintf(`
Current document content:
%s

Based on this %s, please %s

Format your response appropriately with line breaks, lists, and proper paragraph structure as needed.
`, documentContent, basis, prompt)

	text, err := g.provider.Complete(ctx, &Request{
		Model:     g.model,
		System:    contentSystemPrompt,
		Prompt:    userPrompt,
		MaxTokens: contentMaxTokens,
	})
	if err != nil {
		g.logger.Error("content generation failed",
			"provider", g.provider.Name(),
			"model", g.model,
			"error", err,
		)
		return "", &domain.GenerationError{
			Message: "Failed to generate content. Please try again later.",
			Err:     err,
		}
	}

	return text, nil
}

// GenerateSuggestions produces 4-6 suggestion proposals for the document.
// A blank document short-circuits to the default list without an upstream
// call; an upstream failure or unusable reply falls back to the same list,
// so the result is never empty.
func (g *Gateway) GenerateSuggestions(ctx context.Context, documentContent string) []Proposal {
	if strings.TrimSpace(documentContent) == "" {
		return DefaultSuggestions()
	}

	userPrompt := fmt.Sprintf(`
Based on the following document content, generate 4-6 suggestion prompts that would help the user expand, refine, or improve their document.
These should be creative and specific to the content.

Document content:
%s

Respond with JSON in the following format:
[
  {
    "prompt": "Short prompt text (e.g., 'Generate a timeline for project implementation')",
    "description": "Brief explanation of what this will do",
    "position": "left or right - left for expanding ideas, right for refining content"
  }
]`, documentContent)

	text, err := g.provider.Complete(ctx, &Request{
		Model:     g.model,
		System:    suggestionsSystemPrompt,
		Prompt:    userPrompt,
		MaxTokens: suggestionsMaxTokens,
		JSON:      true,
	})
	if err != nil {
		g.logger.Warn("suggestion generation failed, using defaults",
			"provider", g.provider.Name(),
			"model", g.model,
			"error", err,
		)
		return DefaultSuggestions()
	}

	proposals, err := parseProposals(text)
	if err != nil || len(proposals) == 0 {
		g.logger.Warn("unusable suggestion response, using defaults",
			"provider", g.provider.Name(),
			"error", err,
		)
		return DefaultSuggestions()
	}

	return proposals
}
