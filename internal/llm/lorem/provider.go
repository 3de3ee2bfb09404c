// Package lorem is a mock provider that generates lorem ipsum text.
// Used for testing and development without requiring real API keys.
package lorem

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	loremgen "github.com/bozaro/golorem"

	"inkwell/internal/llm"
)

// Provider implements llm.Provider with locally generated filler text.
type Provider struct {
	generator *loremgen.Lorem
	delay     time.Duration
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
		delay:     200 * time.Millisecond,
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// SupportsModel returns true if the model name starts with "lorem-".
// Example models: "lorem-fast", "lorem-test"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "lorem-")
}

// Complete simulates a blocking generation call with a short delay. JSON
// requests produce a parseable suggestion list so the full suggestion flow
// works offline.
func (p *Provider) Complete(ctx context.Context, req *llm.Request) (string, error) {
	if !p.SupportsModel(req.Model) {
		return "", fmt.Errorf("model '%s' is not supported by lorem provider", req.Model)
	}

	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if req.JSON {
		return p.proposalsJSON()
	}

	paragraphs := []string{
		p.generator.Paragraph(2, 4),
		p.generator.Paragraph(2, 4),
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

// proposalsJSON fabricates a suggestion list in the shape the gateway
// expects from a real model.
func (p *Provider) proposalsJSON() (string, error) {
	type proposal struct {
		Prompt      string `json:"prompt"`
		Description string `json:"description"`
		Position    string `json:"position"`
	}

	positions := []string{"left", "left", "right", "right"}
	out := make([]proposal, 0, len(positions))
	for _, pos := range positions {
		out = append(out, proposal{
			Prompt:      strings.TrimSuffix(p.generator.Sentence(4, 8), "."),
			Description: p.generator.Sentence(5, 10),
			Position:    pos,
		})
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshal proposals: %w", err)
	}
	return string(data), nil
}
