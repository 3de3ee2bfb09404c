package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"inkwell/internal/domain/models"
)

// Proposal is one suggestion as proposed by the generation service, before
// it is persisted as a Suggestion entity.
type Proposal struct {
	Prompt      string `json:"prompt" yaml:"prompt"`
	Description string `json:"description" yaml:"description"`
	Position    string `json:"position" yaml:"position"`
}

// parseProposals extracts a proposal list from a model reply. Models answer
// with either a bare JSON array or an object wrapping one, and sometimes
// inside a markdown code fence; all three shapes are accepted.
func parseProposals(raw string) ([]Proposal, error) {
	text := stripCodeFence(strings.TrimSpace(raw))
	if text == "" {
		return nil, fmt.Errorf("empty response")
	}

	var proposals []Proposal
	if err := json.Unmarshal([]byte(text), &proposals); err == nil {
		return normalizeProposals(proposals), nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &wrapper); err != nil {
		return nil, fmt.Errorf("response is neither array nor object: %w", err)
	}

	if inner, ok := wrapper["suggestions"]; ok {
		if err := json.Unmarshal(inner, &proposals); err != nil {
			return nil, fmt.Errorf("suggestions field is not a list: %w", err)
		}
		return normalizeProposals(proposals), nil
	}

	// Some models wrap the list under an arbitrary single key.
	if len(wrapper) == 1 {
		for _, inner := range wrapper {
			if err := json.Unmarshal(inner, &proposals); err == nil {
				return normalizeProposals(proposals), nil
			}
		}
	}

	return nil, fmt.Errorf("no suggestion list found in response")
}

// normalizeProposals drops entries without a prompt and forces positions
// into the {left, right} tag set.
func normalizeProposals(proposals []Proposal) []Proposal {
	out := make([]Proposal, 0, len(proposals))
	for _, p := range proposals {
		if strings.TrimSpace(p.Prompt) == "" {
			continue
		}
		if p.Position != models.PositionLeft {
			p.Position = models.PositionRight
		}
		out = append(out, p)
	}
	return out
}

// stripCodeFence removes a surrounding markdown code fence, if present.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}

	// Drop the opening fence line (which may carry a language tag) and a
	// closing fence line if one exists.
	lines = lines[1:]
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			lines = append(lines[:i], lines[i+1:]...)
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
