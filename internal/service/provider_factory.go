package service

import (
	"fmt"

	"inkwell/internal/config"
	"inkwell/internal/llm"
	"inkwell/internal/llm/anthropic"
	"inkwell/internal/llm/lorem"
)

// NewLLMProvider builds the configured completion provider.
func NewLLMProvider(cfg *config.Config) (llm.Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return anthropic.NewProvider(cfg.AnthropicAPIKey)
	case "lorem":
		return lorem.NewProvider(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
