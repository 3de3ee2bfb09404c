package llm

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/defaults.yaml
var configFiles embed.FS

var (
	defaultsOnce sync.Once
	defaults     []Proposal
	defaultsErr  error
)

type defaultsFile struct {
	Suggestions []Proposal `yaml:"suggestions"`
}

// DefaultSuggestions returns the fixed fallback list. The file is embedded,
// so a parse failure is a build defect and panics rather than degrading the
// one guarantee this list exists for.
func DefaultSuggestions() []Proposal {
	defaultsOnce.Do(loadDefaults)
	if defaultsErr != nil {
		panic(defaultsErr)
	}

	out := make([]Proposal, len(defaults))
	copy(out, defaults)
	return out
}

func loadDefaults() {
	data, err := configFiles.ReadFile("config/defaults.yaml")
	if err != nil {
		defaultsErr = fmt.Errorf("read default suggestions: %w", err)
		return
	}

	var f defaultsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		defaultsErr = fmt.Errorf("unmarshal default suggestions: %w", err)
		return
	}
	if len(f.Suggestions) == 0 {
		defaultsErr = fmt.Errorf("default suggestions file is empty")
		return
	}

	defaults = f.Suggestions
}
