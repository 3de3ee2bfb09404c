package llm

import (
	"testing"
)

func TestParseProposals(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{
			name: "bare array",
			raw:  `[{"prompt":"a","description":"d","position":"left"},{"prompt":"b","description":"d","position":"right"}]`,
			want: 2,
		},
		{
			name: "wrapped under suggestions",
			raw:  `{"suggestions":[{"prompt":"a","description":"d","position":"left"}]}`,
			want: 1,
		},
		{
			name: "wrapped under arbitrary single key",
			raw:  `{"items":[{"prompt":"a","description":"d","position":"left"}]}`,
			want: 1,
		},
		{
			name: "fenced json",
			raw:  "```json\n[{\"prompt\":\"a\",\"description\":\"d\",\"position\":\"left\"}]\n```",
			want: 1,
		},
		{
			name: "entries without prompt are dropped",
			raw:  `[{"prompt":"a","position":"left"},{"prompt":"  ","position":"left"},{"description":"only"}]`,
			want: 1,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "prose response",
			raw:     "Here are some ideas you could try.",
			wantErr: true,
		},
		{
			name:    "suggestions field not a list",
			raw:     `{"suggestions":"nope"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProposals(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseProposals failed: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d proposals, got %d: %v", tt.want, len(got), got)
			}
		})
	}
}

func TestParseProposalsNormalizesPositions(t *testing.T) {
	got, err := parseProposals(`[
		{"prompt":"a","position":"left"},
		{"prompt":"b","position":"center"},
		{"prompt":"c","position":""}
	]`)
	if err != nil {
		t.Fatalf("parseProposals failed: %v", err)
	}

	wantPositions := []string{"left", "right", "right"}
	for i, p := range got {
		if p.Position != wantPositions[i] {
			t.Errorf("proposal %d: expected position %q, got %q", i, wantPositions[i], p.Position)
		}
	}
}

func TestDefaultSuggestions(t *testing.T) {
	defaults := DefaultSuggestions()
	if len(defaults) != 5 {
		t.Fatalf("expected 5 default suggestions, got %d", len(defaults))
	}

	for i, p := range defaults {
		if p.Prompt == "" {
			t.Errorf("default %d has empty prompt", i)
		}
		if p.Position != "left" && p.Position != "right" {
			t.Errorf("default %d has position %q", i, p.Position)
		}
	}

	// Both position tags must be represented
	seen := map[string]bool{}
	for _, p := range defaults {
		seen[p.Position] = true
	}
	if !seen["left"] || !seen["right"] {
		t.Errorf("expected both left and right positions, got %v", seen)
	}

	// Callers get a copy
	defaults[0].Prompt = "mutated"
	if DefaultSuggestions()[0].Prompt == "mutated" {
		t.Error("DefaultSuggestions returned shared state")
	}
}
