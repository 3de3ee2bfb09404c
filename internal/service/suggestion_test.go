package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/llm"
	"inkwell/internal/repository/memory"
)

type fakeGenerator struct {
	content    string
	contentErr error
	proposals  []llm.Proposal
	calls      int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, documentContent, prompt string) (string, error) {
	f.calls++
	if f.contentErr != nil {
		return "", f.contentErr
	}
	return f.content, nil
}

func (f *fakeGenerator) GenerateSuggestions(ctx context.Context, documentContent string) []llm.Proposal {
	f.calls++
	return f.proposals
}

func newSuggestionFixture(t *testing.T, gen *fakeGenerator) (SuggestionService, *memory.Store, *models.Document) {
	t.Helper()
	store := memory.New()
	svc := NewSuggestionService(store, store, gen, time.Minute, testLogger())

	doc, err := store.CreateDocument(context.Background(), &repositories.NewDocument{
		Title:   "Draft",
		Content: "A quiet morning.",
	})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	return svc, store, doc
}

func TestSuggestionListRequiresDocument(t *testing.T) {
	svc, _, doc := newSuggestionFixture(t, &fakeGenerator{})
	ctx := context.Background()

	if _, err := svc.List(ctx, doc.ID); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if _, err := svc.List(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSuggestionRegenerateReplacesBatch(t *testing.T) {
	gen := &fakeGenerator{proposals: []llm.Proposal{
		{Prompt: "expand the scene", Description: "Expand", Position: "left"},
		{Prompt: "add dialogue", Description: "Dialogue", Position: "right"},
	}}
	svc, store, doc := newSuggestionFixture(t, gen)
	ctx := context.Background()

	first, err := svc.Regenerate(ctx, doc.ID)
	if err != nil {
		t.Fatalf("first Regenerate failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(first))
	}

	gen.proposals = []llm.Proposal{
		{Prompt: "rewrite the opening", Description: "Rewrite", Position: "left"},
	}
	second, err := svc.Regenerate(ctx, doc.ID)
	if err != nil {
		t.Fatalf("second Regenerate failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected 1 suggestion after regenerate, got %d", len(second))
	}

	listed, err := store.ListSuggestions(ctx, doc.ID)
	if err != nil {
		t.Fatalf("ListSuggestions failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("old batch not removed, %d suggestions remain", len(listed))
	}
	if listed[0].Prompt != "rewrite the opening" {
		t.Errorf("expected new batch, got prompt %q", listed[0].Prompt)
	}
}

func TestSuggestionGenerateContent(t *testing.T) {
	gen := &fakeGenerator{content: "The rain started at noon."}
	svc, store, doc := newSuggestionFixture(t, gen)
	ctx := context.Background()

	sg, err := store.CreateSuggestion(ctx, &repositories.NewSuggestion{
		DocumentID: doc.ID,
		Prompt:     "describe the weather",
		Position:   models.PositionRight,
	})
	if err != nil {
		t.Fatalf("CreateSuggestion failed: %v", err)
	}

	got, err := svc.GenerateContent(ctx, sg.ID)
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}
	if !got.Generated {
		t.Error("expected suggestion to be marked generated")
	}
	if got.GeneratedContent != "The rain started at noon." {
		t.Errorf("unexpected generated content %q", got.GeneratedContent)
	}
}

func TestSuggestionGenerateContentFailureLeavesStateClean(t *testing.T) {
	gen := &fakeGenerator{contentErr: &domain.GenerationError{Message: "upstream down"}}
	svc, store, doc := newSuggestionFixture(t, gen)
	ctx := context.Background()

	sg, err := store.CreateSuggestion(ctx, &repositories.NewSuggestion{
		DocumentID: doc.ID,
		Prompt:     "describe the weather",
	})
	if err != nil {
		t.Fatalf("CreateSuggestion failed: %v", err)
	}

	if _, err := svc.GenerateContent(ctx, sg.ID); !errors.Is(err, domain.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}

	after, err := store.GetSuggestion(ctx, sg.ID)
	if err != nil {
		t.Fatalf("GetSuggestion failed: %v", err)
	}
	if after.Generated || after.GeneratedContent != "" {
		t.Errorf("suggestion mutated after failed generation: %+v", after)
	}
}

func TestSuggestionApply(t *testing.T) {
	tests := []struct {
		name        string
		mode        ApplyMode
		wantContent string
	}{
		{"add appends with separator", ApplyModeAdd, "A quiet morning.\n\nThen the storm."},
		{"replace overwrites", ApplyModeReplace, "Then the storm."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{content: "Then the storm."}
			svc, store, doc := newSuggestionFixture(t, gen)
			ctx := context.Background()

			sg, err := store.CreateSuggestion(ctx, &repositories.NewSuggestion{
				DocumentID: doc.ID,
				Prompt:     "raise the stakes",
			})
			if err != nil {
				t.Fatalf("CreateSuggestion failed: %v", err)
			}

			got, err := svc.Apply(ctx, sg.ID, tt.mode)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if got.Content != tt.wantContent {
				t.Errorf("expected content %q, got %q", tt.wantContent, got.Content)
			}
		})
	}
}

func TestSuggestionApplyAddToEmptyDocument(t *testing.T) {
	gen := &fakeGenerator{content: "Then the storm."}
	svc, store, _ := newSuggestionFixture(t, gen)
	ctx := context.Background()

	// The store seeds document 1 with empty content; add mode still
	// prepends the separator there.
	sg, err := store.CreateSuggestion(ctx, &repositories.NewSuggestion{
		DocumentID: 1,
		Prompt:     "raise the stakes",
	})
	if err != nil {
		t.Fatalf("CreateSuggestion failed: %v", err)
	}

	got, err := svc.Apply(ctx, sg.ID, ApplyModeAdd)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got.Content != "\n\nThen the storm." {
		t.Errorf("expected separator-prefixed content, got %q", got.Content)
	}
}

func TestSuggestionApplyGeneratesWhenNeeded(t *testing.T) {
	gen := &fakeGenerator{content: "Fresh text."}
	svc, store, doc := newSuggestionFixture(t, gen)
	ctx := context.Background()

	sg, err := store.CreateSuggestion(ctx, &repositories.NewSuggestion{
		DocumentID: doc.ID,
		Prompt:     "continue the story",
	})
	if err != nil {
		t.Fatalf("CreateSuggestion failed: %v", err)
	}

	if _, err := svc.Apply(ctx, sg.ID, ApplyModeReplace); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("expected one generation call, got %d", gen.calls)
	}

	// A second apply reuses the stored content.
	if _, err := svc.Apply(ctx, sg.ID, ApplyModeReplace); err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("apply regenerated already-generated suggestion, %d calls", gen.calls)
	}
}

func TestSuggestionApplyRejectsUnknownMode(t *testing.T) {
	svc, _, _ := newSuggestionFixture(t, &fakeGenerator{})

	_, err := svc.Apply(context.Background(), 1, ApplyMode("merge"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
