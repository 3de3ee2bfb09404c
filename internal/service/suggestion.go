package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/llm"
)

// ContentGenerator is the slice of the LLM gateway suggestions depend on.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, documentContent, prompt string) (string, error)
	GenerateSuggestions(ctx context.Context, documentContent string) []llm.Proposal
}

// ApplyMode controls how generated content is merged into a document.
type ApplyMode string

const (
	ApplyModeAdd     ApplyMode = "add"
	ApplyModeReplace ApplyMode = "replace"
)

// SuggestionService handles the suggestion lifecycle: listing, batch
// regeneration, content generation, and applying results to documents.
type SuggestionService interface {
	List(ctx context.Context, documentID int) ([]models.Suggestion, error)
	Regenerate(ctx context.Context, documentID int) ([]models.Suggestion, error)
	GenerateContent(ctx context.Context, suggestionID int) (*models.Suggestion, error)
	Apply(ctx context.Context, suggestionID int, mode ApplyMode) (*models.Document, error)
}

type suggestionService struct {
	suggestions     repositories.SuggestionRepository
	documents       repositories.DocumentRepository
	generator       ContentGenerator
	generateTimeout time.Duration
	logger          *slog.Logger
}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService(
	suggestions repositories.SuggestionRepository,
	documents repositories.DocumentRepository,
	generator ContentGenerator,
	generateTimeout time.Duration,
	logger *slog.Logger,
) SuggestionService {
	return &suggestionService{
		suggestions:     suggestions,
		documents:       documents,
		generator:       generator,
		generateTimeout: generateTimeout,
		logger:          logger,
	}
}

// List returns the suggestions for a document in insertion order. The
// document must exist.
func (s *suggestionService) List(ctx context.Context, documentID int) ([]models.Suggestion, error) {
	if _, err := s.documents.GetDocument(ctx, documentID); err != nil {
		return nil, err
	}
	return s.suggestions.ListSuggestions(ctx, documentID)
}

// Regenerate replaces a document's suggestion batch with a fresh one
// derived from its current content. The old batch is removed before the
// new one is inserted, so clients never see a mix of the two.
func (s *suggestionService) Regenerate(ctx context.Context, documentID int) ([]models.Suggestion, error) {
	doc, err := s.documents.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.generateTimeout)
	defer cancel()
	proposals := s.generator.GenerateSuggestions(genCtx, doc.Content)

	existing, err := s.suggestions.ListSuggestions(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	for _, old := range existing {
		if _, err := s.suggestions.DeleteSuggestion(ctx, old.ID); err != nil {
			return nil, fmt.Errorf("delete suggestion %d: %w", old.ID, err)
		}
	}

	created := make([]models.Suggestion, 0, len(proposals))
	for _, p := range proposals {
		sg, err := s.suggestions.CreateSuggestion(ctx, &repositories.NewSuggestion{
			DocumentID:  documentID,
			Prompt:      p.Prompt,
			Description: p.Description,
			Position:    p.Position,
		})
		if err != nil {
			return nil, fmt.Errorf("create suggestion: %w", err)
		}
		created = append(created, *sg)
	}

	s.logger.Info("suggestions regenerated",
		"document_id", documentID,
		"count", len(created),
	)
	return created, nil
}

// GenerateContent runs the suggestion's prompt against the document and
// stores the result. On generation failure the suggestion keeps its
// previous state so a retry starts clean.
func (s *suggestionService) GenerateContent(ctx context.Context, suggestionID int) (*models.Suggestion, error) {
	sg, err := s.suggestions.GetSuggestion(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	doc, err := s.documents.GetDocument(ctx, sg.DocumentID)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.generateTimeout)
	defer cancel()
	content, err := s.generator.GenerateContent(genCtx, doc.Content, sg.Prompt)
	if err != nil {
		return nil, err
	}

	generated := true
	return s.suggestions.UpdateSuggestion(ctx, suggestionID, &repositories.SuggestionUpdate{
		Generated:        &generated,
		GeneratedContent: &content,
	})
}

// Apply merges a suggestion's generated content into its document. When
// the suggestion has not been generated yet it is generated first.
func (s *suggestionService) Apply(ctx context.Context, suggestionID int, mode ApplyMode) (*models.Document, error) {
	if mode != ApplyModeAdd && mode != ApplyModeReplace {
		return nil, fmt.Errorf("%w: mode must be %q or %q", domain.ErrValidation, ApplyModeAdd, ApplyModeReplace)
	}

	sg, err := s.suggestions.GetSuggestion(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if !sg.Generated {
		sg, err = s.GenerateContent(ctx, suggestionID)
		if err != nil {
			return nil, err
		}
	}

	doc, err := s.documents.GetDocument(ctx, sg.DocumentID)
	if err != nil {
		return nil, err
	}

	// Add mode concatenates unconditionally, so an empty document still
	// gets the separator prefix.
	content := sg.GeneratedContent
	if mode == ApplyModeAdd {
		content = doc.Content + "\n\n" + sg.GeneratedContent
	}

	return s.documents.UpdateDocument(ctx, doc.ID, &repositories.DocumentUpdate{
		Content: &content,
	})
}
