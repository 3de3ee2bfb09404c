package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// NewSuggestion holds creation fields. The store initializes Generated=false
// and GeneratedContent="" regardless of input, and defaults an empty position
// to models.PositionRight.
type NewSuggestion struct {
	DocumentID  int
	Prompt      string
	Description string
	Position    string
}

// SuggestionUpdate is a partial update over a suggestion record.
type SuggestionUpdate struct {
	Generated        *bool
	GeneratedContent *string
}

// SuggestionRepository provides access to suggestion records.
type SuggestionRepository interface {
	CreateSuggestion(ctx context.Context, s *NewSuggestion) (*models.Suggestion, error)
	GetSuggestion(ctx context.Context, id int) (*models.Suggestion, error)
	// ListSuggestions returns a document's suggestions in ascending id order.
	ListSuggestions(ctx context.Context, documentID int) ([]models.Suggestion, error)
	UpdateSuggestion(ctx context.Context, id int, update *SuggestionUpdate) (*models.Suggestion, error)
	// DeleteSuggestion removes a suggestion, reporting whether a record existed.
	DeleteSuggestion(ctx context.Context, id int) (bool, error)
}
