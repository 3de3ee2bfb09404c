package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// NewDocument holds creation fields. The store applies defaults: empty title
// becomes models.DefaultTitle, LastModified is set to the current time.
type NewDocument struct {
	Title   string
	Content string
	UserID  *int
}

// DocumentUpdate is a partial update. Nil fields are left unchanged;
// LastModified is always refreshed.
type DocumentUpdate struct {
	Title   *string
	Content *string
}

// DocumentRepository provides access to document records.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *NewDocument) (*models.Document, error)
	GetDocument(ctx context.Context, id int) (*models.Document, error)
	// ListDocuments returns all documents in ascending id order.
	ListDocuments(ctx context.Context) ([]models.Document, error)
	// UpdateDocument merges the provided fields over the existing record. It
	// returns domain.ErrNotFound if the id is unknown.
	UpdateDocument(ctx context.Context, id int, update *DocumentUpdate) (*models.Document, error)
}
