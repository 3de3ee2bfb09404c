package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

// DocumentService handles document CRUD.
type DocumentService interface {
	Create(ctx context.Context, doc *repositories.NewDocument) (*models.Document, error)
	Get(ctx context.Context, id int) (*models.Document, error)
	List(ctx context.Context) ([]models.Document, error)
	Update(ctx context.Context, id int, update *repositories.DocumentUpdate) (*models.Document, error)
}

type documentService struct {
	documents repositories.DocumentRepository
	logger    *slog.Logger
}

// NewDocumentService creates a new document service.
func NewDocumentService(documents repositories.DocumentRepository, logger *slog.Logger) DocumentService {
	return &documentService{
		documents: documents,
		logger:    logger,
	}
}

func validateDocumentFields(title, content *string) error {
	checks := make([]*validation.FieldRules, 0, 2)
	holder := struct {
		Title   string
		Content string
	}{}
	if title != nil {
		holder.Title = *title
		checks = append(checks, validation.Field(&holder.Title,
			validation.Length(0, config.MaxTitleLength),
		))
	}
	if content != nil {
		holder.Content = *content
		checks = append(checks, validation.Field(&holder.Content,
			validation.Length(0, config.MaxContentLength),
		))
	}
	if len(checks) == 0 {
		return nil
	}
	if err := validation.ValidateStruct(&holder, checks...); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

func (s *documentService) Create(ctx context.Context, doc *repositories.NewDocument) (*models.Document, error) {
	if err := validateDocumentFields(&doc.Title, &doc.Content); err != nil {
		return nil, err
	}

	created, err := s.documents.CreateDocument(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.logger.Info("document created", "document_id", created.ID)
	return created, nil
}

func (s *documentService) Get(ctx context.Context, id int) (*models.Document, error) {
	return s.documents.GetDocument(ctx, id)
}

func (s *documentService) List(ctx context.Context) ([]models.Document, error) {
	return s.documents.ListDocuments(ctx)
}

// Update applies a partial update. Omitted fields keep their values.
func (s *documentService) Update(ctx context.Context, id int, update *repositories.DocumentUpdate) (*models.Document, error) {
	if err := validateDocumentFields(update.Title, update.Content); err != nil {
		return nil, err
	}
	return s.documents.UpdateDocument(ctx, id, update)
}
