package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/repository/memory"
)

func TestDocumentCreateAndUpdate(t *testing.T) {
	store := memory.New()
	svc := NewDocumentService(store, testLogger())
	ctx := context.Background()

	doc, err := svc.Create(ctx, &repositories.NewDocument{Title: "Chapter One", Content: "It began."})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTitle := "Chapter 1"
	updated, err := svc.Update(ctx, doc.ID, &repositories.DocumentUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Chapter 1" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
	if updated.Content != "It began." {
		t.Errorf("content should be untouched, got %q", updated.Content)
	}
}

func TestDocumentValidationLimits(t *testing.T) {
	store := memory.New()
	svc := NewDocumentService(store, testLogger())
	ctx := context.Background()

	longTitle := strings.Repeat("x", config.MaxTitleLength+1)
	if _, err := svc.Create(ctx, &repositories.NewDocument{Title: longTitle}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("oversized title: expected ErrValidation, got %v", err)
	}

	if _, err := svc.Update(ctx, 1, &repositories.DocumentUpdate{Title: &longTitle}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("oversized title on update: expected ErrValidation, got %v", err)
	}
}

func TestDocumentUpdateUnknownID(t *testing.T) {
	store := memory.New()
	svc := NewDocumentService(store, testLogger())

	title := "nope"
	_, err := svc.Update(context.Background(), 999, &repositories.DocumentUpdate{Title: &title})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
