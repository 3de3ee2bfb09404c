// Package postgres implements the repository interfaces over a pgx pool.
// It is an optional durable backend selected by DATABASE_URL; the default
// deployment uses the in-memory store.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

// Store implements the user, document and suggestion repositories.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewStore wraps an existing connection pool.
func NewStore(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{pool: pool, logger: logger}
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// --- users ---

func (s *Store) CreateUser(ctx context.Context, user *repositories.NewUser) (*models.User, error) {
	u := &models.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`,
		user.Username, user.PasswordHash,
	).Scan(&u.ID)
	if err != nil {
		if IsPgDuplicateError(err) {
			// The UNIQUE constraint serializes concurrent registrations.
			return nil, &domain.ConflictError{
				Message:      "Username already exists",
				ResourceType: "user",
			}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// --- documents ---

func (s *Store) CreateDocument(ctx context.Context, doc *repositories.NewDocument) (*models.Document, error) {
	title := doc.Title
	if title == "" {
		title = models.DefaultTitle
	}

	d := &models.Document{
		Title:   title,
		Content: doc.Content,
		UserID:  doc.UserID,
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO documents (title, content, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, last_modified`,
		title, doc.Content, doc.UserID,
	).Scan(&d.ID, &d.LastModified)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	return d, nil
}

func (s *Store) GetDocument(ctx context.Context, id int) (*models.Document, error) {
	var d models.Document
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, content, user_id, last_modified FROM documents WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Title, &d.Content, &d.UserID, &d.LastModified)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

func (s *Store) ListDocuments(ctx context.Context) ([]models.Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, content, user_id, last_modified FROM documents ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Content, &d.UserID, &d.LastModified); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *Store) UpdateDocument(ctx context.Context, id int, update *repositories.DocumentUpdate) (*models.Document, error) {
	var d models.Document
	err := s.pool.QueryRow(ctx,
		`UPDATE documents
		 SET title = COALESCE($2, title),
		     content = COALESCE($3, content),
		     last_modified = now()
		 WHERE id = $1
		 RETURNING id, title, content, user_id, last_modified`,
		id, update.Title, update.Content,
	).Scan(&d.ID, &d.Title, &d.Content, &d.UserID, &d.LastModified)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update document: %w", err)
	}
	return &d, nil
}

// --- suggestions ---

func (s *Store) CreateSuggestion(ctx context.Context, sg *repositories.NewSuggestion) (*models.Suggestion, error) {
	position := sg.Position
	if position == "" {
		position = models.PositionRight
	}

	rec := &models.Suggestion{
		DocumentID:  sg.DocumentID,
		Prompt:      sg.Prompt,
		Description: sg.Description,
		Position:    position,
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO suggestions (document_id, prompt, description, panel_position)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		sg.DocumentID, sg.Prompt, sg.Description, position,
	).Scan(&rec.ID)
	if err != nil {
		return nil, fmt.Errorf("create suggestion: %w", err)
	}

	return rec, nil
}

func (s *Store) GetSuggestion(ctx context.Context, id int) (*models.Suggestion, error) {
	var rec models.Suggestion
	err := s.pool.QueryRow(ctx,
		`SELECT id, document_id, prompt, description, panel_position, generated, generated_content
		 FROM suggestions WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.DocumentID, &rec.Prompt, &rec.Description, &rec.Position, &rec.Generated, &rec.GeneratedContent)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("suggestion %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get suggestion: %w", err)
	}
	return &rec, nil
}

func (s *Store) ListSuggestions(ctx context.Context, documentID int) ([]models.Suggestion, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, document_id, prompt, description, panel_position, generated, generated_content
		 FROM suggestions WHERE document_id = $1 ORDER BY id`,
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	defer rows.Close()

	out := make([]models.Suggestion, 0)
	for rows.Next() {
		var rec models.Suggestion
		if err := rows.Scan(&rec.ID, &rec.DocumentID, &rec.Prompt, &rec.Description, &rec.Position, &rec.Generated, &rec.GeneratedContent); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	return out, nil
}

func (s *Store) UpdateSuggestion(ctx context.Context, id int, update *repositories.SuggestionUpdate) (*models.Suggestion, error) {
	var rec models.Suggestion
	err := s.pool.QueryRow(ctx,
		`UPDATE suggestions
		 SET generated = COALESCE($2, generated),
		     generated_content = COALESCE($3, generated_content)
		 WHERE id = $1
		 RETURNING id, document_id, prompt, description, panel_position, generated, generated_content`,
		id, update.Generated, update.GeneratedContent,
	).Scan(&rec.ID, &rec.DocumentID, &rec.Prompt, &rec.Description, &rec.Position, &rec.Generated, &rec.GeneratedContent)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("suggestion %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update suggestion: %w", err)
	}
	return &rec, nil
}

func (s *Store) DeleteSuggestion(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM suggestions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete suggestion: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
