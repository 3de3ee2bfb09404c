package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema creates the tables if they do not exist and seeds the initial
// empty document, mirroring what the in-memory store does at construction.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			user_id BIGINT NULL REFERENCES users(id),
			last_modified TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS suggestions (
			id BIGSERIAL PRIMARY KEY,
			document_id BIGINT NOT NULL REFERENCES documents(id),
			prompt TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			panel_position TEXT NOT NULL DEFAULT 'right',
			generated BOOLEAN NOT NULL DEFAULT FALSE,
			generated_content TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_suggestions_document_id ON suggestions(document_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	if count == 0 {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO documents (title, content, user_id) VALUES ($1, '', NULL)`,
			"Untitled",
		)
		if err != nil {
			return fmt.Errorf("seed initial document: %w", err)
		}
	}

	return nil
}
