// Package memory implements the repository interfaces over process-local
// maps. Nothing survives a restart; this is the default backend.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

// Store holds all three entity collections behind one mutex. Ids are
// assigned from per-kind counters, monotonically increasing, never reused.
// Unlike the map operations of a single-threaded runtime, Go handlers run
// in parallel, so every access takes the lock.
type Store struct {
	mu sync.Mutex

	users       map[int]*models.User
	usernames   map[string]int
	documents   map[int]*models.Document
	suggestions map[int]*models.Suggestion

	userID       int
	documentID   int
	suggestionID int
}

// New creates an empty store seeded with one untitled, ownerless document.
func New() *Store {
	s := &Store{
		users:       make(map[int]*models.User),
		usernames:   make(map[string]int),
		documents:   make(map[int]*models.Document),
		suggestions: make(map[int]*models.Suggestion),
	}

	s.CreateDocument(context.Background(), &repositories.NewDocument{})
	return s
}

// --- users ---

// CreateUser adds a user record. Username uniqueness is enforced here,
// under the lock; the auth service's pre-check cannot serialize
// concurrent registrations on its own.
func (s *Store) CreateUser(ctx context.Context, user *repositories.NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[user.Username]; taken {
		return nil, &domain.ConflictError{
			Message:      "Username already exists",
			ResourceType: "user",
		}
	}

	s.userID++
	u := &models.User{
		ID:           s.userID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}
	s.users[u.ID] = u
	s.usernames[u.Username] = u.ID
	return cloneUser(u), nil
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return cloneUser(u), nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.usernames[username]; ok {
		return cloneUser(s.users[id]), nil
	}
	return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
}

// --- documents ---

// Create adds a document, applying defaults: empty title becomes "Untitled",
// LastModified is set to now.
func (s *Store) CreateDocument(ctx context.Context, doc *repositories.NewDocument) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documentID++
	title := doc.Title
	if title == "" {
		title = models.DefaultTitle
	}

	d := &models.Document{
		ID:           s.documentID,
		Title:        title,
		Content:      doc.Content,
		UserID:       doc.UserID,
		LastModified: time.Now(),
	}
	s.documents[d.ID] = d
	return cloneDocument(d), nil
}

func (s *Store) GetDocument(ctx context.Context, id int) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.documents[id]
	if !ok {
		return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}
	return cloneDocument(d), nil
}

func (s *Store) ListDocuments(ctx context.Context) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]models.Document, 0, len(s.documents))
	for _, d := range s.documents {
		docs = append(docs, *cloneDocument(d))
	}
	// Map iteration order is random; id order equals insertion order.
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Update shallow-merges the provided fields and refreshes LastModified.
func (s *Store) UpdateDocument(ctx context.Context, id int, update *repositories.DocumentUpdate) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.documents[id]
	if !ok {
		return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}

	if update.Title != nil {
		d.Title = *update.Title
	}
	if update.Content != nil {
		d.Content = *update.Content
	}
	d.LastModified = time.Now()
	return cloneDocument(d), nil
}

// --- suggestions ---

// CreateSuggestion adds a suggestion. Generated state always starts cleared,
// whatever the caller passes; empty position defaults to "right".
func (s *Store) CreateSuggestion(ctx context.Context, sg *repositories.NewSuggestion) (*models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suggestionID++
	position := sg.Position
	if position == "" {
		position = models.PositionRight
	}

	rec := &models.Suggestion{
		ID:               s.suggestionID,
		DocumentID:       sg.DocumentID,
		Prompt:           sg.Prompt,
		Description:      sg.Description,
		Position:         position,
		Generated:        false,
		GeneratedContent: "",
	}
	s.suggestions[rec.ID] = rec
	return cloneSuggestion(rec), nil
}

func (s *Store) GetSuggestion(ctx context.Context, id int) (*models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.suggestions[id]
	if !ok {
		return nil, fmt.Errorf("suggestion %d: %w", id, domain.ErrNotFound)
	}
	return cloneSuggestion(rec), nil
}

func (s *Store) ListSuggestions(ctx context.Context, documentID int) ([]models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Suggestion, 0)
	for _, rec := range s.suggestions {
		if rec.DocumentID == documentID {
			out = append(out, *cloneSuggestion(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateSuggestion(ctx context.Context, id int, update *repositories.SuggestionUpdate) (*models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.suggestions[id]
	if !ok {
		return nil, fmt.Errorf("suggestion %d: %w", id, domain.ErrNotFound)
	}

	if update.Generated != nil {
		rec.Generated = *update.Generated
	}
	if update.GeneratedContent != nil {
		rec.GeneratedContent = *update.GeneratedContent
	}
	return cloneSuggestion(rec), nil
}

func (s *Store) DeleteSuggestion(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.suggestions[id]
	delete(s.suggestions, id)
	return ok, nil
}

// Clones keep callers from mutating store-owned records outside the lock.

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func cloneDocument(d *models.Document) *models.Document {
	c := *d
	if d.UserID != nil {
		id := *d.UserID
		c.UserID = &id
	}
	return &c
}

func cloneSuggestion(sg *models.Suggestion) *models.Suggestion {
	c := *sg
	return &c
}
