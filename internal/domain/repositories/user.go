package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// NewUser holds the fields needed to create a user. The store assigns the id.
type NewUser struct {
	Username     string
	PasswordHash string
}

// UserRepository provides access to user records. CreateUser returns a
// ConflictError on a duplicate username; both backends enforce the
// constraint atomically, which the auth service's pre-check cannot.
type UserRepository interface {
	CreateUser(ctx context.Context, user *NewUser) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
