package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

// invalidCredentials is returned for both an unknown username and a wrong
// password so the response never reveals which one failed.
const invalidCredentials = "Invalid username or password"

// AuthService handles registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
}

type authService struct {
	users  repositories.UserRepository
	logger *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users repositories.UserRepository, logger *slog.Logger) AuthService {
	return &authService{
		users:  users,
		logger: logger,
	}
}

type credentials struct {
	Username string
	Password string
}

func (c credentials) validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username,
			validation.Required,
			validation.Length(1, config.MaxUsernameLength),
		),
		validation.Field(&c.Password,
			validation.Required,
			validation.Length(config.MinPasswordLength, config.MaxPasswordLength),
		),
	)
}

// Register creates a user with a bcrypt-hashed password. The early lookup
// skips the bcrypt work for taken names; the store enforces uniqueness.
func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := (credentials{username, password}).validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	existing, err := s.users.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, &domain.ConflictError{
			Message:      "Username already exists",
			ResourceType: "user",
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, &repositories.NewUser{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		// The store rejects duplicates atomically; the pre-check above
		// only catches the sequential case.
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate verifies a username/password pair.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, invalidCredentials)
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, invalidCredentials)
	}

	return user, nil
}

// GetUser fetches a user by id.
func (s *authService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetUserByID(ctx, id)
}
