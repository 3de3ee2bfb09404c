package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"inkwell/internal/domain"
	"inkwell/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthRegisterAndAuthenticate(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testLogger())
	ctx := context.Background()

	user, err := svc.Register(ctx, "margaret", "correct horse battery")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "margaret" {
		t.Errorf("expected username margaret, got %q", user.Username)
	}
	if user.PasswordHash == "correct horse battery" {
		t.Error("password stored in plain text")
	}

	got, err := svc.Authenticate(ctx, "margaret", "correct horse battery")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, got.ID)
	}
}

func TestAuthRegisterConcurrentSameUsername(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testLogger())
	ctx := context.Background()

	const workers = 8
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, "margaret", "correct horse battery")
		}(i)
	}
	wg.Wait()

	registered := 0
	for _, err := range errs {
		switch {
		case err == nil:
			registered++
		case !errors.Is(err, domain.ErrConflict):
			t.Errorf("expected ErrConflict, got %v", err)
		}
	}
	if registered != 1 {
		t.Errorf("expected exactly 1 registration to win, got %d", registered)
	}
}

func TestAuthRegisterDuplicateUsername(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testLogger())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "margaret", "correct horse battery"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(ctx, "margaret", "another password")
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testLogger())
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "correct horse battery"},
		{"empty password", "margaret", ""},
		{"short password", "margaret", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.password)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testLogger())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "margaret", "correct horse battery"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, unknownErr := svc.Authenticate(ctx, "nobody", "correct horse battery")
	if !errors.Is(unknownErr, domain.ErrUnauthorized) {
		t.Errorf("unknown user: expected ErrUnauthorized, got %v", unknownErr)
	}

	_, badPassErr := svc.Authenticate(ctx, "margaret", "wrong password!!")
	if !errors.Is(badPassErr, domain.ErrUnauthorized) {
		t.Errorf("wrong password: expected ErrUnauthorized, got %v", badPassErr)
	}

	// Both failures read identically so the response can't be used to
	// probe which usernames exist.
	if unknownErr.Error() != badPassErr.Error() {
		t.Errorf("error messages differ: %q vs %q", unknownErr, badPassErr)
	}
}
