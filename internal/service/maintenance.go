package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lounnaci/gestion-eau/internal/entity"
	"github.com/lounnaci/gestion-eau/pkg/password"
)

// SecurePasswords is the one-time migration sweep: every users-collection
// document still holding a plain-text password is rewritten to the salted
// form, keyed on the user's own id as salt. Idempotent; already-hashed
// records are left alone. Returns the number of rewritten records.
func (s *Service) SecurePasswords(ctx context.Context) (int, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	secured := 0

	for _, user := range users {
		if user.Password == "" || password.Hashed(user.Password) {
			continue
		}

		hashed := password.HashWithSalt(user.Password, user.ID)

		err := s.userRepo.SetPassword(ctx, user.ID, hashed)
		if err != nil {
			return secured, fmt.Errorf("secure password for %s: %w", user.Username, err)
		}

		slog.InfoContext(ctx, "password secured", "username", user.Username, "id", user.ID)

		secured++
	}

	return secured, nil
}

// ResetPassword stores a new password for a username, directly in hashed
// form so no plain-text window exists between reset and the migration sweep.
func (s *Service) ResetPassword(ctx context.Context, username, newPassword string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrNotFound
		}

		return fmt.Errorf("find user: %w", err)
	}

	err = s.userRepo.SetPassword(ctx, user.ID, password.HashWithSalt(newPassword, user.ID))
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}

	slog.InfoContext(ctx, "password reset", "username", username)

	return nil
}

// ClearAttempts drops ledger rows, for one username or for all of them when
// username is empty. Returns how many rows were removed.
func (s *Service) ClearAttempts(ctx context.Context, username string) (int64, error) {
	if username == "" {
		cleared, err := s.attemptRepo.ClearAll(ctx)
		if err != nil {
			return 0, fmt.Errorf("clear login attempts: %w", err)
		}

		return cleared, nil
	}

	cleared, err := s.attemptRepo.Clear(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("clear login attempts for %s: %w", username, err)
	}

	return cleared, nil
}
