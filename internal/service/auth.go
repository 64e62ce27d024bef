package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lounnaci/gestion-eau/internal/entity"
	"github.com/lounnaci/gestion-eau/pkg/logger"
	"github.com/lounnaci/gestion-eau/pkg/password"
)

// Authenticate is the single decision point for a login attempt. An active
// block short-circuits before the credential store is consulted, so a blocked
// username leaks nothing about whether the account exists. An unknown
// username and a wrong password follow the identical failure path.
func (s *Service) Authenticate(ctx context.Context, username, pwd string) (entity.Document, error) {
	now := time.Now()

	attempt, err := s.attemptRepo.Get(ctx, username)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		slog.ErrorContext(ctx, "error reading login attempts", "username", username, "error", err)
		return nil, fmt.Errorf("read login attempts: %w", err)
	}

	if err == nil && attempt.Blocked(now) {
		slog.WarnContext(ctx, "login refused, active block",
			"username", username, "blocked_until", attempt.BlockedUntil)

		return nil, &entity.BlockedError{
			BlockedUntil: *attempt.BlockedUntil,
			Remaining:    attempt.RemainingBlock(now),
		}
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Unknown username counts as a failed attempt so enumeration is
			// indistinguishable from a wrong password.
			return nil, s.recordFailure(ctx, username, now)
		}

		slog.ErrorContext(ctx, "error reading credentials", "username", username, "error", err)

		return nil, fmt.Errorf("read credentials: %w", err)
	}

	if !password.Verify(pwd, user.Password) {
		return nil, s.recordFailure(ctx, username, now)
	}

	err = s.attemptRepo.RecordSuccess(ctx, username)
	if err != nil {
		slog.ErrorContext(ctx, "error resetting login attempts", "username", username, "error", err)
		return nil, fmt.Errorf("reset login attempts: %w", err)
	}

	slog.InfoContext(ctx, "login successful", "username", username, "role", user.Role)

	return user.SansPassword(), nil
}

func (s *Service) recordFailure(ctx context.Context, username string, now time.Time) error {
	attempt, err := s.attemptRepo.RecordFailure(
		ctx,
		username,
		s.cfg.Login.MaxAttempts,
		now.Add(s.cfg.Login.BlockDuration),
	)
	if err != nil {
		slog.ErrorContext(ctx, "error recording failed login", "username", username, "error", err)
		return fmt.Errorf("record failed login: %w", err)
	}

	if attempt.Blocked(now) {
		ctx = logger.SetLogType(ctx, "security")

		slog.WarnContext(ctx, "login attempt limit exceeded",
			"username", username,
			"attempts", attempt.Attempts,
			"blocked_until", attempt.BlockedUntil,
		)

		if s.events != nil {
			s.events.LoginBlocked(ctx, username, *attempt.BlockedUntil)
		}

		return &entity.BlockedError{
			BlockedUntil: *attempt.BlockedUntil,
			Remaining:    attempt.RemainingBlock(now),
			Triggered:    true,
		}
	}

	slog.WarnContext(ctx, "invalid credentials",
		"username", username, "attempts", attempt.Attempts)

	return &entity.InvalidCredentialsError{
		RemainingAttempts: s.cfg.Login.MaxAttempts - attempt.Attempts,
	}
}

// LoginStatus reports the ledger state for a username without mutating it.
func (s *Service) LoginStatus(ctx context.Context, username string) (entity.LoginStatus, error) {
	attempt, err := s.attemptRepo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.LoginStatus{Blocked: false, Attempts: 0}, nil
		}

		return entity.LoginStatus{}, fmt.Errorf("read login attempts: %w", err)
	}

	now := time.Now()

	if attempt.Blocked(now) {
		return entity.LoginStatus{
			Blocked:       true,
			Attempts:      attempt.Attempts,
			BlockedUntil:  attempt.BlockedUntil,
			RemainingTime: attempt.RemainingBlock(now).Milliseconds(),
		}, nil
	}

	return entity.LoginStatus{Blocked: false, Attempts: attempt.Attempts}, nil
}

// CleanExpiredBlocks backs the periodic ledger-expiry job, standing in for a
// storage-level TTL index.
func (s *Service) CleanExpiredBlocks(ctx context.Context) error {
	err := s.attemptRepo.CleanExpired(ctx)
	if err != nil {
		return fmt.Errorf("clean expired blocks: %w", err)
	}

	return nil
}
