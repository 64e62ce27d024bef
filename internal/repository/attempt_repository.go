package repository

import (
	"context"
	"errors"
	"time"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lounnaci/gestion-eau/internal/entity"
)

// AttemptRepository owns the login_attempts ledger. Nothing else writes to it.
type AttemptRepository struct {
	db *pgxpool.Pool
}

func NewAttemptRepository(db *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{db: db}
}

func (r *AttemptRepository) Get(ctx context.Context, username string) (entity.LoginAttempt, error) {
	var attempt entity.LoginAttempt

	q := `
		SELECT username, attempts, blocked_until, updated_at
		FROM login_attempts
		WHERE username = $1
	`

	err := r.db.QueryRow(ctx, q, username).Scan(
		&attempt.Username,
		&attempt.Attempts,
		&attempt.BlockedUntil,
		&attempt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attempt, entity.ErrNotFound
		}

		return attempt, err
	}

	return attempt, nil
}

// RecordFailure increments the counter and returns the resulting row in one
// atomic upsert, so two concurrent failures cannot under-count each other.
// A row whose block has already expired restarts at 1 instead of staying
// pinned at the maximum; once the new count reaches max the row is pinned
// there and blocked_until is stamped.
func (r *AttemptRepository) RecordFailure(
	ctx context.Context,
	username string,
	max int,
	blockUntil time.Time,
) (entity.LoginAttempt, error) {
	var attempt entity.LoginAttempt

	q := `
		INSERT INTO login_attempts (username, attempts, blocked_until, updated_at)
		VALUES ($1, 1, CASE WHEN 1 >= $2 THEN $3::timestamptz ELSE NULL END, now())
		ON CONFLICT (username) DO UPDATE SET
			attempts = CASE
				WHEN login_attempts.blocked_until IS NOT NULL AND login_attempts.blocked_until <= now()
					THEN 1
				ELSE LEAST(login_attempts.attempts + 1, $2)
			END,
			blocked_until = CASE
				WHEN login_attempts.blocked_until IS NOT NULL AND login_attempts.blocked_until <= now()
					THEN CASE WHEN 1 >= $2 THEN $3::timestamptz ELSE NULL END
				WHEN login_attempts.attempts + 1 >= $2
					THEN $3::timestamptz
				ELSE NULL
			END,
			updated_at = now()
		RETURNING username, attempts, blocked_until, updated_at
	`

	err := r.db.QueryRow(ctx, q, username, max, blockUntil).Scan(
		&attempt.Username,
		&attempt.Attempts,
		&attempt.BlockedUntil,
		&attempt.UpdatedAt,
	)
	if err != nil {
		return attempt, err
	}

	return attempt, nil
}

func (r *AttemptRepository) RecordSuccess(ctx context.Context, username string) error {
	q := `
		INSERT INTO login_attempts (username, attempts, blocked_until, updated_at)
		VALUES ($1, 0, NULL, now())
		ON CONFLICT (username) DO UPDATE SET
			attempts = 0,
			blocked_until = NULL,
			updated_at = now()
	`

	_, err := r.db.Exec(ctx, q, username)
	if err != nil {
		return err
	}

	return nil
}

// CleanExpired is the TTL equivalent for the ledger: rows whose block has
// lapsed are purged so the next attempt starts fresh at zero.
func (r *AttemptRepository) CleanExpired(ctx context.Context) error {
	q := `DELETE FROM login_attempts WHERE blocked_until IS NOT NULL AND blocked_until < now()`

	_, err := r.db.Exec(ctx, q)
	if err != nil {
		return err
	}

	return nil
}

func (r *AttemptRepository) Clear(ctx context.Context, username string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM login_attempts WHERE username = $1`, username)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *AttemptRepository) ClearAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM login_attempts`)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
