package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrMissingID         = errors.New("document must have an id")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrAdminExists       = errors.New("an administrator already exists")
	ErrMissingCredential = errors.New("username and password required")
)

// BlockedError is returned for both a pre-existing lockout and a freshly
// triggered one, with the same shape so the caller cannot tell them apart.
// Triggered only selects the user-facing message.
type BlockedError struct {
	BlockedUntil time.Time
	Remaining    time.Duration
	Triggered    bool
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("login blocked until %s", e.BlockedUntil.Format(time.RFC3339))
}

// InvalidCredentialsError covers both a wrong password and an unknown
// username. RemainingAttempts is always >= 1: once the counter reaches the
// maximum the outcome becomes BlockedError instead.
type InvalidCredentialsError struct {
	RemainingAttempts int
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials, %d attempt(s) remaining", e.RemainingAttempts)
}
