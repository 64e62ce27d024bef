package entity

import "time"

// LoginAttempt is the per-username ledger record. Attempts counts consecutive
// failures since the last success; BlockedUntil, when set and in the future,
// refuses authentication regardless of the password.
type LoginAttempt struct {
	Username     string
	Attempts     int
	BlockedUntil *time.Time
	UpdatedAt    time.Time
}

func (a LoginAttempt) Blocked(now time.Time) bool {
	return a.BlockedUntil != nil && a.BlockedUntil.After(now)
}

func (a LoginAttempt) RemainingBlock(now time.Time) time.Duration {
	if !a.Blocked(now) {
		return 0
	}

	return a.BlockedUntil.Sub(now)
}

// LoginStatus is the read-only view served by GET /api/auth/status/{username}.
type LoginStatus struct {
	Blocked       bool       `json:"blocked"`
	Attempts      int        `json:"attempts"`
	BlockedUntil  *time.Time `json:"blockedUntil,omitempty"`
	RemainingTime int64      `json:"remainingTime,omitempty"`
}
