// Package client is the Go counterpart of the admin front end's auth calls.
// It mirrors the server's lockout state locally so a UI can show a countdown
// before the user even submits, but the mirror is advisory only: every login
// call still goes to the server, which remains the authority.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
)

type Client struct {
	http    *retryablehttp.Client
	baseURL string
	mirror  *Mirror
}

// New builds a client for the API at baseURL. mirrorPath is where local
// lockout state is persisted between runs; pass "" to keep it in memory only.
func New(baseURL, mirrorPath string) *Client {
	hc := retryablehttp.NewClient()
	hc.RetryMax = 3
	hc.RetryWaitMin = 200 * time.Millisecond
	hc.RetryWaitMax = 2 * time.Second
	hc.HTTPClient.Timeout = 10 * time.Second
	hc.Logger = nil

	return &Client{
		http:    hc,
		baseURL: baseURL,
		mirror:  NewMirror(mirrorPath),
	}
}

type LoginResult struct {
	Success           bool           `json:"success"`
	User              map[string]any `json:"user,omitempty"`
	Error             string         `json:"error,omitempty"`
	Blocked           bool           `json:"blocked,omitempty"`
	BlockedUntil      int64          `json:"blockedUntil,omitempty"`
	RemainingTime     int64          `json:"remainingTime,omitempty"`
	RemainingAttempts int            `json:"remainingAttempts,omitempty"`
}

type StatusResult struct {
	Blocked       bool       `json:"blocked"`
	Attempts      int        `json:"attempts"`
	BlockedUntil  *time.Time `json:"blockedUntil,omitempty"`
	RemainingTime int64      `json:"remainingTime,omitempty"`
}

// Advisory reports the mirror's view of a username: whether the last known
// block is still running and how long remains. Callers use it for the UI
// countdown; it must never gate the actual request.
func (c *Client) Advisory(username string) (blocked bool, remaining time.Duration) {
	return c.mirror.Advisory(username, time.Now())
}

// Login submits credentials and folds the server's verdict back into the
// local mirror. A transport failure leaves the mirror untouched.
func (c *Client) Login(ctx context.Context, username, pwd string) (LoginResult, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": pwd,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("marshal login request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return LoginResult{}, fmt.Errorf("build login request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	var result LoginResult

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}

	switch {
	case result.Success:
		c.mirror.Reset(username)
	case result.Blocked:
		c.mirror.SetBlocked(username, time.UnixMilli(result.BlockedUntil))
	default:
		c.mirror.RecordFailure(username)
	}

	return result, nil
}

// Status reads the server-side lockout state without touching the counter,
// and refreshes the mirror from it.
func (c *Client) Status(ctx context.Context, username string) (StatusResult, error) {
	req, err := retryablehttp.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/api/auth/status/"+username, nil)
	if err != nil {
		return StatusResult{}, fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return StatusResult{}, fmt.Errorf("status request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return StatusResult{}, fmt.Errorf("status request: unexpected code %d", resp.StatusCode)
	}

	var result StatusResult

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return StatusResult{}, fmt.Errorf("decode status response: %w", err)
	}

	if result.Blocked && result.BlockedUntil != nil {
		c.mirror.SetBlocked(username, *result.BlockedUntil)
	} else {
		c.mirror.Reset(username)
	}

	return result, nil
}
