package client

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

type mirrorEntry struct {
	Attempts     int        `json:"attempts"`
	BlockedUntil *time.Time `json:"blockedUntil,omitempty"`
}

// Mirror is the client-side copy of the lockout ledger, one entry per
// username, persisted as a small JSON file. It only ever reflects what the
// server has already said.
type Mirror struct {
	mu      sync.Mutex
	path    string
	entries map[string]mirrorEntry
}

func NewMirror(path string) *Mirror {
	m := &Mirror{
		path:    path,
		entries: map[string]mirrorEntry{},
	}

	m.load()

	return m
}

func (m *Mirror) Advisory(username string, now time.Time) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[username]
	if !ok || entry.BlockedUntil == nil {
		return false, 0
	}

	if !now.Before(*entry.BlockedUntil) {
		return false, 0
	}

	return true, entry.BlockedUntil.Sub(now)
}

func (m *Mirror) Attempts(username string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.entries[username].Attempts
}

func (m *Mirror) RecordFailure(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.entries[username]
	entry.Attempts++
	m.entries[username] = entry

	m.save()
}

func (m *Mirror) SetBlocked(username string, until time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.entries[username]
	entry.BlockedUntil = &until
	m.entries[username] = entry

	m.save()
}

func (m *Mirror) Reset(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, username)

	m.save()
}

func (m *Mirror) load() {
	if m.path == "" {
		return
	}

	b, err := os.ReadFile(m.path)
	if err != nil {
		return
	}

	// Un fichier corrompu est simplement ignoré; l'état sera reconstruit.
	_ = json.Unmarshal(b, &m.entries)

	if m.entries == nil {
		m.entries = map[string]mirrorEntry{}
	}
}

func (m *Mirror) save() {
	if m.path == "" {
		return
	}

	b, err := json.Marshal(m.entries)
	if err != nil {
		return
	}

	_ = os.WriteFile(m.path, b, 0o600)
}
