package store

import (
	"context"
	"errors"
	"sync"
)

// Slot names used by the service. Completed records live in one fixed slot;
// in-progress snapshots are keyed per session.
const (
	CandidatesKey    = "interview:candidates"
	SessionKeyPrefix = "interview:session:"
)

var ErrKeyNotFound = errors.New("key not found")

// KV is the external key-value collaborator. Values are opaque blobs to the
// core logic. Failures are non-fatal: callers keep their in-memory state and
// only lose durability.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionKey returns the snapshot slot for one session.
func SessionKey(sessionID string) string {
	return SessionKeyPrefix + sessionID
}

// Memory is an in-process KV used in development and tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
