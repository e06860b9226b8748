// Package session holds the per-user booking session: the offer cache and the
// selection accumulator, persisted after every mutation through a pluggable Store.
package session

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by a Store when no state exists for the session.
var ErrNotFound = errors.New("session state not found")

// Entry is one persisted key and its JSON value.
type Entry struct {
	Key   string
	Value []byte
}

// Store persists session state as independent JSON values under well-known keys.
type Store interface {
	// Load returns the values present for keys. Absent keys are omitted.
	// It returns ErrNotFound when none of the keys exist.
	Load(ctx context.Context, sessionID string, keys []string) (map[string][]byte, error)

	// Save writes every entry, replacing previous values.
	Save(ctx context.Context, sessionID string, entries []Entry) error
}

// MemoryStore keeps session state in process memory. It is meant for tests and
// single-instance development runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string][]byte)}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context, sessionID string, keys []string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.data[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := stored[k]; ok {
			out[k] = append([]byte(nil), v...)
		}
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, sessionID string, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.data[sessionID]
	if !ok {
		stored = make(map[string][]byte, len(entries))
		s.data[sessionID] = stored
	}
	for _, e := range entries {
		stored[e.Key] = append([]byte(nil), e.Value...)
	}
	return nil
}

// Len returns the number of sessions held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

var _ Store = (*MemoryStore)(nil)
