package store

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	updatedAt time.Time
}

// MemoryStore is an in-process Store for storeless deployments and tests
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]map[string]memoryEntry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]map[string]memoryEntry),
	}
}

// Get returns the value for a visitor key
func (s *MemoryStore) Get(ctx context.Context, visitorID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if visitor, ok := s.entries[visitorID]; ok {
		if entry, ok := visitor[key]; ok {
			return entry.value, nil
		}
	}

	return "", ErrNotFound
}

// Set writes a value for a visitor key
func (s *MemoryStore) Set(ctx context.Context, visitorID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries[visitorID] == nil {
		s.entries[visitorID] = make(map[string]memoryEntry)
	}
	s.entries[visitorID][key] = memoryEntry{value: value, updatedAt: time.Now()}

	return nil
}

// Has reports whether an entry exists for the visitor key
func (s *MemoryStore) Has(ctx context.Context, visitorID, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if visitor, ok := s.entries[visitorID]; ok {
		_, ok = visitor[key]
		return ok, nil
	}

	return false, nil
}

// Delete removes an entry if present
func (s *MemoryStore) Delete(ctx context.Context, visitorID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if visitor, ok := s.entries[visitorID]; ok {
		delete(visitor, key)
	}

	return nil
}

// StaleVisitors returns visitor IDs whose entry under key predates olderThan
func (s *MemoryStore) StaleVisitors(ctx context.Context, key string, olderThan time.Time) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for visitorID, visitor := range s.entries {
		if entry, ok := visitor[key]; ok && entry.updatedAt.Before(olderThan) {
			ids = append(ids, visitorID)
		}
	}

	return ids, nil
}
