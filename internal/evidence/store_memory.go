package evidence

import (
	"context"
	"sync"

	dErrors "bluecarbon/pkg/domain-errors"
)

// MemoryStore keeps payloads in process memory. Default for tests and
// single-node development.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory builds an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, data []byte) (string, error) {
	locator := Locator(data)
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	s.blobs[locator] = cp
	s.mu.Unlock()
	return locator, nil
}

func (s *MemoryStore) Get(_ context.Context, locator string) ([]byte, error) {
	if _, err := ParseLocator(locator); err != nil {
		return nil, err
	}
	s.mu.RLock()
	blob, ok := s.blobs[locator]
	s.mu.RUnlock()
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "evidence package not found")
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}
