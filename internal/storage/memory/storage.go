package memory

import (
	"context"
	"sync"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// A single mutex serializes all counter mutations; with a handful of
// roster-sized rows there is no contention worth sharding.
type Storage struct {
	mu     sync.RWMutex
	counts map[model.PlayerID]int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		counts: make(map[model.PlayerID]int),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetOrCreateCount(ctx context.Context, id model.PlayerID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if count, ok := s.counts[id]; ok {
		return count, nil
	}
	s.counts[id] = 0
	return 0, nil
}

func (s *Storage) ReadCount(ctx context.Context, id model.PlayerID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[id], nil
}

func (s *Storage) ApplyDelta(ctx context.Context, id model.PlayerID, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := s.counts[id] + delta
	if count < 0 {
		count = 0
	}
	s.counts[id] = count
	return count, nil
}
