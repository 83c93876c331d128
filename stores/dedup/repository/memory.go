package repository

import (
	"sync"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
)

type memoryStore struct {
	mu       sync.RWMutex
	capacity Capacity
	ids      map[string]struct{}
	order    []string
}

// NewMemoryStore keeps the posted set for the lifetime of the process
func NewMemoryStore(capacity Capacity) (domain.DedupStore, error) {
	if err := capacity.validate(); err != nil {
		return nil, err
	}
	return &memoryStore{
		capacity: capacity,
		ids:      make(map[string]struct{}),
	}, nil
}

func (s *memoryStore) Has(c ctx.Ctx, txId string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[txId]
	return ok, nil
}

func (s *memoryStore) Add(c ctx.Ctx, txId string) error {
	s.mu.Lock()
	if _, ok := s.ids[txId]; !ok {
		s.ids[txId] = struct{}{}
		s.order = append(s.order, txId)
	}
	s.mu.Unlock()

	_, err := s.EvictIfOverCapacity(c)
	return err
}

func (s *memoryStore) Len(c ctx.Ctx) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

func (s *memoryStore) EvictIfOverCapacity(c ctx.Ctx) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.order) <= s.capacity.Ceiling {
		return 0, nil
	}

	evicted := s.order[:s.capacity.EvictCount]
	for _, id := range evicted {
		delete(s.ids, id)
	}
	// copy so the backing array of evicted ids can be released
	s.order = append([]string(nil), s.order[s.capacity.EvictCount:]...)

	c.WithField("evicted", len(evicted)).WithField("size", len(s.order)).Info("posted set evicted")
	return len(evicted), nil
}
