package memory

import (
	"context"
	"sync"
	"time"

	"globetrotter-service/internal/domain"
)

// DailyStore caches the country of the day in process memory.
type DailyStore struct {
	mu         sync.RWMutex
	country    domain.Country
	validUntil time.Time
	set        bool
}

func NewDailyStore() *DailyStore {
	return &DailyStore{}
}

func (s *DailyStore) Get(_ context.Context) (domain.Country, time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.country, s.validUntil, s.set, nil
}

func (s *DailyStore) Put(_ context.Context, country domain.Country, validUntil time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.country = country
	s.validUntil = validUntil
	s.set = true
	return nil
}
