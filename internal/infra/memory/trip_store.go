package memory

import (
	"context"
	"sync"

	"globetrotter-service/internal/domain"
)

// TripStore is an in-memory implementation of app.TripStore.
type TripStore struct {
	mu    sync.RWMutex
	trips map[string]domain.Trip
}

func NewTripStore() *TripStore {
	return &TripStore{trips: make(map[string]domain.Trip)}
}

func (s *TripStore) Save(_ context.Context, trip domain.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips[trip.ID] = trip
	return nil
}

func (s *TripStore) Get(_ context.Context, id string) (domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trip, ok := s.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripStore) List(_ context.Context) ([]domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trips := make([]domain.Trip, 0, len(s.trips))
	for _, trip := range s.trips {
		trips = append(trips, trip)
	}
	return trips, nil
}

func (s *TripStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trips[id]; !ok {
		return domain.ErrTripNotFound
	}
	delete(s.trips, id)
	return nil
}
