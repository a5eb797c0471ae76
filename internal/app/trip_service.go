package app

import (
	"context"
	"strings"
	"time"

	"globetrotter-service/internal/domain"
	"github.com/google/uuid"
)

// TripStore persists saved trips keyed by id.
type TripStore interface {
	Save(ctx context.Context, trip domain.Trip) error
	Get(ctx context.Context, id string) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Delete(ctx context.Context, id string) error
}

// TripService owns trip CRUD, cost estimation, and itinerary building.
type TripService struct {
	store     TripStore
	estimator *CostEstimator
	newID     func() string
}

func NewTripService(store TripStore, estimator *CostEstimator) *TripService {
	return &TripService{store: store, estimator: estimator, newID: uuid.NewString}
}

// Create validates and saves a new trip under a fresh id.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := normalizeTrip(&trip); err != nil {
		return domain.Trip{}, err
	}
	trip.ID = s.newID()
	if err := s.store.Save(ctx, trip); err != nil {
		return domain.Trip{}, err
	}
	return trip, nil
}

// Update replaces a stored trip wholesale.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) error {
	if trip.ID == "" {
		return domain.ErrInvalidInput
	}
	if err := normalizeTrip(&trip); err != nil {
		return err
	}
	if _, err := s.store.Get(ctx, trip.ID); err != nil {
		return err
	}
	return s.store.Save(ctx, trip)
}

func (s *TripService) Get(ctx context.Context, id string) (domain.Trip, error) {
	return s.store.Get(ctx, id)
}

func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	return s.store.List(ctx)
}

func (s *TripService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Estimate computes the baseline breakdown and applies manual overrides.
func (s *TripService) Estimate(countryName string, days, travelers int, overrides CostOverrides) (domain.CostEstimate, error) {
	if !overrides.Valid() {
		return domain.CostEstimate{}, domain.ErrInvalidInput
	}
	computed, err := s.estimator.Estimate(countryName, days, travelers)
	if err != nil {
		return domain.CostEstimate{}, err
	}
	return ResolveEstimate(computed, overrides), nil
}

// Itinerary builds the day-by-day plan for a date range and destination list.
func (s *TripService) Itinerary(start, end time.Time, destinations []domain.TripDestination) ([]domain.ItineraryDay, error) {
	return BuildItinerary(start, end, destinations)
}

// normalizeTrip enforces the trip invariants: a non-empty title, an ordered
// date range, and selected POIs that exist in the destination's POI list.
func normalizeTrip(trip *domain.Trip) error {
	trip.Title = strings.TrimSpace(trip.Title)
	if trip.Title == "" {
		return domain.ErrInvalidInput
	}
	if trip.EndDate.Before(trip.StartDate) {
		return domain.ErrInvalidInput
	}
	for i := range trip.Destinations {
		dest := &trip.Destinations[i]
		known := make(map[string]struct{}, len(dest.PointsOfInterest))
		for _, poi := range dest.PointsOfInterest {
			known[poi.ID] = struct{}{}
		}
		kept := dest.SelectedPOIs[:0]
		for _, poi := range dest.SelectedPOIs {
			if _, ok := known[poi.ID]; ok {
				kept = append(kept, poi)
			}
		}
		dest.SelectedPOIs = kept
	}
	return nil
}
