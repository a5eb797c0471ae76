package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"globetrotter-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const tripsKey = "trips"

// TripStore persists trips as a Redis hash keyed by trip id.
type TripStore struct {
	client *redis.Client
}

func NewTripStore(client *redis.Client) *TripStore {
	return &TripStore{client: client}
}

func (s *TripStore) Save(ctx context.Context, trip domain.Trip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("marshal trip: %w", err)
	}
	if err := s.client.HSet(ctx, tripsKey, trip.ID, data).Err(); err != nil {
		return fmt.Errorf("save trip: %w", err)
	}
	return nil
}

func (s *TripStore) Get(ctx context.Context, id string) (domain.Trip, error) {
	data, err := s.client.HGet(ctx, tripsKey, id).Bytes()
	if err == redis.Nil {
		return domain.Trip{}, domain.ErrTripNotFound
	}
	if err != nil {
		return domain.Trip{}, fmt.Errorf("load trip: %w", err)
	}
	var trip domain.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return domain.Trip{}, fmt.Errorf("unmarshal trip: %w", err)
	}
	return trip, nil
}

func (s *TripStore) List(ctx context.Context) ([]domain.Trip, error) {
	raw, err := s.client.HGetAll(ctx, tripsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	trips := make([]domain.Trip, 0, len(raw))
	for _, item := range raw {
		var trip domain.Trip
		if err := json.Unmarshal([]byte(item), &trip); err != nil {
			continue
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

func (s *TripStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.HDel(ctx, tripsKey, id).Result()
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	if removed == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}
