package redis

import (
	"context"
	"encoding/json"
	"time"

	"globetrotter-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const dailyKey = "countries:daily"

type dailyEntry struct {
	Country    domain.Country `json:"country"`
	ValidUntil time.Time      `json:"validUntil"`
}

// DailyStore caches the country of the day in Redis, expiring with the entry
// so stale picks clean themselves up.
type DailyStore struct {
	client *redis.Client
}

func NewDailyStore(client *redis.Client) *DailyStore {
	return &DailyStore{client: client}
}

func (s *DailyStore) Get(ctx context.Context) (domain.Country, time.Time, bool, error) {
	data, err := s.client.Get(ctx, dailyKey).Bytes()
	if err == redis.Nil {
		return domain.Country{}, time.Time{}, false, nil
	}
	if err != nil {
		return domain.Country{}, time.Time{}, false, err
	}
	var entry dailyEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.Country{}, time.Time{}, false, nil
	}
	return entry.Country, entry.ValidUntil, true, nil
}

func (s *DailyStore) Put(ctx context.Context, country domain.Country, validUntil time.Time) error {
	data, err := json.Marshal(dailyEntry{Country: country, ValidUntil: validUntil})
	if err != nil {
		return err
	}
	ttl := time.Until(validUntil)
	if ttl <= 0 {
		ttl = time.Minute
	}
	return s.client.Set(ctx, dailyKey, data, ttl).Err()
}
