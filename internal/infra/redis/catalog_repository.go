package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"globetrotter-service/internal/domain"
	"globetrotter-service/internal/infra/memory"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const catalogKey = "countries:catalog"

// CatalogRepository caches the country catalog in Redis as one JSON value and
// falls back to a loader on cache miss, so restarts and multiple instances
// share the same snapshot.
type CatalogRepository struct {
	client *redis.Client
	loader memory.CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader memory.CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	if countries, ok := r.fromCache(ctx); ok {
		return countries, nil
	}

	result, err, _ := r.sf.Do(catalogKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if countries, ok := r.fromCache(ctx); ok {
			return countries, nil
		}

		countries, err := r.loader.LoadCountries(ctx)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(countries); err == nil {
			_ = r.client.Set(ctx, catalogKey, data, r.ttlWithJitter()).Err()
		}
		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Country), nil
}

func (r *CatalogRepository) fromCache(ctx context.Context) ([]domain.Country, bool) {
	data, err := r.client.Get(ctx, catalogKey).Bytes()
	if err != nil || len(data) == 0 {
		return nil, false
	}
	var countries []domain.Country
	if err := json.Unmarshal(data, &countries); err != nil || len(countries) == 0 {
		return nil, false
	}
	return countries, true
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
