package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"globetrotter-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CatalogLoader fetches the country catalog from a backing source (upstream
// REST API, Postgres snapshot, static fixture).
type CatalogLoader interface {
	LoadCountries(ctx context.Context) ([]domain.Country, error)
}

// CatalogRepository caches the catalog with TTL to avoid repeated upstream hits.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	countries []domain.Country
	expiresAt time.Time
}

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	now := r.clock()

	r.mu.RLock()
	if r.countries != nil && r.expiresAt.After(now) {
		countries := r.countries
		r.mu.RUnlock()
		return countries, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("catalog", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.countries != nil && r.expiresAt.After(now) {
			countries := r.countries
			r.mu.RUnlock()
			return countries, nil
		}
		r.mu.RUnlock()

		countries, err := r.loader.LoadCountries(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.countries = countries
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Country), nil
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticCatalogLoader serves a fixed catalog (useful for tests/demos).
type StaticCatalogLoader struct {
	countries []domain.Country
}

func NewStaticCatalogLoader(countries []domain.Country) *StaticCatalogLoader {
	return &StaticCatalogLoader{countries: countries}
}

func (l *StaticCatalogLoader) LoadCountries(_ context.Context) ([]domain.Country, error) {
	if len(l.countries) == 0 {
		return nil, domain.ErrCatalogUnavailable
	}
	return l.countries, nil
}
