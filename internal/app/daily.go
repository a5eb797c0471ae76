package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"globetrotter-service/internal/domain"
)

// DailyPickStore holds the cached country of the day and its expiry.
type DailyPickStore interface {
	Get(ctx context.Context) (domain.Country, time.Time, bool, error)
	Put(ctx context.Context, country domain.Country, validUntil time.Time) error
}

// DailyPicker serves a random country that stays stable for the rest of the
// calendar day, regenerating once the cached entry expires.
type DailyPicker struct {
	catalog CatalogRepository
	store   DailyPickStore
	now     func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewDailyPicker(catalog CatalogRepository, store DailyPickStore) *DailyPicker {
	return NewDailyPickerWithClock(catalog, store, time.Now)
}

// NewDailyPickerWithClock allows deterministic expiry in tests.
func NewDailyPickerWithClock(catalog CatalogRepository, store DailyPickStore, now func() time.Time) *DailyPicker {
	return &DailyPicker{
		catalog: catalog,
		store:   store,
		now:     now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CountryOfDay returns the cached pick while it is valid, otherwise draws a
// new one valid until the end of the current calendar day.
func (p *DailyPicker) CountryOfDay(ctx context.Context) (domain.Country, error) {
	now := p.now()
	if cached, validUntil, ok, err := p.store.Get(ctx); err == nil && ok && now.Before(validUntil) {
		return cached, nil
	}

	catalog, err := p.catalog.ListCountries(ctx)
	if err != nil {
		return domain.Country{}, err
	}
	if len(catalog) == 0 {
		return domain.Country{}, domain.ErrCatalogUnavailable
	}

	p.rndMu.Lock()
	pick := catalog[p.rnd.Intn(len(catalog))]
	p.rndMu.Unlock()

	validUntil := endOfDay(now)
	// Best-effort write; a store hiccup only costs cache stability.
	_ = p.store.Put(ctx, pick, validUntil)
	return pick, nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}
