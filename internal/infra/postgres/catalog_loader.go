package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"globetrotter-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CatalogLoader reads a country catalog snapshot stored as JSONB rows.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM countries ORDER BY cca3`)
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	defer rows.Close()

	var countries []domain.Country
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		var country domain.Country
		if err := json.Unmarshal(raw, &country); err != nil {
			return nil, fmt.Errorf("unmarshal country: %w", err)
		}
		countries = append(countries, country)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	if len(countries) == 0 {
		return nil, domain.ErrCatalogUnavailable
	}
	return countries, nil
}
