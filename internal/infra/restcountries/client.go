// Package restcountries loads the country catalog from the public
// REST Countries API.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"globetrotter-service/internal/domain"
)

const (
	// DefaultBaseURL is the public v3.1 endpoint.
	DefaultBaseURL = "https://restcountries.com"

	fieldsQuery = "name,capital,population,region,flags,currencies,languages,borders,latlng,cca3"
)

// Client fetches the full catalog over HTTPS. It performs no retries; callers
// cache results and surface failures as a degraded catalog.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) LoadCountries(ctx context.Context) ([]domain.Country, error) {
	url := c.baseURL + "/v3.1/all?fields=" + fieldsQuery
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var countries []domain.Country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", domain.ErrCatalogUnavailable, err)
	}
	if len(countries) == 0 {
		return nil, domain.ErrCatalogUnavailable
	}
	return countries, nil
}
