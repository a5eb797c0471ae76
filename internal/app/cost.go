package app

import (
	"math"
	"strings"
	"time"

	"globetrotter-service/internal/domain"
)

// CostEstimator computes four-category trip cost breakdowns. It is pure apart
// from the clock used for seasonality, which is injectable for tests.
type CostEstimator struct {
	now func() time.Time
}

func NewCostEstimator() *CostEstimator {
	return NewCostEstimatorWithClock(time.Now)
}

// NewCostEstimatorWithClock allows deterministic seasonality in tests.
func NewCostEstimatorWithClock(now func() time.Time) *CostEstimator {
	return &CostEstimator{now: now}
}

// Estimate computes the breakdown for one destination. Flights are a one-time
// cost per trip and are never multiplied by days; the seasonal multiplier
// applies to flights only.
func (e *CostEstimator) Estimate(countryName string, days, travelers int) (domain.CostEstimate, error) {
	if strings.TrimSpace(countryName) == "" || days < 1 || travelers < 1 {
		return domain.CostEstimate{}, domain.ErrInvalidInput
	}

	profile := regionProfiles[regionFor(countryName)]
	col := costOfLivingFor(countryName)
	seasonal := seasonalMultiplier(e.now().Month())

	perDay := float64(days) * float64(travelers) * col
	estimate := domain.CostEstimate{
		Flights:    math.Round(profile.flightBase * float64(travelers) * col * seasonal),
		Lodging:    math.Round(profile.lodgingPerNight * perDay),
		Food:       math.Round(profile.foodPerDay * perDay),
		Activities: math.Round(profile.activitiesPerDay * perDay),
	}
	estimate.Total = estimate.Flights + estimate.Lodging + estimate.Food + estimate.Activities
	return estimate, nil
}

// regionFor matches a country name against the curated region lists, first by
// membership and then by substring, falling back to the default profile.
func regionFor(countryName string) string {
	name := strings.ToLower(strings.TrimSpace(countryName))
	for region, countries := range regionCountries {
		for _, entry := range countries {
			if name == entry {
				return region
			}
		}
	}
	for region, countries := range regionCountries {
		for _, entry := range countries {
			if strings.Contains(name, entry) {
				return region
			}
		}
	}
	return defaultRegion
}

func costOfLivingFor(countryName string) float64 {
	name := strings.ToLower(strings.TrimSpace(countryName))
	if col, ok := costOfLiving[name]; ok {
		return col
	}
	for entry, col := range costOfLiving {
		if strings.Contains(name, entry) {
			return col
		}
	}
	return 1.0
}

// seasonalMultiplier is 1.2 during peak travel months, 1.0 otherwise.
func seasonalMultiplier(month time.Month) float64 {
	switch month {
	case time.June, time.July, time.August, time.December, time.January:
		return 1.2
	}
	return 1.0
}

// CostOverrides carries optional per-category manual edits. An override
// replaces the computed value for that category only; the total is always
// recomputed from the resolved categories.
type CostOverrides struct {
	Flights    *float64 `json:"flights,omitempty"`
	Lodging    *float64 `json:"lodging,omitempty"`
	Food       *float64 `json:"food,omitempty"`
	Activities *float64 `json:"activities,omitempty"`
}

// Valid reports whether every present override is non-negative.
func (o CostOverrides) Valid() bool {
	for _, v := range []*float64{o.Flights, o.Lodging, o.Food, o.Activities} {
		if v != nil && *v < 0 {
			return false
		}
	}
	return true
}

// ResolveEstimate merges manual overrides over a computed baseline.
func ResolveEstimate(computed domain.CostEstimate, overrides CostOverrides) domain.CostEstimate {
	resolved := computed
	if overrides.Flights != nil {
		resolved.Flights = *overrides.Flights
	}
	if overrides.Lodging != nil {
		resolved.Lodging = *overrides.Lodging
	}
	if overrides.Food != nil {
		resolved.Food = *overrides.Food
	}
	if overrides.Activities != nil {
		resolved.Activities = *overrides.Activities
	}
	resolved.Total = resolved.Flights + resolved.Lodging + resolved.Food + resolved.Activities
	return resolved
}
