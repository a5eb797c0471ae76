package app_test

import (
	"errors"
	"testing"
	"time"

	"globetrotter-service/internal/app"
	"globetrotter-service/internal/domain"
)

func destinations(cities ...string) []domain.TripDestination {
	dests := make([]domain.TripDestination, 0, len(cities))
	for _, city := range cities {
		dests = append(dests, domain.TripDestination{City: city})
	}
	return dests
}

func TestBuildItinerarySpreadsDestinations(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)

	days, err := app.BuildItinerary(start, end, destinations("A", "B", "C"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}

	// ceil(3/5) = 1 destination per day, order preserved, trailing days free.
	wantCities := []string{"A", "B", "C", "", ""}
	for i, day := range days {
		if day.DayNumber != i+1 {
			t.Fatalf("day %d: expected number %d, got %d", i, i+1, day.DayNumber)
		}
		if !day.Date.Equal(start.AddDate(0, 0, i)) {
			t.Fatalf("day %d: unexpected date %v", i, day.Date)
		}
		if wantCities[i] == "" {
			if len(day.Destinations) != 0 {
				t.Fatalf("day %d: expected free day, got %d destinations", i, len(day.Destinations))
			}
			continue
		}
		if len(day.Destinations) != 1 || day.Destinations[0].City != wantCities[i] {
			t.Fatalf("day %d: expected %s, got %+v", i, wantCities[i], day.Destinations)
		}
	}
}

func TestBuildItineraryPacksShortTrips(t *testing.T) {
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	days, err := app.BuildItinerary(day, day.AddDate(0, 0, 1), destinations("A", "B", "C"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	// ceil(3/2) = 2 per day: first two then the remainder.
	if len(days[0].Destinations) != 2 || len(days[1].Destinations) != 1 {
		t.Fatalf("expected 2+1 split, got %d+%d", len(days[0].Destinations), len(days[1].Destinations))
	}
	if days[0].Destinations[0].City != "A" || days[1].Destinations[0].City != "C" {
		t.Fatalf("expected order preserved, got %+v", days)
	}
}

func TestBuildItineraryNoDestinations(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	days, err := app.BuildItinerary(start, start.AddDate(0, 0, 2), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, day := range days {
		if len(day.Destinations) != 0 {
			t.Fatalf("day %d: expected free day", i)
		}
	}
}

func TestBuildItineraryRejectsReversedRange(t *testing.T) {
	start := time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)
	_, err := app.BuildItinerary(start, start.AddDate(0, 0, -1), destinations("A"))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBuildItineraryIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.May, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 2, 0, 15, 0, 0, time.UTC)

	days, err := app.BuildItinerary(start, end, destinations("A"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 calendar days, got %d", len(days))
	}
}
