package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"globetrotter-service/internal/app"
	"globetrotter-service/internal/domain"
	"globetrotter-service/internal/infra/memory"
)

func newTestTripService() *app.TripService {
	estimator := app.NewCostEstimatorWithClock(fixedClock(time.March))
	return app.NewTripService(memory.NewTripStore(), estimator)
}

func sampleTrip() domain.Trip {
	return domain.Trip{
		Title:     "  Spring in Portugal  ",
		StartDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC),
		HomeCountry: "United States",
		Destinations: []domain.TripDestination{
			{
				Country: domain.Country{CCA3: "PRT", Name: domain.CountryName{Common: "Portugal"}},
				City:    "Lisbon",
				PointsOfInterest: []domain.POI{
					{ID: "p1", Name: "Belém Tower"},
					{ID: "p2", Name: "Alfama"},
				},
				SelectedPOIs: []domain.POI{
					{ID: "p1", Name: "Belém Tower"},
					{ID: "p9", Name: "Somewhere Else"},
				},
			},
		},
	}
}

func TestTripCreateNormalizes(t *testing.T) {
	ctx := context.Background()
	service := newTestTripService()

	created, err := service.Create(ctx, sampleTrip())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Title != "Spring in Portugal" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	selected := created.Destinations[0].SelectedPOIs
	if len(selected) != 1 || selected[0].ID != "p1" {
		t.Fatalf("expected unknown selected POIs dropped, got %+v", selected)
	}

	stored, err := service.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Title != created.Title {
		t.Fatalf("expected stored trip to match, got %+v", stored)
	}
}

func TestTripCreateValidation(t *testing.T) {
	ctx := context.Background()
	service := newTestTripService()

	blank := sampleTrip()
	blank.Title = "   "
	if _, err := service.Create(ctx, blank); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}

	reversed := sampleTrip()
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	if _, err := service.Create(ctx, reversed); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for reversed dates, got %v", err)
	}
}

func TestTripUpdateRequiresExisting(t *testing.T) {
	ctx := context.Background()
	service := newTestTripService()

	missing := sampleTrip()
	missing.ID = "nope"
	if err := service.Update(ctx, missing); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}

	created, _ := service.Create(ctx, sampleTrip())
	created.Title = "Autumn in Portugal"
	if err := service.Update(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, _ := service.Get(ctx, created.ID)
	if stored.Title != "Autumn in Portugal" {
		t.Fatalf("expected updated title, got %q", stored.Title)
	}
}

func TestTripDelete(t *testing.T) {
	ctx := context.Background()
	service := newTestTripService()

	created, _ := service.Create(ctx, sampleTrip())
	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := service.Get(ctx, created.ID); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound after delete, got %v", err)
	}
	if err := service.Delete(ctx, created.ID); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound on double delete, got %v", err)
	}
}

func TestTripEstimateRejectsNegativeOverrides(t *testing.T) {
	service := newTestTripService()

	negative := -10.0
	_, err := service.Estimate("Germany", 5, 2, app.CostOverrides{Flights: &negative})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative override, got %v", err)
	}

	flights := 500.0
	estimate, err := service.Estimate("Germany", 5, 2, app.CostOverrides{Flights: &flights})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if estimate.Flights != 500 {
		t.Fatalf("expected flights override applied, got %v", estimate.Flights)
	}
	if estimate.Total != estimate.Flights+estimate.Lodging+estimate.Food+estimate.Activities {
		t.Fatalf("expected total recomputed, got %+v", estimate)
	}
}
