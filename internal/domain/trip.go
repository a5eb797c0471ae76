package domain

import "time"

// POI is a point of interest attached to a trip destination.
type POI struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

// TripDestination is one stop on a trip. SelectedPOIs is always a subset of
// PointsOfInterest by id; stores normalize it on save.
type TripDestination struct {
	Country          Country `json:"country"`
	City             string  `json:"city"`
	PointsOfInterest []POI   `json:"pointsOfInterest,omitempty"`
	SelectedPOIs     []POI   `json:"selectedPOIs,omitempty"`
}

// Trip is a saved multi-destination plan. Updated by whole-object replacement.
type Trip struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	StartDate    time.Time         `json:"startDate"`
	EndDate      time.Time         `json:"endDate"`
	HomeCountry  string            `json:"homeCountry,omitempty"`
	Destinations []TripDestination `json:"destinations"`
}

// CostEstimate is a derived four-category breakdown. Total is always the sum of
// the four categories, never stored or overridden independently.
type CostEstimate struct {
	Flights    float64 `json:"flights"`
	Lodging    float64 `json:"lodging"`
	Food       float64 `json:"food"`
	Activities float64 `json:"activities"`
	Total      float64 `json:"total"`
}

// ItineraryDay is one entry of a day-by-day plan. An empty Destinations slice
// means free time.
type ItineraryDay struct {
	DayNumber    int               `json:"dayNumber"`
	Date         time.Time         `json:"date"`
	Destinations []TripDestination `json:"destinations"`
}
