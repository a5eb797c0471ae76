package app

import (
	"time"

	"globetrotter-service/internal/domain"
)

// BuildItinerary partitions destinations over an inclusive date range into
// contiguous, order-preserving chunks of ceil(destinations/days). Days beyond
// the last chunk have no destinations (free time). There is no travel-time
// modeling or reordering.
func BuildItinerary(start, end time.Time, destinations []domain.TripDestination) ([]domain.ItineraryDay, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	duration := int(end.Sub(start).Hours()/24) + 1
	perDay := 0
	if len(destinations) > 0 {
		perDay = (len(destinations) + duration - 1) / duration
	}

	days := make([]domain.ItineraryDay, 0, duration)
	for i := 0; i < duration; i++ {
		chunk := []domain.TripDestination{}
		if perDay > 0 && i*perDay < len(destinations) {
			hi := (i + 1) * perDay
			if hi > len(destinations) {
				hi = len(destinations)
			}
			chunk = append(chunk, destinations[i*perDay:hi]...)
		}
		days = append(days, domain.ItineraryDay{
			DayNumber:    i + 1,
			Date:         start.AddDate(0, 0, i),
			Destinations: chunk,
		})
	}
	return days, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
