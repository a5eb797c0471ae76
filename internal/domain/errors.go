package domain

import "errors"

var (
	// ErrInsufficientData is returned when the catalog cannot satisfy a requested
	// question count or option count at the chosen difficulty.
	ErrInsufficientData = errors.New("not enough countries for requested quiz")
	// ErrInvalidInput rejects malformed user input (empty name, bad lobby code, bad dates).
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState is returned when a session operation does not apply in its current state.
	ErrInvalidState = errors.New("operation not allowed in current session state")
	// ErrSessionNotFound is returned when a quiz session id is unknown.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrLobbyNotFound is returned when no lobby exists for a code.
	ErrLobbyNotFound = errors.New("lobby not found")
	// ErrParticipantNotFound is returned when a user acts in a lobby before joining.
	ErrParticipantNotFound = errors.New("participant not found in lobby")
	// ErrTripNotFound is returned when a trip id is unknown.
	ErrTripNotFound = errors.New("trip not found")
	// ErrCatalogUnavailable indicates the country catalog could not be loaded.
	ErrCatalogUnavailable = errors.New("country catalog unavailable")
)
