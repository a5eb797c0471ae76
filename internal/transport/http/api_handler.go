package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"globetrotter-service/internal/app"
	"globetrotter-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

// APIHandler exposes the quiz, trip, and catalog use cases over REST.
type APIHandler struct {
	quiz    *app.QuizService
	trips   *app.TripService
	lobbies *app.LobbyService
	daily   *app.DailyPicker
	catalog app.CatalogRepository
	scores  app.LeaderboardStore
	prefs   app.PreferenceStore
}

func NewAPIHandler(
	quiz *app.QuizService,
	trips *app.TripService,
	lobbies *app.LobbyService,
	daily *app.DailyPicker,
	catalog app.CatalogRepository,
	scores app.LeaderboardStore,
	prefs app.PreferenceStore,
) *APIHandler {
	return &APIHandler{
		quiz:    quiz,
		trips:   trips,
		lobbies: lobbies,
		daily:   daily,
		catalog: catalog,
		scores:  scores,
		prefs:   prefs,
	}
}

// Routes returns the /api router.
func (h *APIHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/quiz/sessions", func(r chi.Router) {
		r.Post("/", h.createSession)
		r.Post("/{id}/start", h.startSession)
		r.Post("/{id}/answers", h.submitAnswer)
		r.Post("/{id}/restart", h.restartSession)
	})
	r.Get("/leaderboard", h.leaderboard)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", h.createTrip)
		r.Get("/", h.listTrips)
		r.Post("/estimate", h.estimate)
		r.Post("/itinerary", h.itinerary)
		r.Get("/{id}", h.getTrip)
		r.Put("/{id}", h.updateTrip)
		r.Delete("/{id}", h.deleteTrip)
	})

	r.Get("/countries", h.listCountries)
	r.Get("/countries/daily", h.countryOfDay)

	r.Get("/preferences/theme", h.getTheme)
	r.Put("/preferences/theme", h.setTheme)

	r.Post("/lobbies", h.createLobby)

	return r
}

func (h *APIHandler) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerName string `json:"playerName"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.quiz.CreateSession(req.PlayerName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"sessionId": session.ID()})
}

func (h *APIHandler) startSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Difficulty string `json:"difficulty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	difficulty, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, err)
		return
	}
	questions, err := h.quiz.Start(r.Context(), chi.URLParam(r, "id"), difficulty)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questionViews(questions)})
}

func (h *APIHandler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CountryID string `json:"countryId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	outcome, err := h.quiz.SubmitAnswer(r.Context(), chi.URLParam(r, "id"), req.CountryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (h *APIHandler) restartSession(w http.ResponseWriter, r *http.Request) {
	if err := h.quiz.Restart(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) leaderboard(w http.ResponseWriter, r *http.Request) {
	results, err := h.scores.HighScores(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		difficulty, err := domain.ParseDifficulty(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		results = app.FilterByDifficulty(results, difficulty)
	}
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, domain.ErrInvalidInput)
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, app.TopN(app.RankResults(results), limit))
}

func (h *APIHandler) createTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if !decodeJSON(w, r, &trip) {
		return
	}
	created, err := h.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *APIHandler) listTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.trips.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

func (h *APIHandler) getTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := h.trips.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *APIHandler) updateTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if !decodeJSON(w, r, &trip) {
		return
	}
	trip.ID = chi.URLParam(r, "id")
	if err := h.trips.Update(r.Context(), trip); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *APIHandler) deleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := h.trips.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) estimate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Country   string            `json:"country"`
		Days      int               `json:"days"`
		Travelers int               `json:"travelers"`
		Overrides app.CostOverrides `json:"overrides"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Travelers == 0 {
		req.Travelers = 1
	}
	estimate, err := h.trips.Estimate(req.Country, req.Days, req.Travelers, req.Overrides)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, estimate)
}

func (h *APIHandler) itinerary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDate    string                   `json:"startDate"`
		EndDate      string                   `json:"endDate"`
		Destinations []domain.TripDestination `json:"destinations"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	days, err := h.trips.Itinerary(start, end, req.Destinations)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (h *APIHandler) listCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.catalog.ListCountries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

func (h *APIHandler) countryOfDay(w http.ResponseWriter, r *http.Request) {
	country, err := h.daily.CountryOfDay(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, country)
}

func (h *APIHandler) getTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.prefs.Theme(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(theme)})
}

func (h *APIHandler) setTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	theme, err := domain.ParseTheme(req.Theme)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.prefs.SetTheme(r.Context(), theme); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(theme)})
}

func (h *APIHandler) createLobby(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Difficulty string `json:"difficulty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	difficulty, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, err)
		return
	}
	lobby, err := h.lobbies.Create(r.Context(), difficulty)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"code": lobby.Code()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return false
	}
	return true
}

// parseDate accepts plain dates and full RFC 3339 timestamps.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrLobbyNotFound),
		errors.Is(err, domain.ErrTripNotFound),
		errors.Is(err, domain.ErrParticipantNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientData):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCatalogUnavailable):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
