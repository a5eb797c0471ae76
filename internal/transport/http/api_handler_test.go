package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"globetrotter-service/internal/app"
	"globetrotter-service/internal/domain"
	"globetrotter-service/internal/infra/memory"
	transporthttp "globetrotter-service/internal/transport/http"
)

func testCatalog() []domain.Country {
	names := []string{"FRA", "DEU", "ESP", "ITA", "PRT", "NLD", "BEL", "AUT", "CHE", "POL", "SWE", "NOR"}
	countries := make([]domain.Country, 0, len(names))
	for _, code := range names {
		countries = append(countries, domain.Country{
			CCA3:   code,
			Name:   domain.CountryName{Common: "Country " + code},
			Region: "Europe",
			Flags:  domain.Flags{PNG: "https://flagcdn.com/" + code + ".png"},
		})
	}
	return countries
}

func newTestServer(t *testing.T) (*httptest.Server, *memory.LeaderboardStore) {
	t.Helper()

	catalog := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(testCatalog()), time.Minute)
	scores := memory.NewLeaderboardStore()
	prefs := memory.NewPreferenceStore()
	estimator := app.NewCostEstimatorWithClock(func() time.Time {
		return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	})

	quiz := app.NewQuizService(memory.NewSessionStore(), catalog, scores, 3, 4)
	trips := app.NewTripService(memory.NewTripStore(), estimator)
	lobbies := app.NewLobbyService(memory.NewLobbyStore(), catalog, 3, 4)
	daily := app.NewDailyPicker(catalog, memory.NewDailyStore())

	handler := transporthttp.NewAPIHandler(quiz, trips, lobbies, daily, catalog, scores, prefs)
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return server, scores
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

type questionPayload struct {
	Number  int `json:"number"`
	Options []struct {
		CountryID string `json:"countryId"`
		Name      string `json:"name"`
		Flag      string `json:"flag"`
	} `json:"options"`
}

func TestQuizFlowOverHTTP(t *testing.T) {
	server, scores := newTestServer(t)

	var created struct {
		SessionID string `json:"sessionId"`
	}
	resp := postJSON(t, server.URL+"/quiz/sessions", map[string]string{"playerName": "Alice"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &created)
	if created.SessionID == "" {
		t.Fatalf("expected session id")
	}

	// Answering before the quiz starts conflicts with the session state.
	resp = postJSON(t, server.URL+"/quiz/sessions/"+created.SessionID+"/answers", map[string]string{"countryId": "FRA"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("early answer: expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var started struct {
		Questions []questionPayload `json:"questions"`
	}
	resp = postJSON(t, server.URL+"/quiz/sessions/"+created.SessionID+"/start", map[string]string{"difficulty": "hard"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &started)
	if len(started.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(started.Questions))
	}
	for i, q := range started.Questions {
		if q.Number != i+1 {
			t.Fatalf("question %d: unexpected number %d", i, q.Number)
		}
		if len(q.Options) != 4 {
			t.Fatalf("question %d: expected 4 options, got %d", i, len(q.Options))
		}
		for _, opt := range q.Options {
			if opt.CountryID == "" || opt.Name == "" || opt.Flag == "" {
				t.Fatalf("question %d: incomplete option %+v", i, opt)
			}
		}
	}

	var outcome domain.AnswerOutcome
	for _, q := range started.Questions {
		resp = postJSON(t, server.URL+"/quiz/sessions/"+created.SessionID+"/answers", map[string]string{"countryId": q.Options[0].CountryID})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("answer: status %d", resp.StatusCode)
		}
		decodeBody(t, resp, &outcome)
	}
	if !outcome.Finished {
		t.Fatalf("expected finished outcome after last answer, got %+v", outcome)
	}

	results, _ := scores.HighScores(context.Background())
	if len(results) != 1 || results[0].PlayerName != "Alice" || results[0].MaxScore != 3 {
		t.Fatalf("expected one saved result for Alice, got %+v", results)
	}

	var leaderboard []domain.QuizResult
	resp, err := http.Get(server.URL + "/leaderboard?difficulty=hard&limit=5")
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("leaderboard: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &leaderboard)
	if len(leaderboard) != 1 || leaderboard[0].PlayerName != "Alice" {
		t.Fatalf("unexpected leaderboard %+v", leaderboard)
	}

	req, _ := http.NewRequest(http.MethodPost, server.URL+"/quiz/sessions/"+created.SessionID+"/restart", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("restart: expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestQuizErrorMapping(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/quiz/sessions", map[string]string{"playerName": "  "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank name: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/quiz/sessions/unknown/start", map[string]string{"difficulty": "easy"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown session: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	created := struct {
		SessionID string `json:"sessionId"`
	}{}
	resp = postJSON(t, server.URL+"/quiz/sessions", map[string]string{"playerName": "Bob"})
	decodeBody(t, resp, &created)

	resp = postJSON(t, server.URL+"/quiz/sessions/"+created.SessionID+"/start", map[string]string{"difficulty": "nightmare"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad difficulty: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, err := http.Get(server.URL + "/leaderboard?limit=0")
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad limit: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestTripEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	trip := map[string]any{
		"title":     "Iberia loop",
		"startDate": time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		"endDate":   time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
	}
	var created domain.Trip
	resp := postJSON(t, server.URL+"/trips", trip)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create trip: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &created)
	if created.ID == "" || created.Title != "Iberia loop" {
		t.Fatalf("unexpected trip %+v", created)
	}

	var listed []domain.Trip
	resp, err := http.Get(server.URL + "/trips")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	decodeBody(t, resp, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected one trip, got %d", len(listed))
	}

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/trips/"+created.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/trips/" + created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get deleted trip: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestEstimateEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	var estimate domain.CostEstimate
	resp := postJSON(t, server.URL+"/trips/estimate", map[string]any{
		"country":   "Germany",
		"days":      5,
		"travelers": 2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("estimate: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &estimate)
	if estimate.Total != estimate.Flights+estimate.Lodging+estimate.Food+estimate.Activities {
		t.Fatalf("expected consistent total, got %+v", estimate)
	}

	resp = postJSON(t, server.URL+"/trips/estimate", map[string]any{
		"country": "Germany",
		"days":    5,
		"overrides": map[string]float64{
			"flights": -1,
		},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative override: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestItineraryEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	var days []domain.ItineraryDay
	resp := postJSON(t, server.URL+"/trips/itinerary", map[string]any{
		"startDate": "2024-05-01",
		"endDate":   "2024-05-05",
		"destinations": []map[string]any{
			{"city": "Lisbon"},
			{"city": "Porto"},
			{"city": "Faro"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("itinerary: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &days)
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if len(days[0].Destinations) != 1 || days[0].Destinations[0].City != "Lisbon" {
		t.Fatalf("unexpected first day %+v", days[0])
	}
	if len(days[4].Destinations) != 0 {
		t.Fatalf("expected trailing free day, got %+v", days[4])
	}

	resp = postJSON(t, server.URL+"/trips/itinerary", map[string]any{
		"startDate": "2024-05-05",
		"endDate":   "2024-05-01",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("reversed range: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestThemeEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	var theme struct {
		Theme string `json:"theme"`
	}
	resp, err := http.Get(server.URL + "/preferences/theme")
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	decodeBody(t, resp, &theme)
	if theme.Theme != "light" {
		t.Fatalf("expected light default, got %q", theme.Theme)
	}

	data, _ := json.Marshal(map[string]string{"theme": "dark"})
	req, _ := http.NewRequest(http.MethodPut, server.URL+"/preferences/theme", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put theme: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put theme: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, _ = http.Get(server.URL + "/preferences/theme")
	decodeBody(t, resp, &theme)
	if theme.Theme != "dark" {
		t.Fatalf("expected dark after update, got %q", theme.Theme)
	}
}

func TestCountryEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	var countries []domain.Country
	resp, err := http.Get(server.URL + "/countries")
	if err != nil {
		t.Fatalf("countries: %v", err)
	}
	decodeBody(t, resp, &countries)
	if len(countries) != len(testCatalog()) {
		t.Fatalf("expected full catalog, got %d", len(countries))
	}

	var first, second domain.Country
	resp, _ = http.Get(server.URL + "/countries/daily")
	decodeBody(t, resp, &first)
	resp, _ = http.Get(server.URL + "/countries/daily")
	decodeBody(t, resp, &second)
	if first.CCA3 == "" || first.CCA3 != second.CCA3 {
		t.Fatalf("expected a stable daily pick, got %q then %q", first.CCA3, second.CCA3)
	}
}

func TestCreateLobbyEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	var created struct {
		Code string `json:"code"`
	}
	resp := postJSON(t, server.URL+"/lobbies", map[string]string{"difficulty": "hard"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create lobby: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &created)
	if !app.ValidLobbyCode(created.Code) {
		t.Fatalf("unexpected lobby code %q", created.Code)
	}
}
