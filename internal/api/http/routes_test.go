package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"weather-lookup/internal/prefs"
	"weather-lookup/internal/session"
	"weather-lookup/internal/weather"
)

type stubProvider struct {
	current     *weather.CurrentWeatherResponse
	forecast    *weather.ForecastResponse
	geo         []weather.GeocodingLocation
	currentErr  error
	forecastErr error
	geoErr      error
}

func (s *stubProvider) CurrentWeather(ctx context.Context, q weather.Query) (*weather.CurrentWeatherResponse, error) {
	return s.current, s.currentErr
}

func (s *stubProvider) Forecast(ctx context.Context, q weather.Query) (*weather.ForecastResponse, error) {
	return s.forecast, s.forecastErr
}

func (s *stubProvider) SearchCities(ctx context.Context, query string, limit int) ([]weather.GeocodingLocation, error) {
	return s.geo, s.geoErr
}

func stubResponses() (*weather.CurrentWeatherResponse, *weather.ForecastResponse) {
	current := &weather.CurrentWeatherResponse{
		Name:     "Paris",
		Dt:       time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC).Unix(),
		Timezone: 3600,
	}
	current.Sys.Country = "FR"

	forecast := &weather.ForecastResponse{
		City: weather.ForecastCity{Name: "Paris", Country: "FR", Timezone: 3600},
	}
	for h := 0; h < 24; h += 3 {
		forecast.List = append(forecast.List, weather.ForecastItem{
			Dt:   time.Date(2024, 3, 1, h, 0, 0, 0, time.UTC).Unix(),
			Main: weather.MainMetrics{TempMin: 4, TempMax: 10},
		})
	}
	return current, forecast
}

func newTestApp(t *testing.T, provider weather.Provider) (*fiber.App, *session.State, *prefs.Store) {
	t.Helper()

	app := fiber.New()
	state := session.New()
	store, err := prefs.NewStore(filepath.Join(t.TempDir(), "preferences.json"))
	if err != nil {
		t.Fatalf("prefs store: %v", err)
	}
	RegisterRoutes(app, weather.NewService(provider), store, state)
	return app, state, store
}

func testStatus(t *testing.T, app *fiber.App, method, target string, want int) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != want {
		t.Fatalf("%s %s: expected status %d, got %d", method, target, want, resp.StatusCode)
	}
	return resp
}

// TestLocationValidation verifies that exactly one of city or the
// coordinate pair must be supplied, with a recognized unit.
func TestLocationValidation(t *testing.T) {
	current, forecast := stubResponses()
	app, _, _ := newTestApp(t, &stubProvider{current: current, forecast: forecast})

	// Neither city nor coordinates.
	testStatus(t, app, http.MethodGet, "/api/v1/weather/current", http.StatusBadRequest)

	// Both city and coordinates.
	testStatus(t, app, http.MethodGet, "/api/v1/weather/current?city=Paris&lat=48.8&lon=2.3", http.StatusBadRequest)

	// Half a coordinate pair.
	testStatus(t, app, http.MethodGet, "/api/v1/weather/current?lat=48.8", http.StatusBadRequest)

	// Unrecognized unit.
	testStatus(t, app, http.MethodGet, "/api/v1/weather/current?city=Paris&unit=kelvin", http.StatusBadRequest)

	// Valid city-only and coordinates-only requests.
	testStatus(t, app, http.MethodGet, "/api/v1/weather/current?city=Paris", http.StatusOK)
	testStatus(t, app, http.MethodGet, "/api/v1/weather/current?lat=48.8&lon=2.3&unit=fahrenheit", http.StatusOK)
}

func TestCombinedWeatherStoresSessionState(t *testing.T) {
	current, forecast := stubResponses()
	app, state, _ := newTestApp(t, &stubProvider{current: current, forecast: forecast})

	resp := testStatus(t, app, http.MethodGet, "/api/v1/weather?city=Paris", http.StatusOK)

	var body struct {
		Current  weather.CurrentConditions `json:"current"`
		Forecast weather.ForecastData      `json:"forecast"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Current.City != "Paris" {
		t.Errorf("current city = %q", body.Current.City)
	}
	if len(body.Forecast.Forecasts) == 0 || body.Forecast.Forecasts[0].Date != "2024-03-01" {
		t.Errorf("forecast not reconciled: %+v", body.Forecast.Forecasts)
	}

	if _, _, ok := state.Latest(); !ok {
		t.Error("session state should hold the fetched result")
	}

	testStatus(t, app, http.MethodDelete, "/api/v1/weather", http.StatusNoContent)
	if _, _, ok := state.Latest(); ok {
		t.Error("session state should be cleared")
	}
}

func TestErrorTranslation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", weather.ErrCityNotFound, http.StatusNotFound},
		{"auth failure", weather.ErrUnauthorized, http.StatusUnauthorized},
		{"rate limited", weather.ErrRateLimited, http.StatusTooManyRequests},
		{"unavailable", weather.ErrUnavailable, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t, &stubProvider{currentErr: tt.err})
			testStatus(t, app, http.MethodGet, "/api/v1/weather/current?city=Paris", tt.want)
		})
	}
}

// TestSearchLimitValidation verifies that the search endpoint enforces the
// expected 1-10 range for the `limit` query parameter.
func TestSearchLimitValidation(t *testing.T) {
	app, _, _ := newTestApp(t, &stubProvider{geo: []weather.GeocodingLocation{
		{Name: "Paris", Country: "FR", Lat: 48.85, Lon: 2.35},
	}})

	// Missing query should return 400.
	testStatus(t, app, http.MethodGet, "/api/v1/weather/search", http.StatusBadRequest)

	// Out-of-range limit values should also return 400.
	testStatus(t, app, http.MethodGet, "/api/v1/weather/search?query=Paris&limit=0", http.StatusBadRequest)
	testStatus(t, app, http.MethodGet, "/api/v1/weather/search?query=Paris&limit=11", http.StatusBadRequest)
	testStatus(t, app, http.MethodGet, "/api/v1/weather/search?query=Paris&limit=abc", http.StatusBadRequest)

	// Default limit applies when omitted.
	resp := testStatus(t, app, http.MethodGet, "/api/v1/weather/search?query=Paris", http.StatusOK)
	var results []weather.CitySearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(results) != 1 || results[0].DisplayName != "Paris, FR" {
		t.Errorf("results = %+v", results)
	}
}

func TestPreferencesEndpoints(t *testing.T) {
	app, _, store := newTestApp(t, &stubProvider{})

	body := bytes.NewBufferString(`{"unit":"fahrenheit","theme":"dark"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	p := store.Get()
	if p.Unit != weather.UnitFahrenheit || p.Theme != prefs.ThemeDark {
		t.Errorf("stored preferences = %+v", p)
	}

	// Unrecognized unit is rejected.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/preferences", bytes.NewBufferString(`{"unit":"kelvin"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestFavoritesEndpoints(t *testing.T) {
	app, _, store := newTestApp(t, &stubProvider{})

	payload := `{"name":"Lisbon","country":"PT","lat":38.72,"lon":-9.14}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}
	if favs := store.Favorites(); len(favs) != 1 || favs[0].DisplayName != "Lisbon, PT" {
		t.Errorf("favorites = %+v", favs)
	}

	// Missing required fields.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/favorites", bytes.NewBufferString(`{"name":"Lisbon"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}

	testStatus(t, app, http.MethodDelete, "/api/v1/favorites?name=Lisbon&country=PT", http.StatusOK)
	if favs := store.Favorites(); len(favs) != 0 {
		t.Errorf("favorites after delete = %+v", favs)
	}
}
