package weather

import (
	"context"
	"sync"
)

// Service orchestrates provider calls and the normalize/aggregate/reconcile
// pipeline. Each call owns its own result values; nothing is shared across
// concurrent requests.
type Service struct {
	provider Provider
}

// NewService creates a new Service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// FetchByCity fetches current conditions and the multi-day forecast for a
// city name.
func (s *Service) FetchByCity(ctx context.Context, city string, unit Unit) (CurrentConditions, ForecastData, error) {
	return s.Fetch(ctx, Query{City: city, Unit: unit})
}

// FetchByCoordinates fetches current conditions and the multi-day forecast
// for a coordinate pair.
func (s *Service) FetchByCoordinates(ctx context.Context, lat, lon float64, unit Unit) (CurrentConditions, ForecastData, error) {
	return s.Fetch(ctx, Query{Lat: &lat, Lon: &lon, Unit: unit})
}

// Fetch issues the current-conditions and forecast requests concurrently,
// then normalizes, aggregates and reconciles the pair. Failure of either
// request aborts the combined operation; no partial result is returned.
func (s *Service) Fetch(ctx context.Context, q Query) (CurrentConditions, ForecastData, error) {
	var (
		wg           sync.WaitGroup
		currentResp  *CurrentWeatherResponse
		forecastResp *ForecastResponse
		currentErr   error
		forecastErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		currentResp, currentErr = s.provider.CurrentWeather(ctx, q)
	}()
	go func() {
		defer wg.Done()
		forecastResp, forecastErr = s.provider.Forecast(ctx, q)
	}()
	wg.Wait()

	if currentErr != nil {
		return CurrentConditions{}, ForecastData{}, currentErr
	}
	if forecastErr != nil {
		return CurrentConditions{}, ForecastData{}, forecastErr
	}

	current := NormalizeCurrent(currentResp, q.Unit)
	forecast := ReconcileToday(current, NormalizeForecast(forecastResp, q.Unit))
	return current, forecast, nil
}

// CurrentWeather fetches and normalizes current conditions only.
func (s *Service) CurrentWeather(ctx context.Context, q Query) (CurrentConditions, error) {
	resp, err := s.provider.CurrentWeather(ctx, q)
	if err != nil {
		return CurrentConditions{}, err
	}
	return NormalizeCurrent(resp, q.Unit), nil
}

// Forecast fetches, normalizes and aggregates the forecast only. Without a
// matching current observation there is nothing to reconcile against.
func (s *Service) Forecast(ctx context.Context, q Query) (ForecastData, error) {
	resp, err := s.provider.Forecast(ctx, q)
	if err != nil {
		return ForecastData{}, err
	}
	return NormalizeForecast(resp, q.Unit), nil
}

// SearchCities resolves a free-text query into geocoding matches with
// precomputed display labels.
func (s *Service) SearchCities(ctx context.Context, query string, limit int) ([]CitySearchResult, error) {
	locs, err := s.provider.SearchCities(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]CitySearchResult, 0, len(locs))
	for _, loc := range locs {
		results = append(results, NewCitySearchResult(loc.Name, loc.Country, loc.State, loc.Lat, loc.Lon))
	}
	return results, nil
}
