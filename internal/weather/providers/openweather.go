package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"weather-lookup/internal/metrics"
	"weather-lookup/internal/weather"
)

// OpenWeatherProvider implements weather.Provider against OpenWeatherMap's
// current-conditions, 5-day forecast and geocoding endpoints.
type OpenWeatherProvider struct {
	apiKey  string
	baseURL string
	geoURL  string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	metrics *metrics.Collector
}

// NewOpenWeatherProvider creates the provider. mc may be nil when no
// metrics collection is wanted.
func NewOpenWeatherProvider(client *http.Client, apiKey string, mc *metrics.Collector) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		geoURL:  "https://api.openweathermap.org/geo/1.0",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
		metrics: mc,
	}
}

// CurrentWeather fetches the current-conditions payload for a location.
func (p *OpenWeatherProvider) CurrentWeather(ctx context.Context, q weather.Query) (*weather.CurrentWeatherResponse, error) {
	values, err := p.locationValues(q)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := p.get(ctx, p.baseURL+"/weather", values)
	p.metrics.ObserveUpstream("current", start, err)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload weather.CurrentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding current weather: %v", weather.ErrUnavailable, err)
	}
	return &payload, nil
}

// Forecast fetches the 3-hour-resolution forecast payload for a location.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, q weather.Query) (*weather.ForecastResponse, error) {
	values, err := p.locationValues(q)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := p.get(ctx, p.baseURL+"/forecast", values)
	p.metrics.ObserveUpstream("forecast", start, err)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload weather.ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding forecast: %v", weather.ErrUnavailable, err)
	}
	return &payload, nil
}

// SearchCities resolves a free-text query through the geocoding endpoint.
func (p *OpenWeatherProvider) SearchCities(ctx context.Context, query string, limit int) ([]weather.GeocodingLocation, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: openweather api key is not configured", weather.ErrUnauthorized)
	}

	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("q", query)
	values.Set("limit", strconv.Itoa(limit))

	start := time.Now()
	resp, err := p.get(ctx, p.geoURL+"/direct", values)
	p.metrics.ObserveUpstream("geocoding", start, err)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload []weather.GeocodingLocation
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding geocoding response: %v", weather.ErrUnavailable, err)
	}
	return payload, nil
}

// locationValues builds the query string identifying the location plus the
// api key and units parameter.
func (p *OpenWeatherProvider) locationValues(q weather.Query) (url.Values, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: openweather api key is not configured", weather.ErrUnauthorized)
	}

	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("units", q.Unit.APIUnits())

	if q.Lat != nil && q.Lon != nil {
		values.Set("lat", strconv.FormatFloat(*q.Lat, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(*q.Lon, 'f', -1, 64))
		return values, nil
	}
	if q.City != "" {
		values.Set("q", q.City)
		return values, nil
	}
	return nil, fmt.Errorf("%w: city or coordinates are required", weather.ErrInvalidInput)
}

func (p *OpenWeatherProvider) get(ctx context.Context, endpoint string, values url.Values) (*http.Response, error) {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", endpoint, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}
	return doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
}
