package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-lookup/internal/weather"
)

// RateLimitedProvider wraps a weather.Provider and throttles outbound calls
// so the upstream quota is not burned through by bursts of requests.
type RateLimitedProvider struct {
	next    weather.Provider
	limiter *rate.Limiter
}

// NewRateLimitedProvider creates a rate-limited decorator. rps may be
// fractional for less than one request per second.
func NewRateLimitedProvider(next weather.Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// CurrentWeather waits for rate limiter permission, then forwards.
func (r *RateLimitedProvider) CurrentWeather(ctx context.Context, q weather.Query) (*weather.CurrentWeatherResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.next.CurrentWeather(ctx, q)
}

// Forecast waits for rate limiter permission, then forwards.
func (r *RateLimitedProvider) Forecast(ctx context.Context, q weather.Query) (*weather.ForecastResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.next.Forecast(ctx, q)
}

// SearchCities waits for rate limiter permission, then forwards.
func (r *RateLimitedProvider) SearchCities(ctx context.Context, query string, limit int) ([]weather.GeocodingLocation, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.next.SearchCities(ctx, query, limit)
}
