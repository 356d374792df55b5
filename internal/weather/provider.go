package weather

import (
	"context"
	"fmt"
)

// Query identifies a location for upstream lookups. Exactly one of City or
// the Lat/Lon pair is expected; the boundary layer enforces this before a
// query reaches the service.
type Query struct {
	City string
	Lat  *float64
	Lon  *float64
	Unit Unit
}

// Key returns a short identifier for logs.
func (q Query) Key() string {
	if q.City != "" {
		return q.City
	}
	if q.Lat != nil && q.Lon != nil {
		return fmt.Sprintf("%.4f,%.4f", *q.Lat, *q.Lon)
	}
	return "<empty>"
}

// Provider abstracts the upstream weather data source. Implementations
// return raw payloads and classify upstream failures into the domain
// errors of this package.
type Provider interface {
	CurrentWeather(ctx context.Context, q Query) (*CurrentWeatherResponse, error)
	Forecast(ctx context.Context, q Query) (*ForecastResponse, error)
	SearchCities(ctx context.Context, query string, limit int) ([]GeocodingLocation, error)
}
