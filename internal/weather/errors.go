package weather

import "errors"

// Domain error kinds surfaced to the boundary layer. Upstream failures are
// classified into one of these by the provider implementation; anything
// unrecognizable falls back to ErrUnavailable.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrCityNotFound = errors.New("city not found")
	ErrUnauthorized = errors.New("invalid api key")
	ErrRateLimited  = errors.New("rate limit exceeded")
	ErrUnavailable  = errors.New("weather provider unavailable")
)
