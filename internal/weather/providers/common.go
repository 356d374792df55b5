package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"weather-lookup/internal/weather"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// HTTPClientConfig bundles HTTP client and resilience settings.
type HTTPClientConfig struct {
	Client  *http.Client
	Backoff BackoffConfig
}

var (
	errNoHTTPClient  = errors.New("http client not configured")
	errInvalidConfig = errors.New("invalid backoff configuration")
)

// classifyStatus maps an upstream HTTP status to a domain error kind.
func classifyStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return weather.ErrInvalidInput
	case http.StatusUnauthorized:
		return weather.ErrUnauthorized
	case http.StatusNotFound:
		return weather.ErrCityNotFound
	case http.StatusTooManyRequests:
		return weather.ErrRateLimited
	default:
		return weather.ErrUnavailable
	}
}

// readErrorMessage pulls the message out of the provider's error payload,
// if there is one.
func readErrorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}

// retryable reports whether a failed attempt is worth repeating. Client
// errors other than rate limiting never succeed on retry.
func retryable(err error) bool {
	switch {
	case errors.Is(err, weather.ErrInvalidInput),
		errors.Is(err, weather.ErrUnauthorized),
		errors.Is(err, weather.ErrCityNotFound):
		return false
	}
	return true
}

// asDomainError wraps transport-level failures as ErrUnavailable so the
// boundary layer always sees a recognized kind.
func asDomainError(err error) error {
	switch {
	case errors.Is(err, weather.ErrInvalidInput),
		errors.Is(err, weather.ErrUnauthorized),
		errors.Is(err, weather.ErrCityNotFound),
		errors.Is(err, weather.ErrRateLimited),
		errors.Is(err, weather.ErrUnavailable):
		return err
	}
	return fmt.Errorf("%w: %v", weather.ErrUnavailable, err)
}

// doRequestWithResilience executes the HTTP request with retries,
// exponential backoff, and a circuit breaker. Non-2xx responses are
// classified into domain errors; the ones a retry cannot fix propagate
// immediately.
func doRequestWithResilience(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}
	if cfg.Backoff.MaxRetries < 0 || cfg.Backoff.InitialInterval <= 0 {
		return nil, errInvalidConfig
	}

	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := buildRequest()
		if err != nil {
			return nil, err
		}
		req = req.WithContext(ctx)

		result, err := cb.Execute(func() (interface{}, error) {
			resp, execErr := cfg.Client.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp, nil
			}

			kind := classifyStatus(resp.StatusCode)
			msg := readErrorMessage(resp.Body)
			resp.Body.Close()
			if msg != "" {
				return nil, fmt.Errorf("%w: %s", kind, msg)
			}
			return nil, fmt.Errorf("%w: status %d", kind, resp.StatusCode)
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", weather.ErrUnavailable, err)
		}

		if !retryable(err) {
			return nil, err
		}

		lastErr = err
		if attempt >= cfg.Backoff.MaxRetries {
			return nil, asDomainError(lastErr)
		}

		delay := cfg.Backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > cfg.Backoff.MaxInterval && cfg.Backoff.MaxInterval > 0 {
			delay = cfg.Backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
			// continue to next attempt
		}

		attempt++
	}
}
