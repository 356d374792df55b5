package session

import (
	"sync"

	"weather-lookup/internal/weather"
)

// State holds the most recent fetch result for the active location.
// It is replaced wholesale on each successful fetch and cleared explicitly
// by the user; the remembered query lets the scheduler refresh it.
type State struct {
	mu       sync.RWMutex
	current  *weather.CurrentConditions
	forecast *weather.ForecastData
	query    weather.Query
	hasQuery bool
}

// New creates an empty State.
func New() *State {
	return &State{}
}

// Set replaces the held result and remembers the query it came from.
func (s *State) Set(q weather.Query, current weather.CurrentConditions, forecast weather.ForecastData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &current
	s.forecast = &forecast
	s.query = q
	s.hasQuery = true
}

// Latest returns copies of the held result, or ok=false when nothing has
// been fetched yet.
func (s *State) Latest() (weather.CurrentConditions, weather.ForecastData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.forecast == nil {
		return weather.CurrentConditions{}, weather.ForecastData{}, false
	}
	return *s.current, *s.forecast, true
}

// ActiveQuery returns the query behind the held result.
func (s *State) ActiveQuery() (weather.Query, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query, s.hasQuery
}

// Clear drops the held result and the remembered query.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.forecast = nil
	s.query = weather.Query{}
	s.hasQuery = false
}
