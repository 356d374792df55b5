package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"weather-lookup/internal/weather"
)

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences is the persisted client preference set: favorite cities, the
// selected temperature unit and the theme.
type Preferences struct {
	Unit      weather.Unit               `json:"unit"`
	Theme     Theme                      `json:"theme"`
	Favorites []weather.CitySearchResult `json:"favorites"`
}

// Store persists preferences to a JSON file, the server-side counterpart of
// the browser's localStorage. Loaded once at startup, written through on
// every mutation. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
	p    Preferences
}

// NewStore creates a Store backed by the given file. A missing file is not
// an error; defaults apply until the first save.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: path,
		p:    Preferences{Unit: weather.UnitCelsius, Theme: ThemeLight},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &s.p); err != nil {
		return fmt.Errorf("parsing preferences file %s: %w", s.path, err)
	}
	if s.p.Unit == "" {
		s.p.Unit = weather.UnitCelsius
	}
	if s.p.Theme == "" {
		s.p.Theme = ThemeLight
	}
	return nil
}

// save writes the current preferences to disk. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Get returns a copy of the current preferences.
func (s *Store) Get() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() Preferences {
	out := s.p
	out.Favorites = append([]weather.CitySearchResult(nil), s.p.Favorites...)
	return out
}

// SetUnit updates the selected temperature unit.
func (s *Store) SetUnit(u weather.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Unit = u
	return s.save()
}

// SetTheme updates the selected theme.
func (s *Store) SetTheme(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Theme = t
	return s.save()
}

// Favorites returns a copy of the favorites list.
func (s *Store) Favorites() []weather.CitySearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]weather.CitySearchResult(nil), s.p.Favorites...)
}

// AddFavorite appends a city unless an equal one (name+country+state) is
// already present.
func (s *Store) AddFavorite(c weather.CitySearchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fav := range s.p.Favorites {
		if sameCity(fav, c) {
			return nil
		}
	}
	s.p.Favorites = append(s.p.Favorites, c)
	return s.save()
}

// RemoveFavorite drops a city from the favorites list. Removing an absent
// city is a no-op.
func (s *Store) RemoveFavorite(c weather.CitySearchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.p.Favorites[:0]
	for _, fav := range s.p.Favorites {
		if !sameCity(fav, c) {
			kept = append(kept, fav)
		}
	}
	s.p.Favorites = kept
	return s.save()
}

// IsFavorite reports whether a city is in the favorites list.
func (s *Store) IsFavorite(c weather.CitySearchResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fav := range s.p.Favorites {
		if sameCity(fav, c) {
			return true
		}
	}
	return false
}

func sameCity(a, b weather.CitySearchResult) bool {
	return a.Name == b.Name && a.Country == b.Country && a.State == b.State
}
