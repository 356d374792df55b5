package httpapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-lookup/internal/prefs"
	"weather-lookup/internal/session"
	"weather-lookup/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, prefStore *prefs.Store, state *session.State) {
	v1 := app.Group("/api/v1")

	// Combined lookup: current conditions plus the reconciled forecast,
	// stored as the active session result.
	v1.Get("/weather", func(c *fiber.Ctx) error {
		lq, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		q := lq.toQuery()
		current, forecast, err := service.Fetch(c.UserContext(), q)
		if err != nil {
			return toHTTPError(err)
		}

		state.Set(q, current, forecast)
		return c.JSON(fiber.Map{
			"current":  current,
			"forecast": forecast,
		})
	})

	v1.Delete("/weather", func(c *fiber.Ctx) error {
		state.Clear()
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		lq, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		current, err := service.CurrentWeather(c.UserContext(), lq.toQuery())
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(current)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		lq, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.Forecast(c.UserContext(), lq.toQuery())
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(forecast)
	})

	v1.Get("/weather/search", func(c *fiber.Ctx) error {
		var req searchQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		results, err := service.SearchCities(c.UserContext(), req.Query, req.Limit)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(results)
	})

	v1.Get("/preferences", func(c *fiber.Ctx) error {
		return c.JSON(prefStore.Get())
	})

	v1.Put("/preferences", func(c *fiber.Ctx) error {
		var body preferencesBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if body.Unit != "" {
			if err := prefStore.SetUnit(weather.Unit(body.Unit)); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to save preferences")
			}
		}
		if body.Theme != "" {
			if err := prefStore.SetTheme(prefs.Theme(body.Theme)); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to save preferences")
			}
		}
		return c.JSON(prefStore.Get())
	})

	v1.Get("/favorites", func(c *fiber.Ctx) error {
		return c.JSON(prefStore.Favorites())
	})

	v1.Post("/favorites", func(c *fiber.Ctx) error {
		var body favoriteBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		city := weather.NewCitySearchResult(body.Name, body.Country, body.State, body.Lat, body.Lon)
		if err := prefStore.AddFavorite(city); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save favorites")
		}
		return c.Status(fiber.StatusCreated).JSON(prefStore.Favorites())
	})

	v1.Delete("/favorites", func(c *fiber.Ctx) error {
		name := c.Query("name")
		country := c.Query("country")
		if name == "" || country == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name and country query parameters are required")
		}

		city := weather.CitySearchResult{Name: name, Country: country, State: c.Query("state")}
		if err := prefStore.RemoveFavorite(city); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save favorites")
		}
		return c.JSON(prefStore.Favorites())
	})
}

// toHTTPError translates domain errors into user-facing status codes.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, weather.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrCityNotFound):
		return fiber.NewError(fiber.StatusNotFound, "city not found; check the spelling and try again")
	case errors.Is(err, weather.ErrUnauthorized):
		return fiber.NewError(fiber.StatusUnauthorized, "weather provider rejected the configured api key")
	case errors.Is(err, weather.ErrRateLimited):
		return fiber.NewError(fiber.StatusTooManyRequests, "weather provider rate limit exceeded; try again later")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}

// locationQuery holds the parsed location query parameters.
type locationQuery struct {
	City string
	Lat  *float64
	Lon  *float64
	Unit weather.Unit
}

func (l locationQuery) toQuery() weather.Query {
	return weather.Query{
		City: l.City,
		Lat:  l.Lat,
		Lon:  l.Lon,
		Unit: l.Unit,
	}
}

// parseLocationQuery validates that exactly one of city or the coordinate
// pair is present and that the unit is recognized.
func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	var q locationQuery

	city := strings.TrimSpace(c.Query("city"))
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	hasCity := city != ""
	hasCoords := latStr != "" || lonStr != ""
	if hasCity == hasCoords {
		return q, errors.New("exactly one of city or coordinates (lat, lon) is required")
	}

	if hasCoords {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return q, errors.New("invalid lat value")
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return q, errors.New("invalid lon value")
		}
		q.Lat = &lat
		q.Lon = &lon
	}
	q.City = city

	unit, err := weather.ParseUnit(c.Query("unit"))
	if err != nil {
		return q, err
	}
	q.Unit = unit

	return q, nil
}

// searchQuery holds query parameters for the city search endpoint.
type searchQuery struct {
	Query string `validate:"required"`
	Limit int    `validate:"min=1,max=10"`
}

func (s *searchQuery) bind(c *fiber.Ctx) error {
	s.Query = strings.TrimSpace(c.Query("query"))

	s.Limit = 5
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return errors.New("invalid limit value")
		}
		s.Limit = limit
	}
	return nil
}

// preferencesBody is the PUT /preferences request body.
type preferencesBody struct {
	Unit  string `json:"unit" validate:"omitempty,oneof=celsius fahrenheit"`
	Theme string `json:"theme" validate:"omitempty,oneof=light dark"`
}

// favoriteBody is the POST /favorites request body.
type favoriteBody struct {
	Name    string  `json:"name" validate:"required"`
	Country string  `json:"country" validate:"required"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
