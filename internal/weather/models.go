package weather

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentConditions is the normalized snapshot of atmospheric state at one
// point in time and place. Temperatures are already expressed in Unit;
// the provider is asked to pre-convert via its units parameter.
type CurrentConditions struct {
	City          string      `json:"city"`
	Country       string      `json:"country"`
	Temperature   float64     `json:"temperature"`
	FeelsLike     float64     `json:"feelsLike"`
	TempMin       float64     `json:"tempMin"`
	TempMax       float64     `json:"tempMax"`
	Humidity      float64     `json:"humidity"`
	Pressure      float64     `json:"pressure"`
	WindSpeed     float64     `json:"windSpeed"`
	WindDirection float64     `json:"windDirection"`
	Cloudiness    float64     `json:"cloudiness"`
	Visibility    int         `json:"visibility"` // meters
	Description   string      `json:"description"`
	WeatherMain   string      `json:"weatherMain"`
	Icon          string      `json:"icon"`
	Sunrise       int64       `json:"sunrise"`   // epoch seconds
	Sunset        int64       `json:"sunset"`    // epoch seconds
	Timestamp     int64       `json:"timestamp"` // epoch seconds of the observation
	Coordinates   Coordinates `json:"coordinates"`
	Timezone      int         `json:"timezone"` // offset from UTC in seconds
	Unit          Unit        `json:"unit"`
}

// DailyForecast is one forecast entry. The same shape serves both the raw
// 3-hour samples and the aggregated per-day summaries; for a summary, Date
// is the local calendar day and Timestamp the first sample of that day.
type DailyForecast struct {
	Date        string  `json:"date"` // YYYY-MM-DD in location-local time
	Timestamp   int64   `json:"timestamp"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Description string  `json:"description"`
	WeatherMain string  `json:"weatherMain"`
	Icon        string  `json:"icon"`
	Pop         float64 `json:"pop"` // precipitation probability, 0.0-1.0
}

// ForecastData is the full forecast result for one location: identity,
// the raw fine-grained series, and the aggregated daily summaries
// (at most five entries, today first after reconciliation).
type ForecastData struct {
	City        string          `json:"city"`
	Country     string          `json:"country"`
	Coordinates Coordinates     `json:"coordinates"`
	Sunrise     int64           `json:"sunrise"`
	Sunset      int64           `json:"sunset"`
	Timezone    int             `json:"timezone"` // offset from UTC in seconds
	List        []DailyForecast `json:"list"`     // raw 3-hour samples
	Forecasts   []DailyForecast `json:"forecasts"`
	Unit        Unit            `json:"unit"`
}

// CitySearchResult is one geocoding match.
type CitySearchResult struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	State       string  `json:"state,omitempty"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"displayName"`
}

// NewCitySearchResult builds a search result with its display label,
// formatted as "name[, state], country".
func NewCitySearchResult(name, country, state string, lat, lon float64) CitySearchResult {
	display := name
	if state != "" {
		display += ", " + state
	}
	display += ", " + country
	return CitySearchResult{
		Name:        name,
		Country:     country,
		State:       state,
		Lat:         lat,
		Lon:         lon,
		DisplayName: display,
	}
}
