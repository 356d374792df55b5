package weather

// Raw OpenWeatherMap payload shapes. Providers decode upstream responses
// into these; the normalizer maps them into the internal models.

// WeatherDescription is one entry of the per-sample condition list.
type WeatherDescription struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainMetrics carries the nested temperature/pressure/humidity block.
type MainMetrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

// WindInfo carries wind speed and direction.
type WindInfo struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// CurrentWeatherResponse is the current-conditions endpoint payload.
type CurrentWeatherResponse struct {
	Coord      Coordinates          `json:"coord"`
	Weather    []WeatherDescription `json:"weather"`
	Main       MainMetrics          `json:"main"`
	Visibility int                  `json:"visibility"`
	Wind       WindInfo             `json:"wind"`
	Clouds     struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

// ForecastItem is one 3-hour sample of the forecast endpoint payload.
type ForecastItem struct {
	Dt      int64                `json:"dt"`
	Main    MainMetrics          `json:"main"`
	Weather []WeatherDescription `json:"weather"`
	Wind    WindInfo             `json:"wind"`
	Pop     float64              `json:"pop"`
	DtTxt   string               `json:"dt_txt"`
}

// ForecastCity is the location block of the forecast endpoint payload.
type ForecastCity struct {
	Name     string      `json:"name"`
	Coord    Coordinates `json:"coord"`
	Country  string      `json:"country"`
	Timezone int         `json:"timezone"`
	Sunrise  int64       `json:"sunrise"`
	Sunset   int64       `json:"sunset"`
}

// ForecastResponse is the forecast endpoint payload.
type ForecastResponse struct {
	List []ForecastItem `json:"list"`
	City ForecastCity   `json:"city"`
}

// GeocodingLocation is one match from the geocoding endpoint.
type GeocodingLocation struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}
