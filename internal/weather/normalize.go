package weather

import "strings"

// NormalizeCurrent maps a raw current-conditions payload into the internal
// model. The first entry of the condition list is taken as the
// representative description; an empty list yields empty strings rather
// than an error. No unit conversion happens here: the provider already
// expressed values in the requested unit.
func NormalizeCurrent(resp *CurrentWeatherResponse, unit Unit) CurrentConditions {
	cc := CurrentConditions{
		City:          resp.Name,
		Country:       resp.Sys.Country,
		Temperature:   resp.Main.Temp,
		FeelsLike:     resp.Main.FeelsLike,
		TempMin:       resp.Main.TempMin,
		TempMax:       resp.Main.TempMax,
		Humidity:      resp.Main.Humidity,
		Pressure:      resp.Main.Pressure,
		WindSpeed:     resp.Wind.Speed,
		WindDirection: resp.Wind.Deg,
		Cloudiness:    resp.Clouds.All,
		Visibility:    resp.Visibility,
		Sunrise:       resp.Sys.Sunrise,
		Sunset:        resp.Sys.Sunset,
		Timestamp:     resp.Dt,
		Coordinates:   resp.Coord,
		Timezone:      resp.Timezone,
		Unit:          unit,
	}
	if len(resp.Weather) > 0 {
		cc.Description = resp.Weather[0].Description
		cc.WeatherMain = resp.Weather[0].Main
		cc.Icon = resp.Weather[0].Icon
	}
	return cc
}

// NormalizeForecast maps a raw forecast payload into a ForecastData:
// location identity, the flat 3-hour series, and the daily aggregation.
func NormalizeForecast(resp *ForecastResponse, unit Unit) ForecastData {
	series := normalizeForecastSeries(resp.List)
	return ForecastData{
		City:        resp.City.Name,
		Country:     resp.City.Country,
		Coordinates: resp.City.Coord,
		Sunrise:     resp.City.Sunrise,
		Sunset:      resp.City.Sunset,
		Timezone:    resp.City.Timezone,
		List:        series,
		Forecasts:   AggregateDaily(series, resp.City.Timezone),
		Unit:        unit,
	}
}

// normalizeForecastSeries remaps the provider's 3-hour samples one to one,
// preserving their order. The date here comes from the provider's dt_txt
// field; the aggregator recomputes it in location-local time.
func normalizeForecastSeries(items []ForecastItem) []DailyForecast {
	series := make([]DailyForecast, 0, len(items))
	for _, item := range items {
		s := DailyForecast{
			Date:      dateFromDtTxt(item.DtTxt),
			Timestamp: item.Dt,
			TempMin:   item.Main.TempMin,
			TempMax:   item.Main.TempMax,
			Humidity:  item.Main.Humidity,
			WindSpeed: item.Wind.Speed,
			Pop:       item.Pop,
		}
		if len(item.Weather) > 0 {
			s.Description = item.Weather[0].Description
			s.WeatherMain = item.Weather[0].Main
			s.Icon = item.Weather[0].Icon
		}
		series = append(series, s)
	}
	return series
}

// dateFromDtTxt extracts the date part of a "2006-01-02 15:04:05" string.
func dateFromDtTxt(s string) string {
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}
