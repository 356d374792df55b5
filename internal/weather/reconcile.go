package weather

// ReconcileToday guarantees the forecast's first entry describes the same
// local calendar day as the current observation. The two resources are
// fetched independently and can disagree at day boundaries, or the
// forecast's first bucket may already be in the past relative to the
// instant snapshot.
//
// If the first summary already carries today's date key, the forecast is
// returned unchanged. Otherwise a today entry is synthesized from the
// current conditions (precipitation probability defaults to 0, since the
// instant snapshot carries none) and prepended; the tail is dropped to keep
// at most MaxForecastDays entries. An empty forecast list still gets the
// synthesized entry.
//
// The input is never modified; callers replace their held value with the
// returned one.
func ReconcileToday(current CurrentConditions, forecast ForecastData) ForecastData {
	todayKey := localDateKey(current.Timestamp, current.Timezone)

	if len(forecast.Forecasts) > 0 && forecast.Forecasts[0].Date == todayKey {
		return forecast
	}

	today := DailyForecast{
		Date:        todayKey,
		Timestamp:   current.Timestamp,
		TempMin:     current.TempMin,
		TempMax:     current.TempMax,
		Humidity:    current.Humidity,
		WindSpeed:   current.WindSpeed,
		Description: current.Description,
		WeatherMain: current.WeatherMain,
		Icon:        current.Icon,
		Pop:         0,
	}

	merged := make([]DailyForecast, 0, len(forecast.Forecasts)+1)
	merged = append(merged, today)
	merged = append(merged, forecast.Forecasts...)
	if len(merged) > MaxForecastDays {
		merged = merged[:MaxForecastDays]
	}

	out := forecast
	out.Forecasts = merged
	return out
}
