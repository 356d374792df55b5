package weather

import (
	"sort"
	"time"
)

// MaxForecastDays caps the aggregated forecast length.
const MaxForecastDays = 5

// localDateKey returns the YYYY-MM-DD calendar date of an epoch timestamp
// shifted by a fixed UTC offset in seconds. The shifted epoch is read as if
// it were UTC; IANA timezone names are never resolved.
func localDateKey(epoch int64, offsetSeconds int) string {
	return time.Unix(epoch+int64(offsetSeconds), 0).UTC().Format("2006-01-02")
}

// localHour returns the hour of day for an epoch timestamp shifted the same
// way as localDateKey.
func localHour(epoch int64, offsetSeconds int) int {
	return time.Unix(epoch+int64(offsetSeconds), 0).UTC().Hour()
}

// AggregateDaily collapses the 3-hour forecast series into per-day
// summaries, bucketed by location-local calendar day.
//
// Each day's summary is seeded from its first sample, then folded:
// temperature min/max are running min/max, precipitation probability is the
// running max, and the description/category/icon come from the last sample
// whose local hour falls in [11, 13] (a midday sample represents the day
// better than a 3am one). Humidity and wind speed keep the first sample's
// values; consumers rely on that, so it stays.
//
// The result is sorted ascending by representative timestamp and truncated
// to MaxForecastDays entries. An empty series aggregates to an empty list.
func AggregateDaily(samples []DailyForecast, timezoneOffset int) []DailyForecast {
	if len(samples) == 0 {
		return []DailyForecast{}
	}

	days := make(map[string]*DailyForecast)
	order := make([]string, 0, MaxForecastDays+1)

	for _, s := range samples {
		key := localDateKey(s.Timestamp, timezoneOffset)

		day, ok := days[key]
		if !ok {
			seed := s
			seed.Date = key
			days[key] = &seed
			order = append(order, key)
			continue
		}

		if s.TempMin < day.TempMin {
			day.TempMin = s.TempMin
		}
		if s.TempMax > day.TempMax {
			day.TempMax = s.TempMax
		}
		if s.Pop > day.Pop {
			day.Pop = s.Pop
		}

		if h := localHour(s.Timestamp, timezoneOffset); h >= 11 && h <= 13 {
			day.Description = s.Description
			day.WeatherMain = s.WeatherMain
			day.Icon = s.Icon
		}
	}

	out := make([]DailyForecast, 0, len(order))
	for _, key := range order {
		out = append(out, *days[key])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})

	if len(out) > MaxForecastDays {
		out = out[:MaxForecastDays]
	}
	return out
}
