package weather

import (
	"reflect"
	"testing"
	"time"
)

func currentAt(year int, month time.Month, day, hour int) CurrentConditions {
	return CurrentConditions{
		City:        "Testville",
		TempMin:     3,
		TempMax:     11,
		Humidity:    55,
		WindSpeed:   4,
		Description: "overcast clouds",
		WeatherMain: "Clouds",
		Icon:        "04d",
		Timestamp:   time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Unix(),
	}
}

func dailyOn(date string, year int, month time.Month, day int) DailyForecast {
	return DailyForecast{
		Date:      date,
		Timestamp: time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix(),
		TempMin:   1,
		TempMax:   9,
	}
}

func TestReconcileTodayNoOpWhenFirstEntryIsToday(t *testing.T) {
	current := currentAt(2024, 3, 1, 9)
	forecast := ForecastData{
		Forecasts: []DailyForecast{
			dailyOn("2024-03-01", 2024, 3, 1),
			dailyOn("2024-03-02", 2024, 3, 2),
		},
	}

	got := ReconcileToday(current, forecast)
	if !reflect.DeepEqual(got, forecast) {
		t.Errorf("reconcile should be a no-op when today is already first:\n got %+v\nwant %+v", got, forecast)
	}
}

func TestReconcileTodayPrependsAndTrims(t *testing.T) {
	// Current observation is on 2024-03-02 but the forecast still starts at
	// 2024-03-01 with a full five days.
	current := currentAt(2024, 3, 2, 0)
	forecast := ForecastData{
		Forecasts: []DailyForecast{
			dailyOn("2024-03-01", 2024, 3, 1),
			dailyOn("2024-03-02", 2024, 3, 2),
			dailyOn("2024-03-03", 2024, 3, 3),
			dailyOn("2024-03-04", 2024, 3, 4),
			dailyOn("2024-03-05", 2024, 3, 5),
		},
	}

	got := ReconcileToday(current, forecast)
	if len(got.Forecasts) != MaxForecastDays {
		t.Fatalf("expected %d entries, got %d", MaxForecastDays, len(got.Forecasts))
	}
	first := got.Forecasts[0]
	if first.Date != "2024-03-02" {
		t.Errorf("first date = %q, want 2024-03-02", first.Date)
	}
	if first.Pop != 0 {
		t.Errorf("synthesized pop = %v, want 0", first.Pop)
	}
	if first.TempMin != current.TempMin || first.TempMax != current.TempMax {
		t.Errorf("synthesized temps = %v/%v, want %v/%v", first.TempMin, first.TempMax, current.TempMin, current.TempMax)
	}
	if first.Description != current.Description || first.Icon != current.Icon {
		t.Errorf("synthesized description/icon = %q/%q, want current's", first.Description, first.Icon)
	}
	if last := got.Forecasts[len(got.Forecasts)-1]; last.Date != "2024-03-04" {
		t.Errorf("last date = %q, want 2024-03-04 after dropping the tail", last.Date)
	}

	// The input slice must be untouched.
	if forecast.Forecasts[0].Date != "2024-03-01" || len(forecast.Forecasts) != 5 {
		t.Error("input forecast was modified")
	}
}

func TestReconcileTodayEmptyForecast(t *testing.T) {
	current := currentAt(2024, 3, 2, 12)

	got := ReconcileToday(current, ForecastData{})
	if len(got.Forecasts) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got.Forecasts))
	}
	if got.Forecasts[0].Date != "2024-03-02" {
		t.Errorf("date = %q, want 2024-03-02", got.Forecasts[0].Date)
	}
}

func TestReconcileTodayUsesLocalDay(t *testing.T) {
	// 22:00 UTC on March 1st is already March 2nd at a +3h offset.
	current := currentAt(2024, 3, 1, 22)
	current.Timezone = 3 * 3600

	forecast := ForecastData{
		Forecasts: []DailyForecast{dailyOn("2024-03-01", 2024, 3, 1)},
	}

	got := ReconcileToday(current, forecast)
	if got.Forecasts[0].Date != "2024-03-02" {
		t.Errorf("first date = %q, want local day 2024-03-02", got.Forecasts[0].Date)
	}
	if len(got.Forecasts) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got.Forecasts))
	}
}
