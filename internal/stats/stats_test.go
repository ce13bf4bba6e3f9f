package stats

import (
	"testing"
	"time"

	"meteotrend/internal/timeseries"
)

func TestIsDaytimeBoundaries(t *testing.T) {
	day := func(h, m, s int) time.Time {
		return time.Date(2024, 1, 8, h, m, s, 0, time.UTC)
	}

	cases := []struct {
		ts   time.Time
		want bool
	}{
		{day(8, 0, 0), true},    // lower bound inclusive
		{day(19, 59, 59), true}, // just inside
		{day(20, 0, 0), false},  // upper bound exclusive
		{day(7, 59, 59), false},
		{day(0, 0, 0), false},
		{day(12, 30, 0), true},
	}
	for _, c := range cases {
		if got := IsDaytime(c.ts); got != c.want {
			t.Errorf("IsDaytime(%v) = %v, want %v", c.ts, got, c.want)
		}
	}
}

func TestComputeDayNightMeans(t *testing.T) {
	rows := []timeseries.Record{
		{Time: time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), AirTemperature: 10, RelativeHumidity: 80},
		{Time: time.Date(2024, 1, 8, 15, 0, 0, 0, time.UTC), AirTemperature: 14, RelativeHumidity: 60},
		{Time: time.Date(2024, 1, 8, 23, 0, 0, 0, time.UTC), AirTemperature: 2, RelativeHumidity: 90},
		{Time: time.Date(2024, 1, 9, 3, 0, 0, 0, time.UTC), AirTemperature: 4, RelativeHumidity: 94},
	}

	s := Compute(timeseries.Table{Rows: rows})

	if s.Rows != 4 {
		t.Errorf("Rows = %d, want 4", s.Rows)
	}
	if s.MeanTemperature != 7.5 {
		t.Errorf("MeanTemperature = %v, want 7.5", s.MeanTemperature)
	}
	if s.MeanHumidity != 81 {
		t.Errorf("MeanHumidity = %v, want 81", s.MeanHumidity)
	}
	if s.DayMeanTemperature != 12 {
		t.Errorf("DayMeanTemperature = %v, want 12", s.DayMeanTemperature)
	}
	if s.NightMeanTemperature != 3 {
		t.Errorf("NightMeanTemperature = %v, want 3", s.NightMeanTemperature)
	}
	if s.DaySamples != 2 || s.NightSamples != 2 {
		t.Errorf("bucket counts = %d/%d, want 2/2", s.DaySamples, s.NightSamples)
	}
}

// TestComputeEmptyDayBucket: with no daytime rows the day mean stays zero
// and the sample count makes the empty bucket visible.
func TestComputeEmptyDayBucket(t *testing.T) {
	rows := []timeseries.Record{
		{Time: time.Date(2024, 1, 8, 22, 0, 0, 0, time.UTC), AirTemperature: -5},
		{Time: time.Date(2024, 1, 9, 2, 0, 0, 0, time.UTC), AirTemperature: -7},
	}

	s := Compute(timeseries.Table{Rows: rows})

	if s.DaySamples != 0 {
		t.Errorf("DaySamples = %d, want 0", s.DaySamples)
	}
	if s.DayMeanTemperature != 0 {
		t.Errorf("DayMeanTemperature = %v, want 0 for empty bucket", s.DayMeanTemperature)
	}
	if s.NightSamples != 2 || s.NightMeanTemperature != -6 {
		t.Errorf("night bucket = %d samples, mean %v; want 2 and -6", s.NightSamples, s.NightMeanTemperature)
	}
}

// TestRainyWeekendEitherDay: a rainy Saturday with a clear paired Sunday
// still makes the weekend rainy.
func TestRainyWeekendEitherDay(t *testing.T) {
	rows := []timeseries.Record{
		// Saturday 2024-01-06.
		{Time: time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC), ConditionCode: "light_rain"},
		// Sunday 2024-01-07.
		{Time: time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), ConditionCode: "clear"},
	}
	if got := RainyWeekendCount(timeseries.Table{Rows: rows}); got != 1 {
		t.Errorf("RainyWeekendCount = %d, want 1", got)
	}
}

// TestRainySaturdayWithoutSunday: a lone rainy Saturday observation counts
// as a rainy weekend.
func TestRainySaturdayWithoutSunday(t *testing.T) {
	rows := []timeseries.Record{
		{Time: time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC), ConditionCode: "rain"},
	}
	if got := RainyWeekendCount(timeseries.Table{Rows: rows}); got != 1 {
		t.Errorf("RainyWeekendCount = %d, want 1", got)
	}
}

func TestRainyWeekendCounting(t *testing.T) {
	rows := []timeseries.Record{
		// Weekend of Jan 6/7: rainy Sunday only.
		{Time: time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC), ConditionCode: "cloudy"},
		{Time: time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC), ConditionCode: "heavy-rain"},
		// Weekend of Jan 13/14: dry.
		{Time: time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC), ConditionCode: "clear"},
		{Time: time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC), ConditionCode: "cloudy"},
		// Weekday rain must not count.
		{Time: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), ConditionCode: "rain"},
		// Weekend of Jan 20/21: rainy Saturday.
		{Time: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), ConditionCode: "light-rain-at-intervals"},
	}
	if got := RainyWeekendCount(timeseries.Table{Rows: rows}); got != 2 {
		t.Errorf("RainyWeekendCount = %d, want 2", got)
	}

	// The match is case-sensitive.
	caps := []timeseries.Record{
		{Time: time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC), ConditionCode: "RAIN"},
	}
	if got := RainyWeekendCount(timeseries.Table{Rows: caps}); got != 0 {
		t.Errorf("RainyWeekendCount with upper-case code = %d, want 0", got)
	}
}
