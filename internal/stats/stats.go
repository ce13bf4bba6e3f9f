package stats

import (
	"time"

	"meteotrend/internal/common"
	"meteotrend/internal/timeseries"
)

// Day window boundaries, local wall clock. Daytime is [08:00, 20:00).
const (
	dayStartHour = 8
	dayEndHour   = 20
)

// Summary holds the descriptive statistics computed from a historical
// weather table.
type Summary struct {
	Rows int `json:"rows"`

	MeanTemperature float64 `json:"meanTemperatureC"`
	MeanHumidity    float64 `json:"meanHumidityPercent"`

	DayMeanTemperature   float64 `json:"dayMeanTemperatureC"`
	NightMeanTemperature float64 `json:"nightMeanTemperatureC"`

	// DaySamples and NightSamples are the bucket sizes behind the two
	// means. A mean stays zero when its bucket is empty; the count tells
	// that apart from a true 0°C average.
	DaySamples   int `json:"daySamples"`
	NightSamples int `json:"nightSamples"`

	RainyWeekends int `json:"rainyWeekends"`
}

// IsDaytime reports whether t falls in the [08:00, 20:00) local window.
// The lower bound is inclusive, the upper exclusive: exactly 08:00:00 is
// daytime, exactly 20:00:00 is nighttime.
func IsDaytime(t time.Time) bool {
	h := t.Hour()
	return h >= dayStartHour && h < dayEndHour
}

// Compute derives a Summary from a historical table.
func Compute(t timeseries.Table) Summary {
	var (
		sumTemp, sumHum      float64
		sumDay, sumNight     float64
		countDay, countNight int
	)

	for _, r := range t.Rows {
		sumTemp += r.AirTemperature
		sumHum += r.RelativeHumidity

		if IsDaytime(r.Time) {
			sumDay += r.AirTemperature
			countDay++
		} else {
			sumNight += r.AirTemperature
			countNight++
		}
	}

	s := Summary{
		Rows:          len(t.Rows),
		DaySamples:    countDay,
		NightSamples:  countNight,
		RainyWeekends: RainyWeekendCount(t),
	}
	if n := len(t.Rows); n > 0 {
		s.MeanTemperature = sumTemp / float64(n)
		s.MeanHumidity = sumHum / float64(n)
	}
	if countDay > 0 {
		s.DayMeanTemperature = sumDay / float64(countDay)
	}
	if countNight > 0 {
		s.NightMeanTemperature = sumNight / float64(countNight)
	}
	return s
}

// RainyWeekendCount counts weekends with at least one rainy observation.
// Each Sunday is shifted back one day so it shares its Saturday's date key;
// a weekend is rainy if any observation on either day has a condition code
// containing the substring "rain".
func RainyWeekendCount(t timeseries.Table) int {
	weekends := make(map[string]bool)

	for _, r := range t.Rows {
		wd := r.Time.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			continue
		}
		keyTime := r.Time
		if wd == time.Sunday {
			keyTime = keyTime.AddDate(0, 0, -1)
		}
		key := keyTime.Format("2006-01-02")

		if common.HasAny(r.ConditionCode, "rain") {
			weekends[key] = true
		} else if _, seen := weekends[key]; !seen {
			weekends[key] = false
		}
	}

	count := 0
	for _, rainy := range weekends {
		if rainy {
			count++
		}
	}
	return count
}
