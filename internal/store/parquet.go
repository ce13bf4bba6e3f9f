package store

import (
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"meteotrend/internal/timeseries"
)

// row is the flat on-disk shape of one table record.
type row struct {
	Time                 time.Time `parquet:"time,timestamp"`
	AirTemperature       float64   `parquet:"air_temperature"`
	FeelsLikeTemperature float64   `parquet:"feels_like_temperature"`
	WindSpeed            float64   `parquet:"wind_speed"`
	WindGust             float64   `parquet:"wind_gust"`
	WindDirection        float64   `parquet:"wind_direction"`
	CloudCover           float64   `parquet:"cloud_cover"`
	SeaLevelPressure     float64   `parquet:"sea_level_pressure"`
	RelativeHumidity     float64   `parquet:"relative_humidity"`
	Precipitation        float64   `parquet:"precipitation"`
	ConditionCode        string    `parquet:"condition_code"`
}

// SaveTable writes a weather table to path as a Parquet file.
func SaveTable(path string, t timeseries.Table) error {
	rows := make([]row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, row{
			Time:                 r.Time,
			AirTemperature:       r.AirTemperature,
			FeelsLikeTemperature: r.FeelsLikeTemperature,
			WindSpeed:            r.WindSpeed,
			WindGust:             r.WindGust,
			WindDirection:        r.WindDirection,
			CloudCover:           r.CloudCover,
			SeaLevelPressure:     r.SeaLevelPressure,
			RelativeHumidity:     r.RelativeHumidity,
			Precipitation:        r.Precipitation,
			ConditionCode:        r.ConditionCode,
		})
	}

	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadTable reads a weather table back from a Parquet file, restoring
// timestamps into the given local zone.
func LoadTable(path string, loc *time.Location) (timeseries.Table, error) {
	rows, err := parquet.ReadFile[row](path)
	if err != nil {
		return timeseries.Table{}, fmt.Errorf("read %s: %w", path, err)
	}

	out := make([]timeseries.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, timeseries.Record{
			Time:                 r.Time.In(loc),
			AirTemperature:       r.AirTemperature,
			FeelsLikeTemperature: r.FeelsLikeTemperature,
			WindSpeed:            r.WindSpeed,
			WindGust:             r.WindGust,
			WindDirection:        r.WindDirection,
			CloudCover:           r.CloudCover,
			SeaLevelPressure:     r.SeaLevelPressure,
			RelativeHumidity:     r.RelativeHumidity,
			Precipitation:        r.Precipitation,
			ConditionCode:        r.ConditionCode,
		})
	}
	return timeseries.Table{Rows: out}, nil
}
