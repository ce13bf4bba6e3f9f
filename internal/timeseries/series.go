package timeseries

import (
	"fmt"
	"time"

	"meteotrend/internal/meteo"
)

// Timestamp layouts accepted from the upstream API. api.meteo.lt serves the
// space-separated form; the T-separated ISO form is accepted as well. Both
// are UTC.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Record is one normalized row of a weather table. Time is the local wall
// clock of the configured zone, converted from the upstream UTC timestamp.
type Record struct {
	Time                 time.Time
	AirTemperature       float64
	FeelsLikeTemperature float64
	WindSpeed            float64
	WindGust             float64
	WindDirection        float64
	CloudCover           float64
	SeaLevelPressure     float64
	RelativeHumidity     float64
	Precipitation        float64
	ConditionCode        string
}

// Table is an ordered sequence of records indexed by local timestamp.
// Rows appear in source order; merged tables have unique timestamps.
type Table struct {
	Rows []Record
}

// parseUTC parses an upstream timestamp string and converts it to loc.
func parseUTC(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp %q", s)
}

// FromObservations normalizes historical records into a table indexed by
// local time. A single unparseable timestamp fails the whole batch.
func FromObservations(obs []meteo.Observation, loc *time.Location) (Table, error) {
	rows := make([]Record, 0, len(obs))
	for _, o := range obs {
		ts, err := parseUTC(o.ObservationTimeUTC, loc)
		if err != nil {
			return Table{}, err
		}
		rows = append(rows, Record{
			Time:                 ts,
			AirTemperature:       o.AirTemperature,
			FeelsLikeTemperature: o.FeelsLikeTemperature,
			WindSpeed:            o.WindSpeed,
			WindGust:             o.WindGust,
			WindDirection:        o.WindDirection,
			CloudCover:           o.CloudCover,
			SeaLevelPressure:     o.SeaLevelPressure,
			RelativeHumidity:     o.RelativeHumidity,
			Precipitation:        o.Precipitation,
			ConditionCode:        o.ConditionCode,
		})
	}
	return Table{Rows: rows}, nil
}

// FromForecast normalizes forecast stamps into a table indexed by local
// time. totalPrecipitation maps onto the Precipitation column.
func FromForecast(stamps []meteo.ForecastStamp, loc *time.Location) (Table, error) {
	rows := make([]Record, 0, len(stamps))
	for _, f := range stamps {
		ts, err := parseUTC(f.ForecastTimeUTC, loc)
		if err != nil {
			return Table{}, err
		}
		rows = append(rows, Record{
			Time:                 ts,
			AirTemperature:       f.AirTemperature,
			FeelsLikeTemperature: f.FeelsLikeTemperature,
			WindSpeed:            f.WindSpeed,
			WindGust:             f.WindGust,
			WindDirection:        f.WindDirection,
			CloudCover:           f.CloudCover,
			SeaLevelPressure:     f.SeaLevelPressure,
			RelativeHumidity:     f.RelativeHumidity,
			Precipitation:        f.TotalPrecipitation,
			ConditionCode:        f.ConditionCode,
		})
	}
	return Table{Rows: rows}, nil
}

// Merge concatenates primary and secondary, de-duplicating by timestamp
// with the primary table winning. Row order is preserved, so ordered inputs
// produce an ordered output.
func Merge(primary, secondary Table) Table {
	seen := make(map[int64]struct{}, len(primary.Rows)+len(secondary.Rows))
	rows := make([]Record, 0, len(primary.Rows)+len(secondary.Rows))

	for _, r := range primary.Rows {
		key := r.Time.Unix()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, r)
	}
	for _, r := range secondary.Rows {
		key := r.Time.Unix()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, r)
	}
	return Table{Rows: rows}
}

// Window returns the rows with from <= Time <= to, preserving order.
func (t Table) Window(from, to time.Time) Table {
	var rows []Record
	for _, r := range t.Rows {
		if r.Time.Before(from) || r.Time.After(to) {
			continue
		}
		rows = append(rows, r)
	}
	return Table{Rows: rows}
}

// Temperature extracts the airTemperature column as interpolation points.
func (t Table) Temperature() []Point {
	pts := make([]Point, 0, len(t.Rows))
	for _, r := range t.Rows {
		pts = append(pts, Point{Time: r.Time, Value: r.AirTemperature})
	}
	return pts
}
