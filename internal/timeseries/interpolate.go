package timeseries

import (
	"errors"
	"fmt"
	"time"
)

// GridStep is the target resolution of interpolated series.
const GridStep = 5 * time.Minute

// stepsPerSample is the fixed spacing assumption of the custom
// interpolation: consecutive input samples are taken to be exactly one hour
// (12 grid steps) apart, regardless of their actual timestamps.
const stepsPerSample = 12

// ErrTooFewPoints is returned when a series has fewer than two points;
// there is nothing to interpolate between.
var ErrTooFewPoints = errors.New("interpolate: need at least 2 points")

// Point is one (timestamp, value) sample.
type Point struct {
	Time  time.Time
	Value float64
}

// Series is a dense fixed-step series produced by interpolation.
type Series struct {
	Times  []time.Time
	Values []float64
}

// resampledIndex is every GridStep-aligned timestamp from the first input
// timestamp (truncated onto the grid) through the last, inclusive.
func resampledIndex(first, last time.Time) []time.Time {
	start := first.Truncate(GridStep)
	n := int(last.Sub(start)/GridStep) + 1
	index := make([]time.Time, 0, n)
	for t := start; !t.After(last); t = t.Add(GridStep) {
		index = append(index, t)
	}
	return index
}

func validatePoints(points []Point) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}
	for i := 1; i < len(points); i++ {
		if !points[i].Time.After(points[i-1].Time) {
			return fmt.Errorf("interpolate: timestamps not strictly increasing at index %d", i)
		}
	}
	return nil
}

// FixedStep upsamples points onto the 5-minute grid assuming consecutive
// samples are exactly one hour apart: between each pair (s, e) it emits the
// 11 values s + k*(e-s)/12 for k in 1..11, then e. The grid index is
// computed from the real timestamps, so input that is not hourly-spaced
// produces more or fewer values than grid slots; that mismatch is reported
// as an error rather than silently realigned.
func FixedStep(points []Point) (Series, error) {
	if err := validatePoints(points); err != nil {
		return Series{}, err
	}

	index := resampledIndex(points[0].Time, points[len(points)-1].Time)

	values := make([]float64, 0, len(index))
	values = append(values, points[0].Value)
	for i := 0; i+1 < len(points); i++ {
		s, e := points[i].Value, points[i+1].Value
		for k := 1; k < stepsPerSample; k++ {
			values = append(values, s+float64(k)*(e-s)/stepsPerSample)
		}
		values = append(values, e)
	}

	if len(values) != len(index) {
		return Series{}, fmt.Errorf("interpolate: %d values for %d grid points: input spacing is not hourly", len(values), len(index))
	}
	return Series{Times: index, Values: values}, nil
}

// Linear upsamples points onto the 5-minute grid with standard linear
// interpolation honoring the real elapsed time between samples. Values at
// the original sample timestamps are preserved exactly. Grid points before
// the first sample (possible when the first timestamp is not grid-aligned)
// take the first sample's value.
func Linear(points []Point) (Series, error) {
	if err := validatePoints(points); err != nil {
		return Series{}, err
	}

	index := resampledIndex(points[0].Time, points[len(points)-1].Time)
	values := make([]float64, len(index))

	seg := 0
	for i, t := range index {
		if !t.After(points[0].Time) {
			values[i] = points[0].Value
			continue
		}
		for seg+2 < len(points) && points[seg+1].Time.Before(t) {
			seg++
		}
		lo, hi := points[seg], points[seg+1]
		// Grid points that coincide with a sample take the sample value
		// untouched; the lerp formula would perturb it in the last ulp.
		if t.Equal(lo.Time) {
			values[i] = lo.Value
			continue
		}
		if t.Equal(hi.Time) {
			values[i] = hi.Value
			continue
		}
		frac := float64(t.Sub(lo.Time)) / float64(hi.Time.Sub(lo.Time))
		values[i] = lo.Value + frac*(hi.Value-lo.Value)
	}
	return Series{Times: index, Values: values}, nil
}

// Head returns at most n leading points of the series.
func (s Series) Head(n int) Series {
	if n > len(s.Times) {
		n = len(s.Times)
	}
	return Series{Times: s.Times[:n], Values: s.Values[:n]}
}
