package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"meteotrend/internal/stats"
	"meteotrend/internal/timeseries"
)

// trendWindow is how far the plotted window extends on each side of "now".
const trendWindow = 7 * 24 * time.Hour

// TrendChart builds a temperature line chart over rows of t that fall
// within ±7 days of around.
func TrendChart(t timeseries.Table, around time.Time) *charts.Line {
	window := t.Window(around.Add(-trendWindow), around.Add(trendWindow))

	labels := make([]string, 0, len(window.Rows))
	data := make([]opts.LineData, 0, len(window.Rows))
	for _, r := range window.Rows {
		labels = append(labels, r.Time.Format("2006-01-02 15:04"))
		data = append(data, opts.LineData{Value: r.AirTemperature})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Temperature Trend"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Temperature (°C)"}),
	)
	line.SetXAxis(labels).AddSeries("airTemperature", data)
	return line
}

// WriteTrendHTML renders the trend chart to an HTML file at path.
func WriteTrendHTML(path string, t timeseries.Table, around time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return TrendChart(t, around).Render(f)
}

// PrintSummary writes the human-readable statistics lines.
func PrintSummary(w io.Writer, s stats.Summary) {
	fmt.Fprintf(w, "airTemperature mean:           %.6f\n", s.MeanTemperature)
	fmt.Fprintf(w, "relativeHumidity mean:         %.6f\n", s.MeanHumidity)
	fmt.Fprintf(w, "Daytime average temperature:   %.6f\n", s.DayMeanTemperature)
	fmt.Fprintf(w, "Nighttime average temperature: %.6f\n", s.NightMeanTemperature)
	fmt.Fprintf(w, "Number of rainy weekends: %d\n", s.RainyWeekends)
}

// PrintInterpolationDemo upsamples the first 10 forecast temperatures with
// both interpolation variants and prints the first 20 points of each.
func PrintInterpolationDemo(w io.Writer, forecast timeseries.Table) {
	head := forecast
	if len(head.Rows) > 10 {
		head = timeseries.Table{Rows: head.Rows[:10]}
	}
	points := head.Temperature()

	printSeries := func(name string, s timeseries.Series, err error) {
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", name, err)
			return
		}
		fmt.Fprintf(w, "%s:\n", name)
		s = s.Head(20)
		for i := range s.Times {
			fmt.Fprintf(w, "%s  %9.6f\n", s.Times[i].Format("2006-01-02 15:04:05"), s.Values[i])
		}
	}

	fixed, err := timeseries.FixedStep(points)
	printSeries("custom linear interpolation", fixed, err)
	linear, err := timeseries.Linear(points)
	printSeries("built-in linear interpolation", linear, err)
}
