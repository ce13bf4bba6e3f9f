package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"meteotrend/internal/config"
	"meteotrend/internal/meteo"
	"meteotrend/internal/pipeline"
)

type fakeFetcher struct{}

func (fakeFetcher) LoadHistorical(ctx context.Context, start, end time.Time, skipFailed bool) ([]meteo.Observation, []meteo.SkipDay, error) {
	return []meteo.Observation{
		{ObservationTimeUTC: "2024-01-06 10:00:00", AirTemperature: 3, ConditionCode: "rain"},
		{ObservationTimeUTC: "2024-01-06 11:00:00", AirTemperature: 5, ConditionCode: "cloudy"},
	}, nil, nil
}

func (fakeFetcher) Forecast(ctx context.Context) ([]meteo.ForecastStamp, error) {
	return []meteo.ForecastStamp{
		{ForecastTimeUTC: "2024-01-06 12:00:00", AirTemperature: 6},
		{ForecastTimeUTC: "2024-01-06 13:00:00", AirTemperature: 7},
	}, nil
}

func newTestApp(t *testing.T, run bool) *fiber.App {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.AppConfig{
		Timezone:       time.UTC,
		HistoryDays:    1,
		FetchPolicy:    config.FetchFail,
		HistoricalPath: filepath.Join(dir, "historical.parquet"),
		ForecastPath:   filepath.Join(dir, "forecast.parquet"),
	}
	runner := pipeline.NewRunner(cfg, fakeFetcher{})
	if run {
		if _, err := runner.Run(context.Background()); err != nil {
			t.Fatalf("pipeline run failed: %v", err)
		}
	}

	app := fiber.New()
	RegisterRoutes(app, runner)
	return app
}

func get(t *testing.T, app *fiber.App, url string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func TestStatsBeforeFirstRun(t *testing.T) {
	app := newTestApp(t, false)

	resp := get(t, app, "/api/v1/stats")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestStats(t *testing.T) {
	app := newTestApp(t, true)

	resp := get(t, app, "/api/v1/stats")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "rainyWeekends") {
		t.Errorf("stats body missing rainyWeekends: %s", body)
	}
}

func TestInterpolateValidation(t *testing.T) {
	app := newTestApp(t, true)

	// Unknown method should return 400.
	resp := get(t, app, "/api/v1/interpolate?method=cubic")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Out-of-range points value should also return 400.
	resp = get(t, app, "/api/v1/interpolate?method=fixed&points=1")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Non-numeric points should return 400.
	resp = get(t, app, "/api/v1/interpolate?points=lots")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestInterpolate(t *testing.T) {
	app := newTestApp(t, true)

	for _, method := range []string{"fixed", "linear"} {
		resp := get(t, app, "/api/v1/interpolate?method="+method)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("method %s: expected status %d, got %d", method, http.StatusOK, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "values") {
			t.Errorf("method %s: body missing values: %s", method, body)
		}
	}
}

func TestTrend(t *testing.T) {
	app := newTestApp(t, true)

	resp := get(t, app, "/api/v1/trend")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "html") {
		t.Errorf("expected html content type, got %s", ct)
	}
}
