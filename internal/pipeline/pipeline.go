package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"meteotrend/internal/config"
	"meteotrend/internal/meteo"
	"meteotrend/internal/stats"
	"meteotrend/internal/store"
	"meteotrend/internal/timeseries"
)

// Fetcher abstracts the upstream API for the pipeline.
type Fetcher interface {
	LoadHistorical(ctx context.Context, start, end time.Time, skipFailed bool) ([]meteo.Observation, []meteo.SkipDay, error)
	Forecast(ctx context.Context) ([]meteo.ForecastStamp, error)
}

// Result is the immutable outcome of one pipeline run.
type Result struct {
	RunID       string
	GeneratedAt time.Time

	Historical timeseries.Table
	Forecast   timeseries.Table
	Merged     timeseries.Table

	Summary stats.Summary
	Skipped []meteo.SkipDay
}

// Runner composes Config -> Fetch -> Normalize -> Merge -> Stats and keeps
// the latest result for serve mode. Runs are sequential; each stage takes
// and returns values, nothing is mutated after the merge.
type Runner struct {
	cfg     *config.AppConfig
	fetcher Fetcher

	mu     sync.RWMutex
	latest *Result
}

// NewRunner creates a pipeline runner.
func NewRunner(cfg *config.AppConfig, fetcher Fetcher) *Runner {
	return &Runner{cfg: cfg, fetcher: fetcher}
}

// Run executes the full pipeline once: fetch historical and forecast data,
// normalize both to local time, merge (historical wins on duplicate
// timestamps), compute statistics, and persist both table artifacts.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()

	// The historical range ends tomorrow so today's observations are
	// included; the per-day loop is exclusive of the end date.
	end := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -r.cfg.HistoryDays)

	log.Printf("run %s: loading observations %s..%s", runID,
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	skipFailed := r.cfg.FetchPolicy == config.FetchSkip
	obs, skipped, err := r.fetcher.LoadHistorical(ctx, start, end, skipFailed)
	if err != nil {
		return nil, fmt.Errorf("historical fetch: %w", err)
	}
	if len(skipped) > 0 {
		log.Printf("run %s: %d day(s) skipped, dataset is partial", runID, len(skipped))
	}

	stamps, err := r.fetcher.Forecast(ctx)
	if err != nil {
		return nil, fmt.Errorf("forecast fetch: %w", err)
	}

	historical, err := timeseries.FromObservations(obs, r.cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("normalize historical: %w", err)
	}
	forecast, err := timeseries.FromForecast(stamps, r.cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("normalize forecast: %w", err)
	}

	merged := timeseries.Merge(historical, forecast)
	summary := stats.Compute(historical)

	if err := store.SaveTable(r.cfg.HistoricalPath, historical); err != nil {
		return nil, fmt.Errorf("persist historical: %w", err)
	}
	if err := store.SaveTable(r.cfg.ForecastPath, forecast); err != nil {
		return nil, fmt.Errorf("persist forecast: %w", err)
	}

	res := &Result{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Historical:  historical,
		Forecast:    forecast,
		Merged:      merged,
		Summary:     summary,
		Skipped:     skipped,
	}

	r.mu.Lock()
	r.latest = res
	r.mu.Unlock()

	log.Printf("run %s: %d historical rows, %d forecast rows, %d merged rows",
		runID, len(historical.Rows), len(forecast.Rows), len(merged.Rows))
	return res, nil
}

// Refresh runs the pipeline and logs instead of failing; the previous good
// result stays available when a refresh fails.
func (r *Runner) Refresh(ctx context.Context) {
	if _, err := r.Run(ctx); err != nil {
		log.Printf("refresh failed, keeping last good result: %v", err)
	}
}

// Latest returns the most recent successful result, or nil before the
// first run completes.
func (r *Runner) Latest() *Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest
}
