package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// FetchPolicy names what the historical loader does when a single day's
// fetch fails.
type FetchPolicy string

const (
	// FetchFail aborts the whole historical load on the first failed day.
	FetchFail FetchPolicy = "fail"
	// FetchSkip logs the failed day, records it, and continues with a
	// partial dataset.
	FetchSkip FetchPolicy = "skip"
)

type AppConfig struct {
	// Upstream endpoints. The historical endpoint gets a /YYYY-MM-DD path
	// segment appended per day.
	HistoricalURL string
	ForecastURL   string

	// Timezone is the local civil time zone observations are indexed in.
	Timezone *time.Location

	// HistoryDays is how far back the historical load reaches.
	HistoryDays int

	// FetchDelay is the pause between consecutive per-day calls.
	FetchDelay  time.Duration
	HTTPTimeout time.Duration
	FetchPolicy FetchPolicy

	// Artifact paths.
	HistoricalPath string
	ForecastPath   string
	ReportPath     string

	// Serve mode.
	Serve           bool
	Port            string
	RefreshInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.HistoricalURL = getenvDefault("METEO_HISTORICAL_URL",
		"https://api.meteo.lt/v1/stations/vilniaus-ams/observations")
	cfg.ForecastURL = getenvDefault("METEO_FORECAST_URL",
		"https://api.meteo.lt/v1/places/vilnius/forecasts/long-term")

	tzName := getenvDefault("METEO_TIMEZONE", "Europe/Vilnius")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid METEO_TIMEZONE %q: %w", tzName, err)
	}
	cfg.Timezone = tz

	cfg.HistoryDays = getenvInt("METEO_HISTORY_DAYS", 365)
	if cfg.HistoryDays <= 0 {
		return nil, fmt.Errorf("METEO_HISTORY_DAYS must be positive")
	}

	delayStr := getenvDefault("METEO_FETCH_DELAY", "500ms")
	delay, err := time.ParseDuration(delayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid METEO_FETCH_DELAY: %w", err)
	}
	cfg.FetchDelay = delay

	timeoutStr := getenvDefault("METEO_HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid METEO_HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	policy := FetchPolicy(getenvDefault("METEO_FETCH_POLICY", string(FetchFail)))
	if policy != FetchFail && policy != FetchSkip {
		return nil, fmt.Errorf("invalid METEO_FETCH_POLICY %q (want %q or %q)", policy, FetchFail, FetchSkip)
	}
	cfg.FetchPolicy = policy

	cfg.HistoricalPath = getenvDefault("METEO_HISTORICAL_PATH", "historical_weather.parquet")
	cfg.ForecastPath = getenvDefault("METEO_FORECAST_PATH", "forecast_weather.parquet")
	cfg.ReportPath = getenvDefault("METEO_REPORT_PATH", "temperature_trend.html")

	cfg.Serve = getenvDefault("METEO_SERVE", "false") == "true"
	cfg.Port = getenvDefault("PORT", "8080")

	refreshStr := getenvDefault("METEO_REFRESH_INTERVAL", "3h")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid METEO_REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = refresh

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
