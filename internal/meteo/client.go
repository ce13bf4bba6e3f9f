package meteo

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"
)

var validate = validator.New()

// Client talks to the api.meteo.lt observation and forecast endpoints.
type Client struct {
	historicalURL string
	forecastURL   string
	httpClient    *http.Client
	circuit       *gobreaker.CircuitBreaker

	// fetchDelay is the courtesy pause between consecutive per-day calls
	// during a historical load.
	fetchDelay time.Duration
}

// NewClient creates a meteo.lt API client. The historical URL gets a
// /YYYY-MM-DD path segment appended per requested day.
func NewClient(httpClient *http.Client, historicalURL, forecastURL string, fetchDelay time.Duration) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "meteo.lt",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		historicalURL: historicalURL,
		forecastURL:   forecastURL,
		httpClient:    httpClient,
		circuit:       cb,
		fetchDelay:    fetchDelay,
	}
}

// Observations fetches all station observations for one calendar day.
func (c *Client) Observations(ctx context.Context, day time.Time) ([]Observation, error) {
	u := fmt.Sprintf("%s/%s", c.historicalURL, day.Format("2006-01-02"))

	var payload observationsResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}

	for i := range payload.Observations {
		if err := validate.Struct(&payload.Observations[i]); err != nil {
			return nil, fmt.Errorf("%w: observation %d: %v", ErrDecode, i, err)
		}
	}
	return payload.Observations, nil
}

// Forecast fetches the long-term forecast for the configured place.
func (c *Client) Forecast(ctx context.Context) ([]ForecastStamp, error) {
	var payload forecastResponse
	if err := c.getJSON(ctx, c.forecastURL, &payload); err != nil {
		return nil, err
	}

	for i := range payload.ForecastTimestamps {
		if err := validate.Struct(&payload.ForecastTimestamps[i]); err != nil {
			return nil, fmt.Errorf("%w: forecast timestamp %d: %v", ErrDecode, i, err)
		}
	}
	return payload.ForecastTimestamps, nil
}

// SkipDay names a historical day that was dropped under the skip policy.
type SkipDay struct {
	Day time.Time
	Err error
}

// LoadHistorical fetches observations for every day in [start, end),
// strictly in order with the configured delay between calls. When
// skipFailed is false the first failed day aborts the load; when true the
// day is logged, recorded in the returned slice, and the load continues.
func (c *Client) LoadHistorical(ctx context.Context, start, end time.Time, skipFailed bool) ([]Observation, []SkipDay, error) {
	var (
		records []Observation
		skipped []SkipDay
	)

	first := true
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		if !first {
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			case <-time.After(c.fetchDelay):
			}
		}
		first = false

		obs, err := c.Observations(ctx, day)
		if err != nil {
			if !skipFailed {
				return nil, nil, fmt.Errorf("historical load failed on %s: %w", day.Format("2006-01-02"), err)
			}
			log.Printf("skipping %s: %v", day.Format("2006-01-02"), err)
			skipped = append(skipped, SkipDay{Day: day, Err: err})
			continue
		}
		records = append(records, obs...)
	}

	return records, skipped, nil
}

// getJSON issues one GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	}

	resp, err := doRequest(ctx, c.httpClient, c.circuit, buildRequest)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
