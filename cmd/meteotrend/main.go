package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "meteotrend/internal/api/http"
	"meteotrend/internal/config"
	"meteotrend/internal/meteo"
	"meteotrend/internal/pipeline"
	"meteotrend/internal/report"
	"meteotrend/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound API calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	client := meteo.NewClient(httpClient, cfg.HistoricalURL, cfg.ForecastURL, cfg.FetchDelay)
	runner := pipeline.NewRunner(cfg, client)

	// One full pipeline run: fetch, normalize, merge, stats, artifacts.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := runner.Run(ctx)
	if err != nil {
		log.Fatalf("pipeline failed: %v", err)
	}

	report.PrintSummary(os.Stdout, res.Summary)
	report.PrintInterpolationDemo(os.Stdout, res.Forecast)

	if err := report.WriteTrendHTML(cfg.ReportPath, res.Merged, time.Now()); err != nil {
		log.Fatalf("failed to write trend report: %v", err)
	}
	log.Printf("trend report written to %s", cfg.ReportPath)

	if !cfg.Serve {
		return
	}

	// Serve mode: keep the latest result available over HTTP and refresh
	// it periodically.
	sched := scheduler.New(runner, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "meteotrend",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "meteotrend",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, runner)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
