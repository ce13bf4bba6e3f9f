package httpapi

import (
	"bytes"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"meteotrend/internal/pipeline"
	"meteotrend/internal/report"
	"meteotrend/internal/timeseries"
)

var validate = validator.New()

// interpolateQuery binds the /interpolate query parameters.
type interpolateQuery struct {
	Method string `validate:"required,oneof=fixed linear"`
	Points int    `validate:"min=2,max=500"`
}

func (q *interpolateQuery) bind(c *fiber.Ctx) error {
	q.Method = c.Query("method", "fixed")

	pointsStr := c.Query("points", "10")
	points, err := strconv.Atoi(pointsStr)
	if err != nil {
		return errors.New("points must be an integer")
	}
	q.Points = points
	return nil
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, runner *pipeline.Runner) {
	v1 := app.Group("/api/v1")

	v1.Get("/stats", func(c *fiber.Ctx) error {
		res := runner.Latest()
		if res == nil {
			return fiber.NewError(fiber.StatusNotFound, "no pipeline result available yet")
		}
		return c.JSON(fiber.Map{
			"runId":       res.RunID,
			"generatedAt": res.GeneratedAt,
			"skippedDays": len(res.Skipped),
			"summary":     res.Summary,
		})
	})

	v1.Get("/trend", func(c *fiber.Ctx) error {
		res := runner.Latest()
		if res == nil {
			return fiber.NewError(fiber.StatusNotFound, "no pipeline result available yet")
		}

		var buf bytes.Buffer
		if err := report.TrendChart(res.Merged, time.Now()).Render(&buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render chart")
		}
		c.Type("html")
		return c.Send(buf.Bytes())
	})

	v1.Get("/interpolate", func(c *fiber.Ctx) error {
		var req interpolateQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := runner.Latest()
		if res == nil {
			return fiber.NewError(fiber.StatusNotFound, "no pipeline result available yet")
		}

		points := res.Forecast.Temperature()
		if len(points) > req.Points {
			points = points[:req.Points]
		}

		var (
			series timeseries.Series
			err    error
		)
		if req.Method == "fixed" {
			series, err = timeseries.FixedStep(points)
		} else {
			series, err = timeseries.Linear(points)
		}
		if err != nil {
			if errors.Is(err, timeseries.ErrTooFewPoints) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		return c.JSON(fiber.Map{
			"method": req.Method,
			"times":  series.Times,
			"values": series.Values,
		})
	})
}
