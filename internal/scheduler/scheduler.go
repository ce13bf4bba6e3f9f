package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"meteotrend/internal/pipeline"
)

// Scheduler periodically re-runs the weather pipeline while serving.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    *pipeline.Runner
	interval  time.Duration
}

// New creates a new Scheduler.
func New(runner *pipeline.Runner, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		runner:    runner,
		interval:  interval,
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 180
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: refreshing weather pipeline")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		s.runner.Refresh(ctx)
		log.Println("scheduler: refresh complete")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
