package catalog

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
)

// Sweeper runs the orphaned registration sweep on a cron schedule.
type Sweeper struct {
	catalog   *Catalog
	scheduler gocron.Scheduler
}

// NewSweeper creates a sweeper scheduled with the given cron expression.
func NewSweeper(catalog *Catalog, schedule string) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Sweeper{catalog: catalog, scheduler: scheduler}

	_, err = scheduler.NewJob(
		gocron.CronJob(schedule, false),
		gocron.NewTask(func(ctx context.Context) {
			if err := catalog.SweepOrphans(ctx); err != nil {
				log.Error("orphan sweep failed", "error", err)
			}
		}),
		gocron.WithName("orphan-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule orphan sweep: %w", err)
	}

	return s, nil
}

// Run starts the scheduler and blocks until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	log.Info("starting orphan sweeper")
	s.scheduler.Start()

	<-ctx.Done()
	return s.scheduler.Shutdown()
}
