package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler refreshes a Catalog periodically. A tick that fires while the
// previous refresh is still running is skipped.
type Scheduler struct {
	cron     *cron.Cron
	catalog  *Catalog
	interval time.Duration
	log      *slog.Logger
}

// NewScheduler creates a Scheduler refreshing c every interval.
func NewScheduler(c *Catalog, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", interval)
	}

	cr := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:     cr,
		catalog:  c,
		interval: interval,
		log:      log,
	}

	if _, err := cr.AddFunc("@every "+interval.String(), s.runRefresh); err != nil {
		return nil, fmt.Errorf("scheduling catalog refresh: %w", err)
	}

	return s, nil
}

// Start begins running scheduled refreshes.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "interval", s.interval.String())
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done once a running
// refresh has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// runRefresh bounds each refresh by the interval so a hung source cannot
// stall the schedule.
func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	s.log.Debug("scheduled catalog refresh starting")
	snap, applied := s.catalog.Refresh(ctx)
	s.log.Info("scheduled catalog refresh finished",
		"source", snap.Source,
		"vehicles", len(snap.Vehicles),
		"generation", snap.Generation,
		"applied", applied,
	)
}
