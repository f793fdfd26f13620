package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"

	"PricePredictor/internal/runner"
)

// Scheduler re-runs the batch on a cron expression.
type Scheduler struct {
	Cron   *cron.Cron
	Runner *runner.Runner
}

// NewScheduler creates a Scheduler around the given runner.
func NewScheduler(r *runner.Runner) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: r,
	}
}

// Register adds the batch run under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.RunNow); err != nil {
		return fmt.Errorf("register batch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the batch immediately (cron tick or RUN_ON_START).
func (s *Scheduler) RunNow() {
	sum, err := s.Runner.Run()
	if err != nil {
		return
	}
	log.Printf("[INFO] run finished: %d exchanges, %s files processed, %s skipped, %s rows written in %s",
		sum.Exchanges,
		humanize.Comma(int64(sum.FilesProcessed)),
		humanize.Comma(int64(sum.FilesSkipped)),
		humanize.Comma(int64(sum.RowsWritten)),
		sum.FinishedAt.Sub(sum.StartedAt).Round(time.Millisecond),
	)
}
