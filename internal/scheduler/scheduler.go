package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"

	"StockSentry/internal/analyzer"
	"StockSentry/internal/report"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the analyzer on a cron schedule for unattended use.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Tickers  []string
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, a *analyzer.Analyzer, tickers []string) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: a,
		Tickers:  tickers,
		Ctx:      ctx,
	}
}

// RegisterDaily registers the daily analysis task.
func (s *Scheduler) RegisterDaily(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.runTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
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

// RunNow executes the analysis task immediately.
func (s *Scheduler) RunNow() {
	s.runTask()
}

func (s *Scheduler) runTask() {
	log.Printf("[INFO] running analysis for %d tickers", len(s.Tickers))
	results := s.Analyzer.Run(s.Ctx, s.Tickers)
	fmt.Fprint(os.Stdout, report.FormatRun(results))
}
