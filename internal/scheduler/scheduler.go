// Package scheduler runs the batch scan on a cron schedule in watch mode.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps a seconds-granularity cron runner.
type Scheduler struct {
	Cron *cron.Cron
}

// New creates a new Scheduler.
func New() *Scheduler {
	return &Scheduler{Cron: cron.New(cron.WithSeconds())}
}

// Register adds the scan task under the given cron expression.
func (s *Scheduler) Register(spec string, task func()) error {
	if _, err := s.Cron.AddFunc(spec, task); err != nil {
		return fmt.Errorf("register scan task: %w", err)
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
