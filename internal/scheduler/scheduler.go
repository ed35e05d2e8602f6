// Package scheduler wires the recurring jobs onto a cron runner. Job bodies
// live in the accrual service; this package only owns the schedule.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Schedules. The expiration sweep must fire at most once per day: its fine
// increment is unconditional per run.
const (
	interestSchedule     = "30 0 * * *" // daily at 00:30
	expirationSchedule   = "0 1 * * *"  // daily at 01:00
	notificationSchedule = "5 * * * *"  // hourly; the job gates on the notify hour itself
)

// AccrualJobs is the slice of the accrual service the scheduler drives
type AccrualJobs interface {
	RunDailyInterestAccrual(ctx context.Context, now time.Time) error
	RunExpirationSweep(ctx context.Context, now time.Time) error
	RunExpiryNotificationSweep(ctx context.Context, now time.Time) error
}

// Scheduler runs the accrual jobs on their cron schedules
type Scheduler struct {
	cron *cron.Cron
	jobs AccrualJobs
	log  *zap.Logger
}

// New creates a Scheduler with the standard three jobs registered
func New(jobs AccrualJobs, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		jobs: jobs,
		log:  log,
	}

	entries := []struct {
		name string
		spec string
		run  func(ctx context.Context, now time.Time) error
	}{
		{"interest_accrual", interestSchedule, jobs.RunDailyInterestAccrual},
		{"expiration_sweep", expirationSchedule, jobs.RunExpirationSweep},
		{"expiry_notification_sweep", notificationSchedule, jobs.RunExpiryNotificationSweep},
	}

	for _, e := range entries {
		e := e
		if _, err := s.cron.AddFunc(e.spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()

			if err := e.run(ctx, time.Now()); err != nil {
				s.log.Error("scheduled job failed",
					zap.String("job", e.name),
					zap.Error(err))
			}
		}); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Start launches the cron runner in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron runner and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}
