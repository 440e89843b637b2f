// Package scheduler runs the periodic goal reminder job.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const jobTimeout = 5 * time.Minute

// ReminderSender sends one round of goal reminders and reports how many went out
type ReminderSender interface {
	SendGoalReminders(ctx context.Context) (int, error)
}

// Scheduler triggers goal reminders on a cron schedule
type Scheduler struct {
	cron   *cron.Cron
	sender ReminderSender
	log    *logrus.Logger
}

// New validates schedule (standard five-field cron syntax) and registers the reminder job
func New(schedule string, sender ReminderSender, log *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		sender: sender,
		log:    log,
	}
	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}
	return s, nil
}

// RunOnce sends reminders immediately
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	sent, err := s.sender.SendGoalReminders(ctx)
	if err != nil {
		s.log.Errorf("Goal reminder job failed after %d emails: %v", sent, err)
		return
	}
	s.log.WithField("sent", sent).Info("Goal reminder job finished")
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job to finish or ctx to expire
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Reminder job still running at shutdown")
	}
}
