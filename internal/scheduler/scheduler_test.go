package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeSender struct {
	calls int
	err   error
}

func (f *fakeSender) SendGoalReminders(ctx context.Context) (int, error) {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("no deadline")
	}
	return 2, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNew_InvalidSchedule(t *testing.T) {
	if _, err := New("every tuesday", &fakeSender{}, quietLogger()); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestRunOnce(t *testing.T) {
	sender := &fakeSender{}
	s, err := New("0 9 * * MON", sender, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.RunOnce()
	sender.err = errors.New("db down")
	s.RunOnce()
	if sender.calls != 2 {
		t.Errorf("calls = %d, want 2", sender.calls)
	}
}

func TestStartStop(t *testing.T) {
	s, err := New("@every 1h", &fakeSender{}, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
