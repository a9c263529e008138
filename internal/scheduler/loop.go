package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Loop runs a task at a fixed cadence, one execution at a time. The next
// wait period is armed only after the previous execution has returned,
// so an overrunning task delays later ticks instead of overlapping them.
type Loop struct {
	Logger   *zap.Logger
	Interval time.Duration
}

func New(logger *zap.Logger, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Loop{Logger: logger, Interval: interval}
}

// Run blocks until ctx is cancelled. The first execution happens
// immediately; there is no other way out of the loop.
func (l *Loop) Run(ctx context.Context, task func(context.Context)) {
	t := time.NewTimer(0)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Logger.Info("scheduler_stopped")
			return
		case <-t.C:
			l.safeRun(ctx, task)
			t.Reset(l.Interval)
		}
	}
}

// safeRun keeps a panicking task from taking the loop down with it. The
// prober already promises not to fail, so this should never fire.
func (l *Loop) safeRun(ctx context.Context, task func(context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			l.Logger.Error("task_panic", zap.Any("panic", r))
		}
	}()
	task(ctx)
}
