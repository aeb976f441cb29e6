package services

import (
	"context"
	"time"

	"github.com/dialogics/diagnostics-backend/internal/logger"
)

// Dispatcher runs a task without waiting for it. There is no queue, no retry
// and no ordering between tasks; a dispatched task runs at most once and a
// failure is only ever logged.
type Dispatcher interface {
	Dispatch(name string, task func(ctx context.Context) error)
}

type goDispatcher struct {
	log     *logger.Logger
	timeout time.Duration
}

func NewDispatcher(log *logger.Logger, timeout time.Duration) Dispatcher {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &goDispatcher{
		log:     log.With("service", "Dispatcher"),
		timeout: timeout,
	}
}

func (d *goDispatcher) Dispatch(name string, task func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.log.Error("Background task panicked", "task", name, "panic", r)
			}
		}()

		// The request context is gone by the time the task runs; each task
		// gets its own bounded lifetime instead.
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		started := time.Now()
		if err := task(ctx); err != nil {
			d.log.Error("Background task failed", "task", name, "error", err, "duration", time.Since(started).String())
			return
		}
		d.log.Info("Background task finished", "task", name, "duration", time.Since(started).String())
	}()
}
