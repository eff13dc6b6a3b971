package worker

import (
	"context"
	"time"
)

// Worker long running job
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs a unit of work on a fixed interval until the context is
// cancelled. A failed round backs off to ErrDelay instead of spinning.
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

// StartTick run onWork on every tick
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = time.Second
	}

	errDelay := w.ErrDelay
	if errDelay <= 0 {
		errDelay = 10 * time.Second
	}

	dur := time.Millisecond
	timer := time.NewTimer(dur)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if err := onWork(ctx); err != nil {
				dur = errDelay
			} else {
				dur = delay
			}

			timer.Reset(dur)
		}
	}
}
