package remote

import (
	"context"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Completion receives the outcome of a dispatched remote call. It runs on a worker goroutine.
type Completion func(err error)

// Dispatcher runs remote calls in the background on a bounded set of goroutines.
// Callers are not blocked and local state is never rolled back when a call fails.
type Dispatcher struct {
	wg     conc.WaitGroup
	slots  chan struct{}
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher allowing at most workers calls in flight.
func NewDispatcher(workers int, logger *zap.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		slots:  make(chan struct{}, workers),
		logger: logger.Named("dispatcher"),
	}
}

// Go schedules task. The context handed to task is detached from ctx's cancellation
// so a finished HTTP request does not abort the remote write it triggered.
func (d *Dispatcher) Go(ctx context.Context, name string, task func(context.Context) error, done Completion) {
	ctx = context.WithoutCancel(ctx)
	d.wg.Go(func() {
		d.slots <- struct{}{}
		defer func() { <-d.slots }()

		err := task(ctx)
		if err != nil {
			d.logger.Warn("Remote call failed", zap.String("call", name), zap.Error(err))
		}
		if done != nil {
			done(err)
		}
	})
}

// Wait blocks until every scheduled call has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
