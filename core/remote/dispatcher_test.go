package remote

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDispatcher_RunsTasksAndReportsCompletion(t *testing.T) {
	d := NewDispatcher(2, zap.NewNop())

	var (
		mu      sync.Mutex
		results []error
	)
	boom := errors.New("boom")

	d.Go(context.Background(), "ok", func(context.Context) error { return nil }, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, err)
	})
	d.Go(context.Background(), "fail", func(context.Context) error { return boom }, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, err)
	})
	d.Go(context.Background(), "no-callback", func(context.Context) error { return boom }, nil)
	d.Wait()

	assert.Len(t, results, 2)
	assert.Contains(t, results, boom)
	assert.Contains(t, results, error(nil))
}

func TestDispatcher_LimitsConcurrency(t *testing.T) {
	d := NewDispatcher(2, nil)

	var running, peak int32
	for i := 0; i < 8; i++ {
		d.Go(context.Background(), "slow", func(context.Context) error {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return nil
		}, nil)
	}
	d.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestDispatcher_DetachesCancellation(t *testing.T) {
	d := NewDispatcher(1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var taskErr error
	d.Go(ctx, "detached", func(ctx context.Context) error {
		taskErr = ctx.Err()
		return nil
	}, nil)
	d.Wait()

	assert.NoError(t, taskErr)
}
