package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-sync/internal/service"
)

// countingAction records how many actions run at the same time.
type countingAction struct {
	running *int32
	peak    *int32
	err     error
}

func (c *countingAction) Perform(_ context.Context, _ *service.Service) error {
	now := atomic.AddInt32(c.running, 1)
	for {
		peak := atomic.LoadInt32(c.peak)
		if now <= peak || atomic.CompareAndSwapInt32(c.peak, peak, now) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	atomic.AddInt32(c.running, -1)
	return c.err
}

type blockingAction struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingAction) Perform(_ context.Context, _ *service.Service) error {
	close(b.started)
	<-b.release
	return nil
}

func TestOperatorDelegator_SingleWorkerSerializes(t *testing.T) {
	d := NewOperatorDelegator(&service.Service{}, 1)
	d.Start()
	defer d.Stop()

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Process(context.Background(), &countingAction{running: &running, peak: &peak}))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&peak))
}

func TestOperatorDelegator_ReturnsActionError(t *testing.T) {
	d := NewOperatorDelegator(&service.Service{}, 0)
	d.Start()
	defer d.Stop()

	var running, peak int32
	err := d.Process(context.Background(), &countingAction{running: &running, peak: &peak, err: errors.New("ledger unavailable")})
	assert.EqualError(t, err, "ledger unavailable")
}

func TestOperatorDelegator_CallerCancelsWhileQueued(t *testing.T) {
	d := NewOperatorDelegator(&service.Service{}, 1)
	d.Start()
	defer d.Stop()

	first := &blockingAction{started: make(chan struct{}), release: make(chan struct{})}
	go func() {
		_ = d.Process(context.Background(), first)
	}()
	<-first.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var running, peak int32
	err := d.Process(ctx, &countingAction{running: &running, peak: &peak})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(first.release)
}
