package lock_test

import (
	"context"
	"fieldserve/shared/lock"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_Exclusive(t *testing.T) {
	locker := lock.NewLocal()
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "provider:1", time.Second, time.Second)
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "provider:1", time.Second, 20*time.Millisecond)
	assert.ErrorIs(t, err, lock.ErrNotAcquired)

	other, err := locker.Acquire(ctx, "provider:2", time.Second, 20*time.Millisecond)
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := locker.Acquire(ctx, "provider:1", time.Second, 20*time.Millisecond)
	require.NoError(t, err)
	again()
}

func TestLocalLocker_SerializesCriticalSection(t *testing.T) {
	locker := lock.NewLocal()

	var (
		inside  int32
		overlap int32
		wg      sync.WaitGroup
	)

	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			release, err := locker.Acquire(context.Background(), "k", time.Second, 5*time.Second)
			if err != nil {
				return
			}
			defer release()

			if atomic.AddInt32(&inside, 1) > 1 {
				atomic.StoreInt32(&overlap, 1)
			}

			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}

	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&overlap))
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	locker := lock.NewLocal()

	release, err := locker.Acquire(context.Background(), "k", time.Second, time.Second)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = locker.Acquire(ctx, "k", time.Second, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
