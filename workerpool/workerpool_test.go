// SPDX-License-Identifier: MIT

package workerpool_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/commute/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToGOMAXPROCS(t *testing.T) {
	p := workerpool.New(0)
	defer p.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), p.NumWorkers())
}

// TestRun_EveryIndexOnce checks exactly-once processing across worker counts.
func TestRun_EveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 8, 32} {
		p := workerpool.New(workers)

		const n = 1000
		counts := make([]int32, n)
		err := p.Run(context.Background(), n, func(i int) error {
			atomic.AddInt32(&counts[i], 1)
			return nil
		})
		require.NoError(t, err)
		for i, c := range counts {
			require.Equalf(t, int32(1), c, "index %d with %d workers", i, workers)
		}

		p.Close()
	}
}

// TestRun_Reusable dispatches several batches through one pool.
func TestRun_Reusable(t *testing.T) {
	p := workerpool.New(4)
	defer p.Close()

	for round := 0; round < 5; round++ {
		var sum atomic.Int64
		require.NoError(t, p.Run(context.Background(), 100, func(i int) error {
			sum.Add(int64(i))
			return nil
		}))
		require.Equal(t, int64(4950), sum.Load())
	}
}

// TestRun_FirstErrorStopsDispatch returns the failure and stops claiming work.
func TestRun_FirstErrorStopsDispatch(t *testing.T) {
	p := workerpool.New(2)
	defer p.Close()

	boom := errors.New("boom")
	var calls atomic.Int64
	err := p.Run(context.Background(), 10_000, func(i int) error {
		calls.Add(1)
		if i == 3 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Less(t, calls.Load(), int64(10_000))
}

// TestRun_Cancelled reports ctx.Err() when the context is already done.
func TestRun_Cancelled(t *testing.T) {
	p := workerpool.New(2)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Run(ctx, 10, func(int) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

// TestRun_AfterCloseIsSequential keeps working once the pool is closed.
func TestRun_AfterCloseIsSequential(t *testing.T) {
	p := workerpool.New(4)
	p.Close()
	p.Close() // idempotent

	var mu sync.Mutex
	var order []int
	require.NoError(t, p.Run(context.Background(), 5, func(i int) error {
		mu.Lock()
		order = append(order, i)
		mu.Unlock()
		return nil
	}))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

// TestRun_RunsConcurrently proves more than one worker is active at once.
func TestRun_RunsConcurrently(t *testing.T) {
	p := workerpool.New(2)
	defer p.Close()

	var active, peak atomic.Int32
	require.NoError(t, p.Run(context.Background(), 2, func(int) error {
		cur := active.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		deadline := time.Now().Add(time.Second)
		for peak.Load() < 2 && time.Now().Before(deadline) {
			runtime.Gosched()
		}
		active.Add(-1)
		return nil
	}))
	assert.Equal(t, int32(2), peak.Load())
}

// TestRun_ConcurrentWithClose: Runs racing a Close neither panic nor lose
// indices; each one finishes on the pool or sequentially.
func TestRun_ConcurrentWithClose(t *testing.T) {
	for round := 0; round < 20; round++ {
		p := workerpool.New(4)

		const runs, n = 8, 64
		var (
			wg    sync.WaitGroup
			total atomic.Int64
		)
		wg.Add(runs)
		for r := 0; r < runs; r++ {
			go func() {
				defer wg.Done()
				assert.NoError(t, p.Run(context.Background(), n, func(int) error {
					total.Add(1)
					return nil
				}))
			}()
		}
		p.Close()
		wg.Wait()

		require.Equal(t, int64(runs*n), total.Load())
	}
}
