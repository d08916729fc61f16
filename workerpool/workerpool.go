// SPDX-License-Identifier: MIT

// Package workerpool provides a fixed-size pool of persistent goroutines.
// A Pool is created once per pipeline run, reused for every batch of work
// dispatched through Run, and released with Close on every exit path.
//
// Usage:
//
//	pool := workerpool.New(workers)
//	defer pool.Close()
//
//	err := pool.Run(ctx, len(items), func(i int) error {
//	    return process(items[i])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     bool
	mu         sync.RWMutex   // read-held by Run while dispatching, write-held by Close
	done       sync.WaitGroup // tracks worker goroutines, joined by Close
}

// task is one unit handed to a worker goroutine.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent goroutines.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan task, numWorkers*2),
	}

	p.done.Add(numWorkers)
	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	defer p.done.Done()
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down and joins every worker goroutine, so no worker
// outlives the call. Runs already dispatching complete first; Runs that start
// afterwards execute sequentially. Calling Close multiple times, or
// concurrently with Run, is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.workC)
		p.mu.Unlock()
	})
	p.done.Wait()
}

// Run executes fn for every index in [0, n) and blocks until all dispatched
// calls have returned (a full join barrier). Workers pull indices from a
// shared atomic counter, so each index is processed exactly once regardless
// of how long individual calls take.
//
// The first non-nil error from fn stops workers from claiming further indices
// and is returned. A cancelled ctx has the same effect and returns ctx.Err().
// After Close, Run degrades to sequential execution on the caller goroutine.
// fn must not call Run or Close on the same pool.
func (p *Pool) Run(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	var (
		nextIdx  atomic.Int64
		firstErr error
		errOnce  sync.Once
		stop     atomic.Bool
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stop.Store(true)
	}
	drain := func() {
		for !stop.Load() {
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			idx := int(nextIdx.Add(1)) - 1
			if idx >= n {
				return
			}
			if err := fn(idx); err != nil {
				fail(err)
				return
			}
		}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		drain()
		return firstErr
	}

	// Don't wake more workers than there are items.
	workers := min(p.numWorkers, n)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{fn: drain, barrier: &wg}
	}
	wg.Wait()

	return firstErr
}
