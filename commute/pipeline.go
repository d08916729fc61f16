// SPDX-License-Identifier: MIT

package commute

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/commute/chunk"
	"github.com/katalvlaran/commute/workerpool"
)

// Run executes the chunked parallel check over pairs.
//
// Implementation:
//   - Stage 1: validate the batch, derive chunk size max(1, N/workers),
//     partition and check the chunks tile N×N exactly (chunk.Covers).
//   - Stage 2: Assign items; acquire a workerpool.Pool of `workers` goroutines,
//     released by defer on every exit path.
//   - Stage 3: Process every item exactly once; verdicts land in a pre-sized
//     slice indexed like the items, so workers share no mutable state.
//   - Stage 4: after the join barrier, Aggregate.
//
// Detected non-commutativity is reported in Result.Failing. A returned error
// is a precondition violation or a cancelled ctx; the run is then aborted and
// no partial result is returned.
func Run(ctx context.Context, pairs []Pair, opts ...Option) (*Result, error) {
	cfg := gatherOptions(opts...)
	start := time.Now()

	n, err := validateBatch(pairs)
	if err != nil {
		return nil, commuteErrorf("Run", err)
	}
	size, coords, err := planChunks(n, cfg.workers)
	if err != nil {
		return nil, commuteErrorf("Run", err)
	}
	items, err := Assign(cfg.workers, pairs, coords, cfg.fault)
	if err != nil {
		return nil, commuteErrorf("Run", err)
	}

	runID := uuid.NewString()
	logger := log.New(cfg.logger.Writer(), fmt.Sprintf("%s[%s] ", cfg.logger.Prefix(), runID), cfg.logger.Flags())
	logger.Printf("n=%d chunk=%d chunks/pair=%d pairs=%d items=%d workers=%d fault=%t",
		n, size, len(coords), len(pairs), len(items), cfg.workers, cfg.fault)

	pool := workerpool.New(cfg.workers)
	defer pool.Close()

	verdicts := make([]Verdict, len(items))
	err = pool.Run(ctx, len(items), func(i int) error {
		v, err := Process(items[i], cfg.tol)
		if err != nil {
			return err
		}
		verdicts[i] = v
		return nil
	})
	if err != nil {
		logger.Printf("aborted: %v", err)
		return nil, commuteErrorf("Run", err)
	}

	res := &Result{
		Summary:   Aggregate(verdicts),
		RunID:     runID,
		Size:      n,
		Workers:   cfg.workers,
		ChunkSize: size,
		Chunks:    len(coords),
		Items:     len(items),
		Elapsed:   time.Since(start),
	}
	logger.Printf("done in %s: failing=%v", res.Elapsed, res.Failing)

	return res, nil
}

// planChunks derives the chunk size, partitions N×N and checks the result
// tiles the product exactly once. Any failure is a precondition violation.
func planChunks(n, workers int) (int, []chunk.Coordinate, error) {
	size, err := chunk.SizeFor(n, workers)
	if err != nil {
		return 0, nil, preconditionf("chunk size", err)
	}
	coords, err := chunk.Partition(n, size)
	if err != nil {
		return 0, nil, preconditionf("partition", err)
	}
	if err = chunk.Covers(n, coords); err != nil {
		return 0, nil, preconditionf("partition", err)
	}

	return size, coords, nil
}
