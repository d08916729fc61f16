// SPDX-License-Identifier: MIT

package commute

import (
	"time"

	"github.com/katalvlaran/commute/chunk"
	"github.com/katalvlaran/commute/matrix"
)

// BatchSize is the number of pairs NewBatch generates.
const BatchSize = 10

// Pair is one (A, B) test case. Index is its position in the batch and is
// the join key for every downstream stage. A and B are treated as read-only
// once the pair is built.
type Pair struct {
	Index int
	A, B  *matrix.Dense
}

// Tolerance parametrises the approximate equality |a-b| <= ATol + RTol*|b|.
type Tolerance struct {
	RTol float64
	ATol float64
}

// DefaultTolerance is rtol = 1e-5, atol = 1e-8.
var DefaultTolerance = Tolerance{RTol: matrix.DefaultRTol, ATol: matrix.DefaultATol}

// WorkItem is one independent unit: a chunk of one pair's products.
// Pair is shared by pointer between all items of that pair and is never
// written through.
type WorkItem struct {
	Coord          chunk.Coordinate
	PairIndex      int
	Slot           int // assigning slot, informational only
	Pair           *Pair
	FaultInjection bool
}

// Verdict is the outcome of one WorkItem.
type Verdict struct {
	PairIndex int
	Equal     bool
}

// PairSummary counts the chunks checked for one pair and how many mismatched.
type PairSummary struct {
	Index      int
	Chunks     int
	Mismatches int
}

// Failed reports whether at least one chunk of the pair mismatched.
func (s PairSummary) Failed() bool { return s.Mismatches > 0 }

// Summary is the aggregated view of a set of verdicts.
type Summary struct {
	// Failing holds the pair indices with at least one mismatching chunk,
	// sorted ascending.
	Failing []int
	// Pairs holds one entry per pair index seen, sorted by index.
	Pairs []PairSummary
}

// Passed reports whether no pair failed.
func (s Summary) Passed() bool { return len(s.Failing) == 0 }

// Result is the outcome of one pipeline Run. It is created fresh per run.
type Result struct {
	Summary

	RunID     string
	Size      int // matrix dimension N
	Workers   int
	ChunkSize int
	Chunks    int // chunks per pair
	Items     int // work items dispatched
	Elapsed   time.Duration
}
