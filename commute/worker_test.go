// SPDX-License-Identifier: MIT

package commute_test

import (
	"testing"

	"github.com/katalvlaran/commute/chunk"
	"github.com/katalvlaran/commute/commute"
	"github.com/katalvlaran/commute/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_ScalarMultipleIsEqual(t *testing.T) {
	pairs := mustBatch(t, 5, 3, 11)
	coords, err := chunk.Partition(5, 2)
	require.NoError(t, err)

	for _, c := range coords {
		v, err := commute.Process(commute.WorkItem{Coord: c, PairIndex: 1, Pair: &pairs[1]}, commute.DefaultTolerance)
		require.NoError(t, err)
		assert.Equal(t, commute.Verdict{PairIndex: 1, Equal: true}, v)
	}
}

// TestProcess_FaultOnlyOnEvenPairs: the corruption fires for every chunk of
// an even pair and never for an odd one.
func TestProcess_FaultOnlyOnEvenPairs(t *testing.T) {
	pairs := mustBatch(t, 4, 2, 5)
	coords, err := chunk.Partition(4, 2)
	require.NoError(t, err)

	for _, p := range pairs {
		for _, c := range coords {
			item := commute.WorkItem{Coord: c, PairIndex: p.Index, Pair: &pairs[p.Index], FaultInjection: true}
			v, err := commute.Process(item, commute.DefaultTolerance)
			require.NoError(t, err)
			assert.Equalf(t, p.Index%2 != 0, v.Equal, "pair %d chunk %v", p.Index, c)
		}
	}
}

func TestProcess_DetectsRealInequality(t *testing.T) {
	p := nonCommutingPair(t, 3)
	whole := chunk.Coordinate{RowStart: 0, RowEnd: 2, ColStart: 0, ColEnd: 2}

	v, err := commute.Process(commute.WorkItem{Coord: whole, PairIndex: 3, Pair: &p}, commute.DefaultTolerance)
	require.NoError(t, err)
	assert.False(t, v.Equal)
}

// TestProcess_Preconditions: malformed inputs abort with ErrPrecondition and
// keep the underlying matrix sentinel visible.
func TestProcess_Preconditions(t *testing.T) {
	pairs := mustBatch(t, 3, 2, 3)
	small, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	mismatched := commute.Pair{Index: 0, A: pairs[0].A, B: small}

	cases := []struct {
		name string
		item commute.WorkItem
		want error
	}{
		{"nil pair", commute.WorkItem{Coord: chunk.Coordinate{RowEnd: 1, ColEnd: 1}}, matrix.ErrNilMatrix},
		{"coordinate past N", commute.WorkItem{Coord: chunk.Coordinate{RowEnd: 4, ColEnd: 1}, Pair: &pairs[0]}, matrix.ErrBadShape},
		{"empty coordinate", commute.WorkItem{Coord: chunk.Coordinate{RowStart: 1, RowEnd: 1, ColEnd: 1}, Pair: &pairs[0]}, matrix.ErrBadShape},
		{"shape mismatch", commute.WorkItem{Coord: chunk.Coordinate{RowEnd: 1, ColEnd: 1}, Pair: &mismatched}, matrix.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commute.Process(tc.item, commute.DefaultTolerance)
			require.ErrorIs(t, err, commute.ErrPrecondition)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
