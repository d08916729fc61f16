// SPDX-License-Identifier: MIT

package commute_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/commute/commute"
	"github.com/katalvlaran/commute/matrix"
	"github.com/stretchr/testify/require"
)

// mustBatch builds a seeded batch or fails the test.
func mustBatch(t *testing.T, n int, c float64, seed int64) []commute.Pair {
	t.Helper()
	pairs, err := commute.NewBatch(n, c, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return pairs
}

// nonCommutingPair returns A, B with A·B != B·A.
func nonCommutingPair(t *testing.T, index int) commute.Pair {
	t.Helper()
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	return commute.Pair{Index: index, A: a, B: b}
}

var evenIndices = []int{0, 2, 4, 6, 8}
