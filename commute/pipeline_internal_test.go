// SPDX-License-Identifier: MIT

package commute

import (
	"testing"

	"github.com/katalvlaran/commute/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanChunks(t *testing.T) {
	for _, tc := range []struct {
		n, workers, size, chunks int
	}{
		{4, 2, 2, 4},
		{5, 2, 2, 9}, // ragged trailing row and column
		{3, 10, 1, 9},
		{7, 1, 7, 1},
	} {
		size, coords, err := planChunks(tc.n, tc.workers)
		require.NoError(t, err)
		assert.Equalf(t, tc.size, size, "n=%d workers=%d", tc.n, tc.workers)
		assert.Lenf(t, coords, tc.chunks, "n=%d workers=%d", tc.n, tc.workers)
		require.NoError(t, chunk.Covers(tc.n, coords))
	}
}

func TestPlanChunks_Precondition(t *testing.T) {
	_, _, err := planChunks(0, 2)
	require.ErrorIs(t, err, ErrPrecondition)
	require.ErrorIs(t, err, chunk.ErrInvalidSize)

	_, _, err = planChunks(4, 0)
	require.ErrorIs(t, err, ErrPrecondition)
	require.ErrorIs(t, err, chunk.ErrInvalidWorkers)
}
