// SPDX-License-Identifier: MIT

package commute

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/commute/matrix"
)

// NewBatch builds BatchSize pairs of n×n matrices: each A_i is uniform in
// [0, 1) drawn from rng, and B_i = c·A_i. Scalar multiples always commute, so
// a correct pipeline reports every pair as passing unless faults are injected.
//
// Errors: ErrInvalidSize for n < 1.
// Panics on a nil rng (programmer error).
func NewBatch(n int, c float64, rng *rand.Rand) ([]Pair, error) {
	if n < 1 {
		return nil, commuteErrorf("NewBatch", ErrInvalidSize)
	}
	if rng == nil {
		panic("commute: NewBatch(nil rng)")
	}

	pairs := make([]Pair, BatchSize)
	for i := range pairs {
		a, err := matrix.NewUniform(n, rng)
		if err != nil {
			return nil, commuteErrorf("NewBatch", fmt.Errorf("pair %d: %w", i, err))
		}
		b, err := matrix.Scale(a, c)
		if err != nil {
			return nil, commuteErrorf("NewBatch", fmt.Errorf("pair %d: %w", i, err))
		}
		pairs[i] = Pair{Index: i, A: a, B: b}
	}

	return pairs, nil
}
