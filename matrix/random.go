// SPDX-License-Identifier: MIT
// Package: matrix (random fixtures)
//
// Purpose:
//   • Fill matrices with reproducible uniform pseudorandoms in [0, 1).
//   • Determinism is explicit: the caller owns the *rand.Rand and its seed.

package matrix

import (
	"fmt"
	"math/rand"
)

// FillUniform overwrites every element of m with rng.Float64() in [0, 1).
// Traversal is i→j, so equal seeds give equal matrices.
//
// Errors:
//   - ErrNilMatrix when m is nil; Set errors are returned wrapped with coordinates.
func FillUniform(m Matrix, rng *rand.Rand) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("FillUniform", err)
	}
	if rng == nil {
		panic("matrix: FillUniform(nil rng)")
	}
	r, c := m.Rows(), m.Cols()
	var (
		i, j int // loop iterators
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rng.Float64()); err != nil {
				return matrixErrorf("FillUniform", fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// NewUniform allocates an n×n Dense filled by FillUniform.
func NewUniform(n int, rng *rand.Rand) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if err = FillUniform(m, rng); err != nil {
		return nil, err
	}

	return m, nil
}
