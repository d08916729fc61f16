// SPDX-License-Identifier: MIT
// Package matrix provides the product kernels used by the commutativity
// checker: block multiplication restricted to an output window and scalar
// scaling. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels use the central validators and wrap failures via matrixErrorf.
//   - Loop orders are fixed so repeated runs produce bit-identical results.
//   - Overflow is not an error. Kernel outputs are created with
//     WithNoValidateNaNInf and may hold ±Inf (or NaN from 0·Inf).

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMulBlock = "MulBlock"
	opScale    = "Scale"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulBlock computes the sub-block C[r0:r1, c0:c1] of C = A × B.
// Each output cell uses the FULL inner extent (A row i against B column j),
// so the returned block is an exact slice of the full product rather than a
// partial accumulation. The result is a fresh (r1-r0)×(c1-c0) Dense indexed
// locally from (0,0).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); ValidateWindow on rows of A and cols of B.
//   - Stage 2: *Dense fast path with i→k→j row-major strides, else At-based i→j→k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadShape (malformed window).
//
// Complexity:
//   - Time O((r1-r0)*n*(c1-c0)), Space O((r1-r0)*(c1-c0)).
func MulBlock(a, b Matrix, r0, r1, c0, c1 int) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulBlock, err)
	}
	if err := ValidateWindow(r0, r1, a.Rows()); err != nil {
		return nil, matrixErrorf(opMulBlock, err)
	}
	if err := ValidateWindow(c0, c1, b.Cols()); err != nil {
		return nil, matrixErrorf(opMulBlock, err)
	}
	res, err := mulBlock(a, b, r0, r1, c0, c1)
	if err != nil {
		return nil, matrixErrorf(opMulBlock, err)
	}

	return res, nil
}

// mulBlock is the kernel behind MulBlock.
// Inputs are assumed validated by the caller.
func mulBlock(a, b Matrix, r0, r1, c0, c1 int) (*Dense, error) {
	inner := a.Cols()
	outRows, outCols := r1-r0, c1-c0
	res, err := NewDense(outRows, outCols, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*inner + k
			// db.data layout: k*db.c + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = r0; i < r1; i++ {
				rowOffsetA = i * inner
				rowOffsetR = (i - r0) * outCols
				for k = 0; k < inner; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero
					}
					rowOffsetB = k * db.c
					for j = c0; j < c1; j++ {
						res.data[rowOffsetR+j-c0] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = r0; i < r1; i++ {
		for j = c0; j < c1; j++ {
			current = ZeroSum
			for k = 0; k < inner; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", i, k, err)
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", k, j, err)
				}
				current += av * bv
			}
			res.data[(i-r0)*outCols+(j-c0)] = current
		}
	}

	return res, nil
}

// Scale returns alpha*m as a fresh Dense; m is never mutated.
// Both paths write the products as computed: alpha = ±Inf or an overflowing
// product yields ±Inf cells, never an error.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}
