// SPDX-License-Identifier: MIT

package commute

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/commute/matrix"
)

// Baseline is the unchunked reference check. For every pair it forms the
// full products A·B and B·A with gonum, independently of the chunk kernel,
// and requires them to be tolerance-equal. It never injects faults.
//
// A failure means the batch itself is wrong (B is not a scalar multiple of
// A); callers must abort before running the pipeline.
//
// Errors: ErrBaselineFailed (wrapped with the pair index), ErrPrecondition
// for structurally invalid pairs, ErrEmptyBatch.
func Baseline(pairs []Pair, tol Tolerance) error {
	if _, err := validateBatch(pairs); err != nil {
		return commuteErrorf("Baseline", err)
	}

	for _, p := range pairs {
		a, b := toGonum(p.A), toGonum(p.B)

		var ab, ba mat.Dense
		ab.Mul(a, b)
		ba.Mul(b, a)

		abD, err := fromGonum(&ab)
		if err != nil {
			return commuteErrorf("Baseline", preconditionf("pair %d: AB", err, p.Index))
		}
		baD, err := fromGonum(&ba)
		if err != nil {
			return commuteErrorf("Baseline", preconditionf("pair %d: BA", err, p.Index))
		}

		equal, err := matrix.AllClose(abD, baD, tol.RTol, tol.ATol)
		if err != nil {
			return commuteErrorf("Baseline", preconditionf("pair %d: compare", err, p.Index))
		}
		if !equal {
			return commuteErrorf("Baseline", fmt.Errorf("pair %d: %w", p.Index, ErrBaselineFailed))
		}
	}

	return nil
}

// toGonum copies d into a gonum dense matrix.
func toGonum(d *matrix.Dense) *mat.Dense {
	r, c := d.Shape()
	return mat.NewDense(r, c, d.Data())
}

// fromGonum copies m row by row (its stride may exceed its width).
// Overflowing products stay ±Inf, so the finite-only policy is relaxed.
func fromGonum(m *mat.Dense) (*matrix.Dense, error) {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, m.RawRowView(i)...)
	}

	return matrix.NewDenseFrom(r, c, data, matrix.WithNoValidateNaNInf())
}

// validateBatch checks that pairs is non-empty and every pair holds two
// square matrices of one common size, which it returns.
func validateBatch(pairs []Pair) (int, error) {
	if len(pairs) == 0 {
		return 0, ErrEmptyBatch
	}
	n := -1
	for _, p := range pairs {
		if p.A == nil || p.B == nil {
			return 0, preconditionf("pair %d", matrix.ErrNilMatrix, p.Index)
		}
		if err := matrix.ValidateSquare(p.A); err != nil {
			return 0, preconditionf("pair %d: A", err, p.Index)
		}
		if err := matrix.ValidateSameShape(p.A, p.B); err != nil {
			return 0, preconditionf("pair %d: B", err, p.Index)
		}
		if n == -1 {
			n = p.A.Rows()
		} else if p.A.Rows() != n {
			return 0, preconditionf("pair %d: size %d, batch size %d", matrix.ErrDimensionMismatch, p.Index, p.A.Rows(), n)
		}
	}

	return n, nil
}
