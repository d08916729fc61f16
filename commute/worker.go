// SPDX-License-Identifier: MIT

package commute

import "github.com/katalvlaran/commute/matrix"

// Process computes one chunk of A·B and the same chunk of B·A and compares
// them under tol.
//
// Implementation:
//   - Stage 1: AB = A[rows, :] × B[:, cols] via matrix.MulBlock (full inner extent).
//   - Stage 2: BA = B[rows, :] × A[:, cols].
//   - Stage 3: with fault injection on and an even pair index, BA[0][0]
//     (chunk-local) is overwritten with 0.
//   - Stage 4: matrix.AllClose(AB, BA, tol.RTol, tol.ATol).
//
// Errors are precondition violations (malformed coordinate, shape mismatch,
// missing pair) wrapping ErrPrecondition plus the matrix sentinel.
func Process(item WorkItem, tol Tolerance) (Verdict, error) {
	if item.Pair == nil || item.Pair.A == nil || item.Pair.B == nil {
		return Verdict{}, preconditionf("pair %d chunk %v", matrix.ErrNilMatrix, item.PairIndex, item.Coord)
	}
	a, b, c := item.Pair.A, item.Pair.B, item.Coord

	ab, err := matrix.MulBlock(a, b, c.RowStart, c.RowEnd, c.ColStart, c.ColEnd)
	if err != nil {
		return Verdict{}, preconditionf("pair %d chunk %v: AB", err, item.PairIndex, c)
	}
	ba, err := matrix.MulBlock(b, a, c.RowStart, c.RowEnd, c.ColStart, c.ColEnd)
	if err != nil {
		return Verdict{}, preconditionf("pair %d chunk %v: BA", err, item.PairIndex, c)
	}

	if injectFault(item) {
		if err = ba.Set(0, 0, 0); err != nil {
			return Verdict{}, preconditionf("pair %d chunk %v: fault", err, item.PairIndex, c)
		}
	}

	equal, err := matrix.AllClose(ab, ba, tol.RTol, tol.ATol)
	if err != nil {
		return Verdict{}, preconditionf("pair %d chunk %v: compare", err, item.PairIndex, c)
	}

	return Verdict{PairIndex: item.PairIndex, Equal: equal}, nil
}

// injectFault applies to every chunk of an even pair index, not to a chosen chunk.
func injectFault(item WorkItem) bool {
	return item.FaultInjection && item.PairIndex%2 == 0
}
