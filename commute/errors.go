// SPDX-License-Identifier: MIT

package commute

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition marks a core-logic bug: malformed chunk coordinates,
	// shape mismatch between chunk products, inconsistent batch shapes. Runs
	// that hit it must abort; it is never retried.
	ErrPrecondition = errors.New("commute: precondition violated")

	// ErrBaselineFailed means the unchunked reference check found a pair with
	// A·B != B·A. That points at batch generation, not at the pipeline.
	ErrBaselineFailed = errors.New("commute: baseline check failed")

	// ErrInvalidWorkers indicates a worker count < 1.
	ErrInvalidWorkers = errors.New("commute: worker count must be >= 1")

	// ErrInvalidSize indicates a matrix dimension < 1.
	ErrInvalidSize = errors.New("commute: matrix size must be >= 1")

	// ErrEmptyBatch indicates a call with no pairs.
	ErrEmptyBatch = errors.New("commute: empty batch")
)

// commuteErrorf wraps err with an operation tag, preserving it for errors.Is.
func commuteErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// preconditionf marks cause as a precondition violation while keeping the
// underlying sentinel reachable through errors.Is.
func preconditionf(format string, cause error, args ...any) error {
	return fmt.Errorf("%w: %s: %w", ErrPrecondition, fmt.Sprintf(format, args...), cause)
}
