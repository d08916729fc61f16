// SPDX-License-Identifier: MIT

package chunk

import (
	"errors"
	"fmt"
)

// Sentinel errors for partitioning. All of them mark a precondition
// violation upstream of the partitioner; none is a normal runtime outcome.
var (
	// ErrInvalidSize indicates a matrix dimension N < 1.
	ErrInvalidSize = errors.New("chunk: matrix size must be >= 1")

	// ErrInvalidChunkSize indicates a chunk size < 1.
	ErrInvalidChunkSize = errors.New("chunk: chunk size must be >= 1")

	// ErrInvalidWorkers indicates a worker count < 1.
	ErrInvalidWorkers = errors.New("chunk: worker count must be >= 1")

	// ErrOverlap reports a cell covered by more than one coordinate.
	ErrOverlap = errors.New("chunk: coordinates overlap")

	// ErrGap reports a cell covered by no coordinate.
	ErrGap = errors.New("chunk: coordinates leave a gap")

	// ErrOutOfBounds reports a malformed or out-of-range coordinate.
	ErrOutOfBounds = errors.New("chunk: coordinate out of bounds")
)

// chunkErrorf tags err with the calling operation, preserving it for errors.Is.
func chunkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
