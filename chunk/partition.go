// SPDX-License-Identifier: MIT

package chunk

import "fmt"

// SizeFor derives the chunk edge length for an n×n product spread over
// workers: max(1, n / workers) with integer division.
//
// Errors: ErrInvalidSize (n < 1), ErrInvalidWorkers (workers < 1).
func SizeFor(n, workers int) (int, error) {
	if n < 1 {
		return 0, chunkErrorf("SizeFor", ErrInvalidSize)
	}
	if workers < 1 {
		return 0, chunkErrorf("SizeFor", ErrInvalidWorkers)
	}

	return max(1, n/workers), nil
}

// Partition splits [0,n)×[0,n) into size×size chunks in row-major chunk
// order. Each end bound is min(start+size, n), so trailing chunks may be
// smaller. When size >= n the result is exactly one coordinate (0,n,0,n).
//
// Errors: ErrInvalidSize (n < 1), ErrInvalidChunkSize (size < 1).
// Complexity: O(ceil(n/size)^2) time and space.
func Partition(n, size int) ([]Coordinate, error) {
	if n < 1 {
		return nil, chunkErrorf("Partition", ErrInvalidSize)
	}
	if size < 1 {
		return nil, chunkErrorf("Partition", ErrInvalidChunkSize)
	}

	per := (n + size - 1) / size // chunks per axis
	coords := make([]Coordinate, 0, per*per)
	for i := 0; i < n; i += size {
		iEnd := min(i+size, n)
		for j := 0; j < n; j += size {
			coords = append(coords, Coordinate{
				RowStart: i,
				RowEnd:   iEnd,
				ColStart: j,
				ColEnd:   min(j+size, n),
			})
		}
	}

	return coords, nil
}

// Covers verifies that coords tile [0,n)×[0,n) exactly once: every
// coordinate is well-formed and in bounds, no cell is covered twice and no
// cell is left uncovered.
//
// Errors: ErrInvalidSize, ErrOutOfBounds, ErrOverlap, ErrGap (each wrapped
// with the offending coordinate or cell).
// Complexity: O(n^2) time and space.
func Covers(n int, coords []Coordinate) error {
	if n < 1 {
		return chunkErrorf("Covers", ErrInvalidSize)
	}
	seen := make([]bool, n*n)
	for _, c := range coords {
		if c.RowStart < 0 || c.ColStart < 0 || c.RowEnd > n || c.ColEnd > n ||
			c.RowStart >= c.RowEnd || c.ColStart >= c.ColEnd {
			return chunkErrorf("Covers", fmt.Errorf("%v: %w", c, ErrOutOfBounds))
		}
		for i := c.RowStart; i < c.RowEnd; i++ {
			for j := c.ColStart; j < c.ColEnd; j++ {
				if seen[i*n+j] {
					return chunkErrorf("Covers", fmt.Errorf("cell (%d,%d) in %v: %w", i, j, c, ErrOverlap))
				}
				seen[i*n+j] = true
			}
		}
	}
	for idx, ok := range seen {
		if !ok {
			return chunkErrorf("Covers", fmt.Errorf("cell (%d,%d): %w", idx/n, idx%n, ErrGap))
		}
	}

	return nil
}
