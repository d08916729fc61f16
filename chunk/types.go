// SPDX-License-Identifier: MIT

package chunk

import "fmt"

// Coordinate is one rectangular chunk of the output index space.
// Both intervals are half-open: rows [RowStart, RowEnd), cols [ColStart, ColEnd).
type Coordinate struct {
	RowStart int
	RowEnd   int
	ColStart int
	ColEnd   int
}

// Rows returns the chunk height.
func (c Coordinate) Rows() int { return c.RowEnd - c.RowStart }

// Cols returns the chunk width.
func (c Coordinate) Cols() int { return c.ColEnd - c.ColStart }

// Contains reports whether the global cell (i, j) lies inside the chunk.
func (c Coordinate) Contains(i, j int) bool {
	return i >= c.RowStart && i < c.RowEnd && j >= c.ColStart && j < c.ColEnd
}

// String renders the chunk as "[r0:r1, c0:c1]".
func (c Coordinate) String() string {
	return fmt.Sprintf("[%d:%d, %d:%d]", c.RowStart, c.RowEnd, c.ColStart, c.ColEnd)
}
