// Package chunk splits an N×N output index range into rectangular,
// half-open chunks that can be computed independently.
//
// Chunks are emitted in row-major chunk order: the outer loop walks row
// starts in steps of the chunk size, the inner loop walks column starts. The
// last row or column of chunks is narrower when N is not a multiple of the
// size; chunks are never padded.
//
//	size = 2, N = 5
//
//	  0 1 2 3 4
//	0 [a a|b b|c]
//	1 [a a|b b|c]
//	  ----------
//	2 [d d|e e|f]
//	3 [d d|e e|f]
//	  ----------
//	4 [g g|h h|i]
//
// The union of Partition(n, size) always tiles [0,n)×[0,n) exactly once;
// Covers verifies that property for any coordinate list.
package chunk
