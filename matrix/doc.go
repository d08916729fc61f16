// Package matrix provides the dense linear-algebra primitives the
// commutativity checker is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - MulBlock, which computes one rectangular window of a product using the
//     full inner dimension, so independently computed blocks tile the full
//     product exactly.
//   - AllClose, the tolerance relation |a-b| <= atol + rtol*|b|.
//   - Scale and uniform random fill for building test batches.
//
// All kernels validate through validators.go and report failures with the
// sentinels in errors.go; nothing here panics on caller input.
package matrix
