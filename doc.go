// Package commute is a small toolkit for checking that matrix products
// commute, A·B = B·A, with the product split into chunks and spread over a
// pool of workers.
//
// 🚀 What is in the box?
//
//	• matrix/     row-major Dense, block products over an output window, AllClose
//	• chunk/      square-ish partition of an N×N product into half-open chunks
//	• workerpool/ persistent goroutine pool with a join barrier per Run
//	• commute/    batch generation, work assignment, chunk workers,
//	              aggregation, the gonum reference check and reporting
//	• config/     TOML file, .env / COMMUTE_* environment and positional args
//
// The binary lives in cmd/commutecheck:
//
//	commutecheck 64 2.0 4 true
//
// prints the reference verdict and then the chunked one. With the last
// argument true, every chunk of every even-indexed pair is deliberately
// corrupted, so the chunked run must report indices [0, 2, 4, 6, 8].
//
// ✨ Guarantees
//
//   - Deterministic verdicts: the outcome never depends on worker count or
//     scheduling order.
//   - Chunks never overlap and always cover the full product.
//   - Errors are sentinels wrapped with context; use errors.Is.
package commute
