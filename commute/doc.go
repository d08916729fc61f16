// Package commute checks, for a batch of matrix pairs, whether A·B = B·A
// holds, by computing both products chunk by chunk on a fixed worker pool.
//
// Pipeline:
//
//	pairs + chunk.Partition ──► Assign ──► []WorkItem
//	                                          │  workerpool.Pool (parallel, independent)
//	                                          ▼
//	                                   Process ──► []Verdict ──► Aggregate ──► Result
//
// Every WorkItem computes one chunk of A·B and the same chunk of B·A over the
// full inner dimension and compares them with matrix.AllClose. Verdicts are
// tagged with their pair index, so aggregation does not depend on execution
// order: a pair fails if any of its chunks mismatched.
//
// Fault injection (WithFaultInjection) zeroes the chunk-local element [0][0]
// of every B·A chunk that belongs to an even pair index, which proves that the
// pipeline reports real inequality. Baseline is the unchunked reference check
// run before the pipeline; it never injects faults.
//
// Non-commutativity found by the pipeline is data (Result.Failing), not an
// error. Errors returned by this package are precondition violations and are
// meant to abort the run.
package commute
