// SPDX-License-Identifier: MIT

// Package commute: functional options for Run.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs
//     (programmer error). Run itself never panics on caller input.
//   - No hidden globals; everything flows through runConfig.

package commute

import (
	"io"
	"log"
	"math"
)

// Defaults.
const (
	// DefaultWorkers is used when WithWorkers is not supplied.
	DefaultWorkers = 1
)

// Option customises a Run.
type Option func(*runConfig)

type runConfig struct {
	workers int
	fault   bool
	tol     Tolerance
	logger  *log.Logger
}

func defaultRunConfig() runConfig {
	return runConfig{
		workers: DefaultWorkers,
		tol:     DefaultTolerance,
		logger:  log.New(io.Discard, "", 0),
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) runConfig {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers sets the pool size; it also drives the chunk size
// max(1, N/workers) and the slot striding in Assign.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("commute: WithWorkers(n < 1)")
	}
	return func(c *runConfig) { c.workers = n }
}

// WithFaultInjection enables the even-pair corruption of BA chunks.
func WithFaultInjection(enabled bool) Option {
	return func(c *runConfig) { c.fault = enabled }
}

// WithTolerance overrides the chunk comparison tolerances.
func WithTolerance(tol Tolerance) Option {
	if !validTolerance(tol) {
		panic("commute: WithTolerance requires finite, non-negative tolerances")
	}
	return func(c *runConfig) { c.tol = tol }
}

// WithLogger routes progress logs to l. Runs are silent by default.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("commute: WithLogger(nil)")
	}
	return func(c *runConfig) { c.logger = l }
}

func validTolerance(tol Tolerance) bool {
	for _, v := range []float64{tol.RTol, tol.ATol} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}

	return true
}
