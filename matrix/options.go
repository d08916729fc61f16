// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Notes:
//   - DefaultRTol/DefaultATol are the approximate-equality tolerances used by
//     every commutativity comparison: |a-b| <= atol + rtol*|b|.
//   - validateNaNInf is a per-instance flag on Dense; it starts from
//     DefaultValidateNaNInf and is preserved by Clone.
package matrix

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on construction from raw data.
	DefaultValidateNaNInf = true

	// DefaultRTol is the relative tolerance term, scaled by |b|.
	DefaultRTol = 1e-5

	// DefaultATol is the absolute tolerance term.
	DefaultATol = 1e-8
)

// Option configures a Dense at construction time.
type Option func(*Options)

// Options holds the per-instance policy applied by the Dense constructors.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithValidateNaNInf enables strict finite-value validation.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets ±Inf/NaN pass through construction and Set.
//
// Notes:
//   - This flag propagates only on creation; existing matrices are unaffected.
//   - Meant for holding results of overflowing products, which AllClose
//     still compares (equal infinities are close, NaN never is).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}
