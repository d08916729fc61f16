// SPDX-License-Identifier: MIT

// Package config gathers the run parameters of the commutativity checker.
//
// Sources are layered, later ones winning:
//
//	defaults < TOML file < environment (.env merged under the process env) < positional args
//
// The four positionals keep the historical command-line contract:
//
//	<matrices_size> <scalar> <num_of_workers> <condition_unmet_to_test>
//
// Invalid positionals are reported together in a single InvalidArgsError.
package config
