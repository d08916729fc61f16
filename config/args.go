// SPDX-License-Identifier: MIT

package config

import (
	"strconv"
	"strings"
)

// Positional argument names, as printed in InvalidArgsError.
const (
	ArgSize      = "<matrices_size>"
	ArgScalar    = "<scalar>"
	ArgWorkers   = "<num_of_workers>"
	ArgCondition = "<condition_unmet_to_test>"
)

// ApplyArgs overrides c with the four positionals
// <matrices_size> <scalar> <num_of_workers> <condition_unmet_to_test>.
//
// No arguments leave c untouched. Any other count than four is ErrUsage.
// Every positional is parsed before reporting, so one InvalidArgsError names
// all bad inputs; c is only modified when all four parse. The condition flag
// accepts "true" or "false" in any letter case.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) != 4 {
		return ErrUsage
	}

	var (
		bad  []string
		err  error
		next = *c
	)
	if next.Size, err = strconv.Atoi(args[0]); err != nil {
		bad = append(bad, ArgSize)
	}
	if next.Scalar, err = strconv.ParseFloat(args[1], 64); err != nil {
		bad = append(bad, ArgScalar)
	}
	if next.Workers, err = strconv.Atoi(args[2]); err != nil {
		bad = append(bad, ArgWorkers)
	}
	switch strings.ToLower(args[3]) {
	case "true":
		next.FaultInjection = true
	case "false":
		next.FaultInjection = false
	default:
		bad = append(bad, ArgCondition)
	}
	if len(bad) > 0 {
		return &InvalidArgsError{Names: bad}
	}
	*c = next

	return nil
}
