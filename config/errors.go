// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"strings"
)

var (
	// ErrUsage indicates a wrong number of positional arguments.
	ErrUsage = errors.New("config: usage: <matrices_size> <scalar> <num_of_workers> <condition_unmet_to_test>")

	// ErrInvalidArgs is matched by every InvalidArgsError.
	ErrInvalidArgs = errors.New("config: invalid arguments")

	// ErrInvalidEnv indicates an unparsable COMMUTE_* variable.
	ErrInvalidEnv = errors.New("config: invalid environment value")

	// ErrInvalidConfig indicates a value outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// InvalidArgsError lists every positional that failed to parse, in
// argument order.
type InvalidArgsError struct {
	Names []string
}

func (e *InvalidArgsError) Error() string {
	if len(e.Names) > 1 {
		return strings.Join(e.Names, ", ") + " arguments are not valid inputs"
	}

	return strings.Join(e.Names, ", ") + " argument is not a valid input"
}

// Is reports ErrInvalidArgs so callers need not type-assert.
func (e *InvalidArgsError) Is(target error) bool { return target == ErrInvalidArgs }
