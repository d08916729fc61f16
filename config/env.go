// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names read by ApplyEnv.
const (
	EnvSize           = "COMMUTE_SIZE"
	EnvScalar         = "COMMUTE_SCALAR"
	EnvWorkers        = "COMMUTE_WORKERS"
	EnvFaultInjection = "COMMUTE_FAULT_INJECTION"
	EnvSeed           = "COMMUTE_SEED"
	EnvVerbose        = "COMMUTE_VERBOSE"
)

// Environ returns the variables found in the given dotenv files (".env" when
// none are named) overlaid by the process environment. Missing files are
// skipped; malformed ones are an error.
func Environ(files ...string) (map[string]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	env := make(map[string]string)
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read env file '%s': %w", f, err)
		}
		for k, v := range vals {
			env[k] = v
		}
	}
	for _, k := range []string{EnvSize, EnvScalar, EnvWorkers, EnvFaultInjection, EnvSeed, EnvVerbose} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}

	return env, nil
}

// ApplyEnv overrides c with every COMMUTE_* key present in env.
// The first unparsable value aborts with ErrInvalidEnv; c may then be
// partially updated.
func (c *Config) ApplyEnv(env map[string]string) error {
	var err error
	if v, ok := env[EnvSize]; ok {
		if c.Size, err = strconv.Atoi(v); err != nil {
			return envError(EnvSize, v)
		}
	}
	if v, ok := env[EnvScalar]; ok {
		if c.Scalar, err = strconv.ParseFloat(v, 64); err != nil {
			return envError(EnvScalar, v)
		}
	}
	if v, ok := env[EnvWorkers]; ok {
		if c.Workers, err = strconv.Atoi(v); err != nil {
			return envError(EnvWorkers, v)
		}
	}
	if v, ok := env[EnvFaultInjection]; ok {
		if c.FaultInjection, err = strconv.ParseBool(v); err != nil {
			return envError(EnvFaultInjection, v)
		}
	}
	if v, ok := env[EnvSeed]; ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return envError(EnvSeed, v)
		}
	}
	if v, ok := env[EnvVerbose]; ok {
		if c.Verbose, err = strconv.ParseBool(v); err != nil {
			return envError(EnvVerbose, v)
		}
	}

	return nil
}

func envError(key, val string) error {
	return fmt.Errorf("%s=%q: %w", key, val, ErrInvalidEnv)
}
