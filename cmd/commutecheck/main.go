// SPDX-License-Identifier: MIT

// Command commutecheck verifies A·B = B·A for a batch of ten random N×N
// matrices A and B = c·A, first with an unchunked reference check and then
// with the chunked parallel pipeline.
//
// Usage:
//
//	commutecheck [-config file.toml] [-env .env] [-seed n] [-v] \
//	    [<matrices_size> <scalar> <num_of_workers> <condition_unmet_to_test>]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/commute/commute"
	"github.com/katalvlaran/commute/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("commutecheck: ")

	configPath := flag.String("config", "", "TOML config file")
	envFile := flag.String("env", ".env", "dotenv file with COMMUTE_* defaults")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	verbose := flag.Bool("v", false, "log pipeline progress")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *envFile, flag.Args())
	if err != nil {
		var ia *config.InvalidArgsError
		if errors.As(err, &ia) {
			s := ""
			if len(ia.Names) > 1 {
				s = "s"
			}
			fmt.Fprintln(os.Stderr, ia.Error())
			fmt.Fprintf(os.Stderr, "Try to fix the above non valid input%s and relaunch\n", s)
			os.Exit(1)
		}
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *verbose {
		cfg.Verbose = true
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	pairs, err := commute.NewBatch(cfg.Size, cfg.Scalar, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		log.Fatal(err)
	}

	if err := commute.Baseline(pairs, commute.DefaultTolerance); err != nil {
		log.Fatalf("reference check: %v", err)
	}
	if err := commute.ReportBaseline(os.Stdout); err != nil {
		log.Fatal(err)
	}

	opts := []commute.Option{
		commute.WithWorkers(cfg.Workers),
		commute.WithFaultInjection(cfg.FaultInjection),
	}
	if cfg.Verbose {
		opts = append(opts, commute.WithLogger(log.New(os.Stderr, "commute ", log.LstdFlags|log.Lmicroseconds)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := commute.Run(ctx, pairs, opts...)
	if err != nil {
		log.Fatalf("chunked check: %v", err)
	}
	if err := commute.Report(os.Stdout, res); err != nil {
		log.Fatal(err)
	}
}

// loadConfig layers defaults, the TOML file, the environment and the
// positional arguments, then validates the result.
func loadConfig(path, envFile string, args []string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	env, err := config.Environ(envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return nil, err
	}
	if err := cfg.ApplyArgs(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
