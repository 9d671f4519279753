// Command lvcheck evaluates geometry scenarios from a YAML file against the
// lvmath kernels and prints a JSON report.
//
//	lvcheck -scenarios file.yaml [-workers N] [-tolerance eps] [-log-level info]
//
// Exit status is 0 when every scenario passes, 1 when any expectation fails
// and 2 for usage errors or an invalid file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvmath/internal/logging"
	"github.com/katalvlaran/lvmath/internal/scenario"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type config struct {
	scenarios    string
	workers      int
	tolerance    float64
	toleranceSet bool
	logLevel     logging.Level
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg      config
		logLevel string
	)
	fs := flag.NewFlagSet("lvcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.scenarios, "scenarios", "", "path to the scenario YAML file (required)")
	fs.IntVar(&cfg.workers, "workers", scenario.DefaultWorkers, "maximum number of scenarios evaluated at once")
	fs.Float64Var(&cfg.tolerance, "tolerance", scenario.DefaultTolerance, "override the tolerance of the file")
	fs.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "tolerance" {
			cfg.toleranceSet = true
		}
	})

	if cfg.scenarios == "" {
		return cfg, errors.New("-scenarios is required")
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	if cfg.workers < 1 {
		return cfg, fmt.Errorf("-workers must be at least 1, got %d", cfg.workers)
	}
	if cfg.toleranceSet && (math.IsNaN(cfg.tolerance) || math.IsInf(cfg.tolerance, 0) || cfg.tolerance < 0) {
		return cfg, fmt.Errorf("-tolerance must be finite and non-negative, got %g", cfg.tolerance)
	}

	lvl, err := logging.ParseLevel(logLevel)
	if err != nil {
		return cfg, err
	}
	cfg.logLevel = lvl
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "lvcheck: %v\n", err)
		}
		return exitInvalid
	}

	log := logging.NewWriter(cfg.logLevel, stderr)
	defer func() { _ = log.Sync() }()

	f, err := scenario.LoadFile(cfg.scenarios)
	if err != nil {
		log.Error("load scenarios", logging.String("path", cfg.scenarios), logging.Error(err))
		return exitInvalid
	}

	opts := []scenario.Option{
		scenario.WithWorkers(cfg.workers),
		scenario.WithLogger(log),
	}
	if cfg.toleranceSet {
		opts = append(opts, scenario.WithTolerance(cfg.tolerance))
	}

	report, err := scenario.Run(ctx, f, opts...)
	if err != nil {
		log.Error("run scenarios", logging.Error(err))
		return exitInvalid
	}
	if err := report.WriteJSON(stdout); err != nil {
		log.Error("write report", logging.Error(err))
		return exitInvalid
	}

	if !report.OK() {
		return exitFailed
	}
	return exitOK
}
