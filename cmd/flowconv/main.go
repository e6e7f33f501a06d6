// Command flowconv rewrites judge test-case directories into canonical
// max-flow and min-cost-flow files.
//
//	flowconv -root ./testcases -problem all -verify
//
// Directory names, worker count and logging come from an optional config
// file, FLOWCONV_* environment variables and these flags, in rising order
// of precedence.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/flowcase/config"
	"github.com/katalvlaran/flowcase/convert"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, converts every selected directory and returns the exit
// status: 0 when every pair converted (and verified), 1 otherwise, 2 on
// bad usage.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("flowconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "config file (yaml, json or toml)")
		root       = fs.String("root", "", "directory holding one sub-directory per judge")
		problem    = fs.String("problem", "", "maxflow, mincostflow or all")
		format     = fs.String("format", "", "convert only this judge (e.g. aoj_grl_6_a); overrides -problem")
		verify     = fs.Bool("verify", false, "cross-check written files against recomputed answers")
		solver     = fs.String("solver", "", "max-flow solver for -verify: dinic or edmonds-karp")
		bundle     = fs.String("bundle", "", "also join each directory's outputs into this file name")
		workers    = fs.Int("workers", 0, "pairs converted concurrently per directory")
		logLevel   = fs.String("log-level", "", "zerolog level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.New()
	if *configPath != "" {
		if err := cfg.LoadFromFile(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	// only flags given explicitly override file and environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			cfg.Set("root", *root)
		case "problem":
			cfg.Set("problem", *problem)
		case "format":
			cfg.Set("format", *format)
		case "verify":
			cfg.Set("verify", *verify)
		case "solver":
			cfg.Set("solver", *solver)
		case "bundle":
			cfg.Set("bundle", *bundle)
		case "workers":
			cfg.Set("workers", *workers)
		case "log-level":
			cfg.Set("logging.level", *logLevel)
		}
	})

	log := cfg.CreateLogger(stderr)
	jobs, err := cfg.Jobs()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 2
	}

	solve, err := cfg.Solver()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 2
	}

	conv := convert.New(
		convert.WithLogger(log),
		convert.WithWorkers(cfg.Workers()),
		convert.WithSolver(solve),
	)
	total := &convert.Report{}
	for _, job := range jobs {
		report, err := conv.ConvertDir(ctx, job.Format, job.Dir)
		if err != nil {
			log.Error().Err(err).Str("format", job.Format.String()).Str("dir", job.Dir).Msg("directory skipped")
			if ctx.Err() != nil {
				return 1
			}
			total.Failed = append(total.Failed, convert.Failure{Path: job.Dir, Err: err})
			continue
		}
		total.Merge(report)

		if name := cfg.Bundle(); name != "" {
			out := strings.TrimRight(job.Dir, "/") + "/" + name
			if err := conv.Bundle(ctx, report.Converted, out); err != nil {
				log.Error().Err(err).Str("path", out).Msg("bundle failed")
				total.Failed = append(total.Failed, convert.Failure{Path: out, Err: err})
			}
		}

		if !cfg.Verify() {
			continue
		}
		checked, err := conv.VerifyDir(ctx, job.Format.Problem(), job.Dir)
		if err != nil {
			log.Error().Err(err).Str("dir", job.Dir).Msg("verification skipped")
			total.Failed = append(total.Failed, convert.Failure{Path: job.Dir, Err: err})
			continue
		}
		total.Failed = append(total.Failed, checked.Failed...)
	}

	log.Info().
		Int("converted", len(total.Converted)).
		Int("failed", len(total.Failed)).
		Msg("done")
	if len(total.Failed) > 0 {
		return 1
	}

	return 0
}
