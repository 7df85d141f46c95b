// Package batch generates many scenarios in parallel with reproducible output.
package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pokerforms/internal/randutil"
	"github.com/lox/pokerforms/scenario"
	"golang.org/x/sync/errgroup"
)

// Options controls a batch run.
type Options struct {
	Count   int
	Workers int   // defaults to GOMAXPROCS
	Seed    int64 // job i draws from a source seeded Seed+i

	Logger *log.Logger
	Clock  quartz.Clock
}

// Result is the output of a batch run, in job order.
type Result struct {
	Scenarios []*scenario.Scenario
	Seed      int64
	Elapsed   time.Duration
}

// Run generates opts.Count scenarios. Every job owns an independently seeded
// source, so the output only depends on the seed and not on scheduling.
// The first error cancels the remaining jobs.
func Run(ctx context.Context, gen *scenario.Generator, opts Options) (*Result, error) {
	if opts.Count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", opts.Count)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	logger = logger.WithPrefix("batch")
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	start := clock.Now()
	out := make([]*scenario.Scenario, opts.Count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Count; i++ {
		if gctx.Err() != nil {
			break
		}
		jobSeed := opts.Seed + int64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sc, err := gen.Generate(randutil.New(jobSeed))
			if err != nil {
				return fmt.Errorf("scenario %d (seed %d): %w", i, jobSeed, err)
			}
			out[i] = sc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Batch failed", "error", err)
		return nil, err
	}
	// Wait cancels gctx on return, so only the caller's context says
	// whether the loop stopped early.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Scenarios: out, Seed: opts.Seed, Elapsed: clock.Since(start)}
	logger.Info("Batch complete",
		"scenarios", opts.Count,
		"workers", workers,
		"seed", opts.Seed,
		"elapsed", res.Elapsed)
	return res, nil
}
