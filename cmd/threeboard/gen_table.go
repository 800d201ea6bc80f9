package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/threeboard/internal/fileutil"
	"github.com/lox/threeboard/internal/randutil"
	"github.com/lox/threeboard/internal/strength"
)

type GenTableCmd struct {
	Out      string `short:"o" default:"hole_strengths.csv" help:"Output CSV path"`
	Samples  int    `short:"n" default:"20000" help:"Monte Carlo runouts per hole"`
	Seed     int64  `help:"Random seed (0 picks one from the clock)"`
	Workers  int    `short:"w" help:"Parallel workers (defaults to NumCPU, at most 8)"`
	LogLevel string `short:"l" default:"info" help:"Log level (debug|info|warn|error)"`
}

func (c *GenTableCmd) Run() error {
	logger := stderrLogger(c.LogLevel).WithPrefix("gen-table")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := randutil.Resolve(c.Seed)
	logger.Info("Generating strength table", "samples", c.Samples, "seed", seed, "workers", c.Workers)

	start := time.Now()
	table, err := strength.Generate(ctx, strength.GenerateOptions{
		Samples: c.Samples,
		Seed:    seed,
		Workers: c.Workers,
		Progress: func(done, total int) {
			if done%25 == 0 || done == total {
				logger.Debug("Progress", "done", done, "total", total)
			}
		},
	})
	if err != nil {
		return err
	}

	if err := fileutil.WriteAtomic(c.Out, 0o644, table.Write); err != nil {
		return err
	}

	ranked := table.Ranked()
	best, _ := table.Get(ranked[0])
	worst, _ := table.Get(ranked[len(ranked)-1])
	logger.Info("Wrote strength table",
		"path", c.Out,
		"entries", table.Len(),
		"best", ranked[0], "best_p", best,
		"worst", ranked[len(ranked)-1], "worst_p", worst,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
