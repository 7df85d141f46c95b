package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/pokerforms/cmd/pokerforms/shared"
	"github.com/lox/pokerforms/internal/batch"
	"github.com/lox/pokerforms/internal/fileutil"
	"github.com/lox/pokerforms/internal/phh"
)

// BatchCmd generates scenarios in parallel and writes them as a PHH session.
type BatchCmd struct {
	Count     int    `short:"n" help:"Number of scenarios" default:"100"`
	Workers   int    `short:"w" help:"Parallel workers (0 = GOMAXPROCS)" default:"0"`
	Seed      *int64 `help:"Base seed; scenario i uses seed+i (default: $POKERFORMS_SEED, else the clock)"`
	BoardSize string `name:"board-size" help:"Board size override: 3, 4, 5 or random"`
	Out       string `short:"o" help:"Session file to write (default: stdout)" type:"path"`

	stdout io.Writer `kong:"-"`
}

func (cmd *BatchCmd) Run(g *Globals) error {
	rt, err := g.load()
	if err != nil {
		return err
	}
	gen, err := rt.generator(cmd.BoardSize)
	if err != nil {
		return err
	}
	seed := rt.resolveSeed(cmd.Seed)

	ctx, cancel := shared.SetupSignalHandlerWithLogger(rt.logger)
	defer cancel()

	res, err := batch.Run(ctx, gen, batch.Options{
		Count:   cmd.Count,
		Workers: cmd.Workers,
		Seed:    seed,
		Logger:  rt.logger,
		Clock:   rt.clock,
	})
	if err != nil {
		return err
	}

	ts := rt.clock.Now()
	hands := make([]*phh.HandHistory, len(res.Scenarios))
	for i, sc := range res.Scenarios {
		hand := phh.FromScenario(sc, phh.NewHandID(&seed, i), ts)
		hand.Metadata[phh.MetaVariant] = rt.variant.Name
		hand.Metadata["seed"] = seed + int64(i)
		hands[i] = hand
	}

	if cmd.Out == "" {
		out := cmd.stdout
		if out == nil {
			out = os.Stdout
		}
		return phh.EncodeSession(out, hands)
	}

	if err := fileutil.WriteAtomic(cmd.Out, 0o644, func(w io.Writer) error {
		return phh.EncodeSession(w, hands)
	}); err != nil {
		return fmt.Errorf("write %s: %w", cmd.Out, err)
	}
	rt.logger.Info("Session written", "file", cmd.Out, "hands", len(hands), "seed", seed)
	return nil
}
