package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lox/pokerforms/cmd/pokerforms/shared"
	"github.com/lox/pokerforms/internal/batch"
	"github.com/lox/pokerforms/internal/statistics"
	"github.com/lox/pokerforms/internal/tui"
	"github.com/lox/pokerforms/poker"
)

// StatsCmd runs many generations and reports how the draws are distributed.
type StatsCmd struct {
	Trials    int    `short:"n" help:"Number of scenarios to generate" default:"20800"`
	Workers   int    `short:"w" help:"Parallel workers (0 = GOMAXPROCS)" default:"0"`
	Seed      *int64 `help:"Base seed (default: $POKERFORMS_SEED, else the clock)"`
	BoardSize string `name:"board-size" help:"Board size override: 3, 4, 5 or random"`

	out io.Writer `kong:"-"`
}

func (cmd *StatsCmd) Run(g *Globals) error {
	rt, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", cmd.Trials)
	}
	gen, err := rt.generator(cmd.BoardSize)
	if err != nil {
		return err
	}
	seed := rt.resolveSeed(cmd.Seed)

	ctx, cancel := shared.SetupSignalHandlerWithLogger(rt.logger)
	defer cancel()

	res, err := batch.Run(ctx, gen, batch.Options{
		Count:   cmd.Trials,
		Workers: cmd.Workers,
		Seed:    seed,
		Logger:  rt.logger,
		Clock:   rt.clock,
	})
	if err != nil {
		return err
	}

	c := statistics.NewCollector()
	c.AddAll(res.Scenarios)
	if err := c.Validate(); err != nil {
		return err
	}

	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, renderReport(c, rt.variant.Name, seed))

	if !c.Uniform() {
		return fmt.Errorf("first-card distribution is not uniform: chi-square %.2f exceeds %.2f",
			c.ChiSquareFirstCard(), statistics.ChiSquareCritical51)
	}
	return nil
}

func renderReport(c *statistics.Collector, variant string, seed int64) string {
	var b strings.Builder
	b.WriteString(tui.HeaderStyle.Render(fmt.Sprintf("%d scenarios, variant %s, seed %d", c.Scenarios, variant, seed)))
	b.WriteString("\n")

	chi := c.ChiSquareFirstCard()
	verdict := tui.SuccessStyle.Render("uniform")
	if !c.Uniform() {
		verdict = tui.ErrorStyle.Render("NOT uniform")
	}
	dev, card := c.MaxFirstCardDeviation()
	fmt.Fprintf(&b, "%s %.2f (critical %.2f, 51 df) %s\n", tui.LabelStyle.Render("First card χ²"), chi, statistics.ChiSquareCritical51, verdict)
	fmt.Fprintf(&b, "%s %.1f%% (%s)\n", tui.LabelStyle.Render("Max deviation"), dev*100, card)

	b.WriteString(tui.LabelStyle.Render("Hero positions"))
	for _, pos := range poker.Positions {
		fmt.Fprintf(&b, " %s=%d", pos, c.HeroPositions[pos])
	}
	b.WriteString("\n")

	b.WriteString(tui.LabelStyle.Render("Board sizes"))
	sizes := make([]int, 0, len(c.BoardSizes))
	for size := range c.BoardSizes {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	for _, size := range sizes {
		fmt.Fprintf(&b, " %d=%d", size, c.BoardSizes[size])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %.1f%%\n", tui.LabelStyle.Render("Checks"), c.CheckRate()*100)
	fmt.Fprintf(&b, "%s mean %.1f, sd %.1f, range %d..%d\n", tui.LabelStyle.Render("Pot"),
		c.Pots.Mean(), c.Pots.StdDev(), c.Pots.Min, c.Pots.Max)
	fmt.Fprintf(&b, "%s mean %.1f, sd %.1f\n", tui.LabelStyle.Render("Bet (when bet)"),
		c.Bets.Mean(), c.Bets.StdDev())
	fmt.Fprintf(&b, "%s mean %.1f, median %.0f, range %d..%d", tui.LabelStyle.Render("Hero stack"),
		c.HeroStacks.Mean(), c.HeroStacks.Median(), c.HeroStacks.Min, c.HeroStacks.Max)
	return b.String()
}
