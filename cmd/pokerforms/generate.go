package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/pokerforms/internal/phh"
	"github.com/lox/pokerforms/internal/randutil"
	"github.com/lox/pokerforms/internal/tui"
	"github.com/lox/pokerforms/scenario"
	"github.com/muesli/termenv"
)

// GenerateCmd prints a single random scenario.
type GenerateCmd struct {
	BoardSize string `name:"board-size" help:"Board size override: 3, 4, 5 or random"`
	Seed      *int64 `help:"Random seed (default: $POKERFORMS_SEED, else the clock)"`
	Format    string `help:"Output format" enum:"text,json,phh,fields" default:"text"`
	Details   bool   `help:"Include hand details (SPR, pot-sized bets, current hands) and the table layout"`
	NoColor   bool   `name:"no-color" help:"Disable colored output"`

	out io.Writer `kong:"-"`
}

func (cmd *GenerateCmd) Run(g *Globals) error {
	rt, err := g.load()
	if err != nil {
		return err
	}
	if cmd.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	gen, err := rt.generator(cmd.BoardSize)
	if err != nil {
		return err
	}
	seed := rt.resolveSeed(cmd.Seed)
	sc, err := gen.Generate(randutil.New(seed))
	if err != nil {
		return err
	}

	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	return writeScenario(out, sc, cmd.Format, cmd.Details, exportInfo{
		id:      phh.NewHandID(&seed, 0),
		ts:      rt.clock.Now(),
		variant: rt.variant.Name,
		seed:    seed,
	})
}

type exportInfo struct {
	id      string
	ts      time.Time
	variant string
	seed    int64
}

func writeScenario(w io.Writer, sc *scenario.Scenario, format string, details bool, info exportInfo) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, tui.RenderScenario(sc, details))
		return err
	case "json":
		data, err := json.MarshalIndent(sc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "phh":
		hand := phh.FromScenario(sc, info.id, info.ts)
		hand.Metadata[phh.MetaVariant] = info.variant
		hand.Metadata["seed"] = info.seed
		return phh.Encode(w, hand)
	case "fields":
		fields := sc.Fields()
		names := append(append([]string{}, scenario.FieldNames...), scenario.FieldButtonSeat)
		for _, name := range names {
			v, ok := fields[name]
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s=%s\n", name, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
