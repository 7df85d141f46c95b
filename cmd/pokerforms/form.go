package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/pokerforms/cmd/pokerforms/shared"
	"github.com/lox/pokerforms/internal/randutil"
	"github.com/lox/pokerforms/internal/tui"
)

// FormCmd runs the interactive form.
type FormCmd struct {
	Seed      *int64 `help:"Random seed (default: $POKERFORMS_SEED, else the clock)"`
	BoardSize string `name:"board-size" help:"Board size override: 3, 4, 5 or random"`
	LogFile   string `name:"log-file" help:"Write logs to this file while the form is open" type:"path"`
}

func (cmd *FormCmd) Run(g *Globals) error {
	rt, err := g.load()
	if err != nil {
		return err
	}

	// The terminal belongs to the form, so logs go to a file or nowhere.
	var logger *log.Logger
	if cmd.LogFile != "" {
		f, err := os.OpenFile(cmd.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		if logger, err = shared.NewLogger(f, rt.cfg.LogLevel); err != nil {
			return err
		}
	} else {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	rt.logger = logger

	gen, err := rt.generator(cmd.BoardSize)
	if err != nil {
		return err
	}
	seed := rt.resolveSeed(cmd.Seed)
	logger.Info("Starting form", "variant", rt.variant.Name, "seed", seed)

	model := tui.NewFormModel(gen, randutil.New(seed), logger)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
