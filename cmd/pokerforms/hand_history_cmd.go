package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lox/pokerforms/internal/phh"
	"github.com/lox/pokerforms/internal/tui"
)

// HandHistoryCmd is the root command for PHH utilities.
type HandHistoryCmd struct {
	Render HandHistoryRenderCmd `cmd:"render" help:"Render an exported PHH session"`
}

// HandHistoryRenderCmd prints each exported scenario.
type HandHistoryRenderCmd struct {
	File    string `arg:"" name:"file" help:"Path to a session file written by batch"`
	Limit   int    `help:"Maximum number of hands to render (0 = all)"`
	Details bool   `help:"Include hand details for each scenario"`

	out io.Writer `kong:"-"`
}

func (cmd *HandHistoryRenderCmd) Run() error {
	if cmd.File == "" {
		return errors.New("hand-history render requires a file path")
	}

	hands, err := loadPHHFile(cmd.File)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return fmt.Errorf("no hands found in %s", cmd.File)
	}

	limit := cmd.Limit
	if limit <= 0 || limit > len(hands) {
		limit = len(hands)
	}

	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	for i := 0; i < limit; i++ {
		sc, err := phh.ToScenario(hands[i])
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		fmt.Fprintln(out, tui.HeaderStyle.Render(fmt.Sprintf("Hand %d  %s", i+1, hands[i].HandID)))
		fmt.Fprintln(out, tui.RenderScenario(sc, cmd.Details))
		fmt.Fprintln(out)
	}
	return nil
}

// loadPHHFile decodes a PHH session file into structured hands.
func loadPHHFile(path string) ([]*phh.HandHistory, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return phh.DecodeSession(bufio.NewReader(f))
}
