package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/pokerforms/internal/tui"
	"github.com/lox/pokerforms/poker"
)

// LayoutCmd prints which position sits in each physical seat.
type LayoutCmd struct {
	Button int `short:"b" help:"Button seat selector (1-6)" required:""`

	out io.Writer `kong:"-"`
}

func (cmd *LayoutCmd) Run() error {
	l, err := poker.LayoutFor(cmd.Button)
	if err != nil {
		return err
	}
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintln(out, tui.RenderLayout(l))
	return err
}
