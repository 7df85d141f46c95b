package tui

import (
	"fmt"
	"strings"

	"github.com/lox/pokerforms/internal/analysis"
	"github.com/lox/pokerforms/poker"
	"github.com/lox/pokerforms/scenario"
)

// RenderScenario renders a scenario as styled text. With details, the
// hand-details figures and the table layout follow.
func RenderScenario(sc *scenario.Scenario, details bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s  %s\n", LabelStyle.Render("Hero"), sc.HeroPosition, FormatCards(sc.HeroHand))
	fmt.Fprintf(&b, "%s %s  %s\n", LabelStyle.Render("Opponent"), sc.OpponentPosition, FormatCards(sc.OpponentHand))
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Board"), FormatCards(sc.Board))
	fmt.Fprintf(&b, "%s %d/%d\n", LabelStyle.Render("Blinds"), sc.SmallBlind, sc.BigBlind)
	fmt.Fprintf(&b, "%s %d / %d\n", LabelStyle.Render("Stacks"), sc.HeroStack, sc.OpponentStack)
	fmt.Fprintf(&b, "%s %s", LabelStyle.Render("Pot"), WarningStyle.Render(fmt.Sprintf("$%d", sc.PotSize)))
	if sc.IsCheck() {
		b.WriteString("  " + InfoStyle.Render("opponent checks"))
	} else {
		b.WriteString("  " + WarningStyle.Render(fmt.Sprintf("opponent bets $%d", sc.BetSize)))
	}

	if !details {
		return b.String()
	}

	b.WriteString("\n\n")
	b.WriteString(RenderDetails(sc))

	if l, ok := sc.Layout(); ok {
		b.WriteString("\n\n")
		b.WriteString(RenderLayout(l))
	}
	return b.String()
}

// RenderDetails renders the hand-details figures, or the error computing them.
func RenderDetails(sc *scenario.Scenario) string {
	d, err := analysis.Analyze(sc)
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", LabelStyle.Render("Effective stack"), d.EffectiveStack)
	if d.HasSPR {
		fmt.Fprintf(&b, "%s %.2f\n", LabelStyle.Render("SPR"), d.SPR)
	} else {
		fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("SPR"), InfoStyle.Render("n/a"))
	}
	fmt.Fprintf(&b, "%s %d", LabelStyle.Render("Pot-sized bets"), d.PotSizedBets)

	if d.Hero != nil && d.Opponent != nil {
		fmt.Fprintf(&b, "\n%s %s (%s)", LabelStyle.Render("Hero has"), d.Hero.Description, FormatCards(d.Hero.Cards()))
		fmt.Fprintf(&b, "\n%s %s (%s)", LabelStyle.Render("Opponent has"), d.Opponent.Description, FormatCards(d.Opponent.Cards()))
		if ahead, ok := d.HeroAhead(); ok {
			if ahead {
				b.WriteString("\n" + SuccessStyle.Render("Hero is ahead"))
			} else {
				b.WriteString("\n" + ErrorStyle.Render("Hero is behind or tied"))
			}
		}
	}
	return b.String()
}

// RenderLayout renders the seat assignment for a table layout.
func RenderLayout(l poker.Layout) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(l.Name))
	fmt.Fprintf(&b, "\n%s %s", LabelStyle.Render("Image"), l.Image)
	for seat := 1; seat <= poker.TableSeats; seat++ {
		role, _ := l.Role(seat)
		marker := ""
		if seat == l.PhysicalSeat {
			marker = " " + WarningStyle.Render("(D)")
		}
		fmt.Fprintf(&b, "\n%s %s%s", LabelStyle.Render(fmt.Sprintf("Seat %d", seat)), role, marker)
	}
	return b.String()
}
