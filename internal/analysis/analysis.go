// Package analysis derives the hand-details figures shown next to a scenario:
// stack-to-pot ratio, how many pot-sized bets the effective stack covers, and
// each player's best Omaha hand on the current board.
package analysis

import (
	"fmt"

	"github.com/lox/pokerforms/poker"
	"github.com/lox/pokerforms/scenario"
	ph "github.com/paulhankin/poker"
)

// EffectiveStack is the smaller of the two stacks.
func EffectiveStack(heroStack, opponentStack int) int {
	return min(heroStack, opponentStack)
}

// SPR returns the stack-to-pot ratio after the current bet. ok is false when
// the pot plus bet is not positive.
func SPR(heroStack, opponentStack, pot, bet int) (spr float64, ok bool) {
	total := pot + bet
	if total <= 0 {
		return 0, false
	}
	return float64(EffectiveStack(heroStack, opponentStack)) / float64(total), true
}

// PotSizedBets counts how many successive pot-sized bets the effective stack
// covers. Facing a bet, the first is a pot-sized raise of pot+bet.
func PotSizedBets(heroStack, opponentStack, pot, bet int) int {
	stack := EffectiveStack(heroStack, opponentStack)
	count := 0

	if bet > 0 {
		raise := pot + bet
		if stack < raise {
			return 0
		}
		stack -= raise
		pot += 2 * raise
		count++
	}

	for stack > 0 && pot > 0 && stack >= pot {
		b := pot
		stack -= b
		pot += 2 * b
		count++
	}
	return count
}

// Hand is a player's best five-card Omaha hand.
type Hand struct {
	Hole        []poker.Card // the two hole cards used
	Board       []poker.Card // the three board cards used
	Score       int16
	Description string
}

// Cards returns the five cards making the hand.
func (h Hand) Cards() []poker.Card {
	return append(append([]poker.Card{}, h.Hole...), h.Board...)
}

// BestOmahaHand finds the best hand using exactly two hole cards and three board cards.
func BestOmahaHand(hole, board []poker.Card) (Hand, error) {
	if len(hole) < 2 {
		return Hand{}, fmt.Errorf("need at least 2 hole cards, got %d", len(hole))
	}
	if len(board) < 3 {
		return Hand{}, fmt.Errorf("need at least 3 board cards, got %d", len(board))
	}

	phHole, err := convert(hole)
	if err != nil {
		return Hand{}, err
	}
	phBoard, err := convert(board)
	if err != nil {
		return Hand{}, err
	}

	var (
		best     Hand
		bestFive [5]ph.Card
		found    bool
		five     [5]ph.Card
	)
	for i := 0; i < len(hole); i++ {
		for j := i + 1; j < len(hole); j++ {
			for a := 0; a < len(board); a++ {
				for b := a + 1; b < len(board); b++ {
					for c := b + 1; c < len(board); c++ {
						five = [5]ph.Card{phHole[i], phHole[j], phBoard[a], phBoard[b], phBoard[c]}
						// Eval5 ranks stronger hands higher.
						score := ph.Eval5(&five)
						if !found || score > best.Score {
							found = true
							bestFive = five
							best = Hand{
								Hole:  []poker.Card{hole[i], hole[j]},
								Board: []poker.Card{board[a], board[b], board[c]},
								Score: score,
							}
						}
					}
				}
			}
		}
	}

	desc, err := ph.Describe(bestFive[:])
	if err != nil {
		return Hand{}, fmt.Errorf("describe hand: %w", err)
	}
	best.Description = desc
	return best, nil
}

// convert maps cards onto the evaluator's representation, where aces are rank 1.
func convert(cards []poker.Card) ([]ph.Card, error) {
	out := make([]ph.Card, len(cards))
	for i, c := range cards {
		var s ph.Suit
		switch c.Suit() {
		case poker.Clubs:
			s = ph.Club
		case poker.Diamonds:
			s = ph.Diamond
		case poker.Hearts:
			s = ph.Heart
		default:
			s = ph.Spade
		}
		r := ph.Rank(int(c.Rank()) + 2)
		if c.Rank() == poker.Ace {
			r = ph.Rank(1)
		}
		pc, err := ph.MakeCard(s, r)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", c, err)
		}
		out[i] = pc
	}
	return out, nil
}

// Details is the hand-details summary for one scenario.
type Details struct {
	EffectiveStack int
	SPR            float64
	HasSPR         bool
	PotSizedBets   int
	Hero           *Hand
	Opponent       *Hand
}

// Analyze computes the hand details for a scenario.
func Analyze(sc *scenario.Scenario) (Details, error) {
	d := Details{
		EffectiveStack: EffectiveStack(sc.HeroStack, sc.OpponentStack),
		PotSizedBets:   PotSizedBets(sc.HeroStack, sc.OpponentStack, sc.PotSize, sc.BetSize),
	}
	d.SPR, d.HasSPR = SPR(sc.HeroStack, sc.OpponentStack, sc.PotSize, sc.BetSize)

	if _, distinct := poker.NewCardSet(sc.HeroHand, sc.OpponentHand, sc.Board); !distinct {
		return Details{}, fmt.Errorf("duplicate cards in hole cards or board")
	}

	if len(sc.Board) >= 3 {
		hero, err := BestOmahaHand(sc.HeroHand, sc.Board)
		if err != nil {
			return Details{}, fmt.Errorf("hero: %w", err)
		}
		opp, err := BestOmahaHand(sc.OpponentHand, sc.Board)
		if err != nil {
			return Details{}, fmt.Errorf("opponent: %w", err)
		}
		d.Hero, d.Opponent = &hero, &opp
	}
	return d, nil
}

// HeroAhead reports whether the hero's current hand beats the opponent's.
// ok is false when either hand is unknown.
func (d Details) HeroAhead() (ahead bool, ok bool) {
	if d.Hero == nil || d.Opponent == nil {
		return false, false
	}
	return d.Hero.Score > d.Opponent.Score, true
}
