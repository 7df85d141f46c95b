// Package scenario generates randomized, internally consistent poker hand
// scenarios used to fill demonstration forms.
//
// A Generator is immutable once built and holds no per-call state: every call to
// Generate builds and shuffles its own deck, consuming values only from the
// Source it is given. Feeding the same sequence of values twice produces the same
// Scenario.
package scenario

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/pokerforms/poker"
)

// Source produces uniform floats in [0, 1).
type Source = poker.Source

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger.WithPrefix("generator")
		}
	}
}

// Generator produces scenarios for one configuration.
type Generator struct {
	cfg    Config
	logger *log.Logger
}

// New validates cfg and returns a generator for it.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:    cfg,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate draws a new scenario from src.
//
// Values are consumed in a fixed order: the shuffle, the board size (random
// policy only), hero position, opponent position (redrawn while it equals the
// hero's, at most maxPositionRedraws times), hero stack, opponent stack, blind coin flips, pot (random mode only),
// the check draw, the bet, and finally the button seat when table randomization
// is enabled.
func (g *Generator) Generate(src Source) (*Scenario, error) {
	if src == nil {
		panic("scenario: Generate requires a random source")
	}
	cfg := g.cfg

	deck := poker.NewDeck()
	deck.Shuffle(src)

	hero, err := deal(deck, cfg.HoleCards, "hero")
	if err != nil {
		return nil, err
	}
	opponent, err := deal(deck, cfg.HoleCards, "opponent")
	if err != nil {
		return nil, err
	}

	boardSize := int(cfg.BoardSize)
	if cfg.BoardSize == BoardRandom {
		boardSize = poker.IntBetween(src, int(BoardFlop), int(BoardRiver))
	}
	board, err := deal(deck, boardSize, "board")
	if err != nil {
		return nil, err
	}

	heroPos := poker.Positions[poker.Intn(src, len(poker.Positions))]
	oppPos := drawOpponentPosition(src, heroPos)

	sc := &Scenario{
		HeroHand:         hero,
		OpponentHand:     opponent,
		Board:            board,
		SmallBlind:       cfg.SmallBlind,
		BigBlind:         cfg.BigBlind,
		HeroPosition:     heroPos,
		OpponentPosition: oppPos,
	}

	sc.HeroStack = poker.IntBetween(src, cfg.StackMin, cfg.StackMax)
	sc.OpponentStack = poker.IntBetween(src, cfg.StackMin, cfg.StackMax)
	sc.HeroStack -= g.postedBlind(src, heroPos)
	sc.OpponentStack -= g.postedBlind(src, oppPos)

	switch cfg.PotMode {
	case PotPreflopRaise:
		sc.PotSize = cfg.PreflopRaisePot()
	default:
		sc.PotSize = poker.IntBetween(src, cfg.PotMin, cfg.PotMax)
	}

	if src.Float64() >= cfg.BetCheckProbability {
		sc.BetSize = poker.IntBetween(src, 0, sc.PotSize)
	}

	if cfg.RandomizeTable {
		sc.ButtonSeat = poker.IntBetween(src, 1, poker.TableSeats)
	}

	g.logger.Debug("Generated scenario",
		"hero", poker.FormatCards(hero),
		"opponent", poker.FormatCards(opponent),
		"board", poker.FormatCards(board),
		"heroPosition", heroPos,
		"opponentPosition", oppPos,
		"pot", sc.PotSize,
		"bet", sc.BetSize)

	return sc, nil
}

// postedBlind returns the chips a player in pos has already posted.
func (g *Generator) postedBlind(src Source, pos poker.Position) int {
	if !pos.IsBlind() {
		return 0
	}
	switch g.cfg.BlindPosting {
	case PostBySeat:
		if pos == poker.SB {
			return g.cfg.SmallBlind
		}
		return g.cfg.BigBlind
	case PostCoinFlip:
		if src.Float64() < 0.5 {
			return g.cfg.SmallBlind
		}
		return g.cfg.BigBlind
	}
	return 0
}

func deal(deck *poker.Deck, n int, stage string) ([]poker.Card, error) {
	cards, err := deck.Deal(n)
	if err != nil {
		var short *poker.ShortDeckError
		if errors.As(err, &short) {
			return nil, &InsufficientDeckError{Stage: stage, Requested: short.Requested, Remaining: short.Remaining}
		}
		return nil, err
	}
	return cards, nil
}

// Generate is a convenience wrapper that validates cfg and draws one scenario.
func Generate(cfg Config, src Source) (*Scenario, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(src)
}

// maxPositionRedraws bounds the opponent position rejection loop. A uniform
// source needs more than a handful of redraws with negligible probability.
const maxPositionRedraws = 32

// drawOpponentPosition redraws until the position differs from hero. A source
// that keeps repeating the hero's position gets one final draw over the five
// remaining positions instead of looping forever.
func drawOpponentPosition(src Source, hero poker.Position) poker.Position {
	for range maxPositionRedraws {
		pos := poker.Positions[poker.Intn(src, len(poker.Positions))]
		if pos != hero {
			return pos
		}
	}
	others := make([]poker.Position, 0, len(poker.Positions)-1)
	for _, pos := range poker.Positions {
		if pos != hero {
			others = append(others, pos)
		}
	}
	return others[poker.Intn(src, len(others))]
}
