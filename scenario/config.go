package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

// BoardSize selects how many community cards are dealt. Zero means Random.
type BoardSize int

const (
	// BoardRandom draws the board size uniformly from {3, 4, 5}.
	BoardRandom BoardSize = 0
	BoardFlop   BoardSize = 3
	BoardTurn   BoardSize = 4
	BoardRiver  BoardSize = 5
)

// ParseBoardSize parses "3", "4", "5" or "random".
func ParseBoardSize(s string) (BoardSize, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "random" || s == "" {
		return BoardRandom, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 3 || n > 5 {
		return 0, &ConfigurationError{Field: "boardSize", Reason: fmt.Sprintf("must be 3, 4, 5 or \"random\", got %q", s)}
	}
	return BoardSize(n), nil
}

func (b BoardSize) String() string {
	if b == BoardRandom {
		return "random"
	}
	return strconv.Itoa(int(b))
}

// PotMode selects how the pot size is derived.
type PotMode string

const (
	PotRandom       PotMode = "random"
	PotPreflopRaise PotMode = "preflopRaise"
)

// ParsePotMode parses a pot mode name. "preflop-raise" and "preflop_raise" are accepted aliases.
func ParsePotMode(s string) (PotMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return PotRandom, nil
	case "preflopraise", "preflop-raise", "preflop_raise":
		return PotPreflopRaise, nil
	}
	return "", &ConfigurationError{Field: "potMode", Reason: fmt.Sprintf("unknown pot mode %q", s)}
}

// BlindPosting selects whether stacks are reduced by posted blinds.
type BlindPosting string

const (
	// PostNone leaves stacks untouched.
	PostNone BlindPosting = "none"
	// PostBySeat deducts the small blind from the SB and the big blind from the BB.
	PostBySeat BlindPosting = "seat"
	// PostCoinFlip deducts either blind, chosen by a fair coin flip, from a player in a blind seat.
	PostCoinFlip BlindPosting = "coinflip"
)

// ParseBlindPosting parses "none", "seat" or "coinflip".
func ParseBlindPosting(s string) (BlindPosting, error) {
	switch p := BlindPosting(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PostNone, nil
	case PostNone, PostBySeat, PostCoinFlip:
		return p, nil
	}
	return "", &ConfigurationError{Field: "blindPosting", Reason: fmt.Sprintf("unknown blind posting %q", s)}
}

// Config holds the generation policy. The zero value is not valid; start from DefaultConfig.
type Config struct {
	BoardSize           BoardSize
	HoleCards           int
	SmallBlind          int
	BigBlind            int
	StackMin            int
	StackMax            int
	BlindPosting        BlindPosting
	PotMode             PotMode
	PotMin              int
	PotMax              int
	BetCheckProbability float64
	RandomizeTable      bool
}

// DefaultConfig returns the turn/river variant: random board size, stacks 200..1000,
// a random pot of 10..100 and a two-in-three chance of checking.
func DefaultConfig() Config {
	return Config{
		BoardSize:           BoardRandom,
		HoleCards:           4,
		SmallBlind:          1,
		BigBlind:            2,
		StackMin:            200,
		StackMax:            1000,
		BlindPosting:        PostNone,
		PotMode:             PotRandom,
		PotMin:              10,
		PotMax:              100,
		BetCheckProbability: 0.66,
	}
}

// OpenRaiseSize is the standard open of three big blinds.
func (c Config) OpenRaiseSize() int {
	return 3 * c.BigBlind
}

// PreflopRaisePot is the flop pot after one open raise and one call with both blinds posted.
func (c Config) PreflopRaisePot() int {
	return c.SmallBlind + c.BigBlind + 2*c.OpenRaiseSize()
}

// CardsNeeded returns the maximum number of cards a scenario can draw.
func (c Config) CardsNeeded() int {
	board := int(c.BoardSize)
	if c.BoardSize == BoardRandom {
		board = int(BoardRiver)
	}
	return 2*c.HoleCards + board
}

// Validate checks every range and enumerated option.
func (c Config) Validate() error {
	switch c.BoardSize {
	case BoardRandom, BoardFlop, BoardTurn, BoardRiver:
	default:
		return &ConfigurationError{Field: "boardSize", Reason: fmt.Sprintf("must be 3, 4, 5 or random, got %d", c.BoardSize)}
	}
	if c.HoleCards < 1 {
		return &ConfigurationError{Field: "holeCards", Reason: fmt.Sprintf("must be at least 1, got %d", c.HoleCards)}
	}
	if c.SmallBlind <= 0 {
		return &ConfigurationError{Field: "smallBlind", Reason: "must be positive"}
	}
	if c.BigBlind < c.SmallBlind {
		return &ConfigurationError{Field: "bigBlind", Reason: fmt.Sprintf("must be at least the small blind (%d)", c.SmallBlind)}
	}
	if c.StackMin < 0 {
		return &ConfigurationError{Field: "stackRange", Reason: "minimum must not be negative"}
	}
	if c.StackMin > c.StackMax {
		return &ConfigurationError{Field: "stackRange", Reason: fmt.Sprintf("min %d > max %d", c.StackMin, c.StackMax)}
	}
	switch c.BlindPosting {
	case PostNone:
	case PostBySeat, PostCoinFlip:
		if c.StackMin < c.BigBlind {
			return &ConfigurationError{Field: "stackRange", Reason: fmt.Sprintf("minimum %d cannot cover the big blind %d", c.StackMin, c.BigBlind)}
		}
	default:
		return &ConfigurationError{Field: "blindPosting", Reason: fmt.Sprintf("unknown blind posting %q", c.BlindPosting)}
	}
	switch c.PotMode {
	case PotRandom:
		if c.PotMin < 0 {
			return &ConfigurationError{Field: "potRange", Reason: "minimum must not be negative"}
		}
		if c.PotMin > c.PotMax {
			return &ConfigurationError{Field: "potRange", Reason: fmt.Sprintf("min %d > max %d", c.PotMin, c.PotMax)}
		}
	case PotPreflopRaise:
	default:
		return &ConfigurationError{Field: "potMode", Reason: fmt.Sprintf("unknown pot mode %q", c.PotMode)}
	}
	if c.BetCheckProbability < 0 || c.BetCheckProbability > 1 {
		return &ConfigurationError{Field: "betCheckProbability", Reason: fmt.Sprintf("must be within [0,1], got %v", c.BetCheckProbability)}
	}
	return nil
}
