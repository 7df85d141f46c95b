package scenario

import (
	"errors"
	"testing"

	"github.com/lox/pokerforms/internal/randutil"
	"github.com/lox/pokerforms/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityShuffle returns 51 values that leave the canonical deck order untouched.
func identityShuffle() []float64 {
	vals := make([]float64, poker.DeckSize-1)
	for i := range vals {
		vals[i] = 0.999999
	}
	return vals
}

func scripted(t *testing.T, tail ...float64) *randutil.Sequence {
	t.Helper()
	seq, err := randutil.NewSequence(append(identityShuffle(), tail...)...)
	require.NoError(t, err)
	return seq
}

func mustGenerator(t *testing.T, cfg Config) *Generator {
	t.Helper()
	g, err := New(cfg)
	require.NoError(t, err)
	return g
}

func TestGenerateScripted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = BoardFlop
	cfg.StackMin, cfg.StackMax = 100, 499
	cfg.PotMin, cfg.PotMax = 10, 59

	src := scripted(t,
		0.5,      // hero position -> BTN
		0.55,     // opponent position -> BTN, rejected
		0.0,      // opponent position -> UTG
		0.0,      // hero stack -> 100
		0.5,      // opponent stack -> 300
		0.5,      // pot -> 35
		0.9,      // no forced check
		0.2,      // bet -> floor(0.2*36) = 7
	)

	sc, err := mustGenerator(t, cfg).Generate(src)
	require.NoError(t, err)

	assert.Equal(t, "AsKsQsJs", poker.FormatCards(sc.HeroHand))
	assert.Equal(t, "Ts9s8s7s", poker.FormatCards(sc.OpponentHand))
	assert.Equal(t, "6s5s4s", poker.FormatCards(sc.Board))
	assert.Equal(t, poker.BTN, sc.HeroPosition)
	assert.Equal(t, poker.UTG, sc.OpponentPosition)
	assert.Equal(t, 100, sc.HeroStack)
	assert.Equal(t, 300, sc.OpponentStack)
	assert.Equal(t, 35, sc.PotSize)
	assert.Equal(t, 7, sc.BetSize)
	assert.Equal(t, 1, sc.SmallBlind)
	assert.Equal(t, 2, sc.BigBlind)
	assert.Equal(t, poker.DeckSize-1+8, src.Drawn())
}

func TestGenerateInvariants(t *testing.T) {
	configs := map[string]Config{
		"default": DefaultConfig(),
		"flop preflop raise": func() Config {
			c := DefaultConfig()
			c.BoardSize = BoardFlop
			c.PotMode = PotPreflopRaise
			return c
		}(),
		"river seat posting": func() Config {
			c := DefaultConfig()
			c.BoardSize = BoardRiver
			c.BlindPosting = PostBySeat
			c.RandomizeTable = true
			return c
		}(),
		"coinflip never checks": func() Config {
			c := DefaultConfig()
			c.BlindPosting = PostCoinFlip
			c.BetCheckProbability = 0
			return c
		}(),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			g := mustGenerator(t, cfg)
			for seed := int64(0); seed < 500; seed++ {
				sc, err := g.Generate(randutil.New(seed))
				require.NoError(t, err)

				set, distinct := poker.NewCardSet(sc.HeroHand, sc.OpponentHand, sc.Board)
				require.True(t, distinct, "seed %d: duplicate cards", seed)
				require.GreaterOrEqual(t, set.Len(), 11)
				require.LessOrEqual(t, set.Len(), 13)
				require.Len(t, sc.HeroHand, 4)
				require.Len(t, sc.OpponentHand, 4)

				require.NotEqual(t, sc.HeroPosition, sc.OpponentPosition, "seed %d", seed)
				require.GreaterOrEqual(t, sc.BetSize, 0)
				require.LessOrEqual(t, sc.BetSize, sc.PotSize)

				require.GreaterOrEqual(t, sc.HeroStack, cfg.StackMin-cfg.BigBlind)
				require.LessOrEqual(t, sc.HeroStack, cfg.StackMax)
				require.GreaterOrEqual(t, sc.OpponentStack, 0)

				if cfg.BoardSize != BoardRandom {
					require.Len(t, sc.Board, int(cfg.BoardSize))
				}
				if cfg.RandomizeTable {
					require.GreaterOrEqual(t, sc.ButtonSeat, 1)
					require.LessOrEqual(t, sc.ButtonSeat, 6)
				} else {
					require.Zero(t, sc.ButtonSeat)
				}
			}
		})
	}
}

func TestGenerateRandomBoardCoversAllSizes(t *testing.T) {
	g := mustGenerator(t, DefaultConfig())
	seen := map[int]int{}
	for seed := int64(0); seed < 300; seed++ {
		sc, err := g.Generate(randutil.New(seed))
		require.NoError(t, err)
		seen[len(sc.Board)]++
	}
	assert.Len(t, seen, 3)
	for size := 3; size <= 5; size++ {
		assert.Greater(t, seen[size], 50, "board size %d", size)
	}
}

func TestGenerateReplayIsIdentical(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RandomizeTable = true
	cfg.BlindPosting = PostCoinFlip
	g := mustGenerator(t, cfg)

	rec := randutil.NewRecorder(randutil.New(99))
	first, err := g.Generate(rec)
	require.NoError(t, err)

	replay, err := rec.Replay()
	require.NoError(t, err)
	second, err := g.Generate(replay)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	a, err := g.Generate(randutil.New(1234))
	require.NoError(t, err)
	b, err := g.Generate(randutil.New(1234))
	require.NoError(t, err)
	assert.Equal(t, a.Fields(), b.Fields())
}

func TestOpponentPositionWithRepeatingSource(t *testing.T) {
	// A one-value sequence always lands on BTN, so the redraw loop can never
	// succeed on its own.
	src, err := randutil.NewSequence(0.5)
	require.NoError(t, err)

	sc, err := mustGenerator(t, DefaultConfig()).Generate(src)
	require.NoError(t, err)
	assert.Equal(t, poker.BTN, sc.HeroPosition)
	assert.Equal(t, poker.CO, sc.OpponentPosition)
	assert.NotEqual(t, sc.HeroPosition, sc.OpponentPosition)
}

func TestPreflopRaisePot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = BoardFlop
	cfg.PotMode = PotPreflopRaise

	assert.Equal(t, 6, cfg.OpenRaiseSize())
	assert.Equal(t, 15, cfg.PreflopRaisePot())

	g := mustGenerator(t, cfg)
	for seed := int64(0); seed < 50; seed++ {
		sc, err := g.Generate(randutil.New(seed))
		require.NoError(t, err)
		assert.Equal(t, 15, sc.PotSize)
		assert.Len(t, sc.Board, 3)
	}
}

func TestRiverDealsThirteenCards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = BoardRiver
	sc, err := Generate(cfg, randutil.New(5))
	require.NoError(t, err)
	assert.Equal(t, 13, sc.CardsDealt())
	assert.Equal(t, 39, poker.DeckSize-sc.CardsDealt())
}

func TestBetCheckProbabilityBoundaries(t *testing.T) {
	always := DefaultConfig()
	always.BetCheckProbability = 1.0
	never := DefaultConfig()
	never.BetCheckProbability = 0.0
	never.PotMin, never.PotMax = 50, 100

	ga := mustGenerator(t, always)
	gn := mustGenerator(t, never)
	bets := 0
	for seed := int64(0); seed < 1000; seed++ {
		sc, err := ga.Generate(randutil.New(seed))
		require.NoError(t, err)
		require.Zero(t, sc.BetSize, "seed %d", seed)

		sc, err = gn.Generate(randutil.New(seed))
		require.NoError(t, err)
		if sc.BetSize > 0 {
			bets++
		}
	}
	// Without forced checks a zero bet only happens 1 time in pot+1.
	assert.Greater(t, bets, 950)
}

func TestBetCheckForcedBySource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = BoardFlop
	cfg.PotMode = PotPreflopRaise
	cfg.BetCheckProbability = 0.66

	// positions, stacks, then a check draw below 0.66 forces a check.
	src := scripted(t, 0.0, 0.5, 0.1, 0.1, 0.65)
	sc, err := mustGenerator(t, cfg).Generate(src)
	require.NoError(t, err)
	assert.Zero(t, sc.BetSize)
	assert.True(t, sc.IsCheck())

	src = scripted(t, 0.0, 0.5, 0.1, 0.1, 0.66, 0.999)
	sc, err = mustGenerator(t, cfg).Generate(src)
	require.NoError(t, err)
	assert.Equal(t, 15, sc.BetSize)
}

func TestBlindPostingBySeat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = BoardFlop
	cfg.StackMin, cfg.StackMax = 200, 200
	cfg.BlindPosting = PostBySeat
	cfg.BetCheckProbability = 1

	// hero SB (index 4), opponent BB (index 5)
	src := scripted(t, 4.0/6+0.01, 5.0/6+0.01, 0.3, 0.3, 0.5, 0.1)
	sc, err := mustGenerator(t, cfg).Generate(src)
	require.NoError(t, err)
	assert.Equal(t, poker.SB, sc.HeroPosition)
	assert.Equal(t, poker.BB, sc.OpponentPosition)
	assert.Equal(t, 199, sc.HeroStack)
	assert.Equal(t, 198, sc.OpponentStack)
}

func TestBlindPostingCoinFlip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = BoardFlop
	cfg.StackMin, cfg.StackMax = 200, 200
	cfg.BlindPosting = PostCoinFlip
	cfg.BetCheckProbability = 1

	// hero SB flips big blind, opponent UTG posts nothing and draws no flip.
	src := scripted(t, 4.0/6+0.01, 0.0, 0.3, 0.3, 0.7, 0.5, 0.1)
	sc, err := mustGenerator(t, cfg).Generate(src)
	require.NoError(t, err)
	assert.Equal(t, poker.SB, sc.HeroPosition)
	assert.Equal(t, poker.UTG, sc.OpponentPosition)
	assert.Equal(t, 198, sc.HeroStack)
	assert.Equal(t, 200, sc.OpponentStack)
}

func TestInsufficientDeck(t *testing.T) {
	tests := []struct {
		name      string
		holeCards int
		board     BoardSize
		stage     string
	}{
		{name: "board short", holeCards: 24, board: BoardRiver, stage: "board"},
		{name: "opponent short", holeCards: 27, board: BoardFlop, stage: "opponent"},
		{name: "hero short", holeCards: 53, board: BoardFlop, stage: "hero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.HoleCards = tt.holeCards
			cfg.BoardSize = tt.board

			_, err := Generate(cfg, randutil.New(1))
			require.Error(t, err)

			var deckErr *InsufficientDeckError
			require.True(t, errors.As(err, &deckErr), "got %T", err)
			assert.Equal(t, tt.stage, deckErr.Stage)
			assert.Greater(t, deckErr.Requested, deckErr.Remaining)
		})
	}

	cfg := DefaultConfig()
	cfg.HoleCards = 24
	cfg.BoardSize = BoardTurn
	sc, err := Generate(cfg, randutil.New(1))
	require.NoError(t, err)
	assert.Equal(t, 52, sc.CardsDealt())
}

func TestFirstCardUniformity(t *testing.T) {
	const trials = 52 * 400
	g := mustGenerator(t, DefaultConfig())
	src := randutil.New(2024)

	var counts [poker.DeckSize]int
	for i := 0; i < trials; i++ {
		sc, err := g.Generate(src)
		require.NoError(t, err)
		counts[sc.HeroHand[0]]++
	}

	expected := float64(trials) / poker.DeckSize
	chi := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	// 99.9th percentile of chi-square with 51 degrees of freedom.
	assert.Less(t, chi, 87.97)
	for card, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.3, "card %s", poker.Card(card))
	}
}

func TestFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = BoardFlop
	cfg.StackMin, cfg.StackMax = 100, 499
	cfg.PotMin, cfg.PotMax = 10, 59

	src := scripted(t, 0.5, 0.0, 0.0, 0.5, 0.5, 0.9, 0.2)
	sc, err := mustGenerator(t, cfg).Generate(src)
	require.NoError(t, err)

	fields := sc.Fields()
	assert.Equal(t, map[string]string{
		FieldHeroHand:         "AsKsQsJs",
		FieldOpponentHand:     "Ts9s8s7s",
		FieldBoard:            "6s5s4s",
		FieldSmallBlind:       "1",
		FieldBigBlind:         "2",
		FieldHeroStack:        "100",
		FieldOpponentStack:    "300",
		FieldHeroPosition:     "BTN",
		FieldOpponentPosition: "UTG",
		FieldPotSize:          "35",
		FieldBetSize:          "7",
	}, fields)
	for _, name := range FieldNames {
		assert.Contains(t, fields, name)
	}

	data, err := sc.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"heroHand": "AsKsQsJs",
		"opponentHand": "Ts9s8s7s",
		"board": "6s5s4s",
		"smallBlind": 1,
		"bigBlind": 2,
		"heroStack": 100,
		"opponentStack": 300,
		"heroPosition": "BTN",
		"opponentPosition": "UTG",
		"potSize": 35,
		"betSize": 7
	}`, string(data))
}

func TestTableRandomization(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = BoardFlop
	cfg.RandomizeTable = true
	cfg.BetCheckProbability = 1

	src := scripted(t, 0.0, 0.5, 0.1, 0.1, 0.1, 0.0, 0.5)
	sc, err := mustGenerator(t, cfg).Generate(src)
	require.NoError(t, err)
	assert.Equal(t, 4, sc.ButtonSeat)
	assert.Equal(t, "4", sc.Fields()[FieldButtonSeat])

	layout, ok := sc.Layout()
	require.True(t, ok)
	assert.Equal(t, "Button on seat 4", layout.Name)
}
