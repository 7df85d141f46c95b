package analysis

import (
	"testing"

	"github.com/lox/pokerforms/internal/randutil"
	"github.com/lox/pokerforms/poker"
	"github.com/lox/pokerforms/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(t *testing.T, s string) []poker.Card {
	t.Helper()
	c, err := poker.ParseCards(s)
	require.NoError(t, err)
	return c
}

func TestSPR(t *testing.T) {
	tests := []struct {
		name                  string
		hero, opp, pot, bet   int
		want                  float64
		ok                    bool
	}{
		{name: "no bet", hero: 300, opp: 150, pot: 15, want: 10, ok: true},
		{name: "facing bet", hero: 100, opp: 400, pot: 15, bet: 5, want: 5, ok: true},
		{name: "empty pot", hero: 100, opp: 100, pot: 0, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SPR(tt.hero, tt.opp, tt.pot, tt.bet)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPotSizedBets(t *testing.T) {
	tests := []struct {
		name                string
		hero, opp, pot, bet int
		want                int
	}{
		// 10 -> bet 10 (stack 90, pot 30) -> bet 30 (60, 90) -> stop
		{name: "unopened", hero: 100, opp: 200, pot: 10, want: 2},
		// raise 20 (stack 80, pot 50) -> bet 50 (30, 150) -> stop
		{name: "facing bet", hero: 100, opp: 100, pot: 10, bet: 10, want: 2},
		{name: "cannot cover raise", hero: 15, opp: 100, pot: 10, bet: 10, want: 0},
		{name: "empty pot", hero: 100, opp: 100, pot: 0, want: 0},
		{name: "exact cover", hero: 40, opp: 40, pot: 10, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PotSizedBets(tt.hero, tt.opp, tt.pot, tt.bet))
		})
	}
}

func TestBestOmahaHandUsesTwoHoleCards(t *testing.T) {
	hole := cards(t, "AsKsQsJs")
	board := cards(t, "Ts9s2h")

	hand, err := BestOmahaHand(hole, board)
	require.NoError(t, err)
	assert.Len(t, hand.Hole, 2)
	assert.Len(t, hand.Board, 3)
	assert.Len(t, hand.Cards(), 5)
	assert.NotEmpty(t, hand.Description)

	set, distinct := poker.NewCardSet(hand.Cards())
	assert.True(t, distinct)
	for _, c := range hand.Hole {
		assert.Contains(t, hole, c)
	}
	for _, c := range board {
		assert.True(t, set.Contains(c), "all three board cards must play on a three card board")
	}
}

func TestBestOmahaHandFindsQuads(t *testing.T) {
	hand, err := BestOmahaHand(cards(t, "AsAh2c3d"), cards(t, "AdAcKh"))
	require.NoError(t, err)
	assert.ElementsMatch(t, cards(t, "AsAh"), hand.Hole)
	assert.ElementsMatch(t, cards(t, "AdAcKh"), hand.Board)
}

func TestBestOmahaHandStrongerScoresHigher(t *testing.T) {
	board := cards(t, "Qh9h4h")
	flush, err := BestOmahaHand(cards(t, "AhKh2c3d"), board)
	require.NoError(t, err)
	junk, err := BestOmahaHand(cards(t, "2c3d7s8c"), board)
	require.NoError(t, err)

	assert.ElementsMatch(t, cards(t, "AhKh"), flush.Hole)
	assert.Greater(t, flush.Score, junk.Score)
}

func TestBestOmahaHandErrors(t *testing.T) {
	_, err := BestOmahaHand(cards(t, "As"), cards(t, "KhQhJh"))
	assert.Error(t, err)
	_, err = BestOmahaHand(cards(t, "AsAh"), cards(t, "KhQh"))
	assert.Error(t, err)
}

func TestAnalyzeScenario(t *testing.T) {
	g, err := scenario.New(scenario.DefaultConfig())
	require.NoError(t, err)

	for seed := int64(0); seed < 50; seed++ {
		sc, err := g.Generate(randutil.New(seed))
		require.NoError(t, err)

		d, err := Analyze(sc)
		require.NoError(t, err)
		require.NotNil(t, d.Hero)
		require.NotNil(t, d.Opponent)
		assert.Equal(t, min(sc.HeroStack, sc.OpponentStack), d.EffectiveStack)
		assert.True(t, d.HasSPR)
		_, ok := d.HeroAhead()
		assert.True(t, ok)
	}
}

func TestAnalyzeRejectsDuplicates(t *testing.T) {
	sc := &scenario.Scenario{
		HeroHand:     cards(t, "AsKsQsJs"),
		OpponentHand: cards(t, "AsKdQdJd"),
		Board:        cards(t, "2c3c4c"),
		PotSize:      15,
	}
	_, err := Analyze(sc)
	assert.Error(t, err)
}
