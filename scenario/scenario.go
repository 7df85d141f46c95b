package scenario

import (
	"encoding/json"
	"strconv"

	"github.com/lox/pokerforms/poker"
)

// Field names written to the demonstration form.
const (
	FieldHeroHand         = "heroHand"
	FieldOpponentHand     = "opponentHand"
	FieldBoard            = "board"
	FieldSmallBlind       = "smallBlind"
	FieldBigBlind         = "bigBlind"
	FieldHeroStack        = "heroStack"
	FieldOpponentStack    = "opponentStack"
	FieldHeroPosition     = "heroPosition"
	FieldOpponentPosition = "opponentPosition"
	FieldPotSize          = "potSize"
	FieldBetSize          = "betSize"
	FieldButtonSeat       = "buttonSeat"
)

// FieldNames lists the always-present fields in form order.
var FieldNames = []string{
	FieldSmallBlind,
	FieldBigBlind,
	FieldHeroStack,
	FieldHeroPosition,
	FieldHeroHand,
	FieldOpponentStack,
	FieldOpponentPosition,
	FieldOpponentHand,
	FieldBoard,
	FieldPotSize,
	FieldBetSize,
}

// Scenario is one randomized hand. It is built once per Generate call and never mutated.
type Scenario struct {
	HeroHand         []poker.Card   `json:"-"`
	OpponentHand     []poker.Card   `json:"-"`
	Board            []poker.Card   `json:"-"`
	SmallBlind       int            `json:"smallBlind"`
	BigBlind         int            `json:"bigBlind"`
	HeroStack        int            `json:"heroStack"`
	OpponentStack    int            `json:"opponentStack"`
	HeroPosition     poker.Position `json:"heroPosition"`
	OpponentPosition poker.Position `json:"opponentPosition"`
	PotSize          int            `json:"potSize"`
	BetSize          int            `json:"betSize"`
	ButtonSeat       int            `json:"buttonSeat,omitempty"`
}

// CardsDealt returns the total number of cards drawn from the deck.
func (s *Scenario) CardsDealt() int {
	return len(s.HeroHand) + len(s.OpponentHand) + len(s.Board)
}

// IsCheck reports whether the scenario faces no bet.
func (s *Scenario) IsCheck() bool {
	return s.BetSize == 0
}

// Fields returns the scenario as a field name to value mapping.
// Hands and board are concatenated card codes; numbers are decimal.
func (s *Scenario) Fields() map[string]string {
	fields := map[string]string{
		FieldHeroHand:         poker.FormatCards(s.HeroHand),
		FieldOpponentHand:     poker.FormatCards(s.OpponentHand),
		FieldBoard:            poker.FormatCards(s.Board),
		FieldSmallBlind:       strconv.Itoa(s.SmallBlind),
		FieldBigBlind:         strconv.Itoa(s.BigBlind),
		FieldHeroStack:        strconv.Itoa(s.HeroStack),
		FieldOpponentStack:    strconv.Itoa(s.OpponentStack),
		FieldHeroPosition:     s.HeroPosition.String(),
		FieldOpponentPosition: s.OpponentPosition.String(),
		FieldPotSize:          strconv.Itoa(s.PotSize),
		FieldBetSize:          strconv.Itoa(s.BetSize),
	}
	if s.ButtonSeat > 0 {
		fields[FieldButtonSeat] = strconv.Itoa(s.ButtonSeat)
	}
	return fields
}

// Layout returns the table layout for the drawn button seat, if one was drawn.
func (s *Scenario) Layout() (poker.Layout, bool) {
	if s.ButtonSeat == 0 {
		return poker.Layout{}, false
	}
	l, err := poker.LayoutFor(s.ButtonSeat)
	if err != nil {
		return poker.Layout{}, false
	}
	return l, true
}

// MarshalJSON encodes hands and board as card strings under the form field names.
func (s *Scenario) MarshalJSON() ([]byte, error) {
	type alias Scenario
	return json.Marshal(struct {
		HeroHand     string `json:"heroHand"`
		OpponentHand string `json:"opponentHand"`
		Board        string `json:"board"`
		*alias
	}{
		HeroHand:     poker.FormatCards(s.HeroHand),
		OpponentHand: poker.FormatCards(s.OpponentHand),
		Board:        poker.FormatCards(s.Board),
		alias:        (*alias)(s),
	})
}
