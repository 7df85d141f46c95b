package phh

import "time"

// Variant is the PHH code for pot-limit Omaha.
const Variant = "PO"

// Metadata keys carried alongside each exported scenario.
const (
	MetaHeroPosition     = "hero_position"
	MetaOpponentPosition = "opponent_position"
	MetaPot              = "pot"
	MetaBet              = "bet"
	MetaSmallBlind       = "small_blind"
	MetaButtonSeat       = "button_seat"
	MetaVariant          = "variant"
)

// HandHistory represents a single scenario encoded in PHH format.
// Seat p1 is always the hero and p2 the opponent.
type HandHistory struct {
	Variant           string         `toml:"variant"`
	Table             string         `toml:"table,omitempty"`
	SeatCount         int            `toml:"seat_count,omitempty"`
	Seats             []int          `toml:"seats,omitempty"`
	Antes             []int          `toml:"antes"`
	BlindsOrStraddles []int          `toml:"blinds_or_straddles"`
	MinBet            int            `toml:"min_bet"`
	StartingStacks    []int          `toml:"starting_stacks"`
	Actions           []string       `toml:"actions"`
	Players           []string       `toml:"players,omitempty"`
	HandID            string         `toml:"hand"`
	Time              string         `toml:"time,omitempty"`
	TimeZone          string         `toml:"time_zone,omitempty"`
	Day               int            `toml:"day,omitempty"`
	Month             int            `toml:"month,omitempty"`
	Year              int            `toml:"year,omitempty"`
	Metadata          map[string]any `toml:"metadata,omitempty"`

	Timestamp time.Time `toml:"-"`
}
