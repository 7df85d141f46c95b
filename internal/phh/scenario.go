package phh

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lox/pokerforms/poker"
	"github.com/lox/pokerforms/scenario"
)

const (
	heroSeat     = 0
	opponentSeat = 1
)

// NewHandID returns a random id, or a stable one derived from the seed and
// index so that re-exporting a seeded batch produces the same ids.
func NewHandID(seed *int64, index int) string {
	if seed == nil {
		return uuid.NewString()
	}
	name := fmt.Sprintf("pokerforms/%d/%d", *seed, index)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// FromScenario builds the PHH record of a scenario. The opponent's action is a
// bet of the scenario's bet size, or a check when it is zero.
func FromScenario(sc *scenario.Scenario, id string, ts time.Time) *HandHistory {
	h := &HandHistory{
		Variant:           Variant,
		SeatCount:         2,
		Seats:             []int{1, 2},
		Antes:             []int{0, 0},
		BlindsOrStraddles: []int{blindFor(sc, sc.HeroPosition), blindFor(sc, sc.OpponentPosition)},
		MinBet:            sc.BigBlind,
		StartingStacks:    []int{sc.HeroStack, sc.OpponentStack},
		Players:           []string{"hero", "opponent"},
		HandID:            id,
		Metadata: map[string]any{
			MetaHeroPosition:     sc.HeroPosition.String(),
			MetaOpponentPosition: sc.OpponentPosition.String(),
			MetaPot:              sc.PotSize,
			MetaBet:              sc.BetSize,
			MetaSmallBlind:       sc.SmallBlind,
		},
	}
	if sc.ButtonSeat > 0 {
		h.Metadata[MetaButtonSeat] = sc.ButtonSeat
		if l, ok := sc.Layout(); ok {
			h.Table = l.Name
		}
	}

	h.Actions = append(h.Actions,
		fmt.Sprintf("d dh p%d %s", heroSeat+1, poker.FormatCards(sc.HeroHand)),
		fmt.Sprintf("d dh p%d %s", opponentSeat+1, poker.FormatCards(sc.OpponentHand)),
	)
	if len(sc.Board) >= 3 {
		h.Actions = append(h.Actions, "d db "+poker.FormatCards(sc.Board[:3]))
		for _, c := range sc.Board[3:] {
			h.Actions = append(h.Actions, "d db "+c.String())
		}
	}
	h.Actions = append(h.Actions, FormatAction(opponentSeat, sc.BetSize))

	if !ts.IsZero() {
		h.Timestamp = ts
		h.Time = ts.Format("15:04:05")
		h.TimeZone = ts.Location().String()
		h.Day = ts.Day()
		h.Month = int(ts.Month())
		h.Year = ts.Year()
	}
	return h
}

func blindFor(sc *scenario.Scenario, pos poker.Position) int {
	switch pos {
	case poker.SB:
		return sc.SmallBlind
	case poker.BB:
		return sc.BigBlind
	default:
		return 0
	}
}

// ToScenario rebuilds a scenario from a record written by FromScenario.
func ToScenario(h *HandHistory) (*scenario.Scenario, error) {
	if h.Variant != Variant {
		return nil, fmt.Errorf("phh: unsupported variant %q", h.Variant)
	}
	if len(h.StartingStacks) != 2 {
		return nil, fmt.Errorf("phh: expected 2 starting stacks, got %d", len(h.StartingStacks))
	}

	sc := &scenario.Scenario{
		HeroStack:     h.StartingStacks[heroSeat],
		OpponentStack: h.StartingStacks[opponentSeat],
		BigBlind:      h.MinBet,
	}

	for _, action := range h.Actions {
		fields := strings.Fields(action)
		switch {
		case len(fields) == 4 && fields[0] == "d" && fields[1] == "dh":
			cards, err := parseDealt(fields[3])
			if err != nil {
				return nil, fmt.Errorf("phh: %q: %w", action, err)
			}
			switch fields[2] {
			case "p1":
				sc.HeroHand = cards
			case "p2":
				sc.OpponentHand = cards
			default:
				return nil, fmt.Errorf("phh: unknown player in %q", action)
			}
		case len(fields) >= 3 && fields[0] == "d" && fields[1] == "db":
			cards, err := parseDealt(strings.Join(fields[2:], ""))
			if err != nil {
				return nil, fmt.Errorf("phh: %q: %w", action, err)
			}
			sc.Board = append(sc.Board, cards...)
		case len(fields) == 3 && fields[1] == "cbr":
			bet, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("phh: bad amount in %q", action)
			}
			sc.BetSize = bet
		case len(fields) == 2 && fields[1] == "cc":
			sc.BetSize = 0
		default:
			return nil, fmt.Errorf("phh: unsupported action %q", action)
		}
	}

	var err error
	if sc.HeroPosition, err = metaPosition(h.Metadata, MetaHeroPosition); err != nil {
		return nil, err
	}
	if sc.OpponentPosition, err = metaPosition(h.Metadata, MetaOpponentPosition); err != nil {
		return nil, err
	}
	if sc.PotSize, err = metaInt(h.Metadata, MetaPot); err != nil {
		return nil, err
	}
	if _, ok := h.Metadata[MetaButtonSeat]; ok {
		if sc.ButtonSeat, err = metaInt(h.Metadata, MetaButtonSeat); err != nil {
			return nil, err
		}
	}
	if sc.SmallBlind, err = metaInt(h.Metadata, MetaSmallBlind); err != nil {
		return nil, err
	}
	return sc, nil
}

func metaPosition(meta map[string]any, key string) (poker.Position, error) {
	s, ok := meta[key].(string)
	if !ok {
		return 0, fmt.Errorf("phh: metadata %s missing", key)
	}
	pos, err := poker.ParsePosition(s)
	if err != nil {
		return 0, fmt.Errorf("phh: metadata %s: %w", key, err)
	}
	return pos, nil
}

// metaInt accepts both int (freshly built) and int64 (decoded TOML) values.
func metaInt(meta map[string]any, key string) (int, error) {
	switch v := meta[key].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("phh: metadata %s missing or not an integer", key)
	}
}
