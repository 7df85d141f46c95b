package poker

import (
	"fmt"
	"strings"
)

// Position is a six-handed table position.
type Position uint8

const (
	UTG Position = iota
	HJ
	CO
	BTN
	SB
	BB
)

// Positions lists the six table positions in preflop action order.
var Positions = [6]Position{UTG, HJ, CO, BTN, SB, BB}

var positionNames = [...]string{"UTG", "HJ", "CO", "BTN", "SB", "BB"}

func (p Position) String() string {
	if int(p) >= len(positionNames) {
		return "?"
	}
	return positionNames[p]
}

// IsBlind reports whether the position posts a blind.
func (p Position) IsBlind() bool {
	return p == SB || p == BB
}

// ParsePosition parses a position name such as "BTN". Matching is case-insensitive.
func ParsePosition(s string) (Position, error) {
	for i, name := range positionNames {
		if strings.EqualFold(s, name) {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(b []byte) error {
	pos, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = pos
	return nil
}
