package poker

import (
	"fmt"
	"slices"
	"strings"
)

// Rank is a card rank from Two (0) to Ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit is a card suit.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// Ranks lists every rank from highest to lowest, the order used for display and deck building.
var Ranks = [13]Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// Suits lists every suit in display order: spades, hearts, diamonds, clubs.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the single character rank code.
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

// String returns the single character lower-case suit code.
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// Card is a playing card packed as rank*4 + suit. Valid cards are 0..51.
type Card uint8

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(uint8(rank)*4 + uint8(suit))
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(c / 4)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(c % 4)
}

// Valid reports whether the card is one of the 52 standard cards.
func (c Card) Valid() bool {
	return c < 52
}

// String returns the two character code, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses a two character card code. Rank and suit are case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q: must be 2 characters", s)
	}
	r := strings.IndexByte(rankChars, upper(s[0]))
	if r < 0 {
		return 0, fmt.Errorf("invalid rank %q in card %q", s[0], s)
	}
	st := strings.IndexByte(suitChars, lower(s[1]))
	if st < 0 {
		return 0, fmt.Errorf("invalid suit %q in card %q", s[1], s)
	}
	return NewCard(Rank(r), Suit(st)), nil
}

// MustParseCard is ParseCard for literals known to be valid. It panics on error.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses concatenated card codes such as "AsKdQh2c".
// Whitespace between cards is ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards concatenates card codes, the format used by form fields.
func FormatCards(cards []Card) string {
	var b strings.Builder
	b.Grow(len(cards) * 2)
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// SortCards sorts cards in place by rank (Ace first) and then by suit (s, h, d, c).
func SortCards(cards []Card) []Card {
	slices.SortFunc(cards, func(a, b Card) int {
		if a.Rank() != b.Rank() {
			return int(b.Rank()) - int(a.Rank())
		}
		return int(b.Suit()) - int(a.Suit())
	})
	return cards
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// CardSet is a bitset of cards.
type CardSet uint64

// Add inserts a card into the set.
func (s *CardSet) Add(c Card) {
	*s |= 1 << c
}

// Contains reports whether the card is in the set.
func (s CardSet) Contains(c Card) bool {
	return s&(1<<c) != 0
}

// Len returns the number of cards in the set.
func (s CardSet) Len() int {
	n := 0
	for v := uint64(s); v != 0; v &= v - 1 {
		n++
	}
	return n
}

// NewCardSet builds a set from cards and reports whether every card was distinct.
func NewCardSet(cards ...[]Card) (CardSet, bool) {
	var set CardSet
	distinct := true
	for _, group := range cards {
		for _, c := range group {
			if set.Contains(c) {
				distinct = false
			}
			set.Add(c)
		}
	}
	return set, distinct
}
