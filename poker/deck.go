package poker

import "fmt"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Source produces uniformly distributed floats in [0, 1).
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type Source interface {
	Float64() float64
}

// Intn returns a uniform integer in [0, n) drawn from src as floor(u*n).
func Intn(src Source, n int) int {
	if n <= 0 {
		panic("poker: Intn called with n <= 0")
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// IntBetween returns a uniform integer in [lo, hi] inclusive.
func IntBetween(src Source, lo, hi int) int {
	return lo + Intn(src, hi-lo+1)
}

// ShortDeckError is returned when a deal asks for more cards than remain.
type ShortDeckError struct {
	Requested int
	Remaining int
}

func (e *ShortDeckError) Error() string {
	return fmt.Sprintf("cannot deal %d cards: only %d remaining", e.Requested, e.Remaining)
}

// Deck is a standard 52-card deck dealt from the front.
type Deck struct {
	cards [DeckSize]Card // Fixed size array
	next  int
}

// NewDeck returns an unshuffled deck in canonical order: suits s, h, d, c and
// within each suit ranks A down to 2.
func NewDeck() *Deck {
	d := &Deck{}
	i := 0
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return d
}

// Shuffle performs an in-place Fisher-Yates shuffle of the undealt cards using src.
// For i from last down to 1 it draws j uniformly in [0, i] and swaps i and j.
func (d *Deck) Shuffle(src Source) {
	rest := d.cards[d.next:]
	for i := len(rest) - 1; i > 0; i-- {
		j := Intn(src, i+1)
		rest[i], rest[j] = rest[j], rest[i]
	}
}

// Deal removes n cards from the front of the deck.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, &ShortDeckError{Requested: n, Remaining: d.CardsRemaining()}
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Cards returns a copy of the undealt cards in order.
func (d *Deck) Cards() []Card {
	out := make([]Card, d.CardsRemaining())
	copy(out, d.cards[d.next:])
	return out
}

// CardsRemaining returns the number of cards left in the deck.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
