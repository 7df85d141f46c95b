package scenario

import "fmt"

// InsufficientDeckError reports a deal that asked for more cards than remain in the deck.
type InsufficientDeckError struct {
	Stage     string // "hero", "opponent" or "board"
	Requested int
	Remaining int
}

func (e *InsufficientDeckError) Error() string {
	return fmt.Sprintf("insufficient deck dealing %s: requested %d cards, %d remaining", e.Stage, e.Requested, e.Remaining)
}

// ConfigurationError reports an invalid generation option.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}
