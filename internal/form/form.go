// Package form connects the scenario generator to a form through plain field updates.
package form

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lox/pokerforms/scenario"
)

// Form is anything that accepts named field values.
type Form interface {
	SetField(name, value string) error
}

// Event is a user interaction routed to the controller.
type Event int

const (
	// EventRandomize is the "random" button.
	EventRandomize Event = iota
	// EventClear blanks every scenario field.
	EventClear
)

func (e Event) String() string {
	switch e {
	case EventRandomize:
		return "randomize"
	case EventClear:
		return "clear"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Controller turns events into generator calls and form writes.
type Controller struct {
	gen    *scenario.Generator
	src    scenario.Source
	form   Form
	logger *log.Logger

	mu   sync.Mutex
	last *scenario.Scenario
}

// NewController wires a generator, its random source and the target form.
// The source is owned by the controller and only used under its lock.
func NewController(gen *scenario.Generator, src scenario.Source, form Form, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Controller{
		gen:    gen,
		src:    src,
		form:   form,
		logger: logger.WithPrefix("form"),
	}
}

// Handle dispatches one event.
func (c *Controller) Handle(ev Event) error {
	switch ev {
	case EventRandomize:
		_, err := c.Randomize()
		return err
	case EventClear:
		return c.Clear()
	default:
		return fmt.Errorf("unhandled event %s", ev)
	}
}

// Randomize generates a scenario and writes all of its fields. When generation
// fails nothing is written and the form keeps its previous values.
func (c *Controller) Randomize() (*scenario.Scenario, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sc, err := c.gen.Generate(c.src)
	if err != nil {
		c.logger.Error("Scenario generation failed", "error", err)
		return nil, fmt.Errorf("generate scenario: %w", err)
	}

	if err := writeFields(c.form, sc.Fields()); err != nil {
		c.logger.Error("Form update failed", "error", err)
		return nil, err
	}
	c.last = sc
	c.logger.Info("Form populated",
		"hero", sc.Fields()[scenario.FieldHeroHand],
		"board", sc.Fields()[scenario.FieldBoard],
		"pot", sc.PotSize,
		"bet", sc.BetSize)
	return sc, nil
}

// Clear blanks every field the generator writes.
func (c *Controller) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	blank := make(map[string]string, len(scenario.FieldNames)+1)
	for _, name := range scenario.FieldNames {
		blank[name] = ""
	}
	blank[scenario.FieldButtonSeat] = ""
	if err := writeFields(c.form, blank); err != nil {
		return err
	}
	c.last = nil
	return nil
}

// Last returns the most recently written scenario, or nil.
func (c *Controller) Last() *scenario.Scenario {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// writeFields writes fields in sorted name order.
func writeFields(f Form, fields map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if err := f.SetField(name, fields[name]); err != nil {
			return fmt.Errorf("set field %s: %w", name, err)
		}
	}
	return nil
}

// MapForm is an in-memory form, safe for concurrent use.
type MapForm struct {
	mu     sync.RWMutex
	values map[string]string
	allow  map[string]bool
}

// NewMapForm creates a form. When fields are given, only those names are accepted.
func NewMapForm(fields ...string) *MapForm {
	f := &MapForm{values: make(map[string]string)}
	if len(fields) > 0 {
		f.allow = make(map[string]bool, len(fields))
		for _, name := range fields {
			f.allow[name] = true
		}
	}
	return f
}

// SetField stores a value.
func (f *MapForm) SetField(name, value string) error {
	if f.allow != nil && !f.allow[name] {
		return fmt.Errorf("unknown field %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
	return nil
}

// Value returns a single field value.
func (f *MapForm) Value(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[name]
}

// Values returns a snapshot of all fields.
func (f *MapForm) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.values)
}
