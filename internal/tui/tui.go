// Package tui is the terminal rendition of the scenario form: one text input
// per field, a random button, and a details pane for the generated hand.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/pokerforms/internal/form"
	"github.com/lox/pokerforms/scenario"
)

var fieldLabels = map[string]string{
	scenario.FieldSmallBlind:       "Small blind",
	scenario.FieldBigBlind:         "Big blind",
	scenario.FieldHeroStack:        "Hero stack",
	scenario.FieldHeroPosition:     "Hero position",
	scenario.FieldHeroHand:         "Hero hand",
	scenario.FieldOpponentStack:    "Opponent stack",
	scenario.FieldOpponentPosition: "Opponent position",
	scenario.FieldOpponentHand:     "Opponent hand",
	scenario.FieldBoard:            "Board",
	scenario.FieldPotSize:          "Pot",
	scenario.FieldBetSize:          "Bet",
	scenario.FieldButtonSeat:       "Button seat",
}

// FormModel is the Bubble Tea model for the scenario form
type FormModel struct {
	controller *form.Controller
	logger     *log.Logger

	fields []string
	inputs map[string]*textinput.Model

	editing  bool // keys go to the focused input instead of the buttons
	focused  int
	status   string
	failed   bool
	quitting bool

	width  int
	height int
}

// NewFormModel creates the form and wires it to a controller driving gen with src.
func NewFormModel(gen *scenario.Generator, src scenario.Source, logger *log.Logger) *FormModel {
	if logger == nil {
		logger = log.Default()
	}
	m := &FormModel{
		logger: logger.WithPrefix("tui"),
		fields: append(append([]string{}, scenario.FieldNames...), scenario.FieldButtonSeat),
		inputs: make(map[string]*textinput.Model),
		status: "Press r for a random hand",
	}
	for _, name := range m.fields {
		ti := textinput.New()
		ti.CharLimit = 40
		ti.Width = 24
		ti.Prompt = ""
		ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
		m.inputs[name] = &ti
	}
	m.controller = form.NewController(gen, src, m, logger)
	return m
}

// SetField implements form.Form.
func (m *FormModel) SetField(name, value string) error {
	ti, ok := m.inputs[name]
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	ti.SetValue(value)
	return nil
}

// Value returns the current text of a field.
func (m *FormModel) Value(name string) string {
	if ti, ok := m.inputs[name]; ok {
		return ti.Value()
	}
	return ""
}

// Controller exposes the controller, mainly for tests.
func (m *FormModel) Controller() *form.Controller {
	return m.controller
}

// Status returns the status line text.
func (m *FormModel) Status() string {
	return m.status
}

// Editing reports whether keys are routed to a text input.
func (m *FormModel) Editing() bool {
	return m.editing
}

// Init initializes the TUI model
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r", " ":
			m.dispatch(form.EventRandomize)
		case "c":
			m.dispatch(form.EventClear)
		case "tab", "enter", "e":
			m.editing = true
			return m, m.focus(m.focused)
		}
	}
	return m, nil
}

func (m *FormModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.inputs[m.fields[m.focused]].Blur()
		return m, nil
	case "tab", "down", "enter":
		return m, m.focus((m.focused + 1) % len(m.fields))
	case "shift+tab", "up":
		return m, m.focus((m.focused - 1 + len(m.fields)) % len(m.fields))
	}

	ti := m.inputs[m.fields[m.focused]]
	updated, cmd := ti.Update(msg)
	*ti = updated
	return m, cmd
}

func (m *FormModel) focus(i int) tea.Cmd {
	m.inputs[m.fields[m.focused]].Blur()
	m.focused = i
	return m.inputs[m.fields[i]].Focus()
}

func (m *FormModel) dispatch(ev form.Event) {
	if err := m.controller.Handle(ev); err != nil {
		m.status = err.Error()
		m.failed = true
		return
	}
	m.failed = false
	switch ev {
	case form.EventRandomize:
		m.status = "Random hand generated"
	case form.EventClear:
		m.status = "Form cleared"
	}
}

// View renders the TUI
func (m *FormModel) View() string {
	if m.quitting {
		return ""
	}

	formPane := m.renderForm()
	detailsPane := m.renderDetails()

	leftStyle := paneStyle
	if m.editing {
		leftStyle = leftStyle.BorderForeground(focusedPaneColor)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Render(formPane),
		paneStyle.Render(detailsPane))

	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render("PLO scenario"),
		top,
		m.renderStatus(),
		m.renderHelp())
}

func (m *FormModel) renderForm() string {
	var b strings.Builder
	for i, name := range m.fields {
		label := LabelStyle
		if m.editing && i == m.focused {
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[name]))
		b.WriteString(m.inputs[name].View())
		if i < len(m.fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *FormModel) renderDetails() string {
	sc := m.controller.Last()
	if sc == nil {
		return InfoStyle.Render("No hand yet")
	}
	return RenderScenario(sc, true)
}

func (m *FormModel) renderStatus() string {
	if m.failed {
		return ErrorStyle.Render(m.status)
	}
	return SuccessStyle.Render(m.status)
}

func (m *FormModel) renderHelp() string {
	if m.editing {
		return InfoStyle.Render("Tab/↑↓ move between fields • Esc done • Ctrl+C quit")
	}
	return InfoStyle.Render("r random hand • c clear • Tab edit fields • q quit")
}
