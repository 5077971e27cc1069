// Package app is the interactive scoresheet: an input line for throws above a
// live scoresheet panel, with a new-game prompt once the tenth frame is done.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/tenpin/cmd/tenpin/internal/styles"
	"github.com/germanamz/tenpin/pkg/bowling/game"
	"github.com/germanamz/tenpin/pkg/lane"
	"github.com/germanamz/tenpin/pkg/scoresheet"
)

// State represents the application state machine.
type State int

const (
	StateRolling State = iota
	StateConfirmNewGame
)

// Model is the root bubbletea model.
type Model struct {
	lane    *lane.Lane
	input   textinput.Model
	keys    keyMap
	state   State
	errText string
	width   int
}

// New creates a Model driving l.
func New(l *lane.Lane) Model {
	ti := textinput.New()
	ti.Placeholder = "pins (0-10)"
	ti.Prompt = styles.PromptStyle.Render("throw > ")
	ti.CharLimit = 3
	ti.Focus()

	return Model{
		lane:  l,
		input: ti,
		keys:  newKeyMap(),
		state: StateRolling,
	}
}

// State returns the current application state.
func (m Model) State() State { return m.state }

// Err returns the message of the last rejected input, if any.
func (m Model) Err() string { return m.errText }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if m.state == StateConfirmNewGame {
			return m.handleConfirm(msg)
		}

		if key.Matches(msg, m.keys.Submit) {
			return m.handleSubmit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}

	sheet, err := m.lane.RollInput(text)
	switch {
	case errors.Is(err, lane.ErrInvalidInput):
		m.errText = "Invalid input: " + text
	case errors.Is(err, game.ErrFrameLimitExceeded):
		m.errText = err.Error()
		m.state = StateConfirmNewGame
	case err != nil:
		m.errText = err.Error()
	default:
		m.errText = ""
		if sheet.State == game.StateFull {
			m.state = StateConfirmNewGame
		}
	}

	return m, nil
}

func (m Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.lane.NewGame()
		m.state = StateRolling
		m.errText = ""
		return m, nil
	case key.Matches(msg, m.keys.No):
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	sheet := m.lane.Sheet()

	var parts []string
	parts = append(parts, styles.TitleStyle.Render("🎳 tenpin"))

	panel := styles.StatusStyle.Render(fmt.Sprintf("Game %d", m.lane.GameNumber())) + "\n" +
		strings.TrimSuffix(scoresheet.Render(sheet, m.lane.RenderOptions()), "\n")
	parts = append(parts, styles.SheetBorder.Render(panel))

	if m.errText != "" {
		parts = append(parts, styles.ErrorBlockStyle.Render(m.errText))
	}

	if m.state == StateConfirmNewGame {
		parts = append(parts,
			styles.SuccessStyle.Render(fmt.Sprintf("Game over! Final score: %d", sheet.Total)),
			styles.AskStyle.Render("Start new game? (y/n)"),
			styles.HintStyle.Render(hint(m.keys.Yes, m.keys.No, m.keys.Quit)),
		)
	} else {
		parts = append(parts,
			m.input.View(),
			styles.HintStyle.Render(hint(m.keys.Submit, m.keys.Quit)),
		)
	}

	return strings.Join(parts, "\n") + "\n"
}
