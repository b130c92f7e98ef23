// Package setup is the pre-game form: pick operations, number ranges,
// mode, and time limit, then launch the game.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/numberninja/numberninja/internal/api"
	"github.com/numberninja/numberninja/internal/game"
	"github.com/numberninja/numberninja/internal/question"
	"github.com/numberninja/numberninja/internal/router"
	"github.com/numberninja/numberninja/internal/screens/gamescreen"
	"github.com/numberninja/numberninja/internal/ui/components"
	"github.com/numberninja/numberninja/internal/ui/layout"
	"github.com/numberninja/numberninja/internal/ui/theme"
)

// Form rows, top to bottom.
const (
	rowAddition = iota
	rowSubtraction
	rowMultiplication
	rowDivision
	rowMode
	rowTermAMin
	rowTermAMax
	rowTermBMin
	rowTermBMax
	rowTimeLimit
	rowStart
	rowCount
)

var inputRows = map[int]int{
	rowTermAMin:  0,
	rowTermAMax:  1,
	rowTermBMin:  2,
	rowTermBMax:  3,
	rowTimeLimit: 4,
}

// SetupScreen is the game configuration form.
type SetupScreen struct {
	deps gamescreen.Deps

	row    int
	ops    map[question.Operation]bool
	mode   game.Mode
	inputs [5]components.TextInput
	errMsg string
}

var _ router.Screen = (*SetupScreen)(nil)
var _ router.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen with sensible defaults.
func New(deps gamescreen.Deps) *SetupScreen {
	s := &SetupScreen{
		deps: deps,
		ops:  map[question.Operation]bool{question.Addition: true},
		mode: game.ModePractice,
	}
	defaults := []struct{ placeholder, value string }{
		{"min", "1"}, {"max", "10"},
		{"min", "1"}, {"max", "10"},
		{"seconds, 0 = untimed", "60"},
	}
	for i, d := range defaults {
		s.inputs[i] = components.NewTextInput(d.placeholder, d.value, true, 4)
	}
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Game"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.row == rowStart {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start game"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardToInput(msg)
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up":
		s.setRow(s.row - 1)
		return s, nil
	case "down", "tab":
		s.setRow(s.row + 1)
		return s, nil

	case " ", "space":
		s.toggle()
		return s, nil

	case "left", "right":
		if s.row == rowMode {
			s.toggleMode()
			return s, nil
		}

	case "enter":
		switch {
		case s.row == rowStart:
			return s.start()
		case s.row < rowMode || s.row == rowMode:
			s.toggle()
			return s, nil
		default:
			s.setRow(s.row + 1)
			return s, nil
		}
	}

	return s.forwardToInput(msg)
}

// setRow moves focus, blurring and focusing text inputs as needed.
func (s *SetupScreen) setRow(row int) {
	if row < 0 {
		row = 0
	}
	if row >= rowCount {
		row = rowCount - 1
	}
	if idx, ok := inputRows[s.row]; ok {
		s.inputs[idx].Blur()
	}
	s.row = row
	if idx, ok := inputRows[s.row]; ok {
		s.inputs[idx].Focus()
	}
}

// toggle flips the checkbox or mode under the cursor.
func (s *SetupScreen) toggle() {
	switch s.row {
	case rowAddition, rowSubtraction, rowMultiplication, rowDivision:
		op := question.Operations[s.row]
		s.ops[op] = !s.ops[op]
	case rowMode:
		s.toggleMode()
	}
}

func (s *SetupScreen) toggleMode() {
	if s.mode == game.ModePractice {
		s.mode = game.ModeTest
	} else {
		s.mode = game.ModePractice
	}
}

func (s *SetupScreen) forwardToInput(msg tea.Msg) (router.Screen, tea.Cmd) {
	idx, ok := inputRows[s.row]
	if !ok {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[idx], cmd = s.inputs[idx].Update(msg)
	return s, cmd
}

// start validates the form and launches the game.
func (s *SetupScreen) start() (router.Screen, tea.Cmd) {
	cfg, err := s.buildConfig()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""

	deps := s.deps
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: gamescreen.New(deps, cfg)}
	}
}

func (s *SetupScreen) buildConfig() (game.SessionConfig, error) {
	var cfg game.SessionConfig

	for _, op := range question.Operations {
		if s.ops[op] {
			cfg.Operations = append(cfg.Operations, op)
		}
	}
	if len(cfg.Operations) == 0 {
		return cfg, fmt.Errorf("pick at least one operation")
	}

	vals := make([]int, len(s.inputs))
	names := []string{"first number min", "first number max", "second number min", "second number max", "time limit"}
	for i := range s.inputs {
		v, err := s.inputs[i].NumericValue()
		if err != nil {
			return cfg, fmt.Errorf("%s must be a number", names[i])
		}
		vals[i] = v
	}

	if vals[0] > vals[1] {
		return cfg, fmt.Errorf("first number range is empty")
	}
	if vals[2] > vals[3] {
		return cfg, fmt.Errorf("second number range is empty")
	}

	cfg.TermA = api.Range{Min: vals[0], Max: vals[1]}
	cfg.TermB = api.Range{Min: vals[2], Max: vals[3]}
	cfg.Mode = s.mode
	cfg.TimeLimit = vals[4]
	return cfg, nil
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	section := func(label string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)))
		b.WriteString("\n")
	}
	row := func(rowIdx int, content string) {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if rowIdx == s.row {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			prefix = "▸ "
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+content)))
		b.WriteString("\n")
	}

	section("Operations")
	labels := []string{"Addition", "Subtraction", "Multiplication", "Division"}
	for i, op := range question.Operations {
		check := "[ ]"
		if s.ops[op] {
			check = "[x]"
		}
		sym, _ := op.Symbol()
		row(i, fmt.Sprintf("%s %-15s %s", check, labels[i], sym))
	}
	b.WriteString("\n")

	section("Mode")
	row(rowMode, fmt.Sprintf("< %s >", s.mode))
	b.WriteString("\n")

	section("Numbers")
	row(rowTermAMin, "First number from  "+s.inputs[0].View())
	row(rowTermAMax, "First number to    "+s.inputs[1].View())
	row(rowTermBMin, "Second number from "+s.inputs[2].View())
	row(rowTermBMax, "Second number to   "+s.inputs[3].View())
	b.WriteString("\n")

	section("Time limit")
	row(rowTimeLimit, s.inputs[4].View())
	b.WriteString("\n")

	row(rowStart, "START GAME")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}
