// Package results displays the scored outcome of a finished game.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/numberninja/numberninja/internal/game"
	"github.com/numberninja/numberninja/internal/router"
	"github.com/numberninja/numberninja/internal/ui/layout"
	"github.com/numberninja/numberninja/internal/ui/theme"
)

// ResultsScreen displays the game results and question review.
type ResultsScreen struct {
	results *game.Results
	scroll  int
}

var _ router.Screen = (*ResultsScreen)(nil)
var _ router.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen.
func New(results *game.Results) *ResultsScreen {
	return &ResultsScreen{results: results}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.results != nil && s.scroll < len(s.results.Questions)-1 {
			s.scroll++
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	res := s.results
	if res == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Game complete!"))
	b.WriteString("\n\n")

	timeStr := fmt.Sprintf("%d:%02d", res.TotalTime/60, res.TotalTime%60)
	statsLine := fmt.Sprintf("Correct: %d        Wrong: %d        Accuracy: %.0f%%        Time: %s",
		res.CorrectAnswers, res.WrongAnswers, res.Accuracy()*100, timeStr)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Question review list, windowed to the available height.
	visible := height - lipgloss.Height(b.String()) - 1
	if visible < 1 {
		visible = 1
	}
	start := s.scroll
	if start > len(res.Questions)-visible {
		start = len(res.Questions) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(res.Questions) {
		end = len(res.Questions)
	}

	for i := start; i < end; i++ {
		q := res.Questions[i]

		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !q.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}

		answer := q.UserAnswer
		if answer == "" {
			answer = "—"
		}

		line := fmt.Sprintf("  %s  %s = %d    you: %s    %ds", mark, q.Text, q.CorrectAnswer, answer, q.TimeTaken)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !q.Answered {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
