// Package history lists recently completed games from the local log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/numberninja/numberninja/internal/router"
	"github.com/numberninja/numberninja/internal/store"
	"github.com/numberninja/numberninja/internal/ui/layout"
	"github.com/numberninja/numberninja/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Games []store.GameRecord
	Err   error
}

// HistoryScreen displays past games.
type HistoryScreen struct {
	repo     store.EventRepo
	games    []store.GameRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ router.Screen = (*HistoryScreen)(nil)
var _ router.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(repo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		games, err := s.repo.RecentGames(context.Background(), historyLimit)
		return historyLoadedMsg{Games: games, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.games = msg.Games
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.games)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.games) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Time to play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.games {
		total := g.CorrectAnswers + g.WrongAnswers
		var accuracy float64
		if total > 0 {
			accuracy = float64(g.CorrectAnswers) / float64(total) * 100
		}
		timeStr := fmt.Sprintf("%d:%02d", g.TotalTimeSecs/60, g.TotalTimeSecs%60)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-8s  %s  %d questions  %.0f%% accuracy",
			prefix, g.Mode, timeStr, total, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
