// Package home is the main menu screen.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/numberninja/numberninja/internal/router"
	"github.com/numberninja/numberninja/internal/screens/gamescreen"
	"github.com/numberninja/numberninja/internal/screens/history"
	"github.com/numberninja/numberninja/internal/screens/setup"
	"github.com/numberninja/numberninja/internal/ui/components"
	"github.com/numberninja/numberninja/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu           components.Menu
	userEmail      string
	gamesCompleted int
	totalCorrect   int
	totalWrong     int
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired with the shared dependencies.
func New(deps gamescreen.Deps) *HomeScreen {
	h := &HomeScreen{}

	if deps.Auth != nil {
		if user, err := deps.Auth.CurrentUser(context.Background()); err == nil {
			h.userEmail = user.Email
		}
	}

	if deps.Repo != nil {
		if stats, err := deps.Repo.Stats(context.Background()); err == nil {
			h.gamesCompleted = stats.GamesCompleted
			h.totalCorrect = stats.TotalCorrect
			h.totalWrong = stats.TotalWrong
		}
	}

	items := []components.MenuItem{
		{Label: "NEW GAME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(deps)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Repo)}
			}
		}, Disabled: deps.Repo == nil},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("NUMBER NINJA")
	subtitle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Sharpen your mental math")
	sections = append(sections, title+"\n"+subtitle)

	if h.userEmail != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("Signed in as "+h.userEmail))
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Not signed in — games cannot be started"))
	}

	if h.gamesCompleted > 0 {
		stats := fmt.Sprintf("Games: %d    Correct: %d    Wrong: %d",
			h.gamesCompleted, h.totalCorrect, h.totalWrong)
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(stats))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return "\n" + strings.Join(sections, "\n\n")
}
