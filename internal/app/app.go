// Package app wires the screens, router, and injected services into
// the root Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/numberninja/numberninja/internal/game"
	"github.com/numberninja/numberninja/internal/router"
	"github.com/numberninja/numberninja/internal/screens/gamescreen"
	"github.com/numberninja/numberninja/internal/screens/home"
	"github.com/numberninja/numberninja/internal/screens/setup"
	"github.com/numberninja/numberninja/internal/ui/layout"
)

// Options carries the injected dependencies for the TUI.
type Options struct {
	Deps gamescreen.Deps

	// StartAtSetup opens the game setup screen on top of the home
	// menu (the `play` command without game flags).
	StartAtSetup bool

	// InitialConfig, when set, starts a game immediately (the `play`
	// command with game flags).
	InitialConfig *game.SessionConfig
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel. The home menu is always the root
// of the stack so finished games land there.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(home.New(opts.Deps)),
	}
	switch {
	case opts.InitialConfig != nil:
		m.initCmd = m.router.Push(gamescreen.New(opts.Deps, *opts.InitialConfig))
	case opts.StartAtSetup:
		m.initCmd = m.router.Push(setup.New(opts.Deps))
	default:
		m.initCmd = m.router.Active().Init()
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(router.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
