package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/numberninja/numberninja/internal/ui/theme"
)

// OptionPicker renders the four answer choices of a question. Selection
// and submission state live in the game engine; the picker is a pure
// view over them.
type OptionPicker struct {
	Options       []string
	Selected      string // currently highlighted option, "" for none
	Submitted     bool
	CorrectAnswer string
}

// View renders the option list. Before submission the selected option
// is highlighted; after submission the correct option is shown green
// and a wrong pick red.
func (p OptionPicker) View(width int) string {
	var s string
	for i, opt := range p.Options {
		prefix := "  "
		if !p.Submitted && opt == p.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case p.Submitted && opt == p.CorrectAnswer:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case p.Submitted && opt == p.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case p.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case opt == p.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		s += style.Render(line) + "\n"
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
