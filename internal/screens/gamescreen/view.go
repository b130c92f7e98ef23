package gamescreen

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/numberninja/numberninja/internal/game"
	"github.com/numberninja/numberninja/internal/ui/components"
	"github.com/numberninja/numberninja/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	switch {
	case g.errMsg != "":
		return renderError(width, g.errMsg)
	case g.engine.ConfirmingCancel():
		return renderQuitConfirm(width)
	case g.finalizeErr != "":
		return renderFinalizeError(width, g.finalizeErr)
	case g.engine.State() == game.StateFinalizing:
		return renderCentered(width, theme.TextDim, "\n\n\n  Submitting your answers...")
	case !g.started:
		return renderCentered(width, theme.TextDim, "\n\n\n  Preparing your game...")
	}
	return g.renderQuestion(width)
}

// renderQuestion renders the active question with progress, timer, and
// answer options.
func (g *GameScreen) renderQuestion(width int) string {
	q := g.engine.Current()
	if q == nil {
		return renderCentered(width, theme.TextDim, "\n\n  Loading question...")
	}

	var b strings.Builder

	// Progress and timer line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", g.engine.Index()+1, g.engine.Total()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(g.timerText())

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	// Countdown bar for timed games.
	if limit := g.engine.Session().TimeLimit; limit > 0 {
		remaining := float64(limit-g.engine.Elapsed()) / float64(limit)
		bar := components.ProgressBar{Percent: remaining, Width: width - 4}
		b.WriteString("  " + bar.View())
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text + " = ?"))
	b.WriteString("\n\n")

	// Options.
	picker := components.OptionPicker{
		Options:       q.Options,
		Selected:      g.engine.Selected(),
		Submitted:     g.engine.Submitted(),
		CorrectAnswer: fmt.Sprintf("%d", q.CorrectAnswer),
	}
	b.WriteString(picker.View(width))

	// Feedback after submission.
	if g.engine.Submitted() {
		b.WriteString("\n")
		style := theme.Correct
		if !currentCorrect(q, g.engine.Selected()) {
			style = theme.Incorrect
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.Render(g.engine.Message())))
		b.WriteString("\n")
	}

	return b.String()
}

// timerText shows remaining time for timed games, elapsed otherwise.
func (g *GameScreen) timerText() string {
	elapsed := g.engine.Elapsed()
	if limit := g.engine.Session().TimeLimit; limit > 0 {
		remaining := limit - elapsed
		if remaining < 0 {
			remaining = 0
		}
		return fmt.Sprintf("Time left  %d:%02d", remaining/60, remaining%60)
	}
	return fmt.Sprintf("Elapsed  %d:%02d", elapsed/60, elapsed%60)
}

func currentCorrect(q *game.Question, selected string) bool {
	return selected == fmt.Sprintf("%d", q.CorrectAnswer)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this game?"))
	b.WriteString("\n")
	b.WriteString(renderCentered(width, theme.TextDim, "Your answers will not be scored."))
	b.WriteString("\n\n")

	b.WriteString(renderCentered(width, theme.Success, "[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(renderCentered(width, theme.Primary, "[N] No, keep playing"))

	return b.String()
}

func renderFinalizeError(width int, msg string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(renderCentered(width, theme.Error, "Could not submit your answers"))
	b.WriteString("\n")
	b.WriteString(renderCentered(width, theme.TextDim, msg))
	b.WriteString("\n\n")
	b.WriteString(renderCentered(width, theme.Text, "[R] Retry    [Esc] Quit game"))
	return b.String()
}

func renderError(width int, msg string) string {
	return renderCentered(width, theme.Error,
		fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", msg))
}

func renderCentered(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
