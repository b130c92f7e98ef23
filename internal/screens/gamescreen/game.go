package gamescreen

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/numberninja/numberninja/internal/game"
	"github.com/numberninja/numberninja/internal/router"
	"github.com/numberninja/numberninja/internal/screens/results"
	"github.com/numberninja/numberninja/internal/store"
	"github.com/numberninja/numberninja/internal/ui/layout"
)

// GameScreen implements router.Screen for an active game.
type GameScreen struct {
	deps   Deps
	cfg    game.SessionConfig
	engine *game.Engine

	started     bool
	errMsg      string
	finalizeErr string
}

var _ router.Screen = (*GameScreen)(nil)
var _ router.KeyHintProvider = (*GameScreen)(nil)

// New creates a GameScreen for the given session configuration.
func New(deps Deps, cfg game.SessionConfig) *GameScreen {
	engine := game.NewEngine(cfg, game.Options{
		Service: deps.Service,
		Auth:    deps.Auth,
		Events:  deps.Events,
		Clock:   deps.Clock,
		Log:     deps.Log,
	})
	return &GameScreen{
		deps:   deps,
		cfg:    cfg,
		engine: engine,
	}
}

func (g *GameScreen) Init() tea.Cmd {
	return tea.Batch(g.startCmd(), redrawCmd())
}

func (g *GameScreen) Title() string {
	return "Game"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	switch {
	case g.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case g.engine.ConfirmingCancel():
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit game"},
			{Key: "N", Description: "Keep playing"},
		}
	case g.finalizeErr != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Quit game"},
		}
	case g.engine.State() == game.StateFinalizing:
		return nil
	case g.engine.Submitted():
		return []layout.KeyHint{{Key: "any key", Description: "Next question"}}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (g *GameScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return g.handleStarted(msg)

	case tickMsg:
		if g.engine.HandleTick(game.Tick(msg)) {
			return g, g.finalizeCmd()
		}
		return g, g.pumpCmd()

	case clockStoppedMsg:
		return g, nil

	case redrawMsg:
		if st := g.engine.State(); st == game.StateActive || st == game.StateInitializing {
			return g, redrawCmd()
		}
		return g, nil

	case finalizedMsg:
		return g.handleFinalized(msg)

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	return g, nil
}

func (g *GameScreen) handleStarted(msg startedMsg) (router.Screen, tea.Cmd) {
	if msg.Err != nil {
		g.errMsg = msg.Err.Error()
		return g, nil
	}
	g.started = true
	if g.cfg.TimeLimit > 0 {
		return g, g.pumpCmd()
	}
	return g, nil
}

func (g *GameScreen) handleFinalized(msg finalizedMsg) (router.Screen, tea.Cmd) {
	if msg.Err != nil {
		g.finalizeErr = msg.Err.Error()
		return g, nil
	}
	g.finalizeErr = ""

	res := msg.Results
	session := g.engine.Session()
	return g, func() tea.Msg {
		g.persistCompleted(session.ID, res)
		return router.ReplaceScreenMsg{Screen: results.New(res)}
	}
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := msg.String()

	// Startup failure: any key goes back.
	if g.errMsg != "" {
		return g, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Quit confirmation dialog.
	if g.engine.ConfirmingCancel() {
		switch key {
		case "y", "Y":
			return g, g.cancelCmd()
		case "n", "N", "esc":
			g.engine.DismissCancel()
		}
		return g, nil
	}

	// Submission failed: retry or give up.
	if g.finalizeErr != "" {
		switch key {
		case "r", "R":
			g.finalizeErr = ""
			return g, g.finalizeCmd()
		case "esc":
			return g, g.cancelCmd()
		}
		return g, nil
	}

	if g.engine.State() != game.StateActive {
		return g, nil
	}

	// Feedback showing: any key advances.
	if g.engine.Submitted() {
		g.engine.NextQuestion()
		return g, nil
	}

	switch key {
	case "esc":
		g.engine.RequestCancel()
		return g, nil
	case "enter":
		if g.engine.SubmitAnswer() {
			return g, g.finalizeCmd()
		}
		return g, nil
	case "1", "2", "3", "4":
		if q := g.engine.Current(); q != nil {
			idx := int(key[0] - '1')
			if idx < len(q.Options) {
				g.engine.SelectAnswer(q.Options[idx])
			}
		}
		return g, nil
	case "up", "k":
		g.moveSelection(-1)
		return g, nil
	case "down", "j":
		g.moveSelection(1)
		return g, nil
	}

	return g, nil
}

// moveSelection shifts the highlighted option by delta, clamped to the
// option list.
func (g *GameScreen) moveSelection(delta int) {
	q := g.engine.Current()
	if q == nil || len(q.Options) == 0 {
		return
	}

	idx := 0
	if sel := g.engine.Selected(); sel != "" {
		for i, opt := range q.Options {
			if opt == sel {
				idx = i + delta
				break
			}
		}
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(q.Options) {
		idx = len(q.Options) - 1
	}
	g.engine.SelectAnswer(q.Options[idx])
}

// startCmd runs engine startup off the update loop.
func (g *GameScreen) startCmd() tea.Cmd {
	return func() tea.Msg {
		return startedMsg{Err: g.engine.Start(context.Background())}
	}
}

// pumpCmd waits for the next engine clock tick.
func (g *GameScreen) pumpCmd() tea.Cmd {
	clock := g.engine.Clock()
	return func() tea.Msg {
		select {
		case t := <-clock.C():
			return tickMsg(t)
		case <-clock.Done():
			return clockStoppedMsg{}
		}
	}
}

// finalizeCmd submits the reconciled answers to the backend.
func (g *GameScreen) finalizeCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := g.engine.Finalize(context.Background())
		return finalizedMsg{Results: res, Err: err}
	}
}

// cancelCmd abandons the game and returns to the home screen.
func (g *GameScreen) cancelCmd() tea.Cmd {
	session := g.engine.Session()
	answered := g.answeredCount()
	g.engine.Cancel()

	return func() tea.Msg {
		if g.deps.Repo != nil && session.ID != "" {
			_ = g.deps.Repo.AppendGameEvent(context.Background(), store.GameEventData{
				SessionID:         session.ID,
				Action:            "cancelled",
				Mode:              string(g.cfg.Mode),
				Operations:        operationNames(g.cfg),
				TimeLimitSecs:     g.cfg.TimeLimit,
				QuestionsAnswered: answered,
			})
		}
		return router.PopToRootMsg{}
	}
}

// persistCompleted writes the finished game and its reconciled answers
// to the local event log. Persistence failures never block the player.
func (g *GameScreen) persistCompleted(sessionID string, res *game.Results) {
	if g.deps.Repo == nil || res == nil {
		return
	}
	ctx := context.Background()

	answered := 0
	events := make([]store.AnswerEventData, 0, len(res.Questions))
	for i, q := range res.Questions {
		if q.Answered {
			answered++
		}
		events = append(events, store.AnswerEventData{
			SessionID:      sessionID,
			QuestionIndex:  i,
			NumberA:        q.NumberA,
			NumberB:        q.NumberB,
			Operation:      string(q.Operation),
			SelectedAnswer: q.UserAnswer,
			Correct:        q.Correct,
			TimeSecs:       q.TimeTaken,
			Synthesized:    !q.Answered,
		})
	}

	err := g.deps.Repo.AppendGameEvent(ctx, store.GameEventData{
		SessionID:         sessionID,
		Action:            "completed",
		Mode:              string(res.Mode),
		Operations:        operationNames(g.cfg),
		TimeLimitSecs:     g.cfg.TimeLimit,
		CorrectAnswers:    res.CorrectAnswers,
		WrongAnswers:      res.WrongAnswers,
		TotalTimeSecs:     res.TotalTime,
		QuestionsAnswered: answered,
	})
	if err != nil {
		g.deps.Log.Warn().Err(err).Msg("persist game event")
		return
	}

	if err := g.deps.Repo.AppendAnswerEvents(ctx, events); err != nil {
		g.deps.Log.Warn().Err(err).Msg("persist answer events")
	}
}

// answeredCount counts submitted questions at cancellation time.
func (g *GameScreen) answeredCount() int {
	n := g.engine.Index()
	if g.engine.Submitted() {
		n++
	}
	return n
}

func operationNames(cfg game.SessionConfig) []string {
	names := make([]string, 0, len(cfg.Operations))
	for _, op := range cfg.Operations {
		names = append(names, string(op))
	}
	return names
}

// redrawCmd returns a 1-second tick that refreshes the elapsed display.
func redrawCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return redrawMsg(t)
	})
}
