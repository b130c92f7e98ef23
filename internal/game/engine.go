// Package game holds the session engine: the state machine driving a
// timed or untimed sequence of math questions from creation through
// answer capture, reconciliation, and submission.
package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/numberninja/numberninja/internal/api"
	"github.com/numberninja/numberninja/internal/auth"
	"github.com/numberninja/numberninja/internal/question"
	"github.com/numberninja/numberninja/internal/telemetry"
)

// State is the engine's lifecycle position.
type State int

const (
	StateInitializing State = iota
	StateActive
	StateFinalizing
	StateDone
	StateCancelled
)

// Initialization and finalization errors surfaced to the caller.
var (
	ErrNoValidOperations = errors.New("no valid operations selected")
	ErrNotAuthenticated  = errors.New("no authenticated user found")
	ErrNoQuestions       = errors.New("no questions received")
	ErrSubmitTimeout     = errors.New("failed to submit answers within the time limit")
)

// SubmitTimeout bounds the wait on the final answer submission. A late
// response past this deadline is ignored by the then-terminal engine.
const SubmitTimeout = 10 * time.Second

// endSessionTimeout bounds the best-effort end-session notification
// sent on cancellation.
const endSessionTimeout = 5 * time.Second

// Service is the remote backend the engine collaborates with.
type Service interface {
	CreateSession(ctx context.Context, req api.CreateSessionRequest) (string, error)
	GetQuestions(ctx context.Context, sessionID string) ([]question.RawQuestion, error)
	SubmitAnswers(ctx context.Context, sessionID string, answers []api.Answer) (*api.SubmitResult, error)
	EndSession(ctx context.Context, sessionID string) error
}

// Options wires the engine's collaborators. Service and Auth are
// required; the rest default to inert implementations.
type Options struct {
	Service Service
	Auth    auth.Provider
	Events  telemetry.Recorder
	Clock   clockwork.Clock
	Log     zerolog.Logger

	// OnComplete is invoked exactly once, with the finalized results,
	// when the engine reaches Done.
	OnComplete func(*Results)
}

// Engine drives one game session. All state mutation happens under a
// single mutex; the only call held open across the network is the
// final submission, which runs without the lock on a snapshot.
type Engine struct {
	mu sync.Mutex

	cfg    SessionConfig
	svc    Service
	auth   auth.Provider
	events telemetry.Recorder
	clk    clockwork.Clock
	log    zerolog.Logger
	onDone func(*Results)

	state   State
	initErr error

	session   Session
	clock     *Clock
	questions []*Question
	current   int

	selected  string
	submitted bool
	message   string

	confirmingCancel bool

	startTime     time.Time
	questionStart time.Time
	elapsed       int

	// finalized is the at-most-once latch for finalization and
	// cancellation: whichever trigger flips it first wins.
	finalized bool
	pending   []api.Answer
	submitErr error
	results   *Results
}

// NewEngine creates an engine in the Initializing state.
func NewEngine(cfg SessionConfig, opts Options) *Engine {
	e := &Engine{
		cfg:    cfg,
		svc:    opts.Service,
		auth:   opts.Auth,
		events: opts.Events,
		clk:    opts.Clock,
		log:    opts.Log.With().Str("component", "game").Logger(),
		onDone: opts.OnComplete,
		state:  StateInitializing,
	}
	if e.events == nil {
		e.events = telemetry.Nop{}
	}
	if e.clk == nil {
		e.clk = clockwork.NewRealClock()
	}
	return e
}

// Start validates the configuration, creates the remote session,
// fetches and formats the question batch, and transitions to Active.
// Any failure is terminal: the engine never enters Active and the
// error is also available via Err.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.state != StateInitializing {
		e.mu.Unlock()
		return fmt.Errorf("game: start called in state %d", e.state)
	}
	cfg := e.cfg
	e.mu.Unlock()

	ops := question.FilterValid(cfg.Operations)
	if len(ops) == 0 {
		return e.failInit(ErrNoValidOperations)
	}
	cfg.Operations = ops

	user, err := e.auth.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotSignedIn) {
			return e.failInit(ErrNotAuthenticated)
		}
		return e.failInit(fmt.Errorf("resolve user: %w", err))
	}

	sessionID, err := e.svc.CreateSession(ctx, api.CreateSessionRequest{
		Mode:        string(cfg.Mode),
		Operations:  cfg.Operations,
		TermA:       cfg.TermA,
		TermB:       cfg.TermB,
		FirebaseUID: user.UID,
		TimeLimit:   cfg.TimeLimit,
	})
	if err != nil {
		return e.failInit(fmt.Errorf("create session: %w", err))
	}

	raw, err := e.svc.GetQuestions(ctx, sessionID)
	if err != nil {
		return e.failInit(fmt.Errorf("fetch questions: %w", err))
	}
	if len(raw) == 0 {
		return e.failInit(ErrNoQuestions)
	}

	formatted := question.Format(raw)
	questions := make([]*Question, len(formatted))
	for i, f := range formatted {
		questions[i] = &Question{Formatted: f}
	}

	e.mu.Lock()
	e.cfg = cfg
	e.session = Session{ID: sessionID, TimeLimit: cfg.TimeLimit}
	e.questions = questions
	e.clock = NewClock(e.clk, cfg.TimeLimit)
	e.clock.Start()
	e.startTime = e.clk.Now()
	e.questionStart = e.startTime
	e.state = StateActive
	e.mu.Unlock()

	e.events.Event(telemetry.EventGameStarted, telemetry.Params{
		"mode":       cfg.Mode,
		"operations": cfg.Operations,
		"timeLimit":  cfg.TimeLimit,
	})
	return nil
}

func (e *Engine) failInit(err error) error {
	e.mu.Lock()
	e.initErr = err
	e.mu.Unlock()
	e.log.Error().Err(err).Msg("game initialization failed")
	e.events.Error(err)
	return err
}

// Clock returns the session clock so the owner can pump its ticks.
// Nil before Start succeeds.
func (e *Engine) Clock() *Clock {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock
}

// SelectAnswer records the tentative choice for the current question.
// No-op once the current question is submitted or the session is over.
func (e *Engine) SelectAnswer(choice string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateActive || e.submitted {
		return
	}
	e.selected = choice
}

// SubmitAnswer commits the selected choice for the current question,
// capturing correctness and time taken. On the last question it begins
// finalization and returns true; the caller must then run Finalize.
// No-op without a selection or when already submitted.
func (e *Engine) SubmitAnswer() (finalizing bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateActive || e.submitted || e.selected == "" {
		return false
	}

	q := e.questions[e.current]
	correct := e.selected == strconv.Itoa(q.CorrectAnswer)

	q.UserAnswer = e.selected
	q.Answered = true
	q.TimeTaken = roundSeconds(e.clk.Since(e.questionStart))
	q.AnsweredAt = e.clk.Now()
	q.Correct = correct

	e.submitted = true
	e.message = pickFeedback(correct)

	if e.current >= len(e.questions)-1 {
		return e.beginFinalize()
	}
	return false
}

// NextQuestion advances to the next question and resets the transient
// per-question state. No-op past the end or once the session is over.
func (e *Engine) NextQuestion() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateActive {
		return
	}

	e.selected = ""
	e.submitted = false
	e.message = ""
	e.questionStart = e.clk.Now()
	if e.current < len(e.questions)-1 {
		e.current++
	}
}

// HandleTick folds one clock tick into the session. An expired tick
// begins finalization (without requiring the current question to be
// submitted) and returns true; the caller must then run Finalize.
func (e *Engine) HandleTick(t Tick) (finalizing bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateActive {
		return false
	}
	e.elapsed = t.Elapsed
	if t.Expired {
		return e.beginFinalize()
	}
	return false
}

// beginFinalize flips the at-most-once latch, reconciles the question
// list, and prepares the wire answers. Callers hold e.mu. Returns
// false if another trigger already won the latch.
func (e *Engine) beginFinalize() bool {
	if e.finalized {
		return false
	}
	e.finalized = true
	e.state = StateFinalizing
	e.confirmingCancel = false
	if e.clock != nil {
		e.clock.Stop()
	}

	e.reconcile()

	e.pending = make([]api.Answer, len(e.questions))
	for i, q := range e.questions {
		e.pending[i] = api.Answer{
			QuestionIndex:  i,
			SelectedAnswer: q.UserAnswer,
			IsCorrect:      q.Correct,
			TimeTaken:      q.TimeTaken,
			NumberA:        q.NumberA,
			NumberB:        q.NumberB,
			Operation:      q.Operation,
		}
	}
	return true
}

// reconcile backfills every question into a fully-populated record:
// answered questions get correctness re-derived, the current question
// inherits an unsubmitted selection, and never-reached questions get
// an empty answer with the average answered time. Callers hold e.mu.
func (e *Engine) reconcile() {
	totalAnswered := 0
	totalTime := 0
	for _, q := range e.questions {
		if q.Answered {
			totalAnswered++
			totalTime += q.TimeTaken
		}
	}
	avgTime := 0
	if totalAnswered > 0 {
		avgTime = int(math.Round(float64(totalTime) / float64(totalAnswered)))
	}

	for i, q := range e.questions {
		switch {
		case q.Answered:
			q.Correct = q.UserAnswer == strconv.Itoa(q.CorrectAnswer)
		case i == e.current && e.selected != "":
			q.UserAnswer = e.selected
			q.Answered = true
			q.TimeTaken = roundSeconds(e.clk.Since(e.questionStart))
			q.AnsweredAt = e.clk.Now()
			q.Correct = e.selected == strconv.Itoa(q.CorrectAnswer)
		default:
			q.UserAnswer = ""
			q.TimeTaken = avgTime
			q.Correct = false
		}
	}
}

// Finalize submits the reconciled answers under SubmitTimeout and, on
// success, produces the Results, transitions to Done, and invokes the
// completion callback. A timeout or remote failure leaves the engine
// in Finalizing with Err set; results are withheld.
func (e *Engine) Finalize(ctx context.Context) (*Results, error) {
	e.mu.Lock()
	if e.state == StateDone {
		res := e.results
		e.mu.Unlock()
		return res, nil
	}
	if e.state != StateFinalizing || e.pending == nil {
		e.mu.Unlock()
		return nil, fmt.Errorf("game: nothing to finalize")
	}
	answers := e.pending
	sessionID := e.session.ID
	e.mu.Unlock()

	subCtx, cancel := context.WithTimeout(ctx, SubmitTimeout)
	defer cancel()

	_, err := e.svc.SubmitAnswers(subCtx, sessionID, answers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrSubmitTimeout
		} else {
			err = fmt.Errorf("submit answers: %w", err)
		}
		e.mu.Lock()
		e.submitErr = err
		e.mu.Unlock()
		e.log.Error().Err(err).Str("session_id", sessionID).Msg("answer submission failed")
		e.events.Error(err)
		return nil, err
	}

	e.mu.Lock()
	if e.state == StateCancelled {
		// Cancelled while the submission was in flight; drop the result.
		e.mu.Unlock()
		return nil, fmt.Errorf("game: cancelled")
	}

	questions := make([]Question, len(e.questions))
	correct := 0
	for i, q := range e.questions {
		questions[i] = *q
		if q.Correct {
			correct++
		}
	}

	totalTime := e.clockElapsedLocked()
	e.results = &Results{
		CorrectAnswers: correct,
		WrongAnswers:   len(questions) - correct,
		Mode:           e.cfg.Mode,
		TotalTime:      totalTime,
		Questions:      questions,
	}
	e.state = StateDone
	e.pending = nil
	res := e.results
	cfg := e.cfg
	onDone := e.onDone
	e.mu.Unlock()

	e.events.Event(telemetry.EventGameCompleted, telemetry.Params{
		"mode":           cfg.Mode,
		"operations":     cfg.Operations,
		"correctAnswers": res.CorrectAnswers,
		"wrongAnswers":   res.WrongAnswers,
		"totalTime":      res.TotalTime,
	})
	if onDone != nil {
		onDone(res)
	}
	return res, nil
}

// RequestCancel shows the cancellation confirmation. No-op once the
// session is over.
func (e *Engine) RequestCancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateActive {
		e.confirmingCancel = true
	}
}

// DismissCancel hides the cancellation confirmation.
func (e *Engine) DismissCancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.confirmingCancel = false
}

// Cancel terminates the session. The backend is notified best-effort;
// the clock is stopped; the finalization latch is taken so no
// late-arriving tick or submission can finalize afterwards.
func (e *Engine) Cancel() {
	e.mu.Lock()
	if e.state == StateDone || e.state == StateCancelled {
		e.mu.Unlock()
		return
	}
	e.finalized = true
	e.state = StateCancelled
	e.confirmingCancel = false
	e.pending = nil
	if e.clock != nil {
		e.clock.Stop()
	}
	sessionID := e.session.ID
	answered := e.current
	total := len(e.questions)
	elapsed := e.elapsed
	cfg := e.cfg
	e.mu.Unlock()

	if sessionID != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), endSessionTimeout)
			defer cancel()
			if err := e.svc.EndSession(ctx, sessionID); err != nil {
				// Logged only; cancellation always succeeds for the player.
				e.log.Warn().Err(err).Str("session_id", sessionID).Msg("end session notification failed")
			}
		}()
	}

	e.events.Event(telemetry.EventGameCancelled, telemetry.Params{
		"mode":              cfg.Mode,
		"operations":        cfg.Operations,
		"questionsAnswered": answered,
		"totalQuestions":    total,
		"elapsedTime":       elapsed,
	})
}

// clockElapsedLocked returns the clamped elapsed seconds. Callers hold
// e.mu.
func (e *Engine) clockElapsedLocked() int {
	if e.clock != nil {
		return e.clock.Elapsed()
	}
	return e.elapsed
}

func roundSeconds(d time.Duration) int {
	return int(math.Round(d.Seconds()))
}
