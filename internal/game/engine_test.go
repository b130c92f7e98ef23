package game

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numberninja/numberninja/internal/api"
	"github.com/numberninja/numberninja/internal/auth"
	"github.com/numberninja/numberninja/internal/question"
)

// fakeService is an in-memory Service recording every call.
type fakeService struct {
	mu        sync.Mutex
	sessionID string
	questions []question.RawQuestion

	createErr    error
	questionsErr error
	submitErr    error
	submitHang   bool

	submitted   []api.Answer
	submitCalls int
	ended       []string
	endErr      error
}

func (f *fakeService) CreateSession(ctx context.Context, req api.CreateSessionRequest) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.sessionID, nil
}

func (f *fakeService) GetQuestions(ctx context.Context, sessionID string) ([]question.RawQuestion, error) {
	if f.questionsErr != nil {
		return nil, f.questionsErr
	}
	return f.questions, nil
}

func (f *fakeService) SubmitAnswers(ctx context.Context, sessionID string, answers []api.Answer) (*api.SubmitResult, error) {
	if f.submitHang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = answers
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	return &api.SubmitResult{CorrectAnswers: correct, TotalQuestions: len(answers)}, nil
}

func (f *fakeService) EndSession(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ended = append(f.ended, sessionID)
	return f.endErr
}

func (f *fakeService) endedSessions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ended...)
}

func additionBatch(n int) []question.RawQuestion {
	qs := make([]question.RawQuestion, n)
	for i := range qs {
		qs[i] = question.RawQuestion{
			NumberA:       i + 1,
			NumberB:       i + 2,
			Operation:     question.Addition,
			CorrectAnswer: 2*i + 3,
		}
	}
	return qs
}

func practiceConfig(timeLimit int) SessionConfig {
	return SessionConfig{
		Operations: []question.Operation{question.Addition},
		TermA:      api.Range{Min: 1, Max: 10},
		TermB:      api.Range{Min: 1, Max: 10},
		Mode:       ModePractice,
		TimeLimit:  timeLimit,
	}
}

func newTestEngine(t *testing.T, cfg SessionConfig, svc *fakeService, fc clockwork.Clock) *Engine {
	t.Helper()
	return NewEngine(cfg, Options{
		Service: svc,
		Auth:    &auth.Static{User: auth.User{UID: "uid-1"}, Token: "tok"},
		Clock:   fc,
	})
}

func startedEngine(t *testing.T, n, timeLimit int) (*Engine, *fakeService, *clockwork.FakeClock) {
	t.Helper()
	svc := &fakeService{sessionID: "sess-1", questions: additionBatch(n)}
	fc := clockwork.NewFakeClock()
	e := newTestEngine(t, practiceConfig(timeLimit), svc, fc)
	require.NoError(t, e.Start(context.Background()))
	require.Equal(t, StateActive, e.State())
	return e, svc, fc
}

// answerCurrent selects the correct answer and submits it after
// advancing the fake clock by secs.
func answerCurrent(t *testing.T, e *Engine, fc *clockwork.FakeClock, secs int) bool {
	t.Helper()
	q := e.Current()
	require.NotNil(t, q)
	fc.Advance(time.Duration(secs) * time.Second)
	e.SelectAnswer(strconv.Itoa(q.CorrectAnswer))
	return e.SubmitAnswer()
}

func TestStart_NoValidOperations(t *testing.T) {
	svc := &fakeService{sessionID: "s", questions: additionBatch(1)}
	cfg := practiceConfig(0)
	cfg.Operations = []question.Operation{"roots", "logarithms"}
	e := newTestEngine(t, cfg, svc, clockwork.NewFakeClock())

	err := e.Start(context.Background())
	require.ErrorIs(t, err, ErrNoValidOperations)
	assert.Equal(t, StateInitializing, e.State())
	assert.ErrorIs(t, e.Err(), ErrNoValidOperations)
}

func TestStart_NotAuthenticated(t *testing.T) {
	svc := &fakeService{sessionID: "s", questions: additionBatch(1)}
	e := NewEngine(practiceConfig(0), Options{
		Service: svc,
		Auth:    &auth.Static{},
		Clock:   clockwork.NewFakeClock(),
	})

	err := e.Start(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, StateInitializing, e.State())
}

func TestStart_RemoteFailures(t *testing.T) {
	boom := errors.New("connection refused")

	svc := &fakeService{createErr: boom}
	e := newTestEngine(t, practiceConfig(0), svc, clockwork.NewFakeClock())
	require.ErrorIs(t, e.Start(context.Background()), boom)

	svc = &fakeService{sessionID: "s", questionsErr: boom}
	e = newTestEngine(t, practiceConfig(0), svc, clockwork.NewFakeClock())
	require.ErrorIs(t, e.Start(context.Background()), boom)

	svc = &fakeService{sessionID: "s"} // empty batch
	e = newTestEngine(t, practiceConfig(0), svc, clockwork.NewFakeClock())
	require.ErrorIs(t, e.Start(context.Background()), ErrNoQuestions)
}

func TestFullGame_AllCorrect(t *testing.T) {
	e, svc, fc := startedEngine(t, 3, 0)

	var completed []*Results
	e.onDone = func(r *Results) { completed = append(completed, r) }

	for i := 0; i < 3; i++ {
		finalizing := answerCurrent(t, e, fc, 5)
		assert.NotEmpty(t, e.Message())
		if i < 2 {
			require.False(t, finalizing)
			e.NextQuestion()
			assert.Empty(t, e.Message())
			assert.False(t, e.Submitted())
		} else {
			require.True(t, finalizing, "last submission must begin finalization")
		}
	}

	res, err := e.Finalize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateDone, e.State())
	assert.Equal(t, 3, res.CorrectAnswers)
	assert.Equal(t, 0, res.WrongAnswers)
	assert.Equal(t, 15, res.TotalTime)
	assert.Equal(t, ModePractice, res.Mode)
	require.Len(t, completed, 1)

	require.Len(t, svc.submitted, 3)
	for i, a := range svc.submitted {
		assert.Equal(t, i, a.QuestionIndex)
		assert.True(t, a.IsCorrect)
		assert.Equal(t, 5, a.TimeTaken)
	}
}

func TestReconciliation_UnreachedQuestions(t *testing.T) {
	e, svc, fc := startedEngine(t, 5, 60)

	// Answer questions 0-2 in 2s, 4s, and 6s; advance to question 3
	// and never answer it.
	for i, secs := range []int{2, 4, 6} {
		require.False(t, answerCurrent(t, e, fc, secs), "question %d", i)
		e.NextQuestion()
	}
	require.Equal(t, 3, e.Index())

	require.True(t, e.HandleTick(Tick{Elapsed: 60, Expired: true}))
	_, err := e.Finalize(context.Background())
	require.NoError(t, err)

	res := e.Results()
	require.NotNil(t, res)
	require.Len(t, res.Questions, 5)

	for i, secs := range []int{2, 4, 6} {
		q := res.Questions[i]
		assert.True(t, q.Correct, "question %d", i)
		assert.Equal(t, secs, q.TimeTaken, "question %d", i)
		assert.NotEmpty(t, q.UserAnswer, "question %d", i)
	}
	// Unreached entries carry an empty answer and the rounded average
	// time of the answered ones: (2+4+6)/3 = 4.
	for _, i := range []int{3, 4} {
		q := res.Questions[i]
		assert.Empty(t, q.UserAnswer, "question %d", i)
		assert.False(t, q.Correct, "question %d", i)
		assert.Equal(t, 4, q.TimeTaken, "question %d", i)
	}

	assert.Equal(t, 3, res.CorrectAnswers)
	assert.Equal(t, 2, res.WrongAnswers)
	require.Len(t, svc.submitted, 5)
}

func TestReconciliation_SelectedButUnsubmitted(t *testing.T) {
	e, _, fc := startedEngine(t, 2, 60)

	require.False(t, answerCurrent(t, e, fc, 3))
	e.NextQuestion()

	q := e.Current()
	fc.Advance(7 * time.Second)
	e.SelectAnswer(strconv.Itoa(q.CorrectAnswer))

	require.True(t, e.HandleTick(Tick{Elapsed: 60, Expired: true}))
	res, err := e.Finalize(context.Background())
	require.NoError(t, err)

	last := res.Questions[1]
	assert.Equal(t, strconv.Itoa(q.CorrectAnswer), last.UserAnswer)
	assert.True(t, last.Correct)
	assert.Equal(t, 7, last.TimeTaken)
	assert.Equal(t, 2, res.CorrectAnswers)
}

func TestFinalize_AtMostOnce(t *testing.T) {
	e, svc, fc := startedEngine(t, 1, 60)

	// Last-question submission and timer expiry race; only the first
	// trigger wins the latch.
	require.True(t, answerCurrent(t, e, fc, 1))
	require.False(t, e.HandleTick(Tick{Elapsed: 60, Expired: true}))

	_, err := e.Finalize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, svc.submitCalls)

	// A second Finalize returns the cached results without resubmitting.
	res, err := e.Finalize(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, 1, svc.submitCalls)
}

func TestCancel_SuppressesFinalization(t *testing.T) {
	e, svc, fc := startedEngine(t, 3, 60)
	require.False(t, answerCurrent(t, e, fc, 2))

	e.RequestCancel()
	assert.True(t, e.ConfirmingCancel())
	e.Cancel()

	assert.Equal(t, StateCancelled, e.State())
	assert.False(t, e.ConfirmingCancel())

	// A late timer tick must not finalize.
	require.False(t, e.HandleTick(Tick{Elapsed: 60, Expired: true}))
	_, err := e.Finalize(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, svc.submitCalls)
	assert.Nil(t, e.Results())

	require.Eventually(t, func() bool {
		return len(svc.endedSessions()) == 1
	}, 2*time.Second, 10*time.Millisecond, "backend should be told the session ended")
}

func TestCancel_EndSessionFailureIsSwallowed(t *testing.T) {
	e, svc, _ := startedEngine(t, 1, 0)
	svc.endErr = errors.New("network down")

	e.Cancel()
	assert.Equal(t, StateCancelled, e.State())
	assert.NoError(t, e.Err())
}

func TestFinalize_SubmitError(t *testing.T) {
	e, svc, fc := startedEngine(t, 1, 0)
	svc.submitErr = errors.New("502 bad gateway")

	require.True(t, answerCurrent(t, e, fc, 1))
	_, err := e.Finalize(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFinalizing, e.State())
	assert.Error(t, e.Err())
	assert.Nil(t, e.Results())
}

func TestFinalize_Timeout(t *testing.T) {
	e, svc, fc := startedEngine(t, 1, 0)
	svc.submitHang = true

	require.True(t, answerCurrent(t, e, fc, 1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := e.Finalize(ctx)
	require.ErrorIs(t, err, ErrSubmitTimeout)
	assert.Nil(t, e.Results())
}

func TestActiveGuards(t *testing.T) {
	e, _, _ := startedEngine(t, 2, 0)

	// Submit without a selection is a no-op.
	require.False(t, e.SubmitAnswer())
	assert.False(t, e.Submitted())

	// Selection after submission is ignored.
	q := e.Current()
	e.SelectAnswer(strconv.Itoa(q.CorrectAnswer))
	require.False(t, e.SubmitAnswer())
	e.SelectAnswer("999")
	assert.Equal(t, strconv.Itoa(q.CorrectAnswer), e.Selected())

	// Resubmission is a no-op.
	require.False(t, e.SubmitAnswer())

	// Advancing past the end is a no-op.
	e.NextQuestion()
	e.NextQuestion()
	e.NextQuestion()
	assert.Equal(t, 1, e.Index())
}

func TestWrongAnswerFeedback(t *testing.T) {
	e, _, _ := startedEngine(t, 2, 0)

	q := e.Current()
	e.SelectAnswer(strconv.Itoa(q.CorrectAnswer + 1))
	e.SubmitAnswer()

	assert.NotEmpty(t, e.Message())
	assert.Contains(t, encouragementPhrases, e.Message())

	cur := e.Current()
	assert.False(t, cur.Correct)
	assert.True(t, cur.Answered)
}
