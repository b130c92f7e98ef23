package game

import (
	"time"

	"github.com/numberninja/numberninja/internal/api"
	"github.com/numberninja/numberninja/internal/question"
)

// Mode distinguishes relaxed practice from scored test runs. The
// backend uses it to pick question counts; the engine treats it as an
// opaque tag carried through to the results.
type Mode string

const (
	ModePractice Mode = "practice"
	ModeTest     Mode = "test"
)

// SessionConfig is everything the player chose before the game starts.
// Immutable once a session is created.
type SessionConfig struct {
	Operations []question.Operation
	TermA      api.Range
	TermB      api.Range
	Mode       Mode

	// TimeLimit is in seconds; 0 means untimed.
	TimeLimit int
}

// Session is the server-assigned identity of one play-through.
type Session struct {
	ID        string
	TimeLimit int
}

// Question is a formatted question plus the mutable per-attempt fields
// captured during play. Each instance is mutated exactly once: when
// its answer is submitted, or by reconciliation at finalization.
type Question struct {
	question.Formatted

	// UserAnswer is the submitted option. Empty until Answered, and
	// empty in reconciled never-reached questions.
	UserAnswer string

	// Answered marks that UserAnswer and TimeTaken have been captured.
	Answered bool

	// TimeTaken is whole seconds spent on this question.
	TimeTaken int

	// AnsweredAt is when the answer was submitted.
	AnsweredAt time.Time

	// Correct is computed at submission and re-derived at finalization.
	Correct bool
}

// Results is the terminal summary handed to the results view.
type Results struct {
	CorrectAnswers int
	WrongAnswers   int
	Mode           Mode
	TotalTime      int
	Questions      []Question
}

// Accuracy returns the fraction of correct answers, 0 for an empty
// question list.
func (r *Results) Accuracy() float64 {
	total := r.CorrectAnswers + r.WrongAnswers
	if total == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(total)
}
