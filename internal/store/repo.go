package store

import (
	"context"

	"github.com/numberninja/numberninja/ent"
)

// GameEventData captures one game lifecycle event.
type GameEventData struct {
	SessionID         string
	Action            string // started, completed, or cancelled
	Mode              string
	Operations        []string
	TimeLimitSecs     int
	CorrectAnswers    int
	WrongAnswers      int
	TotalTimeSecs     int
	QuestionsAnswered int
}

// AnswerEventData captures one reconciled question of a completed game.
type AnswerEventData struct {
	SessionID      string
	QuestionIndex  int
	NumberA        int
	NumberB        int
	Operation      string
	SelectedAnswer string
	Correct        bool
	TimeSecs       int
	Synthesized    bool
}

// OperationStats aggregates accuracy for one operation.
type OperationStats struct {
	Operation string
	Attempted int
	Correct   int
}

// Stats summarizes the local game history.
type Stats struct {
	GamesCompleted int
	GamesCancelled int
	TotalCorrect   int
	TotalWrong     int
	TotalTimeSecs  int
	PerOperation   []OperationStats
}

// GameRecord is one completed game for the recent-games listing.
type GameRecord struct {
	SessionID      string
	Mode           string
	CorrectAnswers int
	WrongAnswers   int
	TotalTimeSecs  int
}

// EventRepo provides append and query access to the local event log.
type EventRepo interface {
	AppendGameEvent(ctx context.Context, data GameEventData) error
	AppendAnswerEvents(ctx context.Context, events []AnswerEventData) error

	Stats(ctx context.Context) (*Stats, error)
	RecentGames(ctx context.Context, limit int) ([]GameRecord, error)

	// Reset deletes all recorded events.
	Reset(ctx context.Context) error
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)
