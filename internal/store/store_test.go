package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func completedGame(sessionID string, correct, wrong, secs int) GameEventData {
	return GameEventData{
		SessionID:      sessionID,
		Action:         "completed",
		Mode:           "practice",
		Operations:     []string{"addition"},
		CorrectAnswers: correct,
		WrongAnswers:   wrong,
		TotalTimeSecs:  secs,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestAppendAndStats(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	s1 := uuid.New().String()
	if err := repo.AppendGameEvent(ctx, completedGame(s1, 3, 2, 45)); err != nil {
		t.Fatalf("append game event: %v", err)
	}
	if err := repo.AppendGameEvent(ctx, GameEventData{
		SessionID:  uuid.New().String(),
		Action:     "cancelled",
		Mode:       "practice",
		Operations: []string{"division"},
	}); err != nil {
		t.Fatalf("append cancelled event: %v", err)
	}

	if err := repo.AppendAnswerEvents(ctx, []AnswerEventData{
		{SessionID: s1, QuestionIndex: 0, NumberA: 1, NumberB: 2, Operation: "addition", SelectedAnswer: "3", Correct: true, TimeSecs: 5},
		{SessionID: s1, QuestionIndex: 1, NumberA: 2, NumberB: 2, Operation: "addition", SelectedAnswer: "5", Correct: false, TimeSecs: 9},
		{SessionID: s1, QuestionIndex: 2, NumberA: 8, NumberB: 4, Operation: "division", SelectedAnswer: "", Correct: false, TimeSecs: 7, Synthesized: true},
	}); err != nil {
		t.Fatalf("append answer events: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.GamesCompleted != 1 {
		t.Errorf("GamesCompleted = %d, want 1", stats.GamesCompleted)
	}
	if stats.GamesCancelled != 1 {
		t.Errorf("GamesCancelled = %d, want 1", stats.GamesCancelled)
	}
	if stats.TotalCorrect != 3 || stats.TotalWrong != 2 {
		t.Errorf("totals = %d/%d, want 3/2", stats.TotalCorrect, stats.TotalWrong)
	}
	if len(stats.PerOperation) != 2 {
		t.Fatalf("PerOperation has %d entries, want 2", len(stats.PerOperation))
	}
	for _, op := range stats.PerOperation {
		switch op.Operation {
		case "addition":
			if op.Attempted != 2 || op.Correct != 1 {
				t.Errorf("addition stats = %+v", op)
			}
		case "division":
			if op.Attempted != 1 || op.Correct != 0 {
				t.Errorf("division stats = %+v", op)
			}
		default:
			t.Errorf("unexpected operation %q", op.Operation)
		}
	}
}

func TestRecentGames_OrderAndLimit(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	ids := []string{uuid.New().String(), uuid.New().String(), uuid.New().String()}
	for i, id := range ids {
		if err := repo.AppendGameEvent(ctx, completedGame(id, i, 0, 10*i)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	games, err := repo.RecentGames(ctx, 2)
	if err != nil {
		t.Fatalf("recent games: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	// Newest first.
	if games[0].SessionID != ids[2] || games[1].SessionID != ids[1] {
		t.Errorf("unexpected order: %v", games)
	}
}

func TestReset(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	id := uuid.New().String()
	if err := repo.AppendGameEvent(ctx, completedGame(id, 1, 0, 5)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendAnswerEvents(ctx, []AnswerEventData{
		{SessionID: id, Operation: "addition", SelectedAnswer: "2", Correct: true, TimeSecs: 5},
	}); err != nil {
		t.Fatalf("append answers: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats after reset: %v", err)
	}
	if stats.GamesCompleted != 0 || len(stats.PerOperation) != 0 {
		t.Errorf("stats not empty after reset: %+v", stats)
	}
}

func TestSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("sequence counter: %v", err)
	}

	ctx := context.Background()
	prev := int64(-1)
	for i := 0; i < 10; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence went backwards: %d after %d", n, prev)
		}
		prev = n
	}
}
