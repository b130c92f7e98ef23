package store

import (
	"context"
	"fmt"

	"github.com/numberninja/numberninja/ent/answerevent"
	"github.com/numberninja/numberninja/ent/gameevent"
)

func (r *eventRepo) AppendAnswerEvents(ctx context.Context, events []AnswerEventData) error {
	for _, data := range events {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}

		_, err = r.client.AnswerEvent.Create().
			SetSequence(seqNum).
			SetSessionID(data.SessionID).
			SetQuestionIndex(data.QuestionIndex).
			SetNumberA(data.NumberA).
			SetNumberB(data.NumberB).
			SetOperation(data.Operation).
			SetSelectedAnswer(data.SelectedAnswer).
			SetCorrect(data.Correct).
			SetTimeSecs(data.TimeSecs).
			SetSynthesized(data.Synthesized).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save answer event: %w", err)
		}
	}
	return nil
}

func (r *eventRepo) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	games, err := r.client.GameEvent.Query().
		Where(gameevent.ActionIn("completed", "cancelled")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query game events: %w", err)
	}
	for _, g := range games {
		switch g.Action {
		case "completed":
			stats.GamesCompleted++
			stats.TotalCorrect += g.CorrectAnswers
			stats.TotalWrong += g.WrongAnswers
			stats.TotalTimeSecs += g.TotalTimeSecs
		case "cancelled":
			stats.GamesCancelled++
		}
	}

	answers, err := r.client.AnswerEvent.Query().
		Order(answerevent.ByOperation()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byOp := make(map[string]*OperationStats)
	var order []string
	for _, a := range answers {
		os, ok := byOp[a.Operation]
		if !ok {
			os = &OperationStats{Operation: a.Operation}
			byOp[a.Operation] = os
			order = append(order, a.Operation)
		}
		os.Attempted++
		if a.Correct {
			os.Correct++
		}
	}
	for _, op := range order {
		stats.PerOperation = append(stats.PerOperation, *byOp[op])
	}

	return stats, nil
}
