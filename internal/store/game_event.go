package store

import (
	"context"
	"fmt"

	"github.com/numberninja/numberninja/ent"
	"github.com/numberninja/numberninja/ent/gameevent"
)

func (r *eventRepo) AppendGameEvent(ctx context.Context, data GameEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GameEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetMode(data.Mode).
		SetOperations(data.Operations).
		SetTimeLimitSecs(data.TimeLimitSecs).
		SetCorrectAnswers(data.CorrectAnswers).
		SetWrongAnswers(data.WrongAnswers).
		SetTotalTimeSecs(data.TotalTimeSecs).
		SetQuestionsAnswered(data.QuestionsAnswered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save game event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentGames(ctx context.Context, limit int) ([]GameRecord, error) {
	q := r.client.GameEvent.Query().
		Where(gameevent.Action("completed")).
		Order(ent.Desc(gameevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent games: %w", err)
	}

	records := make([]GameRecord, 0, len(events))
	for _, e := range events {
		records = append(records, GameRecord{
			SessionID:      e.SessionID,
			Mode:           e.Mode,
			CorrectAnswers: e.CorrectAnswers,
			WrongAnswers:   e.WrongAnswers,
			TotalTimeSecs:  e.TotalTimeSecs,
		})
	}
	return records, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	if _, err := r.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete answer events: %w", err)
	}
	if _, err := r.client.GameEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete game events: %w", err)
	}
	return nil
}
