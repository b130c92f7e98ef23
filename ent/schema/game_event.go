package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameEvent records the lifecycle of one game session: started,
// completed, or cancelled, with the outcome counters on the terminal
// actions.
type GameEvent struct {
	ent.Schema
}

func (GameEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GameEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Server-assigned session id grouping events"),
		field.String("action").
			NotEmpty().
			Comment("started, completed, or cancelled"),
		field.String("mode").
			NotEmpty().
			Comment("practice or test"),
		field.Strings("operations").
			Comment("Operations the session was configured with"),
		field.Int("time_limit_secs").
			Default(0).
			Comment("Configured time limit, 0 for untimed"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct count (completed only)"),
		field.Int("wrong_answers").
			Default(0).
			Comment("Wrong count (completed only)"),
		field.Int("total_time_secs").
			Default(0).
			Comment("Elapsed seconds (terminal actions only)"),
		field.Int("questions_answered").
			Default(0).
			Comment("Questions answered before cancellation (cancelled only)"),
	}
}

func (GameEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("mode"),
	}
}
