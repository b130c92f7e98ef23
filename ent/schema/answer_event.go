package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one reconciled question within a completed game,
// mirroring the answer record submitted to the backend.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to GameEvent"),
		field.Int("question_index").
			Comment("Zero-based position in the session"),
		field.Int("number_a").
			Comment("First operand"),
		field.Int("number_b").
			Comment("Second operand"),
		field.String("operation").
			NotEmpty().
			Comment("addition, subtraction, multiplication, or division"),
		field.String("selected_answer").
			Optional().
			Comment("The player's answer; empty for never-reached questions"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_secs").
			Comment("Seconds to answer; synthesized average for unreached questions"),
		field.Bool("synthesized").
			Default(false).
			Comment("True when the timing was backfilled at finalization"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("operation"),
		index.Fields("correct"),
	}
}
