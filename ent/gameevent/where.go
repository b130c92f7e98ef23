// Code generated by ent, DO NOT EDIT.

package gameevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/numberninja/numberninja/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldAction, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldMode, v))
}

// TimeLimitSecs applies equality check predicate on the "time_limit_secs" field. It's identical to TimeLimitSecsEQ.
func TimeLimitSecs(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimeLimitSecs, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// WrongAnswers applies equality check predicate on the "wrong_answers" field. It's identical to WrongAnswersEQ.
func WrongAnswers(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldWrongAnswers, v))
}

// TotalTimeSecs applies equality check predicate on the "total_time_secs" field. It's identical to TotalTimeSecsEQ.
func TotalTimeSecs(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTotalTimeSecs, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldAction, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldMode, v))
}

// TimeLimitSecsEQ applies the EQ predicate on the "time_limit_secs" field.
func TimeLimitSecsEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimeLimitSecs, v))
}

// TimeLimitSecsNEQ applies the NEQ predicate on the "time_limit_secs" field.
func TimeLimitSecsNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldTimeLimitSecs, v))
}

// TimeLimitSecsIn applies the In predicate on the "time_limit_secs" field.
func TimeLimitSecsIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldTimeLimitSecs, vs...))
}

// TimeLimitSecsNotIn applies the NotIn predicate on the "time_limit_secs" field.
func TimeLimitSecsNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldTimeLimitSecs, vs...))
}

// TimeLimitSecsGT applies the GT predicate on the "time_limit_secs" field.
func TimeLimitSecsGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldTimeLimitSecs, v))
}

// TimeLimitSecsGTE applies the GTE predicate on the "time_limit_secs" field.
func TimeLimitSecsGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldTimeLimitSecs, v))
}

// TimeLimitSecsLT applies the LT predicate on the "time_limit_secs" field.
func TimeLimitSecsLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldTimeLimitSecs, v))
}

// TimeLimitSecsLTE applies the LTE predicate on the "time_limit_secs" field.
func TimeLimitSecsLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldTimeLimitSecs, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldCorrectAnswers, v))
}

// WrongAnswersEQ applies the EQ predicate on the "wrong_answers" field.
func WrongAnswersEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldWrongAnswers, v))
}

// WrongAnswersNEQ applies the NEQ predicate on the "wrong_answers" field.
func WrongAnswersNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldWrongAnswers, v))
}

// WrongAnswersIn applies the In predicate on the "wrong_answers" field.
func WrongAnswersIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldWrongAnswers, vs...))
}

// WrongAnswersNotIn applies the NotIn predicate on the "wrong_answers" field.
func WrongAnswersNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldWrongAnswers, vs...))
}

// WrongAnswersGT applies the GT predicate on the "wrong_answers" field.
func WrongAnswersGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldWrongAnswers, v))
}

// WrongAnswersGTE applies the GTE predicate on the "wrong_answers" field.
func WrongAnswersGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldWrongAnswers, v))
}

// WrongAnswersLT applies the LT predicate on the "wrong_answers" field.
func WrongAnswersLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldWrongAnswers, v))
}

// WrongAnswersLTE applies the LTE predicate on the "wrong_answers" field.
func WrongAnswersLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldWrongAnswers, v))
}

// TotalTimeSecsEQ applies the EQ predicate on the "total_time_secs" field.
func TotalTimeSecsEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTotalTimeSecs, v))
}

// TotalTimeSecsNEQ applies the NEQ predicate on the "total_time_secs" field.
func TotalTimeSecsNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldTotalTimeSecs, v))
}

// TotalTimeSecsIn applies the In predicate on the "total_time_secs" field.
func TotalTimeSecsIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldTotalTimeSecs, vs...))
}

// TotalTimeSecsNotIn applies the NotIn predicate on the "total_time_secs" field.
func TotalTimeSecsNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldTotalTimeSecs, vs...))
}

// TotalTimeSecsGT applies the GT predicate on the "total_time_secs" field.
func TotalTimeSecsGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldTotalTimeSecs, v))
}

// TotalTimeSecsGTE applies the GTE predicate on the "total_time_secs" field.
func TotalTimeSecsGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldTotalTimeSecs, v))
}

// TotalTimeSecsLT applies the LT predicate on the "total_time_secs" field.
func TotalTimeSecsLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldTotalTimeSecs, v))
}

// TotalTimeSecsLTE applies the LTE predicate on the "total_time_secs" field.
func TotalTimeSecsLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldTotalTimeSecs, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.NotPredicates(p))
}
