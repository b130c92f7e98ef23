// Code generated by ent, DO NOT EDIT.

package gameevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gameevent type in the database.
	Label = "game_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldOperations holds the string denoting the operations field in the database.
	FieldOperations = "operations"
	// FieldTimeLimitSecs holds the string denoting the time_limit_secs field in the database.
	FieldTimeLimitSecs = "time_limit_secs"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldWrongAnswers holds the string denoting the wrong_answers field in the database.
	FieldWrongAnswers = "wrong_answers"
	// FieldTotalTimeSecs holds the string denoting the total_time_secs field in the database.
	FieldTotalTimeSecs = "total_time_secs"
	// FieldQuestionsAnswered holds the string denoting the questions_answered field in the database.
	FieldQuestionsAnswered = "questions_answered"
	// Table holds the table name of the gameevent in the database.
	Table = "game_events"
)

// Columns holds all SQL columns for gameevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldMode,
	FieldOperations,
	FieldTimeLimitSecs,
	FieldCorrectAnswers,
	FieldWrongAnswers,
	FieldTotalTimeSecs,
	FieldQuestionsAnswered,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultTimeLimitSecs holds the default value on creation for the "time_limit_secs" field.
	DefaultTimeLimitSecs int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// DefaultWrongAnswers holds the default value on creation for the "wrong_answers" field.
	DefaultWrongAnswers int
	// DefaultTotalTimeSecs holds the default value on creation for the "total_time_secs" field.
	DefaultTotalTimeSecs int
	// DefaultQuestionsAnswered holds the default value on creation for the "questions_answered" field.
	DefaultQuestionsAnswered int
)

// OrderOption defines the ordering options for the GameEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByTimeLimitSecs orders the results by the time_limit_secs field.
func ByTimeLimitSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimitSecs, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByWrongAnswers orders the results by the wrong_answers field.
func ByWrongAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongAnswers, opts...).ToFunc()
}

// ByTotalTimeSecs orders the results by the total_time_secs field.
func ByTotalTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSecs, opts...).ToFunc()
}

// ByQuestionsAnswered orders the results by the questions_answered field.
func ByQuestionsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAnswered, opts...).ToFunc()
}
