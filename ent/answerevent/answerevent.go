// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionIndex holds the string denoting the question_index field in the database.
	FieldQuestionIndex = "question_index"
	// FieldNumberA holds the string denoting the number_a field in the database.
	FieldNumberA = "number_a"
	// FieldNumberB holds the string denoting the number_b field in the database.
	FieldNumberB = "number_b"
	// FieldOperation holds the string denoting the operation field in the database.
	FieldOperation = "operation"
	// FieldSelectedAnswer holds the string denoting the selected_answer field in the database.
	FieldSelectedAnswer = "selected_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimeSecs holds the string denoting the time_secs field in the database.
	FieldTimeSecs = "time_secs"
	// FieldSynthesized holds the string denoting the synthesized field in the database.
	FieldSynthesized = "synthesized"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuestionIndex,
	FieldNumberA,
	FieldNumberB,
	FieldOperation,
	FieldSelectedAnswer,
	FieldCorrect,
	FieldTimeSecs,
	FieldSynthesized,
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
	// OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	OperationValidator func(string) error
	// DefaultSynthesized holds the default value on creation for the "synthesized" field.
	DefaultSynthesized bool
)

// OrderOption defines the ordering options for the AnswerEvent queries.
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

// ByQuestionIndex orders the results by the question_index field.
func ByQuestionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionIndex, opts...).ToFunc()
}

// ByNumberA orders the results by the number_a field.
func ByNumberA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberA, opts...).ToFunc()
}

// ByNumberB orders the results by the number_b field.
func ByNumberB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberB, opts...).ToFunc()
}

// ByOperation orders the results by the operation field.
func ByOperation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperation, opts...).ToFunc()
}

// BySelectedAnswer orders the results by the selected_answer field.
func BySelectedAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimeSecs orders the results by the time_secs field.
func ByTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSecs, opts...).ToFunc()
}

// BySynthesized orders the results by the synthesized field.
func BySynthesized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynthesized, opts...).ToFunc()
}
