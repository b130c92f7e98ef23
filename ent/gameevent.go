// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/numberninja/numberninja/ent/gameevent"
)

// GameEvent is the model entity for the GameEvent schema.
type GameEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared across event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Server-assigned session id grouping events
	SessionID string `json:"session_id,omitempty"`
	// started, completed, or cancelled
	Action string `json:"action,omitempty"`
	// practice or test
	Mode string `json:"mode,omitempty"`
	// Operations the session was configured with
	Operations []string `json:"operations,omitempty"`
	// Configured time limit, 0 for untimed
	TimeLimitSecs int `json:"time_limit_secs,omitempty"`
	// Correct count (completed only)
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// Wrong count (completed only)
	WrongAnswers int `json:"wrong_answers,omitempty"`
	// Elapsed seconds (terminal actions only)
	TotalTimeSecs int `json:"total_time_secs,omitempty"`
	// Questions answered before cancellation (cancelled only)
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GameEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gameevent.FieldOperations:
			values[i] = new([]byte)
		case gameevent.FieldID, gameevent.FieldSequence, gameevent.FieldTimeLimitSecs, gameevent.FieldCorrectAnswers, gameevent.FieldWrongAnswers, gameevent.FieldTotalTimeSecs, gameevent.FieldQuestionsAnswered:
			values[i] = new(sql.NullInt64)
		case gameevent.FieldSessionID, gameevent.FieldAction, gameevent.FieldMode:
			values[i] = new(sql.NullString)
		case gameevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GameEvent fields.
func (_m *GameEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gameevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gameevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case gameevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case gameevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case gameevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case gameevent.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case gameevent.FieldOperations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field operations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Operations); err != nil {
					return fmt.Errorf("unmarshal field operations: %w", err)
				}
			}
		case gameevent.FieldTimeLimitSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit_secs", values[i])
			} else if value.Valid {
				_m.TimeLimitSecs = int(value.Int64)
			}
		case gameevent.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case gameevent.FieldWrongAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_answers", values[i])
			} else if value.Valid {
				_m.WrongAnswers = int(value.Int64)
			}
		case gameevent.FieldTotalTimeSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_secs", values[i])
			} else if value.Valid {
				_m.TotalTimeSecs = int(value.Int64)
			}
		case gameevent.FieldQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_answered", values[i])
			} else if value.Valid {
				_m.QuestionsAnswered = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GameEvent.
// This includes values selected through modifiers, order, etc.
func (_m *GameEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GameEvent.
// Note that you need to call GameEvent.Unwrap() before calling this method if this GameEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GameEvent) Update() *GameEventUpdateOne {
	return NewGameEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GameEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GameEvent) Unwrap() *GameEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GameEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GameEvent) String() string {
	var builder strings.Builder
	builder.WriteString("GameEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("operations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Operations))
	builder.WriteString(", ")
	builder.WriteString("time_limit_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimitSecs))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("wrong_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.WrongAnswers))
	builder.WriteString(", ")
	builder.WriteString("total_time_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTimeSecs))
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteByte(')')
	return builder.String()
}

// GameEvents is a parsable slice of GameEvent.
type GameEvents []*GameEvent
