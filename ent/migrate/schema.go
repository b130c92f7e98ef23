// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "number_a", Type: field.TypeInt},
		{Name: "number_b", Type: field.TypeInt},
		{Name: "operation", Type: field.TypeString},
		{Name: "selected_answer", Type: field.TypeString, Nullable: true},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_secs", Type: field.TypeInt},
		{Name: "synthesized", Type: field.TypeBool, Default: false},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_operation",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// GameEventsColumns holds the columns for the "game_events" table.
	GameEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "operations", Type: field.TypeJSON},
		{Name: "time_limit_secs", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "wrong_answers", Type: field.TypeInt, Default: 0},
		{Name: "total_time_secs", Type: field.TypeInt, Default: 0},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
	}
	// GameEventsTable holds the schema information for the "game_events" table.
	GameEventsTable = &schema.Table{
		Name:       "game_events",
		Columns:    GameEventsColumns,
		PrimaryKey: []*schema.Column{GameEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gameevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[1]},
			},
			{
				Name:    "gameevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[2]},
			},
			{
				Name:    "gameevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[3]},
			},
			{
				Name:    "gameevent_action",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[4]},
			},
			{
				Name:    "gameevent_mode",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		GameEventsTable,
	}
)

func init() {
}
