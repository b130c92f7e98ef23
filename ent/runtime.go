// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/numberninja/numberninja/ent/answerevent"
	"github.com/numberninja/numberninja/ent/gameevent"
	"github.com/numberninja/numberninja/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescOperation is the schema descriptor for operation field.
	answereventDescOperation := answereventFields[4].Descriptor()
	// answerevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	answerevent.OperationValidator = answereventDescOperation.Validators[0].(func(string) error)
	// answereventDescSynthesized is the schema descriptor for synthesized field.
	answereventDescSynthesized := answereventFields[8].Descriptor()
	// answerevent.DefaultSynthesized holds the default value on creation for the synthesized field.
	answerevent.DefaultSynthesized = answereventDescSynthesized.Default.(bool)
	gameeventMixin := schema.GameEvent{}.Mixin()
	gameeventMixinFields0 := gameeventMixin[0].Fields()
	_ = gameeventMixinFields0
	gameeventFields := schema.GameEvent{}.Fields()
	_ = gameeventFields
	// gameeventDescTimestamp is the schema descriptor for timestamp field.
	gameeventDescTimestamp := gameeventMixinFields0[1].Descriptor()
	// gameevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gameevent.DefaultTimestamp = gameeventDescTimestamp.Default.(func() time.Time)
	// gameeventDescSessionID is the schema descriptor for session_id field.
	gameeventDescSessionID := gameeventFields[0].Descriptor()
	// gameevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	gameevent.SessionIDValidator = gameeventDescSessionID.Validators[0].(func(string) error)
	// gameeventDescAction is the schema descriptor for action field.
	gameeventDescAction := gameeventFields[1].Descriptor()
	// gameevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	gameevent.ActionValidator = gameeventDescAction.Validators[0].(func(string) error)
	// gameeventDescMode is the schema descriptor for mode field.
	gameeventDescMode := gameeventFields[2].Descriptor()
	// gameevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	gameevent.ModeValidator = gameeventDescMode.Validators[0].(func(string) error)
	// gameeventDescTimeLimitSecs is the schema descriptor for time_limit_secs field.
	gameeventDescTimeLimitSecs := gameeventFields[4].Descriptor()
	// gameevent.DefaultTimeLimitSecs holds the default value on creation for the time_limit_secs field.
	gameevent.DefaultTimeLimitSecs = gameeventDescTimeLimitSecs.Default.(int)
	// gameeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	gameeventDescCorrectAnswers := gameeventFields[5].Descriptor()
	// gameevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	gameevent.DefaultCorrectAnswers = gameeventDescCorrectAnswers.Default.(int)
	// gameeventDescWrongAnswers is the schema descriptor for wrong_answers field.
	gameeventDescWrongAnswers := gameeventFields[6].Descriptor()
	// gameevent.DefaultWrongAnswers holds the default value on creation for the wrong_answers field.
	gameevent.DefaultWrongAnswers = gameeventDescWrongAnswers.Default.(int)
	// gameeventDescTotalTimeSecs is the schema descriptor for total_time_secs field.
	gameeventDescTotalTimeSecs := gameeventFields[7].Descriptor()
	// gameevent.DefaultTotalTimeSecs holds the default value on creation for the total_time_secs field.
	gameevent.DefaultTotalTimeSecs = gameeventDescTotalTimeSecs.Default.(int)
	// gameeventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	gameeventDescQuestionsAnswered := gameeventFields[8].Descriptor()
	// gameevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	gameevent.DefaultQuestionsAnswered = gameeventDescQuestionsAnswered.Default.(int)
}
