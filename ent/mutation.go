// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/numberninja/numberninja/ent/answerevent"
	"github.com/numberninja/numberninja/ent/gameevent"
	"github.com/numberninja/numberninja/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerEvent = "AnswerEvent"
	TypeGameEvent   = "GameEvent"
)

// AnswerEventMutation represents an operation that mutates the AnswerEvent nodes in the graph.
type AnswerEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	session_id        *string
	question_index    *int
	addquestion_index *int
	number_a          *int
	addnumber_a       *int
	number_b          *int
	addnumber_b       *int
	operation         *string
	selected_answer   *string
	correct           *bool
	time_secs         *int
	addtime_secs      *int
	synthesized       *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AnswerEvent, error)
	predicates        []predicate.AnswerEvent
}

var _ ent.Mutation = (*AnswerEventMutation)(nil)

// answereventOption allows management of the mutation configuration using functional options.
type answereventOption func(*AnswerEventMutation)

// newAnswerEventMutation creates new mutation for the AnswerEvent entity.
func newAnswerEventMutation(c config, op Op, opts ...answereventOption) *AnswerEventMutation {
	m := &AnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerEventID sets the ID field of the mutation.
func withAnswerEventID(id int) answereventOption {
	return func(m *AnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*AnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerEvent sets the old AnswerEvent of the mutation.
func withAnswerEvent(node *AnswerEvent) answereventOption {
	return func(m *AnswerEventMutation) {
		m.oldValue = func(context.Context) (*AnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnswerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnswerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnswerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnswerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnswerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnswerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnswerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnswerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AnswerEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnswerEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnswerEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionIndex sets the "question_index" field.
func (m *AnswerEventMutation) SetQuestionIndex(i int) {
	m.question_index = &i
	m.addquestion_index = nil
}

// QuestionIndex returns the value of the "question_index" field in the mutation.
func (m *AnswerEventMutation) QuestionIndex() (r int, exists bool) {
	v := m.question_index
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionIndex returns the old "question_index" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldQuestionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionIndex: %w", err)
	}
	return oldValue.QuestionIndex, nil
}

// AddQuestionIndex adds i to the "question_index" field.
func (m *AnswerEventMutation) AddQuestionIndex(i int) {
	if m.addquestion_index != nil {
		*m.addquestion_index += i
	} else {
		m.addquestion_index = &i
	}
}

// AddedQuestionIndex returns the value that was added to the "question_index" field in this mutation.
func (m *AnswerEventMutation) AddedQuestionIndex() (r int, exists bool) {
	v := m.addquestion_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionIndex resets all changes to the "question_index" field.
func (m *AnswerEventMutation) ResetQuestionIndex() {
	m.question_index = nil
	m.addquestion_index = nil
}

// SetNumberA sets the "number_a" field.
func (m *AnswerEventMutation) SetNumberA(i int) {
	m.number_a = &i
	m.addnumber_a = nil
}

// NumberA returns the value of the "number_a" field in the mutation.
func (m *AnswerEventMutation) NumberA() (r int, exists bool) {
	v := m.number_a
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberA returns the old "number_a" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldNumberA(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberA: %w", err)
	}
	return oldValue.NumberA, nil
}

// AddNumberA adds i to the "number_a" field.
func (m *AnswerEventMutation) AddNumberA(i int) {
	if m.addnumber_a != nil {
		*m.addnumber_a += i
	} else {
		m.addnumber_a = &i
	}
}

// AddedNumberA returns the value that was added to the "number_a" field in this mutation.
func (m *AnswerEventMutation) AddedNumberA() (r int, exists bool) {
	v := m.addnumber_a
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumberA resets all changes to the "number_a" field.
func (m *AnswerEventMutation) ResetNumberA() {
	m.number_a = nil
	m.addnumber_a = nil
}

// SetNumberB sets the "number_b" field.
func (m *AnswerEventMutation) SetNumberB(i int) {
	m.number_b = &i
	m.addnumber_b = nil
}

// NumberB returns the value of the "number_b" field in the mutation.
func (m *AnswerEventMutation) NumberB() (r int, exists bool) {
	v := m.number_b
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberB returns the old "number_b" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldNumberB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberB: %w", err)
	}
	return oldValue.NumberB, nil
}

// AddNumberB adds i to the "number_b" field.
func (m *AnswerEventMutation) AddNumberB(i int) {
	if m.addnumber_b != nil {
		*m.addnumber_b += i
	} else {
		m.addnumber_b = &i
	}
}

// AddedNumberB returns the value that was added to the "number_b" field in this mutation.
func (m *AnswerEventMutation) AddedNumberB() (r int, exists bool) {
	v := m.addnumber_b
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumberB resets all changes to the "number_b" field.
func (m *AnswerEventMutation) ResetNumberB() {
	m.number_b = nil
	m.addnumber_b = nil
}

// SetOperation sets the "operation" field.
func (m *AnswerEventMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *AnswerEventMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *AnswerEventMutation) ResetOperation() {
	m.operation = nil
}

// SetSelectedAnswer sets the "selected_answer" field.
func (m *AnswerEventMutation) SetSelectedAnswer(s string) {
	m.selected_answer = &s
}

// SelectedAnswer returns the value of the "selected_answer" field in the mutation.
func (m *AnswerEventMutation) SelectedAnswer() (r string, exists bool) {
	v := m.selected_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedAnswer returns the old "selected_answer" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSelectedAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedAnswer: %w", err)
	}
	return oldValue.SelectedAnswer, nil
}

// ClearSelectedAnswer clears the value of the "selected_answer" field.
func (m *AnswerEventMutation) ClearSelectedAnswer() {
	m.selected_answer = nil
	m.clearedFields[answerevent.FieldSelectedAnswer] = struct{}{}
}

// SelectedAnswerCleared returns if the "selected_answer" field was cleared in this mutation.
func (m *AnswerEventMutation) SelectedAnswerCleared() bool {
	_, ok := m.clearedFields[answerevent.FieldSelectedAnswer]
	return ok
}

// ResetSelectedAnswer resets all changes to the "selected_answer" field.
func (m *AnswerEventMutation) ResetSelectedAnswer() {
	m.selected_answer = nil
	delete(m.clearedFields, answerevent.FieldSelectedAnswer)
}

// SetCorrect sets the "correct" field.
func (m *AnswerEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetTimeSecs sets the "time_secs" field.
func (m *AnswerEventMutation) SetTimeSecs(i int) {
	m.time_secs = &i
	m.addtime_secs = nil
}

// TimeSecs returns the value of the "time_secs" field in the mutation.
func (m *AnswerEventMutation) TimeSecs() (r int, exists bool) {
	v := m.time_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSecs returns the old "time_secs" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimeSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSecs: %w", err)
	}
	return oldValue.TimeSecs, nil
}

// AddTimeSecs adds i to the "time_secs" field.
func (m *AnswerEventMutation) AddTimeSecs(i int) {
	if m.addtime_secs != nil {
		*m.addtime_secs += i
	} else {
		m.addtime_secs = &i
	}
}

// AddedTimeSecs returns the value that was added to the "time_secs" field in this mutation.
func (m *AnswerEventMutation) AddedTimeSecs() (r int, exists bool) {
	v := m.addtime_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSecs resets all changes to the "time_secs" field.
func (m *AnswerEventMutation) ResetTimeSecs() {
	m.time_secs = nil
	m.addtime_secs = nil
}

// SetSynthesized sets the "synthesized" field.
func (m *AnswerEventMutation) SetSynthesized(b bool) {
	m.synthesized = &b
}

// Synthesized returns the value of the "synthesized" field in the mutation.
func (m *AnswerEventMutation) Synthesized() (r bool, exists bool) {
	v := m.synthesized
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesized returns the old "synthesized" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSynthesized(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesized: %w", err)
	}
	return oldValue.Synthesized, nil
}

// ResetSynthesized resets all changes to the "synthesized" field.
func (m *AnswerEventMutation) ResetSynthesized() {
	m.synthesized = nil
}

// Where appends a list predicates to the AnswerEventMutation builder.
func (m *AnswerEventMutation) Where(ps ...predicate.AnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerEvent).
func (m *AnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, answerevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, answerevent.FieldSessionID)
	}
	if m.question_index != nil {
		fields = append(fields, answerevent.FieldQuestionIndex)
	}
	if m.number_a != nil {
		fields = append(fields, answerevent.FieldNumberA)
	}
	if m.number_b != nil {
		fields = append(fields, answerevent.FieldNumberB)
	}
	if m.operation != nil {
		fields = append(fields, answerevent.FieldOperation)
	}
	if m.selected_answer != nil {
		fields = append(fields, answerevent.FieldSelectedAnswer)
	}
	if m.correct != nil {
		fields = append(fields, answerevent.FieldCorrect)
	}
	if m.time_secs != nil {
		fields = append(fields, answerevent.FieldTimeSecs)
	}
	if m.synthesized != nil {
		fields = append(fields, answerevent.FieldSynthesized)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.Sequence()
	case answerevent.FieldTimestamp:
		return m.Timestamp()
	case answerevent.FieldSessionID:
		return m.SessionID()
	case answerevent.FieldQuestionIndex:
		return m.QuestionIndex()
	case answerevent.FieldNumberA:
		return m.NumberA()
	case answerevent.FieldNumberB:
		return m.NumberB()
	case answerevent.FieldOperation:
		return m.Operation()
	case answerevent.FieldSelectedAnswer:
		return m.SelectedAnswer()
	case answerevent.FieldCorrect:
		return m.Correct()
	case answerevent.FieldTimeSecs:
		return m.TimeSecs()
	case answerevent.FieldSynthesized:
		return m.Synthesized()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerevent.FieldSequence:
		return m.OldSequence(ctx)
	case answerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case answerevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case answerevent.FieldQuestionIndex:
		return m.OldQuestionIndex(ctx)
	case answerevent.FieldNumberA:
		return m.OldNumberA(ctx)
	case answerevent.FieldNumberB:
		return m.OldNumberB(ctx)
	case answerevent.FieldOperation:
		return m.OldOperation(ctx)
	case answerevent.FieldSelectedAnswer:
		return m.OldSelectedAnswer(ctx)
	case answerevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case answerevent.FieldTimeSecs:
		return m.OldTimeSecs(ctx)
	case answerevent.FieldSynthesized:
		return m.OldSynthesized(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case answerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case answerevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case answerevent.FieldQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionIndex(v)
		return nil
	case answerevent.FieldNumberA:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberA(v)
		return nil
	case answerevent.FieldNumberB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberB(v)
		return nil
	case answerevent.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case answerevent.FieldSelectedAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedAnswer(v)
		return nil
	case answerevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case answerevent.FieldTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSecs(v)
		return nil
	case answerevent.FieldSynthesized:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesized(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.addquestion_index != nil {
		fields = append(fields, answerevent.FieldQuestionIndex)
	}
	if m.addnumber_a != nil {
		fields = append(fields, answerevent.FieldNumberA)
	}
	if m.addnumber_b != nil {
		fields = append(fields, answerevent.FieldNumberB)
	}
	if m.addtime_secs != nil {
		fields = append(fields, answerevent.FieldTimeSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.AddedSequence()
	case answerevent.FieldQuestionIndex:
		return m.AddedQuestionIndex()
	case answerevent.FieldNumberA:
		return m.AddedNumberA()
	case answerevent.FieldNumberB:
		return m.AddedNumberB()
	case answerevent.FieldTimeSecs:
		return m.AddedTimeSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case answerevent.FieldQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionIndex(v)
		return nil
	case answerevent.FieldNumberA:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumberA(v)
		return nil
	case answerevent.FieldNumberB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumberB(v)
		return nil
	case answerevent.FieldTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSecs(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answerevent.FieldSelectedAnswer) {
		fields = append(fields, answerevent.FieldSelectedAnswer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerEventMutation) ClearField(name string) error {
	switch name {
	case answerevent.FieldSelectedAnswer:
		m.ClearSelectedAnswer()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerEventMutation) ResetField(name string) error {
	switch name {
	case answerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case answerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case answerevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case answerevent.FieldQuestionIndex:
		m.ResetQuestionIndex()
		return nil
	case answerevent.FieldNumberA:
		m.ResetNumberA()
		return nil
	case answerevent.FieldNumberB:
		m.ResetNumberB()
		return nil
	case answerevent.FieldOperation:
		m.ResetOperation()
		return nil
	case answerevent.FieldSelectedAnswer:
		m.ResetSelectedAnswer()
		return nil
	case answerevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case answerevent.FieldTimeSecs:
		m.ResetTimeSecs()
		return nil
	case answerevent.FieldSynthesized:
		m.ResetSynthesized()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent edge %s", name)
}

// GameEventMutation represents an operation that mutates the GameEvent nodes in the graph.
type GameEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	session_id            *string
	action                *string
	mode                  *string
	operations            *[]string
	appendoperations      []string
	time_limit_secs       *int
	addtime_limit_secs    *int
	correct_answers       *int
	addcorrect_answers    *int
	wrong_answers         *int
	addwrong_answers      *int
	total_time_secs       *int
	addtotal_time_secs    *int
	questions_answered    *int
	addquestions_answered *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*GameEvent, error)
	predicates            []predicate.GameEvent
}

var _ ent.Mutation = (*GameEventMutation)(nil)

// gameeventOption allows management of the mutation configuration using functional options.
type gameeventOption func(*GameEventMutation)

// newGameEventMutation creates new mutation for the GameEvent entity.
func newGameEventMutation(c config, op Op, opts ...gameeventOption) *GameEventMutation {
	m := &GameEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGameEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGameEventID sets the ID field of the mutation.
func withGameEventID(id int) gameeventOption {
	return func(m *GameEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GameEvent
		)
		m.oldValue = func(ctx context.Context) (*GameEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GameEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGameEvent sets the old GameEvent of the mutation.
func withGameEvent(node *GameEvent) gameeventOption {
	return func(m *GameEventMutation) {
		m.oldValue = func(context.Context) (*GameEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GameEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GameEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GameEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GameEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GameEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *GameEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *GameEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *GameEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *GameEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *GameEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *GameEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GameEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GameEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *GameEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *GameEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *GameEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetAction sets the "action" field.
func (m *GameEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *GameEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *GameEventMutation) ResetAction() {
	m.action = nil
}

// SetMode sets the "mode" field.
func (m *GameEventMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *GameEventMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *GameEventMutation) ResetMode() {
	m.mode = nil
}

// SetOperations sets the "operations" field.
func (m *GameEventMutation) SetOperations(s []string) {
	m.operations = &s
	m.appendoperations = nil
}

// Operations returns the value of the "operations" field in the mutation.
func (m *GameEventMutation) Operations() (r []string, exists bool) {
	v := m.operations
	if v == nil {
		return
	}
	return *v, true
}

// OldOperations returns the old "operations" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldOperations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperations: %w", err)
	}
	return oldValue.Operations, nil
}

// AppendOperations adds s to the "operations" field.
func (m *GameEventMutation) AppendOperations(s []string) {
	m.appendoperations = append(m.appendoperations, s...)
}

// AppendedOperations returns the list of values that were appended to the "operations" field in this mutation.
func (m *GameEventMutation) AppendedOperations() ([]string, bool) {
	if len(m.appendoperations) == 0 {
		return nil, false
	}
	return m.appendoperations, true
}

// ResetOperations resets all changes to the "operations" field.
func (m *GameEventMutation) ResetOperations() {
	m.operations = nil
	m.appendoperations = nil
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (m *GameEventMutation) SetTimeLimitSecs(i int) {
	m.time_limit_secs = &i
	m.addtime_limit_secs = nil
}

// TimeLimitSecs returns the value of the "time_limit_secs" field in the mutation.
func (m *GameEventMutation) TimeLimitSecs() (r int, exists bool) {
	v := m.time_limit_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimitSecs returns the old "time_limit_secs" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldTimeLimitSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimitSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimitSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimitSecs: %w", err)
	}
	return oldValue.TimeLimitSecs, nil
}

// AddTimeLimitSecs adds i to the "time_limit_secs" field.
func (m *GameEventMutation) AddTimeLimitSecs(i int) {
	if m.addtime_limit_secs != nil {
		*m.addtime_limit_secs += i
	} else {
		m.addtime_limit_secs = &i
	}
}

// AddedTimeLimitSecs returns the value that was added to the "time_limit_secs" field in this mutation.
func (m *GameEventMutation) AddedTimeLimitSecs() (r int, exists bool) {
	v := m.addtime_limit_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimitSecs resets all changes to the "time_limit_secs" field.
func (m *GameEventMutation) ResetTimeLimitSecs() {
	m.time_limit_secs = nil
	m.addtime_limit_secs = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *GameEventMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *GameEventMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *GameEventMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *GameEventMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *GameEventMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetWrongAnswers sets the "wrong_answers" field.
func (m *GameEventMutation) SetWrongAnswers(i int) {
	m.wrong_answers = &i
	m.addwrong_answers = nil
}

// WrongAnswers returns the value of the "wrong_answers" field in the mutation.
func (m *GameEventMutation) WrongAnswers() (r int, exists bool) {
	v := m.wrong_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldWrongAnswers returns the old "wrong_answers" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldWrongAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrongAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrongAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrongAnswers: %w", err)
	}
	return oldValue.WrongAnswers, nil
}

// AddWrongAnswers adds i to the "wrong_answers" field.
func (m *GameEventMutation) AddWrongAnswers(i int) {
	if m.addwrong_answers != nil {
		*m.addwrong_answers += i
	} else {
		m.addwrong_answers = &i
	}
}

// AddedWrongAnswers returns the value that was added to the "wrong_answers" field in this mutation.
func (m *GameEventMutation) AddedWrongAnswers() (r int, exists bool) {
	v := m.addwrong_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetWrongAnswers resets all changes to the "wrong_answers" field.
func (m *GameEventMutation) ResetWrongAnswers() {
	m.wrong_answers = nil
	m.addwrong_answers = nil
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (m *GameEventMutation) SetTotalTimeSecs(i int) {
	m.total_time_secs = &i
	m.addtotal_time_secs = nil
}

// TotalTimeSecs returns the value of the "total_time_secs" field in the mutation.
func (m *GameEventMutation) TotalTimeSecs() (r int, exists bool) {
	v := m.total_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSecs returns the old "total_time_secs" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldTotalTimeSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSecs: %w", err)
	}
	return oldValue.TotalTimeSecs, nil
}

// AddTotalTimeSecs adds i to the "total_time_secs" field.
func (m *GameEventMutation) AddTotalTimeSecs(i int) {
	if m.addtotal_time_secs != nil {
		*m.addtotal_time_secs += i
	} else {
		m.addtotal_time_secs = &i
	}
}

// AddedTotalTimeSecs returns the value that was added to the "total_time_secs" field in this mutation.
func (m *GameEventMutation) AddedTotalTimeSecs() (r int, exists bool) {
	v := m.addtotal_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSecs resets all changes to the "total_time_secs" field.
func (m *GameEventMutation) ResetTotalTimeSecs() {
	m.total_time_secs = nil
	m.addtotal_time_secs = nil
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (m *GameEventMutation) SetQuestionsAnswered(i int) {
	m.questions_answered = &i
	m.addquestions_answered = nil
}

// QuestionsAnswered returns the value of the "questions_answered" field in the mutation.
func (m *GameEventMutation) QuestionsAnswered() (r int, exists bool) {
	v := m.questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAnswered returns the old "questions_answered" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldQuestionsAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAnswered: %w", err)
	}
	return oldValue.QuestionsAnswered, nil
}

// AddQuestionsAnswered adds i to the "questions_answered" field.
func (m *GameEventMutation) AddQuestionsAnswered(i int) {
	if m.addquestions_answered != nil {
		*m.addquestions_answered += i
	} else {
		m.addquestions_answered = &i
	}
}

// AddedQuestionsAnswered returns the value that was added to the "questions_answered" field in this mutation.
func (m *GameEventMutation) AddedQuestionsAnswered() (r int, exists bool) {
	v := m.addquestions_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAnswered resets all changes to the "questions_answered" field.
func (m *GameEventMutation) ResetQuestionsAnswered() {
	m.questions_answered = nil
	m.addquestions_answered = nil
}

// Where appends a list predicates to the GameEventMutation builder.
func (m *GameEventMutation) Where(ps ...predicate.GameEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GameEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GameEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GameEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GameEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GameEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GameEvent).
func (m *GameEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GameEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, gameevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, gameevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, gameevent.FieldSessionID)
	}
	if m.action != nil {
		fields = append(fields, gameevent.FieldAction)
	}
	if m.mode != nil {
		fields = append(fields, gameevent.FieldMode)
	}
	if m.operations != nil {
		fields = append(fields, gameevent.FieldOperations)
	}
	if m.time_limit_secs != nil {
		fields = append(fields, gameevent.FieldTimeLimitSecs)
	}
	if m.correct_answers != nil {
		fields = append(fields, gameevent.FieldCorrectAnswers)
	}
	if m.wrong_answers != nil {
		fields = append(fields, gameevent.FieldWrongAnswers)
	}
	if m.total_time_secs != nil {
		fields = append(fields, gameevent.FieldTotalTimeSecs)
	}
	if m.questions_answered != nil {
		fields = append(fields, gameevent.FieldQuestionsAnswered)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GameEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gameevent.FieldSequence:
		return m.Sequence()
	case gameevent.FieldTimestamp:
		return m.Timestamp()
	case gameevent.FieldSessionID:
		return m.SessionID()
	case gameevent.FieldAction:
		return m.Action()
	case gameevent.FieldMode:
		return m.Mode()
	case gameevent.FieldOperations:
		return m.Operations()
	case gameevent.FieldTimeLimitSecs:
		return m.TimeLimitSecs()
	case gameevent.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case gameevent.FieldWrongAnswers:
		return m.WrongAnswers()
	case gameevent.FieldTotalTimeSecs:
		return m.TotalTimeSecs()
	case gameevent.FieldQuestionsAnswered:
		return m.QuestionsAnswered()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GameEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gameevent.FieldSequence:
		return m.OldSequence(ctx)
	case gameevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case gameevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case gameevent.FieldAction:
		return m.OldAction(ctx)
	case gameevent.FieldMode:
		return m.OldMode(ctx)
	case gameevent.FieldOperations:
		return m.OldOperations(ctx)
	case gameevent.FieldTimeLimitSecs:
		return m.OldTimeLimitSecs(ctx)
	case gameevent.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case gameevent.FieldWrongAnswers:
		return m.OldWrongAnswers(ctx)
	case gameevent.FieldTotalTimeSecs:
		return m.OldTotalTimeSecs(ctx)
	case gameevent.FieldQuestionsAnswered:
		return m.OldQuestionsAnswered(ctx)
	}
	return nil, fmt.Errorf("unknown GameEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gameevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case gameevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case gameevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case gameevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case gameevent.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case gameevent.FieldOperations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperations(v)
		return nil
	case gameevent.FieldTimeLimitSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimitSecs(v)
		return nil
	case gameevent.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case gameevent.FieldWrongAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrongAnswers(v)
		return nil
	case gameevent.FieldTotalTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSecs(v)
		return nil
	case gameevent.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAnswered(v)
		return nil
	}
	return fmt.Errorf("unknown GameEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GameEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, gameevent.FieldSequence)
	}
	if m.addtime_limit_secs != nil {
		fields = append(fields, gameevent.FieldTimeLimitSecs)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, gameevent.FieldCorrectAnswers)
	}
	if m.addwrong_answers != nil {
		fields = append(fields, gameevent.FieldWrongAnswers)
	}
	if m.addtotal_time_secs != nil {
		fields = append(fields, gameevent.FieldTotalTimeSecs)
	}
	if m.addquestions_answered != nil {
		fields = append(fields, gameevent.FieldQuestionsAnswered)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GameEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gameevent.FieldSequence:
		return m.AddedSequence()
	case gameevent.FieldTimeLimitSecs:
		return m.AddedTimeLimitSecs()
	case gameevent.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case gameevent.FieldWrongAnswers:
		return m.AddedWrongAnswers()
	case gameevent.FieldTotalTimeSecs:
		return m.AddedTotalTimeSecs()
	case gameevent.FieldQuestionsAnswered:
		return m.AddedQuestionsAnswered()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gameevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case gameevent.FieldTimeLimitSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimitSecs(v)
		return nil
	case gameevent.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case gameevent.FieldWrongAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWrongAnswers(v)
		return nil
	case gameevent.FieldTotalTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSecs(v)
		return nil
	case gameevent.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAnswered(v)
		return nil
	}
	return fmt.Errorf("unknown GameEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GameEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GameEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GameEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GameEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GameEventMutation) ResetField(name string) error {
	switch name {
	case gameevent.FieldSequence:
		m.ResetSequence()
		return nil
	case gameevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case gameevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case gameevent.FieldAction:
		m.ResetAction()
		return nil
	case gameevent.FieldMode:
		m.ResetMode()
		return nil
	case gameevent.FieldOperations:
		m.ResetOperations()
		return nil
	case gameevent.FieldTimeLimitSecs:
		m.ResetTimeLimitSecs()
		return nil
	case gameevent.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case gameevent.FieldWrongAnswers:
		m.ResetWrongAnswers()
		return nil
	case gameevent.FieldTotalTimeSecs:
		m.ResetTotalTimeSecs()
		return nil
	case gameevent.FieldQuestionsAnswered:
		m.ResetQuestionsAnswered()
		return nil
	}
	return fmt.Errorf("unknown GameEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GameEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GameEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GameEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GameEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GameEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GameEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GameEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GameEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GameEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GameEvent edge %s", name)
}
