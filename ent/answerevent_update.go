// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/numberninja/numberninja/ent/answerevent"
	"github.com/numberninja/numberninja/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AnswerEventUpdate) SetQuestionIndex(v int) *AnswerEventUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionIndex(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AnswerEventUpdate) AddQuestionIndex(v int) *AnswerEventUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetNumberA sets the "number_a" field.
func (_u *AnswerEventUpdate) SetNumberA(v int) *AnswerEventUpdate {
	_u.mutation.ResetNumberA()
	_u.mutation.SetNumberA(v)
	return _u
}

// SetNillableNumberA sets the "number_a" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableNumberA(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetNumberA(*v)
	}
	return _u
}

// AddNumberA adds value to the "number_a" field.
func (_u *AnswerEventUpdate) AddNumberA(v int) *AnswerEventUpdate {
	_u.mutation.AddNumberA(v)
	return _u
}

// SetNumberB sets the "number_b" field.
func (_u *AnswerEventUpdate) SetNumberB(v int) *AnswerEventUpdate {
	_u.mutation.ResetNumberB()
	_u.mutation.SetNumberB(v)
	return _u
}

// SetNillableNumberB sets the "number_b" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableNumberB(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetNumberB(*v)
	}
	return _u
}

// AddNumberB adds value to the "number_b" field.
func (_u *AnswerEventUpdate) AddNumberB(v int) *AnswerEventUpdate {
	_u.mutation.AddNumberB(v)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *AnswerEventUpdate) SetOperation(v string) *AnswerEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableOperation(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetSelectedAnswer sets the "selected_answer" field.
func (_u *AnswerEventUpdate) SetSelectedAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetSelectedAnswer(v)
	return _u
}

// SetNillableSelectedAnswer sets the "selected_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSelectedAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSelectedAnswer(*v)
	}
	return _u
}

// ClearSelectedAnswer clears the value of the "selected_answer" field.
func (_u *AnswerEventUpdate) ClearSelectedAnswer() *AnswerEventUpdate {
	_u.mutation.ClearSelectedAnswer()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *AnswerEventUpdate) SetTimeSecs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeSecs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *AnswerEventUpdate) AddTimeSecs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetSynthesized sets the "synthesized" field.
func (_u *AnswerEventUpdate) SetSynthesized(v bool) *AnswerEventUpdate {
	_u.mutation.SetSynthesized(v)
	return _u
}

// SetNillableSynthesized sets the "synthesized" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSynthesized(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetSynthesized(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := answerevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumberA(); ok {
		_spec.SetField(answerevent.FieldNumberA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberA(); ok {
		_spec.AddField(answerevent.FieldNumberA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumberB(); ok {
		_spec.SetField(answerevent.FieldNumberB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberB(); ok {
		_spec.AddField(answerevent.FieldNumberB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(answerevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedAnswer(); ok {
		_spec.SetField(answerevent.FieldSelectedAnswer, field.TypeString, value)
	}
	if _u.mutation.SelectedAnswerCleared() {
		_spec.ClearField(answerevent.FieldSelectedAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(answerevent.FieldTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(answerevent.FieldTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Synthesized(); ok {
		_spec.SetField(answerevent.FieldSynthesized, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AnswerEventUpdateOne) SetQuestionIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionIndex(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AnswerEventUpdateOne) AddQuestionIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetNumberA sets the "number_a" field.
func (_u *AnswerEventUpdateOne) SetNumberA(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetNumberA()
	_u.mutation.SetNumberA(v)
	return _u
}

// SetNillableNumberA sets the "number_a" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableNumberA(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetNumberA(*v)
	}
	return _u
}

// AddNumberA adds value to the "number_a" field.
func (_u *AnswerEventUpdateOne) AddNumberA(v int) *AnswerEventUpdateOne {
	_u.mutation.AddNumberA(v)
	return _u
}

// SetNumberB sets the "number_b" field.
func (_u *AnswerEventUpdateOne) SetNumberB(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetNumberB()
	_u.mutation.SetNumberB(v)
	return _u
}

// SetNillableNumberB sets the "number_b" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableNumberB(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetNumberB(*v)
	}
	return _u
}

// AddNumberB adds value to the "number_b" field.
func (_u *AnswerEventUpdateOne) AddNumberB(v int) *AnswerEventUpdateOne {
	_u.mutation.AddNumberB(v)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *AnswerEventUpdateOne) SetOperation(v string) *AnswerEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableOperation(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetSelectedAnswer sets the "selected_answer" field.
func (_u *AnswerEventUpdateOne) SetSelectedAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSelectedAnswer(v)
	return _u
}

// SetNillableSelectedAnswer sets the "selected_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSelectedAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSelectedAnswer(*v)
	}
	return _u
}

// ClearSelectedAnswer clears the value of the "selected_answer" field.
func (_u *AnswerEventUpdateOne) ClearSelectedAnswer() *AnswerEventUpdateOne {
	_u.mutation.ClearSelectedAnswer()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *AnswerEventUpdateOne) SetTimeSecs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeSecs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *AnswerEventUpdateOne) AddTimeSecs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetSynthesized sets the "synthesized" field.
func (_u *AnswerEventUpdateOne) SetSynthesized(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetSynthesized(v)
	return _u
}

// SetNillableSynthesized sets the "synthesized" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSynthesized(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSynthesized(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := answerevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumberA(); ok {
		_spec.SetField(answerevent.FieldNumberA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberA(); ok {
		_spec.AddField(answerevent.FieldNumberA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumberB(); ok {
		_spec.SetField(answerevent.FieldNumberB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberB(); ok {
		_spec.AddField(answerevent.FieldNumberB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(answerevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedAnswer(); ok {
		_spec.SetField(answerevent.FieldSelectedAnswer, field.TypeString, value)
	}
	if _u.mutation.SelectedAnswerCleared() {
		_spec.ClearField(answerevent.FieldSelectedAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(answerevent.FieldTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(answerevent.FieldTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Synthesized(); ok {
		_spec.SetField(answerevent.FieldSynthesized, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
