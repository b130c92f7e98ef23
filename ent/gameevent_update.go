// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/numberninja/numberninja/ent/gameevent"
	"github.com/numberninja/numberninja/ent/predicate"
)

// GameEventUpdate is the builder for updating GameEvent entities.
type GameEventUpdate struct {
	config
	hooks    []Hook
	mutation *GameEventMutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdate) Where(ps ...predicate.GameEvent) *GameEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GameEventUpdate) SetSessionID(v string) *GameEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableSessionID(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *GameEventUpdate) SetAction(v string) *GameEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableAction(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *GameEventUpdate) SetMode(v string) *GameEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableMode(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetOperations sets the "operations" field.
func (_u *GameEventUpdate) SetOperations(v []string) *GameEventUpdate {
	_u.mutation.SetOperations(v)
	return _u
}

// AppendOperations appends value to the "operations" field.
func (_u *GameEventUpdate) AppendOperations(v []string) *GameEventUpdate {
	_u.mutation.AppendOperations(v)
	return _u
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (_u *GameEventUpdate) SetTimeLimitSecs(v int) *GameEventUpdate {
	_u.mutation.ResetTimeLimitSecs()
	_u.mutation.SetTimeLimitSecs(v)
	return _u
}

// SetNillableTimeLimitSecs sets the "time_limit_secs" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableTimeLimitSecs(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetTimeLimitSecs(*v)
	}
	return _u
}

// AddTimeLimitSecs adds value to the "time_limit_secs" field.
func (_u *GameEventUpdate) AddTimeLimitSecs(v int) *GameEventUpdate {
	_u.mutation.AddTimeLimitSecs(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *GameEventUpdate) SetCorrectAnswers(v int) *GameEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableCorrectAnswers(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *GameEventUpdate) AddCorrectAnswers(v int) *GameEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetWrongAnswers sets the "wrong_answers" field.
func (_u *GameEventUpdate) SetWrongAnswers(v int) *GameEventUpdate {
	_u.mutation.ResetWrongAnswers()
	_u.mutation.SetWrongAnswers(v)
	return _u
}

// SetNillableWrongAnswers sets the "wrong_answers" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableWrongAnswers(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetWrongAnswers(*v)
	}
	return _u
}

// AddWrongAnswers adds value to the "wrong_answers" field.
func (_u *GameEventUpdate) AddWrongAnswers(v int) *GameEventUpdate {
	_u.mutation.AddWrongAnswers(v)
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *GameEventUpdate) SetTotalTimeSecs(v int) *GameEventUpdate {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableTotalTimeSecs(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *GameEventUpdate) AddTotalTimeSecs(v int) *GameEventUpdate {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *GameEventUpdate) SetQuestionsAnswered(v int) *GameEventUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableQuestionsAnswered(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *GameEventUpdate) AddQuestionsAnswered(v int) *GameEventUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdate) Mutation() *GameEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gameevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := gameevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "GameEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := gameevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "GameEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gameevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(gameevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(gameevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operations(); ok {
		_spec.SetField(gameevent.FieldOperations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOperations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gameevent.FieldOperations, value)
		})
	}
	if value, ok := _u.mutation.TimeLimitSecs(); ok {
		_spec.SetField(gameevent.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitSecs(); ok {
		_spec.AddField(gameevent.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(gameevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(gameevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongAnswers(); ok {
		_spec.SetField(gameevent.FieldWrongAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongAnswers(); ok {
		_spec.AddField(gameevent.FieldWrongAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(gameevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(gameevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(gameevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(gameevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameEventUpdateOne is the builder for updating a single GameEvent entity.
type GameEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *GameEventUpdateOne) SetSessionID(v string) *GameEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableSessionID(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *GameEventUpdateOne) SetAction(v string) *GameEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableAction(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *GameEventUpdateOne) SetMode(v string) *GameEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableMode(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetOperations sets the "operations" field.
func (_u *GameEventUpdateOne) SetOperations(v []string) *GameEventUpdateOne {
	_u.mutation.SetOperations(v)
	return _u
}

// AppendOperations appends value to the "operations" field.
func (_u *GameEventUpdateOne) AppendOperations(v []string) *GameEventUpdateOne {
	_u.mutation.AppendOperations(v)
	return _u
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (_u *GameEventUpdateOne) SetTimeLimitSecs(v int) *GameEventUpdateOne {
	_u.mutation.ResetTimeLimitSecs()
	_u.mutation.SetTimeLimitSecs(v)
	return _u
}

// SetNillableTimeLimitSecs sets the "time_limit_secs" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableTimeLimitSecs(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetTimeLimitSecs(*v)
	}
	return _u
}

// AddTimeLimitSecs adds value to the "time_limit_secs" field.
func (_u *GameEventUpdateOne) AddTimeLimitSecs(v int) *GameEventUpdateOne {
	_u.mutation.AddTimeLimitSecs(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *GameEventUpdateOne) SetCorrectAnswers(v int) *GameEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableCorrectAnswers(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *GameEventUpdateOne) AddCorrectAnswers(v int) *GameEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetWrongAnswers sets the "wrong_answers" field.
func (_u *GameEventUpdateOne) SetWrongAnswers(v int) *GameEventUpdateOne {
	_u.mutation.ResetWrongAnswers()
	_u.mutation.SetWrongAnswers(v)
	return _u
}

// SetNillableWrongAnswers sets the "wrong_answers" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableWrongAnswers(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetWrongAnswers(*v)
	}
	return _u
}

// AddWrongAnswers adds value to the "wrong_answers" field.
func (_u *GameEventUpdateOne) AddWrongAnswers(v int) *GameEventUpdateOne {
	_u.mutation.AddWrongAnswers(v)
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *GameEventUpdateOne) SetTotalTimeSecs(v int) *GameEventUpdateOne {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableTotalTimeSecs(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *GameEventUpdateOne) AddTotalTimeSecs(v int) *GameEventUpdateOne {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *GameEventUpdateOne) SetQuestionsAnswered(v int) *GameEventUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableQuestionsAnswered(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *GameEventUpdateOne) AddQuestionsAnswered(v int) *GameEventUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdateOne) Mutation() *GameEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdateOne) Where(ps ...predicate.GameEvent) *GameEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameEventUpdateOne) Select(field string, fields ...string) *GameEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameEvent entity.
func (_u *GameEventUpdateOne) Save(ctx context.Context) (*GameEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdateOne) SaveX(ctx context.Context) *GameEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gameevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := gameevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "GameEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := gameevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "GameEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdateOne) sqlSave(ctx context.Context) (_node *GameEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gameevent.FieldID)
		for _, f := range fields {
			if !gameevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gameevent.FieldID {
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
		_spec.SetField(gameevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(gameevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(gameevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operations(); ok {
		_spec.SetField(gameevent.FieldOperations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOperations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gameevent.FieldOperations, value)
		})
	}
	if value, ok := _u.mutation.TimeLimitSecs(); ok {
		_spec.SetField(gameevent.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitSecs(); ok {
		_spec.AddField(gameevent.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(gameevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(gameevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongAnswers(); ok {
		_spec.SetField(gameevent.FieldWrongAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongAnswers(); ok {
		_spec.AddField(gameevent.FieldWrongAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(gameevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(gameevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(gameevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(gameevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	_node = &GameEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
