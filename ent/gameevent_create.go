// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/numberninja/numberninja/ent/gameevent"
)

// GameEventCreate is the builder for creating a GameEvent entity.
type GameEventCreate struct {
	config
	mutation *GameEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GameEventCreate) SetSequence(v int64) *GameEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GameEventCreate) SetTimestamp(v time.Time) *GameEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableTimestamp(v *time.Time) *GameEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *GameEventCreate) SetSessionID(v string) *GameEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *GameEventCreate) SetAction(v string) *GameEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *GameEventCreate) SetMode(v string) *GameEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetOperations sets the "operations" field.
func (_c *GameEventCreate) SetOperations(v []string) *GameEventCreate {
	_c.mutation.SetOperations(v)
	return _c
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (_c *GameEventCreate) SetTimeLimitSecs(v int) *GameEventCreate {
	_c.mutation.SetTimeLimitSecs(v)
	return _c
}

// SetNillableTimeLimitSecs sets the "time_limit_secs" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableTimeLimitSecs(v *int) *GameEventCreate {
	if v != nil {
		_c.SetTimeLimitSecs(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *GameEventCreate) SetCorrectAnswers(v int) *GameEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableCorrectAnswers(v *int) *GameEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetWrongAnswers sets the "wrong_answers" field.
func (_c *GameEventCreate) SetWrongAnswers(v int) *GameEventCreate {
	_c.mutation.SetWrongAnswers(v)
	return _c
}

// SetNillableWrongAnswers sets the "wrong_answers" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableWrongAnswers(v *int) *GameEventCreate {
	if v != nil {
		_c.SetWrongAnswers(*v)
	}
	return _c
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_c *GameEventCreate) SetTotalTimeSecs(v int) *GameEventCreate {
	_c.mutation.SetTotalTimeSecs(v)
	return _c
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableTotalTimeSecs(v *int) *GameEventCreate {
	if v != nil {
		_c.SetTotalTimeSecs(*v)
	}
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *GameEventCreate) SetQuestionsAnswered(v int) *GameEventCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableQuestionsAnswered(v *int) *GameEventCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// Mutation returns the GameEventMutation object of the builder.
func (_c *GameEventCreate) Mutation() *GameEventMutation {
	return _c.mutation
}

// Save creates the GameEvent in the database.
func (_c *GameEventCreate) Save(ctx context.Context) (*GameEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameEventCreate) SaveX(ctx context.Context) *GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gameevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TimeLimitSecs(); !ok {
		v := gameevent.DefaultTimeLimitSecs
		_c.mutation.SetTimeLimitSecs(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := gameevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.WrongAnswers(); !ok {
		v := gameevent.DefaultWrongAnswers
		_c.mutation.SetWrongAnswers(v)
	}
	if _, ok := _c.mutation.TotalTimeSecs(); !ok {
		v := gameevent.DefaultTotalTimeSecs
		_c.mutation.SetTotalTimeSecs(v)
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := gameevent.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GameEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GameEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GameEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := gameevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "GameEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := gameevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "GameEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "GameEvent.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := gameevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "GameEvent.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Operations(); !ok {
		return &ValidationError{Name: "operations", err: errors.New(`ent: missing required field "GameEvent.operations"`)}
	}
	if _, ok := _c.mutation.TimeLimitSecs(); !ok {
		return &ValidationError{Name: "time_limit_secs", err: errors.New(`ent: missing required field "GameEvent.time_limit_secs"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "GameEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.WrongAnswers(); !ok {
		return &ValidationError{Name: "wrong_answers", err: errors.New(`ent: missing required field "GameEvent.wrong_answers"`)}
	}
	if _, ok := _c.mutation.TotalTimeSecs(); !ok {
		return &ValidationError{Name: "total_time_secs", err: errors.New(`ent: missing required field "GameEvent.total_time_secs"`)}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "GameEvent.questions_answered"`)}
	}
	return nil
}

func (_c *GameEventCreate) sqlSave(ctx context.Context) (*GameEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameEventCreate) createSpec() (*GameEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GameEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gameevent.Table, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gameevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gameevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(gameevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(gameevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(gameevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Operations(); ok {
		_spec.SetField(gameevent.FieldOperations, field.TypeJSON, value)
		_node.Operations = value
	}
	if value, ok := _c.mutation.TimeLimitSecs(); ok {
		_spec.SetField(gameevent.FieldTimeLimitSecs, field.TypeInt, value)
		_node.TimeLimitSecs = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(gameevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.WrongAnswers(); ok {
		_spec.SetField(gameevent.FieldWrongAnswers, field.TypeInt, value)
		_node.WrongAnswers = value
	}
	if value, ok := _c.mutation.TotalTimeSecs(); ok {
		_spec.SetField(gameevent.FieldTotalTimeSecs, field.TypeInt, value)
		_node.TotalTimeSecs = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(gameevent.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	return _node, _spec
}

// GameEventCreateBulk is the builder for creating many GameEvent entities in bulk.
type GameEventCreateBulk struct {
	config
	err      error
	builders []*GameEventCreate
}

// Save creates the GameEvent entities in the database.
func (_c *GameEventCreateBulk) Save(ctx context.Context) ([]*GameEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GameEventCreateBulk) SaveX(ctx context.Context) []*GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
