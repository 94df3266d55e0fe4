// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pacelab/pacer/ent/breakevent"
)

// BreakEventCreate is the builder for creating a BreakEvent entity.
type BreakEventCreate struct {
	config
	mutation *BreakEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BreakEventCreate) SetSequence(v int64) *BreakEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BreakEventCreate) SetTimestamp(v time.Time) *BreakEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BreakEventCreate) SetNillableTimestamp(v *time.Time) *BreakEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *BreakEventCreate) SetSessionID(v string) *BreakEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetBreakType sets the "break_type" field.
func (_c *BreakEventCreate) SetBreakType(v string) *BreakEventCreate {
	_c.mutation.SetBreakType(v)
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *BreakEventCreate) SetUrgency(v string) *BreakEventCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *BreakEventCreate) SetReason(v string) *BreakEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetFatigueLevel sets the "fatigue_level" field.
func (_c *BreakEventCreate) SetFatigueLevel(v float64) *BreakEventCreate {
	_c.mutation.SetFatigueLevel(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *BreakEventCreate) SetDurationMs(v int64) *BreakEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *BreakEventCreate) SetCompleted(v bool) *BreakEventCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetRecoveryScore sets the "recovery_score" field.
func (_c *BreakEventCreate) SetRecoveryScore(v float64) *BreakEventCreate {
	_c.mutation.SetRecoveryScore(v)
	return _c
}

// SetImprovement sets the "improvement" field.
func (_c *BreakEventCreate) SetImprovement(v float64) *BreakEventCreate {
	_c.mutation.SetImprovement(v)
	return _c
}

// Mutation returns the BreakEventMutation object of the builder.
func (_c *BreakEventCreate) Mutation() *BreakEventMutation {
	return _c.mutation
}

// Save creates the BreakEvent in the database.
func (_c *BreakEventCreate) Save(ctx context.Context) (*BreakEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BreakEventCreate) SaveX(ctx context.Context) *BreakEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BreakEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BreakEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BreakEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := breakevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BreakEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BreakEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BreakEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "BreakEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := breakevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BreakType(); !ok {
		return &ValidationError{Name: "break_type", err: errors.New(`ent: missing required field "BreakEvent.break_type"`)}
	}
	if v, ok := _c.mutation.BreakType(); ok {
		if err := breakevent.BreakTypeValidator(v); err != nil {
			return &ValidationError{Name: "break_type", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.break_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`ent: missing required field "BreakEvent.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := breakevent.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "BreakEvent.reason"`)}
	}
	if _, ok := _c.mutation.FatigueLevel(); !ok {
		return &ValidationError{Name: "fatigue_level", err: errors.New(`ent: missing required field "BreakEvent.fatigue_level"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "BreakEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "BreakEvent.completed"`)}
	}
	if _, ok := _c.mutation.RecoveryScore(); !ok {
		return &ValidationError{Name: "recovery_score", err: errors.New(`ent: missing required field "BreakEvent.recovery_score"`)}
	}
	if _, ok := _c.mutation.Improvement(); !ok {
		return &ValidationError{Name: "improvement", err: errors.New(`ent: missing required field "BreakEvent.improvement"`)}
	}
	return nil
}

func (_c *BreakEventCreate) sqlSave(ctx context.Context) (*BreakEvent, error) {
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

func (_c *BreakEventCreate) createSpec() (*BreakEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BreakEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(breakevent.Table, sqlgraph.NewFieldSpec(breakevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(breakevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(breakevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(breakevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.BreakType(); ok {
		_spec.SetField(breakevent.FieldBreakType, field.TypeString, value)
		_node.BreakType = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(breakevent.FieldUrgency, field.TypeString, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(breakevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.FatigueLevel(); ok {
		_spec.SetField(breakevent.FieldFatigueLevel, field.TypeFloat64, value)
		_node.FatigueLevel = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(breakevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(breakevent.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.RecoveryScore(); ok {
		_spec.SetField(breakevent.FieldRecoveryScore, field.TypeFloat64, value)
		_node.RecoveryScore = value
	}
	if value, ok := _c.mutation.Improvement(); ok {
		_spec.SetField(breakevent.FieldImprovement, field.TypeFloat64, value)
		_node.Improvement = value
	}
	return _node, _spec
}

// BreakEventCreateBulk is the builder for creating many BreakEvent entities in bulk.
type BreakEventCreateBulk struct {
	config
	err      error
	builders []*BreakEventCreate
}

// Save creates the BreakEvent entities in the database.
func (_c *BreakEventCreateBulk) Save(ctx context.Context) ([]*BreakEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BreakEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BreakEventMutation)
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
func (_c *BreakEventCreateBulk) SaveX(ctx context.Context) []*BreakEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BreakEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BreakEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
