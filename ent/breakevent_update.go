// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pacelab/pacer/ent/breakevent"
	"github.com/pacelab/pacer/ent/predicate"
)

// BreakEventUpdate is the builder for updating BreakEvent entities.
type BreakEventUpdate struct {
	config
	hooks    []Hook
	mutation *BreakEventMutation
}

// Where appends a list predicates to the BreakEventUpdate builder.
func (_u *BreakEventUpdate) Where(ps ...predicate.BreakEvent) *BreakEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *BreakEventUpdate) SetSessionID(v string) *BreakEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableSessionID(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetBreakType sets the "break_type" field.
func (_u *BreakEventUpdate) SetBreakType(v string) *BreakEventUpdate {
	_u.mutation.SetBreakType(v)
	return _u
}

// SetNillableBreakType sets the "break_type" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableBreakType(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetBreakType(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *BreakEventUpdate) SetUrgency(v string) *BreakEventUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableUrgency(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *BreakEventUpdate) SetReason(v string) *BreakEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableReason(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFatigueLevel sets the "fatigue_level" field.
func (_u *BreakEventUpdate) SetFatigueLevel(v float64) *BreakEventUpdate {
	_u.mutation.ResetFatigueLevel()
	_u.mutation.SetFatigueLevel(v)
	return _u
}

// SetNillableFatigueLevel sets the "fatigue_level" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableFatigueLevel(v *float64) *BreakEventUpdate {
	if v != nil {
		_u.SetFatigueLevel(*v)
	}
	return _u
}

// AddFatigueLevel adds value to the "fatigue_level" field.
func (_u *BreakEventUpdate) AddFatigueLevel(v float64) *BreakEventUpdate {
	_u.mutation.AddFatigueLevel(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *BreakEventUpdate) SetDurationMs(v int64) *BreakEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableDurationMs(v *int64) *BreakEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *BreakEventUpdate) AddDurationMs(v int64) *BreakEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *BreakEventUpdate) SetCompleted(v bool) *BreakEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableCompleted(v *bool) *BreakEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetRecoveryScore sets the "recovery_score" field.
func (_u *BreakEventUpdate) SetRecoveryScore(v float64) *BreakEventUpdate {
	_u.mutation.ResetRecoveryScore()
	_u.mutation.SetRecoveryScore(v)
	return _u
}

// SetNillableRecoveryScore sets the "recovery_score" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableRecoveryScore(v *float64) *BreakEventUpdate {
	if v != nil {
		_u.SetRecoveryScore(*v)
	}
	return _u
}

// AddRecoveryScore adds value to the "recovery_score" field.
func (_u *BreakEventUpdate) AddRecoveryScore(v float64) *BreakEventUpdate {
	_u.mutation.AddRecoveryScore(v)
	return _u
}

// SetImprovement sets the "improvement" field.
func (_u *BreakEventUpdate) SetImprovement(v float64) *BreakEventUpdate {
	_u.mutation.ResetImprovement()
	_u.mutation.SetImprovement(v)
	return _u
}

// SetNillableImprovement sets the "improvement" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableImprovement(v *float64) *BreakEventUpdate {
	if v != nil {
		_u.SetImprovement(*v)
	}
	return _u
}

// AddImprovement adds value to the "improvement" field.
func (_u *BreakEventUpdate) AddImprovement(v float64) *BreakEventUpdate {
	_u.mutation.AddImprovement(v)
	return _u
}

// Mutation returns the BreakEventMutation object of the builder.
func (_u *BreakEventUpdate) Mutation() *BreakEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BreakEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BreakEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BreakEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BreakEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BreakEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := breakevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BreakType(); ok {
		if err := breakevent.BreakTypeValidator(v); err != nil {
			return &ValidationError{Name: "break_type", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.break_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := breakevent.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.urgency": %w`, err)}
		}
	}
	return nil
}

func (_u *BreakEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(breakevent.Table, breakevent.Columns, sqlgraph.NewFieldSpec(breakevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(breakevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BreakType(); ok {
		_spec.SetField(breakevent.FieldBreakType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(breakevent.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(breakevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FatigueLevel(); ok {
		_spec.SetField(breakevent.FieldFatigueLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFatigueLevel(); ok {
		_spec.AddField(breakevent.FieldFatigueLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(breakevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(breakevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(breakevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecoveryScore(); ok {
		_spec.SetField(breakevent.FieldRecoveryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecoveryScore(); ok {
		_spec.AddField(breakevent.FieldRecoveryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Improvement(); ok {
		_spec.SetField(breakevent.FieldImprovement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImprovement(); ok {
		_spec.AddField(breakevent.FieldImprovement, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{breakevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BreakEventUpdateOne is the builder for updating a single BreakEvent entity.
type BreakEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BreakEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *BreakEventUpdateOne) SetSessionID(v string) *BreakEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableSessionID(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetBreakType sets the "break_type" field.
func (_u *BreakEventUpdateOne) SetBreakType(v string) *BreakEventUpdateOne {
	_u.mutation.SetBreakType(v)
	return _u
}

// SetNillableBreakType sets the "break_type" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableBreakType(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetBreakType(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *BreakEventUpdateOne) SetUrgency(v string) *BreakEventUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableUrgency(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *BreakEventUpdateOne) SetReason(v string) *BreakEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableReason(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFatigueLevel sets the "fatigue_level" field.
func (_u *BreakEventUpdateOne) SetFatigueLevel(v float64) *BreakEventUpdateOne {
	_u.mutation.ResetFatigueLevel()
	_u.mutation.SetFatigueLevel(v)
	return _u
}

// SetNillableFatigueLevel sets the "fatigue_level" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableFatigueLevel(v *float64) *BreakEventUpdateOne {
	if v != nil {
		_u.SetFatigueLevel(*v)
	}
	return _u
}

// AddFatigueLevel adds value to the "fatigue_level" field.
func (_u *BreakEventUpdateOne) AddFatigueLevel(v float64) *BreakEventUpdateOne {
	_u.mutation.AddFatigueLevel(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *BreakEventUpdateOne) SetDurationMs(v int64) *BreakEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableDurationMs(v *int64) *BreakEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *BreakEventUpdateOne) AddDurationMs(v int64) *BreakEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *BreakEventUpdateOne) SetCompleted(v bool) *BreakEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableCompleted(v *bool) *BreakEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetRecoveryScore sets the "recovery_score" field.
func (_u *BreakEventUpdateOne) SetRecoveryScore(v float64) *BreakEventUpdateOne {
	_u.mutation.ResetRecoveryScore()
	_u.mutation.SetRecoveryScore(v)
	return _u
}

// SetNillableRecoveryScore sets the "recovery_score" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableRecoveryScore(v *float64) *BreakEventUpdateOne {
	if v != nil {
		_u.SetRecoveryScore(*v)
	}
	return _u
}

// AddRecoveryScore adds value to the "recovery_score" field.
func (_u *BreakEventUpdateOne) AddRecoveryScore(v float64) *BreakEventUpdateOne {
	_u.mutation.AddRecoveryScore(v)
	return _u
}

// SetImprovement sets the "improvement" field.
func (_u *BreakEventUpdateOne) SetImprovement(v float64) *BreakEventUpdateOne {
	_u.mutation.ResetImprovement()
	_u.mutation.SetImprovement(v)
	return _u
}

// SetNillableImprovement sets the "improvement" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableImprovement(v *float64) *BreakEventUpdateOne {
	if v != nil {
		_u.SetImprovement(*v)
	}
	return _u
}

// AddImprovement adds value to the "improvement" field.
func (_u *BreakEventUpdateOne) AddImprovement(v float64) *BreakEventUpdateOne {
	_u.mutation.AddImprovement(v)
	return _u
}

// Mutation returns the BreakEventMutation object of the builder.
func (_u *BreakEventUpdateOne) Mutation() *BreakEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BreakEventUpdate builder.
func (_u *BreakEventUpdateOne) Where(ps ...predicate.BreakEvent) *BreakEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BreakEventUpdateOne) Select(field string, fields ...string) *BreakEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BreakEvent entity.
func (_u *BreakEventUpdateOne) Save(ctx context.Context) (*BreakEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BreakEventUpdateOne) SaveX(ctx context.Context) *BreakEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BreakEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BreakEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BreakEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := breakevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BreakType(); ok {
		if err := breakevent.BreakTypeValidator(v); err != nil {
			return &ValidationError{Name: "break_type", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.break_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := breakevent.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.urgency": %w`, err)}
		}
	}
	return nil
}

func (_u *BreakEventUpdateOne) sqlSave(ctx context.Context) (_node *BreakEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(breakevent.Table, breakevent.Columns, sqlgraph.NewFieldSpec(breakevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BreakEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, breakevent.FieldID)
		for _, f := range fields {
			if !breakevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != breakevent.FieldID {
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
		_spec.SetField(breakevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BreakType(); ok {
		_spec.SetField(breakevent.FieldBreakType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(breakevent.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(breakevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FatigueLevel(); ok {
		_spec.SetField(breakevent.FieldFatigueLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFatigueLevel(); ok {
		_spec.AddField(breakevent.FieldFatigueLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(breakevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(breakevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(breakevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecoveryScore(); ok {
		_spec.SetField(breakevent.FieldRecoveryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecoveryScore(); ok {
		_spec.AddField(breakevent.FieldRecoveryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Improvement(); ok {
		_spec.SetField(breakevent.FieldImprovement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImprovement(); ok {
		_spec.AddField(breakevent.FieldImprovement, field.TypeFloat64, value)
	}
	_node = &BreakEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{breakevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
