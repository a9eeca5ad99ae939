// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questline/ent/drillevent"
	"github.com/abhisek/questline/ent/predicate"
)

// DrillEventUpdate is the builder for updating DrillEvent entities.
type DrillEventUpdate struct {
	config
	hooks    []Hook
	mutation *DrillEventMutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdate) Where(ps ...predicate.DrillEvent) *DrillEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDrillID sets the "drill_id" field.
func (_u *DrillEventUpdate) SetDrillID(v string) *DrillEventUpdate {
	_u.mutation.SetDrillID(v)
	return _u
}

// SetNillableDrillID sets the "drill_id" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableDrillID(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetDrillID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *DrillEventUpdate) SetSkillID(v string) *DrillEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableSkillID(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetWeekPlanID sets the "week_plan_id" field.
func (_u *DrillEventUpdate) SetWeekPlanID(v string) *DrillEventUpdate {
	_u.mutation.SetWeekPlanID(v)
	return _u
}

// SetNillableWeekPlanID sets the "week_plan_id" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableWeekPlanID(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetWeekPlanID(*v)
	}
	return _u
}

// ClearWeekPlanID clears the value of the "week_plan_id" field.
func (_u *DrillEventUpdate) ClearWeekPlanID() *DrillEventUpdate {
	_u.mutation.ClearWeekPlanID()
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *DrillEventUpdate) SetDayNumber(v int) *DrillEventUpdate {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableDayNumber(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *DrillEventUpdate) AddDayNumber(v int) *DrillEventUpdate {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *DrillEventUpdate) SetAttemptNumber(v int) *DrillEventUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableAttemptNumber(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *DrillEventUpdate) AddAttemptNumber(v int) *DrillEventUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DrillEventUpdate) SetRetryCount(v int) *DrillEventUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableRetryCount(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DrillEventUpdate) AddRetryCount(v int) *DrillEventUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *DrillEventUpdate) SetTotalMinutes(v int) *DrillEventUpdate {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableTotalMinutes(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *DrillEventUpdate) AddTotalMinutes(v int) *DrillEventUpdate {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DrillEventUpdate) SetPayload(v map[string]interface{}) *DrillEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdate) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdate) check() error {
	if v, ok := _u.mutation.DrillID(); ok {
		if err := drillevent.DrillIDValidator(v); err != nil {
			return &ValidationError{Name: "drill_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := drillevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DrillID(); ok {
		_spec.SetField(drillevent.FieldDrillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(drillevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekPlanID(); ok {
		_spec.SetField(drillevent.FieldWeekPlanID, field.TypeString, value)
	}
	if _u.mutation.WeekPlanIDCleared() {
		_spec.ClearField(drillevent.FieldWeekPlanID, field.TypeString)
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(drillevent.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(drillevent.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(drillevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(drillevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(drillevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(drillevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(drillevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(drillevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(drillevent.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillEventUpdateOne is the builder for updating a single DrillEvent entity.
type DrillEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillEventMutation
}

// SetDrillID sets the "drill_id" field.
func (_u *DrillEventUpdateOne) SetDrillID(v string) *DrillEventUpdateOne {
	_u.mutation.SetDrillID(v)
	return _u
}

// SetNillableDrillID sets the "drill_id" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableDrillID(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetDrillID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *DrillEventUpdateOne) SetSkillID(v string) *DrillEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableSkillID(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetWeekPlanID sets the "week_plan_id" field.
func (_u *DrillEventUpdateOne) SetWeekPlanID(v string) *DrillEventUpdateOne {
	_u.mutation.SetWeekPlanID(v)
	return _u
}

// SetNillableWeekPlanID sets the "week_plan_id" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableWeekPlanID(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetWeekPlanID(*v)
	}
	return _u
}

// ClearWeekPlanID clears the value of the "week_plan_id" field.
func (_u *DrillEventUpdateOne) ClearWeekPlanID() *DrillEventUpdateOne {
	_u.mutation.ClearWeekPlanID()
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *DrillEventUpdateOne) SetDayNumber(v int) *DrillEventUpdateOne {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableDayNumber(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *DrillEventUpdateOne) AddDayNumber(v int) *DrillEventUpdateOne {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *DrillEventUpdateOne) SetAttemptNumber(v int) *DrillEventUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableAttemptNumber(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *DrillEventUpdateOne) AddAttemptNumber(v int) *DrillEventUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DrillEventUpdateOne) SetRetryCount(v int) *DrillEventUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableRetryCount(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DrillEventUpdateOne) AddRetryCount(v int) *DrillEventUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *DrillEventUpdateOne) SetTotalMinutes(v int) *DrillEventUpdateOne {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableTotalMinutes(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *DrillEventUpdateOne) AddTotalMinutes(v int) *DrillEventUpdateOne {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DrillEventUpdateOne) SetPayload(v map[string]interface{}) *DrillEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdateOne) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdateOne) Where(ps ...predicate.DrillEvent) *DrillEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillEventUpdateOne) Select(field string, fields ...string) *DrillEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DrillEvent entity.
func (_u *DrillEventUpdateOne) Save(ctx context.Context) (*DrillEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdateOne) SaveX(ctx context.Context) *DrillEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdateOne) check() error {
	if v, ok := _u.mutation.DrillID(); ok {
		if err := drillevent.DrillIDValidator(v); err != nil {
			return &ValidationError{Name: "drill_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := drillevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdateOne) sqlSave(ctx context.Context) (_node *DrillEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DrillEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drillevent.FieldID)
		for _, f := range fields {
			if !drillevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drillevent.FieldID {
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
	if value, ok := _u.mutation.DrillID(); ok {
		_spec.SetField(drillevent.FieldDrillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(drillevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekPlanID(); ok {
		_spec.SetField(drillevent.FieldWeekPlanID, field.TypeString, value)
	}
	if _u.mutation.WeekPlanIDCleared() {
		_spec.ClearField(drillevent.FieldWeekPlanID, field.TypeString)
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(drillevent.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(drillevent.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(drillevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(drillevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(drillevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(drillevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(drillevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(drillevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(drillevent.FieldPayload, field.TypeJSON, value)
	}
	_node = &DrillEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
