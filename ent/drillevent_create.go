// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questline/ent/drillevent"
)

// DrillEventCreate is the builder for creating a DrillEvent entity.
type DrillEventCreate struct {
	config
	mutation *DrillEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *DrillEventCreate) SetSequence(v int64) *DrillEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DrillEventCreate) SetTimestamp(v time.Time) *DrillEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableTimestamp(v *time.Time) *DrillEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDrillID sets the "drill_id" field.
func (_c *DrillEventCreate) SetDrillID(v string) *DrillEventCreate {
	_c.mutation.SetDrillID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *DrillEventCreate) SetSkillID(v string) *DrillEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetWeekPlanID sets the "week_plan_id" field.
func (_c *DrillEventCreate) SetWeekPlanID(v string) *DrillEventCreate {
	_c.mutation.SetWeekPlanID(v)
	return _c
}

// SetNillableWeekPlanID sets the "week_plan_id" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableWeekPlanID(v *string) *DrillEventCreate {
	if v != nil {
		_c.SetWeekPlanID(*v)
	}
	return _c
}

// SetDayNumber sets the "day_number" field.
func (_c *DrillEventCreate) SetDayNumber(v int) *DrillEventCreate {
	_c.mutation.SetDayNumber(v)
	return _c
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableDayNumber(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetDayNumber(*v)
	}
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *DrillEventCreate) SetAttemptNumber(v int) *DrillEventCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableAttemptNumber(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetAttemptNumber(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *DrillEventCreate) SetRetryCount(v int) *DrillEventCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableRetryCount(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetTotalMinutes sets the "total_minutes" field.
func (_c *DrillEventCreate) SetTotalMinutes(v int) *DrillEventCreate {
	_c.mutation.SetTotalMinutes(v)
	return _c
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableTotalMinutes(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetTotalMinutes(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *DrillEventCreate) SetPayload(v map[string]interface{}) *DrillEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// Mutation returns the DrillEventMutation object of the builder.
func (_c *DrillEventCreate) Mutation() *DrillEventMutation {
	return _c.mutation
}

// Save creates the DrillEvent in the database.
func (_c *DrillEventCreate) Save(ctx context.Context) (*DrillEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrillEventCreate) SaveX(ctx context.Context) *DrillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrillEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := drillevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DayNumber(); !ok {
		v := drillevent.DefaultDayNumber
		_c.mutation.SetDayNumber(v)
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		v := drillevent.DefaultAttemptNumber
		_c.mutation.SetAttemptNumber(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := drillevent.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		v := drillevent.DefaultTotalMinutes
		_c.mutation.SetTotalMinutes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrillEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DrillEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DrillEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.DrillID(); !ok {
		return &ValidationError{Name: "drill_id", err: errors.New(`ent: missing required field "DrillEvent.drill_id"`)}
	}
	if v, ok := _c.mutation.DrillID(); ok {
		if err := drillevent.DrillIDValidator(v); err != nil {
			return &ValidationError{Name: "drill_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "DrillEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := drillevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DayNumber(); !ok {
		return &ValidationError{Name: "day_number", err: errors.New(`ent: missing required field "DrillEvent.day_number"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "DrillEvent.attempt_number"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "DrillEvent.retry_count"`)}
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		return &ValidationError{Name: "total_minutes", err: errors.New(`ent: missing required field "DrillEvent.total_minutes"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "DrillEvent.payload"`)}
	}
	return nil
}

func (_c *DrillEventCreate) sqlSave(ctx context.Context) (*DrillEvent, error) {
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

func (_c *DrillEventCreate) createSpec() (*DrillEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DrillEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drillevent.Table, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(drillevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(drillevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.DrillID(); ok {
		_spec.SetField(drillevent.FieldDrillID, field.TypeString, value)
		_node.DrillID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(drillevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.WeekPlanID(); ok {
		_spec.SetField(drillevent.FieldWeekPlanID, field.TypeString, value)
		_node.WeekPlanID = value
	}
	if value, ok := _c.mutation.DayNumber(); ok {
		_spec.SetField(drillevent.FieldDayNumber, field.TypeInt, value)
		_node.DayNumber = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(drillevent.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(drillevent.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.TotalMinutes(); ok {
		_spec.SetField(drillevent.FieldTotalMinutes, field.TypeInt, value)
		_node.TotalMinutes = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(drillevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DrillEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DrillEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *DrillEventCreate) OnConflict(opts ...sql.ConflictOption) *DrillEventUpsertOne {
	_c.conflict = opts
	return &DrillEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DrillEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DrillEventCreate) OnConflictColumns(columns ...string) *DrillEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DrillEventUpsertOne{
		create: _c,
	}
}

type (
	// DrillEventUpsertOne is the builder for "upsert"-ing
	//  one DrillEvent node.
	DrillEventUpsertOne struct {
		create *DrillEventCreate
	}

	// DrillEventUpsert is the "OnConflict" setter.
	DrillEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetDrillID sets the "drill_id" field.
func (u *DrillEventUpsert) SetDrillID(v string) *DrillEventUpsert {
	u.Set(drillevent.FieldDrillID, v)
	return u
}

// UpdateDrillID sets the "drill_id" field to the value that was provided on create.
func (u *DrillEventUpsert) UpdateDrillID() *DrillEventUpsert {
	u.SetExcluded(drillevent.FieldDrillID)
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *DrillEventUpsert) SetSkillID(v string) *DrillEventUpsert {
	u.Set(drillevent.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *DrillEventUpsert) UpdateSkillID() *DrillEventUpsert {
	u.SetExcluded(drillevent.FieldSkillID)
	return u
}

// SetWeekPlanID sets the "week_plan_id" field.
func (u *DrillEventUpsert) SetWeekPlanID(v string) *DrillEventUpsert {
	u.Set(drillevent.FieldWeekPlanID, v)
	return u
}

// UpdateWeekPlanID sets the "week_plan_id" field to the value that was provided on create.
func (u *DrillEventUpsert) UpdateWeekPlanID() *DrillEventUpsert {
	u.SetExcluded(drillevent.FieldWeekPlanID)
	return u
}

// ClearWeekPlanID clears the value of the "week_plan_id" field.
func (u *DrillEventUpsert) ClearWeekPlanID() *DrillEventUpsert {
	u.SetNull(drillevent.FieldWeekPlanID)
	return u
}

// SetDayNumber sets the "day_number" field.
func (u *DrillEventUpsert) SetDayNumber(v int) *DrillEventUpsert {
	u.Set(drillevent.FieldDayNumber, v)
	return u
}

// UpdateDayNumber sets the "day_number" field to the value that was provided on create.
func (u *DrillEventUpsert) UpdateDayNumber() *DrillEventUpsert {
	u.SetExcluded(drillevent.FieldDayNumber)
	return u
}

// AddDayNumber adds v to the "day_number" field.
func (u *DrillEventUpsert) AddDayNumber(v int) *DrillEventUpsert {
	u.Add(drillevent.FieldDayNumber, v)
	return u
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *DrillEventUpsert) SetAttemptNumber(v int) *DrillEventUpsert {
	u.Set(drillevent.FieldAttemptNumber, v)
	return u
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *DrillEventUpsert) UpdateAttemptNumber() *DrillEventUpsert {
	u.SetExcluded(drillevent.FieldAttemptNumber)
	return u
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *DrillEventUpsert) AddAttemptNumber(v int) *DrillEventUpsert {
	u.Add(drillevent.FieldAttemptNumber, v)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *DrillEventUpsert) SetRetryCount(v int) *DrillEventUpsert {
	u.Set(drillevent.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *DrillEventUpsert) UpdateRetryCount() *DrillEventUpsert {
	u.SetExcluded(drillevent.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *DrillEventUpsert) AddRetryCount(v int) *DrillEventUpsert {
	u.Add(drillevent.FieldRetryCount, v)
	return u
}

// SetTotalMinutes sets the "total_minutes" field.
func (u *DrillEventUpsert) SetTotalMinutes(v int) *DrillEventUpsert {
	u.Set(drillevent.FieldTotalMinutes, v)
	return u
}

// UpdateTotalMinutes sets the "total_minutes" field to the value that was provided on create.
func (u *DrillEventUpsert) UpdateTotalMinutes() *DrillEventUpsert {
	u.SetExcluded(drillevent.FieldTotalMinutes)
	return u
}

// AddTotalMinutes adds v to the "total_minutes" field.
func (u *DrillEventUpsert) AddTotalMinutes(v int) *DrillEventUpsert {
	u.Add(drillevent.FieldTotalMinutes, v)
	return u
}

// SetPayload sets the "payload" field.
func (u *DrillEventUpsert) SetPayload(v map[string]interface{}) *DrillEventUpsert {
	u.Set(drillevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DrillEventUpsert) UpdatePayload() *DrillEventUpsert {
	u.SetExcluded(drillevent.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DrillEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DrillEventUpsertOne) UpdateNewValues() *DrillEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(drillevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(drillevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DrillEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DrillEventUpsertOne) Ignore() *DrillEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DrillEventUpsertOne) DoNothing() *DrillEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DrillEventCreate.OnConflict
// documentation for more info.
func (u *DrillEventUpsertOne) Update(set func(*DrillEventUpsert)) *DrillEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DrillEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetDrillID sets the "drill_id" field.
func (u *DrillEventUpsertOne) SetDrillID(v string) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetDrillID(v)
	})
}

// UpdateDrillID sets the "drill_id" field to the value that was provided on create.
func (u *DrillEventUpsertOne) UpdateDrillID() *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateDrillID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *DrillEventUpsertOne) SetSkillID(v string) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *DrillEventUpsertOne) UpdateSkillID() *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateSkillID()
	})
}

// SetWeekPlanID sets the "week_plan_id" field.
func (u *DrillEventUpsertOne) SetWeekPlanID(v string) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetWeekPlanID(v)
	})
}

// UpdateWeekPlanID sets the "week_plan_id" field to the value that was provided on create.
func (u *DrillEventUpsertOne) UpdateWeekPlanID() *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateWeekPlanID()
	})
}

// ClearWeekPlanID clears the value of the "week_plan_id" field.
func (u *DrillEventUpsertOne) ClearWeekPlanID() *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.ClearWeekPlanID()
	})
}

// SetDayNumber sets the "day_number" field.
func (u *DrillEventUpsertOne) SetDayNumber(v int) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetDayNumber(v)
	})
}

// AddDayNumber adds v to the "day_number" field.
func (u *DrillEventUpsertOne) AddDayNumber(v int) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.AddDayNumber(v)
	})
}

// UpdateDayNumber sets the "day_number" field to the value that was provided on create.
func (u *DrillEventUpsertOne) UpdateDayNumber() *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateDayNumber()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *DrillEventUpsertOne) SetAttemptNumber(v int) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *DrillEventUpsertOne) AddAttemptNumber(v int) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *DrillEventUpsertOne) UpdateAttemptNumber() *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *DrillEventUpsertOne) SetRetryCount(v int) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *DrillEventUpsertOne) AddRetryCount(v int) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *DrillEventUpsertOne) UpdateRetryCount() *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateRetryCount()
	})
}

// SetTotalMinutes sets the "total_minutes" field.
func (u *DrillEventUpsertOne) SetTotalMinutes(v int) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetTotalMinutes(v)
	})
}

// AddTotalMinutes adds v to the "total_minutes" field.
func (u *DrillEventUpsertOne) AddTotalMinutes(v int) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.AddTotalMinutes(v)
	})
}

// UpdateTotalMinutes sets the "total_minutes" field to the value that was provided on create.
func (u *DrillEventUpsertOne) UpdateTotalMinutes() *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateTotalMinutes()
	})
}

// SetPayload sets the "payload" field.
func (u *DrillEventUpsertOne) SetPayload(v map[string]interface{}) *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DrillEventUpsertOne) UpdatePayload() *DrillEventUpsertOne {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *DrillEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DrillEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DrillEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DrillEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DrillEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DrillEventCreateBulk is the builder for creating many DrillEvent entities in bulk.
type DrillEventCreateBulk struct {
	config
	err      error
	builders []*DrillEventCreate
	conflict []sql.ConflictOption
}

// Save creates the DrillEvent entities in the database.
func (_c *DrillEventCreateBulk) Save(ctx context.Context) ([]*DrillEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DrillEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrillEventMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *DrillEventCreateBulk) SaveX(ctx context.Context) []*DrillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DrillEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DrillEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *DrillEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *DrillEventUpsertBulk {
	_c.conflict = opts
	return &DrillEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DrillEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DrillEventCreateBulk) OnConflictColumns(columns ...string) *DrillEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DrillEventUpsertBulk{
		create: _c,
	}
}

// DrillEventUpsertBulk is the builder for "upsert"-ing
// a bulk of DrillEvent nodes.
type DrillEventUpsertBulk struct {
	create *DrillEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DrillEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DrillEventUpsertBulk) UpdateNewValues() *DrillEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(drillevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(drillevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DrillEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DrillEventUpsertBulk) Ignore() *DrillEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DrillEventUpsertBulk) DoNothing() *DrillEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DrillEventCreateBulk.OnConflict
// documentation for more info.
func (u *DrillEventUpsertBulk) Update(set func(*DrillEventUpsert)) *DrillEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DrillEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetDrillID sets the "drill_id" field.
func (u *DrillEventUpsertBulk) SetDrillID(v string) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetDrillID(v)
	})
}

// UpdateDrillID sets the "drill_id" field to the value that was provided on create.
func (u *DrillEventUpsertBulk) UpdateDrillID() *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateDrillID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *DrillEventUpsertBulk) SetSkillID(v string) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *DrillEventUpsertBulk) UpdateSkillID() *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateSkillID()
	})
}

// SetWeekPlanID sets the "week_plan_id" field.
func (u *DrillEventUpsertBulk) SetWeekPlanID(v string) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetWeekPlanID(v)
	})
}

// UpdateWeekPlanID sets the "week_plan_id" field to the value that was provided on create.
func (u *DrillEventUpsertBulk) UpdateWeekPlanID() *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateWeekPlanID()
	})
}

// ClearWeekPlanID clears the value of the "week_plan_id" field.
func (u *DrillEventUpsertBulk) ClearWeekPlanID() *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.ClearWeekPlanID()
	})
}

// SetDayNumber sets the "day_number" field.
func (u *DrillEventUpsertBulk) SetDayNumber(v int) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetDayNumber(v)
	})
}

// AddDayNumber adds v to the "day_number" field.
func (u *DrillEventUpsertBulk) AddDayNumber(v int) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.AddDayNumber(v)
	})
}

// UpdateDayNumber sets the "day_number" field to the value that was provided on create.
func (u *DrillEventUpsertBulk) UpdateDayNumber() *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateDayNumber()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *DrillEventUpsertBulk) SetAttemptNumber(v int) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *DrillEventUpsertBulk) AddAttemptNumber(v int) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *DrillEventUpsertBulk) UpdateAttemptNumber() *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *DrillEventUpsertBulk) SetRetryCount(v int) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *DrillEventUpsertBulk) AddRetryCount(v int) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *DrillEventUpsertBulk) UpdateRetryCount() *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateRetryCount()
	})
}

// SetTotalMinutes sets the "total_minutes" field.
func (u *DrillEventUpsertBulk) SetTotalMinutes(v int) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetTotalMinutes(v)
	})
}

// AddTotalMinutes adds v to the "total_minutes" field.
func (u *DrillEventUpsertBulk) AddTotalMinutes(v int) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.AddTotalMinutes(v)
	})
}

// UpdateTotalMinutes sets the "total_minutes" field to the value that was provided on create.
func (u *DrillEventUpsertBulk) UpdateTotalMinutes() *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdateTotalMinutes()
	})
}

// SetPayload sets the "payload" field.
func (u *DrillEventUpsertBulk) SetPayload(v map[string]interface{}) *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DrillEventUpsertBulk) UpdatePayload() *DrillEventUpsertBulk {
	return u.Update(func(s *DrillEventUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *DrillEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DrillEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DrillEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DrillEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
