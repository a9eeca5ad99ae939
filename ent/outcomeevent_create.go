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
	"github.com/abhisek/questline/ent/outcomeevent"
)

// OutcomeEventCreate is the builder for creating a OutcomeEvent entity.
type OutcomeEventCreate struct {
	config
	mutation *OutcomeEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *OutcomeEventCreate) SetSequence(v int64) *OutcomeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *OutcomeEventCreate) SetTimestamp(v time.Time) *OutcomeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *OutcomeEventCreate) SetNillableTimestamp(v *time.Time) *OutcomeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *OutcomeEventCreate) SetSkillID(v string) *OutcomeEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetQuestID sets the "quest_id" field.
func (_c *OutcomeEventCreate) SetQuestID(v string) *OutcomeEventCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_c *OutcomeEventCreate) SetNillableQuestID(v *string) *OutcomeEventCreate {
	if v != nil {
		_c.SetQuestID(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *OutcomeEventCreate) SetOutcome(v string) *OutcomeEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetFromMastery sets the "from_mastery" field.
func (_c *OutcomeEventCreate) SetFromMastery(v string) *OutcomeEventCreate {
	_c.mutation.SetFromMastery(v)
	return _c
}

// SetToMastery sets the "to_mastery" field.
func (_c *OutcomeEventCreate) SetToMastery(v string) *OutcomeEventCreate {
	_c.mutation.SetToMastery(v)
	return _c
}

// SetJustMastered sets the "just_mastered" field.
func (_c *OutcomeEventCreate) SetJustMastered(v bool) *OutcomeEventCreate {
	_c.mutation.SetJustMastered(v)
	return _c
}

// SetNillableJustMastered sets the "just_mastered" field if the given value is not nil.
func (_c *OutcomeEventCreate) SetNillableJustMastered(v *bool) *OutcomeEventCreate {
	if v != nil {
		_c.SetJustMastered(*v)
	}
	return _c
}

// SetUnlockedSkills sets the "unlocked_skills" field.
func (_c *OutcomeEventCreate) SetUnlockedSkills(v []string) *OutcomeEventCreate {
	_c.mutation.SetUnlockedSkills(v)
	return _c
}

// SetDrillID sets the "drill_id" field.
func (_c *OutcomeEventCreate) SetDrillID(v string) *OutcomeEventCreate {
	_c.mutation.SetDrillID(v)
	return _c
}

// SetNillableDrillID sets the "drill_id" field if the given value is not nil.
func (_c *OutcomeEventCreate) SetNillableDrillID(v *string) *OutcomeEventCreate {
	if v != nil {
		_c.SetDrillID(*v)
	}
	return _c
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (_c *OutcomeEventCreate) Mutation() *OutcomeEventMutation {
	return _c.mutation
}

// Save creates the OutcomeEvent in the database.
func (_c *OutcomeEventCreate) Save(ctx context.Context) (*OutcomeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutcomeEventCreate) SaveX(ctx context.Context) *OutcomeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutcomeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := outcomeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.JustMastered(); !ok {
		v := outcomeevent.DefaultJustMastered
		_c.mutation.SetJustMastered(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutcomeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "OutcomeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "OutcomeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "OutcomeEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := outcomeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "OutcomeEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := outcomeevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromMastery(); !ok {
		return &ValidationError{Name: "from_mastery", err: errors.New(`ent: missing required field "OutcomeEvent.from_mastery"`)}
	}
	if v, ok := _c.mutation.FromMastery(); ok {
		if err := outcomeevent.FromMasteryValidator(v); err != nil {
			return &ValidationError{Name: "from_mastery", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.from_mastery": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToMastery(); !ok {
		return &ValidationError{Name: "to_mastery", err: errors.New(`ent: missing required field "OutcomeEvent.to_mastery"`)}
	}
	if v, ok := _c.mutation.ToMastery(); ok {
		if err := outcomeevent.ToMasteryValidator(v); err != nil {
			return &ValidationError{Name: "to_mastery", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.to_mastery": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JustMastered(); !ok {
		return &ValidationError{Name: "just_mastered", err: errors.New(`ent: missing required field "OutcomeEvent.just_mastered"`)}
	}
	return nil
}

func (_c *OutcomeEventCreate) sqlSave(ctx context.Context) (*OutcomeEvent, error) {
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

func (_c *OutcomeEventCreate) createSpec() (*OutcomeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &OutcomeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outcomeevent.Table, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(outcomeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(outcomeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(outcomeevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(outcomeevent.FieldQuestID, field.TypeString, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(outcomeevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.FromMastery(); ok {
		_spec.SetField(outcomeevent.FieldFromMastery, field.TypeString, value)
		_node.FromMastery = value
	}
	if value, ok := _c.mutation.ToMastery(); ok {
		_spec.SetField(outcomeevent.FieldToMastery, field.TypeString, value)
		_node.ToMastery = value
	}
	if value, ok := _c.mutation.JustMastered(); ok {
		_spec.SetField(outcomeevent.FieldJustMastered, field.TypeBool, value)
		_node.JustMastered = value
	}
	if value, ok := _c.mutation.UnlockedSkills(); ok {
		_spec.SetField(outcomeevent.FieldUnlockedSkills, field.TypeJSON, value)
		_node.UnlockedSkills = value
	}
	if value, ok := _c.mutation.DrillID(); ok {
		_spec.SetField(outcomeevent.FieldDrillID, field.TypeString, value)
		_node.DrillID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutcomeEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutcomeEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *OutcomeEventCreate) OnConflict(opts ...sql.ConflictOption) *OutcomeEventUpsertOne {
	_c.conflict = opts
	return &OutcomeEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutcomeEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutcomeEventCreate) OnConflictColumns(columns ...string) *OutcomeEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutcomeEventUpsertOne{
		create: _c,
	}
}

type (
	// OutcomeEventUpsertOne is the builder for "upsert"-ing
	//  one OutcomeEvent node.
	OutcomeEventUpsertOne struct {
		create *OutcomeEventCreate
	}

	// OutcomeEventUpsert is the "OnConflict" setter.
	OutcomeEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSkillID sets the "skill_id" field.
func (u *OutcomeEventUpsert) SetSkillID(v string) *OutcomeEventUpsert {
	u.Set(outcomeevent.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *OutcomeEventUpsert) UpdateSkillID() *OutcomeEventUpsert {
	u.SetExcluded(outcomeevent.FieldSkillID)
	return u
}

// SetQuestID sets the "quest_id" field.
func (u *OutcomeEventUpsert) SetQuestID(v string) *OutcomeEventUpsert {
	u.Set(outcomeevent.FieldQuestID, v)
	return u
}

// UpdateQuestID sets the "quest_id" field to the value that was provided on create.
func (u *OutcomeEventUpsert) UpdateQuestID() *OutcomeEventUpsert {
	u.SetExcluded(outcomeevent.FieldQuestID)
	return u
}

// ClearQuestID clears the value of the "quest_id" field.
func (u *OutcomeEventUpsert) ClearQuestID() *OutcomeEventUpsert {
	u.SetNull(outcomeevent.FieldQuestID)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *OutcomeEventUpsert) SetOutcome(v string) *OutcomeEventUpsert {
	u.Set(outcomeevent.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *OutcomeEventUpsert) UpdateOutcome() *OutcomeEventUpsert {
	u.SetExcluded(outcomeevent.FieldOutcome)
	return u
}

// SetFromMastery sets the "from_mastery" field.
func (u *OutcomeEventUpsert) SetFromMastery(v string) *OutcomeEventUpsert {
	u.Set(outcomeevent.FieldFromMastery, v)
	return u
}

// UpdateFromMastery sets the "from_mastery" field to the value that was provided on create.
func (u *OutcomeEventUpsert) UpdateFromMastery() *OutcomeEventUpsert {
	u.SetExcluded(outcomeevent.FieldFromMastery)
	return u
}

// SetToMastery sets the "to_mastery" field.
func (u *OutcomeEventUpsert) SetToMastery(v string) *OutcomeEventUpsert {
	u.Set(outcomeevent.FieldToMastery, v)
	return u
}

// UpdateToMastery sets the "to_mastery" field to the value that was provided on create.
func (u *OutcomeEventUpsert) UpdateToMastery() *OutcomeEventUpsert {
	u.SetExcluded(outcomeevent.FieldToMastery)
	return u
}

// SetJustMastered sets the "just_mastered" field.
func (u *OutcomeEventUpsert) SetJustMastered(v bool) *OutcomeEventUpsert {
	u.Set(outcomeevent.FieldJustMastered, v)
	return u
}

// UpdateJustMastered sets the "just_mastered" field to the value that was provided on create.
func (u *OutcomeEventUpsert) UpdateJustMastered() *OutcomeEventUpsert {
	u.SetExcluded(outcomeevent.FieldJustMastered)
	return u
}

// SetUnlockedSkills sets the "unlocked_skills" field.
func (u *OutcomeEventUpsert) SetUnlockedSkills(v []string) *OutcomeEventUpsert {
	u.Set(outcomeevent.FieldUnlockedSkills, v)
	return u
}

// UpdateUnlockedSkills sets the "unlocked_skills" field to the value that was provided on create.
func (u *OutcomeEventUpsert) UpdateUnlockedSkills() *OutcomeEventUpsert {
	u.SetExcluded(outcomeevent.FieldUnlockedSkills)
	return u
}

// ClearUnlockedSkills clears the value of the "unlocked_skills" field.
func (u *OutcomeEventUpsert) ClearUnlockedSkills() *OutcomeEventUpsert {
	u.SetNull(outcomeevent.FieldUnlockedSkills)
	return u
}

// SetDrillID sets the "drill_id" field.
func (u *OutcomeEventUpsert) SetDrillID(v string) *OutcomeEventUpsert {
	u.Set(outcomeevent.FieldDrillID, v)
	return u
}

// UpdateDrillID sets the "drill_id" field to the value that was provided on create.
func (u *OutcomeEventUpsert) UpdateDrillID() *OutcomeEventUpsert {
	u.SetExcluded(outcomeevent.FieldDrillID)
	return u
}

// ClearDrillID clears the value of the "drill_id" field.
func (u *OutcomeEventUpsert) ClearDrillID() *OutcomeEventUpsert {
	u.SetNull(outcomeevent.FieldDrillID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OutcomeEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OutcomeEventUpsertOne) UpdateNewValues() *OutcomeEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(outcomeevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(outcomeevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutcomeEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OutcomeEventUpsertOne) Ignore() *OutcomeEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutcomeEventUpsertOne) DoNothing() *OutcomeEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutcomeEventCreate.OnConflict
// documentation for more info.
func (u *OutcomeEventUpsertOne) Update(set func(*OutcomeEventUpsert)) *OutcomeEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutcomeEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *OutcomeEventUpsertOne) SetSkillID(v string) *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *OutcomeEventUpsertOne) UpdateSkillID() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateSkillID()
	})
}

// SetQuestID sets the "quest_id" field.
func (u *OutcomeEventUpsertOne) SetQuestID(v string) *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetQuestID(v)
	})
}

// UpdateQuestID sets the "quest_id" field to the value that was provided on create.
func (u *OutcomeEventUpsertOne) UpdateQuestID() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateQuestID()
	})
}

// ClearQuestID clears the value of the "quest_id" field.
func (u *OutcomeEventUpsertOne) ClearQuestID() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.ClearQuestID()
	})
}

// SetOutcome sets the "outcome" field.
func (u *OutcomeEventUpsertOne) SetOutcome(v string) *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *OutcomeEventUpsertOne) UpdateOutcome() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateOutcome()
	})
}

// SetFromMastery sets the "from_mastery" field.
func (u *OutcomeEventUpsertOne) SetFromMastery(v string) *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetFromMastery(v)
	})
}

// UpdateFromMastery sets the "from_mastery" field to the value that was provided on create.
func (u *OutcomeEventUpsertOne) UpdateFromMastery() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateFromMastery()
	})
}

// SetToMastery sets the "to_mastery" field.
func (u *OutcomeEventUpsertOne) SetToMastery(v string) *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetToMastery(v)
	})
}

// UpdateToMastery sets the "to_mastery" field to the value that was provided on create.
func (u *OutcomeEventUpsertOne) UpdateToMastery() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateToMastery()
	})
}

// SetJustMastered sets the "just_mastered" field.
func (u *OutcomeEventUpsertOne) SetJustMastered(v bool) *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetJustMastered(v)
	})
}

// UpdateJustMastered sets the "just_mastered" field to the value that was provided on create.
func (u *OutcomeEventUpsertOne) UpdateJustMastered() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateJustMastered()
	})
}

// SetUnlockedSkills sets the "unlocked_skills" field.
func (u *OutcomeEventUpsertOne) SetUnlockedSkills(v []string) *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetUnlockedSkills(v)
	})
}

// UpdateUnlockedSkills sets the "unlocked_skills" field to the value that was provided on create.
func (u *OutcomeEventUpsertOne) UpdateUnlockedSkills() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateUnlockedSkills()
	})
}

// ClearUnlockedSkills clears the value of the "unlocked_skills" field.
func (u *OutcomeEventUpsertOne) ClearUnlockedSkills() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.ClearUnlockedSkills()
	})
}

// SetDrillID sets the "drill_id" field.
func (u *OutcomeEventUpsertOne) SetDrillID(v string) *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetDrillID(v)
	})
}

// UpdateDrillID sets the "drill_id" field to the value that was provided on create.
func (u *OutcomeEventUpsertOne) UpdateDrillID() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateDrillID()
	})
}

// ClearDrillID clears the value of the "drill_id" field.
func (u *OutcomeEventUpsertOne) ClearDrillID() *OutcomeEventUpsertOne {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.ClearDrillID()
	})
}

// Exec executes the query.
func (u *OutcomeEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutcomeEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutcomeEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OutcomeEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OutcomeEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OutcomeEventCreateBulk is the builder for creating many OutcomeEvent entities in bulk.
type OutcomeEventCreateBulk struct {
	config
	err      error
	builders []*OutcomeEventCreate
	conflict []sql.ConflictOption
}

// Save creates the OutcomeEvent entities in the database.
func (_c *OutcomeEventCreateBulk) Save(ctx context.Context) ([]*OutcomeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutcomeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutcomeEventMutation)
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
func (_c *OutcomeEventCreateBulk) SaveX(ctx context.Context) []*OutcomeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutcomeEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutcomeEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *OutcomeEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *OutcomeEventUpsertBulk {
	_c.conflict = opts
	return &OutcomeEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutcomeEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutcomeEventCreateBulk) OnConflictColumns(columns ...string) *OutcomeEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutcomeEventUpsertBulk{
		create: _c,
	}
}

// OutcomeEventUpsertBulk is the builder for "upsert"-ing
// a bulk of OutcomeEvent nodes.
type OutcomeEventUpsertBulk struct {
	create *OutcomeEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OutcomeEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OutcomeEventUpsertBulk) UpdateNewValues() *OutcomeEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(outcomeevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(outcomeevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutcomeEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OutcomeEventUpsertBulk) Ignore() *OutcomeEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutcomeEventUpsertBulk) DoNothing() *OutcomeEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutcomeEventCreateBulk.OnConflict
// documentation for more info.
func (u *OutcomeEventUpsertBulk) Update(set func(*OutcomeEventUpsert)) *OutcomeEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutcomeEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *OutcomeEventUpsertBulk) SetSkillID(v string) *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *OutcomeEventUpsertBulk) UpdateSkillID() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateSkillID()
	})
}

// SetQuestID sets the "quest_id" field.
func (u *OutcomeEventUpsertBulk) SetQuestID(v string) *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetQuestID(v)
	})
}

// UpdateQuestID sets the "quest_id" field to the value that was provided on create.
func (u *OutcomeEventUpsertBulk) UpdateQuestID() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateQuestID()
	})
}

// ClearQuestID clears the value of the "quest_id" field.
func (u *OutcomeEventUpsertBulk) ClearQuestID() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.ClearQuestID()
	})
}

// SetOutcome sets the "outcome" field.
func (u *OutcomeEventUpsertBulk) SetOutcome(v string) *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *OutcomeEventUpsertBulk) UpdateOutcome() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateOutcome()
	})
}

// SetFromMastery sets the "from_mastery" field.
func (u *OutcomeEventUpsertBulk) SetFromMastery(v string) *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetFromMastery(v)
	})
}

// UpdateFromMastery sets the "from_mastery" field to the value that was provided on create.
func (u *OutcomeEventUpsertBulk) UpdateFromMastery() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateFromMastery()
	})
}

// SetToMastery sets the "to_mastery" field.
func (u *OutcomeEventUpsertBulk) SetToMastery(v string) *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetToMastery(v)
	})
}

// UpdateToMastery sets the "to_mastery" field to the value that was provided on create.
func (u *OutcomeEventUpsertBulk) UpdateToMastery() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateToMastery()
	})
}

// SetJustMastered sets the "just_mastered" field.
func (u *OutcomeEventUpsertBulk) SetJustMastered(v bool) *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetJustMastered(v)
	})
}

// UpdateJustMastered sets the "just_mastered" field to the value that was provided on create.
func (u *OutcomeEventUpsertBulk) UpdateJustMastered() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateJustMastered()
	})
}

// SetUnlockedSkills sets the "unlocked_skills" field.
func (u *OutcomeEventUpsertBulk) SetUnlockedSkills(v []string) *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetUnlockedSkills(v)
	})
}

// UpdateUnlockedSkills sets the "unlocked_skills" field to the value that was provided on create.
func (u *OutcomeEventUpsertBulk) UpdateUnlockedSkills() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateUnlockedSkills()
	})
}

// ClearUnlockedSkills clears the value of the "unlocked_skills" field.
func (u *OutcomeEventUpsertBulk) ClearUnlockedSkills() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.ClearUnlockedSkills()
	})
}

// SetDrillID sets the "drill_id" field.
func (u *OutcomeEventUpsertBulk) SetDrillID(v string) *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.SetDrillID(v)
	})
}

// UpdateDrillID sets the "drill_id" field to the value that was provided on create.
func (u *OutcomeEventUpsertBulk) UpdateDrillID() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.UpdateDrillID()
	})
}

// ClearDrillID clears the value of the "drill_id" field.
func (u *OutcomeEventUpsertBulk) ClearDrillID() *OutcomeEventUpsertBulk {
	return u.Update(func(s *OutcomeEventUpsert) {
		s.ClearDrillID()
	})
}

// Exec executes the query.
func (u *OutcomeEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OutcomeEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutcomeEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutcomeEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
