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
	"github.com/abhisek/questline/ent/skill"
)

// SkillCreate is the builder for creating a Skill entity.
type SkillCreate struct {
	config
	mutation *SkillMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSkillID sets the "skill_id" field.
func (_c *SkillCreate) SetSkillID(v string) *SkillCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetQuestID sets the "quest_id" field.
func (_c *SkillCreate) SetQuestID(v string) *SkillCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *SkillCreate) SetGoalID(v string) *SkillCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SkillCreate) SetUserID(v string) *SkillCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SkillCreate) SetTitle(v string) *SkillCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *SkillCreate) SetTopics(v []string) *SkillCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SkillCreate) SetAction(v string) *SkillCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_c *SkillCreate) SetNillableAction(v *string) *SkillCreate {
	if v != nil {
		_c.SetAction(*v)
	}
	return _c
}

// SetSuccessSignal sets the "success_signal" field.
func (_c *SkillCreate) SetSuccessSignal(v string) *SkillCreate {
	_c.mutation.SetSuccessSignal(v)
	return _c
}

// SetNillableSuccessSignal sets the "success_signal" field if the given value is not nil.
func (_c *SkillCreate) SetNillableSuccessSignal(v *string) *SkillCreate {
	if v != nil {
		_c.SetSuccessSignal(*v)
	}
	return _c
}

// SetConstraints sets the "constraints" field.
func (_c *SkillCreate) SetConstraints(v string) *SkillCreate {
	_c.mutation.SetConstraints(v)
	return _c
}

// SetNillableConstraints sets the "constraints" field if the given value is not nil.
func (_c *SkillCreate) SetNillableConstraints(v *string) *SkillCreate {
	if v != nil {
		_c.SetConstraints(*v)
	}
	return _c
}

// SetTransferScenario sets the "transfer_scenario" field.
func (_c *SkillCreate) SetTransferScenario(v string) *SkillCreate {
	_c.mutation.SetTransferScenario(v)
	return _c
}

// SetNillableTransferScenario sets the "transfer_scenario" field if the given value is not nil.
func (_c *SkillCreate) SetNillableTransferScenario(v *string) *SkillCreate {
	if v != nil {
		_c.SetTransferScenario(*v)
	}
	return _c
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_c *SkillCreate) SetEstimatedMinutes(v int) *SkillCreate {
	_c.mutation.SetEstimatedMinutes(v)
	return _c
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_c *SkillCreate) SetNillableEstimatedMinutes(v *int) *SkillCreate {
	if v != nil {
		_c.SetEstimatedMinutes(*v)
	}
	return _c
}

// SetSkillType sets the "skill_type" field.
func (_c *SkillCreate) SetSkillType(v string) *SkillCreate {
	_c.mutation.SetSkillType(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *SkillCreate) SetDepth(v int) *SkillCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *SkillCreate) SetNillableDepth(v *int) *SkillCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetOrder sets the "order" field.
func (_c *SkillCreate) SetOrder(v int) *SkillCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_c *SkillCreate) SetNillableOrder(v *int) *SkillCreate {
	if v != nil {
		_c.SetOrder(*v)
	}
	return _c
}

// SetPrerequisiteSkillIds sets the "prerequisite_skill_ids" field.
func (_c *SkillCreate) SetPrerequisiteSkillIds(v []string) *SkillCreate {
	_c.mutation.SetPrerequisiteSkillIds(v)
	return _c
}

// SetPrerequisiteQuestIds sets the "prerequisite_quest_ids" field.
func (_c *SkillCreate) SetPrerequisiteQuestIds(v []string) *SkillCreate {
	_c.mutation.SetPrerequisiteQuestIds(v)
	return _c
}

// SetIsCompound sets the "is_compound" field.
func (_c *SkillCreate) SetIsCompound(v bool) *SkillCreate {
	_c.mutation.SetIsCompound(v)
	return _c
}

// SetNillableIsCompound sets the "is_compound" field if the given value is not nil.
func (_c *SkillCreate) SetNillableIsCompound(v *bool) *SkillCreate {
	if v != nil {
		_c.SetIsCompound(*v)
	}
	return _c
}

// SetComponentSkillIds sets the "component_skill_ids" field.
func (_c *SkillCreate) SetComponentSkillIds(v []string) *SkillCreate {
	_c.mutation.SetComponentSkillIds(v)
	return _c
}

// SetWeekNumber sets the "week_number" field.
func (_c *SkillCreate) SetWeekNumber(v int) *SkillCreate {
	_c.mutation.SetWeekNumber(v)
	return _c
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_c *SkillCreate) SetNillableWeekNumber(v *int) *SkillCreate {
	if v != nil {
		_c.SetWeekNumber(*v)
	}
	return _c
}

// SetDayInWeek sets the "day_in_week" field.
func (_c *SkillCreate) SetDayInWeek(v int) *SkillCreate {
	_c.mutation.SetDayInWeek(v)
	return _c
}

// SetNillableDayInWeek sets the "day_in_week" field if the given value is not nil.
func (_c *SkillCreate) SetNillableDayInWeek(v *int) *SkillCreate {
	if v != nil {
		_c.SetDayInWeek(*v)
	}
	return _c
}

// SetDayInQuest sets the "day_in_quest" field.
func (_c *SkillCreate) SetDayInQuest(v int) *SkillCreate {
	_c.mutation.SetDayInQuest(v)
	return _c
}

// SetNillableDayInQuest sets the "day_in_quest" field if the given value is not nil.
func (_c *SkillCreate) SetNillableDayInQuest(v *int) *SkillCreate {
	if v != nil {
		_c.SetDayInQuest(*v)
	}
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *SkillCreate) SetMastery(v string) *SkillCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *SkillCreate) SetNillableMastery(v *string) *SkillCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SkillCreate) SetStatus(v string) *SkillCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SkillCreate) SetNillableStatus(v *string) *SkillCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPassCount sets the "pass_count" field.
func (_c *SkillCreate) SetPassCount(v int) *SkillCreate {
	_c.mutation.SetPassCount(v)
	return _c
}

// SetNillablePassCount sets the "pass_count" field if the given value is not nil.
func (_c *SkillCreate) SetNillablePassCount(v *int) *SkillCreate {
	if v != nil {
		_c.SetPassCount(*v)
	}
	return _c
}

// SetFailCount sets the "fail_count" field.
func (_c *SkillCreate) SetFailCount(v int) *SkillCreate {
	_c.mutation.SetFailCount(v)
	return _c
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_c *SkillCreate) SetNillableFailCount(v *int) *SkillCreate {
	if v != nil {
		_c.SetFailCount(*v)
	}
	return _c
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (_c *SkillCreate) SetConsecutivePasses(v int) *SkillCreate {
	_c.mutation.SetConsecutivePasses(v)
	return _c
}

// SetNillableConsecutivePasses sets the "consecutive_passes" field if the given value is not nil.
func (_c *SkillCreate) SetNillableConsecutivePasses(v *int) *SkillCreate {
	if v != nil {
		_c.SetConsecutivePasses(*v)
	}
	return _c
}

// SetMasteredAt sets the "mastered_at" field.
func (_c *SkillCreate) SetMasteredAt(v time.Time) *SkillCreate {
	_c.mutation.SetMasteredAt(v)
	return _c
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_c *SkillCreate) SetNillableMasteredAt(v *time.Time) *SkillCreate {
	if v != nil {
		_c.SetMasteredAt(*v)
	}
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *SkillCreate) SetUnlockedAt(v time.Time) *SkillCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *SkillCreate) SetNillableUnlockedAt(v *time.Time) *SkillCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// Mutation returns the SkillMutation object of the builder.
func (_c *SkillCreate) Mutation() *SkillMutation {
	return _c.mutation
}

// Save creates the Skill in the database.
func (_c *SkillCreate) Save(ctx context.Context) (*Skill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillCreate) SaveX(ctx context.Context) *Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillCreate) defaults() {
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		v := skill.DefaultEstimatedMinutes
		_c.mutation.SetEstimatedMinutes(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := skill.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.Order(); !ok {
		v := skill.DefaultOrder
		_c.mutation.SetOrder(v)
	}
	if _, ok := _c.mutation.IsCompound(); !ok {
		v := skill.DefaultIsCompound
		_c.mutation.SetIsCompound(v)
	}
	if _, ok := _c.mutation.WeekNumber(); !ok {
		v := skill.DefaultWeekNumber
		_c.mutation.SetWeekNumber(v)
	}
	if _, ok := _c.mutation.DayInWeek(); !ok {
		v := skill.DefaultDayInWeek
		_c.mutation.SetDayInWeek(v)
	}
	if _, ok := _c.mutation.DayInQuest(); !ok {
		v := skill.DefaultDayInQuest
		_c.mutation.SetDayInQuest(v)
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		v := skill.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := skill.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PassCount(); !ok {
		v := skill.DefaultPassCount
		_c.mutation.SetPassCount(v)
	}
	if _, ok := _c.mutation.FailCount(); !ok {
		v := skill.DefaultFailCount
		_c.mutation.SetFailCount(v)
	}
	if _, ok := _c.mutation.ConsecutivePasses(); !ok {
		v := skill.DefaultConsecutivePasses
		_c.mutation.SetConsecutivePasses(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "Skill.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := skill.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "Skill.quest_id"`)}
	}
	if v, ok := _c.mutation.QuestID(); ok {
		if err := skill.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "Skill.quest_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "Skill.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := skill.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Skill.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Skill.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := skill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Skill.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Skill.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := skill.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Skill.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		return &ValidationError{Name: "estimated_minutes", err: errors.New(`ent: missing required field "Skill.estimated_minutes"`)}
	}
	if _, ok := _c.mutation.SkillType(); !ok {
		return &ValidationError{Name: "skill_type", err: errors.New(`ent: missing required field "Skill.skill_type"`)}
	}
	if v, ok := _c.mutation.SkillType(); ok {
		if err := skill.SkillTypeValidator(v); err != nil {
			return &ValidationError{Name: "skill_type", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "Skill.depth"`)}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "Skill.order"`)}
	}
	if _, ok := _c.mutation.IsCompound(); !ok {
		return &ValidationError{Name: "is_compound", err: errors.New(`ent: missing required field "Skill.is_compound"`)}
	}
	if _, ok := _c.mutation.WeekNumber(); !ok {
		return &ValidationError{Name: "week_number", err: errors.New(`ent: missing required field "Skill.week_number"`)}
	}
	if _, ok := _c.mutation.DayInWeek(); !ok {
		return &ValidationError{Name: "day_in_week", err: errors.New(`ent: missing required field "Skill.day_in_week"`)}
	}
	if _, ok := _c.mutation.DayInQuest(); !ok {
		return &ValidationError{Name: "day_in_quest", err: errors.New(`ent: missing required field "Skill.day_in_quest"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "Skill.mastery"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Skill.status"`)}
	}
	if _, ok := _c.mutation.PassCount(); !ok {
		return &ValidationError{Name: "pass_count", err: errors.New(`ent: missing required field "Skill.pass_count"`)}
	}
	if _, ok := _c.mutation.FailCount(); !ok {
		return &ValidationError{Name: "fail_count", err: errors.New(`ent: missing required field "Skill.fail_count"`)}
	}
	if _, ok := _c.mutation.ConsecutivePasses(); !ok {
		return &ValidationError{Name: "consecutive_passes", err: errors.New(`ent: missing required field "Skill.consecutive_passes"`)}
	}
	return nil
}

func (_c *SkillCreate) sqlSave(ctx context.Context) (*Skill, error) {
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

func (_c *SkillCreate) createSpec() (*Skill, *sqlgraph.CreateSpec) {
	var (
		_node = &Skill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skill.Table, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(skill.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(skill.FieldQuestID, field.TypeString, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(skill.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(skill.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(skill.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(skill.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(skill.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.SuccessSignal(); ok {
		_spec.SetField(skill.FieldSuccessSignal, field.TypeString, value)
		_node.SuccessSignal = value
	}
	if value, ok := _c.mutation.Constraints(); ok {
		_spec.SetField(skill.FieldConstraints, field.TypeString, value)
		_node.Constraints = value
	}
	if value, ok := _c.mutation.TransferScenario(); ok {
		_spec.SetField(skill.FieldTransferScenario, field.TypeString, value)
		_node.TransferScenario = value
	}
	if value, ok := _c.mutation.EstimatedMinutes(); ok {
		_spec.SetField(skill.FieldEstimatedMinutes, field.TypeInt, value)
		_node.EstimatedMinutes = value
	}
	if value, ok := _c.mutation.SkillType(); ok {
		_spec.SetField(skill.FieldSkillType, field.TypeString, value)
		_node.SkillType = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(skill.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(skill.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if value, ok := _c.mutation.PrerequisiteSkillIds(); ok {
		_spec.SetField(skill.FieldPrerequisiteSkillIds, field.TypeJSON, value)
		_node.PrerequisiteSkillIds = value
	}
	if value, ok := _c.mutation.PrerequisiteQuestIds(); ok {
		_spec.SetField(skill.FieldPrerequisiteQuestIds, field.TypeJSON, value)
		_node.PrerequisiteQuestIds = value
	}
	if value, ok := _c.mutation.IsCompound(); ok {
		_spec.SetField(skill.FieldIsCompound, field.TypeBool, value)
		_node.IsCompound = value
	}
	if value, ok := _c.mutation.ComponentSkillIds(); ok {
		_spec.SetField(skill.FieldComponentSkillIds, field.TypeJSON, value)
		_node.ComponentSkillIds = value
	}
	if value, ok := _c.mutation.WeekNumber(); ok {
		_spec.SetField(skill.FieldWeekNumber, field.TypeInt, value)
		_node.WeekNumber = value
	}
	if value, ok := _c.mutation.DayInWeek(); ok {
		_spec.SetField(skill.FieldDayInWeek, field.TypeInt, value)
		_node.DayInWeek = value
	}
	if value, ok := _c.mutation.DayInQuest(); ok {
		_spec.SetField(skill.FieldDayInQuest, field.TypeInt, value)
		_node.DayInQuest = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(skill.FieldMastery, field.TypeString, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(skill.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PassCount(); ok {
		_spec.SetField(skill.FieldPassCount, field.TypeInt, value)
		_node.PassCount = value
	}
	if value, ok := _c.mutation.FailCount(); ok {
		_spec.SetField(skill.FieldFailCount, field.TypeInt, value)
		_node.FailCount = value
	}
	if value, ok := _c.mutation.ConsecutivePasses(); ok {
		_spec.SetField(skill.FieldConsecutivePasses, field.TypeInt, value)
		_node.ConsecutivePasses = value
	}
	if value, ok := _c.mutation.MasteredAt(); ok {
		_spec.SetField(skill.FieldMasteredAt, field.TypeTime, value)
		_node.MasteredAt = &value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(skill.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Skill.Create().
//		SetSkillID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillCreate) OnConflict(opts ...sql.ConflictOption) *SkillUpsertOne {
	_c.conflict = opts
	return &SkillUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillCreate) OnConflictColumns(columns ...string) *SkillUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillUpsertOne{
		create: _c,
	}
}

type (
	// SkillUpsertOne is the builder for "upsert"-ing
	//  one Skill node.
	SkillUpsertOne struct {
		create *SkillCreate
	}

	// SkillUpsert is the "OnConflict" setter.
	SkillUpsert struct {
		*sql.UpdateSet
	}
)

// SetSkillID sets the "skill_id" field.
func (u *SkillUpsert) SetSkillID(v string) *SkillUpsert {
	u.Set(skill.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *SkillUpsert) UpdateSkillID() *SkillUpsert {
	u.SetExcluded(skill.FieldSkillID)
	return u
}

// SetQuestID sets the "quest_id" field.
func (u *SkillUpsert) SetQuestID(v string) *SkillUpsert {
	u.Set(skill.FieldQuestID, v)
	return u
}

// UpdateQuestID sets the "quest_id" field to the value that was provided on create.
func (u *SkillUpsert) UpdateQuestID() *SkillUpsert {
	u.SetExcluded(skill.FieldQuestID)
	return u
}

// SetGoalID sets the "goal_id" field.
func (u *SkillUpsert) SetGoalID(v string) *SkillUpsert {
	u.Set(skill.FieldGoalID, v)
	return u
}

// UpdateGoalID sets the "goal_id" field to the value that was provided on create.
func (u *SkillUpsert) UpdateGoalID() *SkillUpsert {
	u.SetExcluded(skill.FieldGoalID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *SkillUpsert) SetUserID(v string) *SkillUpsert {
	u.Set(skill.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SkillUpsert) UpdateUserID() *SkillUpsert {
	u.SetExcluded(skill.FieldUserID)
	return u
}

// SetTitle sets the "title" field.
func (u *SkillUpsert) SetTitle(v string) *SkillUpsert {
	u.Set(skill.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SkillUpsert) UpdateTitle() *SkillUpsert {
	u.SetExcluded(skill.FieldTitle)
	return u
}

// SetTopics sets the "topics" field.
func (u *SkillUpsert) SetTopics(v []string) *SkillUpsert {
	u.Set(skill.FieldTopics, v)
	return u
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *SkillUpsert) UpdateTopics() *SkillUpsert {
	u.SetExcluded(skill.FieldTopics)
	return u
}

// ClearTopics clears the value of the "topics" field.
func (u *SkillUpsert) ClearTopics() *SkillUpsert {
	u.SetNull(skill.FieldTopics)
	return u
}

// SetAction sets the "action" field.
func (u *SkillUpsert) SetAction(v string) *SkillUpsert {
	u.Set(skill.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *SkillUpsert) UpdateAction() *SkillUpsert {
	u.SetExcluded(skill.FieldAction)
	return u
}

// ClearAction clears the value of the "action" field.
func (u *SkillUpsert) ClearAction() *SkillUpsert {
	u.SetNull(skill.FieldAction)
	return u
}

// SetSuccessSignal sets the "success_signal" field.
func (u *SkillUpsert) SetSuccessSignal(v string) *SkillUpsert {
	u.Set(skill.FieldSuccessSignal, v)
	return u
}

// UpdateSuccessSignal sets the "success_signal" field to the value that was provided on create.
func (u *SkillUpsert) UpdateSuccessSignal() *SkillUpsert {
	u.SetExcluded(skill.FieldSuccessSignal)
	return u
}

// ClearSuccessSignal clears the value of the "success_signal" field.
func (u *SkillUpsert) ClearSuccessSignal() *SkillUpsert {
	u.SetNull(skill.FieldSuccessSignal)
	return u
}

// SetConstraints sets the "constraints" field.
func (u *SkillUpsert) SetConstraints(v string) *SkillUpsert {
	u.Set(skill.FieldConstraints, v)
	return u
}

// UpdateConstraints sets the "constraints" field to the value that was provided on create.
func (u *SkillUpsert) UpdateConstraints() *SkillUpsert {
	u.SetExcluded(skill.FieldConstraints)
	return u
}

// ClearConstraints clears the value of the "constraints" field.
func (u *SkillUpsert) ClearConstraints() *SkillUpsert {
	u.SetNull(skill.FieldConstraints)
	return u
}

// SetTransferScenario sets the "transfer_scenario" field.
func (u *SkillUpsert) SetTransferScenario(v string) *SkillUpsert {
	u.Set(skill.FieldTransferScenario, v)
	return u
}

// UpdateTransferScenario sets the "transfer_scenario" field to the value that was provided on create.
func (u *SkillUpsert) UpdateTransferScenario() *SkillUpsert {
	u.SetExcluded(skill.FieldTransferScenario)
	return u
}

// ClearTransferScenario clears the value of the "transfer_scenario" field.
func (u *SkillUpsert) ClearTransferScenario() *SkillUpsert {
	u.SetNull(skill.FieldTransferScenario)
	return u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (u *SkillUpsert) SetEstimatedMinutes(v int) *SkillUpsert {
	u.Set(skill.FieldEstimatedMinutes, v)
	return u
}

// UpdateEstimatedMinutes sets the "estimated_minutes" field to the value that was provided on create.
func (u *SkillUpsert) UpdateEstimatedMinutes() *SkillUpsert {
	u.SetExcluded(skill.FieldEstimatedMinutes)
	return u
}

// AddEstimatedMinutes adds v to the "estimated_minutes" field.
func (u *SkillUpsert) AddEstimatedMinutes(v int) *SkillUpsert {
	u.Add(skill.FieldEstimatedMinutes, v)
	return u
}

// SetSkillType sets the "skill_type" field.
func (u *SkillUpsert) SetSkillType(v string) *SkillUpsert {
	u.Set(skill.FieldSkillType, v)
	return u
}

// UpdateSkillType sets the "skill_type" field to the value that was provided on create.
func (u *SkillUpsert) UpdateSkillType() *SkillUpsert {
	u.SetExcluded(skill.FieldSkillType)
	return u
}

// SetDepth sets the "depth" field.
func (u *SkillUpsert) SetDepth(v int) *SkillUpsert {
	u.Set(skill.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *SkillUpsert) UpdateDepth() *SkillUpsert {
	u.SetExcluded(skill.FieldDepth)
	return u
}

// AddDepth adds v to the "depth" field.
func (u *SkillUpsert) AddDepth(v int) *SkillUpsert {
	u.Add(skill.FieldDepth, v)
	return u
}

// SetOrder sets the "order" field.
func (u *SkillUpsert) SetOrder(v int) *SkillUpsert {
	u.Set(skill.FieldOrder, v)
	return u
}

// UpdateOrder sets the "order" field to the value that was provided on create.
func (u *SkillUpsert) UpdateOrder() *SkillUpsert {
	u.SetExcluded(skill.FieldOrder)
	return u
}

// AddOrder adds v to the "order" field.
func (u *SkillUpsert) AddOrder(v int) *SkillUpsert {
	u.Add(skill.FieldOrder, v)
	return u
}

// SetPrerequisiteSkillIds sets the "prerequisite_skill_ids" field.
func (u *SkillUpsert) SetPrerequisiteSkillIds(v []string) *SkillUpsert {
	u.Set(skill.FieldPrerequisiteSkillIds, v)
	return u
}

// UpdatePrerequisiteSkillIds sets the "prerequisite_skill_ids" field to the value that was provided on create.
func (u *SkillUpsert) UpdatePrerequisiteSkillIds() *SkillUpsert {
	u.SetExcluded(skill.FieldPrerequisiteSkillIds)
	return u
}

// ClearPrerequisiteSkillIds clears the value of the "prerequisite_skill_ids" field.
func (u *SkillUpsert) ClearPrerequisiteSkillIds() *SkillUpsert {
	u.SetNull(skill.FieldPrerequisiteSkillIds)
	return u
}

// SetPrerequisiteQuestIds sets the "prerequisite_quest_ids" field.
func (u *SkillUpsert) SetPrerequisiteQuestIds(v []string) *SkillUpsert {
	u.Set(skill.FieldPrerequisiteQuestIds, v)
	return u
}

// UpdatePrerequisiteQuestIds sets the "prerequisite_quest_ids" field to the value that was provided on create.
func (u *SkillUpsert) UpdatePrerequisiteQuestIds() *SkillUpsert {
	u.SetExcluded(skill.FieldPrerequisiteQuestIds)
	return u
}

// ClearPrerequisiteQuestIds clears the value of the "prerequisite_quest_ids" field.
func (u *SkillUpsert) ClearPrerequisiteQuestIds() *SkillUpsert {
	u.SetNull(skill.FieldPrerequisiteQuestIds)
	return u
}

// SetIsCompound sets the "is_compound" field.
func (u *SkillUpsert) SetIsCompound(v bool) *SkillUpsert {
	u.Set(skill.FieldIsCompound, v)
	return u
}

// UpdateIsCompound sets the "is_compound" field to the value that was provided on create.
func (u *SkillUpsert) UpdateIsCompound() *SkillUpsert {
	u.SetExcluded(skill.FieldIsCompound)
	return u
}

// SetComponentSkillIds sets the "component_skill_ids" field.
func (u *SkillUpsert) SetComponentSkillIds(v []string) *SkillUpsert {
	u.Set(skill.FieldComponentSkillIds, v)
	return u
}

// UpdateComponentSkillIds sets the "component_skill_ids" field to the value that was provided on create.
func (u *SkillUpsert) UpdateComponentSkillIds() *SkillUpsert {
	u.SetExcluded(skill.FieldComponentSkillIds)
	return u
}

// ClearComponentSkillIds clears the value of the "component_skill_ids" field.
func (u *SkillUpsert) ClearComponentSkillIds() *SkillUpsert {
	u.SetNull(skill.FieldComponentSkillIds)
	return u
}

// SetWeekNumber sets the "week_number" field.
func (u *SkillUpsert) SetWeekNumber(v int) *SkillUpsert {
	u.Set(skill.FieldWeekNumber, v)
	return u
}

// UpdateWeekNumber sets the "week_number" field to the value that was provided on create.
func (u *SkillUpsert) UpdateWeekNumber() *SkillUpsert {
	u.SetExcluded(skill.FieldWeekNumber)
	return u
}

// AddWeekNumber adds v to the "week_number" field.
func (u *SkillUpsert) AddWeekNumber(v int) *SkillUpsert {
	u.Add(skill.FieldWeekNumber, v)
	return u
}

// SetDayInWeek sets the "day_in_week" field.
func (u *SkillUpsert) SetDayInWeek(v int) *SkillUpsert {
	u.Set(skill.FieldDayInWeek, v)
	return u
}

// UpdateDayInWeek sets the "day_in_week" field to the value that was provided on create.
func (u *SkillUpsert) UpdateDayInWeek() *SkillUpsert {
	u.SetExcluded(skill.FieldDayInWeek)
	return u
}

// AddDayInWeek adds v to the "day_in_week" field.
func (u *SkillUpsert) AddDayInWeek(v int) *SkillUpsert {
	u.Add(skill.FieldDayInWeek, v)
	return u
}

// SetDayInQuest sets the "day_in_quest" field.
func (u *SkillUpsert) SetDayInQuest(v int) *SkillUpsert {
	u.Set(skill.FieldDayInQuest, v)
	return u
}

// UpdateDayInQuest sets the "day_in_quest" field to the value that was provided on create.
func (u *SkillUpsert) UpdateDayInQuest() *SkillUpsert {
	u.SetExcluded(skill.FieldDayInQuest)
	return u
}

// AddDayInQuest adds v to the "day_in_quest" field.
func (u *SkillUpsert) AddDayInQuest(v int) *SkillUpsert {
	u.Add(skill.FieldDayInQuest, v)
	return u
}

// SetMastery sets the "mastery" field.
func (u *SkillUpsert) SetMastery(v string) *SkillUpsert {
	u.Set(skill.FieldMastery, v)
	return u
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *SkillUpsert) UpdateMastery() *SkillUpsert {
	u.SetExcluded(skill.FieldMastery)
	return u
}

// SetStatus sets the "status" field.
func (u *SkillUpsert) SetStatus(v string) *SkillUpsert {
	u.Set(skill.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SkillUpsert) UpdateStatus() *SkillUpsert {
	u.SetExcluded(skill.FieldStatus)
	return u
}

// SetPassCount sets the "pass_count" field.
func (u *SkillUpsert) SetPassCount(v int) *SkillUpsert {
	u.Set(skill.FieldPassCount, v)
	return u
}

// UpdatePassCount sets the "pass_count" field to the value that was provided on create.
func (u *SkillUpsert) UpdatePassCount() *SkillUpsert {
	u.SetExcluded(skill.FieldPassCount)
	return u
}

// AddPassCount adds v to the "pass_count" field.
func (u *SkillUpsert) AddPassCount(v int) *SkillUpsert {
	u.Add(skill.FieldPassCount, v)
	return u
}

// SetFailCount sets the "fail_count" field.
func (u *SkillUpsert) SetFailCount(v int) *SkillUpsert {
	u.Set(skill.FieldFailCount, v)
	return u
}

// UpdateFailCount sets the "fail_count" field to the value that was provided on create.
func (u *SkillUpsert) UpdateFailCount() *SkillUpsert {
	u.SetExcluded(skill.FieldFailCount)
	return u
}

// AddFailCount adds v to the "fail_count" field.
func (u *SkillUpsert) AddFailCount(v int) *SkillUpsert {
	u.Add(skill.FieldFailCount, v)
	return u
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (u *SkillUpsert) SetConsecutivePasses(v int) *SkillUpsert {
	u.Set(skill.FieldConsecutivePasses, v)
	return u
}

// UpdateConsecutivePasses sets the "consecutive_passes" field to the value that was provided on create.
func (u *SkillUpsert) UpdateConsecutivePasses() *SkillUpsert {
	u.SetExcluded(skill.FieldConsecutivePasses)
	return u
}

// AddConsecutivePasses adds v to the "consecutive_passes" field.
func (u *SkillUpsert) AddConsecutivePasses(v int) *SkillUpsert {
	u.Add(skill.FieldConsecutivePasses, v)
	return u
}

// SetMasteredAt sets the "mastered_at" field.
func (u *SkillUpsert) SetMasteredAt(v time.Time) *SkillUpsert {
	u.Set(skill.FieldMasteredAt, v)
	return u
}

// UpdateMasteredAt sets the "mastered_at" field to the value that was provided on create.
func (u *SkillUpsert) UpdateMasteredAt() *SkillUpsert {
	u.SetExcluded(skill.FieldMasteredAt)
	return u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (u *SkillUpsert) ClearMasteredAt() *SkillUpsert {
	u.SetNull(skill.FieldMasteredAt)
	return u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (u *SkillUpsert) SetUnlockedAt(v time.Time) *SkillUpsert {
	u.Set(skill.FieldUnlockedAt, v)
	return u
}

// UpdateUnlockedAt sets the "unlocked_at" field to the value that was provided on create.
func (u *SkillUpsert) UpdateUnlockedAt() *SkillUpsert {
	u.SetExcluded(skill.FieldUnlockedAt)
	return u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (u *SkillUpsert) ClearUnlockedAt() *SkillUpsert {
	u.SetNull(skill.FieldUnlockedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SkillUpsertOne) UpdateNewValues() *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Skill.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SkillUpsertOne) Ignore() *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillUpsertOne) DoNothing() *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillCreate.OnConflict
// documentation for more info.
func (u *SkillUpsertOne) Update(set func(*SkillUpsert)) *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *SkillUpsertOne) SetSkillID(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateSkillID() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateSkillID()
	})
}

// SetQuestID sets the "quest_id" field.
func (u *SkillUpsertOne) SetQuestID(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetQuestID(v)
	})
}

// UpdateQuestID sets the "quest_id" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateQuestID() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateQuestID()
	})
}

// SetGoalID sets the "goal_id" field.
func (u *SkillUpsertOne) SetGoalID(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetGoalID(v)
	})
}

// UpdateGoalID sets the "goal_id" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateGoalID() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateGoalID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SkillUpsertOne) SetUserID(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateUserID() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateUserID()
	})
}

// SetTitle sets the "title" field.
func (u *SkillUpsertOne) SetTitle(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateTitle() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateTitle()
	})
}

// SetTopics sets the "topics" field.
func (u *SkillUpsertOne) SetTopics(v []string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetTopics(v)
	})
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateTopics() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateTopics()
	})
}

// ClearTopics clears the value of the "topics" field.
func (u *SkillUpsertOne) ClearTopics() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearTopics()
	})
}

// SetAction sets the "action" field.
func (u *SkillUpsertOne) SetAction(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateAction() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateAction()
	})
}

// ClearAction clears the value of the "action" field.
func (u *SkillUpsertOne) ClearAction() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearAction()
	})
}

// SetSuccessSignal sets the "success_signal" field.
func (u *SkillUpsertOne) SetSuccessSignal(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetSuccessSignal(v)
	})
}

// UpdateSuccessSignal sets the "success_signal" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateSuccessSignal() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateSuccessSignal()
	})
}

// ClearSuccessSignal clears the value of the "success_signal" field.
func (u *SkillUpsertOne) ClearSuccessSignal() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearSuccessSignal()
	})
}

// SetConstraints sets the "constraints" field.
func (u *SkillUpsertOne) SetConstraints(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetConstraints(v)
	})
}

// UpdateConstraints sets the "constraints" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateConstraints() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateConstraints()
	})
}

// ClearConstraints clears the value of the "constraints" field.
func (u *SkillUpsertOne) ClearConstraints() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearConstraints()
	})
}

// SetTransferScenario sets the "transfer_scenario" field.
func (u *SkillUpsertOne) SetTransferScenario(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetTransferScenario(v)
	})
}

// UpdateTransferScenario sets the "transfer_scenario" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateTransferScenario() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateTransferScenario()
	})
}

// ClearTransferScenario clears the value of the "transfer_scenario" field.
func (u *SkillUpsertOne) ClearTransferScenario() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearTransferScenario()
	})
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (u *SkillUpsertOne) SetEstimatedMinutes(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetEstimatedMinutes(v)
	})
}

// AddEstimatedMinutes adds v to the "estimated_minutes" field.
func (u *SkillUpsertOne) AddEstimatedMinutes(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddEstimatedMinutes(v)
	})
}

// UpdateEstimatedMinutes sets the "estimated_minutes" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateEstimatedMinutes() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateEstimatedMinutes()
	})
}

// SetSkillType sets the "skill_type" field.
func (u *SkillUpsertOne) SetSkillType(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetSkillType(v)
	})
}

// UpdateSkillType sets the "skill_type" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateSkillType() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateSkillType()
	})
}

// SetDepth sets the "depth" field.
func (u *SkillUpsertOne) SetDepth(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *SkillUpsertOne) AddDepth(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateDepth() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateDepth()
	})
}

// SetOrder sets the "order" field.
func (u *SkillUpsertOne) SetOrder(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetOrder(v)
	})
}

// AddOrder adds v to the "order" field.
func (u *SkillUpsertOne) AddOrder(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddOrder(v)
	})
}

// UpdateOrder sets the "order" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateOrder() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateOrder()
	})
}

// SetPrerequisiteSkillIds sets the "prerequisite_skill_ids" field.
func (u *SkillUpsertOne) SetPrerequisiteSkillIds(v []string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetPrerequisiteSkillIds(v)
	})
}

// UpdatePrerequisiteSkillIds sets the "prerequisite_skill_ids" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdatePrerequisiteSkillIds() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdatePrerequisiteSkillIds()
	})
}

// ClearPrerequisiteSkillIds clears the value of the "prerequisite_skill_ids" field.
func (u *SkillUpsertOne) ClearPrerequisiteSkillIds() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearPrerequisiteSkillIds()
	})
}

// SetPrerequisiteQuestIds sets the "prerequisite_quest_ids" field.
func (u *SkillUpsertOne) SetPrerequisiteQuestIds(v []string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetPrerequisiteQuestIds(v)
	})
}

// UpdatePrerequisiteQuestIds sets the "prerequisite_quest_ids" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdatePrerequisiteQuestIds() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdatePrerequisiteQuestIds()
	})
}

// ClearPrerequisiteQuestIds clears the value of the "prerequisite_quest_ids" field.
func (u *SkillUpsertOne) ClearPrerequisiteQuestIds() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearPrerequisiteQuestIds()
	})
}

// SetIsCompound sets the "is_compound" field.
func (u *SkillUpsertOne) SetIsCompound(v bool) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetIsCompound(v)
	})
}

// UpdateIsCompound sets the "is_compound" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateIsCompound() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateIsCompound()
	})
}

// SetComponentSkillIds sets the "component_skill_ids" field.
func (u *SkillUpsertOne) SetComponentSkillIds(v []string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetComponentSkillIds(v)
	})
}

// UpdateComponentSkillIds sets the "component_skill_ids" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateComponentSkillIds() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateComponentSkillIds()
	})
}

// ClearComponentSkillIds clears the value of the "component_skill_ids" field.
func (u *SkillUpsertOne) ClearComponentSkillIds() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearComponentSkillIds()
	})
}

// SetWeekNumber sets the "week_number" field.
func (u *SkillUpsertOne) SetWeekNumber(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetWeekNumber(v)
	})
}

// AddWeekNumber adds v to the "week_number" field.
func (u *SkillUpsertOne) AddWeekNumber(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddWeekNumber(v)
	})
}

// UpdateWeekNumber sets the "week_number" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateWeekNumber() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateWeekNumber()
	})
}

// SetDayInWeek sets the "day_in_week" field.
func (u *SkillUpsertOne) SetDayInWeek(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetDayInWeek(v)
	})
}

// AddDayInWeek adds v to the "day_in_week" field.
func (u *SkillUpsertOne) AddDayInWeek(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddDayInWeek(v)
	})
}

// UpdateDayInWeek sets the "day_in_week" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateDayInWeek() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateDayInWeek()
	})
}

// SetDayInQuest sets the "day_in_quest" field.
func (u *SkillUpsertOne) SetDayInQuest(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetDayInQuest(v)
	})
}

// AddDayInQuest adds v to the "day_in_quest" field.
func (u *SkillUpsertOne) AddDayInQuest(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddDayInQuest(v)
	})
}

// UpdateDayInQuest sets the "day_in_quest" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateDayInQuest() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateDayInQuest()
	})
}

// SetMastery sets the "mastery" field.
func (u *SkillUpsertOne) SetMastery(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetMastery(v)
	})
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateMastery() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateMastery()
	})
}

// SetStatus sets the "status" field.
func (u *SkillUpsertOne) SetStatus(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateStatus() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateStatus()
	})
}

// SetPassCount sets the "pass_count" field.
func (u *SkillUpsertOne) SetPassCount(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetPassCount(v)
	})
}

// AddPassCount adds v to the "pass_count" field.
func (u *SkillUpsertOne) AddPassCount(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddPassCount(v)
	})
}

// UpdatePassCount sets the "pass_count" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdatePassCount() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdatePassCount()
	})
}

// SetFailCount sets the "fail_count" field.
func (u *SkillUpsertOne) SetFailCount(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetFailCount(v)
	})
}

// AddFailCount adds v to the "fail_count" field.
func (u *SkillUpsertOne) AddFailCount(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddFailCount(v)
	})
}

// UpdateFailCount sets the "fail_count" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateFailCount() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateFailCount()
	})
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (u *SkillUpsertOne) SetConsecutivePasses(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetConsecutivePasses(v)
	})
}

// AddConsecutivePasses adds v to the "consecutive_passes" field.
func (u *SkillUpsertOne) AddConsecutivePasses(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddConsecutivePasses(v)
	})
}

// UpdateConsecutivePasses sets the "consecutive_passes" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateConsecutivePasses() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateConsecutivePasses()
	})
}

// SetMasteredAt sets the "mastered_at" field.
func (u *SkillUpsertOne) SetMasteredAt(v time.Time) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetMasteredAt(v)
	})
}

// UpdateMasteredAt sets the "mastered_at" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateMasteredAt() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateMasteredAt()
	})
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (u *SkillUpsertOne) ClearMasteredAt() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearMasteredAt()
	})
}

// SetUnlockedAt sets the "unlocked_at" field.
func (u *SkillUpsertOne) SetUnlockedAt(v time.Time) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetUnlockedAt(v)
	})
}

// UpdateUnlockedAt sets the "unlocked_at" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateUnlockedAt() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateUnlockedAt()
	})
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (u *SkillUpsertOne) ClearUnlockedAt() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearUnlockedAt()
	})
}

// Exec executes the query.
func (u *SkillUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SkillUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SkillUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SkillCreateBulk is the builder for creating many Skill entities in bulk.
type SkillCreateBulk struct {
	config
	err      error
	builders []*SkillCreate
	conflict []sql.ConflictOption
}

// Save creates the Skill entities in the database.
func (_c *SkillCreateBulk) Save(ctx context.Context) ([]*Skill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Skill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMutation)
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
func (_c *SkillCreateBulk) SaveX(ctx context.Context) []*Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Skill.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillCreateBulk) OnConflict(opts ...sql.ConflictOption) *SkillUpsertBulk {
	_c.conflict = opts
	return &SkillUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillCreateBulk) OnConflictColumns(columns ...string) *SkillUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillUpsertBulk{
		create: _c,
	}
}

// SkillUpsertBulk is the builder for "upsert"-ing
// a bulk of Skill nodes.
type SkillUpsertBulk struct {
	create *SkillCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SkillUpsertBulk) UpdateNewValues() *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SkillUpsertBulk) Ignore() *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillUpsertBulk) DoNothing() *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillCreateBulk.OnConflict
// documentation for more info.
func (u *SkillUpsertBulk) Update(set func(*SkillUpsert)) *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *SkillUpsertBulk) SetSkillID(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateSkillID() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateSkillID()
	})
}

// SetQuestID sets the "quest_id" field.
func (u *SkillUpsertBulk) SetQuestID(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetQuestID(v)
	})
}

// UpdateQuestID sets the "quest_id" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateQuestID() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateQuestID()
	})
}

// SetGoalID sets the "goal_id" field.
func (u *SkillUpsertBulk) SetGoalID(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetGoalID(v)
	})
}

// UpdateGoalID sets the "goal_id" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateGoalID() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateGoalID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SkillUpsertBulk) SetUserID(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateUserID() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateUserID()
	})
}

// SetTitle sets the "title" field.
func (u *SkillUpsertBulk) SetTitle(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateTitle() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateTitle()
	})
}

// SetTopics sets the "topics" field.
func (u *SkillUpsertBulk) SetTopics(v []string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetTopics(v)
	})
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateTopics() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateTopics()
	})
}

// ClearTopics clears the value of the "topics" field.
func (u *SkillUpsertBulk) ClearTopics() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearTopics()
	})
}

// SetAction sets the "action" field.
func (u *SkillUpsertBulk) SetAction(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateAction() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateAction()
	})
}

// ClearAction clears the value of the "action" field.
func (u *SkillUpsertBulk) ClearAction() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearAction()
	})
}

// SetSuccessSignal sets the "success_signal" field.
func (u *SkillUpsertBulk) SetSuccessSignal(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetSuccessSignal(v)
	})
}

// UpdateSuccessSignal sets the "success_signal" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateSuccessSignal() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateSuccessSignal()
	})
}

// ClearSuccessSignal clears the value of the "success_signal" field.
func (u *SkillUpsertBulk) ClearSuccessSignal() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearSuccessSignal()
	})
}

// SetConstraints sets the "constraints" field.
func (u *SkillUpsertBulk) SetConstraints(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetConstraints(v)
	})
}

// UpdateConstraints sets the "constraints" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateConstraints() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateConstraints()
	})
}

// ClearConstraints clears the value of the "constraints" field.
func (u *SkillUpsertBulk) ClearConstraints() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearConstraints()
	})
}

// SetTransferScenario sets the "transfer_scenario" field.
func (u *SkillUpsertBulk) SetTransferScenario(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetTransferScenario(v)
	})
}

// UpdateTransferScenario sets the "transfer_scenario" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateTransferScenario() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateTransferScenario()
	})
}

// ClearTransferScenario clears the value of the "transfer_scenario" field.
func (u *SkillUpsertBulk) ClearTransferScenario() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearTransferScenario()
	})
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (u *SkillUpsertBulk) SetEstimatedMinutes(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetEstimatedMinutes(v)
	})
}

// AddEstimatedMinutes adds v to the "estimated_minutes" field.
func (u *SkillUpsertBulk) AddEstimatedMinutes(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddEstimatedMinutes(v)
	})
}

// UpdateEstimatedMinutes sets the "estimated_minutes" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateEstimatedMinutes() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateEstimatedMinutes()
	})
}

// SetSkillType sets the "skill_type" field.
func (u *SkillUpsertBulk) SetSkillType(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetSkillType(v)
	})
}

// UpdateSkillType sets the "skill_type" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateSkillType() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateSkillType()
	})
}

// SetDepth sets the "depth" field.
func (u *SkillUpsertBulk) SetDepth(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *SkillUpsertBulk) AddDepth(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateDepth() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateDepth()
	})
}

// SetOrder sets the "order" field.
func (u *SkillUpsertBulk) SetOrder(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetOrder(v)
	})
}

// AddOrder adds v to the "order" field.
func (u *SkillUpsertBulk) AddOrder(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddOrder(v)
	})
}

// UpdateOrder sets the "order" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateOrder() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateOrder()
	})
}

// SetPrerequisiteSkillIds sets the "prerequisite_skill_ids" field.
func (u *SkillUpsertBulk) SetPrerequisiteSkillIds(v []string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetPrerequisiteSkillIds(v)
	})
}

// UpdatePrerequisiteSkillIds sets the "prerequisite_skill_ids" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdatePrerequisiteSkillIds() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdatePrerequisiteSkillIds()
	})
}

// ClearPrerequisiteSkillIds clears the value of the "prerequisite_skill_ids" field.
func (u *SkillUpsertBulk) ClearPrerequisiteSkillIds() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearPrerequisiteSkillIds()
	})
}

// SetPrerequisiteQuestIds sets the "prerequisite_quest_ids" field.
func (u *SkillUpsertBulk) SetPrerequisiteQuestIds(v []string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetPrerequisiteQuestIds(v)
	})
}

// UpdatePrerequisiteQuestIds sets the "prerequisite_quest_ids" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdatePrerequisiteQuestIds() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdatePrerequisiteQuestIds()
	})
}

// ClearPrerequisiteQuestIds clears the value of the "prerequisite_quest_ids" field.
func (u *SkillUpsertBulk) ClearPrerequisiteQuestIds() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearPrerequisiteQuestIds()
	})
}

// SetIsCompound sets the "is_compound" field.
func (u *SkillUpsertBulk) SetIsCompound(v bool) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetIsCompound(v)
	})
}

// UpdateIsCompound sets the "is_compound" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateIsCompound() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateIsCompound()
	})
}

// SetComponentSkillIds sets the "component_skill_ids" field.
func (u *SkillUpsertBulk) SetComponentSkillIds(v []string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetComponentSkillIds(v)
	})
}

// UpdateComponentSkillIds sets the "component_skill_ids" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateComponentSkillIds() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateComponentSkillIds()
	})
}

// ClearComponentSkillIds clears the value of the "component_skill_ids" field.
func (u *SkillUpsertBulk) ClearComponentSkillIds() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearComponentSkillIds()
	})
}

// SetWeekNumber sets the "week_number" field.
func (u *SkillUpsertBulk) SetWeekNumber(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetWeekNumber(v)
	})
}

// AddWeekNumber adds v to the "week_number" field.
func (u *SkillUpsertBulk) AddWeekNumber(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddWeekNumber(v)
	})
}

// UpdateWeekNumber sets the "week_number" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateWeekNumber() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateWeekNumber()
	})
}

// SetDayInWeek sets the "day_in_week" field.
func (u *SkillUpsertBulk) SetDayInWeek(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetDayInWeek(v)
	})
}

// AddDayInWeek adds v to the "day_in_week" field.
func (u *SkillUpsertBulk) AddDayInWeek(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddDayInWeek(v)
	})
}

// UpdateDayInWeek sets the "day_in_week" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateDayInWeek() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateDayInWeek()
	})
}

// SetDayInQuest sets the "day_in_quest" field.
func (u *SkillUpsertBulk) SetDayInQuest(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetDayInQuest(v)
	})
}

// AddDayInQuest adds v to the "day_in_quest" field.
func (u *SkillUpsertBulk) AddDayInQuest(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddDayInQuest(v)
	})
}

// UpdateDayInQuest sets the "day_in_quest" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateDayInQuest() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateDayInQuest()
	})
}

// SetMastery sets the "mastery" field.
func (u *SkillUpsertBulk) SetMastery(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetMastery(v)
	})
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateMastery() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateMastery()
	})
}

// SetStatus sets the "status" field.
func (u *SkillUpsertBulk) SetStatus(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateStatus() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateStatus()
	})
}

// SetPassCount sets the "pass_count" field.
func (u *SkillUpsertBulk) SetPassCount(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetPassCount(v)
	})
}

// AddPassCount adds v to the "pass_count" field.
func (u *SkillUpsertBulk) AddPassCount(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddPassCount(v)
	})
}

// UpdatePassCount sets the "pass_count" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdatePassCount() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdatePassCount()
	})
}

// SetFailCount sets the "fail_count" field.
func (u *SkillUpsertBulk) SetFailCount(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetFailCount(v)
	})
}

// AddFailCount adds v to the "fail_count" field.
func (u *SkillUpsertBulk) AddFailCount(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddFailCount(v)
	})
}

// UpdateFailCount sets the "fail_count" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateFailCount() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateFailCount()
	})
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (u *SkillUpsertBulk) SetConsecutivePasses(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetConsecutivePasses(v)
	})
}

// AddConsecutivePasses adds v to the "consecutive_passes" field.
func (u *SkillUpsertBulk) AddConsecutivePasses(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddConsecutivePasses(v)
	})
}

// UpdateConsecutivePasses sets the "consecutive_passes" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateConsecutivePasses() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateConsecutivePasses()
	})
}

// SetMasteredAt sets the "mastered_at" field.
func (u *SkillUpsertBulk) SetMasteredAt(v time.Time) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetMasteredAt(v)
	})
}

// UpdateMasteredAt sets the "mastered_at" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateMasteredAt() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateMasteredAt()
	})
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (u *SkillUpsertBulk) ClearMasteredAt() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearMasteredAt()
	})
}

// SetUnlockedAt sets the "unlocked_at" field.
func (u *SkillUpsertBulk) SetUnlockedAt(v time.Time) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetUnlockedAt(v)
	})
}

// UpdateUnlockedAt sets the "unlocked_at" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateUnlockedAt() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateUnlockedAt()
	})
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (u *SkillUpsertBulk) ClearUnlockedAt() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearUnlockedAt()
	})
}

// Exec executes the query.
func (u *SkillUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SkillCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
