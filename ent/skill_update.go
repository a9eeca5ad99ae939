// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questline/ent/predicate"
	"github.com/abhisek/questline/ent/skill"
)

// SkillUpdate is the builder for updating Skill entities.
type SkillUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdate) Where(ps ...predicate.Skill) *SkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *SkillUpdate) SetSkillID(v string) *SkillUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableSkillID(v *string) *SkillUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *SkillUpdate) SetQuestID(v string) *SkillUpdate {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableQuestID(v *string) *SkillUpdate {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *SkillUpdate) SetGoalID(v string) *SkillUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableGoalID(v *string) *SkillUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SkillUpdate) SetUserID(v string) *SkillUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableUserID(v *string) *SkillUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SkillUpdate) SetTitle(v string) *SkillUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableTitle(v *string) *SkillUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *SkillUpdate) SetTopics(v []string) *SkillUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *SkillUpdate) AppendTopics(v []string) *SkillUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *SkillUpdate) ClearTopics() *SkillUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetAction sets the "action" field.
func (_u *SkillUpdate) SetAction(v string) *SkillUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableAction(v *string) *SkillUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *SkillUpdate) ClearAction() *SkillUpdate {
	_u.mutation.ClearAction()
	return _u
}

// SetSuccessSignal sets the "success_signal" field.
func (_u *SkillUpdate) SetSuccessSignal(v string) *SkillUpdate {
	_u.mutation.SetSuccessSignal(v)
	return _u
}

// SetNillableSuccessSignal sets the "success_signal" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableSuccessSignal(v *string) *SkillUpdate {
	if v != nil {
		_u.SetSuccessSignal(*v)
	}
	return _u
}

// ClearSuccessSignal clears the value of the "success_signal" field.
func (_u *SkillUpdate) ClearSuccessSignal() *SkillUpdate {
	_u.mutation.ClearSuccessSignal()
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *SkillUpdate) SetConstraints(v string) *SkillUpdate {
	_u.mutation.SetConstraints(v)
	return _u
}

// SetNillableConstraints sets the "constraints" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableConstraints(v *string) *SkillUpdate {
	if v != nil {
		_u.SetConstraints(*v)
	}
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *SkillUpdate) ClearConstraints() *SkillUpdate {
	_u.mutation.ClearConstraints()
	return _u
}

// SetTransferScenario sets the "transfer_scenario" field.
func (_u *SkillUpdate) SetTransferScenario(v string) *SkillUpdate {
	_u.mutation.SetTransferScenario(v)
	return _u
}

// SetNillableTransferScenario sets the "transfer_scenario" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableTransferScenario(v *string) *SkillUpdate {
	if v != nil {
		_u.SetTransferScenario(*v)
	}
	return _u
}

// ClearTransferScenario clears the value of the "transfer_scenario" field.
func (_u *SkillUpdate) ClearTransferScenario() *SkillUpdate {
	_u.mutation.ClearTransferScenario()
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *SkillUpdate) SetEstimatedMinutes(v int) *SkillUpdate {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableEstimatedMinutes(v *int) *SkillUpdate {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *SkillUpdate) AddEstimatedMinutes(v int) *SkillUpdate {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetSkillType sets the "skill_type" field.
func (_u *SkillUpdate) SetSkillType(v string) *SkillUpdate {
	_u.mutation.SetSkillType(v)
	return _u
}

// SetNillableSkillType sets the "skill_type" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableSkillType(v *string) *SkillUpdate {
	if v != nil {
		_u.SetSkillType(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *SkillUpdate) SetDepth(v int) *SkillUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableDepth(v *int) *SkillUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *SkillUpdate) AddDepth(v int) *SkillUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetOrder sets the "order" field.
func (_u *SkillUpdate) SetOrder(v int) *SkillUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableOrder(v *int) *SkillUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *SkillUpdate) AddOrder(v int) *SkillUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetPrerequisiteSkillIds sets the "prerequisite_skill_ids" field.
func (_u *SkillUpdate) SetPrerequisiteSkillIds(v []string) *SkillUpdate {
	_u.mutation.SetPrerequisiteSkillIds(v)
	return _u
}

// AppendPrerequisiteSkillIds appends value to the "prerequisite_skill_ids" field.
func (_u *SkillUpdate) AppendPrerequisiteSkillIds(v []string) *SkillUpdate {
	_u.mutation.AppendPrerequisiteSkillIds(v)
	return _u
}

// ClearPrerequisiteSkillIds clears the value of the "prerequisite_skill_ids" field.
func (_u *SkillUpdate) ClearPrerequisiteSkillIds() *SkillUpdate {
	_u.mutation.ClearPrerequisiteSkillIds()
	return _u
}

// SetPrerequisiteQuestIds sets the "prerequisite_quest_ids" field.
func (_u *SkillUpdate) SetPrerequisiteQuestIds(v []string) *SkillUpdate {
	_u.mutation.SetPrerequisiteQuestIds(v)
	return _u
}

// AppendPrerequisiteQuestIds appends value to the "prerequisite_quest_ids" field.
func (_u *SkillUpdate) AppendPrerequisiteQuestIds(v []string) *SkillUpdate {
	_u.mutation.AppendPrerequisiteQuestIds(v)
	return _u
}

// ClearPrerequisiteQuestIds clears the value of the "prerequisite_quest_ids" field.
func (_u *SkillUpdate) ClearPrerequisiteQuestIds() *SkillUpdate {
	_u.mutation.ClearPrerequisiteQuestIds()
	return _u
}

// SetIsCompound sets the "is_compound" field.
func (_u *SkillUpdate) SetIsCompound(v bool) *SkillUpdate {
	_u.mutation.SetIsCompound(v)
	return _u
}

// SetNillableIsCompound sets the "is_compound" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableIsCompound(v *bool) *SkillUpdate {
	if v != nil {
		_u.SetIsCompound(*v)
	}
	return _u
}

// SetComponentSkillIds sets the "component_skill_ids" field.
func (_u *SkillUpdate) SetComponentSkillIds(v []string) *SkillUpdate {
	_u.mutation.SetComponentSkillIds(v)
	return _u
}

// AppendComponentSkillIds appends value to the "component_skill_ids" field.
func (_u *SkillUpdate) AppendComponentSkillIds(v []string) *SkillUpdate {
	_u.mutation.AppendComponentSkillIds(v)
	return _u
}

// ClearComponentSkillIds clears the value of the "component_skill_ids" field.
func (_u *SkillUpdate) ClearComponentSkillIds() *SkillUpdate {
	_u.mutation.ClearComponentSkillIds()
	return _u
}

// SetWeekNumber sets the "week_number" field.
func (_u *SkillUpdate) SetWeekNumber(v int) *SkillUpdate {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableWeekNumber(v *int) *SkillUpdate {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *SkillUpdate) AddWeekNumber(v int) *SkillUpdate {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetDayInWeek sets the "day_in_week" field.
func (_u *SkillUpdate) SetDayInWeek(v int) *SkillUpdate {
	_u.mutation.ResetDayInWeek()
	_u.mutation.SetDayInWeek(v)
	return _u
}

// SetNillableDayInWeek sets the "day_in_week" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableDayInWeek(v *int) *SkillUpdate {
	if v != nil {
		_u.SetDayInWeek(*v)
	}
	return _u
}

// AddDayInWeek adds value to the "day_in_week" field.
func (_u *SkillUpdate) AddDayInWeek(v int) *SkillUpdate {
	_u.mutation.AddDayInWeek(v)
	return _u
}

// SetDayInQuest sets the "day_in_quest" field.
func (_u *SkillUpdate) SetDayInQuest(v int) *SkillUpdate {
	_u.mutation.ResetDayInQuest()
	_u.mutation.SetDayInQuest(v)
	return _u
}

// SetNillableDayInQuest sets the "day_in_quest" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableDayInQuest(v *int) *SkillUpdate {
	if v != nil {
		_u.SetDayInQuest(*v)
	}
	return _u
}

// AddDayInQuest adds value to the "day_in_quest" field.
func (_u *SkillUpdate) AddDayInQuest(v int) *SkillUpdate {
	_u.mutation.AddDayInQuest(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SkillUpdate) SetMastery(v string) *SkillUpdate {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableMastery(v *string) *SkillUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SkillUpdate) SetStatus(v string) *SkillUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableStatus(v *string) *SkillUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPassCount sets the "pass_count" field.
func (_u *SkillUpdate) SetPassCount(v int) *SkillUpdate {
	_u.mutation.ResetPassCount()
	_u.mutation.SetPassCount(v)
	return _u
}

// SetNillablePassCount sets the "pass_count" field if the given value is not nil.
func (_u *SkillUpdate) SetNillablePassCount(v *int) *SkillUpdate {
	if v != nil {
		_u.SetPassCount(*v)
	}
	return _u
}

// AddPassCount adds value to the "pass_count" field.
func (_u *SkillUpdate) AddPassCount(v int) *SkillUpdate {
	_u.mutation.AddPassCount(v)
	return _u
}

// SetFailCount sets the "fail_count" field.
func (_u *SkillUpdate) SetFailCount(v int) *SkillUpdate {
	_u.mutation.ResetFailCount()
	_u.mutation.SetFailCount(v)
	return _u
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableFailCount(v *int) *SkillUpdate {
	if v != nil {
		_u.SetFailCount(*v)
	}
	return _u
}

// AddFailCount adds value to the "fail_count" field.
func (_u *SkillUpdate) AddFailCount(v int) *SkillUpdate {
	_u.mutation.AddFailCount(v)
	return _u
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (_u *SkillUpdate) SetConsecutivePasses(v int) *SkillUpdate {
	_u.mutation.ResetConsecutivePasses()
	_u.mutation.SetConsecutivePasses(v)
	return _u
}

// SetNillableConsecutivePasses sets the "consecutive_passes" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableConsecutivePasses(v *int) *SkillUpdate {
	if v != nil {
		_u.SetConsecutivePasses(*v)
	}
	return _u
}

// AddConsecutivePasses adds value to the "consecutive_passes" field.
func (_u *SkillUpdate) AddConsecutivePasses(v int) *SkillUpdate {
	_u.mutation.AddConsecutivePasses(v)
	return _u
}

// SetMasteredAt sets the "mastered_at" field.
func (_u *SkillUpdate) SetMasteredAt(v time.Time) *SkillUpdate {
	_u.mutation.SetMasteredAt(v)
	return _u
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableMasteredAt(v *time.Time) *SkillUpdate {
	if v != nil {
		_u.SetMasteredAt(*v)
	}
	return _u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (_u *SkillUpdate) ClearMasteredAt() *SkillUpdate {
	_u.mutation.ClearMasteredAt()
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *SkillUpdate) SetUnlockedAt(v time.Time) *SkillUpdate {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableUnlockedAt(v *time.Time) *SkillUpdate {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *SkillUpdate) ClearUnlockedAt() *SkillUpdate {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdate) Mutation() *SkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := skill.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestID(); ok {
		if err := skill.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "Skill.quest_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := skill.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Skill.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := skill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Skill.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := skill.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Skill.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillType(); ok {
		if err := skill.SkillTypeValidator(v); err != nil {
			return &ValidationError{Name: "skill_type", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(skill.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(skill.FieldQuestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(skill.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(skill.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(skill.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(skill.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(skill.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(skill.FieldAction, field.TypeString, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(skill.FieldAction, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessSignal(); ok {
		_spec.SetField(skill.FieldSuccessSignal, field.TypeString, value)
	}
	if _u.mutation.SuccessSignalCleared() {
		_spec.ClearField(skill.FieldSuccessSignal, field.TypeString)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(skill.FieldConstraints, field.TypeString, value)
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(skill.FieldConstraints, field.TypeString)
	}
	if value, ok := _u.mutation.TransferScenario(); ok {
		_spec.SetField(skill.FieldTransferScenario, field.TypeString, value)
	}
	if _u.mutation.TransferScenarioCleared() {
		_spec.ClearField(skill.FieldTransferScenario, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(skill.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(skill.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillType(); ok {
		_spec.SetField(skill.FieldSkillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(skill.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(skill.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(skill.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(skill.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrerequisiteSkillIds(); ok {
		_spec.SetField(skill.FieldPrerequisiteSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisiteSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldPrerequisiteSkillIds, value)
		})
	}
	if _u.mutation.PrerequisiteSkillIdsCleared() {
		_spec.ClearField(skill.FieldPrerequisiteSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrerequisiteQuestIds(); ok {
		_spec.SetField(skill.FieldPrerequisiteQuestIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisiteQuestIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldPrerequisiteQuestIds, value)
		})
	}
	if _u.mutation.PrerequisiteQuestIdsCleared() {
		_spec.ClearField(skill.FieldPrerequisiteQuestIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsCompound(); ok {
		_spec.SetField(skill.FieldIsCompound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ComponentSkillIds(); ok {
		_spec.SetField(skill.FieldComponentSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComponentSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldComponentSkillIds, value)
		})
	}
	if _u.mutation.ComponentSkillIdsCleared() {
		_spec.ClearField(skill.FieldComponentSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(skill.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(skill.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DayInWeek(); ok {
		_spec.SetField(skill.FieldDayInWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayInWeek(); ok {
		_spec.AddField(skill.FieldDayInWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DayInQuest(); ok {
		_spec.SetField(skill.FieldDayInQuest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayInQuest(); ok {
		_spec.AddField(skill.FieldDayInQuest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(skill.FieldMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(skill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassCount(); ok {
		_spec.SetField(skill.FieldPassCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassCount(); ok {
		_spec.AddField(skill.FieldPassCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailCount(); ok {
		_spec.SetField(skill.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailCount(); ok {
		_spec.AddField(skill.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutivePasses(); ok {
		_spec.SetField(skill.FieldConsecutivePasses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutivePasses(); ok {
		_spec.AddField(skill.FieldConsecutivePasses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteredAt(); ok {
		_spec.SetField(skill.FieldMasteredAt, field.TypeTime, value)
	}
	if _u.mutation.MasteredAtCleared() {
		_spec.ClearField(skill.FieldMasteredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(skill.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(skill.FieldUnlockedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillUpdateOne is the builder for updating a single Skill entity.
type SkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *SkillUpdateOne) SetSkillID(v string) *SkillUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableSkillID(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *SkillUpdateOne) SetQuestID(v string) *SkillUpdateOne {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableQuestID(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *SkillUpdateOne) SetGoalID(v string) *SkillUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableGoalID(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SkillUpdateOne) SetUserID(v string) *SkillUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableUserID(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SkillUpdateOne) SetTitle(v string) *SkillUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableTitle(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *SkillUpdateOne) SetTopics(v []string) *SkillUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *SkillUpdateOne) AppendTopics(v []string) *SkillUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *SkillUpdateOne) ClearTopics() *SkillUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetAction sets the "action" field.
func (_u *SkillUpdateOne) SetAction(v string) *SkillUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableAction(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *SkillUpdateOne) ClearAction() *SkillUpdateOne {
	_u.mutation.ClearAction()
	return _u
}

// SetSuccessSignal sets the "success_signal" field.
func (_u *SkillUpdateOne) SetSuccessSignal(v string) *SkillUpdateOne {
	_u.mutation.SetSuccessSignal(v)
	return _u
}

// SetNillableSuccessSignal sets the "success_signal" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableSuccessSignal(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetSuccessSignal(*v)
	}
	return _u
}

// ClearSuccessSignal clears the value of the "success_signal" field.
func (_u *SkillUpdateOne) ClearSuccessSignal() *SkillUpdateOne {
	_u.mutation.ClearSuccessSignal()
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *SkillUpdateOne) SetConstraints(v string) *SkillUpdateOne {
	_u.mutation.SetConstraints(v)
	return _u
}

// SetNillableConstraints sets the "constraints" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableConstraints(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetConstraints(*v)
	}
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *SkillUpdateOne) ClearConstraints() *SkillUpdateOne {
	_u.mutation.ClearConstraints()
	return _u
}

// SetTransferScenario sets the "transfer_scenario" field.
func (_u *SkillUpdateOne) SetTransferScenario(v string) *SkillUpdateOne {
	_u.mutation.SetTransferScenario(v)
	return _u
}

// SetNillableTransferScenario sets the "transfer_scenario" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableTransferScenario(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetTransferScenario(*v)
	}
	return _u
}

// ClearTransferScenario clears the value of the "transfer_scenario" field.
func (_u *SkillUpdateOne) ClearTransferScenario() *SkillUpdateOne {
	_u.mutation.ClearTransferScenario()
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *SkillUpdateOne) SetEstimatedMinutes(v int) *SkillUpdateOne {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableEstimatedMinutes(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *SkillUpdateOne) AddEstimatedMinutes(v int) *SkillUpdateOne {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetSkillType sets the "skill_type" field.
func (_u *SkillUpdateOne) SetSkillType(v string) *SkillUpdateOne {
	_u.mutation.SetSkillType(v)
	return _u
}

// SetNillableSkillType sets the "skill_type" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableSkillType(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetSkillType(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *SkillUpdateOne) SetDepth(v int) *SkillUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableDepth(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *SkillUpdateOne) AddDepth(v int) *SkillUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetOrder sets the "order" field.
func (_u *SkillUpdateOne) SetOrder(v int) *SkillUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableOrder(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *SkillUpdateOne) AddOrder(v int) *SkillUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetPrerequisiteSkillIds sets the "prerequisite_skill_ids" field.
func (_u *SkillUpdateOne) SetPrerequisiteSkillIds(v []string) *SkillUpdateOne {
	_u.mutation.SetPrerequisiteSkillIds(v)
	return _u
}

// AppendPrerequisiteSkillIds appends value to the "prerequisite_skill_ids" field.
func (_u *SkillUpdateOne) AppendPrerequisiteSkillIds(v []string) *SkillUpdateOne {
	_u.mutation.AppendPrerequisiteSkillIds(v)
	return _u
}

// ClearPrerequisiteSkillIds clears the value of the "prerequisite_skill_ids" field.
func (_u *SkillUpdateOne) ClearPrerequisiteSkillIds() *SkillUpdateOne {
	_u.mutation.ClearPrerequisiteSkillIds()
	return _u
}

// SetPrerequisiteQuestIds sets the "prerequisite_quest_ids" field.
func (_u *SkillUpdateOne) SetPrerequisiteQuestIds(v []string) *SkillUpdateOne {
	_u.mutation.SetPrerequisiteQuestIds(v)
	return _u
}

// AppendPrerequisiteQuestIds appends value to the "prerequisite_quest_ids" field.
func (_u *SkillUpdateOne) AppendPrerequisiteQuestIds(v []string) *SkillUpdateOne {
	_u.mutation.AppendPrerequisiteQuestIds(v)
	return _u
}

// ClearPrerequisiteQuestIds clears the value of the "prerequisite_quest_ids" field.
func (_u *SkillUpdateOne) ClearPrerequisiteQuestIds() *SkillUpdateOne {
	_u.mutation.ClearPrerequisiteQuestIds()
	return _u
}

// SetIsCompound sets the "is_compound" field.
func (_u *SkillUpdateOne) SetIsCompound(v bool) *SkillUpdateOne {
	_u.mutation.SetIsCompound(v)
	return _u
}

// SetNillableIsCompound sets the "is_compound" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableIsCompound(v *bool) *SkillUpdateOne {
	if v != nil {
		_u.SetIsCompound(*v)
	}
	return _u
}

// SetComponentSkillIds sets the "component_skill_ids" field.
func (_u *SkillUpdateOne) SetComponentSkillIds(v []string) *SkillUpdateOne {
	_u.mutation.SetComponentSkillIds(v)
	return _u
}

// AppendComponentSkillIds appends value to the "component_skill_ids" field.
func (_u *SkillUpdateOne) AppendComponentSkillIds(v []string) *SkillUpdateOne {
	_u.mutation.AppendComponentSkillIds(v)
	return _u
}

// ClearComponentSkillIds clears the value of the "component_skill_ids" field.
func (_u *SkillUpdateOne) ClearComponentSkillIds() *SkillUpdateOne {
	_u.mutation.ClearComponentSkillIds()
	return _u
}

// SetWeekNumber sets the "week_number" field.
func (_u *SkillUpdateOne) SetWeekNumber(v int) *SkillUpdateOne {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableWeekNumber(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *SkillUpdateOne) AddWeekNumber(v int) *SkillUpdateOne {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetDayInWeek sets the "day_in_week" field.
func (_u *SkillUpdateOne) SetDayInWeek(v int) *SkillUpdateOne {
	_u.mutation.ResetDayInWeek()
	_u.mutation.SetDayInWeek(v)
	return _u
}

// SetNillableDayInWeek sets the "day_in_week" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableDayInWeek(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetDayInWeek(*v)
	}
	return _u
}

// AddDayInWeek adds value to the "day_in_week" field.
func (_u *SkillUpdateOne) AddDayInWeek(v int) *SkillUpdateOne {
	_u.mutation.AddDayInWeek(v)
	return _u
}

// SetDayInQuest sets the "day_in_quest" field.
func (_u *SkillUpdateOne) SetDayInQuest(v int) *SkillUpdateOne {
	_u.mutation.ResetDayInQuest()
	_u.mutation.SetDayInQuest(v)
	return _u
}

// SetNillableDayInQuest sets the "day_in_quest" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableDayInQuest(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetDayInQuest(*v)
	}
	return _u
}

// AddDayInQuest adds value to the "day_in_quest" field.
func (_u *SkillUpdateOne) AddDayInQuest(v int) *SkillUpdateOne {
	_u.mutation.AddDayInQuest(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SkillUpdateOne) SetMastery(v string) *SkillUpdateOne {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableMastery(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SkillUpdateOne) SetStatus(v string) *SkillUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableStatus(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPassCount sets the "pass_count" field.
func (_u *SkillUpdateOne) SetPassCount(v int) *SkillUpdateOne {
	_u.mutation.ResetPassCount()
	_u.mutation.SetPassCount(v)
	return _u
}

// SetNillablePassCount sets the "pass_count" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillablePassCount(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetPassCount(*v)
	}
	return _u
}

// AddPassCount adds value to the "pass_count" field.
func (_u *SkillUpdateOne) AddPassCount(v int) *SkillUpdateOne {
	_u.mutation.AddPassCount(v)
	return _u
}

// SetFailCount sets the "fail_count" field.
func (_u *SkillUpdateOne) SetFailCount(v int) *SkillUpdateOne {
	_u.mutation.ResetFailCount()
	_u.mutation.SetFailCount(v)
	return _u
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableFailCount(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetFailCount(*v)
	}
	return _u
}

// AddFailCount adds value to the "fail_count" field.
func (_u *SkillUpdateOne) AddFailCount(v int) *SkillUpdateOne {
	_u.mutation.AddFailCount(v)
	return _u
}

// SetConsecutivePasses sets the "consecutive_passes" field.
func (_u *SkillUpdateOne) SetConsecutivePasses(v int) *SkillUpdateOne {
	_u.mutation.ResetConsecutivePasses()
	_u.mutation.SetConsecutivePasses(v)
	return _u
}

// SetNillableConsecutivePasses sets the "consecutive_passes" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableConsecutivePasses(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetConsecutivePasses(*v)
	}
	return _u
}

// AddConsecutivePasses adds value to the "consecutive_passes" field.
func (_u *SkillUpdateOne) AddConsecutivePasses(v int) *SkillUpdateOne {
	_u.mutation.AddConsecutivePasses(v)
	return _u
}

// SetMasteredAt sets the "mastered_at" field.
func (_u *SkillUpdateOne) SetMasteredAt(v time.Time) *SkillUpdateOne {
	_u.mutation.SetMasteredAt(v)
	return _u
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableMasteredAt(v *time.Time) *SkillUpdateOne {
	if v != nil {
		_u.SetMasteredAt(*v)
	}
	return _u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (_u *SkillUpdateOne) ClearMasteredAt() *SkillUpdateOne {
	_u.mutation.ClearMasteredAt()
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *SkillUpdateOne) SetUnlockedAt(v time.Time) *SkillUpdateOne {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableUnlockedAt(v *time.Time) *SkillUpdateOne {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *SkillUpdateOne) ClearUnlockedAt() *SkillUpdateOne {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdateOne) Mutation() *SkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdateOne) Where(ps ...predicate.Skill) *SkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillUpdateOne) Select(field string, fields ...string) *SkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Skill entity.
func (_u *SkillUpdateOne) Save(ctx context.Context) (*Skill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdateOne) SaveX(ctx context.Context) *Skill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := skill.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestID(); ok {
		if err := skill.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "Skill.quest_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := skill.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Skill.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := skill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Skill.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := skill.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Skill.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillType(); ok {
		if err := skill.SkillTypeValidator(v); err != nil {
			return &ValidationError{Name: "skill_type", err: fmt.Errorf(`ent: validator failed for field "Skill.skill_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillUpdateOne) sqlSave(ctx context.Context) (_node *Skill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Skill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skill.FieldID)
		for _, f := range fields {
			if !skill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skill.FieldID {
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
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(skill.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(skill.FieldQuestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(skill.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(skill.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(skill.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(skill.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(skill.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(skill.FieldAction, field.TypeString, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(skill.FieldAction, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessSignal(); ok {
		_spec.SetField(skill.FieldSuccessSignal, field.TypeString, value)
	}
	if _u.mutation.SuccessSignalCleared() {
		_spec.ClearField(skill.FieldSuccessSignal, field.TypeString)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(skill.FieldConstraints, field.TypeString, value)
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(skill.FieldConstraints, field.TypeString)
	}
	if value, ok := _u.mutation.TransferScenario(); ok {
		_spec.SetField(skill.FieldTransferScenario, field.TypeString, value)
	}
	if _u.mutation.TransferScenarioCleared() {
		_spec.ClearField(skill.FieldTransferScenario, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(skill.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(skill.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillType(); ok {
		_spec.SetField(skill.FieldSkillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(skill.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(skill.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(skill.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(skill.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrerequisiteSkillIds(); ok {
		_spec.SetField(skill.FieldPrerequisiteSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisiteSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldPrerequisiteSkillIds, value)
		})
	}
	if _u.mutation.PrerequisiteSkillIdsCleared() {
		_spec.ClearField(skill.FieldPrerequisiteSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrerequisiteQuestIds(); ok {
		_spec.SetField(skill.FieldPrerequisiteQuestIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisiteQuestIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldPrerequisiteQuestIds, value)
		})
	}
	if _u.mutation.PrerequisiteQuestIdsCleared() {
		_spec.ClearField(skill.FieldPrerequisiteQuestIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsCompound(); ok {
		_spec.SetField(skill.FieldIsCompound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ComponentSkillIds(); ok {
		_spec.SetField(skill.FieldComponentSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComponentSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldComponentSkillIds, value)
		})
	}
	if _u.mutation.ComponentSkillIdsCleared() {
		_spec.ClearField(skill.FieldComponentSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(skill.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(skill.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DayInWeek(); ok {
		_spec.SetField(skill.FieldDayInWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayInWeek(); ok {
		_spec.AddField(skill.FieldDayInWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DayInQuest(); ok {
		_spec.SetField(skill.FieldDayInQuest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayInQuest(); ok {
		_spec.AddField(skill.FieldDayInQuest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(skill.FieldMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(skill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassCount(); ok {
		_spec.SetField(skill.FieldPassCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassCount(); ok {
		_spec.AddField(skill.FieldPassCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailCount(); ok {
		_spec.SetField(skill.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailCount(); ok {
		_spec.AddField(skill.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutivePasses(); ok {
		_spec.SetField(skill.FieldConsecutivePasses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutivePasses(); ok {
		_spec.AddField(skill.FieldConsecutivePasses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteredAt(); ok {
		_spec.SetField(skill.FieldMasteredAt, field.TypeTime, value)
	}
	if _u.mutation.MasteredAtCleared() {
		_spec.ClearField(skill.FieldMasteredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(skill.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(skill.FieldUnlockedAt, field.TypeTime)
	}
	_node = &Skill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
