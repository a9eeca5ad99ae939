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
	"github.com/abhisek/questline/ent/weekplan"
)

// WeekPlanUpdate is the builder for updating WeekPlan entities.
type WeekPlanUpdate struct {
	config
	hooks    []Hook
	mutation *WeekPlanMutation
}

// Where appends a list predicates to the WeekPlanUpdate builder.
func (_u *WeekPlanUpdate) Where(ps ...predicate.WeekPlan) *WeekPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *WeekPlanUpdate) SetPlanID(v string) *WeekPlanUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillablePlanID(v *string) *WeekPlanUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *WeekPlanUpdate) SetGoalID(v string) *WeekPlanUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableGoalID(v *string) *WeekPlanUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WeekPlanUpdate) SetUserID(v string) *WeekPlanUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableUserID(v *string) *WeekPlanUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *WeekPlanUpdate) ClearUserID() *WeekPlanUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *WeekPlanUpdate) SetQuestID(v string) *WeekPlanUpdate {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableQuestID(v *string) *WeekPlanUpdate {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// SetWeekNumber sets the "week_number" field.
func (_u *WeekPlanUpdate) SetWeekNumber(v int) *WeekPlanUpdate {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableWeekNumber(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *WeekPlanUpdate) AddWeekNumber(v int) *WeekPlanUpdate {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetWeekInQuest sets the "week_in_quest" field.
func (_u *WeekPlanUpdate) SetWeekInQuest(v int) *WeekPlanUpdate {
	_u.mutation.ResetWeekInQuest()
	_u.mutation.SetWeekInQuest(v)
	return _u
}

// SetNillableWeekInQuest sets the "week_in_quest" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableWeekInQuest(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetWeekInQuest(*v)
	}
	return _u
}

// AddWeekInQuest adds value to the "week_in_quest" field.
func (_u *WeekPlanUpdate) AddWeekInQuest(v int) *WeekPlanUpdate {
	_u.mutation.AddWeekInQuest(v)
	return _u
}

// SetIsFirstWeekOfQuest sets the "is_first_week_of_quest" field.
func (_u *WeekPlanUpdate) SetIsFirstWeekOfQuest(v bool) *WeekPlanUpdate {
	_u.mutation.SetIsFirstWeekOfQuest(v)
	return _u
}

// SetNillableIsFirstWeekOfQuest sets the "is_first_week_of_quest" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableIsFirstWeekOfQuest(v *bool) *WeekPlanUpdate {
	if v != nil {
		_u.SetIsFirstWeekOfQuest(*v)
	}
	return _u
}

// SetIsLastWeekOfQuest sets the "is_last_week_of_quest" field.
func (_u *WeekPlanUpdate) SetIsLastWeekOfQuest(v bool) *WeekPlanUpdate {
	_u.mutation.SetIsLastWeekOfQuest(v)
	return _u
}

// SetNillableIsLastWeekOfQuest sets the "is_last_week_of_quest" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableIsLastWeekOfQuest(v *bool) *WeekPlanUpdate {
	if v != nil {
		_u.SetIsLastWeekOfQuest(*v)
	}
	return _u
}

// SetDays sets the "days" field.
func (_u *WeekPlanUpdate) SetDays(v []map[string]interface{}) *WeekPlanUpdate {
	_u.mutation.SetDays(v)
	return _u
}

// AppendDays appends value to the "days" field.
func (_u *WeekPlanUpdate) AppendDays(v []map[string]interface{}) *WeekPlanUpdate {
	_u.mutation.AppendDays(v)
	return _u
}

// ClearDays clears the value of the "days" field.
func (_u *WeekPlanUpdate) ClearDays() *WeekPlanUpdate {
	_u.mutation.ClearDays()
	return _u
}

// SetScheduledSkillIds sets the "scheduled_skill_ids" field.
func (_u *WeekPlanUpdate) SetScheduledSkillIds(v []string) *WeekPlanUpdate {
	_u.mutation.SetScheduledSkillIds(v)
	return _u
}

// AppendScheduledSkillIds appends value to the "scheduled_skill_ids" field.
func (_u *WeekPlanUpdate) AppendScheduledSkillIds(v []string) *WeekPlanUpdate {
	_u.mutation.AppendScheduledSkillIds(v)
	return _u
}

// ClearScheduledSkillIds clears the value of the "scheduled_skill_ids" field.
func (_u *WeekPlanUpdate) ClearScheduledSkillIds() *WeekPlanUpdate {
	_u.mutation.ClearScheduledSkillIds()
	return _u
}

// SetCarryForwardSkillIds sets the "carry_forward_skill_ids" field.
func (_u *WeekPlanUpdate) SetCarryForwardSkillIds(v []string) *WeekPlanUpdate {
	_u.mutation.SetCarryForwardSkillIds(v)
	return _u
}

// AppendCarryForwardSkillIds appends value to the "carry_forward_skill_ids" field.
func (_u *WeekPlanUpdate) AppendCarryForwardSkillIds(v []string) *WeekPlanUpdate {
	_u.mutation.AppendCarryForwardSkillIds(v)
	return _u
}

// ClearCarryForwardSkillIds clears the value of the "carry_forward_skill_ids" field.
func (_u *WeekPlanUpdate) ClearCarryForwardSkillIds() *WeekPlanUpdate {
	_u.mutation.ClearCarryForwardSkillIds()
	return _u
}

// SetReviewsFromQuestIds sets the "reviews_from_quest_ids" field.
func (_u *WeekPlanUpdate) SetReviewsFromQuestIds(v []string) *WeekPlanUpdate {
	_u.mutation.SetReviewsFromQuestIds(v)
	return _u
}

// AppendReviewsFromQuestIds appends value to the "reviews_from_quest_ids" field.
func (_u *WeekPlanUpdate) AppendReviewsFromQuestIds(v []string) *WeekPlanUpdate {
	_u.mutation.AppendReviewsFromQuestIds(v)
	return _u
}

// ClearReviewsFromQuestIds clears the value of the "reviews_from_quest_ids" field.
func (_u *WeekPlanUpdate) ClearReviewsFromQuestIds() *WeekPlanUpdate {
	_u.mutation.ClearReviewsFromQuestIds()
	return _u
}

// SetBuildsOnSkillIds sets the "builds_on_skill_ids" field.
func (_u *WeekPlanUpdate) SetBuildsOnSkillIds(v []string) *WeekPlanUpdate {
	_u.mutation.SetBuildsOnSkillIds(v)
	return _u
}

// AppendBuildsOnSkillIds appends value to the "builds_on_skill_ids" field.
func (_u *WeekPlanUpdate) AppendBuildsOnSkillIds(v []string) *WeekPlanUpdate {
	_u.mutation.AppendBuildsOnSkillIds(v)
	return _u
}

// ClearBuildsOnSkillIds clears the value of the "builds_on_skill_ids" field.
func (_u *WeekPlanUpdate) ClearBuildsOnSkillIds() *WeekPlanUpdate {
	_u.mutation.ClearBuildsOnSkillIds()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *WeekPlanUpdate) SetTheme(v string) *WeekPlanUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableTheme(v *string) *WeekPlanUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *WeekPlanUpdate) ClearTheme() *WeekPlanUpdate {
	_u.mutation.ClearTheme()
	return _u
}

// SetWeeklyCompetence sets the "weekly_competence" field.
func (_u *WeekPlanUpdate) SetWeeklyCompetence(v string) *WeekPlanUpdate {
	_u.mutation.SetWeeklyCompetence(v)
	return _u
}

// SetNillableWeeklyCompetence sets the "weekly_competence" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableWeeklyCompetence(v *string) *WeekPlanUpdate {
	if v != nil {
		_u.SetWeeklyCompetence(*v)
	}
	return _u
}

// ClearWeeklyCompetence clears the value of the "weekly_competence" field.
func (_u *WeekPlanUpdate) ClearWeeklyCompetence() *WeekPlanUpdate {
	_u.mutation.ClearWeeklyCompetence()
	return _u
}

// SetDrillsCompleted sets the "drills_completed" field.
func (_u *WeekPlanUpdate) SetDrillsCompleted(v int) *WeekPlanUpdate {
	_u.mutation.ResetDrillsCompleted()
	_u.mutation.SetDrillsCompleted(v)
	return _u
}

// SetNillableDrillsCompleted sets the "drills_completed" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableDrillsCompleted(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetDrillsCompleted(*v)
	}
	return _u
}

// AddDrillsCompleted adds value to the "drills_completed" field.
func (_u *WeekPlanUpdate) AddDrillsCompleted(v int) *WeekPlanUpdate {
	_u.mutation.AddDrillsCompleted(v)
	return _u
}

// SetDrillsPassed sets the "drills_passed" field.
func (_u *WeekPlanUpdate) SetDrillsPassed(v int) *WeekPlanUpdate {
	_u.mutation.ResetDrillsPassed()
	_u.mutation.SetDrillsPassed(v)
	return _u
}

// SetNillableDrillsPassed sets the "drills_passed" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableDrillsPassed(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetDrillsPassed(*v)
	}
	return _u
}

// AddDrillsPassed adds value to the "drills_passed" field.
func (_u *WeekPlanUpdate) AddDrillsPassed(v int) *WeekPlanUpdate {
	_u.mutation.AddDrillsPassed(v)
	return _u
}

// SetDrillsFailed sets the "drills_failed" field.
func (_u *WeekPlanUpdate) SetDrillsFailed(v int) *WeekPlanUpdate {
	_u.mutation.ResetDrillsFailed()
	_u.mutation.SetDrillsFailed(v)
	return _u
}

// SetNillableDrillsFailed sets the "drills_failed" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableDrillsFailed(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetDrillsFailed(*v)
	}
	return _u
}

// AddDrillsFailed adds value to the "drills_failed" field.
func (_u *WeekPlanUpdate) AddDrillsFailed(v int) *WeekPlanUpdate {
	_u.mutation.AddDrillsFailed(v)
	return _u
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (_u *WeekPlanUpdate) SetDrillsSkipped(v int) *WeekPlanUpdate {
	_u.mutation.ResetDrillsSkipped()
	_u.mutation.SetDrillsSkipped(v)
	return _u
}

// SetNillableDrillsSkipped sets the "drills_skipped" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableDrillsSkipped(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetDrillsSkipped(*v)
	}
	return _u
}

// AddDrillsSkipped adds value to the "drills_skipped" field.
func (_u *WeekPlanUpdate) AddDrillsSkipped(v int) *WeekPlanUpdate {
	_u.mutation.AddDrillsSkipped(v)
	return _u
}

// SetSkillsMastered sets the "skills_mastered" field.
func (_u *WeekPlanUpdate) SetSkillsMastered(v int) *WeekPlanUpdate {
	_u.mutation.ResetSkillsMastered()
	_u.mutation.SetSkillsMastered(v)
	return _u
}

// SetNillableSkillsMastered sets the "skills_mastered" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableSkillsMastered(v *int) *WeekPlanUpdate {
	if v != nil {
		_u.SetSkillsMastered(*v)
	}
	return _u
}

// AddSkillsMastered adds value to the "skills_mastered" field.
func (_u *WeekPlanUpdate) AddSkillsMastered(v int) *WeekPlanUpdate {
	_u.mutation.AddSkillsMastered(v)
	return _u
}

// SetPassRate sets the "pass_rate" field.
func (_u *WeekPlanUpdate) SetPassRate(v float64) *WeekPlanUpdate {
	_u.mutation.ResetPassRate()
	_u.mutation.SetPassRate(v)
	return _u
}

// SetNillablePassRate sets the "pass_rate" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillablePassRate(v *float64) *WeekPlanUpdate {
	if v != nil {
		_u.SetPassRate(*v)
	}
	return _u
}

// AddPassRate adds value to the "pass_rate" field.
func (_u *WeekPlanUpdate) AddPassRate(v float64) *WeekPlanUpdate {
	_u.mutation.AddPassRate(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WeekPlanUpdate) SetStatus(v string) *WeekPlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableStatus(v *string) *WeekPlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *WeekPlanUpdate) SetStartDate(v time.Time) *WeekPlanUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableStartDate(v *time.Time) *WeekPlanUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WeekPlanUpdate) SetCreatedAt(v time.Time) *WeekPlanUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WeekPlanUpdate) SetNillableCreatedAt(v *time.Time) *WeekPlanUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the WeekPlanMutation object of the builder.
func (_u *WeekPlanUpdate) Mutation() *WeekPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeekPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeekPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeekPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeekPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeekPlanUpdate) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := weekplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := weekplan.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestID(); ok {
		if err := weekplan.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.quest_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WeekPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weekplan.Table, weekplan.Columns, sqlgraph.NewFieldSpec(weekplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(weekplan.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(weekplan.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(weekplan.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(weekplan.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(weekplan.FieldQuestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(weekplan.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(weekplan.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekInQuest(); ok {
		_spec.SetField(weekplan.FieldWeekInQuest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekInQuest(); ok {
		_spec.AddField(weekplan.FieldWeekInQuest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsFirstWeekOfQuest(); ok {
		_spec.SetField(weekplan.FieldIsFirstWeekOfQuest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsLastWeekOfQuest(); ok {
		_spec.SetField(weekplan.FieldIsLastWeekOfQuest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(weekplan.FieldDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldDays, value)
		})
	}
	if _u.mutation.DaysCleared() {
		_spec.ClearField(weekplan.FieldDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledSkillIds(); ok {
		_spec.SetField(weekplan.FieldScheduledSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScheduledSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldScheduledSkillIds, value)
		})
	}
	if _u.mutation.ScheduledSkillIdsCleared() {
		_spec.ClearField(weekplan.FieldScheduledSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CarryForwardSkillIds(); ok {
		_spec.SetField(weekplan.FieldCarryForwardSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCarryForwardSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldCarryForwardSkillIds, value)
		})
	}
	if _u.mutation.CarryForwardSkillIdsCleared() {
		_spec.ClearField(weekplan.FieldCarryForwardSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewsFromQuestIds(); ok {
		_spec.SetField(weekplan.FieldReviewsFromQuestIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewsFromQuestIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldReviewsFromQuestIds, value)
		})
	}
	if _u.mutation.ReviewsFromQuestIdsCleared() {
		_spec.ClearField(weekplan.FieldReviewsFromQuestIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.BuildsOnSkillIds(); ok {
		_spec.SetField(weekplan.FieldBuildsOnSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBuildsOnSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldBuildsOnSkillIds, value)
		})
	}
	if _u.mutation.BuildsOnSkillIdsCleared() {
		_spec.ClearField(weekplan.FieldBuildsOnSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(weekplan.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(weekplan.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.WeeklyCompetence(); ok {
		_spec.SetField(weekplan.FieldWeeklyCompetence, field.TypeString, value)
	}
	if _u.mutation.WeeklyCompetenceCleared() {
		_spec.ClearField(weekplan.FieldWeeklyCompetence, field.TypeString)
	}
	if value, ok := _u.mutation.DrillsCompleted(); ok {
		_spec.SetField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsCompleted(); ok {
		_spec.AddField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsPassed(); ok {
		_spec.SetField(weekplan.FieldDrillsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsPassed(); ok {
		_spec.AddField(weekplan.FieldDrillsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsFailed(); ok {
		_spec.SetField(weekplan.FieldDrillsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsFailed(); ok {
		_spec.AddField(weekplan.FieldDrillsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsSkipped(); ok {
		_spec.SetField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsSkipped(); ok {
		_spec.AddField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillsMastered(); ok {
		_spec.SetField(weekplan.FieldSkillsMastered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillsMastered(); ok {
		_spec.AddField(weekplan.FieldSkillsMastered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassRate(); ok {
		_spec.SetField(weekplan.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassRate(); ok {
		_spec.AddField(weekplan.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(weekplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(weekplan.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(weekplan.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weekplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeekPlanUpdateOne is the builder for updating a single WeekPlan entity.
type WeekPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeekPlanMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *WeekPlanUpdateOne) SetPlanID(v string) *WeekPlanUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillablePlanID(v *string) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *WeekPlanUpdateOne) SetGoalID(v string) *WeekPlanUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableGoalID(v *string) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WeekPlanUpdateOne) SetUserID(v string) *WeekPlanUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableUserID(v *string) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *WeekPlanUpdateOne) ClearUserID() *WeekPlanUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *WeekPlanUpdateOne) SetQuestID(v string) *WeekPlanUpdateOne {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableQuestID(v *string) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// SetWeekNumber sets the "week_number" field.
func (_u *WeekPlanUpdateOne) SetWeekNumber(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableWeekNumber(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *WeekPlanUpdateOne) AddWeekNumber(v int) *WeekPlanUpdateOne {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetWeekInQuest sets the "week_in_quest" field.
func (_u *WeekPlanUpdateOne) SetWeekInQuest(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetWeekInQuest()
	_u.mutation.SetWeekInQuest(v)
	return _u
}

// SetNillableWeekInQuest sets the "week_in_quest" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableWeekInQuest(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetWeekInQuest(*v)
	}
	return _u
}

// AddWeekInQuest adds value to the "week_in_quest" field.
func (_u *WeekPlanUpdateOne) AddWeekInQuest(v int) *WeekPlanUpdateOne {
	_u.mutation.AddWeekInQuest(v)
	return _u
}

// SetIsFirstWeekOfQuest sets the "is_first_week_of_quest" field.
func (_u *WeekPlanUpdateOne) SetIsFirstWeekOfQuest(v bool) *WeekPlanUpdateOne {
	_u.mutation.SetIsFirstWeekOfQuest(v)
	return _u
}

// SetNillableIsFirstWeekOfQuest sets the "is_first_week_of_quest" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableIsFirstWeekOfQuest(v *bool) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetIsFirstWeekOfQuest(*v)
	}
	return _u
}

// SetIsLastWeekOfQuest sets the "is_last_week_of_quest" field.
func (_u *WeekPlanUpdateOne) SetIsLastWeekOfQuest(v bool) *WeekPlanUpdateOne {
	_u.mutation.SetIsLastWeekOfQuest(v)
	return _u
}

// SetNillableIsLastWeekOfQuest sets the "is_last_week_of_quest" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableIsLastWeekOfQuest(v *bool) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetIsLastWeekOfQuest(*v)
	}
	return _u
}

// SetDays sets the "days" field.
func (_u *WeekPlanUpdateOne) SetDays(v []map[string]interface{}) *WeekPlanUpdateOne {
	_u.mutation.SetDays(v)
	return _u
}

// AppendDays appends value to the "days" field.
func (_u *WeekPlanUpdateOne) AppendDays(v []map[string]interface{}) *WeekPlanUpdateOne {
	_u.mutation.AppendDays(v)
	return _u
}

// ClearDays clears the value of the "days" field.
func (_u *WeekPlanUpdateOne) ClearDays() *WeekPlanUpdateOne {
	_u.mutation.ClearDays()
	return _u
}

// SetScheduledSkillIds sets the "scheduled_skill_ids" field.
func (_u *WeekPlanUpdateOne) SetScheduledSkillIds(v []string) *WeekPlanUpdateOne {
	_u.mutation.SetScheduledSkillIds(v)
	return _u
}

// AppendScheduledSkillIds appends value to the "scheduled_skill_ids" field.
func (_u *WeekPlanUpdateOne) AppendScheduledSkillIds(v []string) *WeekPlanUpdateOne {
	_u.mutation.AppendScheduledSkillIds(v)
	return _u
}

// ClearScheduledSkillIds clears the value of the "scheduled_skill_ids" field.
func (_u *WeekPlanUpdateOne) ClearScheduledSkillIds() *WeekPlanUpdateOne {
	_u.mutation.ClearScheduledSkillIds()
	return _u
}

// SetCarryForwardSkillIds sets the "carry_forward_skill_ids" field.
func (_u *WeekPlanUpdateOne) SetCarryForwardSkillIds(v []string) *WeekPlanUpdateOne {
	_u.mutation.SetCarryForwardSkillIds(v)
	return _u
}

// AppendCarryForwardSkillIds appends value to the "carry_forward_skill_ids" field.
func (_u *WeekPlanUpdateOne) AppendCarryForwardSkillIds(v []string) *WeekPlanUpdateOne {
	_u.mutation.AppendCarryForwardSkillIds(v)
	return _u
}

// ClearCarryForwardSkillIds clears the value of the "carry_forward_skill_ids" field.
func (_u *WeekPlanUpdateOne) ClearCarryForwardSkillIds() *WeekPlanUpdateOne {
	_u.mutation.ClearCarryForwardSkillIds()
	return _u
}

// SetReviewsFromQuestIds sets the "reviews_from_quest_ids" field.
func (_u *WeekPlanUpdateOne) SetReviewsFromQuestIds(v []string) *WeekPlanUpdateOne {
	_u.mutation.SetReviewsFromQuestIds(v)
	return _u
}

// AppendReviewsFromQuestIds appends value to the "reviews_from_quest_ids" field.
func (_u *WeekPlanUpdateOne) AppendReviewsFromQuestIds(v []string) *WeekPlanUpdateOne {
	_u.mutation.AppendReviewsFromQuestIds(v)
	return _u
}

// ClearReviewsFromQuestIds clears the value of the "reviews_from_quest_ids" field.
func (_u *WeekPlanUpdateOne) ClearReviewsFromQuestIds() *WeekPlanUpdateOne {
	_u.mutation.ClearReviewsFromQuestIds()
	return _u
}

// SetBuildsOnSkillIds sets the "builds_on_skill_ids" field.
func (_u *WeekPlanUpdateOne) SetBuildsOnSkillIds(v []string) *WeekPlanUpdateOne {
	_u.mutation.SetBuildsOnSkillIds(v)
	return _u
}

// AppendBuildsOnSkillIds appends value to the "builds_on_skill_ids" field.
func (_u *WeekPlanUpdateOne) AppendBuildsOnSkillIds(v []string) *WeekPlanUpdateOne {
	_u.mutation.AppendBuildsOnSkillIds(v)
	return _u
}

// ClearBuildsOnSkillIds clears the value of the "builds_on_skill_ids" field.
func (_u *WeekPlanUpdateOne) ClearBuildsOnSkillIds() *WeekPlanUpdateOne {
	_u.mutation.ClearBuildsOnSkillIds()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *WeekPlanUpdateOne) SetTheme(v string) *WeekPlanUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableTheme(v *string) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *WeekPlanUpdateOne) ClearTheme() *WeekPlanUpdateOne {
	_u.mutation.ClearTheme()
	return _u
}

// SetWeeklyCompetence sets the "weekly_competence" field.
func (_u *WeekPlanUpdateOne) SetWeeklyCompetence(v string) *WeekPlanUpdateOne {
	_u.mutation.SetWeeklyCompetence(v)
	return _u
}

// SetNillableWeeklyCompetence sets the "weekly_competence" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableWeeklyCompetence(v *string) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetWeeklyCompetence(*v)
	}
	return _u
}

// ClearWeeklyCompetence clears the value of the "weekly_competence" field.
func (_u *WeekPlanUpdateOne) ClearWeeklyCompetence() *WeekPlanUpdateOne {
	_u.mutation.ClearWeeklyCompetence()
	return _u
}

// SetDrillsCompleted sets the "drills_completed" field.
func (_u *WeekPlanUpdateOne) SetDrillsCompleted(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetDrillsCompleted()
	_u.mutation.SetDrillsCompleted(v)
	return _u
}

// SetNillableDrillsCompleted sets the "drills_completed" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableDrillsCompleted(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetDrillsCompleted(*v)
	}
	return _u
}

// AddDrillsCompleted adds value to the "drills_completed" field.
func (_u *WeekPlanUpdateOne) AddDrillsCompleted(v int) *WeekPlanUpdateOne {
	_u.mutation.AddDrillsCompleted(v)
	return _u
}

// SetDrillsPassed sets the "drills_passed" field.
func (_u *WeekPlanUpdateOne) SetDrillsPassed(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetDrillsPassed()
	_u.mutation.SetDrillsPassed(v)
	return _u
}

// SetNillableDrillsPassed sets the "drills_passed" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableDrillsPassed(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetDrillsPassed(*v)
	}
	return _u
}

// AddDrillsPassed adds value to the "drills_passed" field.
func (_u *WeekPlanUpdateOne) AddDrillsPassed(v int) *WeekPlanUpdateOne {
	_u.mutation.AddDrillsPassed(v)
	return _u
}

// SetDrillsFailed sets the "drills_failed" field.
func (_u *WeekPlanUpdateOne) SetDrillsFailed(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetDrillsFailed()
	_u.mutation.SetDrillsFailed(v)
	return _u
}

// SetNillableDrillsFailed sets the "drills_failed" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableDrillsFailed(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetDrillsFailed(*v)
	}
	return _u
}

// AddDrillsFailed adds value to the "drills_failed" field.
func (_u *WeekPlanUpdateOne) AddDrillsFailed(v int) *WeekPlanUpdateOne {
	_u.mutation.AddDrillsFailed(v)
	return _u
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (_u *WeekPlanUpdateOne) SetDrillsSkipped(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetDrillsSkipped()
	_u.mutation.SetDrillsSkipped(v)
	return _u
}

// SetNillableDrillsSkipped sets the "drills_skipped" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableDrillsSkipped(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetDrillsSkipped(*v)
	}
	return _u
}

// AddDrillsSkipped adds value to the "drills_skipped" field.
func (_u *WeekPlanUpdateOne) AddDrillsSkipped(v int) *WeekPlanUpdateOne {
	_u.mutation.AddDrillsSkipped(v)
	return _u
}

// SetSkillsMastered sets the "skills_mastered" field.
func (_u *WeekPlanUpdateOne) SetSkillsMastered(v int) *WeekPlanUpdateOne {
	_u.mutation.ResetSkillsMastered()
	_u.mutation.SetSkillsMastered(v)
	return _u
}

// SetNillableSkillsMastered sets the "skills_mastered" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableSkillsMastered(v *int) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetSkillsMastered(*v)
	}
	return _u
}

// AddSkillsMastered adds value to the "skills_mastered" field.
func (_u *WeekPlanUpdateOne) AddSkillsMastered(v int) *WeekPlanUpdateOne {
	_u.mutation.AddSkillsMastered(v)
	return _u
}

// SetPassRate sets the "pass_rate" field.
func (_u *WeekPlanUpdateOne) SetPassRate(v float64) *WeekPlanUpdateOne {
	_u.mutation.ResetPassRate()
	_u.mutation.SetPassRate(v)
	return _u
}

// SetNillablePassRate sets the "pass_rate" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillablePassRate(v *float64) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetPassRate(*v)
	}
	return _u
}

// AddPassRate adds value to the "pass_rate" field.
func (_u *WeekPlanUpdateOne) AddPassRate(v float64) *WeekPlanUpdateOne {
	_u.mutation.AddPassRate(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WeekPlanUpdateOne) SetStatus(v string) *WeekPlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableStatus(v *string) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *WeekPlanUpdateOne) SetStartDate(v time.Time) *WeekPlanUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableStartDate(v *time.Time) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WeekPlanUpdateOne) SetCreatedAt(v time.Time) *WeekPlanUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WeekPlanUpdateOne) SetNillableCreatedAt(v *time.Time) *WeekPlanUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the WeekPlanMutation object of the builder.
func (_u *WeekPlanUpdateOne) Mutation() *WeekPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeekPlanUpdate builder.
func (_u *WeekPlanUpdateOne) Where(ps ...predicate.WeekPlan) *WeekPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeekPlanUpdateOne) Select(field string, fields ...string) *WeekPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeekPlan entity.
func (_u *WeekPlanUpdateOne) Save(ctx context.Context) (*WeekPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeekPlanUpdateOne) SaveX(ctx context.Context) *WeekPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeekPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeekPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeekPlanUpdateOne) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := weekplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := weekplan.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestID(); ok {
		if err := weekplan.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.quest_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WeekPlanUpdateOne) sqlSave(ctx context.Context) (_node *WeekPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weekplan.Table, weekplan.Columns, sqlgraph.NewFieldSpec(weekplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeekPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weekplan.FieldID)
		for _, f := range fields {
			if !weekplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weekplan.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(weekplan.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(weekplan.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(weekplan.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(weekplan.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(weekplan.FieldQuestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(weekplan.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(weekplan.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekInQuest(); ok {
		_spec.SetField(weekplan.FieldWeekInQuest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekInQuest(); ok {
		_spec.AddField(weekplan.FieldWeekInQuest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsFirstWeekOfQuest(); ok {
		_spec.SetField(weekplan.FieldIsFirstWeekOfQuest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsLastWeekOfQuest(); ok {
		_spec.SetField(weekplan.FieldIsLastWeekOfQuest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(weekplan.FieldDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldDays, value)
		})
	}
	if _u.mutation.DaysCleared() {
		_spec.ClearField(weekplan.FieldDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledSkillIds(); ok {
		_spec.SetField(weekplan.FieldScheduledSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScheduledSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldScheduledSkillIds, value)
		})
	}
	if _u.mutation.ScheduledSkillIdsCleared() {
		_spec.ClearField(weekplan.FieldScheduledSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CarryForwardSkillIds(); ok {
		_spec.SetField(weekplan.FieldCarryForwardSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCarryForwardSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldCarryForwardSkillIds, value)
		})
	}
	if _u.mutation.CarryForwardSkillIdsCleared() {
		_spec.ClearField(weekplan.FieldCarryForwardSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewsFromQuestIds(); ok {
		_spec.SetField(weekplan.FieldReviewsFromQuestIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewsFromQuestIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldReviewsFromQuestIds, value)
		})
	}
	if _u.mutation.ReviewsFromQuestIdsCleared() {
		_spec.ClearField(weekplan.FieldReviewsFromQuestIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.BuildsOnSkillIds(); ok {
		_spec.SetField(weekplan.FieldBuildsOnSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBuildsOnSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weekplan.FieldBuildsOnSkillIds, value)
		})
	}
	if _u.mutation.BuildsOnSkillIdsCleared() {
		_spec.ClearField(weekplan.FieldBuildsOnSkillIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(weekplan.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(weekplan.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.WeeklyCompetence(); ok {
		_spec.SetField(weekplan.FieldWeeklyCompetence, field.TypeString, value)
	}
	if _u.mutation.WeeklyCompetenceCleared() {
		_spec.ClearField(weekplan.FieldWeeklyCompetence, field.TypeString)
	}
	if value, ok := _u.mutation.DrillsCompleted(); ok {
		_spec.SetField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsCompleted(); ok {
		_spec.AddField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsPassed(); ok {
		_spec.SetField(weekplan.FieldDrillsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsPassed(); ok {
		_spec.AddField(weekplan.FieldDrillsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsFailed(); ok {
		_spec.SetField(weekplan.FieldDrillsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsFailed(); ok {
		_spec.AddField(weekplan.FieldDrillsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DrillsSkipped(); ok {
		_spec.SetField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrillsSkipped(); ok {
		_spec.AddField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillsMastered(); ok {
		_spec.SetField(weekplan.FieldSkillsMastered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillsMastered(); ok {
		_spec.AddField(weekplan.FieldSkillsMastered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassRate(); ok {
		_spec.SetField(weekplan.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassRate(); ok {
		_spec.AddField(weekplan.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(weekplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(weekplan.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(weekplan.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &WeekPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weekplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
