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
	"github.com/abhisek/questline/ent/weekplan"
)

// WeekPlanCreate is the builder for creating a WeekPlan entity.
type WeekPlanCreate struct {
	config
	mutation *WeekPlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlanID sets the "plan_id" field.
func (_c *WeekPlanCreate) SetPlanID(v string) *WeekPlanCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *WeekPlanCreate) SetGoalID(v string) *WeekPlanCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *WeekPlanCreate) SetUserID(v string) *WeekPlanCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableUserID(v *string) *WeekPlanCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetQuestID sets the "quest_id" field.
func (_c *WeekPlanCreate) SetQuestID(v string) *WeekPlanCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetWeekNumber sets the "week_number" field.
func (_c *WeekPlanCreate) SetWeekNumber(v int) *WeekPlanCreate {
	_c.mutation.SetWeekNumber(v)
	return _c
}

// SetWeekInQuest sets the "week_in_quest" field.
func (_c *WeekPlanCreate) SetWeekInQuest(v int) *WeekPlanCreate {
	_c.mutation.SetWeekInQuest(v)
	return _c
}

// SetIsFirstWeekOfQuest sets the "is_first_week_of_quest" field.
func (_c *WeekPlanCreate) SetIsFirstWeekOfQuest(v bool) *WeekPlanCreate {
	_c.mutation.SetIsFirstWeekOfQuest(v)
	return _c
}

// SetNillableIsFirstWeekOfQuest sets the "is_first_week_of_quest" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableIsFirstWeekOfQuest(v *bool) *WeekPlanCreate {
	if v != nil {
		_c.SetIsFirstWeekOfQuest(*v)
	}
	return _c
}

// SetIsLastWeekOfQuest sets the "is_last_week_of_quest" field.
func (_c *WeekPlanCreate) SetIsLastWeekOfQuest(v bool) *WeekPlanCreate {
	_c.mutation.SetIsLastWeekOfQuest(v)
	return _c
}

// SetNillableIsLastWeekOfQuest sets the "is_last_week_of_quest" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableIsLastWeekOfQuest(v *bool) *WeekPlanCreate {
	if v != nil {
		_c.SetIsLastWeekOfQuest(*v)
	}
	return _c
}

// SetDays sets the "days" field.
func (_c *WeekPlanCreate) SetDays(v []map[string]interface{}) *WeekPlanCreate {
	_c.mutation.SetDays(v)
	return _c
}

// SetScheduledSkillIds sets the "scheduled_skill_ids" field.
func (_c *WeekPlanCreate) SetScheduledSkillIds(v []string) *WeekPlanCreate {
	_c.mutation.SetScheduledSkillIds(v)
	return _c
}

// SetCarryForwardSkillIds sets the "carry_forward_skill_ids" field.
func (_c *WeekPlanCreate) SetCarryForwardSkillIds(v []string) *WeekPlanCreate {
	_c.mutation.SetCarryForwardSkillIds(v)
	return _c
}

// SetReviewsFromQuestIds sets the "reviews_from_quest_ids" field.
func (_c *WeekPlanCreate) SetReviewsFromQuestIds(v []string) *WeekPlanCreate {
	_c.mutation.SetReviewsFromQuestIds(v)
	return _c
}

// SetBuildsOnSkillIds sets the "builds_on_skill_ids" field.
func (_c *WeekPlanCreate) SetBuildsOnSkillIds(v []string) *WeekPlanCreate {
	_c.mutation.SetBuildsOnSkillIds(v)
	return _c
}

// SetTheme sets the "theme" field.
func (_c *WeekPlanCreate) SetTheme(v string) *WeekPlanCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableTheme(v *string) *WeekPlanCreate {
	if v != nil {
		_c.SetTheme(*v)
	}
	return _c
}

// SetWeeklyCompetence sets the "weekly_competence" field.
func (_c *WeekPlanCreate) SetWeeklyCompetence(v string) *WeekPlanCreate {
	_c.mutation.SetWeeklyCompetence(v)
	return _c
}

// SetNillableWeeklyCompetence sets the "weekly_competence" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableWeeklyCompetence(v *string) *WeekPlanCreate {
	if v != nil {
		_c.SetWeeklyCompetence(*v)
	}
	return _c
}

// SetDrillsCompleted sets the "drills_completed" field.
func (_c *WeekPlanCreate) SetDrillsCompleted(v int) *WeekPlanCreate {
	_c.mutation.SetDrillsCompleted(v)
	return _c
}

// SetNillableDrillsCompleted sets the "drills_completed" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableDrillsCompleted(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetDrillsCompleted(*v)
	}
	return _c
}

// SetDrillsPassed sets the "drills_passed" field.
func (_c *WeekPlanCreate) SetDrillsPassed(v int) *WeekPlanCreate {
	_c.mutation.SetDrillsPassed(v)
	return _c
}

// SetNillableDrillsPassed sets the "drills_passed" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableDrillsPassed(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetDrillsPassed(*v)
	}
	return _c
}

// SetDrillsFailed sets the "drills_failed" field.
func (_c *WeekPlanCreate) SetDrillsFailed(v int) *WeekPlanCreate {
	_c.mutation.SetDrillsFailed(v)
	return _c
}

// SetNillableDrillsFailed sets the "drills_failed" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableDrillsFailed(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetDrillsFailed(*v)
	}
	return _c
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (_c *WeekPlanCreate) SetDrillsSkipped(v int) *WeekPlanCreate {
	_c.mutation.SetDrillsSkipped(v)
	return _c
}

// SetNillableDrillsSkipped sets the "drills_skipped" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableDrillsSkipped(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetDrillsSkipped(*v)
	}
	return _c
}

// SetSkillsMastered sets the "skills_mastered" field.
func (_c *WeekPlanCreate) SetSkillsMastered(v int) *WeekPlanCreate {
	_c.mutation.SetSkillsMastered(v)
	return _c
}

// SetNillableSkillsMastered sets the "skills_mastered" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableSkillsMastered(v *int) *WeekPlanCreate {
	if v != nil {
		_c.SetSkillsMastered(*v)
	}
	return _c
}

// SetPassRate sets the "pass_rate" field.
func (_c *WeekPlanCreate) SetPassRate(v float64) *WeekPlanCreate {
	_c.mutation.SetPassRate(v)
	return _c
}

// SetNillablePassRate sets the "pass_rate" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillablePassRate(v *float64) *WeekPlanCreate {
	if v != nil {
		_c.SetPassRate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WeekPlanCreate) SetStatus(v string) *WeekPlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WeekPlanCreate) SetNillableStatus(v *string) *WeekPlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *WeekPlanCreate) SetStartDate(v time.Time) *WeekPlanCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WeekPlanCreate) SetCreatedAt(v time.Time) *WeekPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// Mutation returns the WeekPlanMutation object of the builder.
func (_c *WeekPlanCreate) Mutation() *WeekPlanMutation {
	return _c.mutation
}

// Save creates the WeekPlan in the database.
func (_c *WeekPlanCreate) Save(ctx context.Context) (*WeekPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeekPlanCreate) SaveX(ctx context.Context) *WeekPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeekPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeekPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeekPlanCreate) defaults() {
	if _, ok := _c.mutation.IsFirstWeekOfQuest(); !ok {
		v := weekplan.DefaultIsFirstWeekOfQuest
		_c.mutation.SetIsFirstWeekOfQuest(v)
	}
	if _, ok := _c.mutation.IsLastWeekOfQuest(); !ok {
		v := weekplan.DefaultIsLastWeekOfQuest
		_c.mutation.SetIsLastWeekOfQuest(v)
	}
	if _, ok := _c.mutation.DrillsCompleted(); !ok {
		v := weekplan.DefaultDrillsCompleted
		_c.mutation.SetDrillsCompleted(v)
	}
	if _, ok := _c.mutation.DrillsPassed(); !ok {
		v := weekplan.DefaultDrillsPassed
		_c.mutation.SetDrillsPassed(v)
	}
	if _, ok := _c.mutation.DrillsFailed(); !ok {
		v := weekplan.DefaultDrillsFailed
		_c.mutation.SetDrillsFailed(v)
	}
	if _, ok := _c.mutation.DrillsSkipped(); !ok {
		v := weekplan.DefaultDrillsSkipped
		_c.mutation.SetDrillsSkipped(v)
	}
	if _, ok := _c.mutation.SkillsMastered(); !ok {
		v := weekplan.DefaultSkillsMastered
		_c.mutation.SetSkillsMastered(v)
	}
	if _, ok := _c.mutation.PassRate(); !ok {
		v := weekplan.DefaultPassRate
		_c.mutation.SetPassRate(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := weekplan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeekPlanCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "WeekPlan.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := weekplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "WeekPlan.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := weekplan.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "WeekPlan.quest_id"`)}
	}
	if v, ok := _c.mutation.QuestID(); ok {
		if err := weekplan.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "WeekPlan.quest_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeekNumber(); !ok {
		return &ValidationError{Name: "week_number", err: errors.New(`ent: missing required field "WeekPlan.week_number"`)}
	}
	if _, ok := _c.mutation.WeekInQuest(); !ok {
		return &ValidationError{Name: "week_in_quest", err: errors.New(`ent: missing required field "WeekPlan.week_in_quest"`)}
	}
	if _, ok := _c.mutation.IsFirstWeekOfQuest(); !ok {
		return &ValidationError{Name: "is_first_week_of_quest", err: errors.New(`ent: missing required field "WeekPlan.is_first_week_of_quest"`)}
	}
	if _, ok := _c.mutation.IsLastWeekOfQuest(); !ok {
		return &ValidationError{Name: "is_last_week_of_quest", err: errors.New(`ent: missing required field "WeekPlan.is_last_week_of_quest"`)}
	}
	if _, ok := _c.mutation.DrillsCompleted(); !ok {
		return &ValidationError{Name: "drills_completed", err: errors.New(`ent: missing required field "WeekPlan.drills_completed"`)}
	}
	if _, ok := _c.mutation.DrillsPassed(); !ok {
		return &ValidationError{Name: "drills_passed", err: errors.New(`ent: missing required field "WeekPlan.drills_passed"`)}
	}
	if _, ok := _c.mutation.DrillsFailed(); !ok {
		return &ValidationError{Name: "drills_failed", err: errors.New(`ent: missing required field "WeekPlan.drills_failed"`)}
	}
	if _, ok := _c.mutation.DrillsSkipped(); !ok {
		return &ValidationError{Name: "drills_skipped", err: errors.New(`ent: missing required field "WeekPlan.drills_skipped"`)}
	}
	if _, ok := _c.mutation.SkillsMastered(); !ok {
		return &ValidationError{Name: "skills_mastered", err: errors.New(`ent: missing required field "WeekPlan.skills_mastered"`)}
	}
	if _, ok := _c.mutation.PassRate(); !ok {
		return &ValidationError{Name: "pass_rate", err: errors.New(`ent: missing required field "WeekPlan.pass_rate"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WeekPlan.status"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "WeekPlan.start_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WeekPlan.created_at"`)}
	}
	return nil
}

func (_c *WeekPlanCreate) sqlSave(ctx context.Context) (*WeekPlan, error) {
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

func (_c *WeekPlanCreate) createSpec() (*WeekPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &WeekPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weekplan.Table, sqlgraph.NewFieldSpec(weekplan.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(weekplan.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(weekplan.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(weekplan.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(weekplan.FieldQuestID, field.TypeString, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.WeekNumber(); ok {
		_spec.SetField(weekplan.FieldWeekNumber, field.TypeInt, value)
		_node.WeekNumber = value
	}
	if value, ok := _c.mutation.WeekInQuest(); ok {
		_spec.SetField(weekplan.FieldWeekInQuest, field.TypeInt, value)
		_node.WeekInQuest = value
	}
	if value, ok := _c.mutation.IsFirstWeekOfQuest(); ok {
		_spec.SetField(weekplan.FieldIsFirstWeekOfQuest, field.TypeBool, value)
		_node.IsFirstWeekOfQuest = value
	}
	if value, ok := _c.mutation.IsLastWeekOfQuest(); ok {
		_spec.SetField(weekplan.FieldIsLastWeekOfQuest, field.TypeBool, value)
		_node.IsLastWeekOfQuest = value
	}
	if value, ok := _c.mutation.Days(); ok {
		_spec.SetField(weekplan.FieldDays, field.TypeJSON, value)
		_node.Days = value
	}
	if value, ok := _c.mutation.ScheduledSkillIds(); ok {
		_spec.SetField(weekplan.FieldScheduledSkillIds, field.TypeJSON, value)
		_node.ScheduledSkillIds = value
	}
	if value, ok := _c.mutation.CarryForwardSkillIds(); ok {
		_spec.SetField(weekplan.FieldCarryForwardSkillIds, field.TypeJSON, value)
		_node.CarryForwardSkillIds = value
	}
	if value, ok := _c.mutation.ReviewsFromQuestIds(); ok {
		_spec.SetField(weekplan.FieldReviewsFromQuestIds, field.TypeJSON, value)
		_node.ReviewsFromQuestIds = value
	}
	if value, ok := _c.mutation.BuildsOnSkillIds(); ok {
		_spec.SetField(weekplan.FieldBuildsOnSkillIds, field.TypeJSON, value)
		_node.BuildsOnSkillIds = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(weekplan.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.WeeklyCompetence(); ok {
		_spec.SetField(weekplan.FieldWeeklyCompetence, field.TypeString, value)
		_node.WeeklyCompetence = value
	}
	if value, ok := _c.mutation.DrillsCompleted(); ok {
		_spec.SetField(weekplan.FieldDrillsCompleted, field.TypeInt, value)
		_node.DrillsCompleted = value
	}
	if value, ok := _c.mutation.DrillsPassed(); ok {
		_spec.SetField(weekplan.FieldDrillsPassed, field.TypeInt, value)
		_node.DrillsPassed = value
	}
	if value, ok := _c.mutation.DrillsFailed(); ok {
		_spec.SetField(weekplan.FieldDrillsFailed, field.TypeInt, value)
		_node.DrillsFailed = value
	}
	if value, ok := _c.mutation.DrillsSkipped(); ok {
		_spec.SetField(weekplan.FieldDrillsSkipped, field.TypeInt, value)
		_node.DrillsSkipped = value
	}
	if value, ok := _c.mutation.SkillsMastered(); ok {
		_spec.SetField(weekplan.FieldSkillsMastered, field.TypeInt, value)
		_node.SkillsMastered = value
	}
	if value, ok := _c.mutation.PassRate(); ok {
		_spec.SetField(weekplan.FieldPassRate, field.TypeFloat64, value)
		_node.PassRate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(weekplan.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(weekplan.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(weekplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WeekPlan.Create().
//		SetPlanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WeekPlanUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *WeekPlanCreate) OnConflict(opts ...sql.ConflictOption) *WeekPlanUpsertOne {
	_c.conflict = opts
	return &WeekPlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WeekPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WeekPlanCreate) OnConflictColumns(columns ...string) *WeekPlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WeekPlanUpsertOne{
		create: _c,
	}
}

type (
	// WeekPlanUpsertOne is the builder for "upsert"-ing
	//  one WeekPlan node.
	WeekPlanUpsertOne struct {
		create *WeekPlanCreate
	}

	// WeekPlanUpsert is the "OnConflict" setter.
	WeekPlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlanID sets the "plan_id" field.
func (u *WeekPlanUpsert) SetPlanID(v string) *WeekPlanUpsert {
	u.Set(weekplan.FieldPlanID, v)
	return u
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdatePlanID() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldPlanID)
	return u
}

// SetGoalID sets the "goal_id" field.
func (u *WeekPlanUpsert) SetGoalID(v string) *WeekPlanUpsert {
	u.Set(weekplan.FieldGoalID, v)
	return u
}

// UpdateGoalID sets the "goal_id" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateGoalID() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldGoalID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *WeekPlanUpsert) SetUserID(v string) *WeekPlanUpsert {
	u.Set(weekplan.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateUserID() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *WeekPlanUpsert) ClearUserID() *WeekPlanUpsert {
	u.SetNull(weekplan.FieldUserID)
	return u
}

// SetQuestID sets the "quest_id" field.
func (u *WeekPlanUpsert) SetQuestID(v string) *WeekPlanUpsert {
	u.Set(weekplan.FieldQuestID, v)
	return u
}

// UpdateQuestID sets the "quest_id" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateQuestID() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldQuestID)
	return u
}

// SetWeekNumber sets the "week_number" field.
func (u *WeekPlanUpsert) SetWeekNumber(v int) *WeekPlanUpsert {
	u.Set(weekplan.FieldWeekNumber, v)
	return u
}

// UpdateWeekNumber sets the "week_number" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateWeekNumber() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldWeekNumber)
	return u
}

// AddWeekNumber adds v to the "week_number" field.
func (u *WeekPlanUpsert) AddWeekNumber(v int) *WeekPlanUpsert {
	u.Add(weekplan.FieldWeekNumber, v)
	return u
}

// SetWeekInQuest sets the "week_in_quest" field.
func (u *WeekPlanUpsert) SetWeekInQuest(v int) *WeekPlanUpsert {
	u.Set(weekplan.FieldWeekInQuest, v)
	return u
}

// UpdateWeekInQuest sets the "week_in_quest" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateWeekInQuest() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldWeekInQuest)
	return u
}

// AddWeekInQuest adds v to the "week_in_quest" field.
func (u *WeekPlanUpsert) AddWeekInQuest(v int) *WeekPlanUpsert {
	u.Add(weekplan.FieldWeekInQuest, v)
	return u
}

// SetIsFirstWeekOfQuest sets the "is_first_week_of_quest" field.
func (u *WeekPlanUpsert) SetIsFirstWeekOfQuest(v bool) *WeekPlanUpsert {
	u.Set(weekplan.FieldIsFirstWeekOfQuest, v)
	return u
}

// UpdateIsFirstWeekOfQuest sets the "is_first_week_of_quest" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateIsFirstWeekOfQuest() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldIsFirstWeekOfQuest)
	return u
}

// SetIsLastWeekOfQuest sets the "is_last_week_of_quest" field.
func (u *WeekPlanUpsert) SetIsLastWeekOfQuest(v bool) *WeekPlanUpsert {
	u.Set(weekplan.FieldIsLastWeekOfQuest, v)
	return u
}

// UpdateIsLastWeekOfQuest sets the "is_last_week_of_quest" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateIsLastWeekOfQuest() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldIsLastWeekOfQuest)
	return u
}

// SetDays sets the "days" field.
func (u *WeekPlanUpsert) SetDays(v []map[string]interface{}) *WeekPlanUpsert {
	u.Set(weekplan.FieldDays, v)
	return u
}

// UpdateDays sets the "days" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateDays() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldDays)
	return u
}

// ClearDays clears the value of the "days" field.
func (u *WeekPlanUpsert) ClearDays() *WeekPlanUpsert {
	u.SetNull(weekplan.FieldDays)
	return u
}

// SetScheduledSkillIds sets the "scheduled_skill_ids" field.
func (u *WeekPlanUpsert) SetScheduledSkillIds(v []string) *WeekPlanUpsert {
	u.Set(weekplan.FieldScheduledSkillIds, v)
	return u
}

// UpdateScheduledSkillIds sets the "scheduled_skill_ids" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateScheduledSkillIds() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldScheduledSkillIds)
	return u
}

// ClearScheduledSkillIds clears the value of the "scheduled_skill_ids" field.
func (u *WeekPlanUpsert) ClearScheduledSkillIds() *WeekPlanUpsert {
	u.SetNull(weekplan.FieldScheduledSkillIds)
	return u
}

// SetCarryForwardSkillIds sets the "carry_forward_skill_ids" field.
func (u *WeekPlanUpsert) SetCarryForwardSkillIds(v []string) *WeekPlanUpsert {
	u.Set(weekplan.FieldCarryForwardSkillIds, v)
	return u
}

// UpdateCarryForwardSkillIds sets the "carry_forward_skill_ids" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateCarryForwardSkillIds() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldCarryForwardSkillIds)
	return u
}

// ClearCarryForwardSkillIds clears the value of the "carry_forward_skill_ids" field.
func (u *WeekPlanUpsert) ClearCarryForwardSkillIds() *WeekPlanUpsert {
	u.SetNull(weekplan.FieldCarryForwardSkillIds)
	return u
}

// SetReviewsFromQuestIds sets the "reviews_from_quest_ids" field.
func (u *WeekPlanUpsert) SetReviewsFromQuestIds(v []string) *WeekPlanUpsert {
	u.Set(weekplan.FieldReviewsFromQuestIds, v)
	return u
}

// UpdateReviewsFromQuestIds sets the "reviews_from_quest_ids" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateReviewsFromQuestIds() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldReviewsFromQuestIds)
	return u
}

// ClearReviewsFromQuestIds clears the value of the "reviews_from_quest_ids" field.
func (u *WeekPlanUpsert) ClearReviewsFromQuestIds() *WeekPlanUpsert {
	u.SetNull(weekplan.FieldReviewsFromQuestIds)
	return u
}

// SetBuildsOnSkillIds sets the "builds_on_skill_ids" field.
func (u *WeekPlanUpsert) SetBuildsOnSkillIds(v []string) *WeekPlanUpsert {
	u.Set(weekplan.FieldBuildsOnSkillIds, v)
	return u
}

// UpdateBuildsOnSkillIds sets the "builds_on_skill_ids" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateBuildsOnSkillIds() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldBuildsOnSkillIds)
	return u
}

// ClearBuildsOnSkillIds clears the value of the "builds_on_skill_ids" field.
func (u *WeekPlanUpsert) ClearBuildsOnSkillIds() *WeekPlanUpsert {
	u.SetNull(weekplan.FieldBuildsOnSkillIds)
	return u
}

// SetTheme sets the "theme" field.
func (u *WeekPlanUpsert) SetTheme(v string) *WeekPlanUpsert {
	u.Set(weekplan.FieldTheme, v)
	return u
}

// UpdateTheme sets the "theme" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateTheme() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldTheme)
	return u
}

// ClearTheme clears the value of the "theme" field.
func (u *WeekPlanUpsert) ClearTheme() *WeekPlanUpsert {
	u.SetNull(weekplan.FieldTheme)
	return u
}

// SetWeeklyCompetence sets the "weekly_competence" field.
func (u *WeekPlanUpsert) SetWeeklyCompetence(v string) *WeekPlanUpsert {
	u.Set(weekplan.FieldWeeklyCompetence, v)
	return u
}

// UpdateWeeklyCompetence sets the "weekly_competence" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateWeeklyCompetence() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldWeeklyCompetence)
	return u
}

// ClearWeeklyCompetence clears the value of the "weekly_competence" field.
func (u *WeekPlanUpsert) ClearWeeklyCompetence() *WeekPlanUpsert {
	u.SetNull(weekplan.FieldWeeklyCompetence)
	return u
}

// SetDrillsCompleted sets the "drills_completed" field.
func (u *WeekPlanUpsert) SetDrillsCompleted(v int) *WeekPlanUpsert {
	u.Set(weekplan.FieldDrillsCompleted, v)
	return u
}

// UpdateDrillsCompleted sets the "drills_completed" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateDrillsCompleted() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldDrillsCompleted)
	return u
}

// AddDrillsCompleted adds v to the "drills_completed" field.
func (u *WeekPlanUpsert) AddDrillsCompleted(v int) *WeekPlanUpsert {
	u.Add(weekplan.FieldDrillsCompleted, v)
	return u
}

// SetDrillsPassed sets the "drills_passed" field.
func (u *WeekPlanUpsert) SetDrillsPassed(v int) *WeekPlanUpsert {
	u.Set(weekplan.FieldDrillsPassed, v)
	return u
}

// UpdateDrillsPassed sets the "drills_passed" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateDrillsPassed() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldDrillsPassed)
	return u
}

// AddDrillsPassed adds v to the "drills_passed" field.
func (u *WeekPlanUpsert) AddDrillsPassed(v int) *WeekPlanUpsert {
	u.Add(weekplan.FieldDrillsPassed, v)
	return u
}

// SetDrillsFailed sets the "drills_failed" field.
func (u *WeekPlanUpsert) SetDrillsFailed(v int) *WeekPlanUpsert {
	u.Set(weekplan.FieldDrillsFailed, v)
	return u
}

// UpdateDrillsFailed sets the "drills_failed" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateDrillsFailed() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldDrillsFailed)
	return u
}

// AddDrillsFailed adds v to the "drills_failed" field.
func (u *WeekPlanUpsert) AddDrillsFailed(v int) *WeekPlanUpsert {
	u.Add(weekplan.FieldDrillsFailed, v)
	return u
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (u *WeekPlanUpsert) SetDrillsSkipped(v int) *WeekPlanUpsert {
	u.Set(weekplan.FieldDrillsSkipped, v)
	return u
}

// UpdateDrillsSkipped sets the "drills_skipped" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateDrillsSkipped() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldDrillsSkipped)
	return u
}

// AddDrillsSkipped adds v to the "drills_skipped" field.
func (u *WeekPlanUpsert) AddDrillsSkipped(v int) *WeekPlanUpsert {
	u.Add(weekplan.FieldDrillsSkipped, v)
	return u
}

// SetSkillsMastered sets the "skills_mastered" field.
func (u *WeekPlanUpsert) SetSkillsMastered(v int) *WeekPlanUpsert {
	u.Set(weekplan.FieldSkillsMastered, v)
	return u
}

// UpdateSkillsMastered sets the "skills_mastered" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateSkillsMastered() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldSkillsMastered)
	return u
}

// AddSkillsMastered adds v to the "skills_mastered" field.
func (u *WeekPlanUpsert) AddSkillsMastered(v int) *WeekPlanUpsert {
	u.Add(weekplan.FieldSkillsMastered, v)
	return u
}

// SetPassRate sets the "pass_rate" field.
func (u *WeekPlanUpsert) SetPassRate(v float64) *WeekPlanUpsert {
	u.Set(weekplan.FieldPassRate, v)
	return u
}

// UpdatePassRate sets the "pass_rate" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdatePassRate() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldPassRate)
	return u
}

// AddPassRate adds v to the "pass_rate" field.
func (u *WeekPlanUpsert) AddPassRate(v float64) *WeekPlanUpsert {
	u.Add(weekplan.FieldPassRate, v)
	return u
}

// SetStatus sets the "status" field.
func (u *WeekPlanUpsert) SetStatus(v string) *WeekPlanUpsert {
	u.Set(weekplan.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateStatus() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldStatus)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *WeekPlanUpsert) SetStartDate(v time.Time) *WeekPlanUpsert {
	u.Set(weekplan.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateStartDate() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldStartDate)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *WeekPlanUpsert) SetCreatedAt(v time.Time) *WeekPlanUpsert {
	u.Set(weekplan.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WeekPlanUpsert) UpdateCreatedAt() *WeekPlanUpsert {
	u.SetExcluded(weekplan.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.WeekPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WeekPlanUpsertOne) UpdateNewValues() *WeekPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WeekPlan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WeekPlanUpsertOne) Ignore() *WeekPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WeekPlanUpsertOne) DoNothing() *WeekPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WeekPlanCreate.OnConflict
// documentation for more info.
func (u *WeekPlanUpsertOne) Update(set func(*WeekPlanUpsert)) *WeekPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WeekPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlanID sets the "plan_id" field.
func (u *WeekPlanUpsertOne) SetPlanID(v string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdatePlanID() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdatePlanID()
	})
}

// SetGoalID sets the "goal_id" field.
func (u *WeekPlanUpsertOne) SetGoalID(v string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetGoalID(v)
	})
}

// UpdateGoalID sets the "goal_id" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateGoalID() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateGoalID()
	})
}

// SetUserID sets the "user_id" field.
func (u *WeekPlanUpsertOne) SetUserID(v string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateUserID() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *WeekPlanUpsertOne) ClearUserID() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearUserID()
	})
}

// SetQuestID sets the "quest_id" field.
func (u *WeekPlanUpsertOne) SetQuestID(v string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetQuestID(v)
	})
}

// UpdateQuestID sets the "quest_id" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateQuestID() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateQuestID()
	})
}

// SetWeekNumber sets the "week_number" field.
func (u *WeekPlanUpsertOne) SetWeekNumber(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetWeekNumber(v)
	})
}

// AddWeekNumber adds v to the "week_number" field.
func (u *WeekPlanUpsertOne) AddWeekNumber(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddWeekNumber(v)
	})
}

// UpdateWeekNumber sets the "week_number" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateWeekNumber() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateWeekNumber()
	})
}

// SetWeekInQuest sets the "week_in_quest" field.
func (u *WeekPlanUpsertOne) SetWeekInQuest(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetWeekInQuest(v)
	})
}

// AddWeekInQuest adds v to the "week_in_quest" field.
func (u *WeekPlanUpsertOne) AddWeekInQuest(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddWeekInQuest(v)
	})
}

// UpdateWeekInQuest sets the "week_in_quest" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateWeekInQuest() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateWeekInQuest()
	})
}

// SetIsFirstWeekOfQuest sets the "is_first_week_of_quest" field.
func (u *WeekPlanUpsertOne) SetIsFirstWeekOfQuest(v bool) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetIsFirstWeekOfQuest(v)
	})
}

// UpdateIsFirstWeekOfQuest sets the "is_first_week_of_quest" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateIsFirstWeekOfQuest() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateIsFirstWeekOfQuest()
	})
}

// SetIsLastWeekOfQuest sets the "is_last_week_of_quest" field.
func (u *WeekPlanUpsertOne) SetIsLastWeekOfQuest(v bool) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetIsLastWeekOfQuest(v)
	})
}

// UpdateIsLastWeekOfQuest sets the "is_last_week_of_quest" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateIsLastWeekOfQuest() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateIsLastWeekOfQuest()
	})
}

// SetDays sets the "days" field.
func (u *WeekPlanUpsertOne) SetDays(v []map[string]interface{}) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDays(v)
	})
}

// UpdateDays sets the "days" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateDays() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDays()
	})
}

// ClearDays clears the value of the "days" field.
func (u *WeekPlanUpsertOne) ClearDays() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearDays()
	})
}

// SetScheduledSkillIds sets the "scheduled_skill_ids" field.
func (u *WeekPlanUpsertOne) SetScheduledSkillIds(v []string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetScheduledSkillIds(v)
	})
}

// UpdateScheduledSkillIds sets the "scheduled_skill_ids" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateScheduledSkillIds() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateScheduledSkillIds()
	})
}

// ClearScheduledSkillIds clears the value of the "scheduled_skill_ids" field.
func (u *WeekPlanUpsertOne) ClearScheduledSkillIds() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearScheduledSkillIds()
	})
}

// SetCarryForwardSkillIds sets the "carry_forward_skill_ids" field.
func (u *WeekPlanUpsertOne) SetCarryForwardSkillIds(v []string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetCarryForwardSkillIds(v)
	})
}

// UpdateCarryForwardSkillIds sets the "carry_forward_skill_ids" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateCarryForwardSkillIds() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateCarryForwardSkillIds()
	})
}

// ClearCarryForwardSkillIds clears the value of the "carry_forward_skill_ids" field.
func (u *WeekPlanUpsertOne) ClearCarryForwardSkillIds() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearCarryForwardSkillIds()
	})
}

// SetReviewsFromQuestIds sets the "reviews_from_quest_ids" field.
func (u *WeekPlanUpsertOne) SetReviewsFromQuestIds(v []string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetReviewsFromQuestIds(v)
	})
}

// UpdateReviewsFromQuestIds sets the "reviews_from_quest_ids" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateReviewsFromQuestIds() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateReviewsFromQuestIds()
	})
}

// ClearReviewsFromQuestIds clears the value of the "reviews_from_quest_ids" field.
func (u *WeekPlanUpsertOne) ClearReviewsFromQuestIds() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearReviewsFromQuestIds()
	})
}

// SetBuildsOnSkillIds sets the "builds_on_skill_ids" field.
func (u *WeekPlanUpsertOne) SetBuildsOnSkillIds(v []string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetBuildsOnSkillIds(v)
	})
}

// UpdateBuildsOnSkillIds sets the "builds_on_skill_ids" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateBuildsOnSkillIds() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateBuildsOnSkillIds()
	})
}

// ClearBuildsOnSkillIds clears the value of the "builds_on_skill_ids" field.
func (u *WeekPlanUpsertOne) ClearBuildsOnSkillIds() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearBuildsOnSkillIds()
	})
}

// SetTheme sets the "theme" field.
func (u *WeekPlanUpsertOne) SetTheme(v string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetTheme(v)
	})
}

// UpdateTheme sets the "theme" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateTheme() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateTheme()
	})
}

// ClearTheme clears the value of the "theme" field.
func (u *WeekPlanUpsertOne) ClearTheme() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearTheme()
	})
}

// SetWeeklyCompetence sets the "weekly_competence" field.
func (u *WeekPlanUpsertOne) SetWeeklyCompetence(v string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetWeeklyCompetence(v)
	})
}

// UpdateWeeklyCompetence sets the "weekly_competence" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateWeeklyCompetence() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateWeeklyCompetence()
	})
}

// ClearWeeklyCompetence clears the value of the "weekly_competence" field.
func (u *WeekPlanUpsertOne) ClearWeeklyCompetence() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearWeeklyCompetence()
	})
}

// SetDrillsCompleted sets the "drills_completed" field.
func (u *WeekPlanUpsertOne) SetDrillsCompleted(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDrillsCompleted(v)
	})
}

// AddDrillsCompleted adds v to the "drills_completed" field.
func (u *WeekPlanUpsertOne) AddDrillsCompleted(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddDrillsCompleted(v)
	})
}

// UpdateDrillsCompleted sets the "drills_completed" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateDrillsCompleted() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDrillsCompleted()
	})
}

// SetDrillsPassed sets the "drills_passed" field.
func (u *WeekPlanUpsertOne) SetDrillsPassed(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDrillsPassed(v)
	})
}

// AddDrillsPassed adds v to the "drills_passed" field.
func (u *WeekPlanUpsertOne) AddDrillsPassed(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddDrillsPassed(v)
	})
}

// UpdateDrillsPassed sets the "drills_passed" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateDrillsPassed() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDrillsPassed()
	})
}

// SetDrillsFailed sets the "drills_failed" field.
func (u *WeekPlanUpsertOne) SetDrillsFailed(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDrillsFailed(v)
	})
}

// AddDrillsFailed adds v to the "drills_failed" field.
func (u *WeekPlanUpsertOne) AddDrillsFailed(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddDrillsFailed(v)
	})
}

// UpdateDrillsFailed sets the "drills_failed" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateDrillsFailed() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDrillsFailed()
	})
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (u *WeekPlanUpsertOne) SetDrillsSkipped(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDrillsSkipped(v)
	})
}

// AddDrillsSkipped adds v to the "drills_skipped" field.
func (u *WeekPlanUpsertOne) AddDrillsSkipped(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddDrillsSkipped(v)
	})
}

// UpdateDrillsSkipped sets the "drills_skipped" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateDrillsSkipped() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDrillsSkipped()
	})
}

// SetSkillsMastered sets the "skills_mastered" field.
func (u *WeekPlanUpsertOne) SetSkillsMastered(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetSkillsMastered(v)
	})
}

// AddSkillsMastered adds v to the "skills_mastered" field.
func (u *WeekPlanUpsertOne) AddSkillsMastered(v int) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddSkillsMastered(v)
	})
}

// UpdateSkillsMastered sets the "skills_mastered" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateSkillsMastered() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateSkillsMastered()
	})
}

// SetPassRate sets the "pass_rate" field.
func (u *WeekPlanUpsertOne) SetPassRate(v float64) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetPassRate(v)
	})
}

// AddPassRate adds v to the "pass_rate" field.
func (u *WeekPlanUpsertOne) AddPassRate(v float64) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddPassRate(v)
	})
}

// UpdatePassRate sets the "pass_rate" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdatePassRate() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdatePassRate()
	})
}

// SetStatus sets the "status" field.
func (u *WeekPlanUpsertOne) SetStatus(v string) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateStatus() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateStatus()
	})
}

// SetStartDate sets the "start_date" field.
func (u *WeekPlanUpsertOne) SetStartDate(v time.Time) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateStartDate() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateStartDate()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WeekPlanUpsertOne) SetCreatedAt(v time.Time) *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WeekPlanUpsertOne) UpdateCreatedAt() *WeekPlanUpsertOne {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *WeekPlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WeekPlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WeekPlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WeekPlanUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WeekPlanUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WeekPlanCreateBulk is the builder for creating many WeekPlan entities in bulk.
type WeekPlanCreateBulk struct {
	config
	err      error
	builders []*WeekPlanCreate
	conflict []sql.ConflictOption
}

// Save creates the WeekPlan entities in the database.
func (_c *WeekPlanCreateBulk) Save(ctx context.Context) ([]*WeekPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeekPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeekPlanMutation)
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
func (_c *WeekPlanCreateBulk) SaveX(ctx context.Context) []*WeekPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeekPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeekPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WeekPlan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WeekPlanUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *WeekPlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *WeekPlanUpsertBulk {
	_c.conflict = opts
	return &WeekPlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WeekPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WeekPlanCreateBulk) OnConflictColumns(columns ...string) *WeekPlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WeekPlanUpsertBulk{
		create: _c,
	}
}

// WeekPlanUpsertBulk is the builder for "upsert"-ing
// a bulk of WeekPlan nodes.
type WeekPlanUpsertBulk struct {
	create *WeekPlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WeekPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WeekPlanUpsertBulk) UpdateNewValues() *WeekPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WeekPlan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WeekPlanUpsertBulk) Ignore() *WeekPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WeekPlanUpsertBulk) DoNothing() *WeekPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WeekPlanCreateBulk.OnConflict
// documentation for more info.
func (u *WeekPlanUpsertBulk) Update(set func(*WeekPlanUpsert)) *WeekPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WeekPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlanID sets the "plan_id" field.
func (u *WeekPlanUpsertBulk) SetPlanID(v string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdatePlanID() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdatePlanID()
	})
}

// SetGoalID sets the "goal_id" field.
func (u *WeekPlanUpsertBulk) SetGoalID(v string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetGoalID(v)
	})
}

// UpdateGoalID sets the "goal_id" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateGoalID() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateGoalID()
	})
}

// SetUserID sets the "user_id" field.
func (u *WeekPlanUpsertBulk) SetUserID(v string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateUserID() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *WeekPlanUpsertBulk) ClearUserID() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearUserID()
	})
}

// SetQuestID sets the "quest_id" field.
func (u *WeekPlanUpsertBulk) SetQuestID(v string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetQuestID(v)
	})
}

// UpdateQuestID sets the "quest_id" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateQuestID() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateQuestID()
	})
}

// SetWeekNumber sets the "week_number" field.
func (u *WeekPlanUpsertBulk) SetWeekNumber(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetWeekNumber(v)
	})
}

// AddWeekNumber adds v to the "week_number" field.
func (u *WeekPlanUpsertBulk) AddWeekNumber(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddWeekNumber(v)
	})
}

// UpdateWeekNumber sets the "week_number" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateWeekNumber() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateWeekNumber()
	})
}

// SetWeekInQuest sets the "week_in_quest" field.
func (u *WeekPlanUpsertBulk) SetWeekInQuest(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetWeekInQuest(v)
	})
}

// AddWeekInQuest adds v to the "week_in_quest" field.
func (u *WeekPlanUpsertBulk) AddWeekInQuest(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddWeekInQuest(v)
	})
}

// UpdateWeekInQuest sets the "week_in_quest" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateWeekInQuest() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateWeekInQuest()
	})
}

// SetIsFirstWeekOfQuest sets the "is_first_week_of_quest" field.
func (u *WeekPlanUpsertBulk) SetIsFirstWeekOfQuest(v bool) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetIsFirstWeekOfQuest(v)
	})
}

// UpdateIsFirstWeekOfQuest sets the "is_first_week_of_quest" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateIsFirstWeekOfQuest() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateIsFirstWeekOfQuest()
	})
}

// SetIsLastWeekOfQuest sets the "is_last_week_of_quest" field.
func (u *WeekPlanUpsertBulk) SetIsLastWeekOfQuest(v bool) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetIsLastWeekOfQuest(v)
	})
}

// UpdateIsLastWeekOfQuest sets the "is_last_week_of_quest" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateIsLastWeekOfQuest() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateIsLastWeekOfQuest()
	})
}

// SetDays sets the "days" field.
func (u *WeekPlanUpsertBulk) SetDays(v []map[string]interface{}) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDays(v)
	})
}

// UpdateDays sets the "days" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateDays() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDays()
	})
}

// ClearDays clears the value of the "days" field.
func (u *WeekPlanUpsertBulk) ClearDays() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearDays()
	})
}

// SetScheduledSkillIds sets the "scheduled_skill_ids" field.
func (u *WeekPlanUpsertBulk) SetScheduledSkillIds(v []string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetScheduledSkillIds(v)
	})
}

// UpdateScheduledSkillIds sets the "scheduled_skill_ids" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateScheduledSkillIds() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateScheduledSkillIds()
	})
}

// ClearScheduledSkillIds clears the value of the "scheduled_skill_ids" field.
func (u *WeekPlanUpsertBulk) ClearScheduledSkillIds() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearScheduledSkillIds()
	})
}

// SetCarryForwardSkillIds sets the "carry_forward_skill_ids" field.
func (u *WeekPlanUpsertBulk) SetCarryForwardSkillIds(v []string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetCarryForwardSkillIds(v)
	})
}

// UpdateCarryForwardSkillIds sets the "carry_forward_skill_ids" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateCarryForwardSkillIds() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateCarryForwardSkillIds()
	})
}

// ClearCarryForwardSkillIds clears the value of the "carry_forward_skill_ids" field.
func (u *WeekPlanUpsertBulk) ClearCarryForwardSkillIds() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearCarryForwardSkillIds()
	})
}

// SetReviewsFromQuestIds sets the "reviews_from_quest_ids" field.
func (u *WeekPlanUpsertBulk) SetReviewsFromQuestIds(v []string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetReviewsFromQuestIds(v)
	})
}

// UpdateReviewsFromQuestIds sets the "reviews_from_quest_ids" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateReviewsFromQuestIds() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateReviewsFromQuestIds()
	})
}

// ClearReviewsFromQuestIds clears the value of the "reviews_from_quest_ids" field.
func (u *WeekPlanUpsertBulk) ClearReviewsFromQuestIds() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearReviewsFromQuestIds()
	})
}

// SetBuildsOnSkillIds sets the "builds_on_skill_ids" field.
func (u *WeekPlanUpsertBulk) SetBuildsOnSkillIds(v []string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetBuildsOnSkillIds(v)
	})
}

// UpdateBuildsOnSkillIds sets the "builds_on_skill_ids" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateBuildsOnSkillIds() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateBuildsOnSkillIds()
	})
}

// ClearBuildsOnSkillIds clears the value of the "builds_on_skill_ids" field.
func (u *WeekPlanUpsertBulk) ClearBuildsOnSkillIds() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearBuildsOnSkillIds()
	})
}

// SetTheme sets the "theme" field.
func (u *WeekPlanUpsertBulk) SetTheme(v string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetTheme(v)
	})
}

// UpdateTheme sets the "theme" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateTheme() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateTheme()
	})
}

// ClearTheme clears the value of the "theme" field.
func (u *WeekPlanUpsertBulk) ClearTheme() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearTheme()
	})
}

// SetWeeklyCompetence sets the "weekly_competence" field.
func (u *WeekPlanUpsertBulk) SetWeeklyCompetence(v string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetWeeklyCompetence(v)
	})
}

// UpdateWeeklyCompetence sets the "weekly_competence" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateWeeklyCompetence() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateWeeklyCompetence()
	})
}

// ClearWeeklyCompetence clears the value of the "weekly_competence" field.
func (u *WeekPlanUpsertBulk) ClearWeeklyCompetence() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.ClearWeeklyCompetence()
	})
}

// SetDrillsCompleted sets the "drills_completed" field.
func (u *WeekPlanUpsertBulk) SetDrillsCompleted(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDrillsCompleted(v)
	})
}

// AddDrillsCompleted adds v to the "drills_completed" field.
func (u *WeekPlanUpsertBulk) AddDrillsCompleted(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddDrillsCompleted(v)
	})
}

// UpdateDrillsCompleted sets the "drills_completed" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateDrillsCompleted() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDrillsCompleted()
	})
}

// SetDrillsPassed sets the "drills_passed" field.
func (u *WeekPlanUpsertBulk) SetDrillsPassed(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDrillsPassed(v)
	})
}

// AddDrillsPassed adds v to the "drills_passed" field.
func (u *WeekPlanUpsertBulk) AddDrillsPassed(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddDrillsPassed(v)
	})
}

// UpdateDrillsPassed sets the "drills_passed" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateDrillsPassed() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDrillsPassed()
	})
}

// SetDrillsFailed sets the "drills_failed" field.
func (u *WeekPlanUpsertBulk) SetDrillsFailed(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDrillsFailed(v)
	})
}

// AddDrillsFailed adds v to the "drills_failed" field.
func (u *WeekPlanUpsertBulk) AddDrillsFailed(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddDrillsFailed(v)
	})
}

// UpdateDrillsFailed sets the "drills_failed" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateDrillsFailed() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDrillsFailed()
	})
}

// SetDrillsSkipped sets the "drills_skipped" field.
func (u *WeekPlanUpsertBulk) SetDrillsSkipped(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetDrillsSkipped(v)
	})
}

// AddDrillsSkipped adds v to the "drills_skipped" field.
func (u *WeekPlanUpsertBulk) AddDrillsSkipped(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddDrillsSkipped(v)
	})
}

// UpdateDrillsSkipped sets the "drills_skipped" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateDrillsSkipped() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateDrillsSkipped()
	})
}

// SetSkillsMastered sets the "skills_mastered" field.
func (u *WeekPlanUpsertBulk) SetSkillsMastered(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetSkillsMastered(v)
	})
}

// AddSkillsMastered adds v to the "skills_mastered" field.
func (u *WeekPlanUpsertBulk) AddSkillsMastered(v int) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddSkillsMastered(v)
	})
}

// UpdateSkillsMastered sets the "skills_mastered" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateSkillsMastered() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateSkillsMastered()
	})
}

// SetPassRate sets the "pass_rate" field.
func (u *WeekPlanUpsertBulk) SetPassRate(v float64) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetPassRate(v)
	})
}

// AddPassRate adds v to the "pass_rate" field.
func (u *WeekPlanUpsertBulk) AddPassRate(v float64) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.AddPassRate(v)
	})
}

// UpdatePassRate sets the "pass_rate" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdatePassRate() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdatePassRate()
	})
}

// SetStatus sets the "status" field.
func (u *WeekPlanUpsertBulk) SetStatus(v string) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateStatus() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateStatus()
	})
}

// SetStartDate sets the "start_date" field.
func (u *WeekPlanUpsertBulk) SetStartDate(v time.Time) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateStartDate() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateStartDate()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WeekPlanUpsertBulk) SetCreatedAt(v time.Time) *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WeekPlanUpsertBulk) UpdateCreatedAt() *WeekPlanUpsertBulk {
	return u.Update(func(s *WeekPlanUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *WeekPlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WeekPlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WeekPlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WeekPlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
