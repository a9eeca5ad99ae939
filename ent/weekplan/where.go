// Code generated by ent, DO NOT EDIT.

package weekplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldPlanID, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldGoalID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldUserID, v))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldQuestID, v))
}

// WeekNumber applies equality check predicate on the "week_number" field. It's identical to WeekNumberEQ.
func WeekNumber(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldWeekNumber, v))
}

// WeekInQuest applies equality check predicate on the "week_in_quest" field. It's identical to WeekInQuestEQ.
func WeekInQuest(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldWeekInQuest, v))
}

// IsFirstWeekOfQuest applies equality check predicate on the "is_first_week_of_quest" field. It's identical to IsFirstWeekOfQuestEQ.
func IsFirstWeekOfQuest(v bool) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldIsFirstWeekOfQuest, v))
}

// IsLastWeekOfQuest applies equality check predicate on the "is_last_week_of_quest" field. It's identical to IsLastWeekOfQuestEQ.
func IsLastWeekOfQuest(v bool) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldIsLastWeekOfQuest, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldTheme, v))
}

// WeeklyCompetence applies equality check predicate on the "weekly_competence" field. It's identical to WeeklyCompetenceEQ.
func WeeklyCompetence(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldWeeklyCompetence, v))
}

// DrillsCompleted applies equality check predicate on the "drills_completed" field. It's identical to DrillsCompletedEQ.
func DrillsCompleted(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsCompleted, v))
}

// DrillsPassed applies equality check predicate on the "drills_passed" field. It's identical to DrillsPassedEQ.
func DrillsPassed(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsPassed, v))
}

// DrillsFailed applies equality check predicate on the "drills_failed" field. It's identical to DrillsFailedEQ.
func DrillsFailed(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsFailed, v))
}

// DrillsSkipped applies equality check predicate on the "drills_skipped" field. It's identical to DrillsSkippedEQ.
func DrillsSkipped(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsSkipped, v))
}

// SkillsMastered applies equality check predicate on the "skills_mastered" field. It's identical to SkillsMasteredEQ.
func SkillsMastered(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldSkillsMastered, v))
}

// PassRate applies equality check predicate on the "pass_rate" field. It's identical to PassRateEQ.
func PassRate(v float64) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldPassRate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldStatus, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldStartDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldPlanID, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldGoalID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldUserID, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldQuestID, v))
}

// QuestIDContains applies the Contains predicate on the "quest_id" field.
func QuestIDContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldQuestID, v))
}

// QuestIDHasPrefix applies the HasPrefix predicate on the "quest_id" field.
func QuestIDHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldQuestID, v))
}

// QuestIDHasSuffix applies the HasSuffix predicate on the "quest_id" field.
func QuestIDHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldQuestID, v))
}

// QuestIDEqualFold applies the EqualFold predicate on the "quest_id" field.
func QuestIDEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldQuestID, v))
}

// QuestIDContainsFold applies the ContainsFold predicate on the "quest_id" field.
func QuestIDContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldQuestID, v))
}

// WeekNumberEQ applies the EQ predicate on the "week_number" field.
func WeekNumberEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldWeekNumber, v))
}

// WeekNumberNEQ applies the NEQ predicate on the "week_number" field.
func WeekNumberNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldWeekNumber, v))
}

// WeekNumberIn applies the In predicate on the "week_number" field.
func WeekNumberIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldWeekNumber, vs...))
}

// WeekNumberNotIn applies the NotIn predicate on the "week_number" field.
func WeekNumberNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldWeekNumber, vs...))
}

// WeekNumberGT applies the GT predicate on the "week_number" field.
func WeekNumberGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldWeekNumber, v))
}

// WeekNumberGTE applies the GTE predicate on the "week_number" field.
func WeekNumberGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldWeekNumber, v))
}

// WeekNumberLT applies the LT predicate on the "week_number" field.
func WeekNumberLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldWeekNumber, v))
}

// WeekNumberLTE applies the LTE predicate on the "week_number" field.
func WeekNumberLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldWeekNumber, v))
}

// WeekInQuestEQ applies the EQ predicate on the "week_in_quest" field.
func WeekInQuestEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldWeekInQuest, v))
}

// WeekInQuestNEQ applies the NEQ predicate on the "week_in_quest" field.
func WeekInQuestNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldWeekInQuest, v))
}

// WeekInQuestIn applies the In predicate on the "week_in_quest" field.
func WeekInQuestIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldWeekInQuest, vs...))
}

// WeekInQuestNotIn applies the NotIn predicate on the "week_in_quest" field.
func WeekInQuestNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldWeekInQuest, vs...))
}

// WeekInQuestGT applies the GT predicate on the "week_in_quest" field.
func WeekInQuestGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldWeekInQuest, v))
}

// WeekInQuestGTE applies the GTE predicate on the "week_in_quest" field.
func WeekInQuestGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldWeekInQuest, v))
}

// WeekInQuestLT applies the LT predicate on the "week_in_quest" field.
func WeekInQuestLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldWeekInQuest, v))
}

// WeekInQuestLTE applies the LTE predicate on the "week_in_quest" field.
func WeekInQuestLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldWeekInQuest, v))
}

// IsFirstWeekOfQuestEQ applies the EQ predicate on the "is_first_week_of_quest" field.
func IsFirstWeekOfQuestEQ(v bool) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldIsFirstWeekOfQuest, v))
}

// IsFirstWeekOfQuestNEQ applies the NEQ predicate on the "is_first_week_of_quest" field.
func IsFirstWeekOfQuestNEQ(v bool) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldIsFirstWeekOfQuest, v))
}

// IsLastWeekOfQuestEQ applies the EQ predicate on the "is_last_week_of_quest" field.
func IsLastWeekOfQuestEQ(v bool) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldIsLastWeekOfQuest, v))
}

// IsLastWeekOfQuestNEQ applies the NEQ predicate on the "is_last_week_of_quest" field.
func IsLastWeekOfQuestNEQ(v bool) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldIsLastWeekOfQuest, v))
}

// DaysIsNil applies the IsNil predicate on the "days" field.
func DaysIsNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIsNull(FieldDays))
}

// DaysNotNil applies the NotNil predicate on the "days" field.
func DaysNotNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotNull(FieldDays))
}

// ScheduledSkillIdsIsNil applies the IsNil predicate on the "scheduled_skill_ids" field.
func ScheduledSkillIdsIsNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIsNull(FieldScheduledSkillIds))
}

// ScheduledSkillIdsNotNil applies the NotNil predicate on the "scheduled_skill_ids" field.
func ScheduledSkillIdsNotNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotNull(FieldScheduledSkillIds))
}

// CarryForwardSkillIdsIsNil applies the IsNil predicate on the "carry_forward_skill_ids" field.
func CarryForwardSkillIdsIsNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIsNull(FieldCarryForwardSkillIds))
}

// CarryForwardSkillIdsNotNil applies the NotNil predicate on the "carry_forward_skill_ids" field.
func CarryForwardSkillIdsNotNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotNull(FieldCarryForwardSkillIds))
}

// ReviewsFromQuestIdsIsNil applies the IsNil predicate on the "reviews_from_quest_ids" field.
func ReviewsFromQuestIdsIsNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIsNull(FieldReviewsFromQuestIds))
}

// ReviewsFromQuestIdsNotNil applies the NotNil predicate on the "reviews_from_quest_ids" field.
func ReviewsFromQuestIdsNotNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotNull(FieldReviewsFromQuestIds))
}

// BuildsOnSkillIdsIsNil applies the IsNil predicate on the "builds_on_skill_ids" field.
func BuildsOnSkillIdsIsNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIsNull(FieldBuildsOnSkillIds))
}

// BuildsOnSkillIdsNotNil applies the NotNil predicate on the "builds_on_skill_ids" field.
func BuildsOnSkillIdsNotNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotNull(FieldBuildsOnSkillIds))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeIsNil applies the IsNil predicate on the "theme" field.
func ThemeIsNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIsNull(FieldTheme))
}

// ThemeNotNil applies the NotNil predicate on the "theme" field.
func ThemeNotNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotNull(FieldTheme))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldTheme, v))
}

// WeeklyCompetenceEQ applies the EQ predicate on the "weekly_competence" field.
func WeeklyCompetenceEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceNEQ applies the NEQ predicate on the "weekly_competence" field.
func WeeklyCompetenceNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceIn applies the In predicate on the "weekly_competence" field.
func WeeklyCompetenceIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldWeeklyCompetence, vs...))
}

// WeeklyCompetenceNotIn applies the NotIn predicate on the "weekly_competence" field.
func WeeklyCompetenceNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldWeeklyCompetence, vs...))
}

// WeeklyCompetenceGT applies the GT predicate on the "weekly_competence" field.
func WeeklyCompetenceGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceGTE applies the GTE predicate on the "weekly_competence" field.
func WeeklyCompetenceGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceLT applies the LT predicate on the "weekly_competence" field.
func WeeklyCompetenceLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceLTE applies the LTE predicate on the "weekly_competence" field.
func WeeklyCompetenceLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceContains applies the Contains predicate on the "weekly_competence" field.
func WeeklyCompetenceContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceHasPrefix applies the HasPrefix predicate on the "weekly_competence" field.
func WeeklyCompetenceHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceHasSuffix applies the HasSuffix predicate on the "weekly_competence" field.
func WeeklyCompetenceHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceIsNil applies the IsNil predicate on the "weekly_competence" field.
func WeeklyCompetenceIsNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIsNull(FieldWeeklyCompetence))
}

// WeeklyCompetenceNotNil applies the NotNil predicate on the "weekly_competence" field.
func WeeklyCompetenceNotNil() predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotNull(FieldWeeklyCompetence))
}

// WeeklyCompetenceEqualFold applies the EqualFold predicate on the "weekly_competence" field.
func WeeklyCompetenceEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldWeeklyCompetence, v))
}

// WeeklyCompetenceContainsFold applies the ContainsFold predicate on the "weekly_competence" field.
func WeeklyCompetenceContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldWeeklyCompetence, v))
}

// DrillsCompletedEQ applies the EQ predicate on the "drills_completed" field.
func DrillsCompletedEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsCompleted, v))
}

// DrillsCompletedNEQ applies the NEQ predicate on the "drills_completed" field.
func DrillsCompletedNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldDrillsCompleted, v))
}

// DrillsCompletedIn applies the In predicate on the "drills_completed" field.
func DrillsCompletedIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldDrillsCompleted, vs...))
}

// DrillsCompletedNotIn applies the NotIn predicate on the "drills_completed" field.
func DrillsCompletedNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldDrillsCompleted, vs...))
}

// DrillsCompletedGT applies the GT predicate on the "drills_completed" field.
func DrillsCompletedGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldDrillsCompleted, v))
}

// DrillsCompletedGTE applies the GTE predicate on the "drills_completed" field.
func DrillsCompletedGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldDrillsCompleted, v))
}

// DrillsCompletedLT applies the LT predicate on the "drills_completed" field.
func DrillsCompletedLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldDrillsCompleted, v))
}

// DrillsCompletedLTE applies the LTE predicate on the "drills_completed" field.
func DrillsCompletedLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldDrillsCompleted, v))
}

// DrillsPassedEQ applies the EQ predicate on the "drills_passed" field.
func DrillsPassedEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsPassed, v))
}

// DrillsPassedNEQ applies the NEQ predicate on the "drills_passed" field.
func DrillsPassedNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldDrillsPassed, v))
}

// DrillsPassedIn applies the In predicate on the "drills_passed" field.
func DrillsPassedIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldDrillsPassed, vs...))
}

// DrillsPassedNotIn applies the NotIn predicate on the "drills_passed" field.
func DrillsPassedNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldDrillsPassed, vs...))
}

// DrillsPassedGT applies the GT predicate on the "drills_passed" field.
func DrillsPassedGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldDrillsPassed, v))
}

// DrillsPassedGTE applies the GTE predicate on the "drills_passed" field.
func DrillsPassedGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldDrillsPassed, v))
}

// DrillsPassedLT applies the LT predicate on the "drills_passed" field.
func DrillsPassedLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldDrillsPassed, v))
}

// DrillsPassedLTE applies the LTE predicate on the "drills_passed" field.
func DrillsPassedLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldDrillsPassed, v))
}

// DrillsFailedEQ applies the EQ predicate on the "drills_failed" field.
func DrillsFailedEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsFailed, v))
}

// DrillsFailedNEQ applies the NEQ predicate on the "drills_failed" field.
func DrillsFailedNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldDrillsFailed, v))
}

// DrillsFailedIn applies the In predicate on the "drills_failed" field.
func DrillsFailedIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldDrillsFailed, vs...))
}

// DrillsFailedNotIn applies the NotIn predicate on the "drills_failed" field.
func DrillsFailedNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldDrillsFailed, vs...))
}

// DrillsFailedGT applies the GT predicate on the "drills_failed" field.
func DrillsFailedGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldDrillsFailed, v))
}

// DrillsFailedGTE applies the GTE predicate on the "drills_failed" field.
func DrillsFailedGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldDrillsFailed, v))
}

// DrillsFailedLT applies the LT predicate on the "drills_failed" field.
func DrillsFailedLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldDrillsFailed, v))
}

// DrillsFailedLTE applies the LTE predicate on the "drills_failed" field.
func DrillsFailedLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldDrillsFailed, v))
}

// DrillsSkippedEQ applies the EQ predicate on the "drills_skipped" field.
func DrillsSkippedEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldDrillsSkipped, v))
}

// DrillsSkippedNEQ applies the NEQ predicate on the "drills_skipped" field.
func DrillsSkippedNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldDrillsSkipped, v))
}

// DrillsSkippedIn applies the In predicate on the "drills_skipped" field.
func DrillsSkippedIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldDrillsSkipped, vs...))
}

// DrillsSkippedNotIn applies the NotIn predicate on the "drills_skipped" field.
func DrillsSkippedNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldDrillsSkipped, vs...))
}

// DrillsSkippedGT applies the GT predicate on the "drills_skipped" field.
func DrillsSkippedGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldDrillsSkipped, v))
}

// DrillsSkippedGTE applies the GTE predicate on the "drills_skipped" field.
func DrillsSkippedGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldDrillsSkipped, v))
}

// DrillsSkippedLT applies the LT predicate on the "drills_skipped" field.
func DrillsSkippedLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldDrillsSkipped, v))
}

// DrillsSkippedLTE applies the LTE predicate on the "drills_skipped" field.
func DrillsSkippedLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldDrillsSkipped, v))
}

// SkillsMasteredEQ applies the EQ predicate on the "skills_mastered" field.
func SkillsMasteredEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldSkillsMastered, v))
}

// SkillsMasteredNEQ applies the NEQ predicate on the "skills_mastered" field.
func SkillsMasteredNEQ(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldSkillsMastered, v))
}

// SkillsMasteredIn applies the In predicate on the "skills_mastered" field.
func SkillsMasteredIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldSkillsMastered, vs...))
}

// SkillsMasteredNotIn applies the NotIn predicate on the "skills_mastered" field.
func SkillsMasteredNotIn(vs ...int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldSkillsMastered, vs...))
}

// SkillsMasteredGT applies the GT predicate on the "skills_mastered" field.
func SkillsMasteredGT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldSkillsMastered, v))
}

// SkillsMasteredGTE applies the GTE predicate on the "skills_mastered" field.
func SkillsMasteredGTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldSkillsMastered, v))
}

// SkillsMasteredLT applies the LT predicate on the "skills_mastered" field.
func SkillsMasteredLT(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldSkillsMastered, v))
}

// SkillsMasteredLTE applies the LTE predicate on the "skills_mastered" field.
func SkillsMasteredLTE(v int) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldSkillsMastered, v))
}

// PassRateEQ applies the EQ predicate on the "pass_rate" field.
func PassRateEQ(v float64) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldPassRate, v))
}

// PassRateNEQ applies the NEQ predicate on the "pass_rate" field.
func PassRateNEQ(v float64) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldPassRate, v))
}

// PassRateIn applies the In predicate on the "pass_rate" field.
func PassRateIn(vs ...float64) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldPassRate, vs...))
}

// PassRateNotIn applies the NotIn predicate on the "pass_rate" field.
func PassRateNotIn(vs ...float64) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldPassRate, vs...))
}

// PassRateGT applies the GT predicate on the "pass_rate" field.
func PassRateGT(v float64) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldPassRate, v))
}

// PassRateGTE applies the GTE predicate on the "pass_rate" field.
func PassRateGTE(v float64) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldPassRate, v))
}

// PassRateLT applies the LT predicate on the "pass_rate" field.
func PassRateLT(v float64) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldPassRate, v))
}

// PassRateLTE applies the LTE predicate on the "pass_rate" field.
func PassRateLTE(v float64) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldPassRate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldContainsFold(FieldStatus, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldStartDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WeekPlan {
	return predicate.WeekPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeekPlan) predicate.WeekPlan {
	return predicate.WeekPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeekPlan) predicate.WeekPlan {
	return predicate.WeekPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeekPlan) predicate.WeekPlan {
	return predicate.WeekPlan(sql.NotPredicates(p))
}
