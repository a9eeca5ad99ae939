// Code generated by ent, DO NOT EDIT.

package skill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldID, id))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSkillID, v))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldQuestID, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldGoalID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTitle, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldAction, v))
}

// SuccessSignal applies equality check predicate on the "success_signal" field. It's identical to SuccessSignalEQ.
func SuccessSignal(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSuccessSignal, v))
}

// Constraints applies equality check predicate on the "constraints" field. It's identical to ConstraintsEQ.
func Constraints(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldConstraints, v))
}

// TransferScenario applies equality check predicate on the "transfer_scenario" field. It's identical to TransferScenarioEQ.
func TransferScenario(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTransferScenario, v))
}

// EstimatedMinutes applies equality check predicate on the "estimated_minutes" field. It's identical to EstimatedMinutesEQ.
func EstimatedMinutes(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// SkillType applies equality check predicate on the "skill_type" field. It's identical to SkillTypeEQ.
func SkillType(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSkillType, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDepth, v))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldOrder, v))
}

// IsCompound applies equality check predicate on the "is_compound" field. It's identical to IsCompoundEQ.
func IsCompound(v bool) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldIsCompound, v))
}

// WeekNumber applies equality check predicate on the "week_number" field. It's identical to WeekNumberEQ.
func WeekNumber(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldWeekNumber, v))
}

// DayInWeek applies equality check predicate on the "day_in_week" field. It's identical to DayInWeekEQ.
func DayInWeek(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDayInWeek, v))
}

// DayInQuest applies equality check predicate on the "day_in_quest" field. It's identical to DayInQuestEQ.
func DayInQuest(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDayInQuest, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldMastery, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldStatus, v))
}

// PassCount applies equality check predicate on the "pass_count" field. It's identical to PassCountEQ.
func PassCount(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldPassCount, v))
}

// FailCount applies equality check predicate on the "fail_count" field. It's identical to FailCountEQ.
func FailCount(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldFailCount, v))
}

// ConsecutivePasses applies equality check predicate on the "consecutive_passes" field. It's identical to ConsecutivePassesEQ.
func ConsecutivePasses(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldConsecutivePasses, v))
}

// MasteredAt applies equality check predicate on the "mastered_at" field. It's identical to MasteredAtEQ.
func MasteredAt(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldMasteredAt, v))
}

// UnlockedAt applies equality check predicate on the "unlocked_at" field. It's identical to UnlockedAtEQ.
func UnlockedAt(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUnlockedAt, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldSkillID, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldQuestID, v))
}

// QuestIDContains applies the Contains predicate on the "quest_id" field.
func QuestIDContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldQuestID, v))
}

// QuestIDHasPrefix applies the HasPrefix predicate on the "quest_id" field.
func QuestIDHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldQuestID, v))
}

// QuestIDHasSuffix applies the HasSuffix predicate on the "quest_id" field.
func QuestIDHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldQuestID, v))
}

// QuestIDEqualFold applies the EqualFold predicate on the "quest_id" field.
func QuestIDEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldQuestID, v))
}

// QuestIDContainsFold applies the ContainsFold predicate on the "quest_id" field.
func QuestIDContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldQuestID, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldGoalID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldTitle, v))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldTopics))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldAction, v))
}

// ActionIsNil applies the IsNil predicate on the "action" field.
func ActionIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldAction))
}

// ActionNotNil applies the NotNil predicate on the "action" field.
func ActionNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldAction))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldAction, v))
}

// SuccessSignalEQ applies the EQ predicate on the "success_signal" field.
func SuccessSignalEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSuccessSignal, v))
}

// SuccessSignalNEQ applies the NEQ predicate on the "success_signal" field.
func SuccessSignalNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldSuccessSignal, v))
}

// SuccessSignalIn applies the In predicate on the "success_signal" field.
func SuccessSignalIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldSuccessSignal, vs...))
}

// SuccessSignalNotIn applies the NotIn predicate on the "success_signal" field.
func SuccessSignalNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldSuccessSignal, vs...))
}

// SuccessSignalGT applies the GT predicate on the "success_signal" field.
func SuccessSignalGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldSuccessSignal, v))
}

// SuccessSignalGTE applies the GTE predicate on the "success_signal" field.
func SuccessSignalGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldSuccessSignal, v))
}

// SuccessSignalLT applies the LT predicate on the "success_signal" field.
func SuccessSignalLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldSuccessSignal, v))
}

// SuccessSignalLTE applies the LTE predicate on the "success_signal" field.
func SuccessSignalLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldSuccessSignal, v))
}

// SuccessSignalContains applies the Contains predicate on the "success_signal" field.
func SuccessSignalContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldSuccessSignal, v))
}

// SuccessSignalHasPrefix applies the HasPrefix predicate on the "success_signal" field.
func SuccessSignalHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldSuccessSignal, v))
}

// SuccessSignalHasSuffix applies the HasSuffix predicate on the "success_signal" field.
func SuccessSignalHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldSuccessSignal, v))
}

// SuccessSignalIsNil applies the IsNil predicate on the "success_signal" field.
func SuccessSignalIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldSuccessSignal))
}

// SuccessSignalNotNil applies the NotNil predicate on the "success_signal" field.
func SuccessSignalNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldSuccessSignal))
}

// SuccessSignalEqualFold applies the EqualFold predicate on the "success_signal" field.
func SuccessSignalEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldSuccessSignal, v))
}

// SuccessSignalContainsFold applies the ContainsFold predicate on the "success_signal" field.
func SuccessSignalContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldSuccessSignal, v))
}

// ConstraintsEQ applies the EQ predicate on the "constraints" field.
func ConstraintsEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldConstraints, v))
}

// ConstraintsNEQ applies the NEQ predicate on the "constraints" field.
func ConstraintsNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldConstraints, v))
}

// ConstraintsIn applies the In predicate on the "constraints" field.
func ConstraintsIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldConstraints, vs...))
}

// ConstraintsNotIn applies the NotIn predicate on the "constraints" field.
func ConstraintsNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldConstraints, vs...))
}

// ConstraintsGT applies the GT predicate on the "constraints" field.
func ConstraintsGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldConstraints, v))
}

// ConstraintsGTE applies the GTE predicate on the "constraints" field.
func ConstraintsGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldConstraints, v))
}

// ConstraintsLT applies the LT predicate on the "constraints" field.
func ConstraintsLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldConstraints, v))
}

// ConstraintsLTE applies the LTE predicate on the "constraints" field.
func ConstraintsLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldConstraints, v))
}

// ConstraintsContains applies the Contains predicate on the "constraints" field.
func ConstraintsContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldConstraints, v))
}

// ConstraintsHasPrefix applies the HasPrefix predicate on the "constraints" field.
func ConstraintsHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldConstraints, v))
}

// ConstraintsHasSuffix applies the HasSuffix predicate on the "constraints" field.
func ConstraintsHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldConstraints, v))
}

// ConstraintsIsNil applies the IsNil predicate on the "constraints" field.
func ConstraintsIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldConstraints))
}

// ConstraintsNotNil applies the NotNil predicate on the "constraints" field.
func ConstraintsNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldConstraints))
}

// ConstraintsEqualFold applies the EqualFold predicate on the "constraints" field.
func ConstraintsEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldConstraints, v))
}

// ConstraintsContainsFold applies the ContainsFold predicate on the "constraints" field.
func ConstraintsContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldConstraints, v))
}

// TransferScenarioEQ applies the EQ predicate on the "transfer_scenario" field.
func TransferScenarioEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldTransferScenario, v))
}

// TransferScenarioNEQ applies the NEQ predicate on the "transfer_scenario" field.
func TransferScenarioNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldTransferScenario, v))
}

// TransferScenarioIn applies the In predicate on the "transfer_scenario" field.
func TransferScenarioIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldTransferScenario, vs...))
}

// TransferScenarioNotIn applies the NotIn predicate on the "transfer_scenario" field.
func TransferScenarioNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldTransferScenario, vs...))
}

// TransferScenarioGT applies the GT predicate on the "transfer_scenario" field.
func TransferScenarioGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldTransferScenario, v))
}

// TransferScenarioGTE applies the GTE predicate on the "transfer_scenario" field.
func TransferScenarioGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldTransferScenario, v))
}

// TransferScenarioLT applies the LT predicate on the "transfer_scenario" field.
func TransferScenarioLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldTransferScenario, v))
}

// TransferScenarioLTE applies the LTE predicate on the "transfer_scenario" field.
func TransferScenarioLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldTransferScenario, v))
}

// TransferScenarioContains applies the Contains predicate on the "transfer_scenario" field.
func TransferScenarioContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldTransferScenario, v))
}

// TransferScenarioHasPrefix applies the HasPrefix predicate on the "transfer_scenario" field.
func TransferScenarioHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldTransferScenario, v))
}

// TransferScenarioHasSuffix applies the HasSuffix predicate on the "transfer_scenario" field.
func TransferScenarioHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldTransferScenario, v))
}

// TransferScenarioIsNil applies the IsNil predicate on the "transfer_scenario" field.
func TransferScenarioIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldTransferScenario))
}

// TransferScenarioNotNil applies the NotNil predicate on the "transfer_scenario" field.
func TransferScenarioNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldTransferScenario))
}

// TransferScenarioEqualFold applies the EqualFold predicate on the "transfer_scenario" field.
func TransferScenarioEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldTransferScenario, v))
}

// TransferScenarioContainsFold applies the ContainsFold predicate on the "transfer_scenario" field.
func TransferScenarioContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldTransferScenario, v))
}

// EstimatedMinutesEQ applies the EQ predicate on the "estimated_minutes" field.
func EstimatedMinutesEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesNEQ applies the NEQ predicate on the "estimated_minutes" field.
func EstimatedMinutesNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesIn applies the In predicate on the "estimated_minutes" field.
func EstimatedMinutesIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesNotIn applies the NotIn predicate on the "estimated_minutes" field.
func EstimatedMinutesNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesGT applies the GT predicate on the "estimated_minutes" field.
func EstimatedMinutesGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesGTE applies the GTE predicate on the "estimated_minutes" field.
func EstimatedMinutesGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLT applies the LT predicate on the "estimated_minutes" field.
func EstimatedMinutesLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLTE applies the LTE predicate on the "estimated_minutes" field.
func EstimatedMinutesLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldEstimatedMinutes, v))
}

// SkillTypeEQ applies the EQ predicate on the "skill_type" field.
func SkillTypeEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldSkillType, v))
}

// SkillTypeNEQ applies the NEQ predicate on the "skill_type" field.
func SkillTypeNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldSkillType, v))
}

// SkillTypeIn applies the In predicate on the "skill_type" field.
func SkillTypeIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldSkillType, vs...))
}

// SkillTypeNotIn applies the NotIn predicate on the "skill_type" field.
func SkillTypeNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldSkillType, vs...))
}

// SkillTypeGT applies the GT predicate on the "skill_type" field.
func SkillTypeGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldSkillType, v))
}

// SkillTypeGTE applies the GTE predicate on the "skill_type" field.
func SkillTypeGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldSkillType, v))
}

// SkillTypeLT applies the LT predicate on the "skill_type" field.
func SkillTypeLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldSkillType, v))
}

// SkillTypeLTE applies the LTE predicate on the "skill_type" field.
func SkillTypeLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldSkillType, v))
}

// SkillTypeContains applies the Contains predicate on the "skill_type" field.
func SkillTypeContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldSkillType, v))
}

// SkillTypeHasPrefix applies the HasPrefix predicate on the "skill_type" field.
func SkillTypeHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldSkillType, v))
}

// SkillTypeHasSuffix applies the HasSuffix predicate on the "skill_type" field.
func SkillTypeHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldSkillType, v))
}

// SkillTypeEqualFold applies the EqualFold predicate on the "skill_type" field.
func SkillTypeEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldSkillType, v))
}

// SkillTypeContainsFold applies the ContainsFold predicate on the "skill_type" field.
func SkillTypeContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldSkillType, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldDepth, v))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldOrder, v))
}

// PrerequisiteSkillIdsIsNil applies the IsNil predicate on the "prerequisite_skill_ids" field.
func PrerequisiteSkillIdsIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldPrerequisiteSkillIds))
}

// PrerequisiteSkillIdsNotNil applies the NotNil predicate on the "prerequisite_skill_ids" field.
func PrerequisiteSkillIdsNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldPrerequisiteSkillIds))
}

// PrerequisiteQuestIdsIsNil applies the IsNil predicate on the "prerequisite_quest_ids" field.
func PrerequisiteQuestIdsIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldPrerequisiteQuestIds))
}

// PrerequisiteQuestIdsNotNil applies the NotNil predicate on the "prerequisite_quest_ids" field.
func PrerequisiteQuestIdsNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldPrerequisiteQuestIds))
}

// IsCompoundEQ applies the EQ predicate on the "is_compound" field.
func IsCompoundEQ(v bool) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldIsCompound, v))
}

// IsCompoundNEQ applies the NEQ predicate on the "is_compound" field.
func IsCompoundNEQ(v bool) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldIsCompound, v))
}

// ComponentSkillIdsIsNil applies the IsNil predicate on the "component_skill_ids" field.
func ComponentSkillIdsIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldComponentSkillIds))
}

// ComponentSkillIdsNotNil applies the NotNil predicate on the "component_skill_ids" field.
func ComponentSkillIdsNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldComponentSkillIds))
}

// WeekNumberEQ applies the EQ predicate on the "week_number" field.
func WeekNumberEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldWeekNumber, v))
}

// WeekNumberNEQ applies the NEQ predicate on the "week_number" field.
func WeekNumberNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldWeekNumber, v))
}

// WeekNumberIn applies the In predicate on the "week_number" field.
func WeekNumberIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldWeekNumber, vs...))
}

// WeekNumberNotIn applies the NotIn predicate on the "week_number" field.
func WeekNumberNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldWeekNumber, vs...))
}

// WeekNumberGT applies the GT predicate on the "week_number" field.
func WeekNumberGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldWeekNumber, v))
}

// WeekNumberGTE applies the GTE predicate on the "week_number" field.
func WeekNumberGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldWeekNumber, v))
}

// WeekNumberLT applies the LT predicate on the "week_number" field.
func WeekNumberLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldWeekNumber, v))
}

// WeekNumberLTE applies the LTE predicate on the "week_number" field.
func WeekNumberLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldWeekNumber, v))
}

// DayInWeekEQ applies the EQ predicate on the "day_in_week" field.
func DayInWeekEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDayInWeek, v))
}

// DayInWeekNEQ applies the NEQ predicate on the "day_in_week" field.
func DayInWeekNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldDayInWeek, v))
}

// DayInWeekIn applies the In predicate on the "day_in_week" field.
func DayInWeekIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldDayInWeek, vs...))
}

// DayInWeekNotIn applies the NotIn predicate on the "day_in_week" field.
func DayInWeekNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldDayInWeek, vs...))
}

// DayInWeekGT applies the GT predicate on the "day_in_week" field.
func DayInWeekGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldDayInWeek, v))
}

// DayInWeekGTE applies the GTE predicate on the "day_in_week" field.
func DayInWeekGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldDayInWeek, v))
}

// DayInWeekLT applies the LT predicate on the "day_in_week" field.
func DayInWeekLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldDayInWeek, v))
}

// DayInWeekLTE applies the LTE predicate on the "day_in_week" field.
func DayInWeekLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldDayInWeek, v))
}

// DayInQuestEQ applies the EQ predicate on the "day_in_quest" field.
func DayInQuestEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDayInQuest, v))
}

// DayInQuestNEQ applies the NEQ predicate on the "day_in_quest" field.
func DayInQuestNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldDayInQuest, v))
}

// DayInQuestIn applies the In predicate on the "day_in_quest" field.
func DayInQuestIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldDayInQuest, vs...))
}

// DayInQuestNotIn applies the NotIn predicate on the "day_in_quest" field.
func DayInQuestNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldDayInQuest, vs...))
}

// DayInQuestGT applies the GT predicate on the "day_in_quest" field.
func DayInQuestGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldDayInQuest, v))
}

// DayInQuestGTE applies the GTE predicate on the "day_in_quest" field.
func DayInQuestGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldDayInQuest, v))
}

// DayInQuestLT applies the LT predicate on the "day_in_quest" field.
func DayInQuestLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldDayInQuest, v))
}

// DayInQuestLTE applies the LTE predicate on the "day_in_quest" field.
func DayInQuestLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldDayInQuest, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldMastery, v))
}

// MasteryContains applies the Contains predicate on the "mastery" field.
func MasteryContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldMastery, v))
}

// MasteryHasPrefix applies the HasPrefix predicate on the "mastery" field.
func MasteryHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldMastery, v))
}

// MasteryHasSuffix applies the HasSuffix predicate on the "mastery" field.
func MasteryHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldMastery, v))
}

// MasteryEqualFold applies the EqualFold predicate on the "mastery" field.
func MasteryEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldMastery, v))
}

// MasteryContainsFold applies the ContainsFold predicate on the "mastery" field.
func MasteryContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldMastery, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldStatus, v))
}

// PassCountEQ applies the EQ predicate on the "pass_count" field.
func PassCountEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldPassCount, v))
}

// PassCountNEQ applies the NEQ predicate on the "pass_count" field.
func PassCountNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldPassCount, v))
}

// PassCountIn applies the In predicate on the "pass_count" field.
func PassCountIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldPassCount, vs...))
}

// PassCountNotIn applies the NotIn predicate on the "pass_count" field.
func PassCountNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldPassCount, vs...))
}

// PassCountGT applies the GT predicate on the "pass_count" field.
func PassCountGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldPassCount, v))
}

// PassCountGTE applies the GTE predicate on the "pass_count" field.
func PassCountGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldPassCount, v))
}

// PassCountLT applies the LT predicate on the "pass_count" field.
func PassCountLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldPassCount, v))
}

// PassCountLTE applies the LTE predicate on the "pass_count" field.
func PassCountLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldPassCount, v))
}

// FailCountEQ applies the EQ predicate on the "fail_count" field.
func FailCountEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldFailCount, v))
}

// FailCountNEQ applies the NEQ predicate on the "fail_count" field.
func FailCountNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldFailCount, v))
}

// FailCountIn applies the In predicate on the "fail_count" field.
func FailCountIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldFailCount, vs...))
}

// FailCountNotIn applies the NotIn predicate on the "fail_count" field.
func FailCountNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldFailCount, vs...))
}

// FailCountGT applies the GT predicate on the "fail_count" field.
func FailCountGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldFailCount, v))
}

// FailCountGTE applies the GTE predicate on the "fail_count" field.
func FailCountGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldFailCount, v))
}

// FailCountLT applies the LT predicate on the "fail_count" field.
func FailCountLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldFailCount, v))
}

// FailCountLTE applies the LTE predicate on the "fail_count" field.
func FailCountLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldFailCount, v))
}

// ConsecutivePassesEQ applies the EQ predicate on the "consecutive_passes" field.
func ConsecutivePassesEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldConsecutivePasses, v))
}

// ConsecutivePassesNEQ applies the NEQ predicate on the "consecutive_passes" field.
func ConsecutivePassesNEQ(v int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldConsecutivePasses, v))
}

// ConsecutivePassesIn applies the In predicate on the "consecutive_passes" field.
func ConsecutivePassesIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldConsecutivePasses, vs...))
}

// ConsecutivePassesNotIn applies the NotIn predicate on the "consecutive_passes" field.
func ConsecutivePassesNotIn(vs ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldConsecutivePasses, vs...))
}

// ConsecutivePassesGT applies the GT predicate on the "consecutive_passes" field.
func ConsecutivePassesGT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldConsecutivePasses, v))
}

// ConsecutivePassesGTE applies the GTE predicate on the "consecutive_passes" field.
func ConsecutivePassesGTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldConsecutivePasses, v))
}

// ConsecutivePassesLT applies the LT predicate on the "consecutive_passes" field.
func ConsecutivePassesLT(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldConsecutivePasses, v))
}

// ConsecutivePassesLTE applies the LTE predicate on the "consecutive_passes" field.
func ConsecutivePassesLTE(v int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldConsecutivePasses, v))
}

// MasteredAtEQ applies the EQ predicate on the "mastered_at" field.
func MasteredAtEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldMasteredAt, v))
}

// MasteredAtNEQ applies the NEQ predicate on the "mastered_at" field.
func MasteredAtNEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldMasteredAt, v))
}

// MasteredAtIn applies the In predicate on the "mastered_at" field.
func MasteredAtIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldMasteredAt, vs...))
}

// MasteredAtNotIn applies the NotIn predicate on the "mastered_at" field.
func MasteredAtNotIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldMasteredAt, vs...))
}

// MasteredAtGT applies the GT predicate on the "mastered_at" field.
func MasteredAtGT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldMasteredAt, v))
}

// MasteredAtGTE applies the GTE predicate on the "mastered_at" field.
func MasteredAtGTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldMasteredAt, v))
}

// MasteredAtLT applies the LT predicate on the "mastered_at" field.
func MasteredAtLT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldMasteredAt, v))
}

// MasteredAtLTE applies the LTE predicate on the "mastered_at" field.
func MasteredAtLTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldMasteredAt, v))
}

// MasteredAtIsNil applies the IsNil predicate on the "mastered_at" field.
func MasteredAtIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldMasteredAt))
}

// MasteredAtNotNil applies the NotNil predicate on the "mastered_at" field.
func MasteredAtNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldMasteredAt))
}

// UnlockedAtEQ applies the EQ predicate on the "unlocked_at" field.
func UnlockedAtEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUnlockedAt, v))
}

// UnlockedAtNEQ applies the NEQ predicate on the "unlocked_at" field.
func UnlockedAtNEQ(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldUnlockedAt, v))
}

// UnlockedAtIn applies the In predicate on the "unlocked_at" field.
func UnlockedAtIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldUnlockedAt, vs...))
}

// UnlockedAtNotIn applies the NotIn predicate on the "unlocked_at" field.
func UnlockedAtNotIn(vs ...time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldUnlockedAt, vs...))
}

// UnlockedAtGT applies the GT predicate on the "unlocked_at" field.
func UnlockedAtGT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldUnlockedAt, v))
}

// UnlockedAtGTE applies the GTE predicate on the "unlocked_at" field.
func UnlockedAtGTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldUnlockedAt, v))
}

// UnlockedAtLT applies the LT predicate on the "unlocked_at" field.
func UnlockedAtLT(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldUnlockedAt, v))
}

// UnlockedAtLTE applies the LTE predicate on the "unlocked_at" field.
func UnlockedAtLTE(v time.Time) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldUnlockedAt, v))
}

// UnlockedAtIsNil applies the IsNil predicate on the "unlocked_at" field.
func UnlockedAtIsNil() predicate.Skill {
	return predicate.Skill(sql.FieldIsNull(FieldUnlockedAt))
}

// UnlockedAtNotNil applies the NotNil predicate on the "unlocked_at" field.
func UnlockedAtNotNil() predicate.Skill {
	return predicate.Skill(sql.FieldNotNull(FieldUnlockedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.NotPredicates(p))
}
