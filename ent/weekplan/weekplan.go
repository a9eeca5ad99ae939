// Code generated by ent, DO NOT EDIT.

package weekplan

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the weekplan type in the database.
	Label = "week_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldWeekNumber holds the string denoting the week_number field in the database.
	FieldWeekNumber = "week_number"
	// FieldWeekInQuest holds the string denoting the week_in_quest field in the database.
	FieldWeekInQuest = "week_in_quest"
	// FieldIsFirstWeekOfQuest holds the string denoting the is_first_week_of_quest field in the database.
	FieldIsFirstWeekOfQuest = "is_first_week_of_quest"
	// FieldIsLastWeekOfQuest holds the string denoting the is_last_week_of_quest field in the database.
	FieldIsLastWeekOfQuest = "is_last_week_of_quest"
	// FieldDays holds the string denoting the days field in the database.
	FieldDays = "days"
	// FieldScheduledSkillIds holds the string denoting the scheduled_skill_ids field in the database.
	FieldScheduledSkillIds = "scheduled_skill_ids"
	// FieldCarryForwardSkillIds holds the string denoting the carry_forward_skill_ids field in the database.
	FieldCarryForwardSkillIds = "carry_forward_skill_ids"
	// FieldReviewsFromQuestIds holds the string denoting the reviews_from_quest_ids field in the database.
	FieldReviewsFromQuestIds = "reviews_from_quest_ids"
	// FieldBuildsOnSkillIds holds the string denoting the builds_on_skill_ids field in the database.
	FieldBuildsOnSkillIds = "builds_on_skill_ids"
	// FieldTheme holds the string denoting the theme field in the database.
	FieldTheme = "theme"
	// FieldWeeklyCompetence holds the string denoting the weekly_competence field in the database.
	FieldWeeklyCompetence = "weekly_competence"
	// FieldDrillsCompleted holds the string denoting the drills_completed field in the database.
	FieldDrillsCompleted = "drills_completed"
	// FieldDrillsPassed holds the string denoting the drills_passed field in the database.
	FieldDrillsPassed = "drills_passed"
	// FieldDrillsFailed holds the string denoting the drills_failed field in the database.
	FieldDrillsFailed = "drills_failed"
	// FieldDrillsSkipped holds the string denoting the drills_skipped field in the database.
	FieldDrillsSkipped = "drills_skipped"
	// FieldSkillsMastered holds the string denoting the skills_mastered field in the database.
	FieldSkillsMastered = "skills_mastered"
	// FieldPassRate holds the string denoting the pass_rate field in the database.
	FieldPassRate = "pass_rate"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the weekplan in the database.
	Table = "week_plans"
)

// Columns holds all SQL columns for weekplan fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldGoalID,
	FieldUserID,
	FieldQuestID,
	FieldWeekNumber,
	FieldWeekInQuest,
	FieldIsFirstWeekOfQuest,
	FieldIsLastWeekOfQuest,
	FieldDays,
	FieldScheduledSkillIds,
	FieldCarryForwardSkillIds,
	FieldReviewsFromQuestIds,
	FieldBuildsOnSkillIds,
	FieldTheme,
	FieldWeeklyCompetence,
	FieldDrillsCompleted,
	FieldDrillsPassed,
	FieldDrillsFailed,
	FieldDrillsSkipped,
	FieldSkillsMastered,
	FieldPassRate,
	FieldStatus,
	FieldStartDate,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	GoalIDValidator func(string) error
	// QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	QuestIDValidator func(string) error
	// DefaultIsFirstWeekOfQuest holds the default value on creation for the "is_first_week_of_quest" field.
	DefaultIsFirstWeekOfQuest bool
	// DefaultIsLastWeekOfQuest holds the default value on creation for the "is_last_week_of_quest" field.
	DefaultIsLastWeekOfQuest bool
	// DefaultDrillsCompleted holds the default value on creation for the "drills_completed" field.
	DefaultDrillsCompleted int
	// DefaultDrillsPassed holds the default value on creation for the "drills_passed" field.
	DefaultDrillsPassed int
	// DefaultDrillsFailed holds the default value on creation for the "drills_failed" field.
	DefaultDrillsFailed int
	// DefaultDrillsSkipped holds the default value on creation for the "drills_skipped" field.
	DefaultDrillsSkipped int
	// DefaultSkillsMastered holds the default value on creation for the "skills_mastered" field.
	DefaultSkillsMastered int
	// DefaultPassRate holds the default value on creation for the "pass_rate" field.
	DefaultPassRate float64
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
)

// OrderOption defines the ordering options for the WeekPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// ByWeekNumber orders the results by the week_number field.
func ByWeekNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekNumber, opts...).ToFunc()
}

// ByWeekInQuest orders the results by the week_in_quest field.
func ByWeekInQuest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekInQuest, opts...).ToFunc()
}

// ByIsFirstWeekOfQuest orders the results by the is_first_week_of_quest field.
func ByIsFirstWeekOfQuest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFirstWeekOfQuest, opts...).ToFunc()
}

// ByIsLastWeekOfQuest orders the results by the is_last_week_of_quest field.
func ByIsLastWeekOfQuest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsLastWeekOfQuest, opts...).ToFunc()
}

// ByTheme orders the results by the theme field.
func ByTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheme, opts...).ToFunc()
}

// ByWeeklyCompetence orders the results by the weekly_competence field.
func ByWeeklyCompetence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyCompetence, opts...).ToFunc()
}

// ByDrillsCompleted orders the results by the drills_completed field.
func ByDrillsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillsCompleted, opts...).ToFunc()
}

// ByDrillsPassed orders the results by the drills_passed field.
func ByDrillsPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillsPassed, opts...).ToFunc()
}

// ByDrillsFailed orders the results by the drills_failed field.
func ByDrillsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillsFailed, opts...).ToFunc()
}

// ByDrillsSkipped orders the results by the drills_skipped field.
func ByDrillsSkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillsSkipped, opts...).ToFunc()
}

// BySkillsMastered orders the results by the skills_mastered field.
func BySkillsMastered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillsMastered, opts...).ToFunc()
}

// ByPassRate orders the results by the pass_rate field.
func ByPassRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassRate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
