// Code generated by ent, DO NOT EDIT.

package skill

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the skill type in the database.
	Label = "skill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldSuccessSignal holds the string denoting the success_signal field in the database.
	FieldSuccessSignal = "success_signal"
	// FieldConstraints holds the string denoting the constraints field in the database.
	FieldConstraints = "constraints"
	// FieldTransferScenario holds the string denoting the transfer_scenario field in the database.
	FieldTransferScenario = "transfer_scenario"
	// FieldEstimatedMinutes holds the string denoting the estimated_minutes field in the database.
	FieldEstimatedMinutes = "estimated_minutes"
	// FieldSkillType holds the string denoting the skill_type field in the database.
	FieldSkillType = "skill_type"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldOrder holds the string denoting the order field in the database.
	FieldOrder = "order"
	// FieldPrerequisiteSkillIds holds the string denoting the prerequisite_skill_ids field in the database.
	FieldPrerequisiteSkillIds = "prerequisite_skill_ids"
	// FieldPrerequisiteQuestIds holds the string denoting the prerequisite_quest_ids field in the database.
	FieldPrerequisiteQuestIds = "prerequisite_quest_ids"
	// FieldIsCompound holds the string denoting the is_compound field in the database.
	FieldIsCompound = "is_compound"
	// FieldComponentSkillIds holds the string denoting the component_skill_ids field in the database.
	FieldComponentSkillIds = "component_skill_ids"
	// FieldWeekNumber holds the string denoting the week_number field in the database.
	FieldWeekNumber = "week_number"
	// FieldDayInWeek holds the string denoting the day_in_week field in the database.
	FieldDayInWeek = "day_in_week"
	// FieldDayInQuest holds the string denoting the day_in_quest field in the database.
	FieldDayInQuest = "day_in_quest"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPassCount holds the string denoting the pass_count field in the database.
	FieldPassCount = "pass_count"
	// FieldFailCount holds the string denoting the fail_count field in the database.
	FieldFailCount = "fail_count"
	// FieldConsecutivePasses holds the string denoting the consecutive_passes field in the database.
	FieldConsecutivePasses = "consecutive_passes"
	// FieldMasteredAt holds the string denoting the mastered_at field in the database.
	FieldMasteredAt = "mastered_at"
	// FieldUnlockedAt holds the string denoting the unlocked_at field in the database.
	FieldUnlockedAt = "unlocked_at"
	// Table holds the table name of the skill in the database.
	Table = "skills"
)

// Columns holds all SQL columns for skill fields.
var Columns = []string{
	FieldID,
	FieldSkillID,
	FieldQuestID,
	FieldGoalID,
	FieldUserID,
	FieldTitle,
	FieldTopics,
	FieldAction,
	FieldSuccessSignal,
	FieldConstraints,
	FieldTransferScenario,
	FieldEstimatedMinutes,
	FieldSkillType,
	FieldDepth,
	FieldOrder,
	FieldPrerequisiteSkillIds,
	FieldPrerequisiteQuestIds,
	FieldIsCompound,
	FieldComponentSkillIds,
	FieldWeekNumber,
	FieldDayInWeek,
	FieldDayInQuest,
	FieldMastery,
	FieldStatus,
	FieldPassCount,
	FieldFailCount,
	FieldConsecutivePasses,
	FieldMasteredAt,
	FieldUnlockedAt,
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
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	QuestIDValidator func(string) error
	// GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	GoalIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultEstimatedMinutes holds the default value on creation for the "estimated_minutes" field.
	DefaultEstimatedMinutes int
	// SkillTypeValidator is a validator for the "skill_type" field. It is called by the builders before save.
	SkillTypeValidator func(string) error
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DefaultOrder holds the default value on creation for the "order" field.
	DefaultOrder int
	// DefaultIsCompound holds the default value on creation for the "is_compound" field.
	DefaultIsCompound bool
	// DefaultWeekNumber holds the default value on creation for the "week_number" field.
	DefaultWeekNumber int
	// DefaultDayInWeek holds the default value on creation for the "day_in_week" field.
	DefaultDayInWeek int
	// DefaultDayInQuest holds the default value on creation for the "day_in_quest" field.
	DefaultDayInQuest int
	// DefaultMastery holds the default value on creation for the "mastery" field.
	DefaultMastery string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultPassCount holds the default value on creation for the "pass_count" field.
	DefaultPassCount int
	// DefaultFailCount holds the default value on creation for the "fail_count" field.
	DefaultFailCount int
	// DefaultConsecutivePasses holds the default value on creation for the "consecutive_passes" field.
	DefaultConsecutivePasses int
)

// OrderOption defines the ordering options for the Skill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// BySuccessSignal orders the results by the success_signal field.
func BySuccessSignal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessSignal, opts...).ToFunc()
}

// ByConstraints orders the results by the constraints field.
func ByConstraints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConstraints, opts...).ToFunc()
}

// ByTransferScenario orders the results by the transfer_scenario field.
func ByTransferScenario(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransferScenario, opts...).ToFunc()
}

// ByEstimatedMinutes orders the results by the estimated_minutes field.
func ByEstimatedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMinutes, opts...).ToFunc()
}

// BySkillType orders the results by the skill_type field.
func BySkillType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillType, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByOrder orders the results by the order field.
func ByOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrder, opts...).ToFunc()
}

// ByIsCompound orders the results by the is_compound field.
func ByIsCompound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCompound, opts...).ToFunc()
}

// ByWeekNumber orders the results by the week_number field.
func ByWeekNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekNumber, opts...).ToFunc()
}

// ByDayInWeek orders the results by the day_in_week field.
func ByDayInWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayInWeek, opts...).ToFunc()
}

// ByDayInQuest orders the results by the day_in_quest field.
func ByDayInQuest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayInQuest, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPassCount orders the results by the pass_count field.
func ByPassCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassCount, opts...).ToFunc()
}

// ByFailCount orders the results by the fail_count field.
func ByFailCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailCount, opts...).ToFunc()
}

// ByConsecutivePasses orders the results by the consecutive_passes field.
func ByConsecutivePasses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutivePasses, opts...).ToFunc()
}

// ByMasteredAt orders the results by the mastered_at field.
func ByMasteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteredAt, opts...).ToFunc()
}

// ByUnlockedAt orders the results by the unlocked_at field.
func ByUnlockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlockedAt, opts...).ToFunc()
}
