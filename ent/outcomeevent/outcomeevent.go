// Code generated by ent, DO NOT EDIT.

package outcomeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the outcomeevent type in the database.
	Label = "outcome_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldFromMastery holds the string denoting the from_mastery field in the database.
	FieldFromMastery = "from_mastery"
	// FieldToMastery holds the string denoting the to_mastery field in the database.
	FieldToMastery = "to_mastery"
	// FieldJustMastered holds the string denoting the just_mastered field in the database.
	FieldJustMastered = "just_mastered"
	// FieldUnlockedSkills holds the string denoting the unlocked_skills field in the database.
	FieldUnlockedSkills = "unlocked_skills"
	// FieldDrillID holds the string denoting the drill_id field in the database.
	FieldDrillID = "drill_id"
	// Table holds the table name of the outcomeevent in the database.
	Table = "outcome_events"
)

// Columns holds all SQL columns for outcomeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSkillID,
	FieldQuestID,
	FieldOutcome,
	FieldFromMastery,
	FieldToMastery,
	FieldJustMastered,
	FieldUnlockedSkills,
	FieldDrillID,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	OutcomeValidator func(string) error
	// FromMasteryValidator is a validator for the "from_mastery" field. It is called by the builders before save.
	FromMasteryValidator func(string) error
	// ToMasteryValidator is a validator for the "to_mastery" field. It is called by the builders before save.
	ToMasteryValidator func(string) error
	// DefaultJustMastered holds the default value on creation for the "just_mastered" field.
	DefaultJustMastered bool
)

// OrderOption defines the ordering options for the OutcomeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByFromMastery orders the results by the from_mastery field.
func ByFromMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromMastery, opts...).ToFunc()
}

// ByToMastery orders the results by the to_mastery field.
func ByToMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToMastery, opts...).ToFunc()
}

// ByJustMastered orders the results by the just_mastered field.
func ByJustMastered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJustMastered, opts...).ToFunc()
}

// ByDrillID orders the results by the drill_id field.
func ByDrillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillID, opts...).ToFunc()
}
