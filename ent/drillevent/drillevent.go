// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the drillevent type in the database.
	Label = "drill_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldDrillID holds the string denoting the drill_id field in the database.
	FieldDrillID = "drill_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldWeekPlanID holds the string denoting the week_plan_id field in the database.
	FieldWeekPlanID = "week_plan_id"
	// FieldDayNumber holds the string denoting the day_number field in the database.
	FieldDayNumber = "day_number"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldTotalMinutes holds the string denoting the total_minutes field in the database.
	FieldTotalMinutes = "total_minutes"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// Table holds the table name of the drillevent in the database.
	Table = "drill_events"
)

// Columns holds all SQL columns for drillevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldDrillID,
	FieldSkillID,
	FieldWeekPlanID,
	FieldDayNumber,
	FieldAttemptNumber,
	FieldRetryCount,
	FieldTotalMinutes,
	FieldPayload,
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
	// DrillIDValidator is a validator for the "drill_id" field. It is called by the builders before save.
	DrillIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DefaultDayNumber holds the default value on creation for the "day_number" field.
	DefaultDayNumber int
	// DefaultAttemptNumber holds the default value on creation for the "attempt_number" field.
	DefaultAttemptNumber int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultTotalMinutes holds the default value on creation for the "total_minutes" field.
	DefaultTotalMinutes int
)

// OrderOption defines the ordering options for the DrillEvent queries.
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

// ByDrillID orders the results by the drill_id field.
func ByDrillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByWeekPlanID orders the results by the week_plan_id field.
func ByWeekPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekPlanID, opts...).ToFunc()
}

// ByDayNumber orders the results by the day_number field.
func ByDayNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayNumber, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByTotalMinutes orders the results by the total_minutes field.
func ByTotalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMinutes, opts...).ToFunc()
}
