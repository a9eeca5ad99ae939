// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// DrillID applies equality check predicate on the "drill_id" field. It's identical to DrillIDEQ.
func DrillID(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDrillID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSkillID, v))
}

// WeekPlanID applies equality check predicate on the "week_plan_id" field. It's identical to WeekPlanIDEQ.
func WeekPlanID(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldWeekPlanID, v))
}

// DayNumber applies equality check predicate on the "day_number" field. It's identical to DayNumberEQ.
func DayNumber(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDayNumber, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldAttemptNumber, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldRetryCount, v))
}

// TotalMinutes applies equality check predicate on the "total_minutes" field. It's identical to TotalMinutesEQ.
func TotalMinutes(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTotalMinutes, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldTimestamp, v))
}

// DrillIDEQ applies the EQ predicate on the "drill_id" field.
func DrillIDEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDrillID, v))
}

// DrillIDNEQ applies the NEQ predicate on the "drill_id" field.
func DrillIDNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldDrillID, v))
}

// DrillIDIn applies the In predicate on the "drill_id" field.
func DrillIDIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldDrillID, vs...))
}

// DrillIDNotIn applies the NotIn predicate on the "drill_id" field.
func DrillIDNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldDrillID, vs...))
}

// DrillIDGT applies the GT predicate on the "drill_id" field.
func DrillIDGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldDrillID, v))
}

// DrillIDGTE applies the GTE predicate on the "drill_id" field.
func DrillIDGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldDrillID, v))
}

// DrillIDLT applies the LT predicate on the "drill_id" field.
func DrillIDLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldDrillID, v))
}

// DrillIDLTE applies the LTE predicate on the "drill_id" field.
func DrillIDLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldDrillID, v))
}

// DrillIDContains applies the Contains predicate on the "drill_id" field.
func DrillIDContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldDrillID, v))
}

// DrillIDHasPrefix applies the HasPrefix predicate on the "drill_id" field.
func DrillIDHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldDrillID, v))
}

// DrillIDHasSuffix applies the HasSuffix predicate on the "drill_id" field.
func DrillIDHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldDrillID, v))
}

// DrillIDEqualFold applies the EqualFold predicate on the "drill_id" field.
func DrillIDEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldDrillID, v))
}

// DrillIDContainsFold applies the ContainsFold predicate on the "drill_id" field.
func DrillIDContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldDrillID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// WeekPlanIDEQ applies the EQ predicate on the "week_plan_id" field.
func WeekPlanIDEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldWeekPlanID, v))
}

// WeekPlanIDNEQ applies the NEQ predicate on the "week_plan_id" field.
func WeekPlanIDNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldWeekPlanID, v))
}

// WeekPlanIDIn applies the In predicate on the "week_plan_id" field.
func WeekPlanIDIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldWeekPlanID, vs...))
}

// WeekPlanIDNotIn applies the NotIn predicate on the "week_plan_id" field.
func WeekPlanIDNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldWeekPlanID, vs...))
}

// WeekPlanIDGT applies the GT predicate on the "week_plan_id" field.
func WeekPlanIDGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldWeekPlanID, v))
}

// WeekPlanIDGTE applies the GTE predicate on the "week_plan_id" field.
func WeekPlanIDGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldWeekPlanID, v))
}

// WeekPlanIDLT applies the LT predicate on the "week_plan_id" field.
func WeekPlanIDLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldWeekPlanID, v))
}

// WeekPlanIDLTE applies the LTE predicate on the "week_plan_id" field.
func WeekPlanIDLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldWeekPlanID, v))
}

// WeekPlanIDContains applies the Contains predicate on the "week_plan_id" field.
func WeekPlanIDContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldWeekPlanID, v))
}

// WeekPlanIDHasPrefix applies the HasPrefix predicate on the "week_plan_id" field.
func WeekPlanIDHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldWeekPlanID, v))
}

// WeekPlanIDHasSuffix applies the HasSuffix predicate on the "week_plan_id" field.
func WeekPlanIDHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldWeekPlanID, v))
}

// WeekPlanIDIsNil applies the IsNil predicate on the "week_plan_id" field.
func WeekPlanIDIsNil() predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIsNull(FieldWeekPlanID))
}

// WeekPlanIDNotNil applies the NotNil predicate on the "week_plan_id" field.
func WeekPlanIDNotNil() predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotNull(FieldWeekPlanID))
}

// WeekPlanIDEqualFold applies the EqualFold predicate on the "week_plan_id" field.
func WeekPlanIDEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldWeekPlanID, v))
}

// WeekPlanIDContainsFold applies the ContainsFold predicate on the "week_plan_id" field.
func WeekPlanIDContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldWeekPlanID, v))
}

// DayNumberEQ applies the EQ predicate on the "day_number" field.
func DayNumberEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDayNumber, v))
}

// DayNumberNEQ applies the NEQ predicate on the "day_number" field.
func DayNumberNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldDayNumber, v))
}

// DayNumberIn applies the In predicate on the "day_number" field.
func DayNumberIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldDayNumber, vs...))
}

// DayNumberNotIn applies the NotIn predicate on the "day_number" field.
func DayNumberNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldDayNumber, vs...))
}

// DayNumberGT applies the GT predicate on the "day_number" field.
func DayNumberGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldDayNumber, v))
}

// DayNumberGTE applies the GTE predicate on the "day_number" field.
func DayNumberGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldDayNumber, v))
}

// DayNumberLT applies the LT predicate on the "day_number" field.
func DayNumberLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldDayNumber, v))
}

// DayNumberLTE applies the LTE predicate on the "day_number" field.
func DayNumberLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldDayNumber, v))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldAttemptNumber, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldRetryCount, v))
}

// TotalMinutesEQ applies the EQ predicate on the "total_minutes" field.
func TotalMinutesEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTotalMinutes, v))
}

// TotalMinutesNEQ applies the NEQ predicate on the "total_minutes" field.
func TotalMinutesNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldTotalMinutes, v))
}

// TotalMinutesIn applies the In predicate on the "total_minutes" field.
func TotalMinutesIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldTotalMinutes, vs...))
}

// TotalMinutesNotIn applies the NotIn predicate on the "total_minutes" field.
func TotalMinutesNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldTotalMinutes, vs...))
}

// TotalMinutesGT applies the GT predicate on the "total_minutes" field.
func TotalMinutesGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldTotalMinutes, v))
}

// TotalMinutesGTE applies the GTE predicate on the "total_minutes" field.
func TotalMinutesGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldTotalMinutes, v))
}

// TotalMinutesLT applies the LT predicate on the "total_minutes" field.
func TotalMinutesLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldTotalMinutes, v))
}

// TotalMinutesLTE applies the LTE predicate on the "total_minutes" field.
func TotalMinutesLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldTotalMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.NotPredicates(p))
}
