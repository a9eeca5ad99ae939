// Code generated by ent, DO NOT EDIT.

package outcomeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSkillID, v))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldQuestID, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldOutcome, v))
}

// FromMastery applies equality check predicate on the "from_mastery" field. It's identical to FromMasteryEQ.
func FromMastery(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldFromMastery, v))
}

// ToMastery applies equality check predicate on the "to_mastery" field. It's identical to ToMasteryEQ.
func ToMastery(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldToMastery, v))
}

// JustMastered applies equality check predicate on the "just_mastered" field. It's identical to JustMasteredEQ.
func JustMastered(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldJustMastered, v))
}

// DrillID applies equality check predicate on the "drill_id" field. It's identical to DrillIDEQ.
func DrillID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldDrillID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldQuestID, v))
}

// QuestIDContains applies the Contains predicate on the "quest_id" field.
func QuestIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldQuestID, v))
}

// QuestIDHasPrefix applies the HasPrefix predicate on the "quest_id" field.
func QuestIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldQuestID, v))
}

// QuestIDHasSuffix applies the HasSuffix predicate on the "quest_id" field.
func QuestIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldQuestID, v))
}

// QuestIDIsNil applies the IsNil predicate on the "quest_id" field.
func QuestIDIsNil() predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIsNull(FieldQuestID))
}

// QuestIDNotNil applies the NotNil predicate on the "quest_id" field.
func QuestIDNotNil() predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotNull(FieldQuestID))
}

// QuestIDEqualFold applies the EqualFold predicate on the "quest_id" field.
func QuestIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldQuestID, v))
}

// QuestIDContainsFold applies the ContainsFold predicate on the "quest_id" field.
func QuestIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldQuestID, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// FromMasteryEQ applies the EQ predicate on the "from_mastery" field.
func FromMasteryEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldFromMastery, v))
}

// FromMasteryNEQ applies the NEQ predicate on the "from_mastery" field.
func FromMasteryNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldFromMastery, v))
}

// FromMasteryIn applies the In predicate on the "from_mastery" field.
func FromMasteryIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldFromMastery, vs...))
}

// FromMasteryNotIn applies the NotIn predicate on the "from_mastery" field.
func FromMasteryNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldFromMastery, vs...))
}

// FromMasteryGT applies the GT predicate on the "from_mastery" field.
func FromMasteryGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldFromMastery, v))
}

// FromMasteryGTE applies the GTE predicate on the "from_mastery" field.
func FromMasteryGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldFromMastery, v))
}

// FromMasteryLT applies the LT predicate on the "from_mastery" field.
func FromMasteryLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldFromMastery, v))
}

// FromMasteryLTE applies the LTE predicate on the "from_mastery" field.
func FromMasteryLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldFromMastery, v))
}

// FromMasteryContains applies the Contains predicate on the "from_mastery" field.
func FromMasteryContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldFromMastery, v))
}

// FromMasteryHasPrefix applies the HasPrefix predicate on the "from_mastery" field.
func FromMasteryHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldFromMastery, v))
}

// FromMasteryHasSuffix applies the HasSuffix predicate on the "from_mastery" field.
func FromMasteryHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldFromMastery, v))
}

// FromMasteryEqualFold applies the EqualFold predicate on the "from_mastery" field.
func FromMasteryEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldFromMastery, v))
}

// FromMasteryContainsFold applies the ContainsFold predicate on the "from_mastery" field.
func FromMasteryContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldFromMastery, v))
}

// ToMasteryEQ applies the EQ predicate on the "to_mastery" field.
func ToMasteryEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldToMastery, v))
}

// ToMasteryNEQ applies the NEQ predicate on the "to_mastery" field.
func ToMasteryNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldToMastery, v))
}

// ToMasteryIn applies the In predicate on the "to_mastery" field.
func ToMasteryIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldToMastery, vs...))
}

// ToMasteryNotIn applies the NotIn predicate on the "to_mastery" field.
func ToMasteryNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldToMastery, vs...))
}

// ToMasteryGT applies the GT predicate on the "to_mastery" field.
func ToMasteryGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldToMastery, v))
}

// ToMasteryGTE applies the GTE predicate on the "to_mastery" field.
func ToMasteryGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldToMastery, v))
}

// ToMasteryLT applies the LT predicate on the "to_mastery" field.
func ToMasteryLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldToMastery, v))
}

// ToMasteryLTE applies the LTE predicate on the "to_mastery" field.
func ToMasteryLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldToMastery, v))
}

// ToMasteryContains applies the Contains predicate on the "to_mastery" field.
func ToMasteryContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldToMastery, v))
}

// ToMasteryHasPrefix applies the HasPrefix predicate on the "to_mastery" field.
func ToMasteryHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldToMastery, v))
}

// ToMasteryHasSuffix applies the HasSuffix predicate on the "to_mastery" field.
func ToMasteryHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldToMastery, v))
}

// ToMasteryEqualFold applies the EqualFold predicate on the "to_mastery" field.
func ToMasteryEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldToMastery, v))
}

// ToMasteryContainsFold applies the ContainsFold predicate on the "to_mastery" field.
func ToMasteryContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldToMastery, v))
}

// JustMasteredEQ applies the EQ predicate on the "just_mastered" field.
func JustMasteredEQ(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldJustMastered, v))
}

// JustMasteredNEQ applies the NEQ predicate on the "just_mastered" field.
func JustMasteredNEQ(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldJustMastered, v))
}

// UnlockedSkillsIsNil applies the IsNil predicate on the "unlocked_skills" field.
func UnlockedSkillsIsNil() predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIsNull(FieldUnlockedSkills))
}

// UnlockedSkillsNotNil applies the NotNil predicate on the "unlocked_skills" field.
func UnlockedSkillsNotNil() predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotNull(FieldUnlockedSkills))
}

// DrillIDEQ applies the EQ predicate on the "drill_id" field.
func DrillIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldDrillID, v))
}

// DrillIDNEQ applies the NEQ predicate on the "drill_id" field.
func DrillIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldDrillID, v))
}

// DrillIDIn applies the In predicate on the "drill_id" field.
func DrillIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldDrillID, vs...))
}

// DrillIDNotIn applies the NotIn predicate on the "drill_id" field.
func DrillIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldDrillID, vs...))
}

// DrillIDGT applies the GT predicate on the "drill_id" field.
func DrillIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldDrillID, v))
}

// DrillIDGTE applies the GTE predicate on the "drill_id" field.
func DrillIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldDrillID, v))
}

// DrillIDLT applies the LT predicate on the "drill_id" field.
func DrillIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldDrillID, v))
}

// DrillIDLTE applies the LTE predicate on the "drill_id" field.
func DrillIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldDrillID, v))
}

// DrillIDContains applies the Contains predicate on the "drill_id" field.
func DrillIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldDrillID, v))
}

// DrillIDHasPrefix applies the HasPrefix predicate on the "drill_id" field.
func DrillIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldDrillID, v))
}

// DrillIDHasSuffix applies the HasSuffix predicate on the "drill_id" field.
func DrillIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldDrillID, v))
}

// DrillIDIsNil applies the IsNil predicate on the "drill_id" field.
func DrillIDIsNil() predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIsNull(FieldDrillID))
}

// DrillIDNotNil applies the NotNil predicate on the "drill_id" field.
func DrillIDNotNil() predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotNull(FieldDrillID))
}

// DrillIDEqualFold applies the EqualFold predicate on the "drill_id" field.
func DrillIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldDrillID, v))
}

// DrillIDContainsFold applies the ContainsFold predicate on the "drill_id" field.
func DrillIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldDrillID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.NotPredicates(p))
}
