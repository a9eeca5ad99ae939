// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/questline/ent/drillevent"
	"github.com/abhisek/questline/ent/outcomeevent"
	"github.com/abhisek/questline/ent/schema"
	"github.com/abhisek/questline/ent/skill"
	"github.com/abhisek/questline/ent/weekplan"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	drilleventMixin := schema.DrillEvent{}.Mixin()
	drilleventMixinFields0 := drilleventMixin[0].Fields()
	_ = drilleventMixinFields0
	drilleventFields := schema.DrillEvent{}.Fields()
	_ = drilleventFields
	// drilleventDescTimestamp is the schema descriptor for timestamp field.
	drilleventDescTimestamp := drilleventMixinFields0[1].Descriptor()
	// drillevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	drillevent.DefaultTimestamp = drilleventDescTimestamp.Default.(func() time.Time)
	// drilleventDescDrillID is the schema descriptor for drill_id field.
	drilleventDescDrillID := drilleventFields[0].Descriptor()
	// drillevent.DrillIDValidator is a validator for the "drill_id" field. It is called by the builders before save.
	drillevent.DrillIDValidator = drilleventDescDrillID.Validators[0].(func(string) error)
	// drilleventDescSkillID is the schema descriptor for skill_id field.
	drilleventDescSkillID := drilleventFields[1].Descriptor()
	// drillevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	drillevent.SkillIDValidator = drilleventDescSkillID.Validators[0].(func(string) error)
	// drilleventDescDayNumber is the schema descriptor for day_number field.
	drilleventDescDayNumber := drilleventFields[3].Descriptor()
	// drillevent.DefaultDayNumber holds the default value on creation for the day_number field.
	drillevent.DefaultDayNumber = drilleventDescDayNumber.Default.(int)
	// drilleventDescAttemptNumber is the schema descriptor for attempt_number field.
	drilleventDescAttemptNumber := drilleventFields[4].Descriptor()
	// drillevent.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	drillevent.DefaultAttemptNumber = drilleventDescAttemptNumber.Default.(int)
	// drilleventDescRetryCount is the schema descriptor for retry_count field.
	drilleventDescRetryCount := drilleventFields[5].Descriptor()
	// drillevent.DefaultRetryCount holds the default value on creation for the retry_count field.
	drillevent.DefaultRetryCount = drilleventDescRetryCount.Default.(int)
	// drilleventDescTotalMinutes is the schema descriptor for total_minutes field.
	drilleventDescTotalMinutes := drilleventFields[6].Descriptor()
	// drillevent.DefaultTotalMinutes holds the default value on creation for the total_minutes field.
	drillevent.DefaultTotalMinutes = drilleventDescTotalMinutes.Default.(int)
	outcomeeventMixin := schema.OutcomeEvent{}.Mixin()
	outcomeeventMixinFields0 := outcomeeventMixin[0].Fields()
	_ = outcomeeventMixinFields0
	outcomeeventFields := schema.OutcomeEvent{}.Fields()
	_ = outcomeeventFields
	// outcomeeventDescTimestamp is the schema descriptor for timestamp field.
	outcomeeventDescTimestamp := outcomeeventMixinFields0[1].Descriptor()
	// outcomeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	outcomeevent.DefaultTimestamp = outcomeeventDescTimestamp.Default.(func() time.Time)
	// outcomeeventDescSkillID is the schema descriptor for skill_id field.
	outcomeeventDescSkillID := outcomeeventFields[0].Descriptor()
	// outcomeevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	outcomeevent.SkillIDValidator = outcomeeventDescSkillID.Validators[0].(func(string) error)
	// outcomeeventDescOutcome is the schema descriptor for outcome field.
	outcomeeventDescOutcome := outcomeeventFields[2].Descriptor()
	// outcomeevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	outcomeevent.OutcomeValidator = outcomeeventDescOutcome.Validators[0].(func(string) error)
	// outcomeeventDescFromMastery is the schema descriptor for from_mastery field.
	outcomeeventDescFromMastery := outcomeeventFields[3].Descriptor()
	// outcomeevent.FromMasteryValidator is a validator for the "from_mastery" field. It is called by the builders before save.
	outcomeevent.FromMasteryValidator = outcomeeventDescFromMastery.Validators[0].(func(string) error)
	// outcomeeventDescToMastery is the schema descriptor for to_mastery field.
	outcomeeventDescToMastery := outcomeeventFields[4].Descriptor()
	// outcomeevent.ToMasteryValidator is a validator for the "to_mastery" field. It is called by the builders before save.
	outcomeevent.ToMasteryValidator = outcomeeventDescToMastery.Validators[0].(func(string) error)
	// outcomeeventDescJustMastered is the schema descriptor for just_mastered field.
	outcomeeventDescJustMastered := outcomeeventFields[5].Descriptor()
	// outcomeevent.DefaultJustMastered holds the default value on creation for the just_mastered field.
	outcomeevent.DefaultJustMastered = outcomeeventDescJustMastered.Default.(bool)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescSkillID is the schema descriptor for skill_id field.
	skillDescSkillID := skillFields[0].Descriptor()
	// skill.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	skill.SkillIDValidator = skillDescSkillID.Validators[0].(func(string) error)
	// skillDescQuestID is the schema descriptor for quest_id field.
	skillDescQuestID := skillFields[1].Descriptor()
	// skill.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	skill.QuestIDValidator = skillDescQuestID.Validators[0].(func(string) error)
	// skillDescGoalID is the schema descriptor for goal_id field.
	skillDescGoalID := skillFields[2].Descriptor()
	// skill.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	skill.GoalIDValidator = skillDescGoalID.Validators[0].(func(string) error)
	// skillDescUserID is the schema descriptor for user_id field.
	skillDescUserID := skillFields[3].Descriptor()
	// skill.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	skill.UserIDValidator = skillDescUserID.Validators[0].(func(string) error)
	// skillDescTitle is the schema descriptor for title field.
	skillDescTitle := skillFields[4].Descriptor()
	// skill.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	skill.TitleValidator = skillDescTitle.Validators[0].(func(string) error)
	// skillDescEstimatedMinutes is the schema descriptor for estimated_minutes field.
	skillDescEstimatedMinutes := skillFields[10].Descriptor()
	// skill.DefaultEstimatedMinutes holds the default value on creation for the estimated_minutes field.
	skill.DefaultEstimatedMinutes = skillDescEstimatedMinutes.Default.(int)
	// skillDescSkillType is the schema descriptor for skill_type field.
	skillDescSkillType := skillFields[11].Descriptor()
	// skill.SkillTypeValidator is a validator for the "skill_type" field. It is called by the builders before save.
	skill.SkillTypeValidator = skillDescSkillType.Validators[0].(func(string) error)
	// skillDescDepth is the schema descriptor for depth field.
	skillDescDepth := skillFields[12].Descriptor()
	// skill.DefaultDepth holds the default value on creation for the depth field.
	skill.DefaultDepth = skillDescDepth.Default.(int)
	// skillDescOrder is the schema descriptor for order field.
	skillDescOrder := skillFields[13].Descriptor()
	// skill.DefaultOrder holds the default value on creation for the order field.
	skill.DefaultOrder = skillDescOrder.Default.(int)
	// skillDescIsCompound is the schema descriptor for is_compound field.
	skillDescIsCompound := skillFields[16].Descriptor()
	// skill.DefaultIsCompound holds the default value on creation for the is_compound field.
	skill.DefaultIsCompound = skillDescIsCompound.Default.(bool)
	// skillDescWeekNumber is the schema descriptor for week_number field.
	skillDescWeekNumber := skillFields[18].Descriptor()
	// skill.DefaultWeekNumber holds the default value on creation for the week_number field.
	skill.DefaultWeekNumber = skillDescWeekNumber.Default.(int)
	// skillDescDayInWeek is the schema descriptor for day_in_week field.
	skillDescDayInWeek := skillFields[19].Descriptor()
	// skill.DefaultDayInWeek holds the default value on creation for the day_in_week field.
	skill.DefaultDayInWeek = skillDescDayInWeek.Default.(int)
	// skillDescDayInQuest is the schema descriptor for day_in_quest field.
	skillDescDayInQuest := skillFields[20].Descriptor()
	// skill.DefaultDayInQuest holds the default value on creation for the day_in_quest field.
	skill.DefaultDayInQuest = skillDescDayInQuest.Default.(int)
	// skillDescMastery is the schema descriptor for mastery field.
	skillDescMastery := skillFields[21].Descriptor()
	// skill.DefaultMastery holds the default value on creation for the mastery field.
	skill.DefaultMastery = skillDescMastery.Default.(string)
	// skillDescStatus is the schema descriptor for status field.
	skillDescStatus := skillFields[22].Descriptor()
	// skill.DefaultStatus holds the default value on creation for the status field.
	skill.DefaultStatus = skillDescStatus.Default.(string)
	// skillDescPassCount is the schema descriptor for pass_count field.
	skillDescPassCount := skillFields[23].Descriptor()
	// skill.DefaultPassCount holds the default value on creation for the pass_count field.
	skill.DefaultPassCount = skillDescPassCount.Default.(int)
	// skillDescFailCount is the schema descriptor for fail_count field.
	skillDescFailCount := skillFields[24].Descriptor()
	// skill.DefaultFailCount holds the default value on creation for the fail_count field.
	skill.DefaultFailCount = skillDescFailCount.Default.(int)
	// skillDescConsecutivePasses is the schema descriptor for consecutive_passes field.
	skillDescConsecutivePasses := skillFields[25].Descriptor()
	// skill.DefaultConsecutivePasses holds the default value on creation for the consecutive_passes field.
	skill.DefaultConsecutivePasses = skillDescConsecutivePasses.Default.(int)
	weekplanFields := schema.WeekPlan{}.Fields()
	_ = weekplanFields
	// weekplanDescPlanID is the schema descriptor for plan_id field.
	weekplanDescPlanID := weekplanFields[0].Descriptor()
	// weekplan.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	weekplan.PlanIDValidator = weekplanDescPlanID.Validators[0].(func(string) error)
	// weekplanDescGoalID is the schema descriptor for goal_id field.
	weekplanDescGoalID := weekplanFields[1].Descriptor()
	// weekplan.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	weekplan.GoalIDValidator = weekplanDescGoalID.Validators[0].(func(string) error)
	// weekplanDescQuestID is the schema descriptor for quest_id field.
	weekplanDescQuestID := weekplanFields[3].Descriptor()
	// weekplan.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	weekplan.QuestIDValidator = weekplanDescQuestID.Validators[0].(func(string) error)
	// weekplanDescIsFirstWeekOfQuest is the schema descriptor for is_first_week_of_quest field.
	weekplanDescIsFirstWeekOfQuest := weekplanFields[6].Descriptor()
	// weekplan.DefaultIsFirstWeekOfQuest holds the default value on creation for the is_first_week_of_quest field.
	weekplan.DefaultIsFirstWeekOfQuest = weekplanDescIsFirstWeekOfQuest.Default.(bool)
	// weekplanDescIsLastWeekOfQuest is the schema descriptor for is_last_week_of_quest field.
	weekplanDescIsLastWeekOfQuest := weekplanFields[7].Descriptor()
	// weekplan.DefaultIsLastWeekOfQuest holds the default value on creation for the is_last_week_of_quest field.
	weekplan.DefaultIsLastWeekOfQuest = weekplanDescIsLastWeekOfQuest.Default.(bool)
	// weekplanDescDrillsCompleted is the schema descriptor for drills_completed field.
	weekplanDescDrillsCompleted := weekplanFields[15].Descriptor()
	// weekplan.DefaultDrillsCompleted holds the default value on creation for the drills_completed field.
	weekplan.DefaultDrillsCompleted = weekplanDescDrillsCompleted.Default.(int)
	// weekplanDescDrillsPassed is the schema descriptor for drills_passed field.
	weekplanDescDrillsPassed := weekplanFields[16].Descriptor()
	// weekplan.DefaultDrillsPassed holds the default value on creation for the drills_passed field.
	weekplan.DefaultDrillsPassed = weekplanDescDrillsPassed.Default.(int)
	// weekplanDescDrillsFailed is the schema descriptor for drills_failed field.
	weekplanDescDrillsFailed := weekplanFields[17].Descriptor()
	// weekplan.DefaultDrillsFailed holds the default value on creation for the drills_failed field.
	weekplan.DefaultDrillsFailed = weekplanDescDrillsFailed.Default.(int)
	// weekplanDescDrillsSkipped is the schema descriptor for drills_skipped field.
	weekplanDescDrillsSkipped := weekplanFields[18].Descriptor()
	// weekplan.DefaultDrillsSkipped holds the default value on creation for the drills_skipped field.
	weekplan.DefaultDrillsSkipped = weekplanDescDrillsSkipped.Default.(int)
	// weekplanDescSkillsMastered is the schema descriptor for skills_mastered field.
	weekplanDescSkillsMastered := weekplanFields[19].Descriptor()
	// weekplan.DefaultSkillsMastered holds the default value on creation for the skills_mastered field.
	weekplan.DefaultSkillsMastered = weekplanDescSkillsMastered.Default.(int)
	// weekplanDescPassRate is the schema descriptor for pass_rate field.
	weekplanDescPassRate := weekplanFields[20].Descriptor()
	// weekplan.DefaultPassRate holds the default value on creation for the pass_rate field.
	weekplan.DefaultPassRate = weekplanDescPassRate.Default.(float64)
	// weekplanDescStatus is the schema descriptor for status field.
	weekplanDescStatus := weekplanFields[21].Descriptor()
	// weekplan.DefaultStatus holds the default value on creation for the status field.
	weekplan.DefaultStatus = weekplanDescStatus.Default.(string)
}
