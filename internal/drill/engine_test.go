package drill

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/weekplan"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)
}

func newTestEngine(cfg Config) *Engine {
	e := NewEngine(cfg)
	e.Now = fixedNow
	return e
}

func mainSkill() skillgraph.Skill {
	return skillgraph.Skill{
		ID: "s-main", QuestID: "q2",
		Title: "Play the chorus", Action: "Play the chorus four times through",
		SuccessSignal: "No stops, correct chords", EstimatedMinutes: 25,
		SkillType: skillgraph.TypeBuilding,
	}
}

func reviewSkill() skillgraph.Skill {
	return skillgraph.Skill{
		ID: "s-review", QuestID: "q1",
		Title: "Switch G to C", Action: "Switch between G and C chords",
		SuccessSignal: "Clean switch in under 2 seconds",
		Mastery:       skillgraph.MasteryMastered,
	}
}

func dayWithReview() weekplan.DayPlan {
	return weekplan.DayPlan{
		DayNumber: 2, SkillID: "s-main", SkillType: skillgraph.TypeBuilding,
		ReviewSkillID: "s-review", ReviewQuestID: "q1", IsFromPreviousQuest: true,
	}
}

func TestGenerate_TimeBudget(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	d := e.Generate(Context{
		Day:                 dayWithReview(),
		Skill:               mainSkill(),
		PreviousQuestSkills: []skillgraph.Skill{reviewSkill()},
	})

	if d.Warmup == nil {
		t.Fatal("Warmup = nil with resolvable review skill, want section")
	}
	if d.Warmup.EstimatedMinutes != 5 {
		t.Errorf("warmup minutes = %d, want 5", d.Warmup.EstimatedMinutes)
	}
	if d.Main.EstimatedMinutes != 20 {
		t.Errorf("main minutes = %d, want 20 (30 - 5 warmup - 5 stretch)", d.Main.EstimatedMinutes)
	}
	if d.Stretch == nil {
		t.Fatal("Stretch = nil, want section (budget exactly fits)")
	}
	if d.TotalMinutes != 30 {
		t.Errorf("TotalMinutes = %d, want 30", d.TotalMinutes)
	}
	if len(d.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none at exact budget", d.Warnings)
	}
	if d.AttemptNumber != 1 || d.RetryCount != 0 {
		t.Errorf("attempt/retry = %d/%d, want 1/0", d.AttemptNumber, d.RetryCount)
	}
}

func TestGenerate_NoReviewNoWarmup(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	day := dayWithReview()
	day.ReviewSkillID = ""
	day.ReviewQuestID = ""
	day.IsFromPreviousQuest = false

	d := e.Generate(Context{Day: day, Skill: mainSkill()})
	if d.Warmup != nil {
		t.Error("Warmup present without review skill, want nil")
	}
	// Full budget minus stretch reservation goes to main.
	if d.Main.EstimatedMinutes != 25 {
		t.Errorf("main minutes = %d, want 25", d.Main.EstimatedMinutes)
	}
}

func TestGenerate_UnresolvableReviewDropsWarmup(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	// Review ID present but not among previous-quest skills: no warmup, no
	// error.
	d := e.Generate(Context{Day: dayWithReview(), Skill: mainSkill()})
	if d.Warmup != nil {
		t.Error("Warmup present for unresolvable review, want nil")
	}
}

func TestGenerate_MinMainFloorAndBudgetWarning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DailyMinutes = 12
	e := newTestEngine(cfg)

	d := e.Generate(Context{
		Day:                 dayWithReview(),
		Skill:               mainSkill(),
		PreviousQuestSkills: []skillgraph.Skill{reviewSkill()},
	})

	if d.Main.EstimatedMinutes != 10 {
		t.Errorf("main minutes = %d, want MinMainMinutes floor 10", d.Main.EstimatedMinutes)
	}
	if d.Stretch != nil {
		t.Error("Stretch present with exhausted budget, want nil")
	}
	if d.TotalMinutes != 15 {
		t.Errorf("TotalMinutes = %d, want 15", d.TotalMinutes)
	}
	if len(d.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one over-budget warning", d.Warnings)
	}
	if !strings.Contains(d.Warnings[0], "budget") {
		t.Errorf("warning %q does not mention the budget", d.Warnings[0])
	}
}

func TestGenerate_StretchDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableStretch = false
	e := newTestEngine(cfg)

	d := e.Generate(Context{Day: dayWithReview(), Skill: mainSkill(), PreviousQuestSkills: []skillgraph.Skill{reviewSkill()}})
	if d.Stretch != nil {
		t.Error("Stretch present with stretch disabled, want nil")
	}
	if d.Main.EstimatedMinutes != 25 {
		t.Errorf("main minutes = %d, want 25 (no stretch reservation)", d.Main.EstimatedMinutes)
	}
}

func TestGenerate_CompoundAnnotation(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	skill := mainSkill()
	skill.IsCompound = true
	skill.SkillType = skillgraph.TypeCompound
	skill.ComponentSkillIDs = []string{"c1", "c2"}

	d := e.Generate(Context{
		Day:   weekplan.DayPlan{DayNumber: 3, SkillID: skill.ID, SkillType: skill.SkillType},
		Skill: skill,
		ComponentSkills: []skillgraph.Skill{
			{ID: "c1", QuestID: "q2", Title: "Strum pattern"},
			{ID: "c2", QuestID: "q2", Title: "Chord switches"},
		},
	})

	if !strings.Contains(d.Main.Action, "Strum pattern") || !strings.Contains(d.Main.Action, "Chord switches") {
		t.Errorf("compound action %q does not name components", d.Main.Action)
	}
}

func TestGenerate_StretchVariationsByType(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	tests := []struct {
		typ  skillgraph.SkillType
		want string
	}{
		{skillgraph.TypeFoundation, "context"},
		{skillgraph.TypeBuilding, "Combine"},
		{skillgraph.TypeCompound, "Teach"},
		{skillgraph.TypeSynthesis, "Speed challenge"},
	}
	for _, tt := range tests {
		skill := mainSkill()
		skill.SkillType = tt.typ
		skill.EstimatedMinutes = 10 // leave room for stretch
		d := e.Generate(Context{Day: weekplan.DayPlan{DayNumber: 1, SkillID: skill.ID}, Skill: skill})
		if d.Stretch == nil {
			t.Fatalf("%s: no stretch section", tt.typ)
		}
		if !strings.Contains(d.Stretch.Action, tt.want) {
			t.Errorf("%s stretch = %q, want it to contain %q", tt.typ, d.Stretch.Action, tt.want)
		}
	}
}

func TestGenerate_ExplicitTransferScenarioWins(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	skill := mainSkill()
	skill.EstimatedMinutes = 10
	skill.TransferScenario = "Play the chorus along with the original recording."

	d := e.Generate(Context{Day: weekplan.DayPlan{DayNumber: 1, SkillID: skill.ID}, Skill: skill})
	if d.Stretch == nil || d.Stretch.Action != skill.TransferScenario {
		t.Errorf("stretch = %v, want explicit transfer scenario", d.Stretch)
	}
}

func TestGenerate_BuildsOnQuestIDs(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	skill := mainSkill()
	skill.PrerequisiteQuestIDs = []string{"q0", "q2"} // own quest excluded

	d := e.Generate(Context{
		Day:                 dayWithReview(),
		Skill:               skill,
		ComponentSkills:     []skillgraph.Skill{{ID: "c", QuestID: "q0"}}, // dedupe
		PreviousQuestSkills: []skillgraph.Skill{reviewSkill()},
	})

	if len(d.BuildsOnQuestIDs) != 2 || d.BuildsOnQuestIDs[0] != "q0" || d.BuildsOnQuestIDs[1] != "q1" {
		t.Errorf("BuildsOnQuestIDs = %v, want [q0 q1]", d.BuildsOnQuestIDs)
	}
}

func TestAdaptForRetry_Attempt3(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	skill := mainSkill() // 25 estimated minutes
	original := e.Generate(Context{
		Day:                 dayWithReview(),
		Skill:               skill,
		PreviousQuestSkills: []skillgraph.Skill{reviewSkill()},
	})

	second, err := e.AdaptForRetry(original, skill, "Kept stopping between chord changes")
	if err != nil {
		t.Fatalf("first retry error = %v", err)
	}
	if second.AttemptNumber != 2 || second.RetryCount != 1 {
		t.Errorf("attempt/retry = %d/%d, want 2/1", second.AttemptNumber, second.RetryCount)
	}
	if second.Main.EstimatedMinutes != 31 { // round(25 * 1.25)
		t.Errorf("attempt 2 minutes = %d, want 31", second.Main.EstimatedMinutes)
	}
	if !strings.Contains(second.RecoveryGuidance, "smaller steps") {
		t.Errorf("attempt 2 guidance = %q, want smaller-steps hint", second.RecoveryGuidance)
	}

	third, err := e.AdaptForRetry(second, skill, "Still stopping")
	if err != nil {
		t.Fatalf("second retry error = %v", err)
	}
	if third.Warmup != nil || third.Stretch != nil {
		t.Error("retry drill has warmup or stretch, want main only")
	}
	if third.Main.EstimatedMinutes != 38 { // round(25 * 1.5)
		t.Errorf("attempt 3 minutes = %d, want 38", third.Main.EstimatedMinutes)
	}
	if !strings.Contains(third.RecoveryGuidance, "fundamentals") {
		t.Errorf("attempt 3 guidance = %q, want fundamentals hint", third.RecoveryGuidance)
	}
	if third.PreviousDrillID != second.ID {
		t.Error("retry does not reference the failed drill")
	}
	if third.PreviousFailureReason != "Still stopping" {
		t.Errorf("PreviousFailureReason = %q", third.PreviousFailureReason)
	}
	if !strings.Contains(third.Main.Action, "Still stopping") {
		t.Errorf("retry action %q does not carry the failure callout", third.Main.Action)
	}
}

func TestAdaptForRetry_BeyondCap(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	skill := mainSkill()

	failed := &DailyDrill{ID: "d", SkillID: skill.ID, AttemptNumber: 4, RetryCount: 4}
	_, err := e.AdaptForRetry(failed, skill, "again")

	var maxErr *ErrMaxRetriesExceeded
	if !errors.As(err, &maxErr) {
		t.Fatalf("error = %v, want ErrMaxRetriesExceeded", err)
	}
	if maxErr.Max != 3 {
		t.Errorf("Max = %d, want 3", maxErr.Max)
	}
}

func TestAdaptForRetry_LastAllowedRetry(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	skill := mainSkill()

	failed := &DailyDrill{ID: "d", SkillID: skill.ID, AttemptNumber: 3, RetryCount: 2}
	d, err := e.AdaptForRetry(failed, skill, "close now")
	if err != nil {
		t.Fatalf("retry at cap error = %v, want success", err)
	}
	if d.RetryCount != 3 {
		t.Errorf("RetryCount = %d, want 3", d.RetryCount)
	}
	// Attempts beyond the multiplier table stay at the final multiplier.
	if d.Main.EstimatedMinutes != 38 {
		t.Errorf("minutes = %d, want 38 (1.5x cap)", d.Main.EstimatedMinutes)
	}
}
