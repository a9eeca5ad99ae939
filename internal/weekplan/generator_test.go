package weekplan

import (
	"testing"
	"time"

	"github.com/abhisek/questline/internal/skillgraph"
)

func fixedNow() time.Time {
	return time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)
}

// monday is a known Monday used as a schedule anchor.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestGenerate_BasicWeek(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	plan, err := g.Generate(Context{
		GoalID:     "goal",
		UserID:     "user",
		QuestID:    "q",
		WeekNumber: 1, WeekInQuest: 1,
		IsFirstWeekOfQuest: true,
		WeekSkills:         questSkills(),
		StartDate:          monday,
	})
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}

	if plan.ID == "" {
		t.Error("plan ID empty")
	}
	if plan.Status != StatusPending {
		t.Errorf("Status = %s, want pending", plan.Status)
	}
	if len(plan.Days) != 5 {
		t.Fatalf("len(Days) = %d, want 5", len(plan.Days))
	}
	if len(plan.ScheduledSkillIDs) != 5 {
		t.Errorf("ScheduledSkillIDs = %v, want all 5", plan.ScheduledSkillIDs)
	}
	if !plan.CreatedAt.Equal(fixedNow()) {
		t.Errorf("CreatedAt = %v, want injected clock time", plan.CreatedAt)
	}
	for i, d := range plan.Days {
		if d.DayNumber != i+1 {
			t.Errorf("day %d DayNumber = %d", i, d.DayNumber)
		}
		if isWeekend(d.ScheduledDate) {
			t.Errorf("day %d scheduled on weekend %v", i+1, d.ScheduledDate)
		}
	}
	// Monday through Friday, consecutive.
	if !plan.Days[4].ScheduledDate.Equal(monday.AddDate(0, 0, 4)) {
		t.Errorf("day 5 = %v, want Friday", plan.Days[4].ScheduledDate)
	}
}

func TestGenerate_CarryForwardConsumesSlotsFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	carry := []skillgraph.Skill{
		{ID: "old", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 9},
	}
	week := []skillgraph.Skill{
		{ID: "new1", QuestID: "q", SkillType: skillgraph.TypeBuilding, Order: 1},
		{ID: "new2", QuestID: "q", SkillType: skillgraph.TypeBuilding, Order: 2},
	}

	plan, err := g.Generate(Context{
		QuestID: "q", WeekNumber: 2, WeekInQuest: 2,
		WeekSkills: week, CarryForwardSkills: carry,
		StartDate: monday, DaysAvailable: 2,
	})
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}

	if plan.Days[0].SkillID != "old" {
		t.Errorf("day 1 = %q, want carried-forward skill first", plan.Days[0].SkillID)
	}
	if len(plan.CarryForwardSkillIDs) != 1 || plan.CarryForwardSkillIDs[0] != "old" {
		t.Errorf("CarryForwardSkillIDs = %v, want [old]", plan.CarryForwardSkillIDs)
	}
}

func TestGenerate_CarriedSkillOutranksHeavierNewMaterial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	// Type-weight ordering over the combined set would put both new
	// foundations ahead of the carried compound and squeeze it out of a
	// two-day week. Carried skills keep the leading slots regardless.
	carry := []skillgraph.Skill{
		{ID: "carried", QuestID: "q", SkillType: skillgraph.TypeCompound, Order: 3},
	}
	week := []skillgraph.Skill{
		{ID: "new1", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 1},
		{ID: "new2", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 2},
	}

	plan, err := g.Generate(Context{
		QuestID: "q", WeekNumber: 3, WeekInQuest: 3,
		WeekSkills: week, CarryForwardSkills: carry,
		StartDate: monday, DaysAvailable: 2,
	})
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}

	if plan.Days[0].SkillID != "carried" {
		t.Errorf("day 1 = %q, want the carried compound ahead of new material", plan.Days[0].SkillID)
	}
	if plan.Days[1].SkillID != "new1" {
		t.Errorf("day 2 = %q, want the first new skill in the remaining slot", plan.Days[1].SkillID)
	}
}

func TestGenerate_ReviewPrefersCompoundAndBuildingDays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	prev := []skillgraph.Skill{
		{ID: "p1", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
	}
	week := []skillgraph.Skill{
		{ID: "f", QuestID: "q2", SkillType: skillgraph.TypeFoundation, Order: 1},
		{ID: "b", QuestID: "q2", SkillType: skillgraph.TypeBuilding, Order: 1, PrerequisiteSkillIDs: []string{"p1"}},
	}

	plan, err := g.Generate(Context{
		QuestID: "q2", WeekNumber: 1, WeekInQuest: 1,
		WeekSkills: week, PreviousQuestSkills: prev,
		StartDate: monday, DaysAvailable: 3,
	})
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}

	// Day 1 is the foundation skill, day 2 the building skill. The single
	// review attaches to the building day, not day 1.
	if plan.Days[0].ReviewSkillID != "" {
		t.Errorf("foundation day got review %q, want none", plan.Days[0].ReviewSkillID)
	}
	if plan.Days[1].ReviewSkillID != "p1" {
		t.Errorf("building day review = %q, want p1", plan.Days[1].ReviewSkillID)
	}
	if !plan.Days[1].IsFromPreviousQuest {
		t.Error("IsFromPreviousQuest = false for cross-quest review")
	}
	if len(plan.ReviewsFromQuestIDs) != 1 || plan.ReviewsFromQuestIDs[0] != "q1" {
		t.Errorf("ReviewsFromQuestIDs = %v, want [q1]", plan.ReviewsFromQuestIDs)
	}
}

func TestGenerate_ThemeMostFrequentTopic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	week := []skillgraph.Skill{
		{ID: "a", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 1, Topics: []string{"rhythm"}},
		{ID: "b", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 2, Topics: []string{"rhythm", "timing"}},
		{ID: "c", QuestID: "q", SkillType: skillgraph.TypeBuilding, Order: 1, Topics: []string{"timing"}, Title: "Keep time"},
	}

	plan, err := g.Generate(Context{QuestID: "q", WeekNumber: 1, WeekInQuest: 1, WeekSkills: week, StartDate: monday})
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if plan.Theme != "rhythm" {
		t.Errorf("Theme = %q, want rhythm (first-seen tie break)", plan.Theme)
	}
	if plan.WeeklyCompetence == "" {
		t.Error("WeeklyCompetence empty")
	}
}

func TestGenerate_LastWeekThemeIsSynthesisTitle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	week := []skillgraph.Skill{
		{ID: "cap", QuestID: "q", SkillType: skillgraph.TypeSynthesis, Title: "Perform the full song", Topics: []string{"performance"}},
	}

	plan, err := g.Generate(Context{QuestID: "q", WeekNumber: 4, WeekInQuest: 4, IsLastWeekOfQuest: true, WeekSkills: week, StartDate: monday})
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if plan.Theme != "Perform the full song" {
		t.Errorf("Theme = %q, want synthesis title", plan.Theme)
	}
}

func TestWeekPlan_RecordDrillResult(t *testing.T) {
	var w WeekPlan
	w.RecordDrillResult(true, false, false)
	w.RecordDrillResult(false, false, false)
	w.RecordDrillResult(true, false, true)
	w.RecordDrillResult(false, true, false)

	if w.DrillsCompleted != 4 || w.DrillsPassed != 2 || w.DrillsFailed != 1 || w.DrillsSkipped != 1 {
		t.Errorf("aggregates = %+v, want 4/2/1/1", w)
	}
	if w.SkillsMastered != 1 {
		t.Errorf("SkillsMastered = %d, want 1", w.SkillsMastered)
	}
	// Skips are excluded from the pass rate denominator.
	want := 2.0 / 3.0
	if w.PassRate < want-1e-9 || w.PassRate > want+1e-9 {
		t.Errorf("PassRate = %f, want %f", w.PassRate, want)
	}
}
