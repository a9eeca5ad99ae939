package weekplan

import (
	"testing"
	"time"

	"github.com/abhisek/questline/internal/skillgraph"
)

func TestGenerateForQuest_WeekCountAndDayDistribution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	plans, err := g.GenerateForQuest(QuestContext{
		GoalID: "goal", UserID: "user", QuestID: "q",
		Skills:          questSkills(),
		PracticeDays:    12, // ceil(12/5) = 3 weeks: 5 + 5 + 2 days
		StartWeekNumber: 1,
		StartDate:       monday,
	})
	if err != nil {
		t.Fatalf("GenerateForQuest error = %v", err)
	}

	if len(plans) != 3 {
		t.Fatalf("len(plans) = %d, want 3", len(plans))
	}
	if len(plans[0].Days) != 5 || len(plans[1].Days) != 5 || len(plans[2].Days) != 2 {
		t.Errorf("day counts = %d/%d/%d, want 5/5/2", len(plans[0].Days), len(plans[1].Days), len(plans[2].Days))
	}
	if !plans[0].IsFirstWeekOfQuest || plans[1].IsFirstWeekOfQuest {
		t.Error("IsFirstWeekOfQuest flags wrong")
	}
	if !plans[2].IsLastWeekOfQuest || plans[1].IsLastWeekOfQuest {
		t.Error("IsLastWeekOfQuest flags wrong")
	}

	// DayInQuest is absolute and contiguous across weeks.
	want := 1
	for _, p := range plans {
		for _, d := range p.Days {
			if d.DayInQuest != want {
				t.Errorf("DayInQuest = %d, want %d", d.DayInQuest, want)
			}
			want++
		}
	}
}

func TestGenerateForQuest_SynthesisAlwaysInLastWeek(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	// Two skills over three weeks: even bucketing puts the synthesis skill
	// in week 2, relocation must move it to week 3.
	skills := []skillgraph.Skill{
		{ID: "f", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 1},
		{ID: "cap", QuestID: "q", SkillType: skillgraph.TypeSynthesis, Order: 1, PrerequisiteSkillIDs: []string{"f"}},
	}

	plans, err := g.GenerateForQuest(QuestContext{
		QuestID: "q", Skills: skills, PracticeDays: 15, StartWeekNumber: 1, StartDate: monday,
	})
	if err != nil {
		t.Fatalf("GenerateForQuest error = %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("len(plans) = %d, want 3", len(plans))
	}

	for w, p := range plans[:2] {
		for _, d := range p.Days {
			if d.SkillID == "cap" {
				t.Errorf("synthesis skill scheduled in week %d, want last week only", w+1)
			}
		}
	}

	found := false
	for _, d := range plans[2].Days {
		if d.SkillID == "cap" {
			found = true
		}
	}
	if !found {
		t.Error("synthesis skill missing from last week")
	}
}

func TestGenerateForQuest_ShortFinalWeekSchedulesEverySkill(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	// Six skills over six practice days: weeks hold 5 and 1 days. An even
	// 3/3 split overflows the one-day final week, so week 1 must absorb
	// the surplus and the synthesis skill takes the final week's only day.
	skills := []skillgraph.Skill{
		{ID: "f1", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 1},
		{ID: "f2", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 2},
		{ID: "f3", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 3},
		{ID: "b1", QuestID: "q", SkillType: skillgraph.TypeBuilding, Order: 1, PrerequisiteSkillIDs: []string{"f1"}},
		{ID: "c1", QuestID: "q", SkillType: skillgraph.TypeCompound, Order: 1, PrerequisiteSkillIDs: []string{"b1", "f2"}},
		{ID: "cap", QuestID: "q", SkillType: skillgraph.TypeSynthesis, Order: 1, PrerequisiteSkillIDs: []string{"c1"}},
	}

	plans, err := g.GenerateForQuest(QuestContext{
		QuestID: "q", Skills: skills, PracticeDays: 6, StartWeekNumber: 1, StartDate: monday,
	})
	if err != nil {
		t.Fatalf("GenerateForQuest error = %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("len(plans) = %d, want 2", len(plans))
	}

	scheduled := make(map[string]int)
	for _, p := range plans {
		for _, d := range p.Days {
			if d.SkillID != "" {
				scheduled[d.SkillID]++
			}
		}
	}
	for _, s := range skills {
		if scheduled[s.ID] != 1 {
			t.Errorf("skill %q scheduled %d times, want exactly once", s.ID, scheduled[s.ID])
		}
	}

	if len(plans[1].Days) != 1 {
		t.Fatalf("final week days = %d, want 1", len(plans[1].Days))
	}
	if plans[1].Days[0].SkillID != "cap" {
		t.Errorf("final week day = %q, want the synthesis skill", plans[1].Days[0].SkillID)
	}
}

func TestGenerateForQuest_MoreSkillsThanPracticeDays(t *testing.T) {
	g := newTestGenerator(DefaultConfig())
	if _, err := g.GenerateForQuest(QuestContext{
		QuestID: "q", Skills: questSkills(), PracticeDays: 3, StartWeekNumber: 1, StartDate: monday,
	}); err == nil {
		t.Error("GenerateForQuest(5 skills, 3 days) error = nil, want error")
	}
}

func TestGenerateForQuest_WeeksStartOnMonday(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	// Start mid-week: Wednesday.
	wednesday := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	plans, err := g.GenerateForQuest(QuestContext{
		QuestID: "q", Skills: questSkills(), PracticeDays: 10, StartWeekNumber: 1, StartDate: wednesday,
	})
	if err != nil {
		t.Fatalf("GenerateForQuest error = %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("len(plans) = %d, want 2", len(plans))
	}

	if !plans[0].StartDate.Equal(wednesday) {
		t.Errorf("week 1 start = %v, want quest start %v", plans[0].StartDate, wednesday)
	}
	if plans[1].StartDate.Weekday() != time.Monday {
		t.Errorf("week 2 starts on %s, want Monday", plans[1].StartDate.Weekday())
	}
	if !plans[1].StartDate.Equal(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("week 2 start = %v, want following Monday", plans[1].StartDate)
	}
}

func TestGenerateForQuest_ZeroPracticeDays(t *testing.T) {
	g := newTestGenerator(DefaultConfig())
	if _, err := g.GenerateForQuest(QuestContext{QuestID: "q", PracticeDays: 0}); err == nil {
		t.Error("GenerateForQuest(0 days) error = nil, want error")
	}
}

func TestGenerateForQuest_GlobalWeekNumbers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	plans, err := g.GenerateForQuest(QuestContext{
		QuestID: "q2", Skills: questSkills(), PracticeDays: 10, StartWeekNumber: 5, StartDate: monday,
	})
	if err != nil {
		t.Fatalf("GenerateForQuest error = %v", err)
	}
	if plans[0].WeekNumber != 5 || plans[1].WeekNumber != 6 {
		t.Errorf("global weeks = %d, %d, want 5, 6", plans[0].WeekNumber, plans[1].WeekNumber)
	}
	if plans[0].WeekInQuest != 1 || plans[1].WeekInQuest != 2 {
		t.Errorf("quest weeks = %d, %d, want 1, 2", plans[0].WeekInQuest, plans[1].WeekInQuest)
	}
}
