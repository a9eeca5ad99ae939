package weekplan

import (
	"testing"

	"github.com/abhisek/questline/internal/skillgraph"
)

func questSkills() []skillgraph.Skill {
	return []skillgraph.Skill{
		{ID: "cap", QuestID: "q", SkillType: skillgraph.TypeSynthesis, Order: 1, PrerequisiteSkillIDs: []string{"combine"}},
		{ID: "combine", QuestID: "q", SkillType: skillgraph.TypeCompound, Order: 1, IsCompound: true,
			PrerequisiteSkillIDs: []string{"chord", "strum"}, ComponentSkillIDs: []string{"chord", "strum"}},
		{ID: "strum", QuestID: "q", SkillType: skillgraph.TypeBuilding, Order: 2, PrerequisiteSkillIDs: []string{"hold"}},
		{ID: "chord", QuestID: "q", SkillType: skillgraph.TypeBuilding, Order: 1, PrerequisiteSkillIDs: []string{"hold"}},
		{ID: "hold", QuestID: "q", SkillType: skillgraph.TypeFoundation, Order: 1},
	}
}

func TestAssignSkillsToDays_PrerequisitesFirst(t *testing.T) {
	days, err := AssignSkillsToDays(questSkills(), 5)
	if err != nil {
		t.Fatalf("AssignSkillsToDays error = %v", err)
	}

	pos := make(map[string]int)
	for i, d := range days {
		if d == nil {
			t.Fatalf("day %d is catch-up, want all 5 skills scheduled", i+1)
		}
		if _, dup := pos[d.ID]; dup {
			t.Fatalf("skill %q scheduled twice", d.ID)
		}
		pos[d.ID] = i
	}

	for _, s := range questSkills() {
		for _, prereq := range s.PrerequisiteSkillIDs {
			if pos[prereq] >= pos[s.ID] {
				t.Errorf("%q (day %d) scheduled before prerequisite %q (day %d)", s.ID, pos[s.ID], prereq, pos[prereq])
			}
		}
	}

	if days[0].ID != "hold" {
		t.Errorf("day 1 = %q, want foundation skill hold", days[0].ID)
	}
	if days[4].ID != "cap" {
		t.Errorf("day 5 = %q, want synthesis skill cap", days[4].ID)
	}
}

func TestAssignSkillsToDays_StableOrderTieBreak(t *testing.T) {
	days, err := AssignSkillsToDays(questSkills(), 5)
	if err != nil {
		t.Fatalf("AssignSkillsToDays error = %v", err)
	}
	// chord has Order 1, strum Order 2: chord first within building type.
	if days[1].ID != "chord" || days[2].ID != "strum" {
		t.Errorf("days 2-3 = %q, %q, want chord, strum", days[1].ID, days[2].ID)
	}
}

func TestAssignSkillsToDays_CatchUpFill(t *testing.T) {
	skills := questSkills()[4:] // just "hold"
	days, err := AssignSkillsToDays(skills, 3)
	if err != nil {
		t.Fatalf("AssignSkillsToDays error = %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("len(days) = %d, want 3", len(days))
	}
	if days[0] == nil || days[0].ID != "hold" {
		t.Errorf("day 1 = %v, want hold", days[0])
	}
	if days[1] != nil || days[2] != nil {
		t.Error("days 2-3 not catch-up, want nil")
	}
}

func TestAssignSkillsToDays_MoreSkillsThanDays(t *testing.T) {
	days, err := AssignSkillsToDays(questSkills(), 2)
	if err != nil {
		t.Fatalf("AssignSkillsToDays error = %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("len(days) = %d, want 2", len(days))
	}
	if days[0].ID != "hold" || days[1].ID != "chord" {
		t.Errorf("days = %q, %q, want hold, chord", days[0].ID, days[1].ID)
	}
}

func TestAssignSkillsToDays_NegativeDays(t *testing.T) {
	if _, err := AssignSkillsToDays(nil, -1); err == nil {
		t.Error("AssignSkillsToDays(-1) error = nil, want error")
	}
}

func TestOrderForScheduling_CycleDoesNotRecurseForever(t *testing.T) {
	skills := []skillgraph.Skill{
		{ID: "a", SkillType: skillgraph.TypeBuilding, PrerequisiteSkillIDs: []string{"b"}},
		{ID: "b", SkillType: skillgraph.TypeBuilding, PrerequisiteSkillIDs: []string{"a"}},
	}
	ordered := orderForScheduling(skills)
	if len(ordered) != 2 {
		t.Errorf("len(ordered) = %d, want 2 (cycle broken, both emitted once)", len(ordered))
	}
}
