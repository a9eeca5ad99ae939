package skilldoc

import (
	"errors"
	"testing"

	"github.com/abhisek/questline/internal/skillgraph"
)

const validDoc = `{
  "goal_id": "goal-guitar",
  "user_id": "user-1",
  "quests": [
    {
      "quest_id": "q1",
      "title": "First chords",
      "practice_days": 10,
      "skills": [
        {
          "id": "hold",
          "title": "Hold the guitar",
          "skill_type": "foundation",
          "topics": ["posture"],
          "action": "Sit with the guitar in playing position",
          "success_signal": "Stable for 2 minutes",
          "estimated_minutes": 10,
          "order": 1
        },
        {
          "id": "chord-g",
          "title": "Play a G chord",
          "skill_type": "building",
          "prerequisite_skill_ids": ["hold"],
          "estimated_minutes": 15,
          "order": 1
        },
        {
          "id": "song",
          "title": "Play a one-chord song",
          "skill_type": "synthesis",
          "prerequisite_skill_ids": ["chord-g"],
          "component_skill_ids": ["hold", "chord-g"],
          "estimated_minutes": 20,
          "order": 1
        }
      ]
    }
  ]
}`

func TestParse_ValidDocument(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if doc.GoalID != "goal-guitar" || len(doc.Quests) != 1 {
		t.Errorf("doc = %+v", doc)
	}
	if doc.Quests[0].PracticeDays != 10 {
		t.Errorf("PracticeDays = %d, want 10", doc.Quests[0].PracticeDays)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"goal_id": `))
	var invalid *ErrInvalidDocument
	if !errors.As(err, &invalid) {
		t.Errorf("Parse error = %v, want ErrInvalidDocument", err)
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing goal_id", `{"user_id": "u", "quests": []}`},
		{"unknown field", `{"goal_id": "g", "user_id": "u", "quests": [], "extra": 1}`},
		{"bad skill type", `{"goal_id": "g", "user_id": "u", "quests": [{"quest_id": "q", "practice_days": 5, "skills": [{"id": "s", "title": "t", "skill_type": "epic"}]}]}`},
		{"zero practice days", `{"goal_id": "g", "user_id": "u", "quests": [{"quest_id": "q", "practice_days": 0, "skills": []}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			var invalid *ErrInvalidDocument
			if !errors.As(err, &invalid) {
				t.Errorf("Parse error = %v, want ErrInvalidDocument", err)
			}
		})
	}
}

func TestSkills_Normalization(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	skills, err := doc.Skills()
	if err != nil {
		t.Fatalf("Skills error = %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("len(skills) = %d, want 3", len(skills))
	}

	byID := make(map[string]skillgraph.Skill)
	for _, s := range skills {
		byID[s.ID] = s
	}

	if byID["hold"].Status != skillgraph.StatusAvailable {
		t.Errorf("root skill status = %s, want available", byID["hold"].Status)
	}
	if byID["chord-g"].Status != skillgraph.StatusLocked {
		t.Errorf("dependent skill status = %s, want locked", byID["chord-g"].Status)
	}
	if !byID["song"].IsCompound {
		t.Error("skill with components not marked compound")
	}
	if byID["song"].GoalID != "goal-guitar" || byID["song"].QuestID != "q1" {
		t.Error("goal/quest identity not propagated to skills")
	}
	for _, s := range skills {
		if s.Mastery != skillgraph.MasteryNotStarted {
			t.Errorf("skill %q mastery = %s, want not_started", s.ID, s.Mastery)
		}
	}
}

func TestSkills_StructuralDefectsSurface(t *testing.T) {
	doc := &Document{
		GoalID: "g", UserID: "u",
		Quests: []Quest{{QuestID: "q", PracticeDays: 5, Skills: []SkillSpec{
			{ID: "root", Title: "r", SkillType: "foundation"},
			{ID: "a", Title: "a", SkillType: "building", PrerequisiteSkillIDs: []string{"b"}},
			{ID: "b", Title: "b", SkillType: "building", PrerequisiteSkillIDs: []string{"a"}},
		}}},
	}
	_, err := doc.Skills()
	var invalid *ErrInvalidDocument
	if !errors.As(err, &invalid) {
		t.Errorf("Skills error = %v, want ErrInvalidDocument for cycle", err)
	}
}
