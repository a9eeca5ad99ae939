package skillgraph

import "testing"

func testSkills() []Skill {
	return []Skill{
		{ID: "s-count", QuestID: "q1", Title: "Count beats", SkillType: TypeFoundation, Order: 1},
		{ID: "s-tap", QuestID: "q1", Title: "Tap quarter notes", SkillType: TypeFoundation, Order: 2},
		{ID: "s-bar", QuestID: "q1", Title: "Play one bar", SkillType: TypeBuilding, Order: 1, PrerequisiteSkillIDs: []string{"s-count", "s-tap"}},
		{ID: "s-phrase", QuestID: "q1", Title: "Play a phrase", SkillType: TypeCompound, Order: 1, IsCompound: true, PrerequisiteSkillIDs: []string{"s-bar"}, ComponentSkillIDs: []string{"s-count", "s-bar"}},
		{ID: "s-song", QuestID: "q1", Title: "Perform the song", SkillType: TypeSynthesis, Order: 1, PrerequisiteSkillIDs: []string{"s-phrase"}},
	}
}

func TestNew_BuildsIndices(t *testing.T) {
	g, err := New(testSkills())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := len(g.All()); got != 5 {
		t.Errorf("len(All()) = %d, want 5", got)
	}
	if got := len(g.Roots()); got != 2 {
		t.Errorf("len(Roots()) = %d, want 2", got)
	}

	s, err := g.Get("s-bar")
	if err != nil {
		t.Fatalf("Get(s-bar) error = %v", err)
	}
	if s.Title != "Play one bar" {
		t.Errorf("Title = %q, want %q", s.Title, "Play one bar")
	}

	if _, err := g.Get("nope"); err == nil {
		t.Error("Get(nope) error = nil, want not-found")
	}
}

func TestGraph_TopologicalOrder(t *testing.T) {
	g, err := New(testSkills())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pos := make(map[string]int)
	for i, s := range g.TopologicalOrder() {
		pos[s.ID] = i
	}
	if len(pos) != 5 {
		t.Fatalf("topo order has %d skills, want 5", len(pos))
	}

	for _, s := range testSkills() {
		for _, prereq := range s.PrerequisiteSkillIDs {
			if pos[prereq] >= pos[s.ID] {
				t.Errorf("prerequisite %q at %d not before %q at %d", prereq, pos[prereq], s.ID, pos[s.ID])
			}
		}
	}
}

func TestGraph_Dependents(t *testing.T) {
	g, err := New(testSkills())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	deps := g.Dependents("s-count")
	if len(deps) != 1 || deps[0].ID != "s-bar" {
		t.Errorf("Dependents(s-count) = %v, want [s-bar]", deps)
	}
}

func TestGraph_ByQuest_OrderedByTypeWeight(t *testing.T) {
	g, err := New(testSkills())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	qs := g.ByQuest("q1")
	if len(qs) != 5 {
		t.Fatalf("len(ByQuest) = %d, want 5", len(qs))
	}
	lastWeight := -1
	for _, s := range qs {
		if w := s.SkillType.Weight(); w < lastWeight {
			t.Errorf("skill %q out of weight order", s.ID)
		} else {
			lastWeight = s.SkillType.Weight()
		}
	}
	if qs[len(qs)-1].SkillType != TypeSynthesis {
		t.Errorf("last skill type = %s, want synthesis", qs[len(qs)-1].SkillType)
	}
}

func TestGraph_CrossQuestPrerequisitesIgnoredForTopo(t *testing.T) {
	skills := []Skill{
		{ID: "a", QuestID: "q2", SkillType: TypeFoundation, PrerequisiteSkillIDs: []string{"from-q1"}},
		{ID: "b", QuestID: "q2", SkillType: TypeBuilding, PrerequisiteSkillIDs: []string{"a"}},
		{ID: "root", QuestID: "q2", SkillType: TypeFoundation},
	}
	g, err := New(skills)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := len(g.TopologicalOrder()); got != 3 {
		t.Errorf("topo order has %d skills, want 3", got)
	}
}

func TestSkillType_Weight(t *testing.T) {
	tests := []struct {
		typ  SkillType
		want int
	}{
		{TypeFoundation, 0},
		{TypeBuilding, 1},
		{TypeCompound, 2},
		{TypeSynthesis, 3},
		{SkillType("bogus"), 4},
	}
	for _, tt := range tests {
		if got := tt.typ.Weight(); got != tt.want {
			t.Errorf("Weight(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestSkill_CountsTowardMastery(t *testing.T) {
	s := Skill{SkillType: TypeSynthesis}
	if s.CountsTowardMastery() {
		t.Error("synthesis skill counts toward mastery, want excluded")
	}
	s.SkillType = TypeFoundation
	if !s.CountsTowardMastery() {
		t.Error("foundation skill excluded from mastery, want counted")
	}
}
