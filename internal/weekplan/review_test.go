package weekplan

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/questline/internal/skillgraph"
)

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func newTestGenerator(cfg Config) *Generator {
	g := NewGenerator(cfg, seededRand())
	g.Now = fixedNow
	return g
}

func TestIdentifyReviewSkills_DirectDependenciesAlwaysIncluded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0 // isolate the dependency-driven picks
	g := newTestGenerator(cfg)

	prev := []skillgraph.Skill{
		{ID: "p1", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
		{ID: "p2", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
		{ID: "p3", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
	}
	week := []skillgraph.Skill{
		{ID: "w1", QuestID: "q2", PrerequisiteSkillIDs: []string{"p1"}},
		{ID: "w2", QuestID: "q2", IsCompound: true, ComponentSkillIDs: []string{"p2", "w1"}},
	}

	picks := g.IdentifyReviewSkills(week, prev)
	if len(picks) != 2 {
		t.Fatalf("picks = %v, want [p1 p2]", picks)
	}
	if picks[0].ID != "p1" || picks[1].ID != "p2" {
		t.Errorf("picks = %q, %q, want p1, p2 in discovery order", picks[0].ID, picks[1].ID)
	}
}

func TestIdentifyReviewSkills_SamplingRespectsProbability(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxReviewSkillsPerWeek = 10

	prev := []skillgraph.Skill{
		{ID: "m1", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
		{ID: "m2", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
		{ID: "n1", QuestID: "q1", Mastery: skillgraph.MasteryPracticing},
	}

	cfg.ReviewSampleProbability = 1.0
	g := newTestGenerator(cfg)
	picks := g.IdentifyReviewSkills(nil, prev)
	if len(picks) != 2 {
		t.Errorf("picks at p=1.0 = %v, want both mastered skills, never n1", picks)
	}
	for _, p := range picks {
		if p.Mastery != skillgraph.MasteryMastered {
			t.Errorf("sampled unmastered skill %q", p.ID)
		}
	}

	cfg.ReviewSampleProbability = 0.0
	g = newTestGenerator(cfg)
	if picks := g.IdentifyReviewSkills(nil, prev); len(picks) != 0 {
		t.Errorf("picks at p=0.0 = %v, want none", picks)
	}
}

func TestIdentifyReviewSkills_CapAndDedupe(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	g := newTestGenerator(cfg)

	prev := []skillgraph.Skill{
		{ID: "p1", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
		{ID: "p2", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
		{ID: "p3", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
		{ID: "p4", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
	}
	week := []skillgraph.Skill{
		// p1 reachable as both prerequisite and component: one pick only.
		{ID: "w1", QuestID: "q2", PrerequisiteSkillIDs: []string{"p1", "p2"}, ComponentSkillIDs: []string{"p1", "p3"}},
		{ID: "w2", QuestID: "q2", PrerequisiteSkillIDs: []string{"p4"}},
	}

	picks := g.IdentifyReviewSkills(week, prev)
	if len(picks) != 3 {
		t.Fatalf("len(picks) = %d, want capped at 3", len(picks))
	}
	seen := make(map[string]bool)
	for _, p := range picks {
		if seen[p.ID] {
			t.Errorf("duplicate pick %q", p.ID)
		}
		seen[p.ID] = true
	}
	// Discovery order truncation: p1, p2, p3.
	if picks[0].ID != "p1" || picks[1].ID != "p2" || picks[2].ID != "p3" {
		t.Errorf("picks = %q, %q, %q, want p1, p2, p3", picks[0].ID, picks[1].ID, picks[2].ID)
	}
}

func TestIdentifyReviewSkills_EmptyPreviousQuests(t *testing.T) {
	g := newTestGenerator(DefaultConfig())
	if picks := g.IdentifyReviewSkills(questSkills(), nil); picks != nil {
		t.Errorf("picks = %v, want nil", picks)
	}
}

func TestIdentifyReviewSkills_ShuffleIsSeedStable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReviewSampleProbability = 0
	cfg.ShuffleReviews = true

	week := []skillgraph.Skill{
		{ID: "w1", PrerequisiteSkillIDs: []string{"p1", "p2", "p3"}},
	}
	prev := []skillgraph.Skill{
		{ID: "p1", Mastery: skillgraph.MasteryMastered},
		{ID: "p2", Mastery: skillgraph.MasteryMastered},
		{ID: "p3", Mastery: skillgraph.MasteryMastered},
	}

	first := newTestGenerator(cfg).IdentifyReviewSkills(week, prev)
	second := newTestGenerator(cfg).IdentifyReviewSkills(week, prev)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("pick %d differs between identically seeded runs: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}
