package unlock

import (
	"testing"
	"time"

	"github.com/abhisek/questline/internal/skillgraph"
)

// mapLookup implements Lookup over a fixed map.
type mapLookup map[string]skillgraph.Skill

func (m mapLookup) Get(id string) (skillgraph.Skill, bool) {
	s, ok := m[id]
	return s, ok
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
}

func newTestService(lookup Lookup) *Service {
	svc := NewService(lookup)
	svc.Now = fixedNow
	return svc
}

func TestCheckPrerequisites_NoPrereqs(t *testing.T) {
	svc := newTestService(nil)
	check := svc.CheckPrerequisites(skillgraph.Skill{ID: "root"}, nil)
	if !check.AllMet {
		t.Error("AllMet = false for skill without prerequisites, want true")
	}
}

func TestCheckPrerequisites_AllMastered(t *testing.T) {
	svc := newTestService(nil)
	snapshot := []skillgraph.Skill{
		{ID: "p1", Mastery: skillgraph.MasteryMastered},
		{ID: "p2", Mastery: skillgraph.MasteryMastered},
	}
	check := svc.CheckPrerequisites(skillgraph.Skill{ID: "s", PrerequisiteSkillIDs: []string{"p1", "p2"}}, snapshot)
	if !check.AllMet {
		t.Errorf("AllMet = false, want true; missing %v", check.MissingIDs)
	}
	if len(check.MetIDs) != 2 {
		t.Errorf("MetIDs = %v, want both prerequisites", check.MetIDs)
	}
}

func TestCheckPrerequisites_OneUnmastered(t *testing.T) {
	svc := newTestService(nil)
	snapshot := []skillgraph.Skill{
		{ID: "p1", Mastery: skillgraph.MasteryMastered},
		{ID: "p2", Mastery: skillgraph.MasteryPracticing},
	}
	check := svc.CheckPrerequisites(skillgraph.Skill{ID: "s", PrerequisiteSkillIDs: []string{"p1", "p2"}}, snapshot)
	if check.AllMet {
		t.Error("AllMet = true with a practicing prerequisite, want false")
	}
	if len(check.MissingIDs) != 1 || check.MissingIDs[0] != "p2" {
		t.Errorf("MissingIDs = %v, want [p2]", check.MissingIDs)
	}
}

func TestCheckPrerequisites_AbsentRecordFailsClosed(t *testing.T) {
	svc := newTestService(nil)
	check := svc.CheckPrerequisites(skillgraph.Skill{ID: "s", PrerequisiteSkillIDs: []string{"ghost"}}, nil)
	if check.AllMet {
		t.Error("AllMet = true for absent prerequisite record, want false")
	}
	if len(check.MissingIDs) != 1 || check.MissingIDs[0] != "ghost" {
		t.Errorf("MissingIDs = %v, want [ghost]", check.MissingIDs)
	}
}

func TestCheckPrerequisites_LookupFallback(t *testing.T) {
	lookup := mapLookup{
		"prev-quest": {ID: "prev-quest", QuestID: "q1", Mastery: skillgraph.MasteryMastered},
	}
	svc := newTestService(lookup)
	check := svc.CheckPrerequisites(skillgraph.Skill{ID: "s", QuestID: "q2", PrerequisiteSkillIDs: []string{"prev-quest"}}, nil)
	if !check.AllMet {
		t.Errorf("AllMet = false, want true via lookup; missing %v", check.MissingIDs)
	}
}

func TestCheckPrerequisites_MissingFromQuests(t *testing.T) {
	lookup := mapLookup{
		"prev": {ID: "prev", QuestID: "q1", Mastery: skillgraph.MasteryPracticing},
	}
	svc := newTestService(lookup)
	check := svc.CheckPrerequisites(skillgraph.Skill{ID: "s", QuestID: "q2", PrerequisiteSkillIDs: []string{"prev"}}, nil)
	if check.AllMet {
		t.Error("AllMet = true, want false")
	}
	if len(check.MissingFromQuests) != 1 || check.MissingFromQuests[0] != "q1" {
		t.Errorf("MissingFromQuests = %v, want [q1]", check.MissingFromQuests)
	}
}

func TestUnlockEligibleSkills_CascadeOneLevel(t *testing.T) {
	svc := newTestService(nil)
	trigger := &skillgraph.Skill{ID: "t", Mastery: skillgraph.MasteryMastered, Status: skillgraph.StatusMastered}
	a := &skillgraph.Skill{ID: "a", Status: skillgraph.StatusLocked, PrerequisiteSkillIDs: []string{"t"}}
	b := &skillgraph.Skill{ID: "b", Status: skillgraph.StatusLocked, PrerequisiteSkillIDs: []string{"t"}}
	c := &skillgraph.Skill{ID: "c", Status: skillgraph.StatusLocked, PrerequisiteSkillIDs: []string{"a"}}

	result := svc.UnlockEligibleSkills("t", []*skillgraph.Skill{trigger, a, b, c})

	if len(result.UnlockedIDs) != 2 {
		t.Fatalf("UnlockedIDs = %v, want [a b]", result.UnlockedIDs)
	}
	if a.Status != skillgraph.StatusAvailable || b.Status != skillgraph.StatusAvailable {
		t.Error("independent dependents of trigger not both unlocked")
	}
	if a.UnlockedAt == nil || !a.UnlockedAt.Equal(fixedNow()) {
		t.Errorf("UnlockedAt = %v, want %v", a.UnlockedAt, fixedNow())
	}
	// c depends on a, which is available but not mastered: next level waits
	// for its own mastery event.
	if c.Status != skillgraph.StatusLocked {
		t.Error("second-level dependent unlocked in one sweep, want still locked")
	}
	if len(result.StillLockedIDs) != 1 || result.StillLockedIDs[0] != "c" {
		t.Errorf("StillLockedIDs = %v, want [c]", result.StillLockedIDs)
	}
}

func TestUnlockEligibleSkills_Idempotent(t *testing.T) {
	svc := newTestService(nil)
	trigger := &skillgraph.Skill{ID: "t", Mastery: skillgraph.MasteryMastered, Status: skillgraph.StatusMastered}
	a := &skillgraph.Skill{ID: "a", Status: skillgraph.StatusLocked, PrerequisiteSkillIDs: []string{"t"}}
	candidates := []*skillgraph.Skill{trigger, a}

	first := svc.UnlockEligibleSkills("t", candidates)
	if len(first.UnlockedIDs) != 1 {
		t.Fatalf("first sweep UnlockedIDs = %v, want [a]", first.UnlockedIDs)
	}

	second := svc.UnlockEligibleSkills("t", candidates)
	if len(second.UnlockedIDs) != 0 {
		t.Errorf("second sweep UnlockedIDs = %v, want empty", second.UnlockedIDs)
	}
}

func TestUnlockEligibleSkills_MilestoneFlag(t *testing.T) {
	svc := newTestService(nil)
	trigger := &skillgraph.Skill{ID: "t", Mastery: skillgraph.MasteryMastered}
	capstone := &skillgraph.Skill{ID: "cap", SkillType: skillgraph.TypeSynthesis, Status: skillgraph.StatusLocked, PrerequisiteSkillIDs: []string{"t"}}

	result := svc.UnlockEligibleSkills("t", []*skillgraph.Skill{trigger, capstone})
	if !result.MilestoneUnlocked {
		t.Error("MilestoneUnlocked = false after unlocking a synthesis skill, want true")
	}
}

func TestCheckMilestoneAvailability(t *testing.T) {
	svc := newTestService(nil)
	skills := []skillgraph.Skill{
		{ID: "a", QuestID: "q", Mastery: skillgraph.MasteryMastered},
		{ID: "b", QuestID: "q", Mastery: skillgraph.MasteryMastered},
		{ID: "c", QuestID: "q", Mastery: skillgraph.MasteryPracticing},
		{ID: "cap", QuestID: "q", SkillType: skillgraph.TypeSynthesis},
	}

	// 2 of 3 countable skills mastered.
	if !svc.CheckMilestoneAvailability("q", skills, 0.6) {
		t.Error("milestone unavailable at 2/3 >= 0.6, want available")
	}
	if svc.CheckMilestoneAvailability("q", skills, 0.7) {
		t.Error("milestone available at 2/3 < 0.7, want unavailable")
	}
}

func TestCheckMilestoneAvailability_EmptyDenominator(t *testing.T) {
	svc := newTestService(nil)
	skills := []skillgraph.Skill{
		{ID: "cap", QuestID: "q", SkillType: skillgraph.TypeSynthesis, Mastery: skillgraph.MasteryMastered},
	}
	if svc.CheckMilestoneAvailability("q", skills, 0.0) {
		t.Error("milestone available for quest with only a synthesis skill, want false")
	}
	if svc.CheckMilestoneAvailability("empty", nil, 0.0) {
		t.Error("milestone available for empty quest, want false")
	}
}

func TestLockedSkillsWithReasons(t *testing.T) {
	svc := newTestService(nil)
	skills := []skillgraph.Skill{
		{ID: "p", Title: "Hold the bow", Mastery: skillgraph.MasteryPracticing, Status: skillgraph.StatusInProgress},
		{ID: "s", Status: skillgraph.StatusLocked, PrerequisiteSkillIDs: []string{"p", "ghost"}},
		{ID: "open", Status: skillgraph.StatusAvailable},
	}

	reasons := svc.LockedSkillsWithReasons(skills)
	if len(reasons) != 1 {
		t.Fatalf("len(reasons) = %d, want 1", len(reasons))
	}
	missing := reasons["s"]
	if len(missing) != 2 {
		t.Fatalf("missing = %v, want 2 entries", missing)
	}
	if missing[0].SkillID != "p" || missing[0].Title != "Hold the bow" {
		t.Errorf("missing[0] = %+v, want p with title", missing[0])
	}
	if missing[1].SkillID != "ghost" || missing[1].Title != "" {
		t.Errorf("missing[1] = %+v, want ghost with empty title", missing[1])
	}
}
