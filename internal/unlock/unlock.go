// Package unlock evaluates prerequisite satisfaction and flips skills from
// locked to available as their prerequisites reach mastery.
package unlock

import (
	"time"

	"github.com/abhisek/questline/internal/skillgraph"
)

// Lookup resolves skills that are not part of the snapshot passed to a call,
// typically prerequisites living in earlier quests.
type Lookup interface {
	Get(skillID string) (skillgraph.Skill, bool)
}

// PrereqCheck is the result of evaluating one skill's prerequisites against
// a snapshot of skills. A prerequisite with no backing record is unmet, not
// an error.
type PrereqCheck struct {
	AllMet            bool
	MetIDs            []string
	MissingIDs        []string
	MissingFromQuests []string
}

// UnlockResult reports the effect of one unlock sweep.
type UnlockResult struct {
	UnlockedIDs       []string
	StillLockedIDs    []string
	MilestoneUnlocked bool
}

// MissingPrereq identifies an unmet prerequisite for diagnostics.
type MissingPrereq struct {
	SkillID string
	Title   string
}

// Service evaluates and applies unlock transitions.
type Service struct {
	lookup Lookup

	// Now stamps UnlockedAt; injectable for deterministic tests.
	Now func() time.Time
}

// NewService creates an unlock service. lookup may be nil, in which case only
// skills present in the snapshot passed to each call can satisfy
// prerequisites.
func NewService(lookup Lookup) *Service {
	return &Service{
		lookup: lookup,
		Now:    time.Now,
	}
}

// CheckPrerequisites evaluates whether every prerequisite of skill is
// mastered. Prerequisites are resolved from the given snapshot first, then
// the lookup. Any prerequisite that cannot be resolved fails closed: it is
// reported missing and AllMet stays false.
func (s *Service) CheckPrerequisites(skill skillgraph.Skill, snapshot []skillgraph.Skill) PrereqCheck {
	check := PrereqCheck{AllMet: true}
	if len(skill.PrerequisiteSkillIDs) == 0 {
		return check
	}

	byID := make(map[string]skillgraph.Skill, len(snapshot))
	for _, sk := range snapshot {
		byID[sk.ID] = sk
	}

	seenQuests := make(map[string]bool)
	for _, prereqID := range skill.PrerequisiteSkillIDs {
		prereq, ok := byID[prereqID]
		if !ok && s.lookup != nil {
			prereq, ok = s.lookup.Get(prereqID)
		}

		if ok && prereq.Mastery == skillgraph.MasteryMastered {
			check.MetIDs = append(check.MetIDs, prereqID)
			continue
		}

		check.AllMet = false
		check.MissingIDs = append(check.MissingIDs, prereqID)
		if ok && prereq.QuestID != "" && prereq.QuestID != skill.QuestID && !seenQuests[prereq.QuestID] {
			seenQuests[prereq.QuestID] = true
			check.MissingFromQuests = append(check.MissingFromQuests, prereq.QuestID)
		}
	}
	return check
}

// UnlockEligibleSkills flips every locked candidate whose prerequisites are
// now all mastered to available, stamping UnlockedAt. The sweep covers one
// dependency level only: newly unlocked skills are not re-checked as
// prerequisites of further candidates, because unlocking never changes
// mastery. Callers run one sweep per mastery event.
//
// Candidates are mutated in place. Running the same sweep twice with an
// unchanged candidate set unlocks nothing the second time.
func (s *Service) UnlockEligibleSkills(triggerSkillID string, candidates []*skillgraph.Skill) UnlockResult {
	snapshot := make([]skillgraph.Skill, 0, len(candidates))
	for _, c := range candidates {
		snapshot = append(snapshot, *c)
	}

	var result UnlockResult
	now := s.Now()
	for _, c := range candidates {
		if c.Status != skillgraph.StatusLocked {
			continue
		}
		check := s.CheckPrerequisites(*c, snapshot)
		if !check.AllMet {
			result.StillLockedIDs = append(result.StillLockedIDs, c.ID)
			continue
		}
		c.Status = skillgraph.StatusAvailable
		t := now
		c.UnlockedAt = &t
		result.UnlockedIDs = append(result.UnlockedIDs, c.ID)
		if c.SkillType == skillgraph.TypeSynthesis {
			result.MilestoneUnlocked = true
		}
	}
	return result
}

// CheckMilestoneAvailability reports whether a quest's mastery percentage has
// reached the required threshold. Synthesis skills are excluded from the
// denominator; a quest with no countable skills is never milestone-eligible.
func (s *Service) CheckMilestoneAvailability(questID string, skills []skillgraph.Skill, requiredPercent float64) bool {
	mastered, total := 0, 0
	for _, sk := range skills {
		if sk.QuestID != questID || !sk.CountsTowardMastery() {
			continue
		}
		total++
		if sk.Mastery == skillgraph.MasteryMastered {
			mastered++
		}
	}
	if total == 0 {
		return false
	}
	return float64(mastered)/float64(total) >= requiredPercent
}

// LockedSkillsWithReasons maps each locked skill to the prerequisites still
// blocking it. Purely diagnostic; mutates nothing.
func (s *Service) LockedSkillsWithReasons(skills []skillgraph.Skill) map[string][]MissingPrereq {
	byID := make(map[string]skillgraph.Skill, len(skills))
	for _, sk := range skills {
		byID[sk.ID] = sk
	}

	reasons := make(map[string][]MissingPrereq)
	for _, sk := range skills {
		if sk.Status != skillgraph.StatusLocked {
			continue
		}
		check := s.CheckPrerequisites(sk, skills)
		if check.AllMet {
			continue
		}
		missing := make([]MissingPrereq, 0, len(check.MissingIDs))
		for _, id := range check.MissingIDs {
			mp := MissingPrereq{SkillID: id}
			if prereq, ok := byID[id]; ok {
				mp.Title = prereq.Title
			} else if s.lookup != nil {
				if prereq, ok := s.lookup.Get(id); ok {
					mp.Title = prereq.Title
				}
			}
			missing = append(missing, mp)
		}
		reasons[sk.ID] = missing
	}
	return reasons
}
