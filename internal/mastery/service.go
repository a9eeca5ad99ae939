// Package mastery advances skills through the not_started -> practicing ->
// mastered state machine as drill outcomes are recorded.
package mastery

import (
	"time"

	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/unlock"
)

// Service owns a snapshot of skills and applies outcome-driven transitions to
// it. The snapshot is authoritative for the duration of the service; the
// service never re-fetches fresher data mid-call. Persisting mutations back
// to a store is the caller's job, via Skills or the per-call result.
type Service struct {
	skills     map[string]*skillgraph.Skill
	order      []string
	unlock     *unlock.Service
	thresholds Thresholds

	// Now stamps MasteredAt; injectable for deterministic tests.
	Now func() time.Time
}

// NewService creates a mastery service over a snapshot of skills.
func NewService(skills []skillgraph.Skill, unlockSvc *unlock.Service, thresholds Thresholds) *Service {
	s := &Service{
		skills:     make(map[string]*skillgraph.Skill, len(skills)),
		order:      make([]string, 0, len(skills)),
		unlock:     unlockSvc,
		thresholds: thresholds,
		Now:        time.Now,
	}
	for i := range skills {
		sk := skills[i]
		s.skills[sk.ID] = &sk
		s.order = append(s.order, sk.ID)
	}
	return s
}

// Get returns the current record for a skill, or ErrSkillNotFound.
func (s *Service) Get(skillID string) (skillgraph.Skill, error) {
	sk, ok := s.skills[skillID]
	if !ok {
		return skillgraph.Skill{}, &ErrSkillNotFound{SkillID: skillID}
	}
	return *sk, nil
}

// Skills returns the current snapshot in original order.
func (s *Service) Skills() []skillgraph.Skill {
	result := make([]skillgraph.Skill, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, *s.skills[id])
	}
	return result
}

// RecordOutcome applies one pass/fail outcome to a skill: counters update
// first, then the promotion rule runs, and a promotion to mastered triggers
// one unlock sweep over the snapshot. Mastery never regresses on a fail;
// only the streak resets.
func (s *Service) RecordOutcome(skillID string, outcome Outcome) (*OutcomeResult, error) {
	sk, ok := s.skills[skillID]
	if !ok {
		return nil, &ErrSkillNotFound{SkillID: skillID}
	}

	result := &OutcomeResult{
		SkillID:     skillID,
		Outcome:     outcome,
		PrevMastery: sk.Mastery,
		PrevStatus:  sk.Status,
	}

	if outcome == OutcomePass {
		sk.PassCount++
		sk.ConsecutivePasses++
	} else {
		sk.FailCount++
		sk.ConsecutivePasses = 0
	}

	// First recorded outcome moves an available skill into progress.
	if sk.Status == skillgraph.StatusAvailable {
		sk.Status = skillgraph.StatusInProgress
	}

	s.promote(sk, result)

	result.NewMastery = sk.Mastery
	result.NewStatus = sk.Status
	result.PassCount = sk.PassCount
	result.FailCount = sk.FailCount
	result.ConsecutivePasses = sk.ConsecutivePasses

	if result.JustMastered {
		result.UnlockedSkillIDs = s.cascade(skillID)
	}
	result.MilestoneAvailable = s.unlock.CheckMilestoneAvailability(sk.QuestID, s.Skills(), s.thresholds.MilestonePercent)

	return result, nil
}

// promote evaluates the promotion rule after counters are updated.
func (s *Service) promote(sk *skillgraph.Skill, result *OutcomeResult) {
	if sk.Mastery == skillgraph.MasteryNotStarted && sk.PassCount >= s.thresholds.Practicing {
		sk.Mastery = skillgraph.MasteryPracticing
	}

	if sk.Mastery == skillgraph.MasteryPracticing &&
		sk.PassCount >= s.thresholds.Mastered &&
		sk.ConsecutivePasses >= s.thresholds.Consecutive {
		sk.Mastery = skillgraph.MasteryMastered
		sk.Status = skillgraph.StatusMastered
		now := s.Now()
		sk.MasteredAt = &now
		result.JustMastered = true
	}
}

// cascade runs one unlock sweep with the just-mastered skill as trigger.
func (s *Service) cascade(triggerID string) []string {
	candidates := make([]*skillgraph.Skill, 0, len(s.order))
	for _, id := range s.order {
		candidates = append(candidates, s.skills[id])
	}
	return s.unlock.UnlockEligibleSkills(triggerID, candidates).UnlockedIDs
}

// MilestoneAvailable reports whether a quest has cleared the milestone
// threshold under the service's thresholds.
func (s *Service) MilestoneAvailable(questID string) bool {
	return s.unlock.CheckMilestoneAvailability(questID, s.Skills(), s.thresholds.MilestonePercent)
}
