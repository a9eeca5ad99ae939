// Package progress composes the persistence repos with the progression
// services. Each operation loads the goal snapshot it needs, runs the pure
// services over it, and writes the resulting mutations back. Nothing here
// holds state between calls; the store is the single source of truth.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/questline/internal/mastery"
	"github.com/abhisek/questline/internal/skilldoc"
	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/store"
	"github.com/abhisek/questline/internal/unlock"
)

// Tracker orchestrates outcome recording, scheduling, and drill flows over
// the store. Construct one per process; it is safe to reuse, but concurrent
// outcome recording for the same goal must be serialized by the caller.
type Tracker struct {
	skills store.SkillRepo
	plans  store.WeekPlanRepo
	events store.EventRepo

	thresholds mastery.Thresholds

	// Now stamps mastered-at and created-at times; injectable for tests.
	Now func() time.Time
}

// NewTracker creates a tracker over the given repos.
func NewTracker(skills store.SkillRepo, plans store.WeekPlanRepo, events store.EventRepo, thresholds mastery.Thresholds) *Tracker {
	return &Tracker{
		skills:     skills,
		plans:      plans,
		events:     events,
		thresholds: thresholds,
		Now:        time.Now,
	}
}

// ImportGoal validates a decomposition document and persists its skills.
func (t *Tracker) ImportGoal(ctx context.Context, doc *skilldoc.Document) error {
	skills, err := doc.Skills()
	if err != nil {
		return fmt.Errorf("import goal %q: %w", doc.GoalID, err)
	}
	if err := t.skills.Create(ctx, skills); err != nil {
		return fmt.Errorf("import goal %q: %w", doc.GoalID, err)
	}
	return nil
}

// RecordOutcome applies one pass/fail outcome to a skill and persists every
// mutation it causes: the skill's own counters and mastery, status changes on
// skills the outcome unlocked, and an outcome event for the audit trail.
func (t *Tracker) RecordOutcome(ctx context.Context, skillID string, outcome mastery.Outcome, drillID string) (*mastery.OutcomeResult, error) {
	sk, err := t.skills.Get(ctx, skillID)
	if err != nil {
		return nil, err
	}

	snapshot, err := t.skills.ByGoal(ctx, sk.GoalID)
	if err != nil {
		return nil, fmt.Errorf("load goal %q: %w", sk.GoalID, err)
	}

	svc := t.masteryService(snapshot)
	result, err := svc.RecordOutcome(skillID, outcome)
	if err != nil {
		return nil, err
	}

	updated, err := svc.Get(skillID)
	if err != nil {
		return nil, err
	}
	if err := t.skills.UpdateMastery(ctx, updated); err != nil {
		return nil, fmt.Errorf("persist mastery for %q: %w", skillID, err)
	}
	if result.NewStatus != result.PrevStatus {
		if err := t.skills.UpdateStatus(ctx, updated); err != nil {
			return nil, fmt.Errorf("persist status for %q: %w", skillID, err)
		}
	}

	for _, id := range result.UnlockedSkillIDs {
		u, err := svc.Get(id)
		if err != nil {
			return nil, err
		}
		if err := t.skills.UpdateStatus(ctx, u); err != nil {
			return nil, fmt.Errorf("persist unlock for %q: %w", id, err)
		}
	}

	err = t.events.AppendOutcome(ctx, store.OutcomeEventData{
		SkillID:          skillID,
		QuestID:          sk.QuestID,
		Outcome:          string(outcome),
		FromMastery:      string(result.PrevMastery),
		ToMastery:        string(result.NewMastery),
		JustMastered:     result.JustMastered,
		UnlockedSkillIDs: result.UnlockedSkillIDs,
		DrillID:          drillID,
	})
	if err != nil {
		return nil, fmt.Errorf("append outcome event: %w", err)
	}

	return result, nil
}

// masteryService builds the in-memory progression services over a snapshot.
func (t *Tracker) masteryService(snapshot []skillgraph.Skill) *mastery.Service {
	lookup := snapshotLookup(make(map[string]skillgraph.Skill, len(snapshot)))
	for _, s := range snapshot {
		lookup[s.ID] = s
	}
	unlockSvc := unlock.NewService(lookup)
	unlockSvc.Now = t.Now

	svc := mastery.NewService(snapshot, unlockSvc, t.thresholds)
	svc.Now = t.Now
	return svc
}

// snapshotLookup adapts a loaded snapshot to the unlock lookup contract.
type snapshotLookup map[string]skillgraph.Skill

func (l snapshotLookup) Get(skillID string) (skillgraph.Skill, bool) {
	s, ok := l[skillID]
	return s, ok
}
