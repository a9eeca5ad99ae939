package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/store"
	"github.com/abhisek/questline/internal/weekplan"
)

// QuestSchedule describes one quest to lay out on the calendar.
type QuestSchedule struct {
	QuestID         string
	PracticeDays    int
	StartWeekNumber int

	// PreviousQuestID sources cross-quest warmup reviews. Empty for the
	// first quest.
	PreviousQuestID string
}

// ScheduleQuest generates a quest's week plans from the stored skill set,
// persists them, and writes each skill's scheduled position back to the
// store.
func (t *Tracker) ScheduleQuest(ctx context.Context, gen *weekplan.Generator, goalID, userID string, sched QuestSchedule) ([]*weekplan.WeekPlan, error) {
	skills, err := t.skills.ByQuest(ctx, sched.QuestID)
	if err != nil {
		return nil, fmt.Errorf("load quest %q: %w", sched.QuestID, err)
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("quest %q has no skills", sched.QuestID)
	}

	var prev []skillgraph.Skill
	if sched.PreviousQuestID != "" {
		prev, err = t.skills.ByQuest(ctx, sched.PreviousQuestID)
		if err != nil {
			return nil, fmt.Errorf("load previous quest %q: %w", sched.PreviousQuestID, err)
		}
	}

	plans, err := gen.GenerateForQuest(weekplan.QuestContext{
		GoalID:              goalID,
		UserID:              userID,
		QuestID:             sched.QuestID,
		Skills:              skills,
		PracticeDays:        sched.PracticeDays,
		StartWeekNumber:     sched.StartWeekNumber,
		PreviousQuestSkills: prev,
		StartDate:           t.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := t.ApplySchedule(ctx, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// ApplySchedule persists generated week plans and stamps each scheduled
// skill with its calendar position.
func (t *Tracker) ApplySchedule(ctx context.Context, plans []*weekplan.WeekPlan) error {
	for _, plan := range plans {
		if err := t.plans.Save(ctx, plan); err != nil {
			return fmt.Errorf("save plan %q: %w", plan.ID, err)
		}
		for _, day := range plan.Days {
			if day.IsCatchUp() {
				continue
			}
			if err := t.skills.UpdateSchedule(ctx, day.SkillID, plan.WeekNumber, day.DayNumber, day.DayInQuest); err != nil {
				return fmt.Errorf("schedule skill %q: %w", day.SkillID, err)
			}
		}
	}
	return nil
}

// ActivatePlan transitions a goal's pending plan to active, completing any
// previously active plan first. Only one plan per goal is active at a time.
func (t *Tracker) ActivatePlan(ctx context.Context, goalID, planID string) error {
	current, err := t.plans.Active(ctx, goalID)
	switch {
	case err == nil:
		if current.ID != planID {
			if err := t.plans.SetStatus(ctx, current.ID, weekplan.StatusCompleted); err != nil {
				return fmt.Errorf("complete plan %q: %w", current.ID, err)
			}
		}
	case !isNotFound(err):
		return fmt.Errorf("find active plan: %w", err)
	}
	return t.plans.SetStatus(ctx, planID, weekplan.StatusActive)
}

func isNotFound(err error) bool {
	var nf *store.ErrNotFound
	return errors.As(err, &nf)
}
