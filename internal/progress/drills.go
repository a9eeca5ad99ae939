package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/questline/internal/drill"
	"github.com/abhisek/questline/internal/mastery"
	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/store"
	"github.com/abhisek/questline/internal/weekplan"
)

// GenerateDrill composes the drill for one scheduled day of a plan, resolving
// the day's skill, its components, and the review source from the store, and
// logs the generated drill as an event.
func (t *Tracker) GenerateDrill(ctx context.Context, engine *drill.Engine, planID string, dayNumber int) (*drill.DailyDrill, error) {
	plan, err := t.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	var day *weekplan.DayPlan
	for i := range plan.Days {
		if plan.Days[i].DayNumber == dayNumber {
			day = &plan.Days[i]
			break
		}
	}
	if day == nil {
		return nil, fmt.Errorf("plan %q has no day %d", planID, dayNumber)
	}
	if day.IsCatchUp() {
		return nil, fmt.Errorf("plan %q day %d is a catch-up day", planID, dayNumber)
	}

	skill, err := t.skills.Get(ctx, day.SkillID)
	if err != nil {
		return nil, err
	}

	components := make([]skillgraph.Skill, 0, len(skill.ComponentSkillIDs))
	for _, id := range skill.ComponentSkillIDs {
		c, err := t.skills.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve component %q: %w", id, err)
		}
		components = append(components, c)
	}

	var reviewPool []skillgraph.Skill
	if day.ReviewSkillID != "" {
		questID := skill.QuestID
		if day.IsFromPreviousQuest {
			questID = day.ReviewQuestID
		}
		reviewPool, err = t.skills.ByQuest(ctx, questID)
		if err != nil {
			return nil, fmt.Errorf("resolve review quest %q: %w", questID, err)
		}
	}

	d := engine.Generate(drill.Context{
		GoalID:              plan.GoalID,
		UserID:              plan.UserID,
		WeekPlanID:          plan.ID,
		Day:                 *day,
		Skill:               skill,
		ComponentSkills:     components,
		PreviousQuestSkills: reviewPool,
	})

	if err := t.logDrill(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// RetryDrill produces the adapted drill for re-attempting a failed one and
// logs it. The retry ceiling is enforced by the engine.
func (t *Tracker) RetryDrill(ctx context.Context, engine *drill.Engine, failed *drill.DailyDrill, failureReason string) (*drill.DailyDrill, error) {
	skill, err := t.skills.Get(ctx, failed.SkillID)
	if err != nil {
		return nil, err
	}

	d, err := engine.AdaptForRetry(failed, skill, failureReason)
	if err != nil {
		return nil, err
	}

	if err := t.logDrill(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// CompleteDrill resolves a drill: a pass or fail records an outcome against
// the drilled skill, a skip records nothing. Either way the owning week
// plan's aggregates advance.
func (t *Tracker) CompleteDrill(ctx context.Context, d *drill.DailyDrill, outcome mastery.Outcome, skipped bool) (*mastery.OutcomeResult, error) {
	var result *mastery.OutcomeResult
	if !skipped {
		var err error
		result, err = t.RecordOutcome(ctx, d.SkillID, outcome, d.ID)
		if err != nil {
			return nil, err
		}
	}

	if d.WeekPlanID != "" {
		plan, err := t.plans.Get(ctx, d.WeekPlanID)
		if err != nil {
			return nil, err
		}
		passed := !skipped && outcome == mastery.OutcomePass
		mastered := result != nil && result.JustMastered
		plan.RecordDrillResult(passed, skipped, mastered)
		if err := t.plans.Save(ctx, plan); err != nil {
			return nil, fmt.Errorf("save plan %q: %w", plan.ID, err)
		}
	}

	return result, nil
}

// logDrill appends a drill event with the full drill content as payload.
func (t *Tracker) logDrill(ctx context.Context, d *drill.DailyDrill) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode drill %q: %w", d.ID, err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("encode drill %q: %w", d.ID, err)
	}

	err = t.events.AppendDrill(ctx, store.DrillEventData{
		DrillID:       d.ID,
		SkillID:       d.SkillID,
		WeekPlanID:    d.WeekPlanID,
		DayNumber:     d.DayNumber,
		AttemptNumber: d.AttemptNumber,
		RetryCount:    d.RetryCount,
		TotalMinutes:  d.TotalMinutes,
		Payload:       payload,
	})
	if err != nil {
		return fmt.Errorf("append drill event: %w", err)
	}
	return nil
}
