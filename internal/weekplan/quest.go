package weekplan

import (
	"fmt"
	"time"

	"github.com/abhisek/questline/internal/skillgraph"
)

// QuestContext carries the inputs for scheduling an entire quest.
type QuestContext struct {
	GoalID  string
	UserID  string
	QuestID string

	// Skills is the quest's full skill set.
	Skills []skillgraph.Skill

	// PracticeDays is the quest's duration as supplied by the upstream
	// planner.
	PracticeDays int

	// StartWeekNumber is the global week number of the quest's first week.
	StartWeekNumber int

	PreviousQuestSkills []skillgraph.Skill
	StartDate           time.Time
}

// GenerateForQuest distributes a quest's skills across
// ceil(practiceDays/daysPerWeek) weeks. Each week's share of skills is
// capped at that week's actual day count (the final week is usually short),
// aiming for an even spread within that constraint, and synthesis skills
// get reserved slots in the final week. Each week starts on a Monday; the
// first week starts at the quest start date (normalized to a weekday).
func (g *Generator) GenerateForQuest(ctx QuestContext) ([]*WeekPlan, error) {
	if ctx.PracticeDays <= 0 {
		return nil, fmt.Errorf("quest %q: practice days must be positive, got %d", ctx.QuestID, ctx.PracticeDays)
	}

	weeks := (ctx.PracticeDays + g.cfg.DaysPerWeek - 1) / g.cfg.DaysPerWeek
	last := weeks - 1
	ordered := orderForScheduling(ctx.Skills)
	if len(ordered) > ctx.PracticeDays {
		return nil, fmt.Errorf("quest %q: %d skills do not fit in %d practice days", ctx.QuestID, len(ordered), ctx.PracticeDays)
	}

	capacities := make([]int, weeks)
	rem := ctx.PracticeDays
	for w := range capacities {
		c := g.cfg.DaysPerWeek
		if rem < c {
			c = rem
		}
		capacities[w] = c
		rem -= c
	}

	var synthesis, regular []skillgraph.Skill
	for _, s := range ordered {
		if s.SkillType == skillgraph.TypeSynthesis {
			synthesis = append(synthesis, s)
		} else {
			regular = append(regular, s)
		}
	}
	if len(synthesis) > capacities[last] {
		return nil, fmt.Errorf("quest %q: %d synthesis skills do not fit in the final week's %d days", ctx.QuestID, len(synthesis), capacities[last])
	}

	// Synthesis closes the quest; reserve its final-week slots up front.
	avail := make([]int, weeks)
	copy(avail, capacities)
	avail[last] -= len(synthesis)

	buckets := make([][]skillgraph.Skill, weeks)
	idx := 0
	for w := 0; w < weeks && idx < len(regular); w++ {
		left := len(regular) - idx

		// Even share of what remains, pulled forward when the later
		// weeks cannot hold the rest.
		take := (left + weeks - w - 1) / (weeks - w)
		capAfter := 0
		for v := w + 1; v < weeks; v++ {
			capAfter += avail[v]
		}
		if need := left - capAfter; need > take {
			take = need
		}
		if take > avail[w] {
			take = avail[w]
		}

		buckets[w] = append(buckets[w], regular[idx:idx+take]...)
		idx += take
	}
	buckets[last] = append(buckets[last], synthesis...)

	plans := make([]*WeekPlan, 0, weeks)
	startDate := NextPracticeDay(ctx.StartDate)
	dayOffset := 0

	for w := 0; w < weeks; w++ {
		plan, err := g.Generate(Context{
			GoalID:              ctx.GoalID,
			UserID:              ctx.UserID,
			QuestID:             ctx.QuestID,
			WeekNumber:          ctx.StartWeekNumber + w,
			WeekInQuest:         w + 1,
			IsFirstWeekOfQuest:  w == 0,
			IsLastWeekOfQuest:   w == last,
			WeekSkills:          buckets[w],
			PreviousQuestSkills: ctx.PreviousQuestSkills,
			StartDate:           startDate,
			DaysAvailable:       capacities[w],
			DayInQuestOffset:    dayOffset,
		})
		if err != nil {
			return nil, fmt.Errorf("week %d: %w", w+1, err)
		}
		plans = append(plans, plan)

		dayOffset += capacities[w]
		startDate = NextMonday(startDate)
	}

	return plans, nil
}
