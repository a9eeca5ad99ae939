package progress

import (
	"context"
	"fmt"

	"github.com/abhisek/questline/internal/mastery"
	"github.com/abhisek/questline/internal/unlock"
)

// GoalSummary aggregates mastery counts across a goal's skill set.
func (t *Tracker) GoalSummary(ctx context.Context, goalID string) (mastery.Summary, error) {
	snapshot, err := t.skills.ByGoal(ctx, goalID)
	if err != nil {
		return mastery.Summary{}, fmt.Errorf("load goal %q: %w", goalID, err)
	}
	return mastery.Summarize(snapshot), nil
}

// QuestReport is one quest's mastery position within a goal.
type QuestReport struct {
	QuestID            string
	MasteryPercent     float64
	MilestoneAvailable bool
}

// QuestReport computes a quest's mastery percentage and whether its
// milestone has unlocked.
func (t *Tracker) QuestReport(ctx context.Context, questID string) (QuestReport, error) {
	skills, err := t.skills.ByQuest(ctx, questID)
	if err != nil {
		return QuestReport{}, fmt.Errorf("load quest %q: %w", questID, err)
	}

	svc := t.masteryService(skills)
	return QuestReport{
		QuestID:            questID,
		MasteryPercent:     mastery.QuestMasteryPercent(questID, skills),
		MilestoneAvailable: svc.MilestoneAvailable(questID),
	}, nil
}

// LockedReasons explains, per locked skill in a goal, which prerequisites
// are still unmastered.
func (t *Tracker) LockedReasons(ctx context.Context, goalID string) (map[string][]unlock.MissingPrereq, error) {
	snapshot, err := t.skills.ByGoal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("load goal %q: %w", goalID, err)
	}

	l := make(snapshotLookup, len(snapshot))
	for _, s := range snapshot {
		l[s.ID] = s
	}
	return unlock.NewService(l).LockedSkillsWithReasons(snapshot), nil
}
