package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/questline/ent"
	entweekplan "github.com/abhisek/questline/ent/weekplan"
	"github.com/abhisek/questline/internal/weekplan"
)

type weekPlanRepo struct {
	client *ent.Client
}

func (r *weekPlanRepo) Save(ctx context.Context, plan *weekplan.WeekPlan) error {
	days, err := daysToJSON(plan.Days)
	if err != nil {
		return fmt.Errorf("encode days: %w", err)
	}

	err = r.client.WeekPlan.Create().
		SetPlanID(plan.ID).
		SetGoalID(plan.GoalID).
		SetUserID(plan.UserID).
		SetQuestID(plan.QuestID).
		SetWeekNumber(plan.WeekNumber).
		SetWeekInQuest(plan.WeekInQuest).
		SetIsFirstWeekOfQuest(plan.IsFirstWeekOfQuest).
		SetIsLastWeekOfQuest(plan.IsLastWeekOfQuest).
		SetDays(days).
		SetScheduledSkillIds(plan.ScheduledSkillIDs).
		SetCarryForwardSkillIds(plan.CarryForwardSkillIDs).
		SetReviewsFromQuestIds(plan.ReviewsFromQuestIDs).
		SetBuildsOnSkillIds(plan.BuildsOnSkillIDs).
		SetTheme(plan.Theme).
		SetWeeklyCompetence(plan.WeeklyCompetence).
		SetDrillsCompleted(plan.DrillsCompleted).
		SetDrillsPassed(plan.DrillsPassed).
		SetDrillsFailed(plan.DrillsFailed).
		SetDrillsSkipped(plan.DrillsSkipped).
		SetSkillsMastered(plan.SkillsMastered).
		SetPassRate(plan.PassRate).
		SetStatus(string(plan.Status)).
		SetStartDate(plan.StartDate).
		SetCreatedAt(plan.CreatedAt).
		OnConflictColumns(entweekplan.FieldPlanID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save week plan: %w", err)
	}
	return nil
}

func (r *weekPlanRepo) Get(ctx context.Context, planID string) (*weekplan.WeekPlan, error) {
	row, err := r.client.WeekPlan.Query().
		Where(entweekplan.PlanID(planID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, &ErrNotFound{Kind: "week plan", ID: planID}
	}
	if err != nil {
		return nil, fmt.Errorf("query week plan: %w", err)
	}
	return fromWeekPlanRow(row)
}

func (r *weekPlanRepo) ByGoal(ctx context.Context, goalID string) ([]*weekplan.WeekPlan, error) {
	rows, err := r.client.WeekPlan.Query().
		Where(entweekplan.GoalID(goalID)).
		Order(ent.Asc(entweekplan.FieldWeekNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query week plans by goal: %w", err)
	}
	plans := make([]*weekplan.WeekPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := fromWeekPlanRow(row)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *weekPlanRepo) Active(ctx context.Context, goalID string) (*weekplan.WeekPlan, error) {
	row, err := r.client.WeekPlan.Query().
		Where(
			entweekplan.GoalID(goalID),
			entweekplan.Status(string(weekplan.StatusActive)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, &ErrNotFound{Kind: "active week plan", ID: goalID}
	}
	if err != nil {
		return nil, fmt.Errorf("query active week plan: %w", err)
	}
	return fromWeekPlanRow(row)
}

func (r *weekPlanRepo) SetStatus(ctx context.Context, planID string, status weekplan.PlanStatus) error {
	n, err := r.client.WeekPlan.Update().
		Where(entweekplan.PlanID(planID)).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set week plan status: %w", err)
	}
	if n == 0 {
		return &ErrNotFound{Kind: "week plan", ID: planID}
	}
	return nil
}

// daysToJSON converts day plans to the generic JSON shape the ent schema
// stores.
func daysToJSON(days []weekplan.DayPlan) ([]map[string]any, error) {
	raw, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func daysFromJSON(in []map[string]any) ([]weekplan.DayPlan, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var days []weekplan.DayPlan
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func fromWeekPlanRow(row *ent.WeekPlan) (*weekplan.WeekPlan, error) {
	days, err := daysFromJSON(row.Days)
	if err != nil {
		return nil, fmt.Errorf("decode days for plan %q: %w", row.PlanID, err)
	}
	return &weekplan.WeekPlan{
		ID:                   row.PlanID,
		GoalID:               row.GoalID,
		UserID:               row.UserID,
		QuestID:              row.QuestID,
		WeekNumber:           row.WeekNumber,
		WeekInQuest:          row.WeekInQuest,
		IsFirstWeekOfQuest:   row.IsFirstWeekOfQuest,
		IsLastWeekOfQuest:    row.IsLastWeekOfQuest,
		Days:                 days,
		ScheduledSkillIDs:    row.ScheduledSkillIds,
		CarryForwardSkillIDs: row.CarryForwardSkillIds,
		ReviewsFromQuestIDs:  row.ReviewsFromQuestIds,
		BuildsOnSkillIDs:     row.BuildsOnSkillIds,
		Theme:                row.Theme,
		WeeklyCompetence:     row.WeeklyCompetence,
		DrillsCompleted:      row.DrillsCompleted,
		DrillsPassed:         row.DrillsPassed,
		DrillsFailed:         row.DrillsFailed,
		DrillsSkipped:        row.DrillsSkipped,
		SkillsMastered:       row.SkillsMastered,
		PassRate:             row.PassRate,
		Status:               weekplan.PlanStatus(row.Status),
		StartDate:            row.StartDate,
		CreatedAt:            row.CreatedAt,
	}, nil
}
