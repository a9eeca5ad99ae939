package store

import (
	"context"
	"fmt"

	"github.com/abhisek/questline/ent"
	entskill "github.com/abhisek/questline/ent/skill"
	"github.com/abhisek/questline/internal/skillgraph"
)

type skillRepo struct {
	client *ent.Client
}

func (r *skillRepo) Create(ctx context.Context, skills []skillgraph.Skill) error {
	builders := make([]*ent.SkillCreate, 0, len(skills))
	for _, s := range skills {
		b := r.client.Skill.Create().
			SetSkillID(s.ID).
			SetQuestID(s.QuestID).
			SetGoalID(s.GoalID).
			SetUserID(s.UserID).
			SetTitle(s.Title).
			SetTopics(s.Topics).
			SetAction(s.Action).
			SetSuccessSignal(s.SuccessSignal).
			SetConstraints(s.Constraints).
			SetTransferScenario(s.TransferScenario).
			SetEstimatedMinutes(s.EstimatedMinutes).
			SetSkillType(string(s.SkillType)).
			SetDepth(s.Depth).
			SetOrder(s.Order).
			SetPrerequisiteSkillIds(s.PrerequisiteSkillIDs).
			SetPrerequisiteQuestIds(s.PrerequisiteQuestIDs).
			SetIsCompound(s.IsCompound).
			SetComponentSkillIds(s.ComponentSkillIDs).
			SetMastery(string(s.Mastery)).
			SetStatus(string(s.Status)).
			SetPassCount(s.PassCount).
			SetFailCount(s.FailCount).
			SetConsecutivePasses(s.ConsecutivePasses)
		if s.MasteredAt != nil {
			b = b.SetMasteredAt(*s.MasteredAt)
		}
		if s.UnlockedAt != nil {
			b = b.SetUnlockedAt(*s.UnlockedAt)
		}
		builders = append(builders, b)
	}
	if _, err := r.client.Skill.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("create skills: %w", err)
	}
	return nil
}

func (r *skillRepo) Get(ctx context.Context, skillID string) (skillgraph.Skill, error) {
	row, err := r.client.Skill.Query().
		Where(entskill.SkillID(skillID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return skillgraph.Skill{}, &ErrNotFound{Kind: "skill", ID: skillID}
	}
	if err != nil {
		return skillgraph.Skill{}, fmt.Errorf("query skill: %w", err)
	}
	return fromSkillRow(row), nil
}

func (r *skillRepo) ByQuest(ctx context.Context, questID string) ([]skillgraph.Skill, error) {
	rows, err := r.client.Skill.Query().
		Where(entskill.QuestID(questID)).
		Order(ent.Asc(entskill.FieldOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills by quest: %w", err)
	}
	return fromSkillRows(rows), nil
}

func (r *skillRepo) ByGoal(ctx context.Context, goalID string) ([]skillgraph.Skill, error) {
	rows, err := r.client.Skill.Query().
		Where(entskill.GoalID(goalID)).
		Order(ent.Asc(entskill.FieldOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills by goal: %w", err)
	}
	return fromSkillRows(rows), nil
}

func (r *skillRepo) ByStatus(ctx context.Context, status skillgraph.Status) ([]skillgraph.Skill, error) {
	rows, err := r.client.Skill.Query().
		Where(entskill.Status(string(status))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills by status: %w", err)
	}
	return fromSkillRows(rows), nil
}

func (r *skillRepo) ByType(ctx context.Context, skillType skillgraph.SkillType) ([]skillgraph.Skill, error) {
	rows, err := r.client.Skill.Query().
		Where(entskill.SkillType(string(skillType))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills by type: %w", err)
	}
	return fromSkillRows(rows), nil
}

func (r *skillRepo) UpdateMastery(ctx context.Context, s skillgraph.Skill) error {
	u := r.client.Skill.Update().
		Where(entskill.SkillID(s.ID)).
		SetMastery(string(s.Mastery)).
		SetStatus(string(s.Status)).
		SetPassCount(s.PassCount).
		SetFailCount(s.FailCount).
		SetConsecutivePasses(s.ConsecutivePasses)
	if s.MasteredAt != nil {
		u = u.SetMasteredAt(*s.MasteredAt)
	}
	n, err := u.Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery: %w", err)
	}
	if n == 0 {
		return &ErrNotFound{Kind: "skill", ID: s.ID}
	}
	return nil
}

func (r *skillRepo) UpdateStatus(ctx context.Context, s skillgraph.Skill) error {
	u := r.client.Skill.Update().
		Where(entskill.SkillID(s.ID)).
		SetStatus(string(s.Status))
	if s.UnlockedAt != nil {
		u = u.SetUnlockedAt(*s.UnlockedAt)
	}
	n, err := u.Save(ctx)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n == 0 {
		return &ErrNotFound{Kind: "skill", ID: s.ID}
	}
	return nil
}

func (r *skillRepo) UpdateSchedule(ctx context.Context, skillID string, weekNumber, dayInWeek, dayInQuest int) error {
	n, err := r.client.Skill.Update().
		Where(entskill.SkillID(skillID)).
		SetWeekNumber(weekNumber).
		SetDayInWeek(dayInWeek).
		SetDayInQuest(dayInQuest).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	if n == 0 {
		return &ErrNotFound{Kind: "skill", ID: skillID}
	}
	return nil
}

func fromSkillRows(rows []*ent.Skill) []skillgraph.Skill {
	result := make([]skillgraph.Skill, 0, len(rows))
	for _, row := range rows {
		result = append(result, fromSkillRow(row))
	}
	return result
}

func fromSkillRow(row *ent.Skill) skillgraph.Skill {
	return skillgraph.Skill{
		ID:                   row.SkillID,
		QuestID:              row.QuestID,
		GoalID:               row.GoalID,
		UserID:               row.UserID,
		Title:                row.Title,
		Topics:               row.Topics,
		Action:               row.Action,
		SuccessSignal:        row.SuccessSignal,
		Constraints:          row.Constraints,
		TransferScenario:     row.TransferScenario,
		EstimatedMinutes:     row.EstimatedMinutes,
		SkillType:            skillgraph.SkillType(row.SkillType),
		Depth:                row.Depth,
		Order:                row.Order,
		PrerequisiteSkillIDs: row.PrerequisiteSkillIds,
		PrerequisiteQuestIDs: row.PrerequisiteQuestIds,
		IsCompound:           row.IsCompound,
		ComponentSkillIDs:    row.ComponentSkillIds,
		WeekNumber:           row.WeekNumber,
		DayInWeek:            row.DayInWeek,
		DayInQuest:           row.DayInQuest,
		Mastery:              skillgraph.Mastery(row.Mastery),
		Status:               skillgraph.Status(row.Status),
		PassCount:            row.PassCount,
		FailCount:            row.FailCount,
		ConsecutivePasses:    row.ConsecutivePasses,
		MasteredAt:           row.MasteredAt,
		UnlockedAt:           row.UnlockedAt,
	}
}
