package store

import (
	"context"

	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/weekplan"
)

// SkillRepo is the skill lookup and mutation contract the progression
// services consume. Content and graph position are written once via Create;
// only mastery counters and status mutate afterward.
type SkillRepo interface {
	// Create persists new skills from a decomposition.
	Create(ctx context.Context, skills []skillgraph.Skill) error

	// Get returns one skill, or ErrNotFound.
	Get(ctx context.Context, skillID string) (skillgraph.Skill, error)

	// ByQuest returns all skills in a quest.
	ByQuest(ctx context.Context, questID string) ([]skillgraph.Skill, error)

	// ByGoal returns all skills in a goal.
	ByGoal(ctx context.Context, goalID string) ([]skillgraph.Skill, error)

	// ByStatus returns all skills with the given status.
	ByStatus(ctx context.Context, status skillgraph.Status) ([]skillgraph.Skill, error)

	// ByType returns all skills of the given type.
	ByType(ctx context.Context, skillType skillgraph.SkillType) ([]skillgraph.Skill, error)

	// UpdateMastery writes a skill's mastery level, counters, and
	// mastered-at stamp.
	UpdateMastery(ctx context.Context, s skillgraph.Skill) error

	// UpdateStatus writes a skill's status and unlocked-at stamp.
	UpdateStatus(ctx context.Context, s skillgraph.Skill) error

	// UpdateSchedule writes a skill's scheduled position.
	UpdateSchedule(ctx context.Context, skillID string, weekNumber, dayInWeek, dayInQuest int) error
}

// WeekPlanRepo persists generated week plans and their aggregates.
type WeekPlanRepo interface {
	// Save inserts or fully replaces a week plan.
	Save(ctx context.Context, plan *weekplan.WeekPlan) error

	// Get returns one plan, or ErrNotFound.
	Get(ctx context.Context, planID string) (*weekplan.WeekPlan, error)

	// ByGoal returns all plans for a goal ordered by week number.
	ByGoal(ctx context.Context, goalID string) ([]*weekplan.WeekPlan, error)

	// Active returns the goal's single active plan, or ErrNotFound.
	Active(ctx context.Context, goalID string) (*weekplan.WeekPlan, error)

	// SetStatus transitions a plan's lifecycle status.
	SetStatus(ctx context.Context, planID string, status weekplan.PlanStatus) error
}

// OutcomeEventData captures one recorded drill outcome.
type OutcomeEventData struct {
	SkillID          string
	QuestID          string
	Outcome          string
	FromMastery      string
	ToMastery        string
	JustMastered     bool
	UnlockedSkillIDs []string
	DrillID          string
}

// DrillEventData captures one generated drill.
type DrillEventData struct {
	DrillID       string
	SkillID       string
	WeekPlanID    string
	DayNumber     int
	AttemptNumber int
	RetryCount    int
	TotalMinutes  int
	Payload       map[string]any
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendOutcome records a drill outcome event.
	AppendOutcome(ctx context.Context, data OutcomeEventData) error

	// AppendDrill records a generated drill.
	AppendDrill(ctx context.Context, data DrillEventData) error

	// RetryCountForSkill returns how many drills exist for a skill on a
	// given day beyond the first attempt.
	RetryCountForSkill(ctx context.Context, skillID string, dayNumber int) (int, error)
}
