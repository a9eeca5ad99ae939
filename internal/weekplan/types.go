package weekplan

import (
	"time"

	"github.com/abhisek/questline/internal/skillgraph"
)

// PlanStatus is the lifecycle state of a week or day plan.
type PlanStatus string

const (
	StatusPending   PlanStatus = "pending"
	StatusActive    PlanStatus = "active"
	StatusCompleted PlanStatus = "completed"
)

// DayPlan assigns at most one skill to a single practice day.
// An empty SkillID marks a catch-up day with no new material.
type DayPlan struct {
	DayNumber     int       `json:"day_number"` // 1..daysPerWeek
	DayInQuest    int       `json:"day_in_quest"`
	ScheduledDate time.Time `json:"scheduled_date"`

	SkillID   string               `json:"skill_id"`
	SkillType skillgraph.SkillType `json:"skill_type"`

	// Warmup sourcing. ReviewQuestID differs from the day skill's quest
	// when the review comes from an earlier quest.
	ReviewSkillID       string `json:"review_skill_id"`
	ReviewQuestID       string `json:"review_quest_id"`
	IsFromPreviousQuest bool   `json:"is_from_previous_quest"`

	Status PlanStatus `json:"status"`
}

// IsCatchUp reports whether the day has no assigned skill.
func (d *DayPlan) IsCatchUp() bool {
	return d.SkillID == ""
}

// WeekPlan is one week of scheduled practice within one quest.
type WeekPlan struct {
	ID      string
	GoalID  string
	UserID  string
	QuestID string

	WeekNumber         int // global across the goal
	WeekInQuest        int // local to the quest, 1-based
	IsFirstWeekOfQuest bool
	IsLastWeekOfQuest  bool

	Days                 []DayPlan
	ScheduledSkillIDs    []string
	CarryForwardSkillIDs []string
	ReviewsFromQuestIDs  []string
	BuildsOnSkillIDs     []string

	Theme            string
	WeeklyCompetence string

	// Aggregates, incremented by the daily-completion flow.
	// Never recomputed from raw drill history.
	DrillsCompleted int
	DrillsPassed    int
	DrillsFailed    int
	DrillsSkipped   int
	SkillsMastered  int
	PassRate        float64

	Status    PlanStatus
	StartDate time.Time
	CreatedAt time.Time
}

// RecordDrillResult applies one resolved drill to the week's aggregates.
func (w *WeekPlan) RecordDrillResult(passed, skipped, masteredSkill bool) {
	w.DrillsCompleted++
	switch {
	case skipped:
		w.DrillsSkipped++
	case passed:
		w.DrillsPassed++
	default:
		w.DrillsFailed++
	}
	if masteredSkill {
		w.SkillsMastered++
	}
	if resolved := w.DrillsPassed + w.DrillsFailed; resolved > 0 {
		w.PassRate = float64(w.DrillsPassed) / float64(resolved)
	}
}
