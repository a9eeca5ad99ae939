package drill

import "time"

// SectionType identifies a drill section's role.
type SectionType string

const (
	SectionWarmup  SectionType = "warmup"
	SectionMain    SectionType = "main"
	SectionStretch SectionType = "stretch"
)

// Section is one block of a daily drill: an action with a pass signal and a
// time estimate, plus provenance back to the skill that produced it.
type Section struct {
	Type             SectionType
	Title            string
	Action           string
	PassSignal       string
	Constraint       string
	EstimatedMinutes int
	IsOptional       bool

	SourceSkillID       string
	SourceQuestID       string
	IsFromPreviousQuest bool
}

// DailyDrill is the generated practice content for one scheduled day.
// Drills are immutable once generated; a retry produces a new drill
// referencing the failed one rather than mutating it.
type DailyDrill struct {
	ID         string
	GoalID     string
	UserID     string
	QuestID    string
	WeekPlanID string
	SkillID    string
	DayNumber  int

	Warmup  *Section
	Main    Section
	Stretch *Section

	// TotalMinutes is the sum of present sections' estimates. It may exceed
	// the daily budget, in which case Warnings says so; the drill is still
	// usable.
	TotalMinutes int
	Warnings     []string

	BuildsOnQuestIDs []string

	AttemptNumber         int
	RetryCount            int
	PreviousFailureReason string
	RecoveryGuidance      string
	PreviousDrillID       string

	CreatedAt time.Time
}

// sumMinutes recomputes TotalMinutes from the present sections.
func (d *DailyDrill) sumMinutes() {
	total := d.Main.EstimatedMinutes
	if d.Warmup != nil {
		total += d.Warmup.EstimatedMinutes
	}
	if d.Stretch != nil {
		total += d.Stretch.EstimatedMinutes
	}
	d.TotalMinutes = total
}
