package mastery

import "github.com/abhisek/questline/internal/skillgraph"

// Outcome is the result of one drill attempt on a skill.
type Outcome string

const (
	OutcomePass Outcome = "pass"
	OutcomeFail Outcome = "fail"
)

// Thresholds configure the mastery state machine.
type Thresholds struct {
	// Practicing is the pass count at which a not-started skill enters
	// practicing. Any single pass qualifies by default.
	Practicing int

	// Mastered is the total pass count required for mastery.
	Mastered int

	// Consecutive is the unbroken pass streak additionally required for
	// mastery. A recent fail resets the streak, so a high total alone
	// never promotes.
	Consecutive int

	// MilestonePercent is the quest mastery ratio at which the quest's
	// milestone becomes available.
	MilestonePercent float64
}

// DefaultThresholds returns the standard progression thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Practicing:       1,
		Mastered:         3,
		Consecutive:      2,
		MilestonePercent: 0.8,
	}
}

// OutcomeResult reports the full effect of recording one outcome, including
// the unlock cascade it triggered. The unlocked list reflects graph state as
// of immediately after this single outcome was applied.
type OutcomeResult struct {
	SkillID string
	Outcome Outcome

	PrevMastery skillgraph.Mastery
	NewMastery  skillgraph.Mastery
	PrevStatus  skillgraph.Status
	NewStatus   skillgraph.Status

	PassCount         int
	FailCount         int
	ConsecutivePasses int

	JustMastered       bool
	UnlockedSkillIDs   []string
	MilestoneAvailable bool
}
