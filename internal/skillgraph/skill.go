package skillgraph

import "time"

// SkillType classifies a skill's role in the dependency graph.
// The ordering weight drives scheduling: foundations come first,
// synthesis skills close out a quest.
type SkillType string

const (
	TypeFoundation SkillType = "foundation"
	TypeBuilding   SkillType = "building"
	TypeCompound   SkillType = "compound"
	TypeSynthesis  SkillType = "synthesis"
)

// AllSkillTypes returns all skill types in scheduling order.
func AllSkillTypes() []SkillType {
	return []SkillType{TypeFoundation, TypeBuilding, TypeCompound, TypeSynthesis}
}

// Weight returns the scheduling weight for a skill type (0-3).
// Unknown types sort after synthesis.
func (t SkillType) Weight() int {
	switch t {
	case TypeFoundation:
		return 0
	case TypeBuilding:
		return 1
	case TypeCompound:
		return 2
	case TypeSynthesis:
		return 3
	default:
		return 4
	}
}

// Mastery is a skill's progression level, driven by pass/fail history.
type Mastery string

const (
	MasteryNotStarted Mastery = "not_started"
	MasteryPracticing Mastery = "practicing"
	MasteryMastered   Mastery = "mastered"
)

// Status is a skill's availability relative to its prerequisites.
type Status string

const (
	StatusLocked     Status = "locked"
	StatusAvailable  Status = "available"
	StatusInProgress Status = "in_progress"
	StatusMastered   Status = "mastered"
)

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusAvailable:
		return "Available"
	case StatusInProgress:
		return "In Progress"
	case StatusMastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}

// Skill is an atomic, practiceable unit of competence: one action with a
// pass/fail success signal, positioned in a quest's dependency graph.
type Skill struct {
	ID      string
	QuestID string
	GoalID  string
	UserID  string

	Title            string
	Topics           []string
	Action           string
	SuccessSignal    string
	Constraints      string
	TransferScenario string
	EstimatedMinutes int

	SkillType            SkillType
	Depth                int
	Order                int
	PrerequisiteSkillIDs []string
	PrerequisiteQuestIDs []string
	IsCompound           bool
	ComponentSkillIDs    []string

	// Scheduled position, written by the week plan generator.
	WeekNumber int
	DayInWeek  int
	DayInQuest int

	Mastery           Mastery
	Status            Status
	PassCount         int
	FailCount         int
	ConsecutivePasses int
	MasteredAt        *time.Time
	UnlockedAt        *time.Time
}

// PrimaryTopic returns the first topic tag, or empty if untagged.
func (s *Skill) PrimaryTopic() string {
	if len(s.Topics) == 0 {
		return ""
	}
	return s.Topics[0]
}

// HasPrerequisites reports whether the skill depends on other skills.
func (s *Skill) HasPrerequisites() bool {
	return len(s.PrerequisiteSkillIDs) > 0
}

// CountsTowardMastery reports whether the skill participates in quest
// mastery-percentage calculations. Synthesis skills are the capstone,
// not a building block, and are excluded.
func (s *Skill) CountsTowardMastery() bool {
	return s.SkillType != TypeSynthesis
}
