// Package drill composes a single day's structured practice session from a
// scheduled skill: optional warmup review, required main work, optional
// stretch challenge, under a daily time budget.
package drill

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/questline/internal/skillgraph"
	"github.com/abhisek/questline/internal/weekplan"
)

// retryMultipliers scales main-section time by attempt number. Attempts past
// the table reuse the final entry.
var retryMultipliers = map[int]float64{
	1: 1.0,
	2: 1.25,
	3: 1.5,
}

const maxRetryMultiplier = 1.5

// Engine generates daily drills. Section composition is pure; only the
// clock is injected state.
type Engine struct {
	cfg Config

	// Now stamps CreatedAt; injectable for deterministic tests.
	Now func() time.Time
}

// NewEngine creates a drill engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg, Now: time.Now}
}

// Context carries the inputs for one day's drill.
type Context struct {
	GoalID     string
	UserID     string
	WeekPlanID string

	Day   weekplan.DayPlan
	Skill skillgraph.Skill

	// ComponentSkills are the resolved components of a compound skill.
	ComponentSkills []skillgraph.Skill

	// PreviousQuestSkills resolve the day's review skill. A review ID that
	// resolves to nothing simply produces no warmup.
	PreviousQuestSkills []skillgraph.Skill
}

// Generate composes the day's drill. It never fails: missing review data
// drops the warmup, tight budgets floor the main section and attach a
// warning instead of erroring.
func (e *Engine) Generate(ctx Context) *DailyDrill {
	d := &DailyDrill{
		ID:            uuid.NewString(),
		GoalID:        ctx.GoalID,
		UserID:        ctx.UserID,
		QuestID:       ctx.Skill.QuestID,
		WeekPlanID:    ctx.WeekPlanID,
		SkillID:       ctx.Skill.ID,
		DayNumber:     ctx.Day.DayNumber,
		AttemptNumber: 1,
		CreatedAt:     e.Now(),
	}

	if review, ok := resolveReview(ctx); ok {
		d.Warmup = e.buildWarmup(review, ctx.Skill.QuestID)
	}

	available := e.cfg.DailyMinutes
	if d.Warmup != nil {
		available -= e.cfg.WarmupMinutes
	}
	if e.cfg.EnableStretch {
		available -= e.cfg.StretchMinutes
	}

	d.Main = e.buildMain(ctx.Skill, ctx.ComponentSkills, available)

	if e.cfg.EnableStretch {
		warmup := 0
		if d.Warmup != nil {
			warmup = d.Warmup.EstimatedMinutes
		}
		if e.cfg.DailyMinutes-warmup-d.Main.EstimatedMinutes >= e.cfg.StretchMinutes {
			d.Stretch = e.buildStretch(ctx.Skill)
		}
	}

	d.BuildsOnQuestIDs = buildsOnQuests(ctx)
	d.sumMinutes()
	if d.TotalMinutes > e.cfg.DailyMinutes {
		d.Warnings = append(d.Warnings,
			fmt.Sprintf("drill runs %d minutes against a %d minute budget", d.TotalMinutes, e.cfg.DailyMinutes))
	}

	return d
}

// AdaptForRetry produces a fresh drill for re-attempting a failed one: main
// section only, scaled time, and attempt-specific scaffolding. The failed
// drill is referenced, never mutated.
func (e *Engine) AdaptForRetry(failed *DailyDrill, skill skillgraph.Skill, failureReason string) (*DailyDrill, error) {
	retryCount := failed.RetryCount + 1
	if retryCount > e.cfg.MaxRetryAttempts {
		return nil, &ErrMaxRetriesExceeded{SkillID: skill.ID, RetryCount: retryCount, Max: e.cfg.MaxRetryAttempts}
	}

	attempt := failed.AttemptNumber + 1
	guidance := scaffoldingHint(attempt)

	d := &DailyDrill{
		ID:                    uuid.NewString(),
		GoalID:                failed.GoalID,
		UserID:                failed.UserID,
		QuestID:               failed.QuestID,
		WeekPlanID:            failed.WeekPlanID,
		SkillID:               skill.ID,
		DayNumber:             failed.DayNumber,
		AttemptNumber:         attempt,
		RetryCount:            retryCount,
		PreviousFailureReason: failureReason,
		RecoveryGuidance:      guidance,
		PreviousDrillID:       failed.ID,
		BuildsOnQuestIDs:      failed.BuildsOnQuestIDs,
		CreatedAt:             e.Now(),
	}

	main := e.buildMain(skill, nil, e.cfg.DailyMinutes)
	main.EstimatedMinutes = scaleMinutes(skill.EstimatedMinutes, attempt)
	main.Action = fmt.Sprintf("Last attempt: %s %s %s", sentence(failureReason), guidance, sentence(skill.Action))
	d.Main = main
	d.sumMinutes()

	return d, nil
}

func scaleMinutes(minutes, attempt int) int {
	mult, ok := retryMultipliers[attempt]
	if !ok {
		mult = maxRetryMultiplier
	}
	return int(math.Round(float64(minutes) * mult))
}

// scaffoldingHint returns the attempt-specific recovery guidance.
func scaffoldingHint(attempt int) string {
	switch attempt {
	case 2:
		return "Break the skill into smaller steps and practice each one alone before combining them."
	case 3:
		return "Review the fundamentals first, then work through it step by step."
	default:
		return "Simplify: strip the task down and focus on the core concept."
	}
}

func resolveReview(ctx Context) (skillgraph.Skill, bool) {
	if ctx.Day.ReviewSkillID == "" {
		return skillgraph.Skill{}, false
	}
	for _, s := range ctx.PreviousQuestSkills {
		if s.ID == ctx.Day.ReviewSkillID {
			return s, true
		}
	}
	return skillgraph.Skill{}, false
}

// buildsOnQuests unions the quests this drill draws on: prerequisite quests,
// component skills' quests, and a cross-quest review source. The skill's own
// quest is excluded.
func buildsOnQuests(ctx Context) []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(questID string) {
		if questID == "" || questID == ctx.Skill.QuestID || seen[questID] {
			return
		}
		seen[questID] = true
		ids = append(ids, questID)
	}

	for _, questID := range ctx.Skill.PrerequisiteQuestIDs {
		add(questID)
	}
	for _, c := range ctx.ComponentSkills {
		add(c.QuestID)
	}
	if ctx.Day.IsFromPreviousQuest {
		add(ctx.Day.ReviewQuestID)
	}
	return ids
}
