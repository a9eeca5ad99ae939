// Package weekplan turns a quest's skills into week-by-week, day-by-day
// practice schedules.
package weekplan

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/questline/internal/skillgraph"
)

// Generator builds week plans. Randomness is confined to review selection;
// everything else is deterministic for a given input.
type Generator struct {
	cfg Config
	rng *rand.Rand

	// Now stamps CreatedAt; injectable for deterministic tests.
	Now func() time.Time
}

// NewGenerator creates a Generator. rng may be nil, in which case an
// unseeded source is used; tests pass a seeded one.
func NewGenerator(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = newDefaultRand()
	}
	return &Generator{cfg: cfg, rng: rng, Now: time.Now}
}

// Context carries the inputs for generating a single week.
type Context struct {
	GoalID  string
	UserID  string
	QuestID string

	WeekNumber         int // global week index, 1-based
	WeekInQuest        int // 1-based
	IsFirstWeekOfQuest bool
	IsLastWeekOfQuest  bool

	// WeekSkills is this week's new material. CarryForwardSkills were
	// scheduled in a prior week but not completed; they take day slots
	// ahead of new material.
	WeekSkills         []skillgraph.Skill
	CarryForwardSkills []skillgraph.Skill

	// PreviousQuestSkills feed cross-quest review selection.
	PreviousQuestSkills []skillgraph.Skill

	StartDate        time.Time
	DaysAvailable    int // 0 means the configured DaysPerWeek
	DayInQuestOffset int
}

// Generate composes one week plan: carry-forward skills first, then new
// material, each day paired with at most one review skill for warmup.
func (g *Generator) Generate(ctx Context) (*WeekPlan, error) {
	days := ctx.DaysAvailable
	if days == 0 {
		days = g.cfg.DaysPerWeek
	}

	candidates := make([]skillgraph.Skill, 0, len(ctx.CarryForwardSkills)+len(ctx.WeekSkills))
	candidates = append(candidates, ctx.CarryForwardSkills...)
	candidates = append(candidates, ctx.WeekSkills...)

	assigned, err := assignWithCarryForward(ctx.CarryForwardSkills, ctx.WeekSkills, days)
	if err != nil {
		return nil, fmt.Errorf("assign skills to days: %w", err)
	}

	reviews := g.IdentifyReviewSkills(candidates, ctx.PreviousQuestSkills)

	plan := &WeekPlan{
		ID:                 uuid.NewString(),
		GoalID:             ctx.GoalID,
		UserID:             ctx.UserID,
		QuestID:            ctx.QuestID,
		WeekNumber:         ctx.WeekNumber,
		WeekInQuest:        ctx.WeekInQuest,
		IsFirstWeekOfQuest: ctx.IsFirstWeekOfQuest,
		IsLastWeekOfQuest:  ctx.IsLastWeekOfQuest,
		Status:             StatusPending,
		StartDate:          NextPracticeDay(ctx.StartDate),
		CreatedAt:          g.Now(),
	}

	for _, s := range ctx.CarryForwardSkills {
		plan.CarryForwardSkillIDs = append(plan.CarryForwardSkillIDs, s.ID)
	}

	plan.Days = g.buildDays(assigned, reviews, plan.StartDate, ctx.DayInQuestOffset, ctx.QuestID)

	for _, d := range plan.Days {
		if !d.IsCatchUp() {
			plan.ScheduledSkillIDs = append(plan.ScheduledSkillIDs, d.SkillID)
		}
	}

	plan.ReviewsFromQuestIDs = reviewQuestIDs(reviews, ctx.QuestID)
	plan.BuildsOnSkillIDs = buildsOn(assigned, plan.ScheduledSkillIDs)
	plan.Theme = g.deriveTheme(assigned, ctx.IsLastWeekOfQuest)
	plan.WeeklyCompetence = g.deriveCompetence(assigned, plan.Theme)

	return plan, nil
}

// buildDays pairs each assigned skill with an optional review skill.
// Compound and building skills benefit most from warmup context, so they
// claim review skills first; leftovers go to remaining days in order.
func (g *Generator) buildDays(assigned []*skillgraph.Skill, reviews []skillgraph.Skill, startDate time.Time, dayInQuestOffset int, questID string) []DayPlan {
	days := make([]DayPlan, len(assigned))
	date := startDate
	for i, s := range assigned {
		days[i] = DayPlan{
			DayNumber:     i + 1,
			DayInQuest:    dayInQuestOffset + i + 1,
			ScheduledDate: date,
			Status:        StatusPending,
		}
		if s != nil {
			days[i].SkillID = s.ID
			days[i].SkillType = s.SkillType
		}
		date = NextPracticeDay(date.AddDate(0, 0, 1))
	}

	next := 0
	attach := func(d *DayPlan) {
		if next >= len(reviews) || d.IsCatchUp() {
			return
		}
		r := reviews[next]
		next++
		d.ReviewSkillID = r.ID
		d.ReviewQuestID = r.QuestID
		d.IsFromPreviousQuest = r.QuestID != questID
	}

	for i := range days {
		if days[i].SkillType == skillgraph.TypeCompound || days[i].SkillType == skillgraph.TypeBuilding {
			attach(&days[i])
		}
	}
	for i := range days {
		if days[i].ReviewSkillID == "" {
			attach(&days[i])
		}
	}

	return days
}

// deriveTheme picks the most frequent topic tag among scheduled skills.
// In a quest's final week the synthesis skill's title is the theme.
func (g *Generator) deriveTheme(assigned []*skillgraph.Skill, lastWeek bool) string {
	if lastWeek {
		for _, s := range assigned {
			if s != nil && s.SkillType == skillgraph.TypeSynthesis {
				return s.Title
			}
		}
	}

	counts := make(map[string]int)
	var topics []string
	for _, s := range assigned {
		if s == nil {
			continue
		}
		for _, topic := range s.Topics {
			if counts[topic] == 0 {
				topics = append(topics, topic)
			}
			counts[topic]++
		}
	}
	if len(topics) == 0 {
		return ""
	}
	// Highest count wins; discovery order breaks ties deterministically.
	sort.SliceStable(topics, func(i, j int) bool {
		return counts[topics[i]] > counts[topics[j]]
	})
	return topics[0]
}

// deriveCompetence produces the weekly competence statement from the
// scheduled skills. Deterministic text assembly, no generation.
func (g *Generator) deriveCompetence(assigned []*skillgraph.Skill, theme string) string {
	scheduled := 0
	var capstone *skillgraph.Skill
	for _, s := range assigned {
		if s == nil {
			continue
		}
		scheduled++
		if capstone == nil || s.SkillType.Weight() > capstone.SkillType.Weight() {
			capstone = s
		}
	}
	if capstone == nil {
		return "Catch up on carried-over practice."
	}
	if theme != "" {
		return fmt.Sprintf("Work through %d skills building toward %q, finishing with %q.", scheduled, theme, capstone.Title)
	}
	return fmt.Sprintf("Work through %d skills, finishing with %q.", scheduled, capstone.Title)
}

func reviewQuestIDs(reviews []skillgraph.Skill, ownQuestID string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range reviews {
		if r.QuestID == "" || r.QuestID == ownQuestID || seen[r.QuestID] {
			continue
		}
		seen[r.QuestID] = true
		ids = append(ids, r.QuestID)
	}
	return ids
}

// buildsOn collects prerequisite skill IDs outside this week's schedule.
func buildsOn(assigned []*skillgraph.Skill, scheduledIDs []string) []string {
	scheduled := make(map[string]bool, len(scheduledIDs))
	for _, id := range scheduledIDs {
		scheduled[id] = true
	}
	seen := make(map[string]bool)
	var ids []string
	for _, s := range assigned {
		if s == nil {
			continue
		}
		for _, prereqID := range s.PrerequisiteSkillIDs {
			if scheduled[prereqID] || seen[prereqID] {
				continue
			}
			seen[prereqID] = true
			ids = append(ids, prereqID)
		}
	}
	return ids
}
