package drill

import (
	"fmt"
	"strings"

	"github.com/abhisek/questline/internal/skillgraph"
)

// buildWarmup produces a lightweight review section from a previous-quest
// skill. Fixed duration; always optional.
func (e *Engine) buildWarmup(review skillgraph.Skill, ownQuestID string) *Section {
	return &Section{
		Type:                SectionWarmup,
		Title:               fmt.Sprintf("Warm up: %s", review.Title),
		Action:              fmt.Sprintf("Quick refresher — %s Keep it light; this is recall, not new learning.", sentence(review.Action)),
		PassSignal:          review.SuccessSignal,
		Constraint:          review.Constraints,
		EstimatedMinutes:    e.cfg.WarmupMinutes,
		IsOptional:          true,
		SourceSkillID:       review.ID,
		SourceQuestID:       review.QuestID,
		IsFromPreviousQuest: review.QuestID != ownQuestID,
	}
}

// buildMain produces the required main section. availableMinutes already has
// warmup and stretch reservations subtracted.
func (e *Engine) buildMain(skill skillgraph.Skill, components []skillgraph.Skill, availableMinutes int) Section {
	minutes := skill.EstimatedMinutes
	if minutes > availableMinutes {
		minutes = availableMinutes
	}
	if minutes < e.cfg.MinMainMinutes {
		minutes = e.cfg.MinMainMinutes
	}

	action := skill.Action
	if skill.IsCompound && len(components) > 0 {
		names := make([]string, 0, len(components))
		for _, c := range components {
			names = append(names, c.Title)
		}
		action = fmt.Sprintf("%s This integrates: %s.", sentence(action), strings.Join(names, ", "))
	}

	return Section{
		Type:             SectionMain,
		Title:            skill.Title,
		Action:           action,
		PassSignal:       skill.SuccessSignal,
		Constraint:       skill.Constraints,
		EstimatedMinutes: minutes,
		SourceSkillID:    skill.ID,
		SourceQuestID:    skill.QuestID,
	}
}

// buildStretch produces the optional challenge section. The skill's own
// transfer scenario wins; otherwise a canned variation is selected by skill
// type, so the same skill always stretches the same way.
func (e *Engine) buildStretch(skill skillgraph.Skill) *Section {
	action := skill.TransferScenario
	if action == "" {
		action = stretchVariation(skill)
	}
	return &Section{
		Type:             SectionStretch,
		Title:            fmt.Sprintf("Stretch: %s", skill.Title),
		Action:           action,
		PassSignal:       "Attempted honestly; success is optional here.",
		EstimatedMinutes: e.cfg.StretchMinutes,
		IsOptional:       true,
		SourceSkillID:    skill.ID,
		SourceQuestID:    skill.QuestID,
	}
}

// stretchVariation returns the canned challenge template for a skill type.
func stretchVariation(skill skillgraph.Skill) string {
	switch skill.SkillType {
	case skillgraph.TypeFoundation:
		return fmt.Sprintf("Try %q in a context you have not practiced it in before. Change the setting, the materials, or the starting point.", skill.Title)
	case skillgraph.TypeBuilding:
		return fmt.Sprintf("Combine %q with one skill you mastered earlier and run them back to back without a break.", skill.Title)
	case skillgraph.TypeCompound:
		return fmt.Sprintf("Teach %q back: explain out loud, step by step, how you do it — as if to someone who has never tried.", skill.Title)
	case skillgraph.TypeSynthesis:
		return fmt.Sprintf("Speed challenge: run %q again at 80%% of the time it took you, without losing accuracy.", skill.Title)
	default:
		return fmt.Sprintf("Repeat %q with one variable changed.", skill.Title)
	}
}

// sentence normalizes text for embedding mid-template: trimmed, ending with
// a period.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "."
	}
	return s
}
