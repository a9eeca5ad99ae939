package weekplan

import (
	"math/rand/v2"

	"github.com/abhisek/questline/internal/skillgraph"
)

// IdentifyReviewSkills selects previous-quest skills to revisit as warmups
// this week. Direct prerequisites and compound components of the week's
// skills are always collected first; mastered previous-quest skills beyond
// those are sampled at the configured probability for spaced repetition.
// The deduplicated list is truncated to the configured cap, in discovery
// order unless shuffling is enabled.
func (g *Generator) IdentifyReviewSkills(weekSkills, previousQuestSkills []skillgraph.Skill) []skillgraph.Skill {
	if len(previousQuestSkills) == 0 {
		return nil
	}

	prevByID := make(map[string]skillgraph.Skill, len(previousQuestSkills))
	for _, s := range previousQuestSkills {
		prevByID[s.ID] = s
	}

	seen := make(map[string]bool)
	var picks []skillgraph.Skill

	add := func(id string) {
		if seen[id] {
			return
		}
		if s, ok := prevByID[id]; ok {
			seen[id] = true
			picks = append(picks, s)
		}
	}

	// Dependency-driven picks: anything this week directly builds on.
	for _, ws := range weekSkills {
		for _, prereqID := range ws.PrerequisiteSkillIDs {
			add(prereqID)
		}
		for _, componentID := range ws.ComponentSkillIDs {
			add(componentID)
		}
	}

	// Spaced-repetition sampling over the remaining mastered skills.
	for _, s := range previousQuestSkills {
		if seen[s.ID] || s.Mastery != skillgraph.MasteryMastered {
			continue
		}
		if g.rng.Float64() < g.cfg.ReviewSampleProbability {
			seen[s.ID] = true
			picks = append(picks, s)
		}
	}

	if g.cfg.ShuffleReviews {
		g.rng.Shuffle(len(picks), func(i, j int) {
			picks[i], picks[j] = picks[j], picks[i]
		})
	}

	if len(picks) > g.cfg.MaxReviewSkillsPerWeek {
		picks = picks[:g.cfg.MaxReviewSkillsPerWeek]
	}
	return picks
}

// newDefaultRand returns the generator's fallback randomness source.
func newDefaultRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
