package mastery

import "github.com/abhisek/questline/internal/skillgraph"

// Summary aggregates mastery levels across a skill set.
type Summary struct {
	Total      int
	NotStarted int
	Practicing int
	Mastered   int

	NotStartedPercent float64
	PracticingPercent float64
	MasteredPercent   float64
}

// Summarize counts skills by mastery level. Pure; mutates nothing.
func Summarize(skills []skillgraph.Skill) Summary {
	sum := Summary{Total: len(skills)}
	for _, sk := range skills {
		switch sk.Mastery {
		case skillgraph.MasteryPracticing:
			sum.Practicing++
		case skillgraph.MasteryMastered:
			sum.Mastered++
		default:
			sum.NotStarted++
		}
	}
	if sum.Total > 0 {
		total := float64(sum.Total)
		sum.NotStartedPercent = float64(sum.NotStarted) / total
		sum.PracticingPercent = float64(sum.Practicing) / total
		sum.MasteredPercent = float64(sum.Mastered) / total
	}
	return sum
}

// QuestMasteryPercent returns the mastered ratio for one quest in [0, 1].
// Synthesis skills are excluded from the denominator; a quest with no
// countable skills reports 0.
func QuestMasteryPercent(questID string, skills []skillgraph.Skill) float64 {
	mastered, total := 0, 0
	for _, sk := range skills {
		if sk.QuestID != questID || !sk.CountsTowardMastery() {
			continue
		}
		total++
		if sk.Mastery == skillgraph.MasteryMastered {
			mastered++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(mastered) / float64(total)
}
