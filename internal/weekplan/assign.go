package weekplan

import (
	"fmt"
	"sort"

	"github.com/abhisek/questline/internal/skillgraph"
)

// AssignSkillsToDays orders candidate skills for day slots: a stable sort by
// skill type weight then Order, followed by a prerequisite-first traversal so
// no skill lands on an earlier day than an in-set prerequisite. The result
// has exactly daysAvailable entries; slots beyond the skill count are nil
// (catch-up days). Skills beyond the day count are left for a later week.
func AssignSkillsToDays(skills []skillgraph.Skill, daysAvailable int) ([]*skillgraph.Skill, error) {
	if daysAvailable < 0 {
		return nil, fmt.Errorf("negative daysAvailable: %d", daysAvailable)
	}

	ordered := orderForScheduling(skills)

	days := make([]*skillgraph.Skill, daysAvailable)
	for i := 0; i < daysAvailable && i < len(ordered); i++ {
		s := ordered[i]
		days[i] = &s
	}
	return days, nil
}

// assignWithCarryForward fills the leading day slots with carried-over
// skills, then orders new material into whatever slots remain. The two sets
// are ordered independently so a carried skill keeps its slot even when the
// new material outweighs it.
func assignWithCarryForward(carry, fresh []skillgraph.Skill, daysAvailable int) ([]*skillgraph.Skill, error) {
	if daysAvailable < 0 {
		return nil, fmt.Errorf("negative daysAvailable: %d", daysAvailable)
	}

	days := make([]*skillgraph.Skill, daysAvailable)
	i := 0
	for _, s := range orderForScheduling(carry) {
		if i >= daysAvailable {
			return days, nil
		}
		days[i] = &s
		i++
	}

	rest, err := AssignSkillsToDays(fresh, daysAvailable-i)
	if err != nil {
		return nil, err
	}
	copy(days[i:], rest)
	return days, nil
}

// orderForScheduling produces the dependency-respecting scheduling order for
// a candidate set. Each skill's in-set prerequisites are visited before the
// skill itself; a visited set memoizes emission so a skill reachable via
// several paths appears once, and an in-progress set breaks prerequisite
// cycles instead of recursing forever.
func orderForScheduling(skills []skillgraph.Skill) []skillgraph.Skill {
	sorted := make([]skillgraph.Skill, len(skills))
	copy(sorted, skills)
	sort.SliceStable(sorted, func(i, j int) bool {
		if wi, wj := sorted[i].SkillType.Weight(), sorted[j].SkillType.Weight(); wi != wj {
			return wi < wj
		}
		return sorted[i].Order < sorted[j].Order
	})

	byID := make(map[string]skillgraph.Skill, len(sorted))
	for _, s := range sorted {
		byID[s.ID] = s
	}

	visited := make(map[string]bool, len(sorted))
	inProgress := make(map[string]bool)
	var result []skillgraph.Skill

	var visit func(s skillgraph.Skill)
	visit = func(s skillgraph.Skill) {
		if visited[s.ID] || inProgress[s.ID] {
			return
		}
		inProgress[s.ID] = true
		for _, prereqID := range s.PrerequisiteSkillIDs {
			if prereq, ok := byID[prereqID]; ok {
				visit(prereq)
			}
		}
		delete(inProgress, s.ID)
		visited[s.ID] = true
		result = append(result, s)
	}

	for _, s := range sorted {
		visit(s)
	}
	return result
}
