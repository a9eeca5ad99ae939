package skillgraph

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds a skill DAG with precomputed indices. Graphs are built by the
// caller from a snapshot of skills and are never mutated in place; services
// that change skill state rebuild or patch their own copies.
type Graph struct {
	skills     []Skill
	byID       map[string]*Skill
	byQuest    map[string][]Skill
	roots      []Skill
	dependents map[string][]string
	topoOrder  []Skill
	topoIndex  map[string]int
}

// New constructs a Graph from a slice of skills, building all indices
// including topological order (Kahn's algorithm). It returns an error if the
// skill set fails structural validation (duplicates, dangling references,
// cycles).
func New(skills []Skill) (*Graph, error) {
	if err := validateSkills(skills); err != nil {
		return nil, err
	}
	return build(skills), nil
}

// build constructs the graph without validation. Callers must have
// validated the skill set first; a cyclic input would produce a partial
// topological order.
func build(skills []Skill) *Graph {
	g := &Graph{
		skills:     slices.Clone(skills),
		byID:       make(map[string]*Skill, len(skills)),
		byQuest:    make(map[string][]Skill),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
	}

	for i := range g.skills {
		g.byID[g.skills[i].ID] = &g.skills[i]
	}

	// Reverse edges (dependents).
	for i := range g.skills {
		for _, prereqID := range g.skills[i].PrerequisiteSkillIDs {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.skills[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm). Prerequisites from other quests
	// may be absent from the set; they contribute no in-degree here.
	inDegree := make(map[string]int, len(skills))
	for i := range g.skills {
		deg := 0
		for _, prereqID := range g.skills[i].PrerequisiteSkillIDs {
			if _, ok := g.byID[prereqID]; ok {
				deg++
			}
		}
		inDegree[g.skills[i].ID] = deg
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering.
	sort.Strings(queue)

	var topoOrder []Skill
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topoOrder = append(topoOrder, *g.byID[id])

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			if _, ok := inDegree[depID]; !ok {
				continue
			}
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	g.topoOrder = topoOrder
	for i, s := range g.topoOrder {
		g.topoIndex[s.ID] = i
	}

	for i := range g.skills {
		if len(g.skills[i].PrerequisiteSkillIDs) == 0 {
			g.roots = append(g.roots, g.skills[i])
		}
	}

	// Group by quest, sorted by type weight, then order, then topo position.
	questGroups := make(map[string][]Skill)
	for i := range g.skills {
		s := g.skills[i]
		questGroups[s.QuestID] = append(questGroups[s.QuestID], s)
	}
	for questID, qs := range questGroups {
		sorted := slices.Clone(qs)
		sort.SliceStable(sorted, func(i, j int) bool {
			if wi, wj := sorted[i].SkillType.Weight(), sorted[j].SkillType.Weight(); wi != wj {
				return wi < wj
			}
			if sorted[i].Order != sorted[j].Order {
				return sorted[i].Order < sorted[j].Order
			}
			return g.topoIndex[sorted[i].ID] < g.topoIndex[sorted[j].ID]
		})
		g.byQuest[questID] = sorted
	}

	return g
}

// Get returns a skill by ID, or an error if not found.
func (g *Graph) Get(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// All returns all skills in the graph.
func (g *Graph) All() []Skill {
	return slices.Clone(g.skills)
}

// ByQuest returns all skills in a quest, ordered by type weight then order.
func (g *Graph) ByQuest(questID string) []Skill {
	return slices.Clone(g.byQuest[questID])
}

// Roots returns all skills with no prerequisites.
func (g *Graph) Roots() []Skill {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite skills present in the graph.
// Prerequisites referencing skills outside the graph are skipped.
func (g *Graph) Prerequisites(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.PrerequisiteSkillIDs))
	for _, prereqID := range s.PrerequisiteSkillIDs {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns skills that directly depend on the given skill ID.
func (g *Graph) Dependents(id string) []Skill {
	depIDs := g.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.byID[depID]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// TopologicalOrder returns all skills in a valid topological order.
func (g *Graph) TopologicalOrder() []Skill {
	return slices.Clone(g.topoOrder)
}
