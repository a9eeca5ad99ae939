package skillgraph

import (
	"fmt"
	"strings"
)

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
func validateSkills(skills []Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))

	// Check for duplicate IDs.
	for _, s := range skills {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
	}

	// Component references must resolve. Prerequisites may point at skills
	// from earlier quests that are simply not in this set; those are legal
	// (they resolve at unlock time), so only same-set shape checks apply.
	for _, s := range skills {
		if s.IsCompound && len(s.ComponentSkillIDs) == 0 {
			errs = append(errs, fmt.Sprintf("compound skill %q has no component skills", s.ID))
		}
		for _, prereqID := range s.PrerequisiteSkillIDs {
			if prereqID == s.ID {
				errs = append(errs, fmt.Sprintf("skill %q lists itself as a prerequisite", s.ID))
			}
		}
	}

	// Check for cycles among in-set edges using Kahn's algorithm.
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		deg := 0
		for _, prereqID := range s.PrerequisiteSkillIDs {
			if !idSet[prereqID] {
				continue
			}
			deg++
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
		inDegree[s.ID] = deg
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(skills) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root (unless the set is empty).
	if len(skills) > 0 {
		hasRoot := false
		for _, s := range skills {
			if len(s.PrerequisiteSkillIDs) == 0 {
				hasRoot = true
				break
			}
		}
		if !hasRoot {
			errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
		}
	}

	for _, s := range skills {
		if s.EstimatedMinutes < 0 {
			errs = append(errs, fmt.Sprintf("skill %q: EstimatedMinutes must be >= 0, got %d", s.ID, s.EstimatedMinutes))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
