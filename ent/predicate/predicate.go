// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DrillEvent is the predicate function for drillevent builders.
type DrillEvent func(*sql.Selector)

// OutcomeEvent is the predicate function for outcomeevent builders.
type OutcomeEvent func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// WeekPlan is the predicate function for weekplan builders.
type WeekPlan func(*sql.Selector)
