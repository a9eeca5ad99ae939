// Package skilldoc parses and validates decomposition documents from the
// upstream goal planner into skill graph inputs.
package skilldoc

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/questline/internal/skillgraph"
)

// ErrInvalidDocument indicates a payload that failed schema validation or
// decoding.
type ErrInvalidDocument struct {
	Err error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid decomposition document: %v", e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

// Document is a validated decomposition: one goal broken into quests and
// their skills.
type Document struct {
	GoalID string  `json:"goal_id"`
	UserID string  `json:"user_id"`
	Quests []Quest `json:"quests"`
}

// Quest is one multi-week grouping of skills with a practice-day duration.
type Quest struct {
	QuestID      string      `json:"quest_id"`
	Title        string      `json:"title"`
	PracticeDays int         `json:"practice_days"`
	Skills       []SkillSpec `json:"skills"`
}

// SkillSpec is the wire form of one skill.
type SkillSpec struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Topics               []string `json:"topics"`
	Action               string   `json:"action"`
	SuccessSignal        string   `json:"success_signal"`
	Constraints          string   `json:"constraints"`
	TransferScenario     string   `json:"transfer_scenario"`
	EstimatedMinutes     int      `json:"estimated_minutes"`
	SkillType            string   `json:"skill_type"`
	Depth                int      `json:"depth"`
	Order                int      `json:"order"`
	PrerequisiteSkillIDs []string `json:"prerequisite_skill_ids"`
	PrerequisiteQuestIDs []string `json:"prerequisite_quest_ids"`
	ComponentSkillIDs    []string `json:"component_skill_ids"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the compiled document schema, compiling once per process.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://decomposition.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Parse validates raw JSON against the decomposition schema and decodes it.
func Parse(raw []byte) (*Document, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile decomposition schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}
	return &doc, nil
}

// Skills flattens the document into graph-ready skills. Skills with no
// prerequisites start available; everything else starts locked. The result
// passes through skill graph validation, so structural defects in the
// document (cycles, duplicates) surface here.
func (d *Document) Skills() ([]skillgraph.Skill, error) {
	var skills []skillgraph.Skill
	for _, q := range d.Quests {
		for _, spec := range q.Skills {
			s := skillgraph.Skill{
				ID:                   spec.ID,
				QuestID:              q.QuestID,
				GoalID:               d.GoalID,
				UserID:               d.UserID,
				Title:                spec.Title,
				Topics:               spec.Topics,
				Action:               spec.Action,
				SuccessSignal:        spec.SuccessSignal,
				Constraints:          spec.Constraints,
				TransferScenario:     spec.TransferScenario,
				EstimatedMinutes:     spec.EstimatedMinutes,
				SkillType:            skillgraph.SkillType(spec.SkillType),
				Depth:                spec.Depth,
				Order:                spec.Order,
				PrerequisiteSkillIDs: spec.PrerequisiteSkillIDs,
				PrerequisiteQuestIDs: spec.PrerequisiteQuestIDs,
				ComponentSkillIDs:    spec.ComponentSkillIDs,
				IsCompound:           len(spec.ComponentSkillIDs) > 0,
				Mastery:              skillgraph.MasteryNotStarted,
			}
			if s.HasPrerequisites() {
				s.Status = skillgraph.StatusLocked
			} else {
				s.Status = skillgraph.StatusAvailable
			}
			skills = append(skills, s)
		}
	}

	if _, err := skillgraph.New(skills); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}
	return skills, nil
}
