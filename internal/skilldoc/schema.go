package skilldoc

// documentSchema is the JSON schema for decomposition documents produced by
// the upstream goal planner. Payloads are validated against it before any
// field is trusted.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"goal_id": map[string]any{"type": "string", "minLength": 1},
		"user_id": map[string]any{"type": "string", "minLength": 1},
		"quests": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"quest_id":      map[string]any{"type": "string", "minLength": 1},
					"title":         map[string]any{"type": "string"},
					"practice_days": map[string]any{"type": "integer", "minimum": 1},
					"skills": map[string]any{
						"type":  "array",
						"items": skillSchema,
					},
				},
				"required":             []any{"quest_id", "practice_days", "skills"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"goal_id", "user_id", "quests"},
	"additionalProperties": false,
}

var skillSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":                map[string]any{"type": "string", "minLength": 1},
		"title":             map[string]any{"type": "string", "minLength": 1},
		"topics":            map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"action":            map[string]any{"type": "string"},
		"success_signal":    map[string]any{"type": "string"},
		"constraints":       map[string]any{"type": "string"},
		"transfer_scenario": map[string]any{"type": "string"},
		"estimated_minutes": map[string]any{"type": "integer", "minimum": 0},
		"skill_type": map[string]any{
			"type": "string",
			"enum": []any{"foundation", "building", "compound", "synthesis"},
		},
		"depth":                  map[string]any{"type": "integer", "minimum": 0},
		"order":                  map[string]any{"type": "integer", "minimum": 0},
		"prerequisite_skill_ids": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"prerequisite_quest_ids": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"component_skill_ids":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
	"required":             []any{"id", "title", "skill_type"},
	"additionalProperties": false,
}
