package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Skill is the persisted progression state for one skill. Content and graph
// position are written once at decomposition time; mastery counters and
// status are the only columns mutated afterward.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").Unique().NotEmpty(),
		field.String("quest_id").NotEmpty(),
		field.String("goal_id").NotEmpty(),
		field.String("user_id").NotEmpty(),

		field.String("title").NotEmpty(),
		field.JSON("topics", []string{}).Optional(),
		field.Text("action").Optional(),
		field.Text("success_signal").Optional(),
		field.Text("constraints").Optional(),
		field.Text("transfer_scenario").Optional(),
		field.Int("estimated_minutes").Default(0),

		field.String("skill_type").NotEmpty(),
		field.Int("depth").Default(0),
		field.Int("order").Default(0),
		field.JSON("prerequisite_skill_ids", []string{}).Optional(),
		field.JSON("prerequisite_quest_ids", []string{}).Optional(),
		field.Bool("is_compound").Default(false),
		field.JSON("component_skill_ids", []string{}).Optional(),

		field.Int("week_number").Default(0),
		field.Int("day_in_week").Default(0),
		field.Int("day_in_quest").Default(0),

		field.String("mastery").Default("not_started"),
		field.String("status").Default("locked"),
		field.Int("pass_count").Default(0),
		field.Int("fail_count").Default(0),
		field.Int("consecutive_passes").Default(0),
		field.Time("mastered_at").Optional().Nillable(),
		field.Time("unlocked_at").Optional().Nillable(),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quest_id"),
		index.Fields("goal_id"),
		index.Fields("status"),
		index.Fields("skill_type"),
	}
}
