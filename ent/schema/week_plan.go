package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeekPlan is one generated week of scheduled practice. Day plans are stored
// as a JSON document; aggregates are incremented in place by the completion
// flow.
type WeekPlan struct {
	ent.Schema
}

func (WeekPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").Unique().NotEmpty(),
		field.String("goal_id").NotEmpty(),
		field.String("user_id").Optional(),
		field.String("quest_id").NotEmpty(),

		field.Int("week_number"),
		field.Int("week_in_quest"),
		field.Bool("is_first_week_of_quest").Default(false),
		field.Bool("is_last_week_of_quest").Default(false),

		field.JSON("days", []map[string]any{}).Optional(),
		field.JSON("scheduled_skill_ids", []string{}).Optional(),
		field.JSON("carry_forward_skill_ids", []string{}).Optional(),
		field.JSON("reviews_from_quest_ids", []string{}).Optional(),
		field.JSON("builds_on_skill_ids", []string{}).Optional(),

		field.Text("theme").Optional(),
		field.Text("weekly_competence").Optional(),

		field.Int("drills_completed").Default(0),
		field.Int("drills_passed").Default(0),
		field.Int("drills_failed").Default(0),
		field.Int("drills_skipped").Default(0),
		field.Int("skills_mastered").Default(0),
		field.Float("pass_rate").Default(0),

		field.String("status").Default("pending"),
		field.Time("start_date"),
		field.Time("created_at"),
	}
}

func (WeekPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal_id"),
		index.Fields("quest_id"),
		// The owning store enforces at most one active plan per goal.
		index.Fields("goal_id", "status"),
	}
}
