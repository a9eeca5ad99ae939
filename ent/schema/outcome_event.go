package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutcomeEvent records one drill pass/fail outcome and the mastery
// transition it caused, for audit and analytics.
type OutcomeEvent struct {
	ent.Schema
}

func (OutcomeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (OutcomeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").NotEmpty(),
		field.String("quest_id").Optional(),
		field.String("outcome").NotEmpty(),
		field.String("from_mastery").NotEmpty(),
		field.String("to_mastery").NotEmpty(),
		field.Bool("just_mastered").Default(false),
		field.JSON("unlocked_skills", []string{}).Optional(),
		field.String("drill_id").Optional(),
	}
}

func (OutcomeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
	}
}
