package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DrillEvent records a generated drill (including retry adaptations) so the
// completion flow can resolve outcomes against it later.
type DrillEvent struct {
	ent.Schema
}

func (DrillEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DrillEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("drill_id").Unique().NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.String("week_plan_id").Optional(),
		field.Int("day_number").Default(0),
		field.Int("attempt_number").Default(1),
		field.Int("retry_count").Default(0),
		field.Int("total_minutes").Default(0),
		field.JSON("payload", map[string]any{}).
			Comment("Full drill content as JSON"),
	}
}

func (DrillEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Retry-count lookups filter on skill and day together.
		index.Fields("skill_id", "day_number"),
		index.Fields("week_plan_id"),
	}
}
