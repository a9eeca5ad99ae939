package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is embedded by every event entity. It stamps each event with a
// slot from the store's global sequence counter, giving one total order over
// outcome and drill events regardless of table.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global position across all event tables"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC time the event was recorded"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	// sequence is already indexed by its unique constraint; timestamp
	// backs chronological scans.
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
