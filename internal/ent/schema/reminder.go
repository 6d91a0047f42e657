package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Reminder holds the schema definition for the Reminder entity.
type Reminder struct {
	ent.Schema
}

// Fields of the Reminder.
func (Reminder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("title").
			NotEmpty().
			MaxLen(200),
		field.String("description").
			Optional().
			MaxLen(1000),
		field.Enum("type").
			Values("medication", "appointment", "exam", "general"),
		field.Time("scheduled_date"),
		// Wall-clock time of day, "HH:MM".
		field.String("time").
			MaxLen(5),
		field.Bool("active").
			Default(true),
		field.Bool("recurring").
			Default(false),
		field.Enum("recurring_type").
			Values("daily", "weekly", "monthly").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Reminder.
func (Reminder) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("reminders").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the Reminder.
func (Reminder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "scheduled_date"),
		index.Fields("user_id", "active"),
	}
}
