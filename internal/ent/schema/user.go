package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("username").
			NotEmpty().
			Unique().
			MaxLen(50),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.String("full_name").
			NotEmpty().
			MaxLen(120),
		field.Time("last_login_at").
			Optional().
			Nillable(),
		// Soft delete marker; NULL means the account is active.
		field.Time("deleted_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reminders", Reminder.Type),
		edge.To("contacts", Contact.Type),
		edge.To("tickets", Ticket.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
		index.Fields("deleted_at"),
	}
}
