package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the local account record. The app is single-user, so at most
// one row exists; credentials are never stored, only identity fields.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty(),
		field.String("last_name").
			NotEmpty(),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("plan").
			Default("starter").
			Comment("starter or pro"),
		field.Time("registered_at").
			Default(time.Now).
			Immutable(),
	}
}
