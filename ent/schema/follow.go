package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Follow is a directed edge between profiles: follower tracks followed.
type Follow struct {
	ent.Schema
}

func (Follow) Fields() []ent.Field {
	return []ent.Field{
		field.String("follower_id").
			NotEmpty(),
		field.String("followed_id").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Follow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("follower_id", "followed_id").
			Unique(),
		index.Fields("followed_id"),
	}
}
