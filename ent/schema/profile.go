package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is a learner profile: identity plus the persistent
// gamification state. The local learner and any followed profiles all
// live in this table.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("avatar").
			Default("🐱").
			Comment("Emoji avatar shown on the leaderboard"),
		field.String("theme_color").
			Default("teal"),
		field.Int("daily_goal").
			Default(50).
			Comment("Daily XP target"),
		field.JSON("completed_lessons", []string{}).
			Optional(),
		field.Int("lessons_completed").
			Default(0).
			Comment("Denormalized count of completed_lessons for leaderboard ordering"),
		field.Int("streak").
			Default(0),
		field.String("last_completed_date").
			Default("").
			Comment("Calendar day of the last completion, YYYY-MM-DD, or empty"),
		field.Int("streak_freezes").
			Default(1),
		field.JSON("earned_badge_ids", []string{}).
			Optional(),
		field.Int("energy").
			Default(0),
		field.JSON("weak_topics", []string{}).
			Optional(),
		field.Int("daily_xp").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("streak", "lessons_completed"),
	}
}
