// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chemcat/chemcat/ent/profile"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Emoji avatar shown on the leaderboard
	Avatar string `json:"avatar,omitempty"`
	// ThemeColor holds the value of the "theme_color" field.
	ThemeColor string `json:"theme_color,omitempty"`
	// Daily XP target
	DailyGoal int `json:"daily_goal,omitempty"`
	// CompletedLessons holds the value of the "completed_lessons" field.
	CompletedLessons []string `json:"completed_lessons,omitempty"`
	// Denormalized count of completed_lessons for leaderboard ordering
	LessonsCompleted int `json:"lessons_completed,omitempty"`
	// Streak holds the value of the "streak" field.
	Streak int `json:"streak,omitempty"`
	// Calendar day of the last completion, YYYY-MM-DD, or empty
	LastCompletedDate string `json:"last_completed_date,omitempty"`
	// StreakFreezes holds the value of the "streak_freezes" field.
	StreakFreezes int `json:"streak_freezes,omitempty"`
	// EarnedBadgeIds holds the value of the "earned_badge_ids" field.
	EarnedBadgeIds []string `json:"earned_badge_ids,omitempty"`
	// Energy holds the value of the "energy" field.
	Energy int `json:"energy,omitempty"`
	// WeakTopics holds the value of the "weak_topics" field.
	WeakTopics []string `json:"weak_topics,omitempty"`
	// DailyXp holds the value of the "daily_xp" field.
	DailyXp int `json:"daily_xp,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldCompletedLessons, profile.FieldEarnedBadgeIds, profile.FieldWeakTopics:
			values[i] = new([]byte)
		case profile.FieldDailyGoal, profile.FieldLessonsCompleted, profile.FieldStreak, profile.FieldStreakFreezes, profile.FieldEnergy, profile.FieldDailyXp:
			values[i] = new(sql.NullInt64)
		case profile.FieldID, profile.FieldName, profile.FieldAvatar, profile.FieldThemeColor, profile.FieldLastCompletedDate:
			values[i] = new(sql.NullString)
		case profile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case profile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case profile.FieldAvatar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar", values[i])
			} else if value.Valid {
				_m.Avatar = value.String
			}
		case profile.FieldThemeColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme_color", values[i])
			} else if value.Valid {
				_m.ThemeColor = value.String
			}
		case profile.FieldDailyGoal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_goal", values[i])
			} else if value.Valid {
				_m.DailyGoal = int(value.Int64)
			}
		case profile.FieldCompletedLessons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_lessons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedLessons); err != nil {
					return fmt.Errorf("unmarshal field completed_lessons: %w", err)
				}
			}
		case profile.FieldLessonsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lessons_completed", values[i])
			} else if value.Valid {
				_m.LessonsCompleted = int(value.Int64)
			}
		case profile.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case profile.FieldLastCompletedDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_completed_date", values[i])
			} else if value.Valid {
				_m.LastCompletedDate = value.String
			}
		case profile.FieldStreakFreezes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_freezes", values[i])
			} else if value.Valid {
				_m.StreakFreezes = int(value.Int64)
			}
		case profile.FieldEarnedBadgeIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field earned_badge_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EarnedBadgeIds); err != nil {
					return fmt.Errorf("unmarshal field earned_badge_ids: %w", err)
				}
			}
		case profile.FieldEnergy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field energy", values[i])
			} else if value.Valid {
				_m.Energy = int(value.Int64)
			}
		case profile.FieldWeakTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakTopics); err != nil {
					return fmt.Errorf("unmarshal field weak_topics: %w", err)
				}
			}
		case profile.FieldDailyXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_xp", values[i])
			} else if value.Valid {
				_m.DailyXp = int(value.Int64)
			}
		case profile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("avatar=")
	builder.WriteString(_m.Avatar)
	builder.WriteString(", ")
	builder.WriteString("theme_color=")
	builder.WriteString(_m.ThemeColor)
	builder.WriteString(", ")
	builder.WriteString("daily_goal=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyGoal))
	builder.WriteString(", ")
	builder.WriteString("completed_lessons=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedLessons))
	builder.WriteString(", ")
	builder.WriteString("lessons_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonsCompleted))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("last_completed_date=")
	builder.WriteString(_m.LastCompletedDate)
	builder.WriteString(", ")
	builder.WriteString("streak_freezes=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakFreezes))
	builder.WriteString(", ")
	builder.WriteString("earned_badge_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.EarnedBadgeIds))
	builder.WriteString(", ")
	builder.WriteString("energy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Energy))
	builder.WriteString(", ")
	builder.WriteString("weak_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakTopics))
	builder.WriteString(", ")
	builder.WriteString("daily_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyXp))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
