// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAvatar holds the string denoting the avatar field in the database.
	FieldAvatar = "avatar"
	// FieldThemeColor holds the string denoting the theme_color field in the database.
	FieldThemeColor = "theme_color"
	// FieldDailyGoal holds the string denoting the daily_goal field in the database.
	FieldDailyGoal = "daily_goal"
	// FieldCompletedLessons holds the string denoting the completed_lessons field in the database.
	FieldCompletedLessons = "completed_lessons"
	// FieldLessonsCompleted holds the string denoting the lessons_completed field in the database.
	FieldLessonsCompleted = "lessons_completed"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldLastCompletedDate holds the string denoting the last_completed_date field in the database.
	FieldLastCompletedDate = "last_completed_date"
	// FieldStreakFreezes holds the string denoting the streak_freezes field in the database.
	FieldStreakFreezes = "streak_freezes"
	// FieldEarnedBadgeIds holds the string denoting the earned_badge_ids field in the database.
	FieldEarnedBadgeIds = "earned_badge_ids"
	// FieldEnergy holds the string denoting the energy field in the database.
	FieldEnergy = "energy"
	// FieldWeakTopics holds the string denoting the weak_topics field in the database.
	FieldWeakTopics = "weak_topics"
	// FieldDailyXp holds the string denoting the daily_xp field in the database.
	FieldDailyXp = "daily_xp"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldAvatar,
	FieldThemeColor,
	FieldDailyGoal,
	FieldCompletedLessons,
	FieldLessonsCompleted,
	FieldStreak,
	FieldLastCompletedDate,
	FieldStreakFreezes,
	FieldEarnedBadgeIds,
	FieldEnergy,
	FieldWeakTopics,
	FieldDailyXp,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultAvatar holds the default value on creation for the "avatar" field.
	DefaultAvatar string
	// DefaultThemeColor holds the default value on creation for the "theme_color" field.
	DefaultThemeColor string
	// DefaultDailyGoal holds the default value on creation for the "daily_goal" field.
	DefaultDailyGoal int
	// DefaultLessonsCompleted holds the default value on creation for the "lessons_completed" field.
	DefaultLessonsCompleted int
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultLastCompletedDate holds the default value on creation for the "last_completed_date" field.
	DefaultLastCompletedDate string
	// DefaultStreakFreezes holds the default value on creation for the "streak_freezes" field.
	DefaultStreakFreezes int
	// DefaultEnergy holds the default value on creation for the "energy" field.
	DefaultEnergy int
	// DefaultDailyXp holds the default value on creation for the "daily_xp" field.
	DefaultDailyXp int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAvatar orders the results by the avatar field.
func ByAvatar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatar, opts...).ToFunc()
}

// ByThemeColor orders the results by the theme_color field.
func ByThemeColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThemeColor, opts...).ToFunc()
}

// ByDailyGoal orders the results by the daily_goal field.
func ByDailyGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyGoal, opts...).ToFunc()
}

// ByLessonsCompleted orders the results by the lessons_completed field.
func ByLessonsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonsCompleted, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByLastCompletedDate orders the results by the last_completed_date field.
func ByLastCompletedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCompletedDate, opts...).ToFunc()
}

// ByStreakFreezes orders the results by the streak_freezes field.
func ByStreakFreezes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakFreezes, opts...).ToFunc()
}

// ByEnergy orders the results by the energy field.
func ByEnergy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnergy, opts...).ToFunc()
}

// ByDailyXp orders the results by the daily_xp field.
func ByDailyXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyXp, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
