// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/chemcat/chemcat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// Avatar applies equality check predicate on the "avatar" field. It's identical to AvatarEQ.
func Avatar(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAvatar, v))
}

// ThemeColor applies equality check predicate on the "theme_color" field. It's identical to ThemeColorEQ.
func ThemeColor(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldThemeColor, v))
}

// DailyGoal applies equality check predicate on the "daily_goal" field. It's identical to DailyGoalEQ.
func DailyGoal(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyGoal, v))
}

// LessonsCompleted applies equality check predicate on the "lessons_completed" field. It's identical to LessonsCompletedEQ.
func LessonsCompleted(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLessonsCompleted, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreak, v))
}

// LastCompletedDate applies equality check predicate on the "last_completed_date" field. It's identical to LastCompletedDateEQ.
func LastCompletedDate(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastCompletedDate, v))
}

// StreakFreezes applies equality check predicate on the "streak_freezes" field. It's identical to StreakFreezesEQ.
func StreakFreezes(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakFreezes, v))
}

// Energy applies equality check predicate on the "energy" field. It's identical to EnergyEQ.
func Energy(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldEnergy, v))
}

// DailyXp applies equality check predicate on the "daily_xp" field. It's identical to DailyXpEQ.
func DailyXp(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyXp, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldName, v))
}

// AvatarEQ applies the EQ predicate on the "avatar" field.
func AvatarEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAvatar, v))
}

// AvatarNEQ applies the NEQ predicate on the "avatar" field.
func AvatarNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldAvatar, v))
}

// AvatarIn applies the In predicate on the "avatar" field.
func AvatarIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldAvatar, vs...))
}

// AvatarNotIn applies the NotIn predicate on the "avatar" field.
func AvatarNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldAvatar, vs...))
}

// AvatarGT applies the GT predicate on the "avatar" field.
func AvatarGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldAvatar, v))
}

// AvatarGTE applies the GTE predicate on the "avatar" field.
func AvatarGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldAvatar, v))
}

// AvatarLT applies the LT predicate on the "avatar" field.
func AvatarLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldAvatar, v))
}

// AvatarLTE applies the LTE predicate on the "avatar" field.
func AvatarLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldAvatar, v))
}

// AvatarContains applies the Contains predicate on the "avatar" field.
func AvatarContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldAvatar, v))
}

// AvatarHasPrefix applies the HasPrefix predicate on the "avatar" field.
func AvatarHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldAvatar, v))
}

// AvatarHasSuffix applies the HasSuffix predicate on the "avatar" field.
func AvatarHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldAvatar, v))
}

// AvatarEqualFold applies the EqualFold predicate on the "avatar" field.
func AvatarEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldAvatar, v))
}

// AvatarContainsFold applies the ContainsFold predicate on the "avatar" field.
func AvatarContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldAvatar, v))
}

// ThemeColorEQ applies the EQ predicate on the "theme_color" field.
func ThemeColorEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldThemeColor, v))
}

// ThemeColorNEQ applies the NEQ predicate on the "theme_color" field.
func ThemeColorNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldThemeColor, v))
}

// ThemeColorIn applies the In predicate on the "theme_color" field.
func ThemeColorIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldThemeColor, vs...))
}

// ThemeColorNotIn applies the NotIn predicate on the "theme_color" field.
func ThemeColorNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldThemeColor, vs...))
}

// ThemeColorGT applies the GT predicate on the "theme_color" field.
func ThemeColorGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldThemeColor, v))
}

// ThemeColorGTE applies the GTE predicate on the "theme_color" field.
func ThemeColorGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldThemeColor, v))
}

// ThemeColorLT applies the LT predicate on the "theme_color" field.
func ThemeColorLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldThemeColor, v))
}

// ThemeColorLTE applies the LTE predicate on the "theme_color" field.
func ThemeColorLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldThemeColor, v))
}

// ThemeColorContains applies the Contains predicate on the "theme_color" field.
func ThemeColorContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldThemeColor, v))
}

// ThemeColorHasPrefix applies the HasPrefix predicate on the "theme_color" field.
func ThemeColorHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldThemeColor, v))
}

// ThemeColorHasSuffix applies the HasSuffix predicate on the "theme_color" field.
func ThemeColorHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldThemeColor, v))
}

// ThemeColorEqualFold applies the EqualFold predicate on the "theme_color" field.
func ThemeColorEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldThemeColor, v))
}

// ThemeColorContainsFold applies the ContainsFold predicate on the "theme_color" field.
func ThemeColorContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldThemeColor, v))
}

// DailyGoalEQ applies the EQ predicate on the "daily_goal" field.
func DailyGoalEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyGoal, v))
}

// DailyGoalNEQ applies the NEQ predicate on the "daily_goal" field.
func DailyGoalNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldDailyGoal, v))
}

// DailyGoalIn applies the In predicate on the "daily_goal" field.
func DailyGoalIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldDailyGoal, vs...))
}

// DailyGoalNotIn applies the NotIn predicate on the "daily_goal" field.
func DailyGoalNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldDailyGoal, vs...))
}

// DailyGoalGT applies the GT predicate on the "daily_goal" field.
func DailyGoalGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldDailyGoal, v))
}

// DailyGoalGTE applies the GTE predicate on the "daily_goal" field.
func DailyGoalGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldDailyGoal, v))
}

// DailyGoalLT applies the LT predicate on the "daily_goal" field.
func DailyGoalLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldDailyGoal, v))
}

// DailyGoalLTE applies the LTE predicate on the "daily_goal" field.
func DailyGoalLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldDailyGoal, v))
}

// CompletedLessonsIsNil applies the IsNil predicate on the "completed_lessons" field.
func CompletedLessonsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldCompletedLessons))
}

// CompletedLessonsNotNil applies the NotNil predicate on the "completed_lessons" field.
func CompletedLessonsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldCompletedLessons))
}

// LessonsCompletedEQ applies the EQ predicate on the "lessons_completed" field.
func LessonsCompletedEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedNEQ applies the NEQ predicate on the "lessons_completed" field.
func LessonsCompletedNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedIn applies the In predicate on the "lessons_completed" field.
func LessonsCompletedIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedNotIn applies the NotIn predicate on the "lessons_completed" field.
func LessonsCompletedNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedGT applies the GT predicate on the "lessons_completed" field.
func LessonsCompletedGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLessonsCompleted, v))
}

// LessonsCompletedGTE applies the GTE predicate on the "lessons_completed" field.
func LessonsCompletedGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLessonsCompleted, v))
}

// LessonsCompletedLT applies the LT predicate on the "lessons_completed" field.
func LessonsCompletedLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLessonsCompleted, v))
}

// LessonsCompletedLTE applies the LTE predicate on the "lessons_completed" field.
func LessonsCompletedLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLessonsCompleted, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldStreak, v))
}

// LastCompletedDateEQ applies the EQ predicate on the "last_completed_date" field.
func LastCompletedDateEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastCompletedDate, v))
}

// LastCompletedDateNEQ applies the NEQ predicate on the "last_completed_date" field.
func LastCompletedDateNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLastCompletedDate, v))
}

// LastCompletedDateIn applies the In predicate on the "last_completed_date" field.
func LastCompletedDateIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLastCompletedDate, vs...))
}

// LastCompletedDateNotIn applies the NotIn predicate on the "last_completed_date" field.
func LastCompletedDateNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLastCompletedDate, vs...))
}

// LastCompletedDateGT applies the GT predicate on the "last_completed_date" field.
func LastCompletedDateGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLastCompletedDate, v))
}

// LastCompletedDateGTE applies the GTE predicate on the "last_completed_date" field.
func LastCompletedDateGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLastCompletedDate, v))
}

// LastCompletedDateLT applies the LT predicate on the "last_completed_date" field.
func LastCompletedDateLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLastCompletedDate, v))
}

// LastCompletedDateLTE applies the LTE predicate on the "last_completed_date" field.
func LastCompletedDateLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLastCompletedDate, v))
}

// LastCompletedDateContains applies the Contains predicate on the "last_completed_date" field.
func LastCompletedDateContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldLastCompletedDate, v))
}

// LastCompletedDateHasPrefix applies the HasPrefix predicate on the "last_completed_date" field.
func LastCompletedDateHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldLastCompletedDate, v))
}

// LastCompletedDateHasSuffix applies the HasSuffix predicate on the "last_completed_date" field.
func LastCompletedDateHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldLastCompletedDate, v))
}

// LastCompletedDateEqualFold applies the EqualFold predicate on the "last_completed_date" field.
func LastCompletedDateEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldLastCompletedDate, v))
}

// LastCompletedDateContainsFold applies the ContainsFold predicate on the "last_completed_date" field.
func LastCompletedDateContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldLastCompletedDate, v))
}

// StreakFreezesEQ applies the EQ predicate on the "streak_freezes" field.
func StreakFreezesEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakFreezes, v))
}

// StreakFreezesNEQ applies the NEQ predicate on the "streak_freezes" field.
func StreakFreezesNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldStreakFreezes, v))
}

// StreakFreezesIn applies the In predicate on the "streak_freezes" field.
func StreakFreezesIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldStreakFreezes, vs...))
}

// StreakFreezesNotIn applies the NotIn predicate on the "streak_freezes" field.
func StreakFreezesNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldStreakFreezes, vs...))
}

// StreakFreezesGT applies the GT predicate on the "streak_freezes" field.
func StreakFreezesGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldStreakFreezes, v))
}

// StreakFreezesGTE applies the GTE predicate on the "streak_freezes" field.
func StreakFreezesGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldStreakFreezes, v))
}

// StreakFreezesLT applies the LT predicate on the "streak_freezes" field.
func StreakFreezesLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldStreakFreezes, v))
}

// StreakFreezesLTE applies the LTE predicate on the "streak_freezes" field.
func StreakFreezesLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldStreakFreezes, v))
}

// EarnedBadgeIdsIsNil applies the IsNil predicate on the "earned_badge_ids" field.
func EarnedBadgeIdsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldEarnedBadgeIds))
}

// EarnedBadgeIdsNotNil applies the NotNil predicate on the "earned_badge_ids" field.
func EarnedBadgeIdsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldEarnedBadgeIds))
}

// EnergyEQ applies the EQ predicate on the "energy" field.
func EnergyEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldEnergy, v))
}

// EnergyNEQ applies the NEQ predicate on the "energy" field.
func EnergyNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldEnergy, v))
}

// EnergyIn applies the In predicate on the "energy" field.
func EnergyIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldEnergy, vs...))
}

// EnergyNotIn applies the NotIn predicate on the "energy" field.
func EnergyNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldEnergy, vs...))
}

// EnergyGT applies the GT predicate on the "energy" field.
func EnergyGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldEnergy, v))
}

// EnergyGTE applies the GTE predicate on the "energy" field.
func EnergyGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldEnergy, v))
}

// EnergyLT applies the LT predicate on the "energy" field.
func EnergyLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldEnergy, v))
}

// EnergyLTE applies the LTE predicate on the "energy" field.
func EnergyLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldEnergy, v))
}

// WeakTopicsIsNil applies the IsNil predicate on the "weak_topics" field.
func WeakTopicsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldWeakTopics))
}

// WeakTopicsNotNil applies the NotNil predicate on the "weak_topics" field.
func WeakTopicsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldWeakTopics))
}

// DailyXpEQ applies the EQ predicate on the "daily_xp" field.
func DailyXpEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDailyXp, v))
}

// DailyXpNEQ applies the NEQ predicate on the "daily_xp" field.
func DailyXpNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldDailyXp, v))
}

// DailyXpIn applies the In predicate on the "daily_xp" field.
func DailyXpIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldDailyXp, vs...))
}

// DailyXpNotIn applies the NotIn predicate on the "daily_xp" field.
func DailyXpNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldDailyXp, vs...))
}

// DailyXpGT applies the GT predicate on the "daily_xp" field.
func DailyXpGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldDailyXp, v))
}

// DailyXpGTE applies the GTE predicate on the "daily_xp" field.
func DailyXpGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldDailyXp, v))
}

// DailyXpLT applies the LT predicate on the "daily_xp" field.
func DailyXpLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldDailyXp, v))
}

// DailyXpLTE applies the LTE predicate on the "daily_xp" field.
func DailyXpLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldDailyXp, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
