// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/chemcat/chemcat/ent/predicate"
	"github.com/chemcat/chemcat/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *ProfileUpdate) SetAvatar(v string) *ProfileUpdate {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAvatar(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// SetThemeColor sets the "theme_color" field.
func (_u *ProfileUpdate) SetThemeColor(v string) *ProfileUpdate {
	_u.mutation.SetThemeColor(v)
	return _u
}

// SetNillableThemeColor sets the "theme_color" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableThemeColor(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetThemeColor(*v)
	}
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *ProfileUpdate) SetDailyGoal(v int) *ProfileUpdate {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDailyGoal(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *ProfileUpdate) AddDailyGoal(v int) *ProfileUpdate {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// SetCompletedLessons sets the "completed_lessons" field.
func (_u *ProfileUpdate) SetCompletedLessons(v []string) *ProfileUpdate {
	_u.mutation.SetCompletedLessons(v)
	return _u
}

// AppendCompletedLessons appends value to the "completed_lessons" field.
func (_u *ProfileUpdate) AppendCompletedLessons(v []string) *ProfileUpdate {
	_u.mutation.AppendCompletedLessons(v)
	return _u
}

// ClearCompletedLessons clears the value of the "completed_lessons" field.
func (_u *ProfileUpdate) ClearCompletedLessons() *ProfileUpdate {
	_u.mutation.ClearCompletedLessons()
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *ProfileUpdate) SetLessonsCompleted(v int) *ProfileUpdate {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLessonsCompleted(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *ProfileUpdate) AddLessonsCompleted(v int) *ProfileUpdate {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProfileUpdate) SetStreak(v int) *ProfileUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStreak(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProfileUpdate) AddStreak(v int) *ProfileUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastCompletedDate sets the "last_completed_date" field.
func (_u *ProfileUpdate) SetLastCompletedDate(v string) *ProfileUpdate {
	_u.mutation.SetLastCompletedDate(v)
	return _u
}

// SetNillableLastCompletedDate sets the "last_completed_date" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastCompletedDate(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetLastCompletedDate(*v)
	}
	return _u
}

// SetStreakFreezes sets the "streak_freezes" field.
func (_u *ProfileUpdate) SetStreakFreezes(v int) *ProfileUpdate {
	_u.mutation.ResetStreakFreezes()
	_u.mutation.SetStreakFreezes(v)
	return _u
}

// SetNillableStreakFreezes sets the "streak_freezes" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStreakFreezes(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStreakFreezes(*v)
	}
	return _u
}

// AddStreakFreezes adds value to the "streak_freezes" field.
func (_u *ProfileUpdate) AddStreakFreezes(v int) *ProfileUpdate {
	_u.mutation.AddStreakFreezes(v)
	return _u
}

// SetEarnedBadgeIds sets the "earned_badge_ids" field.
func (_u *ProfileUpdate) SetEarnedBadgeIds(v []string) *ProfileUpdate {
	_u.mutation.SetEarnedBadgeIds(v)
	return _u
}

// AppendEarnedBadgeIds appends value to the "earned_badge_ids" field.
func (_u *ProfileUpdate) AppendEarnedBadgeIds(v []string) *ProfileUpdate {
	_u.mutation.AppendEarnedBadgeIds(v)
	return _u
}

// ClearEarnedBadgeIds clears the value of the "earned_badge_ids" field.
func (_u *ProfileUpdate) ClearEarnedBadgeIds() *ProfileUpdate {
	_u.mutation.ClearEarnedBadgeIds()
	return _u
}

// SetEnergy sets the "energy" field.
func (_u *ProfileUpdate) SetEnergy(v int) *ProfileUpdate {
	_u.mutation.ResetEnergy()
	_u.mutation.SetEnergy(v)
	return _u
}

// SetNillableEnergy sets the "energy" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableEnergy(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetEnergy(*v)
	}
	return _u
}

// AddEnergy adds value to the "energy" field.
func (_u *ProfileUpdate) AddEnergy(v int) *ProfileUpdate {
	_u.mutation.AddEnergy(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *ProfileUpdate) SetWeakTopics(v []string) *ProfileUpdate {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *ProfileUpdate) AppendWeakTopics(v []string) *ProfileUpdate {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *ProfileUpdate) ClearWeakTopics() *ProfileUpdate {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetDailyXp sets the "daily_xp" field.
func (_u *ProfileUpdate) SetDailyXp(v int) *ProfileUpdate {
	_u.mutation.ResetDailyXp()
	_u.mutation.SetDailyXp(v)
	return _u
}

// SetNillableDailyXp sets the "daily_xp" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDailyXp(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetDailyXp(*v)
	}
	return _u
}

// AddDailyXp adds value to the "daily_xp" field.
func (_u *ProfileUpdate) AddDailyXp(v int) *ProfileUpdate {
	_u.mutation.AddDailyXp(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(profile.FieldAvatar, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThemeColor(); ok {
		_spec.SetField(profile.FieldThemeColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(profile.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(profile.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedLessons(); ok {
		_spec.SetField(profile.FieldCompletedLessons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedLessons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldCompletedLessons, value)
		})
	}
	if _u.mutation.CompletedLessonsCleared() {
		_spec.ClearField(profile.FieldCompletedLessons, field.TypeJSON)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCompletedDate(); ok {
		_spec.SetField(profile.FieldLastCompletedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakFreezes(); ok {
		_spec.SetField(profile.FieldStreakFreezes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakFreezes(); ok {
		_spec.AddField(profile.FieldStreakFreezes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarnedBadgeIds(); ok {
		_spec.SetField(profile.FieldEarnedBadgeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEarnedBadgeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldEarnedBadgeIds, value)
		})
	}
	if _u.mutation.EarnedBadgeIdsCleared() {
		_spec.ClearField(profile.FieldEarnedBadgeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Energy(); ok {
		_spec.SetField(profile.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnergy(); ok {
		_spec.AddField(profile.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(profile.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(profile.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.DailyXp(); ok {
		_spec.SetField(profile.FieldDailyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyXp(); ok {
		_spec.AddField(profile.FieldDailyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *ProfileUpdateOne) SetAvatar(v string) *ProfileUpdateOne {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAvatar(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// SetThemeColor sets the "theme_color" field.
func (_u *ProfileUpdateOne) SetThemeColor(v string) *ProfileUpdateOne {
	_u.mutation.SetThemeColor(v)
	return _u
}

// SetNillableThemeColor sets the "theme_color" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableThemeColor(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetThemeColor(*v)
	}
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *ProfileUpdateOne) SetDailyGoal(v int) *ProfileUpdateOne {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDailyGoal(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *ProfileUpdateOne) AddDailyGoal(v int) *ProfileUpdateOne {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// SetCompletedLessons sets the "completed_lessons" field.
func (_u *ProfileUpdateOne) SetCompletedLessons(v []string) *ProfileUpdateOne {
	_u.mutation.SetCompletedLessons(v)
	return _u
}

// AppendCompletedLessons appends value to the "completed_lessons" field.
func (_u *ProfileUpdateOne) AppendCompletedLessons(v []string) *ProfileUpdateOne {
	_u.mutation.AppendCompletedLessons(v)
	return _u
}

// ClearCompletedLessons clears the value of the "completed_lessons" field.
func (_u *ProfileUpdateOne) ClearCompletedLessons() *ProfileUpdateOne {
	_u.mutation.ClearCompletedLessons()
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *ProfileUpdateOne) SetLessonsCompleted(v int) *ProfileUpdateOne {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLessonsCompleted(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *ProfileUpdateOne) AddLessonsCompleted(v int) *ProfileUpdateOne {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProfileUpdateOne) SetStreak(v int) *ProfileUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStreak(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProfileUpdateOne) AddStreak(v int) *ProfileUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastCompletedDate sets the "last_completed_date" field.
func (_u *ProfileUpdateOne) SetLastCompletedDate(v string) *ProfileUpdateOne {
	_u.mutation.SetLastCompletedDate(v)
	return _u
}

// SetNillableLastCompletedDate sets the "last_completed_date" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastCompletedDate(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastCompletedDate(*v)
	}
	return _u
}

// SetStreakFreezes sets the "streak_freezes" field.
func (_u *ProfileUpdateOne) SetStreakFreezes(v int) *ProfileUpdateOne {
	_u.mutation.ResetStreakFreezes()
	_u.mutation.SetStreakFreezes(v)
	return _u
}

// SetNillableStreakFreezes sets the "streak_freezes" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStreakFreezes(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStreakFreezes(*v)
	}
	return _u
}

// AddStreakFreezes adds value to the "streak_freezes" field.
func (_u *ProfileUpdateOne) AddStreakFreezes(v int) *ProfileUpdateOne {
	_u.mutation.AddStreakFreezes(v)
	return _u
}

// SetEarnedBadgeIds sets the "earned_badge_ids" field.
func (_u *ProfileUpdateOne) SetEarnedBadgeIds(v []string) *ProfileUpdateOne {
	_u.mutation.SetEarnedBadgeIds(v)
	return _u
}

// AppendEarnedBadgeIds appends value to the "earned_badge_ids" field.
func (_u *ProfileUpdateOne) AppendEarnedBadgeIds(v []string) *ProfileUpdateOne {
	_u.mutation.AppendEarnedBadgeIds(v)
	return _u
}

// ClearEarnedBadgeIds clears the value of the "earned_badge_ids" field.
func (_u *ProfileUpdateOne) ClearEarnedBadgeIds() *ProfileUpdateOne {
	_u.mutation.ClearEarnedBadgeIds()
	return _u
}

// SetEnergy sets the "energy" field.
func (_u *ProfileUpdateOne) SetEnergy(v int) *ProfileUpdateOne {
	_u.mutation.ResetEnergy()
	_u.mutation.SetEnergy(v)
	return _u
}

// SetNillableEnergy sets the "energy" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableEnergy(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetEnergy(*v)
	}
	return _u
}

// AddEnergy adds value to the "energy" field.
func (_u *ProfileUpdateOne) AddEnergy(v int) *ProfileUpdateOne {
	_u.mutation.AddEnergy(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *ProfileUpdateOne) SetWeakTopics(v []string) *ProfileUpdateOne {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *ProfileUpdateOne) AppendWeakTopics(v []string) *ProfileUpdateOne {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *ProfileUpdateOne) ClearWeakTopics() *ProfileUpdateOne {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetDailyXp sets the "daily_xp" field.
func (_u *ProfileUpdateOne) SetDailyXp(v int) *ProfileUpdateOne {
	_u.mutation.ResetDailyXp()
	_u.mutation.SetDailyXp(v)
	return _u
}

// SetNillableDailyXp sets the "daily_xp" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDailyXp(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetDailyXp(*v)
	}
	return _u
}

// AddDailyXp adds value to the "daily_xp" field.
func (_u *ProfileUpdateOne) AddDailyXp(v int) *ProfileUpdateOne {
	_u.mutation.AddDailyXp(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(profile.FieldAvatar, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThemeColor(); ok {
		_spec.SetField(profile.FieldThemeColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(profile.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(profile.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedLessons(); ok {
		_spec.SetField(profile.FieldCompletedLessons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedLessons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldCompletedLessons, value)
		})
	}
	if _u.mutation.CompletedLessonsCleared() {
		_spec.ClearField(profile.FieldCompletedLessons, field.TypeJSON)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(profile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCompletedDate(); ok {
		_spec.SetField(profile.FieldLastCompletedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakFreezes(); ok {
		_spec.SetField(profile.FieldStreakFreezes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakFreezes(); ok {
		_spec.AddField(profile.FieldStreakFreezes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarnedBadgeIds(); ok {
		_spec.SetField(profile.FieldEarnedBadgeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEarnedBadgeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldEarnedBadgeIds, value)
		})
	}
	if _u.mutation.EarnedBadgeIdsCleared() {
		_spec.ClearField(profile.FieldEarnedBadgeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Energy(); ok {
		_spec.SetField(profile.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnergy(); ok {
		_spec.AddField(profile.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(profile.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(profile.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.DailyXp(); ok {
		_spec.SetField(profile.FieldDailyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyXp(); ok {
		_spec.AddField(profile.FieldDailyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
