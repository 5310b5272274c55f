// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chemcat/chemcat/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ProfileCreate) SetName(v string) *ProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAvatar sets the "avatar" field.
func (_c *ProfileCreate) SetAvatar(v string) *ProfileCreate {
	_c.mutation.SetAvatar(v)
	return _c
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAvatar(v *string) *ProfileCreate {
	if v != nil {
		_c.SetAvatar(*v)
	}
	return _c
}

// SetThemeColor sets the "theme_color" field.
func (_c *ProfileCreate) SetThemeColor(v string) *ProfileCreate {
	_c.mutation.SetThemeColor(v)
	return _c
}

// SetNillableThemeColor sets the "theme_color" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableThemeColor(v *string) *ProfileCreate {
	if v != nil {
		_c.SetThemeColor(*v)
	}
	return _c
}

// SetDailyGoal sets the "daily_goal" field.
func (_c *ProfileCreate) SetDailyGoal(v int) *ProfileCreate {
	_c.mutation.SetDailyGoal(v)
	return _c
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableDailyGoal(v *int) *ProfileCreate {
	if v != nil {
		_c.SetDailyGoal(*v)
	}
	return _c
}

// SetCompletedLessons sets the "completed_lessons" field.
func (_c *ProfileCreate) SetCompletedLessons(v []string) *ProfileCreate {
	_c.mutation.SetCompletedLessons(v)
	return _c
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_c *ProfileCreate) SetLessonsCompleted(v int) *ProfileCreate {
	_c.mutation.SetLessonsCompleted(v)
	return _c
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLessonsCompleted(v *int) *ProfileCreate {
	if v != nil {
		_c.SetLessonsCompleted(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ProfileCreate) SetStreak(v int) *ProfileCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableStreak(v *int) *ProfileCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetLastCompletedDate sets the "last_completed_date" field.
func (_c *ProfileCreate) SetLastCompletedDate(v string) *ProfileCreate {
	_c.mutation.SetLastCompletedDate(v)
	return _c
}

// SetNillableLastCompletedDate sets the "last_completed_date" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLastCompletedDate(v *string) *ProfileCreate {
	if v != nil {
		_c.SetLastCompletedDate(*v)
	}
	return _c
}

// SetStreakFreezes sets the "streak_freezes" field.
func (_c *ProfileCreate) SetStreakFreezes(v int) *ProfileCreate {
	_c.mutation.SetStreakFreezes(v)
	return _c
}

// SetNillableStreakFreezes sets the "streak_freezes" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableStreakFreezes(v *int) *ProfileCreate {
	if v != nil {
		_c.SetStreakFreezes(*v)
	}
	return _c
}

// SetEarnedBadgeIds sets the "earned_badge_ids" field.
func (_c *ProfileCreate) SetEarnedBadgeIds(v []string) *ProfileCreate {
	_c.mutation.SetEarnedBadgeIds(v)
	return _c
}

// SetEnergy sets the "energy" field.
func (_c *ProfileCreate) SetEnergy(v int) *ProfileCreate {
	_c.mutation.SetEnergy(v)
	return _c
}

// SetNillableEnergy sets the "energy" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableEnergy(v *int) *ProfileCreate {
	if v != nil {
		_c.SetEnergy(*v)
	}
	return _c
}

// SetWeakTopics sets the "weak_topics" field.
func (_c *ProfileCreate) SetWeakTopics(v []string) *ProfileCreate {
	_c.mutation.SetWeakTopics(v)
	return _c
}

// SetDailyXp sets the "daily_xp" field.
func (_c *ProfileCreate) SetDailyXp(v int) *ProfileCreate {
	_c.mutation.SetDailyXp(v)
	return _c
}

// SetNillableDailyXp sets the "daily_xp" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableDailyXp(v *int) *ProfileCreate {
	if v != nil {
		_c.SetDailyXp(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileCreate) SetID(v string) *ProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.Avatar(); !ok {
		v := profile.DefaultAvatar
		_c.mutation.SetAvatar(v)
	}
	if _, ok := _c.mutation.ThemeColor(); !ok {
		v := profile.DefaultThemeColor
		_c.mutation.SetThemeColor(v)
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		v := profile.DefaultDailyGoal
		_c.mutation.SetDailyGoal(v)
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		v := profile.DefaultLessonsCompleted
		_c.mutation.SetLessonsCompleted(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := profile.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.LastCompletedDate(); !ok {
		v := profile.DefaultLastCompletedDate
		_c.mutation.SetLastCompletedDate(v)
	}
	if _, ok := _c.mutation.StreakFreezes(); !ok {
		v := profile.DefaultStreakFreezes
		_c.mutation.SetStreakFreezes(v)
	}
	if _, ok := _c.mutation.Energy(); !ok {
		v := profile.DefaultEnergy
		_c.mutation.SetEnergy(v)
	}
	if _, ok := _c.mutation.DailyXp(); !ok {
		v := profile.DefaultDailyXp
		_c.mutation.SetDailyXp(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Profile.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		return &ValidationError{Name: "avatar", err: errors.New(`ent: missing required field "Profile.avatar"`)}
	}
	if _, ok := _c.mutation.ThemeColor(); !ok {
		return &ValidationError{Name: "theme_color", err: errors.New(`ent: missing required field "Profile.theme_color"`)}
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		return &ValidationError{Name: "daily_goal", err: errors.New(`ent: missing required field "Profile.daily_goal"`)}
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		return &ValidationError{Name: "lessons_completed", err: errors.New(`ent: missing required field "Profile.lessons_completed"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "Profile.streak"`)}
	}
	if _, ok := _c.mutation.LastCompletedDate(); !ok {
		return &ValidationError{Name: "last_completed_date", err: errors.New(`ent: missing required field "Profile.last_completed_date"`)}
	}
	if _, ok := _c.mutation.StreakFreezes(); !ok {
		return &ValidationError{Name: "streak_freezes", err: errors.New(`ent: missing required field "Profile.streak_freezes"`)}
	}
	if _, ok := _c.mutation.Energy(); !ok {
		return &ValidationError{Name: "energy", err: errors.New(`ent: missing required field "Profile.energy"`)}
	}
	if _, ok := _c.mutation.DailyXp(); !ok {
		return &ValidationError{Name: "daily_xp", err: errors.New(`ent: missing required field "Profile.daily_xp"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := profile.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Profile.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Profile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Avatar(); ok {
		_spec.SetField(profile.FieldAvatar, field.TypeString, value)
		_node.Avatar = value
	}
	if value, ok := _c.mutation.ThemeColor(); ok {
		_spec.SetField(profile.FieldThemeColor, field.TypeString, value)
		_node.ThemeColor = value
	}
	if value, ok := _c.mutation.DailyGoal(); ok {
		_spec.SetField(profile.FieldDailyGoal, field.TypeInt, value)
		_node.DailyGoal = value
	}
	if value, ok := _c.mutation.CompletedLessons(); ok {
		_spec.SetField(profile.FieldCompletedLessons, field.TypeJSON, value)
		_node.CompletedLessons = value
	}
	if value, ok := _c.mutation.LessonsCompleted(); ok {
		_spec.SetField(profile.FieldLessonsCompleted, field.TypeInt, value)
		_node.LessonsCompleted = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(profile.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.LastCompletedDate(); ok {
		_spec.SetField(profile.FieldLastCompletedDate, field.TypeString, value)
		_node.LastCompletedDate = value
	}
	if value, ok := _c.mutation.StreakFreezes(); ok {
		_spec.SetField(profile.FieldStreakFreezes, field.TypeInt, value)
		_node.StreakFreezes = value
	}
	if value, ok := _c.mutation.EarnedBadgeIds(); ok {
		_spec.SetField(profile.FieldEarnedBadgeIds, field.TypeJSON, value)
		_node.EarnedBadgeIds = value
	}
	if value, ok := _c.mutation.Energy(); ok {
		_spec.SetField(profile.FieldEnergy, field.TypeInt, value)
		_node.Energy = value
	}
	if value, ok := _c.mutation.WeakTopics(); ok {
		_spec.SetField(profile.FieldWeakTopics, field.TypeJSON, value)
		_node.WeakTopics = value
	}
	if value, ok := _c.mutation.DailyXp(); ok {
		_spec.SetField(profile.FieldDailyXp, field.TypeInt, value)
		_node.DailyXp = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
