// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chemcat/chemcat/ent/follow"
	"github.com/chemcat/chemcat/ent/predicate"
)

// FollowUpdate is the builder for updating Follow entities.
type FollowUpdate struct {
	config
	hooks    []Hook
	mutation *FollowMutation
}

// Where appends a list predicates to the FollowUpdate builder.
func (_u *FollowUpdate) Where(ps ...predicate.Follow) *FollowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFollowerID sets the "follower_id" field.
func (_u *FollowUpdate) SetFollowerID(v string) *FollowUpdate {
	_u.mutation.SetFollowerID(v)
	return _u
}

// SetNillableFollowerID sets the "follower_id" field if the given value is not nil.
func (_u *FollowUpdate) SetNillableFollowerID(v *string) *FollowUpdate {
	if v != nil {
		_u.SetFollowerID(*v)
	}
	return _u
}

// SetFollowedID sets the "followed_id" field.
func (_u *FollowUpdate) SetFollowedID(v string) *FollowUpdate {
	_u.mutation.SetFollowedID(v)
	return _u
}

// SetNillableFollowedID sets the "followed_id" field if the given value is not nil.
func (_u *FollowUpdate) SetNillableFollowedID(v *string) *FollowUpdate {
	if v != nil {
		_u.SetFollowedID(*v)
	}
	return _u
}

// Mutation returns the FollowMutation object of the builder.
func (_u *FollowUpdate) Mutation() *FollowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FollowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FollowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FollowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FollowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FollowUpdate) check() error {
	if v, ok := _u.mutation.FollowerID(); ok {
		if err := follow.FollowerIDValidator(v); err != nil {
			return &ValidationError{Name: "follower_id", err: fmt.Errorf(`ent: validator failed for field "Follow.follower_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FollowedID(); ok {
		if err := follow.FollowedIDValidator(v); err != nil {
			return &ValidationError{Name: "followed_id", err: fmt.Errorf(`ent: validator failed for field "Follow.followed_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FollowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(follow.Table, follow.Columns, sqlgraph.NewFieldSpec(follow.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FollowerID(); ok {
		_spec.SetField(follow.FieldFollowerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowedID(); ok {
		_spec.SetField(follow.FieldFollowedID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{follow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FollowUpdateOne is the builder for updating a single Follow entity.
type FollowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FollowMutation
}

// SetFollowerID sets the "follower_id" field.
func (_u *FollowUpdateOne) SetFollowerID(v string) *FollowUpdateOne {
	_u.mutation.SetFollowerID(v)
	return _u
}

// SetNillableFollowerID sets the "follower_id" field if the given value is not nil.
func (_u *FollowUpdateOne) SetNillableFollowerID(v *string) *FollowUpdateOne {
	if v != nil {
		_u.SetFollowerID(*v)
	}
	return _u
}

// SetFollowedID sets the "followed_id" field.
func (_u *FollowUpdateOne) SetFollowedID(v string) *FollowUpdateOne {
	_u.mutation.SetFollowedID(v)
	return _u
}

// SetNillableFollowedID sets the "followed_id" field if the given value is not nil.
func (_u *FollowUpdateOne) SetNillableFollowedID(v *string) *FollowUpdateOne {
	if v != nil {
		_u.SetFollowedID(*v)
	}
	return _u
}

// Mutation returns the FollowMutation object of the builder.
func (_u *FollowUpdateOne) Mutation() *FollowMutation {
	return _u.mutation
}

// Where appends a list predicates to the FollowUpdate builder.
func (_u *FollowUpdateOne) Where(ps ...predicate.Follow) *FollowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FollowUpdateOne) Select(field string, fields ...string) *FollowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Follow entity.
func (_u *FollowUpdateOne) Save(ctx context.Context) (*Follow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FollowUpdateOne) SaveX(ctx context.Context) *Follow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FollowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FollowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FollowUpdateOne) check() error {
	if v, ok := _u.mutation.FollowerID(); ok {
		if err := follow.FollowerIDValidator(v); err != nil {
			return &ValidationError{Name: "follower_id", err: fmt.Errorf(`ent: validator failed for field "Follow.follower_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FollowedID(); ok {
		if err := follow.FollowedIDValidator(v); err != nil {
			return &ValidationError{Name: "followed_id", err: fmt.Errorf(`ent: validator failed for field "Follow.followed_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FollowUpdateOne) sqlSave(ctx context.Context) (_node *Follow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(follow.Table, follow.Columns, sqlgraph.NewFieldSpec(follow.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Follow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, follow.FieldID)
		for _, f := range fields {
			if !follow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != follow.FieldID {
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
	if value, ok := _u.mutation.FollowerID(); ok {
		_spec.SetField(follow.FieldFollowerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowedID(); ok {
		_spec.SetField(follow.FieldFollowedID, field.TypeString, value)
	}
	_node = &Follow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{follow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
