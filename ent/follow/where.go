// Code generated by ent, DO NOT EDIT.

package follow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/chemcat/chemcat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Follow {
	return predicate.Follow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Follow {
	return predicate.Follow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Follow {
	return predicate.Follow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Follow {
	return predicate.Follow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Follow {
	return predicate.Follow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Follow {
	return predicate.Follow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Follow {
	return predicate.Follow(sql.FieldLTE(FieldID, id))
}

// FollowerID applies equality check predicate on the "follower_id" field. It's identical to FollowerIDEQ.
func FollowerID(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldFollowerID, v))
}

// FollowedID applies equality check predicate on the "followed_id" field. It's identical to FollowedIDEQ.
func FollowedID(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldFollowedID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldCreatedAt, v))
}

// FollowerIDEQ applies the EQ predicate on the "follower_id" field.
func FollowerIDEQ(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldFollowerID, v))
}

// FollowerIDNEQ applies the NEQ predicate on the "follower_id" field.
func FollowerIDNEQ(v string) predicate.Follow {
	return predicate.Follow(sql.FieldNEQ(FieldFollowerID, v))
}

// FollowerIDIn applies the In predicate on the "follower_id" field.
func FollowerIDIn(vs ...string) predicate.Follow {
	return predicate.Follow(sql.FieldIn(FieldFollowerID, vs...))
}

// FollowerIDNotIn applies the NotIn predicate on the "follower_id" field.
func FollowerIDNotIn(vs ...string) predicate.Follow {
	return predicate.Follow(sql.FieldNotIn(FieldFollowerID, vs...))
}

// FollowerIDGT applies the GT predicate on the "follower_id" field.
func FollowerIDGT(v string) predicate.Follow {
	return predicate.Follow(sql.FieldGT(FieldFollowerID, v))
}

// FollowerIDGTE applies the GTE predicate on the "follower_id" field.
func FollowerIDGTE(v string) predicate.Follow {
	return predicate.Follow(sql.FieldGTE(FieldFollowerID, v))
}

// FollowerIDLT applies the LT predicate on the "follower_id" field.
func FollowerIDLT(v string) predicate.Follow {
	return predicate.Follow(sql.FieldLT(FieldFollowerID, v))
}

// FollowerIDLTE applies the LTE predicate on the "follower_id" field.
func FollowerIDLTE(v string) predicate.Follow {
	return predicate.Follow(sql.FieldLTE(FieldFollowerID, v))
}

// FollowerIDContains applies the Contains predicate on the "follower_id" field.
func FollowerIDContains(v string) predicate.Follow {
	return predicate.Follow(sql.FieldContains(FieldFollowerID, v))
}

// FollowerIDHasPrefix applies the HasPrefix predicate on the "follower_id" field.
func FollowerIDHasPrefix(v string) predicate.Follow {
	return predicate.Follow(sql.FieldHasPrefix(FieldFollowerID, v))
}

// FollowerIDHasSuffix applies the HasSuffix predicate on the "follower_id" field.
func FollowerIDHasSuffix(v string) predicate.Follow {
	return predicate.Follow(sql.FieldHasSuffix(FieldFollowerID, v))
}

// FollowerIDEqualFold applies the EqualFold predicate on the "follower_id" field.
func FollowerIDEqualFold(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEqualFold(FieldFollowerID, v))
}

// FollowerIDContainsFold applies the ContainsFold predicate on the "follower_id" field.
func FollowerIDContainsFold(v string) predicate.Follow {
	return predicate.Follow(sql.FieldContainsFold(FieldFollowerID, v))
}

// FollowedIDEQ applies the EQ predicate on the "followed_id" field.
func FollowedIDEQ(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldFollowedID, v))
}

// FollowedIDNEQ applies the NEQ predicate on the "followed_id" field.
func FollowedIDNEQ(v string) predicate.Follow {
	return predicate.Follow(sql.FieldNEQ(FieldFollowedID, v))
}

// FollowedIDIn applies the In predicate on the "followed_id" field.
func FollowedIDIn(vs ...string) predicate.Follow {
	return predicate.Follow(sql.FieldIn(FieldFollowedID, vs...))
}

// FollowedIDNotIn applies the NotIn predicate on the "followed_id" field.
func FollowedIDNotIn(vs ...string) predicate.Follow {
	return predicate.Follow(sql.FieldNotIn(FieldFollowedID, vs...))
}

// FollowedIDGT applies the GT predicate on the "followed_id" field.
func FollowedIDGT(v string) predicate.Follow {
	return predicate.Follow(sql.FieldGT(FieldFollowedID, v))
}

// FollowedIDGTE applies the GTE predicate on the "followed_id" field.
func FollowedIDGTE(v string) predicate.Follow {
	return predicate.Follow(sql.FieldGTE(FieldFollowedID, v))
}

// FollowedIDLT applies the LT predicate on the "followed_id" field.
func FollowedIDLT(v string) predicate.Follow {
	return predicate.Follow(sql.FieldLT(FieldFollowedID, v))
}

// FollowedIDLTE applies the LTE predicate on the "followed_id" field.
func FollowedIDLTE(v string) predicate.Follow {
	return predicate.Follow(sql.FieldLTE(FieldFollowedID, v))
}

// FollowedIDContains applies the Contains predicate on the "followed_id" field.
func FollowedIDContains(v string) predicate.Follow {
	return predicate.Follow(sql.FieldContains(FieldFollowedID, v))
}

// FollowedIDHasPrefix applies the HasPrefix predicate on the "followed_id" field.
func FollowedIDHasPrefix(v string) predicate.Follow {
	return predicate.Follow(sql.FieldHasPrefix(FieldFollowedID, v))
}

// FollowedIDHasSuffix applies the HasSuffix predicate on the "followed_id" field.
func FollowedIDHasSuffix(v string) predicate.Follow {
	return predicate.Follow(sql.FieldHasSuffix(FieldFollowedID, v))
}

// FollowedIDEqualFold applies the EqualFold predicate on the "followed_id" field.
func FollowedIDEqualFold(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEqualFold(FieldFollowedID, v))
}

// FollowedIDContainsFold applies the ContainsFold predicate on the "followed_id" field.
func FollowedIDContainsFold(v string) predicate.Follow {
	return predicate.Follow(sql.FieldContainsFold(FieldFollowedID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Follow {
	return predicate.Follow(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Follow {
	return predicate.Follow(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Follow {
	return predicate.Follow(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Follow {
	return predicate.Follow(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Follow {
	return predicate.Follow(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Follow {
	return predicate.Follow(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Follow {
	return predicate.Follow(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Follow) predicate.Follow {
	return predicate.Follow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Follow) predicate.Follow {
	return predicate.Follow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Follow) predicate.Follow {
	return predicate.Follow(sql.NotPredicates(p))
}
