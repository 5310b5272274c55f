package store

import (
	"context"
	"fmt"

	"github.com/chemcat/chemcat/ent"
	"github.com/chemcat/chemcat/ent/follow"
)

// followRepo implements FollowRepo using the ent client.
type followRepo struct {
	client *ent.Client
}

func (r *followRepo) Follow(ctx context.Context, followerID, followedID string) error {
	if followerID == followedID {
		return fmt.Errorf("cannot follow yourself")
	}

	exists, err := r.IsFollowing(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = r.client.Follow.Create().
		SetFollowerID(followerID).
		SetFollowedID(followedID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create follow: %w", err)
	}
	return nil
}

func (r *followRepo) Unfollow(ctx context.Context, followerID, followedID string) error {
	_, err := r.client.Follow.Delete().
		Where(
			follow.FollowerID(followerID),
			follow.FollowedID(followedID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

func (r *followRepo) Following(ctx context.Context, followerID string) ([]string, error) {
	follows, err := r.client.Follow.Query().
		Where(follow.FollowerID(followerID)).
		Order(ent.Asc(follow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query follows: %w", err)
	}

	out := make([]string, len(follows))
	for i, f := range follows {
		out[i] = f.FollowedID
	}
	return out, nil
}

func (r *followRepo) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	exists, err := r.client.Follow.Query().
		Where(
			follow.FollowerID(followerID),
			follow.FollowedID(followedID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return exists, nil
}
