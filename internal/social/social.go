package social

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chemcat/chemcat/internal/progress"
	"github.com/chemcat/chemcat/internal/store"
)

const (
	// LeaderboardLimit caps the number of leaderboard rows.
	LeaderboardLimit = 25

	// SearchLimit caps the number of search results.
	SearchLimit = 5
)

// ErrProfileNotFound reports a lookup for a profile that does not exist.
var ErrProfileNotFound = errors.New("social: profile not found")

// Service exposes the social surface: the leaderboard, profile search,
// and the follow graph.
type Service struct {
	profiles store.ProfileRepo
	follows  store.FollowRepo
}

// NewService creates a social service over the given repositories.
func NewService(profiles store.ProfileRepo, follows store.FollowRepo) *Service {
	return &Service{profiles: profiles, follows: follows}
}

// Leaderboard returns the top profiles ordered by streak, ties broken
// by completed lesson count.
func (s *Service) Leaderboard(ctx context.Context) ([]store.Profile, error) {
	rows, err := s.profiles.Leaderboard(ctx, LeaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return rows, nil
}

// Search finds profiles whose name contains query, case-insensitively.
// A blank query returns no results.
func (s *Service) Search(ctx context.Context, query string) ([]store.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	rows, err := s.profiles.Search(ctx, query, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search profiles: %w", err)
	}
	return rows, nil
}

// Profile returns the public view of a profile.
func (s *Service) Profile(ctx context.Context, id string) (*store.Profile, error) {
	p, err := s.profiles.Get(ctx, id)
	if errors.Is(err, progress.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// Follow adds followedID to followerID's follow list. Following an
// unknown profile is an error; following twice is a no-op.
func (s *Service) Follow(ctx context.Context, followerID, followedID string) error {
	if _, err := s.Profile(ctx, followedID); err != nil {
		return err
	}
	if err := s.follows.Follow(ctx, followerID, followedID); err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	return nil
}

// Unfollow removes followedID from followerID's follow list.
func (s *Service) Unfollow(ctx context.Context, followerID, followedID string) error {
	if err := s.follows.Unfollow(ctx, followerID, followedID); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

// Following resolves the profiles followerID tracks. Followed profiles
// that have since disappeared are skipped.
func (s *Service) Following(ctx context.Context, followerID string) ([]store.Profile, error) {
	ids, err := s.follows.Following(ctx, followerID)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	out := make([]store.Profile, 0, len(ids))
	for _, id := range ids {
		p, err := s.profiles.Get(ctx, id)
		if errors.Is(err, progress.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolve followed profile %s: %w", id, err)
		}
		out = append(out, *p)
	}
	return out, nil
}

// IsFollowing reports whether followerID follows followedID.
func (s *Service) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	return s.follows.IsFollowing(ctx, followerID, followedID)
}
