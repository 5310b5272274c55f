package progress

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Store.Load when no saved progress exists
// for the profile.
var ErrNotFound = errors.New("progress: not found")

// Store persists learner progress. The SQLite-backed implementation
// lives in the store package; tests use in-memory fakes.
type Store interface {
	Load(ctx context.Context, profileID string) (*Progress, error)
	Save(ctx context.Context, profileID string, p *Progress) error
}

// LoadOrInit loads saved progress, falling back to a fresh state when
// none exists yet. today anchors the day-rollover check: a stored
// DailyXP from an earlier calendar day is stale and comes back as 0,
// so read paths never show yesterday's total as today's.
func LoadOrInit(ctx context.Context, s Store, profileID string, today time.Time) (*Progress, error) {
	p, err := s.Load(ctx, profileID)
	if errors.Is(err, ErrNotFound) {
		return NewProgress(), nil
	}
	if err != nil {
		return nil, err
	}
	if !sameDay(p.LastCompletedDate, today) {
		p.DailyXP = 0
	}
	return p, nil
}
