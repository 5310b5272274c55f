package progress

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	saved map[string]*Progress
	err   error
}

func (f *fakeStore) Load(_ context.Context, profileID string) (*Progress, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.saved[profileID]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (f *fakeStore) Save(_ context.Context, profileID string, p *Progress) error {
	if f.saved == nil {
		f.saved = make(map[string]*Progress)
	}
	f.saved[profileID] = p
	return nil
}

func TestLoadOrInit(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("missing profile gets fresh state", func(t *testing.T) {
		p, err := LoadOrInit(ctx, &fakeStore{}, "me", today)
		if err != nil {
			t.Fatalf("LoadOrInit: %v", err)
		}
		if p.StreakFreezesAvailable != 1 || len(p.CompletedLessons) != 0 {
			t.Errorf("fresh state = %+v", p)
		}
	})

	t.Run("existing profile loads as-is", func(t *testing.T) {
		fs := &fakeStore{}
		want := NewProgress()
		want.Streak = 9
		want.LastCompletedDate = today.Format(DateLayout)
		want.DailyXP = 60
		if err := fs.Save(ctx, "me", want); err != nil {
			t.Fatal(err)
		}

		p, err := LoadOrInit(ctx, fs, "me", today)
		if err != nil {
			t.Fatalf("LoadOrInit: %v", err)
		}
		if p.Streak != 9 {
			t.Errorf("streak = %d, want 9", p.Streak)
		}
		if p.DailyXP != 60 {
			t.Errorf("same-day DailyXP = %d, want 60", p.DailyXP)
		}
	})

	t.Run("daily XP from an earlier day loads as zero", func(t *testing.T) {
		fs := &fakeStore{}
		stale := NewProgress()
		stale.Streak = 4
		stale.LastCompletedDate = today.AddDate(0, 0, -1).Format(DateLayout)
		stale.DailyXP = 100
		if err := fs.Save(ctx, "me", stale); err != nil {
			t.Fatal(err)
		}

		p, err := LoadOrInit(ctx, fs, "me", today)
		if err != nil {
			t.Fatalf("LoadOrInit: %v", err)
		}
		if p.DailyXP != 0 {
			t.Errorf("DailyXP after rollover = %d, want 0", p.DailyXP)
		}
		if p.Streak != 4 {
			t.Errorf("streak = %d, want 4 (rollover must not touch streak)", p.Streak)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		boom := errors.New("disk fell over")
		if _, err := LoadOrInit(ctx, &fakeStore{err: boom}, "me", today); !errors.Is(err, boom) {
			t.Errorf("err = %v, want wrapped store error", err)
		}
	})
}
