package social

import (
	"context"
	"testing"

	"github.com/chemcat/chemcat/internal/progress"
	"github.com/chemcat/chemcat/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.ProfileRepo(), s.FollowRepo()), s
}

func seedProfile(t *testing.T, s *store.Store, id, name string, streak, lessons int) {
	t.Helper()
	ctx := context.Background()
	repo := s.ProfileRepo()
	if err := repo.Ensure(ctx, id, name); err != nil {
		t.Fatalf("ensure %s: %v", id, err)
	}
	p := progress.NewProgress()
	p.Streak = streak
	for i := 0; i < lessons; i++ {
		p.CompletedLessons = append(p.CompletedLessons, "l1-"+string(rune('1'+i)))
	}
	if err := repo.Save(ctx, id, p); err != nil {
		t.Fatalf("save %s: %v", id, err)
	}
}

func TestServiceLeaderboard(t *testing.T) {
	svc, s := newTestService(t)
	seedProfile(t, s, "p1", "Marie", 3, 2)
	seedProfile(t, s, "p2", "Rosalind", 9, 1)
	seedProfile(t, s, "p3", "Dmitri", 3, 5)

	rows, err := svc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	want := []string{"p2", "p3", "p1"}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rows), len(want))
	}
	for i, id := range want {
		if rows[i].ID != id {
			t.Errorf("rows[%d].ID = %s, want %s", i, rows[i].ID, id)
		}
	}
}

func TestServiceSearch(t *testing.T) {
	svc, s := newTestService(t)
	seedProfile(t, s, "p1", "Marie Curie", 0, 0)
	seedProfile(t, s, "p2", "Rosalind Franklin", 0, 0)

	rows, err := svc.Search(context.Background(), "marie")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "p1" {
		t.Errorf("rows = %+v, want just p1", rows)
	}

	rows, err = svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("blank Search: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("blank query returned %d rows", len(rows))
	}
}

func TestServiceFollowGraph(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	seedProfile(t, s, "local", "You", 0, 0)
	seedProfile(t, s, "p2", "Rosalind", 4, 1)

	if err := svc.Follow(ctx, "local", "p2"); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if err := svc.Follow(ctx, "local", "ghost"); err != ErrProfileNotFound {
		t.Errorf("follow unknown profile: err = %v, want ErrProfileNotFound", err)
	}

	ok, err := svc.IsFollowing(ctx, "local", "p2")
	if err != nil || !ok {
		t.Fatalf("IsFollowing = %v, %v", ok, err)
	}

	followed, err := svc.Following(ctx, "local")
	if err != nil {
		t.Fatalf("Following: %v", err)
	}
	if len(followed) != 1 || followed[0].Name != "Rosalind" {
		t.Errorf("followed = %+v", followed)
	}

	if err := svc.Unfollow(ctx, "local", "p2"); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}
	followed, err = svc.Following(ctx, "local")
	if err != nil {
		t.Fatalf("Following after unfollow: %v", err)
	}
	if len(followed) != 0 {
		t.Errorf("still following %d profiles", len(followed))
	}
}

func TestServiceProfileNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Profile(context.Background(), "ghost"); err != ErrProfileNotFound {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}
