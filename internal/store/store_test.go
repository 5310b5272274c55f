package store

import (
	"context"
	"errors"
	"testing"

	"github.com/chemcat/chemcat/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileEnsureLoadSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// Load before the profile exists.
	if _, err := repo.Load(ctx, "local"); !errors.Is(err, progress.ErrNotFound) {
		t.Fatalf("load missing = %v, want progress.ErrNotFound", err)
	}

	if err := repo.Ensure(ctx, "local", "Marie"); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	// Ensure is idempotent.
	if err := repo.Ensure(ctx, "local", "Marie"); err != nil {
		t.Fatalf("ensure (again): %v", err)
	}

	p, err := repo.Load(ctx, "local")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.StreakFreezesAvailable != 1 {
		t.Errorf("fresh streak freezes = %d, want 1", p.StreakFreezesAvailable)
	}

	p.CompletedLessons = []string{"l1-1", "l1-2"}
	p.Streak = 3
	p.LastCompletedDate = "2026-03-10"
	p.Energy = 150
	p.DailyXP = 100
	p.EarnedBadgeIDs = []string{"streak7"}
	p.WeakTopics = []string{"moles"}
	if err := repo.Save(ctx, "local", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "local")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Streak != 3 || got.Energy != 150 || got.DailyXP != 100 {
		t.Errorf("reloaded progress = %+v", got)
	}
	if len(got.CompletedLessons) != 2 || got.CompletedLessons[0] != "l1-1" {
		t.Errorf("completed lessons = %v", got.CompletedLessons)
	}
	if got.LastCompletedDate != "2026-03-10" {
		t.Errorf("last completed date = %q", got.LastCompletedDate)
	}
	if len(got.EarnedBadgeIDs) != 1 || len(got.WeakTopics) != 1 {
		t.Errorf("badges = %v, weak topics = %v", got.EarnedBadgeIDs, got.WeakTopics)
	}
}

func TestProfileSaveMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()

	err := repo.Save(context.Background(), "ghost", progress.NewProgress())
	if !errors.Is(err, progress.ErrNotFound) {
		t.Fatalf("save missing = %v, want progress.ErrNotFound", err)
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	save := func(id, name string, streak, lessons int) {
		t.Helper()
		if err := repo.Ensure(ctx, id, name); err != nil {
			t.Fatal(err)
		}
		p := progress.NewProgress()
		p.Streak = streak
		for i := 0; i < lessons; i++ {
			p.CompletedLessons = append(p.CompletedLessons, string(rune('a'+i)))
		}
		if err := repo.Save(ctx, id, p); err != nil {
			t.Fatal(err)
		}
	}

	save("p1", "Ada", 5, 3)
	save("p2", "Boris", 9, 1)
	save("p3", "Clara", 5, 7)

	board, err := repo.Leaderboard(ctx, 25)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("leaderboard size = %d, want 3", len(board))
	}
	// Streak wins; lesson count breaks ties.
	if board[0].ID != "p2" || board[1].ID != "p3" || board[2].ID != "p1" {
		t.Errorf("order = [%s %s %s], want [p2 p3 p1]",
			board[0].ID, board[1].ID, board[2].ID)
	}

	// Limit is honored.
	board, err = repo.Leaderboard(ctx, 2)
	if err != nil {
		t.Fatalf("leaderboard limited: %v", err)
	}
	if len(board) != 2 {
		t.Errorf("limited leaderboard size = %d, want 2", len(board))
	}
}

func TestProfileSearch(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	for _, p := range []struct{ id, name string }{
		{"p1", "Marie Curie"},
		{"p2", "Rosalind Franklin"},
		{"p3", "Dmitri Mendeleev"},
	} {
		if err := repo.Ensure(ctx, p.id, p.name); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.Search(ctx, "mari", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Marie Curie" {
		t.Errorf("search results = %v", got)
	}

	got, err = repo.Search(ctx, "in", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 matches for 'in', got %d", len(got))
	}
}

func TestFollowRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.FollowRepo()
	ctx := context.Background()

	if err := repo.Follow(ctx, "local", "p2"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	// Duplicate follow is a no-op.
	if err := repo.Follow(ctx, "local", "p2"); err != nil {
		t.Fatalf("follow (again): %v", err)
	}
	if err := repo.Follow(ctx, "local", "p3"); err != nil {
		t.Fatalf("follow p3: %v", err)
	}

	if err := repo.Follow(ctx, "local", "local"); err == nil {
		t.Error("expected error following self")
	}

	following, err := repo.Following(ctx, "local")
	if err != nil {
		t.Fatalf("following: %v", err)
	}
	if len(following) != 2 {
		t.Fatalf("following = %v, want 2 entries", following)
	}

	ok, err := repo.IsFollowing(ctx, "local", "p2")
	if err != nil || !ok {
		t.Fatalf("IsFollowing(p2) = %v, %v", ok, err)
	}

	if err := repo.Unfollow(ctx, "local", "p2"); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	ok, err = repo.IsFollowing(ctx, "local", "p2")
	if err != nil || ok {
		t.Fatalf("IsFollowing after unfollow = %v, %v", ok, err)
	}
}

func TestEventRepoLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat", InputTokens: 20, OutputTokens: 80, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen", Success: false, ErrorMessage: "boom"},
	}
	for _, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("usage rows = %d, want 1", len(usage))
	}
	u := usage[0]
	if u.Requests != 3 || u.Failures != 1 {
		t.Errorf("requests = %d, failures = %d, want 3/1", u.Requests, u.Failures)
	}
	if u.InputTokens != 120 || u.OutputTokens != 130 {
		t.Errorf("tokens = %d/%d, want 120/130", u.InputTokens, u.OutputTokens)
	}

	recent, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d events, want 2", len(recent))
	}
	// Newest first.
	if recent[0].Purpose != "question-gen" || recent[0].ErrorMessage != "boom" {
		t.Errorf("recent[0] = %+v", recent[0])
	}
	if recent[1].Purpose != "chat" {
		t.Errorf("recent[1].Purpose = %s, want chat", recent[1].Purpose)
	}

	got, err := repo.GetLLMRequest(ctx, recent[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.OutputTokens != 80 {
		t.Errorf("got = %+v", got)
	}

	missing, err := repo.GetLLMRequest(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}
}

func TestProfileSetIdentity(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if err := repo.Ensure(ctx, "local", "Learner"); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	err := repo.SetIdentity(ctx, "local", ProfileIdentity{
		Name:      "Marie",
		Avatar:    "🧪",
		DailyGoal: 100,
	})
	if err != nil {
		t.Fatalf("set identity: %v", err)
	}

	p, err := repo.Get(ctx, "local")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Marie" || p.Avatar != "🧪" || p.DailyGoal != 100 {
		t.Errorf("identity = %+v", p)
	}
	// Unset fields keep their defaults.
	if p.ThemeColor != "teal" {
		t.Errorf("theme color = %q, want teal", p.ThemeColor)
	}

	err = repo.SetIdentity(ctx, "ghost", ProfileIdentity{Name: "X"})
	if !errors.Is(err, progress.ErrNotFound) {
		t.Errorf("set identity on missing = %v, want progress.ErrNotFound", err)
	}
}

func TestEventRepoLessons(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, lesson := range []string{"l1-1", "l1-2", "l1-3"} {
		err := repo.AppendLesson(ctx, LessonEventData{
			SessionID:   "sess",
			LessonID:    lesson,
			LessonTitle: "Lesson " + lesson,
			Score:       100,
			Total:       5,
			Correct:     5,
			XPEarned:    50,
			StreakAfter: i + 1,
		})
		if err != nil {
			t.Fatalf("append %s: %v", lesson, err)
		}
	}

	recent, err := repo.RecentLessons(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d events, want 2", len(recent))
	}
	// Newest first.
	if recent[0].LessonID != "l1-3" || recent[1].LessonID != "l1-2" {
		t.Errorf("order = [%s %s], want [l1-3 l1-2]", recent[0].LessonID, recent[1].LessonID)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profiles", "follows", "lesson_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
