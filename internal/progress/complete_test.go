package progress

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCompleteLessonFirstEver(t *testing.T) {
	p := NewProgress()
	res := CompleteLesson(p, "l1-1", day("2026-03-10"), nil)

	if res.XPEarned != XPFirstCompletion {
		t.Errorf("XPEarned = %d, want %d", res.XPEarned, XPFirstCompletion)
	}
	if p.Streak != 1 || res.NewStreak != 1 {
		t.Errorf("streak = %d (result %d), want 1", p.Streak, res.NewStreak)
	}
	if p.LastCompletedDate != "2026-03-10" {
		t.Errorf("last completed date = %q", p.LastCompletedDate)
	}
	if p.Energy != 50 || p.DailyXP != 50 {
		t.Errorf("energy = %d, dailyXP = %d, want 50/50", p.Energy, p.DailyXP)
	}
	if !p.IsCompleted("l1-1") {
		t.Error("lesson not recorded as completed")
	}
}

func TestCompleteLessonStreakTransitions(t *testing.T) {
	tests := []struct {
		name       string
		lastDate   string
		streak     int
		today      string
		wantStreak int
	}{
		{"consecutive day extends", "2026-03-09", 6, "2026-03-10", 7},
		{"gap restarts at one", "2026-03-07", 12, "2026-03-10", 1},
		{"same day unchanged", "2026-03-10", 4, "2026-03-10", 4},
		{"fresh profile starts at one", "", 0, "2026-03-10", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress()
			p.LastCompletedDate = tt.lastDate
			p.Streak = tt.streak

			res := CompleteLesson(p, "l1-1", day(tt.today), nil)
			if p.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", p.Streak, tt.wantStreak)
			}
			if res.OldStreak != tt.streak || res.NewStreak != tt.wantStreak {
				t.Errorf("result streaks = %d→%d, want %d→%d",
					res.OldStreak, res.NewStreak, tt.streak, tt.wantStreak)
			}
		})
	}
}

func TestCompleteLessonRepeatAward(t *testing.T) {
	p := NewProgress()
	CompleteLesson(p, "l1-1", day("2026-03-10"), nil)
	res := CompleteLesson(p, "l1-1", day("2026-03-10"), nil)

	if res.XPEarned != XPRepeatReview {
		t.Errorf("repeat XPEarned = %d, want %d", res.XPEarned, XPRepeatReview)
	}
	if p.Energy != 60 || p.DailyXP != 60 {
		t.Errorf("energy = %d, dailyXP = %d, want 60/60", p.Energy, p.DailyXP)
	}
	if len(p.CompletedLessons) != 1 {
		t.Errorf("completed lessons = %v, want one entry", p.CompletedLessons)
	}
}

func TestCompleteLessonDailyXPResetKeepsEnergy(t *testing.T) {
	p := NewProgress()
	CompleteLesson(p, "l1-1", day("2026-03-10"), nil)
	CompleteLesson(p, "l1-2", day("2026-03-10"), nil)

	if p.DailyXP != 100 || p.Energy != 100 {
		t.Fatalf("after day one: dailyXP = %d, energy = %d", p.DailyXP, p.Energy)
	}

	// Next day: daily counter resets before the award, lifetime energy
	// keeps accruing.
	CompleteLesson(p, "l1-3", day("2026-03-11"), nil)
	if p.DailyXP != 50 {
		t.Errorf("dailyXP = %d, want 50", p.DailyXP)
	}
	if p.Energy != 150 {
		t.Errorf("energy = %d, want 150", p.Energy)
	}
}

func TestCompleteLessonBadgeUnlocks(t *testing.T) {
	p := NewProgress()
	p.Streak = 6
	p.LastCompletedDate = "2026-03-09"

	res := CompleteLesson(p, "l2-1", day("2026-03-10"), nil)
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != "streak7" {
		t.Fatalf("unlocked = %v, want streak7", res.Unlocked)
	}
	if !p.HasBadge("streak7") {
		t.Error("streak7 not recorded as earned")
	}

	// Completing again never re-awards.
	res = CompleteLesson(p, "l2-2", day("2026-03-10"), nil)
	if len(res.Unlocked) != 0 {
		t.Errorf("unlocked on repeat = %v, want none", res.Unlocked)
	}
	if len(p.EarnedBadgeIDs) != 1 {
		t.Errorf("earned badges = %v, want one entry", p.EarnedBadgeIDs)
	}
}

func TestCompleteLessonLateBadgeBacklog(t *testing.T) {
	// A streak that jumps past several milestones earns them all at
	// once, lowest first.
	p := NewProgress()
	p.Streak = 29
	p.LastCompletedDate = "2026-03-09"

	res := CompleteLesson(p, "l3-1", day("2026-03-10"), nil)
	if len(res.Unlocked) != 2 {
		t.Fatalf("unlocked = %v, want streak7 and streak30", res.Unlocked)
	}
	if res.Unlocked[0].ID != "streak7" || res.Unlocked[1].ID != "streak30" {
		t.Errorf("unlock order = %v", res.Unlocked)
	}
}

func TestCompleteLessonWeakTopicsMerge(t *testing.T) {
	p := NewProgress()
	p.WeakTopics = []string{"ionic bonds"}

	CompleteLesson(p, "l1-1", day("2026-03-10"), []string{"ionic bonds", "moles"})
	if len(p.WeakTopics) != 2 || p.WeakTopics[1] != "moles" {
		t.Errorf("weak topics = %v, want [ionic bonds moles]", p.WeakTopics)
	}
}

func TestReset(t *testing.T) {
	p := NewProgress()
	CompleteLesson(p, "l1-1", day("2026-03-10"), []string{"moles"})
	p.Reset()

	if len(p.CompletedLessons) != 0 || p.Streak != 0 || p.Energy != 0 ||
		p.DailyXP != 0 || p.LastCompletedDate != "" ||
		len(p.EarnedBadgeIDs) != 0 || len(p.WeakTopics) != 0 {
		t.Errorf("reset left state behind: %+v", p)
	}
	if p.StreakFreezesAvailable != 1 {
		t.Errorf("streak freezes = %d, want 1", p.StreakFreezesAvailable)
	}
}

func TestBadgeCatalog(t *testing.T) {
	b, ok := BadgeByID("streak30")
	if !ok || b.Name != "Monthly Master" || b.StreakRequirement != 30 {
		t.Errorf("BadgeByID(streak30) = %+v, %v", b, ok)
	}
	if _, ok := BadgeByID("nope"); ok {
		t.Error("unknown badge ID found")
	}
}
