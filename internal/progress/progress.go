package progress

import "time"

// DateLayout is the calendar-day format used for streak bookkeeping.
// Streaks count local calendar days, not 24-hour windows.
const DateLayout = "2006-01-02"

// XP awards for completing a lesson.
const (
	XPFirstCompletion = 50
	XPRepeatReview    = 10
)

// Progress is a learner's persistent gamification state.
type Progress struct {
	CompletedLessons []string `json:"completed_lessons"`
	Streak           int      `json:"streak"`
	// LastCompletedDate is the calendar day of the most recent lesson
	// completion in DateLayout, or "" for a fresh profile.
	LastCompletedDate      string   `json:"last_completed_date"`
	StreakFreezesAvailable int      `json:"streak_freezes_available"`
	EarnedBadgeIDs         []string `json:"earned_badge_ids"`
	Energy                 int      `json:"energy"`
	WeakTopics             []string `json:"weak_topics"`
	DailyXP                int      `json:"daily_xp"`
}

// NewProgress returns the state of a brand-new learner: nothing
// completed, one streak freeze banked.
func NewProgress() *Progress {
	return &Progress{
		StreakFreezesAvailable: 1,
	}
}

// Reset returns p to the fresh-learner state. Identity fields (name,
// follows) live outside Progress and are untouched.
func (p *Progress) Reset() {
	*p = *NewProgress()
}

// IsCompleted reports whether the lesson has ever been completed.
func (p *Progress) IsCompleted(lessonID string) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// CompletedSet returns the completed lessons as a set, the shape the
// curriculum unlock check wants.
func (p *Progress) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(p.CompletedLessons))
	for _, id := range p.CompletedLessons {
		set[id] = true
	}
	return set
}

// HasBadge reports whether the badge has been earned.
func (p *Progress) HasBadge(badgeID string) bool {
	for _, id := range p.EarnedBadgeIDs {
		if id == badgeID {
			return true
		}
	}
	return false
}

// sameDay reports whether date (in DateLayout) names the day of t.
func sameDay(date string, t time.Time) bool {
	return date == t.Format(DateLayout)
}

// isYesterday reports whether date (in DateLayout) names the day
// before t.
func isYesterday(date string, t time.Time) bool {
	return date == t.AddDate(0, 0, -1).Format(DateLayout)
}
