package progress

import "time"

// CompletionResult describes the outcome of applying a lesson
// completion, for display on the summary screen.
type CompletionResult struct {
	XPEarned  int
	OldStreak int
	NewStreak int
	// Unlocked lists badges newly earned by this completion, lowest
	// milestone first.
	Unlocked []Badge
}

// CompleteLesson applies one lesson completion to p and returns what
// changed. today anchors the calendar-day comparisons; callers pass
// time.Now() in the learner's local zone.
//
// The transition, in order:
//  1. A day rollover (first completion of a new day) resets DailyXP.
//  2. The streak extends by one if the last completion was yesterday,
//     restarts at one otherwise. Repeat completions on the same day
//     keep the streak unchanged.
//  3. XP is awarded: full for a first completion, a token amount for
//     reviewing an already-completed lesson. Energy and DailyXP both
//     accrue.
//  4. Any badge whose streak requirement is newly met is earned.
//  5. Weak topics from the session merge in, deduplicated.
func CompleteLesson(p *Progress, lessonID string, today time.Time, weakTopics []string) CompletionResult {
	res := CompletionResult{OldStreak: p.Streak}

	if !sameDay(p.LastCompletedDate, today) {
		p.DailyXP = 0
		if isYesterday(p.LastCompletedDate, today) {
			p.Streak++
		} else {
			p.Streak = 1
		}
		p.LastCompletedDate = today.Format(DateLayout)
	}
	res.NewStreak = p.Streak

	xp := XPFirstCompletion
	if p.IsCompleted(lessonID) {
		xp = XPRepeatReview
	} else {
		p.CompletedLessons = append(p.CompletedLessons, lessonID)
	}
	p.Energy += xp
	p.DailyXP += xp
	res.XPEarned = xp

	for _, b := range badges {
		if p.Streak >= b.StreakRequirement && !p.HasBadge(b.ID) {
			p.EarnedBadgeIDs = append(p.EarnedBadgeIDs, b.ID)
			res.Unlocked = append(res.Unlocked, b)
		}
	}

	p.WeakTopics = mergeTopics(p.WeakTopics, weakTopics)
	return res
}

// mergeTopics appends the new topics not already present, preserving
// order.
func mergeTopics(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t] = true
	}
	for _, t := range incoming {
		if !seen[t] {
			seen[t] = true
			existing = append(existing, t)
		}
	}
	return existing
}
