package cmd

import (
	"strings"
	"testing"

	"github.com/chemcat/chemcat/internal/progress"
)

func TestPrintCompletionAnnouncesOneBadge(t *testing.T) {
	result := progress.CompletionResult{
		XPEarned:  50,
		OldStreak: 29,
		NewStreak: 30,
		Unlocked: []progress.Badge{
			{ID: "streak7", Name: "Weekly Whiz", Description: "7-day streak"},
			{ID: "streak30", Name: "Monthly Master", Description: "30-day streak"},
		},
	}

	var sb strings.Builder
	printCompletion(&sb, result)
	out := sb.String()

	if !strings.Contains(out, "+50 XP") {
		t.Errorf("output missing XP line:\n%s", out)
	}
	if !strings.Contains(out, "Weekly Whiz") {
		t.Errorf("lowest milestone not announced:\n%s", out)
	}
	if strings.Contains(out, "Monthly Master") {
		t.Errorf("more than one badge announced:\n%s", out)
	}
	if n := strings.Count(out, "Badge unlocked"); n != 1 {
		t.Errorf("badge lines = %d, want 1", n)
	}
}

func TestPrintCompletionNoBadges(t *testing.T) {
	var sb strings.Builder
	printCompletion(&sb, progress.CompletionResult{XPEarned: 10, OldStreak: 3, NewStreak: 3})
	if strings.Contains(sb.String(), "Badge unlocked") {
		t.Errorf("unexpected badge line:\n%s", sb.String())
	}
}
