package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/chemcat/chemcat/internal/chat"
	"github.com/chemcat/chemcat/internal/llm"
	"github.com/chemcat/chemcat/internal/practice"
	"github.com/chemcat/chemcat/internal/progress"
	"github.com/chemcat/chemcat/internal/questgen"
	"github.com/chemcat/chemcat/internal/social"
	"github.com/chemcat/chemcat/internal/store"
)

const cannedQuestions = `{
	"questions": [
		{
			"type": "multiple-choice",
			"question": "Which particle has no charge?",
			"options": ["Proton", "Neutron", "Electron"],
			"answer": ["Neutron"],
			"explanation": "Neutrons are electrically neutral."
		},
		{
			"type": "fill-in-the-blank",
			"question": "The smallest unit of an element is the ___.",
			"answer": ["atom"],
			"explanation": "Atoms are the basic building blocks of matter."
		}
	]
}`

func newTestApp(t *testing.T, mock *llm.MockProvider) *App {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := st.ProfileRepo().Ensure(context.Background(), LocalProfileID, DefaultProfileName); err != nil {
		t.Fatalf("ensure local profile: %v", err)
	}

	qcfg := questgen.DefaultConfig()
	return &App{
		Store:     st,
		Provider:  mock,
		Questions: questgen.NewService(questgen.NewGenerator(mock, qcfg), qcfg),
		Tutor:     chat.NewTutor(mock, chat.DefaultConfig()),
		Social:    social.NewService(st.ProfileRepo(), st.FollowRepo()),
		now:       func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) },
	}
}

func runPerfectly(t *testing.T, sess *practice.Session) {
	t.Helper()
	for sess.Phase() == practice.PhaseActive {
		q := sess.Current()
		var resp practice.Response
		switch q.Kind {
		case practice.KindSelectAllApplies:
			resp = practice.Response{Selected: q.Answer}
		default:
			resp = practice.Response{Text: q.Answer[0]}
		}
		if _, err := sess.Check(resp); err != nil {
			t.Fatalf("Check: %v", err)
		}
		if err := sess.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
}

func TestStartLessonLocked(t *testing.T) {
	a := newTestApp(t, llm.NewMockProvider())
	if _, err := a.StartLesson(context.Background(), "l2-1", false); !errors.Is(err, ErrLessonLocked) {
		t.Errorf("err = %v, want ErrLessonLocked", err)
	}
}

func TestLessonFlow(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedQuestions)},
	)
	a := newTestApp(t, mock)

	sess, err := a.StartLesson(ctx, "l1-1", false)
	if err != nil {
		t.Fatalf("StartLesson: %v", err)
	}
	runPerfectly(t, sess)
	if err := sess.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	result, err := a.CompleteLesson(ctx, sess, "l1-1")
	if err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if result.XPEarned != progress.XPFirstCompletion {
		t.Errorf("XPEarned = %d, want %d", result.XPEarned, progress.XPFirstCompletion)
	}
	if result.NewStreak != 1 {
		t.Errorf("NewStreak = %d, want 1", result.NewStreak)
	}

	p, err := a.Progress(ctx)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if !p.IsCompleted("l1-1") {
		t.Error("l1-1 not marked completed")
	}

	events, err := a.Store.EventRepo().RecentLessons(ctx, 10)
	if err != nil {
		t.Fatalf("RecentLessons: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	ev := events[0]
	if ev.LessonID != "l1-1" || ev.Score != 100 || ev.Total != 2 || ev.XPEarned != progress.XPFirstCompletion {
		t.Errorf("event = %+v", ev)
	}
	if ev.SessionID != sess.ID {
		t.Errorf("event session = %s, want %s", ev.SessionID, sess.ID)
	}
}

func TestCompleteLessonRepeatAwardsReviewXP(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedQuestions)},
		llm.MockResponse{Content: json.RawMessage(cannedQuestions)},
	)
	a := newTestApp(t, mock)

	for i, wantXP := range []int{progress.XPFirstCompletion, progress.XPRepeatReview} {
		sess, err := a.StartLesson(ctx, "l1-1", true)
		if err != nil {
			t.Fatalf("StartLesson #%d: %v", i+1, err)
		}
		runPerfectly(t, sess)
		result, err := a.CompleteLesson(ctx, sess, "l1-1")
		if err != nil {
			t.Fatalf("CompleteLesson #%d: %v", i+1, err)
		}
		if result.XPEarned != wantXP {
			t.Errorf("completion #%d XP = %d, want %d", i+1, result.XPEarned, wantXP)
		}
	}
}

func TestStartUnitReview(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedQuestions)},
	)
	a := newTestApp(t, mock)

	sess, err := a.StartUnitReview(ctx, "unit1", false)
	if err != nil {
		t.Fatalf("StartUnitReview: %v", err)
	}
	if sess.Title == "" {
		t.Error("unit review session has no title")
	}
	if _, total := sess.Index(); total != 2 {
		t.Errorf("round size = %d, want 2", total)
	}
}

func TestResetProgress(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedQuestions)},
	)
	a := newTestApp(t, mock)

	sess, err := a.StartLesson(ctx, "l1-1", false)
	if err != nil {
		t.Fatalf("StartLesson: %v", err)
	}
	runPerfectly(t, sess)
	if _, err := a.CompleteLesson(ctx, sess, "l1-1"); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}

	if err := a.ResetProgress(ctx); err != nil {
		t.Fatalf("ResetProgress: %v", err)
	}
	p, err := a.Progress(ctx)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if len(p.CompletedLessons) != 0 || p.Streak != 0 {
		t.Errorf("progress not reset: %+v", p)
	}
}

func TestProgressDailyXPResetsNextDay(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedQuestions)},
	)
	a := newTestApp(t, mock)

	sess, err := a.StartLesson(ctx, "l1-1", false)
	if err != nil {
		t.Fatalf("StartLesson: %v", err)
	}
	runPerfectly(t, sess)
	if _, err := a.CompleteLesson(ctx, sess, "l1-1"); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}

	p, err := a.Progress(ctx)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if p.DailyXP != progress.XPFirstCompletion {
		t.Fatalf("same-day DailyXP = %d, want %d", p.DailyXP, progress.XPFirstCompletion)
	}

	// The dashboard opened the next morning must not show yesterday's XP.
	a.now = func() time.Time { return time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC) }
	p, err = a.Progress(ctx)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if p.DailyXP != 0 {
		t.Errorf("next-day DailyXP = %d, want 0", p.DailyXP)
	}
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1", p.Streak)
	}
}
