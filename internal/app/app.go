package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chemcat/chemcat/internal/chat"
	"github.com/chemcat/chemcat/internal/curriculum"
	"github.com/chemcat/chemcat/internal/llm"
	"github.com/chemcat/chemcat/internal/practice"
	"github.com/chemcat/chemcat/internal/progress"
	"github.com/chemcat/chemcat/internal/questgen"
	"github.com/chemcat/chemcat/internal/social"
	"github.com/chemcat/chemcat/internal/store"
)

// LocalProfileID is the fixed identity of the learner on this machine.
// The profiles table also holds the public profiles surfaced by search
// and the leaderboard.
const LocalProfileID = "local"

// DefaultProfileName is used until the learner picks a name.
const DefaultProfileName = "Learner"

// ErrLessonLocked reports an attempt to start a lesson whose
// prerequisites are not complete.
var ErrLessonLocked = errors.New("app: lesson is locked")

// ErrNoProvider reports an AI feature invoked without a configured
// LLM provider.
var ErrNoProvider = errors.New("app: no LLM provider configured (set GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY)")

// Options configures App construction.
type Options struct {
	// DBPath overrides the default state database location.
	DBPath string

	// LLM overrides the environment-discovered provider configuration.
	LLM *llm.Config
}

// App wires the stores and services together. One App per process.
type App struct {
	Store     *store.Store
	Provider  llm.Provider
	Questions *questgen.Service
	Tutor     *chat.Tutor
	Social    *social.Service

	// now is the clock for streak arithmetic, swappable in tests.
	now func() time.Time
}

// New opens the state database, ensures the local profile exists, and
// builds the LLM-backed services.
func New(ctx context.Context, opts Options) (*App, error) {
	if err := curriculum.Validate(); err != nil {
		return nil, fmt.Errorf("curriculum: %w", err)
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := st.ProfileRepo().Ensure(ctx, LocalProfileID, DefaultProfileName); err != nil {
		st.Close()
		return nil, fmt.Errorf("ensure local profile: %w", err)
	}

	a := &App{
		Store:  st,
		Social: social.NewService(st.ProfileRepo(), st.FollowRepo()),
		now:    time.Now,
	}

	// AI features degrade gracefully: without a provider the app still
	// serves progress, stats, and social commands.
	cfg := llm.ConfigFromEnv()
	if opts.LLM != nil {
		cfg = *opts.LLM
	}
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return a, nil
		}
		cfg = discovered
	}
	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		st.Close()
		return nil, err
	}

	qcfg := questgen.DefaultConfig()
	a.Provider = provider
	a.Questions = questgen.NewService(questgen.NewGenerator(provider, qcfg), qcfg)
	a.Tutor = chat.NewTutor(provider, chat.DefaultConfig())
	return a, nil
}

// HasLLM reports whether an LLM provider was configured. Question
// generation and chat need one; everything else works without.
func (a *App) HasLLM() bool {
	return a.Provider != nil
}

// Close releases the state database.
func (a *App) Close() error {
	return a.Store.Close()
}

// Progress loads the local learner's progress, initializing a fresh
// state on first run.
func (a *App) Progress(ctx context.Context) (*progress.Progress, error) {
	return progress.LoadOrInit(ctx, a.Store.ProfileRepo(), LocalProfileID, a.now())
}

// StartLesson generates (or reuses cached) questions for a lesson and
// opens a practice session over them. Locked lessons are rejected.
// The learner's weak topics steer question generation.
func (a *App) StartLesson(ctx context.Context, lessonID string, force bool) (*practice.Session, error) {
	if !a.HasLLM() {
		return nil, ErrNoProvider
	}
	lesson, err := curriculum.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}

	p, err := a.Progress(ctx)
	if err != nil {
		return nil, err
	}
	if !curriculum.IsUnlocked(lessonID, p.CompletedSet()) {
		return nil, ErrLessonLocked
	}

	questions, err := a.Questions.ForLesson(ctx, lesson, p.WeakTopics, force)
	if err != nil {
		return nil, err
	}
	return practice.NewSession(lesson.Title, questions, nil), nil
}

// StartUnitReview opens a practice session over a whole unit's material.
// Unit reviews do not count as lesson completions.
func (a *App) StartUnitReview(ctx context.Context, unitID string, force bool) (*practice.Session, error) {
	if !a.HasLLM() {
		return nil, ErrNoProvider
	}
	unit, err := curriculum.GetUnit(unitID)
	if err != nil {
		return nil, err
	}
	questions, err := a.Questions.ForUnit(ctx, unit, force)
	if err != nil {
		return nil, err
	}
	return practice.NewSession(unit.Title+" Review", questions, nil), nil
}

// CompleteLesson applies a finished session's outcome to the learner's
// progress and records the lesson event. The progress write is the
// source of truth; a failed event append is reported but does not roll
// the progress back.
func (a *App) CompleteLesson(ctx context.Context, sess *practice.Session, lessonID string) (progress.CompletionResult, error) {
	var zero progress.CompletionResult

	lesson, err := curriculum.GetLesson(lessonID)
	if err != nil {
		return zero, err
	}

	p, err := a.Progress(ctx)
	if err != nil {
		return zero, err
	}

	result := progress.CompleteLesson(p, lessonID, a.now(), sess.WeakTopics())
	if err := a.Store.ProfileRepo().Save(ctx, LocalProfileID, p); err != nil {
		return zero, fmt.Errorf("save progress: %w", err)
	}

	summary := sess.Summarize()
	err = a.Store.EventRepo().AppendLesson(ctx, store.LessonEventData{
		SessionID:   sess.ID,
		LessonID:    lessonID,
		LessonTitle: lesson.Title,
		Score:       summary.Score,
		Total:       summary.Total,
		Correct:     summary.Correct,
		XPEarned:    result.XPEarned,
		StreakAfter: result.NewStreak,
	})
	if err != nil {
		return result, fmt.Errorf("record lesson event: %w", err)
	}
	return result, nil
}

// ResetProgress wipes the local learner's progress back to a fresh
// state. The event log is kept.
func (a *App) ResetProgress(ctx context.Context) error {
	p, err := a.Progress(ctx)
	if err != nil {
		return err
	}
	p.Reset()
	return a.Store.ProfileRepo().Save(ctx, LocalProfileID, p)
}
