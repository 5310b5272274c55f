package store

import (
	"context"
	"time"

	"github.com/chemcat/chemcat/internal/progress"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event with its row ID and
// timestamp, for inspection commands.
type LLMRequestRecord struct {
	ID int
	LLMRequestEventData
	Timestamp time.Time
}

// LLMUsage aggregates request counts and token totals for one model.
type LLMUsage struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LessonEventData captures one completed practice session.
type LessonEventData struct {
	SessionID   string
	LessonID    string
	LessonTitle string
	Score       int
	Total       int
	Correct     int
	XPEarned    int
	StreakAfter int
}

// LessonEventRecord is a stored lesson event with its timestamp.
type LessonEventRecord struct {
	LessonEventData
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendLesson records a completed practice session.
	AppendLesson(ctx context.Context, data LessonEventData) error

	// RecentLessons returns the most recent lesson events, newest first.
	RecentLessons(ctx context.Context, limit int) ([]LessonEventRecord, error)

	// RecentLLMRequests returns the most recent LLM request events,
	// newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)

	// GetLLMRequest returns one LLM request event by row ID, or nil if
	// it does not exist.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestRecord, error)

	// LLMUsage aggregates LLM request events per model.
	LLMUsage(ctx context.Context) ([]LLMUsage, error)
}

// Profile is the identity view of a stored profile, as surfaced on the
// leaderboard and in search results.
type Profile struct {
	ID               string
	Name             string
	Avatar           string
	ThemeColor       string
	DailyGoal        int
	Streak           int
	LessonsCompleted int
	Energy           int
	EarnedBadgeIDs   []string
}

// ProfileIdentity is the learner-editable part of a profile.
type ProfileIdentity struct {
	Name       string
	Avatar     string
	ThemeColor string
	DailyGoal  int
}

// ProfileRepo persists profiles and their progress. Load and Save
// satisfy the progress.Store interface.
type ProfileRepo interface {
	// Ensure creates the profile with a fresh progress state if it does
	// not exist yet.
	Ensure(ctx context.Context, id, name string) error

	// Load returns the saved progress for a profile, or
	// progress.ErrNotFound if the profile does not exist.
	Load(ctx context.Context, profileID string) (*progress.Progress, error)

	// Save upserts the progress for a profile.
	Save(ctx context.Context, profileID string, p *progress.Progress) error

	// Get returns the identity view of a profile, or progress.ErrNotFound.
	Get(ctx context.Context, id string) (*Profile, error)

	// SetIdentity updates the learner-editable fields. Zero-valued
	// fields are left unchanged.
	SetIdentity(ctx context.Context, id string, ident ProfileIdentity) error

	// Search finds profiles whose name contains the query,
	// case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]Profile, error)

	// Leaderboard returns profiles ordered by streak, then completed
	// lesson count, descending.
	Leaderboard(ctx context.Context, limit int) ([]Profile, error)
}

// FollowRepo manages directed follow edges between profiles.
type FollowRepo interface {
	Follow(ctx context.Context, followerID, followedID string) error
	Unfollow(ctx context.Context, followerID, followedID string) error

	// Following returns the IDs of profiles the follower tracks.
	Following(ctx context.Context, followerID string) ([]string, error)

	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
}
