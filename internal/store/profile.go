package store

import (
	"context"
	"fmt"

	"github.com/chemcat/chemcat/ent"
	"github.com/chemcat/chemcat/ent/profile"
	"github.com/chemcat/chemcat/internal/progress"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Ensure(ctx context.Context, id, name string) error {
	exists, err := r.client.Profile.Query().
		Where(profile.ID(id)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check profile: %w", err)
	}
	if exists {
		return nil
	}

	fresh := progress.NewProgress()
	_, err = r.client.Profile.Create().
		SetID(id).
		SetName(name).
		SetStreakFreezes(fresh.StreakFreezesAvailable).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Load(ctx context.Context, profileID string) (*progress.Progress, error) {
	p, err := r.client.Profile.Get(ctx, profileID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, progress.ErrNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return &progress.Progress{
		CompletedLessons:       p.CompletedLessons,
		Streak:                 p.Streak,
		LastCompletedDate:      p.LastCompletedDate,
		StreakFreezesAvailable: p.StreakFreezes,
		EarnedBadgeIDs:         p.EarnedBadgeIds,
		Energy:                 p.Energy,
		WeakTopics:             p.WeakTopics,
		DailyXP:                p.DailyXp,
	}, nil
}

func (r *profileRepo) Save(ctx context.Context, profileID string, p *progress.Progress) error {
	err := r.client.Profile.UpdateOneID(profileID).
		SetCompletedLessons(p.CompletedLessons).
		SetLessonsCompleted(len(p.CompletedLessons)).
		SetStreak(p.Streak).
		SetLastCompletedDate(p.LastCompletedDate).
		SetStreakFreezes(p.StreakFreezesAvailable).
		SetEarnedBadgeIds(p.EarnedBadgeIDs).
		SetEnergy(p.Energy).
		SetWeakTopics(p.WeakTopics).
		SetDailyXp(p.DailyXP).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return progress.ErrNotFound
		}
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	p, err := r.client.Profile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, progress.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return entProfileToProfile(p), nil
}

func (r *profileRepo) SetIdentity(ctx context.Context, id string, ident ProfileIdentity) error {
	u := r.client.Profile.UpdateOneID(id)
	if ident.Name != "" {
		u = u.SetName(ident.Name)
	}
	if ident.Avatar != "" {
		u = u.SetAvatar(ident.Avatar)
	}
	if ident.ThemeColor != "" {
		u = u.SetThemeColor(ident.ThemeColor)
	}
	if ident.DailyGoal > 0 {
		u = u.SetDailyGoal(ident.DailyGoal)
	}
	if err := u.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return progress.ErrNotFound
		}
		return fmt.Errorf("update profile identity: %w", err)
	}
	return nil
}

func (r *profileRepo) Search(ctx context.Context, query string, limit int) ([]Profile, error) {
	q := r.client.Profile.Query().
		Where(profile.NameContainsFold(query)).
		Order(ent.Asc(profile.FieldName))
	if limit > 0 {
		q = q.Limit(limit)
	}

	profiles, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search profiles: %w", err)
	}
	return entProfilesToProfiles(profiles), nil
}

func (r *profileRepo) Leaderboard(ctx context.Context, limit int) ([]Profile, error) {
	q := r.client.Profile.Query().
		Order(
			ent.Desc(profile.FieldStreak),
			ent.Desc(profile.FieldLessonsCompleted),
		)
	if limit > 0 {
		q = q.Limit(limit)
	}

	profiles, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	return entProfilesToProfiles(profiles), nil
}

func entProfileToProfile(p *ent.Profile) *Profile {
	return &Profile{
		ID:               p.ID,
		Name:             p.Name,
		Avatar:           p.Avatar,
		ThemeColor:       p.ThemeColor,
		DailyGoal:        p.DailyGoal,
		Streak:           p.Streak,
		LessonsCompleted: p.LessonsCompleted,
		Energy:           p.Energy,
		EarnedBadgeIDs:   p.EarnedBadgeIds,
	}
}

func entProfilesToProfiles(profiles []*ent.Profile) []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = *entProfileToProfile(p)
	}
	return out
}
