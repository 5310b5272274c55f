package store

import (
	"context"
	"fmt"

	"github.com/chemcat/chemcat/ent"
	"github.com/chemcat/chemcat/ent/lessonevent"
)

func (r *eventRepo) AppendLesson(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetLessonTitle(data.LessonTitle).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetCorrect(data.Correct).
		SetXpEarned(data.XPEarned).
		SetStreakAfter(data.StreakAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLessons(ctx context.Context, limit int) ([]LessonEventRecord, error) {
	q := r.client.LessonEvent.Query().
		Order(ent.Desc(lessonevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}

	out := make([]LessonEventRecord, len(events))
	for i, ev := range events {
		out[i] = LessonEventRecord{
			LessonEventData: LessonEventData{
				SessionID:   ev.SessionID,
				LessonID:    ev.LessonID,
				LessonTitle: ev.LessonTitle,
				Score:       ev.Score,
				Total:       ev.Total,
				Correct:     ev.Correct,
				XPEarned:    ev.XpEarned,
				StreakAfter: ev.StreakAfter,
			},
			Timestamp: ev.Timestamp,
		}
	}
	return out, nil
}
