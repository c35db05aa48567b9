package store

import (
	"context"
	"fmt"

	"github.com/prepforge/prepforge/ent"
	"github.com/prepforge/prepforge/ent/activityevent"
)

func (r *eventRepo) AppendActivity(ctx context.Context, rec ActivityRecord) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetUserID(rec.UserID).
		SetKind(rec.Kind).
		SetBaseActivityKey(rec.BaseActivityKey).
		SetDurationMinutes(rec.DurationMinutes).
		SetPerformancePercent(rec.PerformancePercent).
		SetStreakDays(rec.StreakDays).
		SetIsGroupActivity(rec.IsGroupActivity).
		SetTimeOfDay(rec.TimeOfDay).
		SetIsWeekend(rec.IsWeekend).
		SetOccurredAt(rec.OccurredAt)

	if rec.Difficulty != "" {
		builder = builder.SetDifficulty(rec.Difficulty)
	}

	if _, err := builder.Save(ctx); err != nil {
		return 0, fmt.Errorf("save activity event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) ActivitiesByUser(ctx context.Context, userID string, opts QueryOpts) ([]ActivityRecord, error) {
	query := r.client.ActivityEvent.Query().
		Where(activityevent.UserIDEQ(userID)).
		Order(ent.Asc(activityevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(activityevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(activityevent.OccurredAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(activityevent.OccurredAtLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	records := make([]ActivityRecord, 0, len(events))
	for _, e := range events {
		rec := ActivityRecord{
			Sequence:           e.Sequence,
			UserID:             e.UserID,
			Kind:               e.Kind,
			BaseActivityKey:    e.BaseActivityKey,
			DurationMinutes:    e.DurationMinutes,
			PerformancePercent: e.PerformancePercent,
			StreakDays:         e.StreakDays,
			IsGroupActivity:    e.IsGroupActivity,
			TimeOfDay:          e.TimeOfDay,
			IsWeekend:          e.IsWeekend,
			OccurredAt:         e.OccurredAt,
		}
		rec.Difficulty = e.Difficulty
		records = append(records, rec)
	}
	return records, nil
}
