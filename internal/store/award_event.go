package store

import (
	"context"
	"fmt"

	"github.com/prepforge/prepforge/ent"
	"github.com/prepforge/prepforge/ent/awardevent"
)

func (r *eventRepo) AppendAward(ctx context.Context, rec AwardRecord) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AwardEvent.Create().
		SetSequence(seqNum).
		SetUserID(rec.UserID).
		SetSource(rec.Source).
		SetBaseXp(rec.BaseXP).
		SetTotalMultiplier(rec.TotalMultiplier).
		SetFinalXp(rec.FinalXP).
		SetBreakdown(rec.Breakdown).
		SetOccurredAt(rec.OccurredAt)

	if rec.ActivitySequence > 0 {
		builder = builder.SetActivitySequence(rec.ActivitySequence)
	}
	if rec.AchievementID != "" {
		builder = builder.SetAchievementID(rec.AchievementID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return 0, fmt.Errorf("save award event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) AwardsByUser(ctx context.Context, userID string, opts QueryOpts) ([]AwardRecord, error) {
	query := r.client.AwardEvent.Query().
		Where(awardevent.UserIDEQ(userID)).
		Order(ent.Asc(awardevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(awardevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(awardevent.OccurredAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(awardevent.OccurredAtLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query award events: %w", err)
	}

	records := make([]AwardRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AwardRecord{
			Sequence:         e.Sequence,
			UserID:           e.UserID,
			Source:           e.Source,
			BaseXP:           e.BaseXp,
			TotalMultiplier:  e.TotalMultiplier,
			FinalXP:          e.FinalXp,
			Breakdown:        e.Breakdown,
			ActivitySequence: e.ActivitySequence,
			AchievementID:    e.AchievementID,
			OccurredAt:       e.OccurredAt,
		})
	}
	return records, nil
}

// TotalXP folds awards in Go rather than SQL SUM; per-user award counts
// stay small and SUM over an empty set scans as NULL.
func (r *eventRepo) TotalXP(ctx context.Context, userID string) (int, error) {
	awards, err := r.AwardsByUser(ctx, userID, QueryOpts{})
	if err != nil {
		return 0, err
	}
	total := 0
	for _, a := range awards {
		total += a.FinalXP
	}
	return total, nil
}
