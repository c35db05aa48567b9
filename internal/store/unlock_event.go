package store

import (
	"context"
	"fmt"

	"github.com/prepforge/prepforge/ent"
	"github.com/prepforge/prepforge/ent/unlockevent"
)

func (r *eventRepo) AppendUnlock(ctx context.Context, rec UnlockRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.UnlockEvent.Create().
		SetSequence(seqNum).
		SetUserID(rec.UserID).
		SetAchievementID(rec.AchievementID).
		SetXpReward(rec.XPReward).
		SetUnlockedAt(rec.UnlockedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save unlock event: %w", err)
	}
	return nil
}

func (r *eventRepo) UnlockedSet(ctx context.Context, userID string) (map[string]bool, error) {
	ids, err := r.client.UnlockEvent.Query().
		Where(unlockevent.UserIDEQ(userID)).
		Select(unlockevent.FieldAchievementID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unlocks: %w", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *eventRepo) UnlocksByUser(ctx context.Context, userID string) ([]UnlockRecord, error) {
	events, err := r.client.UnlockEvent.Query().
		Where(unlockevent.UserIDEQ(userID)).
		Order(ent.Asc(unlockevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unlock events: %w", err)
	}

	records := make([]UnlockRecord, 0, len(events))
	for _, e := range events {
		records = append(records, UnlockRecord{
			Sequence:      e.Sequence,
			UserID:        e.UserID,
			AchievementID: e.AchievementID,
			XPReward:      e.XpReward,
			UnlockedAt:    e.UnlockedAt,
		})
	}
	return records, nil
}
