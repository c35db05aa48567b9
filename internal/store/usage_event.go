package store

import (
	"context"
	"fmt"

	"github.com/prepforge/prepforge/ent/usageevent"
)

func (r *eventRepo) AppendUsage(ctx context.Context, questionID, userID string) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.UsageEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(questionID).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save usage event: %w", err)
	}
	return nil
}

func (r *eventRepo) UsageCounts(ctx context.Context) (map[string]int, error) {
	ids, err := r.client.UsageEvent.Query().
		Select(usageevent.FieldQuestionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query usage events: %w", err)
	}
	counts := make(map[string]int)
	for _, id := range ids {
		counts[id]++
	}
	return counts, nil
}
