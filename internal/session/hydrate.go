package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/prepforge/prepforge/internal/mastery"
	"github.com/prepforge/prepforge/internal/questionbank"
	"github.com/prepforge/prepforge/internal/store"
)

// Hydrate rebuilds in-memory practice state at startup. The user's
// latest snapshot seeds mastery probabilities, and only mastery events
// past the snapshot's sequence are replayed on top; without a snapshot
// the whole log is replayed. Question usage counters are global and come
// from usage events. Call once, before serving batches.
func Hydrate(ctx context.Context, repo store.EventRepo, snapshots store.SnapshotRepo, pool *questionbank.StaticPool, masteries mastery.Store, userID string) error {
	counts, err := repo.UsageCounts(ctx)
	if err != nil {
		return fmt.Errorf("load usage counts: %w", err)
	}
	for id, n := range counts {
		pool.SetUsage(id, n)
	}

	var after int64
	if snapshots != nil {
		snap, err := snapshots.Latest(ctx, userID)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			after = snap.Sequence
			for key, p := range snap.Data.Mastery {
				subject, skill, ok := strings.Cut(key, "/")
				if !ok {
					continue
				}
				if err := masteries.Put(ctx, userID, subject, skill, p); err != nil {
					return fmt.Errorf("seed mastery %s: %w", key, err)
				}
			}
		}
	}

	latest, err := repo.LatestMastery(ctx, userID, store.QueryOpts{After: after})
	if err != nil {
		return fmt.Errorf("load mastery: %w", err)
	}
	for _, m := range latest {
		if err := masteries.Put(ctx, userID, m.Subject, m.Skill, m.Probability); err != nil {
			return fmt.Errorf("hydrate mastery %s/%s: %w", m.Subject, m.Skill, err)
		}
	}
	return nil
}
