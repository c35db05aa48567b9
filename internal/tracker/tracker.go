// Package tracker orchestrates progression on top of the event store:
// each recorded activity is scored, persisted, folded into progress, and
// checked against the achievement catalog, all under a per-user lock so
// concurrent recordings for the same learner serialize.
package tracker

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prepforge/prepforge/internal/achievements"
	"github.com/prepforge/prepforge/internal/leveling"
	"github.com/prepforge/prepforge/internal/progress"
	"github.com/prepforge/prepforge/internal/store"
	"github.com/prepforge/prepforge/internal/xp"
)

// Outcome reports everything one recorded activity changed.
type Outcome struct {
	// Sequence is the persisted activity event's global sequence.
	Sequence int64

	// Award is the scored result for this activity.
	Award xp.Award

	// Unlocks are achievements newly satisfied by this activity. Their
	// XP rewards are already credited and included in Progress.
	Unlocks []achievements.Unlock

	// Progress is the user's aggregate after all crediting.
	Progress progress.UserProgress

	// LevelUp compares level placement before and after this activity.
	LevelUp progress.LevelUp
}

const (
	// snapshotInterval is the number of sequence numbers between state
	// snapshots for one user.
	snapshotInterval = 25

	// snapshotKeep is how many snapshots survive pruning per user.
	snapshotKeep = 3
)

// Tracker records activities and maintains derived progression state.
type Tracker struct {
	repo      store.EventRepo
	snapshots store.SnapshotRepo
	calc      *xp.Calculator
	agg       *progress.Aggregator
	engine    *achievements.Engine

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// New creates a tracker. The calculator and leveling config must match
// across all writers of the same store or derived levels will disagree.
func New(repo store.EventRepo, calc *xp.Calculator, lvl leveling.Config, engine *achievements.Engine) *Tracker {
	return &Tracker{
		repo:   repo,
		calc:   calc,
		agg:    progress.NewAggregator(calc, lvl),
		engine: engine,
		users:  map[string]*sync.Mutex{},
	}
}

// WithSnapshots enables periodic state snapshots so readers can hydrate
// without replaying the whole event log.
func (t *Tracker) WithSnapshots(repo store.SnapshotRepo) *Tracker {
	t.snapshots = repo
	return t
}

// RecordActivity scores event, persists the activity and its award,
// evaluates achievements, credits any unlock rewards exactly once, and
// returns the combined outcome. Recordings for the same user serialize;
// different users proceed concurrently.
func (t *Tracker) RecordActivity(ctx context.Context, userID string, event xp.Event, at time.Time) (Outcome, error) {
	lock := t.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	award, err := t.calc.Compute(event)
	if err != nil {
		return Outcome{}, err
	}

	beforeXP, err := t.repo.TotalXP(ctx, userID)
	if err != nil {
		return Outcome{}, fmt.Errorf("read total XP: %w", err)
	}

	seq, err := t.repo.AppendActivity(ctx, activityRecord(userID, event, at))
	if err != nil {
		return Outcome{}, fmt.Errorf("append activity: %w", err)
	}

	if _, err := t.repo.AppendAward(ctx, store.AwardRecord{
		UserID:           userID,
		Source:           store.AwardSourceActivity,
		BaseXP:           award.BaseXP,
		TotalMultiplier:  award.TotalMultiplier,
		FinalXP:          award.FinalXP,
		Breakdown:        award.Breakdown,
		ActivitySequence: seq,
		OccurredAt:       at,
	}); err != nil {
		return Outcome{}, fmt.Errorf("append award: %w", err)
	}

	unlocks, err := t.evaluateUnlocks(ctx, userID, at)
	if err != nil {
		return Outcome{}, err
	}

	prog, err := t.foldProgress(ctx, userID, at)
	if err != nil {
		return Outcome{}, err
	}

	levelUp, err := t.agg.CheckLevelUp(beforeXP, prog.TotalXP)
	if err != nil {
		return Outcome{}, err
	}

	if err := t.maybeSnapshot(ctx, userID, seq, prog.TotalXP, at); err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Sequence: seq,
		Award:    award,
		Unlocks:  unlocks,
		Progress: prog,
		LevelUp:  levelUp,
	}, nil
}

// Progress rebuilds the user's aggregate from the persisted award log.
func (t *Tracker) Progress(ctx context.Context, userID string, now time.Time) (progress.UserProgress, error) {
	return t.foldProgress(ctx, userID, now)
}

// CurrentStreak computes the user's consecutive-day activity streak from
// the event log.
func (t *Tracker) CurrentStreak(ctx context.Context, userID string, now time.Time) (int, error) {
	activities, err := t.repo.ActivitiesByUser(ctx, userID, store.QueryOpts{})
	if err != nil {
		return 0, fmt.Errorf("read activities: %w", err)
	}
	times := make([]time.Time, len(activities))
	for i, a := range activities {
		times[i] = a.OccurredAt
	}
	return progress.DayStreak(times, now), nil
}

// AchievementProgress reports partial progress toward locked achievements.
func (t *Tracker) AchievementProgress(ctx context.Context, userID string, now time.Time) ([]achievements.Progress, error) {
	activities, err := t.repo.ActivitiesByUser(ctx, userID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("read activities: %w", err)
	}
	unlocked, err := t.repo.UnlockedSet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read unlocks: %w", err)
	}
	_, prog, err := t.engine.Evaluate(deriveStats(activities), unlocked, now)
	return prog, err
}

// evaluateUnlocks runs the achievement engine against stats derived from
// the full activity log and persists every new unlock, crediting its XP
// reward as a separate award. The unique index on (user, achievement)
// backs the at-most-once guarantee even across processes.
func (t *Tracker) evaluateUnlocks(ctx context.Context, userID string, at time.Time) ([]achievements.Unlock, error) {
	activities, err := t.repo.ActivitiesByUser(ctx, userID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("read activities: %w", err)
	}
	unlocked, err := t.repo.UnlockedSet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read unlocks: %w", err)
	}

	unlocks, _, err := t.engine.Evaluate(deriveStats(activities), unlocked, at)
	if err != nil {
		return nil, err
	}

	var persisted []achievements.Unlock
	for _, u := range unlocks {
		err := t.repo.AppendUnlock(ctx, store.UnlockRecord{
			UserID:        userID,
			AchievementID: u.Achievement.ID,
			XPReward:      u.Achievement.XPReward,
			UnlockedAt:    u.UnlockedAt,
		})
		if err != nil {
			// Lost a race with another writer; the reward was already
			// credited by whoever won.
			continue
		}
		if u.Achievement.XPReward > 0 {
			if _, err := t.repo.AppendAward(ctx, store.AwardRecord{
				UserID:          userID,
				Source:          store.AwardSourceAchievement,
				BaseXP:          u.Achievement.XPReward,
				TotalMultiplier: 1.0,
				FinalXP:         u.Achievement.XPReward,
				Breakdown:       fmt.Sprintf("achievement %s = %d XP", u.Achievement.ID, u.Achievement.XPReward),
				AchievementID:   u.Achievement.ID,
				OccurredAt:      u.UnlockedAt,
			}); err != nil {
				return nil, fmt.Errorf("credit achievement %s: %w", u.Achievement.ID, err)
			}
		}
		persisted = append(persisted, u)
	}
	return persisted, nil
}

// maybeSnapshot captures the user's derived state once enough sequence
// numbers have passed since the last snapshot, then prunes old ones.
func (t *Tracker) maybeSnapshot(ctx context.Context, userID string, seq int64, totalXP int, at time.Time) error {
	if t.snapshots == nil {
		return nil
	}
	last, err := t.snapshots.Latest(ctx, userID)
	if err != nil {
		return fmt.Errorf("read latest snapshot: %w", err)
	}
	if last != nil && seq-last.Sequence < snapshotInterval {
		return nil
	}

	unlocked, err := t.repo.UnlockedSet(ctx, userID)
	if err != nil {
		return fmt.Errorf("read unlocks: %w", err)
	}
	ids := make([]string, 0, len(unlocked))
	for id := range unlocked {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	masteries, err := t.repo.LatestMastery(ctx, userID, store.QueryOpts{})
	if err != nil {
		return fmt.Errorf("read mastery: %w", err)
	}
	masteryMap := make(map[string]float64, len(masteries))
	for _, m := range masteries {
		masteryMap[m.Subject+"/"+m.Skill] = m.Probability
	}

	err = t.snapshots.Save(ctx, &store.Snapshot{
		UserID:    userID,
		Sequence:  seq,
		Timestamp: at,
		Data: store.SnapshotData{
			Version:  1,
			TotalXP:  totalXP,
			Unlocked: ids,
			Mastery:  masteryMap,
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := t.snapshots.Prune(ctx, userID, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (t *Tracker) foldProgress(ctx context.Context, userID string, now time.Time) (progress.UserProgress, error) {
	awards, err := t.repo.AwardsByUser(ctx, userID, store.QueryOpts{})
	if err != nil {
		return progress.UserProgress{}, fmt.Errorf("read awards: %w", err)
	}
	credited := make([]progress.Credited, len(awards))
	for i, a := range awards {
		credited[i] = progress.Credited{Amount: a.FinalXP, At: a.OccurredAt}
	}
	return t.agg.FoldAwards(credited, now)
}

func (t *Tracker) userLock(userID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	lock, ok := t.users[userID]
	if !ok {
		lock = &sync.Mutex{}
		t.users[userID] = lock
	}
	return lock
}

func activityRecord(userID string, event xp.Event, at time.Time) store.ActivityRecord {
	return store.ActivityRecord{
		UserID:             userID,
		Kind:               string(event.Kind),
		BaseActivityKey:    event.BaseActivityKey,
		Difficulty:         string(event.Difficulty),
		DurationMinutes:    event.DurationMinutes,
		PerformancePercent: event.PerformancePercent,
		StreakDays:         event.StreakDays,
		IsGroupActivity:    event.IsGroupActivity,
		TimeOfDay:          string(event.TimeOfDay),
		IsWeekend:          event.IsWeekend,
		OccurredAt:         at,
	}
}
