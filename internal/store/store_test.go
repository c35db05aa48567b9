package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestActivityAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	seq1, err := repo.AppendActivity(ctx, ActivityRecord{
		UserID:          "u1",
		Kind:            "study-session",
		BaseActivityKey: "STUDY_SESSION_COMPLETE_30MIN",
		DurationMinutes: 45,
		OccurredAt:      now,
	})
	if err != nil {
		t.Fatalf("AppendActivity: %v", err)
	}
	seq2, err := repo.AppendActivity(ctx, ActivityRecord{
		UserID:             "u1",
		Kind:               "practice-test",
		BaseActivityKey:    "PRACTICE_TEST_COMPLETE",
		PerformancePercent: 90,
		OccurredAt:         now.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("AppendActivity: %v", err)
	}
	if seq2 <= seq1 {
		t.Errorf("sequence not increasing: %d then %d", seq1, seq2)
	}

	// Other users' events don't leak in.
	if _, err := repo.AppendActivity(ctx, ActivityRecord{
		UserID: "u2", Kind: "milestone", BaseActivityKey: "MILESTONE_REACHED", OccurredAt: now,
	}); err != nil {
		t.Fatalf("AppendActivity: %v", err)
	}

	events, err := repo.ActivitiesByUser(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("ActivitiesByUser: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Sequence != seq1 || events[1].Sequence != seq2 {
		t.Errorf("events out of order: %d, %d", events[0].Sequence, events[1].Sequence)
	}
	if events[1].PerformancePercent != 90 {
		t.Errorf("PerformancePercent = %d, want 90", events[1].PerformancePercent)
	}
}

func TestAwardsAndTotalXP(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	now := time.Now()

	for _, xp := range []int{50, 300, 100} {
		if _, err := repo.AppendAward(ctx, AwardRecord{
			UserID:          "u1",
			Source:          AwardSourceActivity,
			BaseXP:          xp,
			TotalMultiplier: 1.0,
			FinalXP:         xp,
			Breakdown:       "base",
			OccurredAt:      now,
		}); err != nil {
			t.Fatalf("AppendAward: %v", err)
		}
	}

	total, err := repo.TotalXP(ctx, "u1")
	if err != nil {
		t.Fatalf("TotalXP: %v", err)
	}
	if total != 450 {
		t.Errorf("TotalXP = %d, want 450", total)
	}

	// User with no awards totals zero, not an error.
	total, err = repo.TotalXP(ctx, "ghost")
	if err != nil {
		t.Fatalf("TotalXP: %v", err)
	}
	if total != 0 {
		t.Errorf("TotalXP(ghost) = %d, want 0", total)
	}
}

func TestUnlocksUniquePerUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	now := time.Now()

	rec := UnlockRecord{UserID: "u1", AchievementID: "first-steps", XPReward: 50, UnlockedAt: now}
	if err := repo.AppendUnlock(ctx, rec); err != nil {
		t.Fatalf("AppendUnlock: %v", err)
	}
	if err := repo.AppendUnlock(ctx, rec); err == nil {
		t.Error("duplicate unlock accepted; unique index should reject it")
	}

	// Same achievement for a different user is fine.
	rec.UserID = "u2"
	if err := repo.AppendUnlock(ctx, rec); err != nil {
		t.Fatalf("AppendUnlock for u2: %v", err)
	}

	set, err := repo.UnlockedSet(ctx, "u1")
	if err != nil {
		t.Fatalf("UnlockedSet: %v", err)
	}
	if !set["first-steps"] || len(set) != 1 {
		t.Errorf("UnlockedSet = %v, want {first-steps}", set)
	}
}

func TestLatestMasteryPerSkill(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	updates := []MasteryRecord{
		{UserID: "u1", Subject: "math", Skill: "quadratics", Probability: 0.5, Correct: true},
		{UserID: "u1", Subject: "math", Skill: "quadratics", Probability: 0.575, Correct: true},
		{UserID: "u1", Subject: "reading", Skill: "evidence", Probability: 0.4, Correct: false},
	}
	for _, u := range updates {
		if err := repo.AppendMastery(ctx, u); err != nil {
			t.Fatalf("AppendMastery: %v", err)
		}
	}

	latest, err := repo.LatestMastery(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("LatestMastery: %v", err)
	}
	if len(latest) != 2 {
		t.Fatalf("got %d records, want 2", len(latest))
	}
	byKey := map[string]float64{}
	for _, m := range latest {
		byKey[m.Subject+"/"+m.Skill] = m.Probability
	}
	if byKey["math/quadratics"] != 0.575 {
		t.Errorf("quadratics probability = %f, want latest 0.575", byKey["math/quadratics"])
	}
	if byKey["reading/evidence"] != 0.4 {
		t.Errorf("evidence probability = %f, want 0.4", byKey["reading/evidence"])
	}

	// After restricts the scan to events past a snapshot's sequence.
	tail, err := repo.LatestMastery(ctx, "u1", QueryOpts{After: latest[0].Sequence})
	if err != nil {
		t.Fatalf("LatestMastery with After: %v", err)
	}
	for _, m := range tail {
		if m.Sequence <= latest[0].Sequence {
			t.Errorf("record at sequence %d not past After %d", m.Sequence, latest[0].Sequence)
		}
	}
}

func TestUsageCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.AppendUsage(ctx, "m-lin-001", "u1"); err != nil {
			t.Fatalf("AppendUsage: %v", err)
		}
	}
	if err := repo.AppendUsage(ctx, "m-lin-002", "u2"); err != nil {
		t.Fatalf("AppendUsage: %v", err)
	}

	counts, err := repo.UsageCounts(ctx)
	if err != nil {
		t.Fatalf("UsageCounts: %v", err)
	}
	if counts["m-lin-001"] != 3 || counts["m-lin-002"] != 1 {
		t.Errorf("counts = %v, want m-lin-001:3 m-lin-002:1", counts)
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot before any save")
	}

	for i := 1; i <= 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "u1",
			Sequence:  int64(i * 10),
			Timestamp: time.Now(),
			Data: SnapshotData{
				Version: 1,
				TotalXP: i * 100,
				Mastery: map[string]float64{"math/quadratics": 0.6},
			},
		})
		if err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	snap, err = repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap == nil || snap.Sequence != 30 || snap.Data.TotalXP != 300 {
		t.Fatalf("Latest = %+v, want sequence 30 with 300 XP", snap)
	}

	if err := repo.Prune(ctx, "u1", 1); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	snap, err = repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("Latest after prune: %v", err)
	}
	if snap == nil || snap.Sequence != 30 {
		t.Errorf("latest snapshot lost in prune: %+v", snap)
	}
}

func TestRemoveDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "prepforge.db")
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	if err := RemoveDatabase(dbPath); err != nil {
		t.Fatalf("RemoveDatabase: %v", err)
	}
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s still present", p)
		}
	}

	// Missing sidecars are fine; a missing main file is reported.
	if err := os.WriteFile(dbPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := RemoveDatabase(dbPath); err != nil {
		t.Fatalf("RemoveDatabase without sidecars: %v", err)
	}
	if err := RemoveDatabase(dbPath); !os.IsNotExist(err) {
		t.Errorf("removing missing database: got %v, want not-exist", err)
	}
}
