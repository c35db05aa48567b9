package tracker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prepforge/prepforge/internal/achievements"
	"github.com/prepforge/prepforge/internal/leveling"
	"github.com/prepforge/prepforge/internal/store"
	"github.com/prepforge/prepforge/internal/xp"
)

// memRepo is an in-memory store.EventRepo for tests.
type memRepo struct {
	seq        int64
	activities []store.ActivityRecord
	awards     []store.AwardRecord
	unlocks    []store.UnlockRecord
	mastery    []store.MasteryRecord
	usage      map[string]int
}

func newMemRepo() *memRepo {
	return &memRepo{usage: map[string]int{}}
}

func (m *memRepo) next() int64 {
	m.seq++
	return m.seq
}

func (m *memRepo) AppendActivity(_ context.Context, rec store.ActivityRecord) (int64, error) {
	rec.Sequence = m.next()
	m.activities = append(m.activities, rec)
	return rec.Sequence, nil
}

func (m *memRepo) ActivitiesByUser(_ context.Context, userID string, _ store.QueryOpts) ([]store.ActivityRecord, error) {
	var out []store.ActivityRecord
	for _, a := range m.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memRepo) AppendAward(_ context.Context, rec store.AwardRecord) (int64, error) {
	rec.Sequence = m.next()
	m.awards = append(m.awards, rec)
	return rec.Sequence, nil
}

func (m *memRepo) AwardsByUser(_ context.Context, userID string, _ store.QueryOpts) ([]store.AwardRecord, error) {
	var out []store.AwardRecord
	for _, a := range m.awards {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memRepo) TotalXP(_ context.Context, userID string) (int, error) {
	total := 0
	for _, a := range m.awards {
		if a.UserID == userID {
			total += a.FinalXP
		}
	}
	return total, nil
}

func (m *memRepo) AppendUnlock(_ context.Context, rec store.UnlockRecord) error {
	for _, u := range m.unlocks {
		if u.UserID == rec.UserID && u.AchievementID == rec.AchievementID {
			return fmt.Errorf("unlock exists: %s/%s", rec.UserID, rec.AchievementID)
		}
	}
	rec.Sequence = m.next()
	m.unlocks = append(m.unlocks, rec)
	return nil
}

func (m *memRepo) UnlockedSet(_ context.Context, userID string) (map[string]bool, error) {
	set := map[string]bool{}
	for _, u := range m.unlocks {
		if u.UserID == userID {
			set[u.AchievementID] = true
		}
	}
	return set, nil
}

func (m *memRepo) UnlocksByUser(_ context.Context, userID string) ([]store.UnlockRecord, error) {
	var out []store.UnlockRecord
	for _, u := range m.unlocks {
		if u.UserID == userID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memRepo) AppendMastery(_ context.Context, rec store.MasteryRecord) error {
	rec.Sequence = m.next()
	m.mastery = append(m.mastery, rec)
	return nil
}

func (m *memRepo) LatestMastery(_ context.Context, userID string, opts store.QueryOpts) ([]store.MasteryRecord, error) {
	latest := map[string]store.MasteryRecord{}
	var order []string
	for _, r := range m.mastery {
		if r.UserID != userID || r.Sequence <= opts.After {
			continue
		}
		key := r.Subject + "/" + r.Skill
		if _, ok := latest[key]; !ok {
			order = append(order, key)
		}
		latest[key] = r
	}
	out := make([]store.MasteryRecord, 0, len(order))
	for _, key := range order {
		out = append(out, latest[key])
	}
	return out, nil
}

func (m *memRepo) AppendUsage(_ context.Context, questionID, _ string) error {
	m.usage[questionID]++
	return nil
}

func (m *memRepo) UsageCounts(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(m.usage))
	for id, n := range m.usage {
		counts[id] = n
	}
	return counts, nil
}

// memSnapshots is an in-memory store.SnapshotRepo for tests.
type memSnapshots struct {
	saved []store.Snapshot
}

func (m *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, *snap)
	return nil
}

func (m *memSnapshots) Latest(_ context.Context, userID string) (*store.Snapshot, error) {
	var latest *store.Snapshot
	for i := range m.saved {
		s := m.saved[i]
		if s.UserID != userID {
			continue
		}
		if latest == nil || s.Sequence > latest.Sequence {
			latest = &s
		}
	}
	return latest, nil
}

func (m *memSnapshots) Prune(_ context.Context, userID string, keep int) error {
	var mine, others []store.Snapshot
	for _, s := range m.saved {
		if s.UserID == userID {
			mine = append(mine, s)
		} else {
			others = append(others, s)
		}
	}
	if len(mine) > keep {
		mine = mine[len(mine)-keep:]
	}
	m.saved = append(others, mine...)
	return nil
}

func newTestTracker(repo store.EventRepo) *Tracker {
	calc := xp.NewCalculator(xp.DefaultConfig())
	engine := achievements.NewEngine(achievements.SeedCatalog())
	return New(repo, calc, leveling.Config{}, engine)
}

func TestRecordActivityScoresAndPersists(t *testing.T) {
	repo := newMemRepo()
	tr := newTestTracker(repo)
	ctx := context.Background()
	at := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	out, err := tr.RecordActivity(ctx, "u1", xp.Event{
		Kind:            xp.KindStudySession,
		BaseActivityKey: xp.KeySessionComplete30Min,
		DurationMinutes: 45,
	}, at)
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}

	if out.Award.FinalXP != 50 {
		t.Errorf("FinalXP = %d, want 50", out.Award.FinalXP)
	}
	if out.Progress.TotalXP != 50 || out.Progress.CurrentLevel != 1 {
		t.Errorf("progress = %+v, want 50 XP at level 1", out.Progress)
	}
	if out.LevelUp.LeveledUp {
		t.Error("unexpected level up on first small award")
	}
	if len(repo.activities) != 1 || len(repo.awards) != 1 {
		t.Fatalf("persisted %d activities, %d awards; want 1 and 1",
			len(repo.activities), len(repo.awards))
	}
	if repo.awards[0].ActivitySequence != out.Sequence {
		t.Errorf("award not linked to activity sequence %d", out.Sequence)
	}
}

func TestRecordActivityUnlocksAndLevelsUp(t *testing.T) {
	repo := newMemRepo()
	tr := newTestTracker(repo)
	ctx := context.Background()
	at := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	if _, err := tr.RecordActivity(ctx, "u1", xp.Event{
		Kind:            xp.KindStudySession,
		BaseActivityKey: xp.KeySessionComplete30Min,
		DurationMinutes: 45,
	}, at); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}

	out, err := tr.RecordActivity(ctx, "u1", xp.Event{
		Kind:               xp.KindPracticeTest,
		BaseActivityKey:    xp.KeyPracticeTestComplete,
		PerformancePercent: 90,
	}, at.Add(time.Hour))
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}

	// 200 base x1.5 performance.
	if out.Award.FinalXP != 300 {
		t.Errorf("FinalXP = %d, want 300", out.Award.FinalXP)
	}

	// First practice test satisfies test-drive, worth 60 XP.
	if len(out.Unlocks) != 1 || out.Unlocks[0].Achievement.ID != "test-drive" {
		t.Fatalf("unlocks = %+v, want exactly test-drive", out.Unlocks)
	}
	if out.Progress.TotalXP != 50+300+60 {
		t.Errorf("TotalXP = %d, want 410", out.Progress.TotalXP)
	}
	if !out.LevelUp.LeveledUp || out.LevelUp.FromLevel != 1 || out.LevelUp.ToLevel != 2 {
		t.Errorf("level up = %+v, want 1 -> 2", out.LevelUp)
	}
}

func TestAchievementRewardCreditedOnce(t *testing.T) {
	repo := newMemRepo()
	tr := newTestTracker(repo)
	ctx := context.Background()
	at := time.Now()

	event := xp.Event{
		Kind:               xp.KindPracticeTest,
		BaseActivityKey:    xp.KeyPracticeTestComplete,
		PerformancePercent: 60,
	}
	for i := 0; i < 2; i++ {
		if _, err := tr.RecordActivity(ctx, "u1", event, at.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("RecordActivity %d: %v", i, err)
		}
	}

	creditedAchievements := 0
	for _, a := range repo.awards {
		if a.Source == store.AwardSourceAchievement {
			creditedAchievements++
		}
	}
	if creditedAchievements != 1 {
		t.Errorf("achievement awards = %d, want exactly 1", creditedAchievements)
	}
	if len(repo.unlocks) != 1 {
		t.Errorf("unlock events = %d, want 1", len(repo.unlocks))
	}
}

func TestUnknownActivityRecordsZeroAward(t *testing.T) {
	repo := newMemRepo()
	tr := newTestTracker(repo)

	out, err := tr.RecordActivity(context.Background(), "u1", xp.Event{
		Kind:            xp.KindStudySession,
		BaseActivityKey: "NOT_A_REAL_KEY",
	}, time.Now())
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if out.Award.FinalXP != 0 {
		t.Errorf("FinalXP = %d, want 0 for unknown activity", out.Award.FinalXP)
	}
	if len(repo.activities) != 1 {
		t.Error("unknown activity should still be persisted")
	}
}

func TestUsersIsolated(t *testing.T) {
	repo := newMemRepo()
	tr := newTestTracker(repo)
	ctx := context.Background()
	at := time.Now()

	event := xp.Event{
		Kind:            xp.KindStudySession,
		BaseActivityKey: xp.KeySessionComplete30Min,
		DurationMinutes: 30,
	}
	if _, err := tr.RecordActivity(ctx, "u1", event, at); err != nil {
		t.Fatalf("RecordActivity u1: %v", err)
	}
	out, err := tr.RecordActivity(ctx, "u2", event, at)
	if err != nil {
		t.Fatalf("RecordActivity u2: %v", err)
	}
	if out.Progress.TotalXP != 50 {
		t.Errorf("u2 TotalXP = %d, want 50 (u1 awards must not leak)", out.Progress.TotalXP)
	}
}

func TestSnapshotsSavedOnInterval(t *testing.T) {
	repo := newMemRepo()
	snaps := &memSnapshots{}
	tr := newTestTracker(repo).WithSnapshots(snaps)
	ctx := context.Background()
	at := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	event := xp.Event{
		Kind:            xp.KindStudySession,
		BaseActivityKey: xp.KeySessionComplete30Min,
		DurationMinutes: 30,
	}

	out, err := tr.RecordActivity(ctx, "u1", event, at)
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if len(snaps.saved) != 1 {
		t.Fatalf("snapshots after first activity = %d, want 1", len(snaps.saved))
	}
	first := snaps.saved[0]
	if first.UserID != "u1" || first.Sequence != out.Sequence {
		t.Errorf("snapshot = %+v, want user u1 at sequence %d", first, out.Sequence)
	}
	if first.Data.TotalXP != 50 {
		t.Errorf("snapshot TotalXP = %d, want 50", first.Data.TotalXP)
	}

	// Within the interval no further snapshots are taken.
	if _, err := tr.RecordActivity(ctx, "u1", event, at.Add(time.Minute)); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if len(snaps.saved) != 1 {
		t.Fatalf("snapshots within interval = %d, want still 1", len(snaps.saved))
	}

	// Enough sequence numbers later a fresh snapshot captures newer state,
	// and pruning bounds retention.
	for i := 2; i < 18; i++ {
		if _, err := tr.RecordActivity(ctx, "u1", event, at.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("RecordActivity %d: %v", i, err)
		}
	}
	latest, err := snaps.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Sequence <= first.Sequence {
		t.Errorf("latest snapshot sequence %d not past first %d", latest.Sequence, first.Sequence)
	}
	if latest.Data.TotalXP <= first.Data.TotalXP {
		t.Errorf("latest snapshot TotalXP %d not past first %d", latest.Data.TotalXP, first.Data.TotalXP)
	}
	if len(snaps.saved) > 3 {
		t.Errorf("retained snapshots = %d, want at most 3 after pruning", len(snaps.saved))
	}
}

func TestCurrentStreak(t *testing.T) {
	repo := newMemRepo()
	tr := newTestTracker(repo)
	ctx := context.Background()
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

	event := xp.Event{
		Kind:            xp.KindStudySession,
		BaseActivityKey: xp.KeySessionComplete30Min,
		DurationMinutes: 30,
	}
	for offset := -2; offset <= 0; offset++ {
		if _, err := tr.RecordActivity(ctx, "u1", event, now.AddDate(0, 0, offset)); err != nil {
			t.Fatalf("RecordActivity: %v", err)
		}
	}

	streak, err := tr.CurrentStreak(ctx, "u1", now)
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}
}

func TestDeriveStats(t *testing.T) {
	activities := []store.ActivityRecord{
		{Kind: "study-session", DurationMinutes: 90, StreakDays: 2, TimeOfDay: "early"},
		{Kind: "study-session", DurationMinutes: 45, StreakDays: 7, TimeOfDay: "late"},
		{Kind: "study-session", DurationMinutes: 50, StreakDays: 3, TimeOfDay: "normal"},
		{Kind: "practice-test", PerformancePercent: 60},
		{Kind: "practice-test", PerformancePercent: 85},
		{Kind: "social-activity"},
		{Kind: "milestone", BaseActivityKey: "FIRST_FULL_TEST"},
	}

	stats := deriveStats(activities)

	if stats.StudyHours != 3 {
		t.Errorf("StudyHours = %d, want 3 (185 minutes)", stats.StudyHours)
	}
	if stats.StudyStreakDays != 7 {
		t.Errorf("StudyStreakDays = %d, want best-ever 7", stats.StudyStreakDays)
	}
	if stats.PracticeTestsCompleted != 2 {
		t.Errorf("PracticeTestsCompleted = %d, want 2", stats.PracticeTestsCompleted)
	}
	if stats.ScoreImprovement != 25 {
		t.Errorf("ScoreImprovement = %d, want 25", stats.ScoreImprovement)
	}
	if stats.SocialActivityCount != 1 {
		t.Errorf("SocialActivityCount = %d, want 1", stats.SocialActivityCount)
	}
	if stats.SpecialMilestones["early_sessions"] != 1 || stats.SpecialMilestones["late_sessions"] != 1 {
		t.Errorf("session milestones = %v, want one early and one late", stats.SpecialMilestones)
	}
	if stats.SpecialMilestones["FIRST_FULL_TEST"] != 1 {
		t.Errorf("milestone counter = %v, want FIRST_FULL_TEST:1", stats.SpecialMilestones)
	}
}
