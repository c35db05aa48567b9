package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prepforge/prepforge/internal/achievements"
	"github.com/prepforge/prepforge/internal/contentgen"
	"github.com/prepforge/prepforge/internal/leveling"
	"github.com/prepforge/prepforge/internal/mastery"
	"github.com/prepforge/prepforge/internal/questionbank"
	"github.com/prepforge/prepforge/internal/selector"
	"github.com/prepforge/prepforge/internal/store"
	"github.com/prepforge/prepforge/internal/tracker"
	"github.com/prepforge/prepforge/internal/xp"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

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

func newTestService(repo store.EventRepo) (*Service, *questionbank.StaticPool, *mastery.MemoryStore) {
	pool := questionbank.SeedPool()
	masteries := mastery.NewMemoryStore()
	calc := xp.NewCalculator(xp.DefaultConfig())
	engine := achievements.NewEngine(achievements.SeedCatalog())
	tr := tracker.New(repo, calc, leveling.Config{}, engine)
	return NewService(pool, masteries, tr, repo), pool, masteries
}

func TestNextBatchSelectsAndRecordsUsage(t *testing.T) {
	repo := newMemRepo()
	svc, pool, _ := newTestService(repo)
	ctx := context.Background()

	batch, err := svc.NextBatch(ctx, "u1", 5, questionbank.Filters{Subject: questionbank.SubjectMath})
	if err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	if batch.ID == "" {
		t.Error("batch has empty ID")
	}
	if len(batch.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(batch.Questions))
	}

	seen := map[string]bool{}
	for _, q := range batch.Questions {
		if q.Subject != questionbank.SubjectMath {
			t.Errorf("question %s has subject %s, want math", q.ID, q.Subject)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question %s in batch", q.ID)
		}
		seen[q.ID] = true

		got, _ := pool.Get(q.ID)
		if got.TimesUsed != 1 {
			t.Errorf("pool usage for %s = %d, want 1", q.ID, got.TimesUsed)
		}
		if repo.usage[q.ID] != 1 {
			t.Errorf("persisted usage for %s = %d, want 1", q.ID, repo.usage[q.ID])
		}
	}
}

func TestNextBatchLargerThanPool(t *testing.T) {
	repo := newMemRepo()
	svc, _, _ := newTestService(repo)

	batch, err := svc.NextBatch(context.Background(), "u1", 100, questionbank.Filters{
		Subject: questionbank.SubjectWriting,
		Skill:   "grammar",
	})
	if err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	if len(batch.Questions) != 2 {
		t.Errorf("got %d questions, want the 2 grammar questions", len(batch.Questions))
	}
}

func TestRecordAnswerCorrectUpdatesMastery(t *testing.T) {
	repo := newMemRepo()
	svc, pool, masteries := newTestService(repo)
	ctx := context.Background()
	at := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	q, _ := pool.Get("m-quad-002") // medium
	res, err := svc.RecordAnswer(ctx, "u1", q, true, 80, at)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	// 0.5 + 0.15*(1-0.5)
	if !almostEqual(res.Mastery, 0.575) {
		t.Errorf("mastery = %f, want 0.575", res.Mastery)
	}
	p, _ := masteries.Get(ctx, "u1", "math", "quadratics")
	if !almostEqual(p, 0.575) {
		t.Errorf("stored mastery = %f, want 0.575", p)
	}
	if len(repo.mastery) != 1 || repo.mastery[0].QuestionID != "m-quad-002" {
		t.Fatalf("mastery events = %+v, want one for m-quad-002", repo.mastery)
	}

	// 10 base x1.2 medium difficulty.
	if res.Outcome.Award.FinalXP != 12 {
		t.Errorf("FinalXP = %d, want 12", res.Outcome.Award.FinalXP)
	}
}

func TestRecordAnswerIncorrectGetsRemediation(t *testing.T) {
	repo := newMemRepo()
	svc, pool, masteries := newTestService(repo)
	ctx := context.Background()

	q, _ := pool.Get("m-quad-002")
	res, err := svc.RecordAnswer(ctx, "u1", q, false, 120, time.Now())
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	// 0.5 - 0.1
	if !almostEqual(res.Mastery, 0.4) {
		t.Errorf("mastery = %f, want 0.4", res.Mastery)
	}
	p, _ := masteries.Get(ctx, "u1", "math", "quadratics")
	if !almostEqual(p, 0.4) {
		t.Errorf("stored mastery = %f, want 0.4", p)
	}

	// Incorrect answers use the attempted key: base 2.
	if res.Outcome.Award.FinalXP != 2 {
		t.Errorf("FinalXP = %d, want 2", res.Outcome.Award.FinalXP)
	}

	if len(res.FollowUps) == 0 {
		t.Fatal("expected remediation follow-ups")
	}
	for _, r := range res.FollowUps {
		if r.Tag != selector.TagRemediation {
			t.Errorf("follow-up %s tagged %s, want remediation", r.Question.ID, r.Tag)
		}
		if r.Question.Skill != "quadratics" || r.Question.ID == "m-quad-002" {
			t.Errorf("follow-up %s is not same-skill or repeats the answered question", r.Question.ID)
		}
	}
}

func TestRecordAnswerFastCorrectGetsChallenge(t *testing.T) {
	repo := newMemRepo()
	svc, pool, _ := newTestService(repo)

	q, _ := pool.Get("m-quad-001") // easy, expected 70s
	res, err := svc.RecordAnswer(context.Background(), "u1", q, true, 30, time.Now())
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	if len(res.FollowUps) == 0 {
		t.Fatal("expected challenge follow-ups for a fast correct answer")
	}
	for _, r := range res.FollowUps {
		if r.Tag != selector.TagChallenge {
			t.Errorf("follow-up %s tagged %s, want challenge", r.Question.ID, r.Tag)
		}
		if r.Question.Difficulty != questionbank.DifficultyMedium {
			t.Errorf("follow-up %s difficulty %s, want medium", r.Question.ID, r.Question.Difficulty)
		}
	}
}

func TestNextBatchBackfillsFromGenerator(t *testing.T) {
	repo := newMemRepo()
	svc, pool, _ := newTestService(repo)

	generated := questionbank.Question{
		ID:                      "gen-geo-001",
		Subject:                 questionbank.SubjectMath,
		Skill:                   "geometry",
		Difficulty:              questionbank.DifficultyMedium,
		ExpectedDurationSeconds: 90,
		Type:                    questionbank.TypeMultipleChoice,
	}
	gen := contentgen.NewMockGenerator(generated)
	svc.WithGenerator(gen)

	// Only 3 geometry questions exist; ask for 4.
	batch, err := svc.NextBatch(context.Background(), "u1", 4, questionbank.Filters{
		Subject: questionbank.SubjectMath,
		Skill:   "geometry",
	})
	if err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	if len(batch.Questions) != 4 {
		t.Fatalf("got %d questions, want 3 pool + 1 generated", len(batch.Questions))
	}
	if batch.Questions[3].ID != "gen-geo-001" {
		t.Errorf("backfill question = %s, want gen-geo-001", batch.Questions[3].ID)
	}
	if len(gen.Calls) != 1 || gen.Calls[0].Skill != "geometry" {
		t.Errorf("generator calls = %+v, want one geometry request", gen.Calls)
	}

	// Generated questions join the pool.
	if _, ok := pool.Get("gen-geo-001"); !ok {
		t.Error("generated question missing from pool")
	}

	// A dry generator caps the batch at the pool size without error.
	batch, err = svc.NextBatch(context.Background(), "u1", 10, questionbank.Filters{
		Subject: questionbank.SubjectWriting,
		Skill:   "rhetoric",
	})
	if err != nil {
		t.Fatalf("NextBatch with dry generator: %v", err)
	}
	if len(batch.Questions) != 2 {
		t.Errorf("got %d questions, want the 2 rhetoric questions", len(batch.Questions))
	}
}

// nilGenerator reports success without producing a question.
type nilGenerator struct{ calls int }

func (g *nilGenerator) Generate(context.Context, contentgen.Request) (*questionbank.Question, error) {
	g.calls++
	return nil, nil
}

func TestNextBatchStopsWhenGeneratorReturnsNothing(t *testing.T) {
	repo := newMemRepo()
	svc, _, _ := newTestService(repo)

	gen := &nilGenerator{}
	svc.WithGenerator(gen)

	batch, err := svc.NextBatch(context.Background(), "u1", 4, questionbank.Filters{
		Subject: questionbank.SubjectMath,
		Skill:   "geometry",
	})
	if err != nil {
		t.Fatalf("NextBatch: %v", err)
	}
	if len(batch.Questions) != 3 {
		t.Errorf("got %d questions, want the 3 pool questions", len(batch.Questions))
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestHydrateRestoresState(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := repo.AppendUsage(ctx, "m-lin-001", "u1"); err != nil {
			t.Fatalf("AppendUsage: %v", err)
		}
	}
	if err := repo.AppendMastery(ctx, store.MasteryRecord{
		UserID: "u1", Subject: "math", Skill: "quadratics", Probability: 0.5, Correct: true,
	}); err != nil {
		t.Fatalf("AppendMastery: %v", err)
	}
	if err := repo.AppendMastery(ctx, store.MasteryRecord{
		UserID: "u1", Subject: "math", Skill: "quadratics", Probability: 0.72, Correct: true,
	}); err != nil {
		t.Fatalf("AppendMastery: %v", err)
	}

	pool := questionbank.SeedPool()
	masteries := mastery.NewMemoryStore()
	if err := Hydrate(ctx, repo, nil, pool, masteries, "u1"); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	q, _ := pool.Get("m-lin-001")
	if q.TimesUsed != 4 {
		t.Errorf("hydrated usage = %d, want 4", q.TimesUsed)
	}
	p, _ := masteries.Get(ctx, "u1", "math", "quadratics")
	if !almostEqual(p, 0.72) {
		t.Errorf("hydrated mastery = %f, want latest 0.72", p)
	}
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

func (m *memSnapshots) Prune(_ context.Context, _ string, _ int) error { return nil }

func TestHydrateSeedsFromSnapshotAndReplaysTail(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	// Older mastery events, already folded into the snapshot below.
	for _, p := range []float64{0.5, 0.575} {
		if err := repo.AppendMastery(ctx, store.MasteryRecord{
			UserID: "u1", Subject: "math", Skill: "quadratics", Probability: p, Correct: true,
		}); err != nil {
			t.Fatalf("AppendMastery: %v", err)
		}
	}
	snaps := &memSnapshots{saved: []store.Snapshot{{
		UserID:    "u1",
		Sequence:  2,
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version: 1,
			TotalXP: 110,
			Mastery: map[string]float64{
				"math/quadratics":  0.575,
				"reading/evidence": 0.4,
			},
		},
	}}}

	// One mastery event past the snapshot must override its value.
	if err := repo.AppendMastery(ctx, store.MasteryRecord{
		UserID: "u1", Subject: "math", Skill: "quadratics", Probability: 0.85, Correct: true,
	}); err != nil {
		t.Fatalf("AppendMastery: %v", err)
	}

	pool := questionbank.SeedPool()
	masteries := mastery.NewMemoryStore()
	if err := Hydrate(ctx, repo, snaps, pool, masteries, "u1"); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	p, _ := masteries.Get(ctx, "u1", "reading", "evidence")
	if !almostEqual(p, 0.4) {
		t.Errorf("snapshot-seeded mastery = %f, want 0.4", p)
	}
	p, _ = masteries.Get(ctx, "u1", "math", "quadratics")
	if !almostEqual(p, 0.85) {
		t.Errorf("replayed mastery = %f, want post-snapshot 0.85", p)
	}
}

func TestTimeOfDayBuckets(t *testing.T) {
	tests := []struct {
		hour int
		want xp.TimeOfDay
	}{
		{5, xp.TimeEarly},
		{6, xp.TimeEarly},
		{7, xp.TimeNormal},
		{14, xp.TimeNormal},
		{21, xp.TimeNormal},
		{22, xp.TimeLate},
		{23, xp.TimeLate},
	}
	for _, tt := range tests {
		at := time.Date(2026, 3, 11, tt.hour, 0, 0, 0, time.UTC)
		if got := timeOfDay(at); got != tt.want {
			t.Errorf("timeOfDay(%02d:00) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}
