package achievements

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]Achievement{
		{
			ID: "hours-10", Name: "Ten Hours", Category: "study", Tier: TierBronze, XPReward: 50,
			Requirement: Requirement{Type: ReqStudyHours, Target: 10},
		},
		{
			ID: "streak-7", Name: "One Week", Category: "streak", Tier: TierSilver, XPReward: 120,
			Requirement: Requirement{Type: ReqStudyStreak, Target: 7},
		},
		{
			ID: "tests-5", Name: "Five Tests", Category: "tests", Tier: TierSilver, XPReward: 200,
			Requirement: Requirement{Type: ReqPracticeTests, Target: 5},
		},
		{
			ID: "early-bird", Name: "Early Bird", Category: "milestone", Tier: TierGold, XPReward: 300,
			Requirement: Requirement{Type: ReqMilestone, Target: 10, CounterKey: "early_sessions"},
		},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestEvaluate_UnlocksAndProgress(t *testing.T) {
	engine := NewEngine(testCatalog(t))
	now := time.Now()
	stats := UserStats{
		StudyHours:             12, // hours-10 unlocks
		StudyStreakDays:        3,  // streak-7 at ~42.9%
		PracticeTestsCompleted: 0,  // tests-5 at 0%, omitted
		SpecialMilestones:      map[string]int{"early_sessions": 9}, // 90%
	}

	unlocks, progress, err := engine.Evaluate(stats, nil, now)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if len(unlocks) != 1 || unlocks[0].Achievement.ID != "hours-10" {
		t.Fatalf("unlocks = %v, want only hours-10", unlocks)
	}
	if !unlocks[0].UnlockedAt.Equal(now) {
		t.Errorf("UnlockedAt = %v, want now", unlocks[0].UnlockedAt)
	}
	if unlocks[0].Achievement.XPReward != 50 {
		t.Errorf("XPReward = %d, want 50", unlocks[0].Achievement.XPReward)
	}

	// Zero-progress tests-5 omitted; remainder sorted descending.
	ids := make([]string, 0, len(progress))
	for _, p := range progress {
		ids = append(ids, p.AchievementID)
	}
	if !reflect.DeepEqual(ids, []string{"early-bird", "streak-7"}) {
		t.Errorf("progress order = %v, want [early-bird streak-7]", ids)
	}
	if math.Abs(progress[0].ProgressPercent-90) > 0.001 {
		t.Errorf("early-bird progress = %f, want 90", progress[0].ProgressPercent)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	engine := NewEngine(testCatalog(t))
	now := time.Now()
	stats := UserStats{StudyHours: 12, StudyStreakDays: 8}
	unlocked := map[string]bool{}

	first, _, err := engine.Evaluate(stats, unlocked, now)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	second, _, err := engine.Evaluate(stats, unlocked, now)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation differs:\nfirst %v\nsecond %v", first, second)
	}
}

func TestEvaluate_AlreadyUnlockedSkipped(t *testing.T) {
	engine := NewEngine(testCatalog(t))
	stats := UserStats{StudyHours: 500, StudyStreakDays: 365, PracticeTestsCompleted: 99,
		SpecialMilestones: map[string]int{"early_sessions": 50}}
	unlocked := map[string]bool{"hours-10": true, "streak-7": true}

	unlocks, progress, err := engine.Evaluate(stats, unlocked, time.Now())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	ids := make([]string, 0, len(unlocks))
	for _, u := range unlocks {
		ids = append(ids, u.Achievement.ID)
	}
	if !reflect.DeepEqual(ids, []string{"tests-5", "early-bird"}) {
		t.Errorf("unlocks = %v, want [tests-5 early-bird]", ids)
	}
	if len(progress) != 0 {
		t.Errorf("progress = %v, want empty when everything is unlocked", progress)
	}
}

func TestEvaluate_ProgressClamped(t *testing.T) {
	// A target reached but skipped via alreadyUnlocked never reports
	// progress; an overshooting locked entry clamps at 100. Construct the
	// overshoot case via an engine whose unlock threshold is skipped by
	// the unlocked set.
	engine := NewEngine(testCatalog(t))
	stats := UserStats{StudyStreakDays: 70}

	_, progress, err := engine.Evaluate(stats, map[string]bool{"streak-7": true}, time.Now())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for _, p := range progress {
		if p.ProgressPercent < 0 || p.ProgressPercent > 100 {
			t.Errorf("progress %s = %f outside [0,100]", p.AchievementID, p.ProgressPercent)
		}
	}
}

func TestEvaluate_UnknownRequirementType(t *testing.T) {
	catalog := &Catalog{
		entries: []Achievement{{
			ID: "bad", Requirement: Requirement{Type: "mystery", Target: 1},
		}},
	}
	engine := NewEngine(catalog)
	if _, _, err := engine.Evaluate(UserStats{}, nil, time.Now()); err == nil {
		t.Error("Evaluate accepted an unknown requirement type")
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	cases := []struct {
		name    string
		entries []Achievement
	}{
		{"empty id", []Achievement{{Requirement: Requirement{Type: ReqStudyHours, Target: 1}}}},
		{"duplicate id", []Achievement{
			{ID: "a", Requirement: Requirement{Type: ReqStudyHours, Target: 1}},
			{ID: "a", Requirement: Requirement{Type: ReqStudyHours, Target: 2}},
		}},
		{"zero target", []Achievement{{ID: "a", Requirement: Requirement{Type: ReqStudyHours}}}},
		{"unknown type", []Achievement{{ID: "a", Requirement: Requirement{Type: "mystery", Target: 1}}}},
		{"milestone without key", []Achievement{{ID: "a", Requirement: Requirement{Type: ReqMilestone, Target: 1}}}},
	}
	for _, tc := range cases {
		if _, err := NewCatalog(tc.entries); err == nil {
			t.Errorf("%s: NewCatalog accepted invalid entries", tc.name)
		}
	}
}

func TestSeedCatalog_Valid(t *testing.T) {
	c := SeedCatalog()
	if c.Len() == 0 {
		t.Fatal("seed catalog is empty")
	}
	if _, ok := c.Get("early-bird"); !ok {
		t.Error("seed catalog missing early-bird")
	}
}
