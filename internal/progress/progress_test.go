package progress

import (
	"testing"
	"time"

	"github.com/prepforge/prepforge/internal/leveling"
	"github.com/prepforge/prepforge/internal/xp"
)

func newAggregator() *Aggregator {
	return NewAggregator(xp.NewCalculator(xp.DefaultConfig()), leveling.DefaultConfig())
}

func TestFold_EndToEndScenario(t *testing.T) {
	// A 45-minute study session lands in the 30-minute tier (+50), then a
	// 90% practice test takes the x1.5 performance multiplier (+300).
	now := time.Date(2026, time.March, 11, 18, 0, 0, 0, time.UTC) // Wednesday
	records := []Record{
		{
			Event: xp.Event{
				Kind:            xp.KindStudySession,
				BaseActivityKey: xp.KeySessionComplete30Min,
				DurationMinutes: 45,
			},
			At: now.Add(-2 * time.Hour),
		},
		{
			Event: xp.Event{
				Kind:               xp.KindPracticeTest,
				BaseActivityKey:    xp.KeyPracticeTestComplete,
				PerformancePercent: 90,
			},
			At: now.Add(-1 * time.Hour),
		},
	}

	p, err := newAggregator().Fold(records, now)
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}

	if p.TotalXP != 350 {
		t.Errorf("TotalXP = %d, want 350", p.TotalXP)
	}
	if p.CurrentLevel != 2 {
		t.Errorf("CurrentLevel = %d, want 2", p.CurrentLevel)
	}
	if p.CurrentLevelXP != 100 {
		t.Errorf("CurrentLevelXP = %d, want 100", p.CurrentLevelXP)
	}
	if p.XPToNextLevel != 300 {
		t.Errorf("XPToNextLevel = %d, want 300", p.XPToNextLevel)
	}
	if p.WeeklyXP != 350 || p.MonthlyXP != 350 {
		t.Errorf("WeeklyXP/MonthlyXP = %d/%d, want 350/350", p.WeeklyXP, p.MonthlyXP)
	}
	if !p.LastActivityAt.Equal(now.Add(-1 * time.Hour)) {
		t.Errorf("LastActivityAt = %v, want latest event time", p.LastActivityAt)
	}
}

func TestFold_EmptyRecords(t *testing.T) {
	p, err := newAggregator().Fold(nil, time.Now())
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if p.TotalXP != 0 || p.CurrentLevel != 1 || p.CurrentLevelXP != 0 {
		t.Errorf("zero fold = %+v, want level 1 at 0 XP", p)
	}
}

func TestFold_WindowBuckets(t *testing.T) {
	// now is Wednesday 2026-03-11. The week runs Mon 03-09 .. Sun 03-15.
	now := time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)
	event := xp.Event{Kind: xp.KindQuestionAnswered, BaseActivityKey: xp.KeyQuestionCorrect}

	records := []Record{
		{Event: event, At: time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)}, // prior month
		{Event: event, At: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)},     // this month, prior week
		{Event: event, At: time.Date(2026, time.March, 9, 0, 30, 0, 0, time.UTC)},    // Monday, this week
		{Event: event, At: now},
	}

	p, err := newAggregator().Fold(records, now)
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if p.TotalXP != 40 {
		t.Errorf("TotalXP = %d, want 40", p.TotalXP)
	}
	if p.MonthlyXP != 30 {
		t.Errorf("MonthlyXP = %d, want 30", p.MonthlyXP)
	}
	if p.WeeklyXP != 20 {
		t.Errorf("WeeklyXP = %d, want 20", p.WeeklyXP)
	}
}

func TestFold_LevelAlwaysDerivedFromTotal(t *testing.T) {
	agg := newAggregator()
	lvl := leveling.DefaultConfig()
	now := time.Now()

	var records []Record
	for i := 0; i < 30; i++ {
		records = append(records, Record{
			Event: xp.Event{Kind: xp.KindMilestone, BaseActivityKey: xp.KeyMilestoneReached},
			At:    now.Add(time.Duration(i) * time.Minute),
		})
		p, err := agg.Fold(records, now)
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		info, err := lvl.Level(p.TotalXP)
		if err != nil {
			t.Fatalf("Level: %v", err)
		}
		if p.CurrentLevel != info.Level {
			t.Fatalf("after %d events: CurrentLevel %d != Level(TotalXP) %d",
				i+1, p.CurrentLevel, info.Level)
		}
	}
}

func TestFoldAwards(t *testing.T) {
	now := time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)
	awards := []Credited{
		{Amount: 50, At: now.Add(-48 * time.Hour)},  // Monday, same week
		{Amount: 300, At: now.Add(-time.Hour)},      // today
		{Amount: 60, At: now.AddDate(0, 0, -20)},    // February
	}

	p, err := newAggregator().FoldAwards(awards, now)
	if err != nil {
		t.Fatalf("FoldAwards: %v", err)
	}
	if p.TotalXP != 410 {
		t.Errorf("TotalXP = %d, want 410", p.TotalXP)
	}
	if p.WeeklyXP != 350 {
		t.Errorf("WeeklyXP = %d, want 350", p.WeeklyXP)
	}
	if p.MonthlyXP != 350 {
		t.Errorf("MonthlyXP = %d, want 350", p.MonthlyXP)
	}
	if p.CurrentLevel != 2 {
		t.Errorf("CurrentLevel = %d, want 2", p.CurrentLevel)
	}
}

func TestCheckLevelUp(t *testing.T) {
	agg := newAggregator()

	up, err := agg.CheckLevelUp(200, 300)
	if err != nil {
		t.Fatalf("CheckLevelUp: %v", err)
	}
	if !up.LeveledUp || up.FromLevel != 1 || up.ToLevel != 2 {
		t.Errorf("CheckLevelUp(200, 300) = %+v, want 1 -> 2", up)
	}

	same, err := agg.CheckLevelUp(250, 400)
	if err != nil {
		t.Fatalf("CheckLevelUp: %v", err)
	}
	if same.LeveledUp {
		t.Errorf("CheckLevelUp(250, 400) = %+v, want no level-up", same)
	}
}

func TestWeekStart_MondayBoundary(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2026, time.March, 11, 23, 0, 0, 0, time.UTC), time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC), time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := weekStart(tc.t); !got.Equal(tc.want) {
			t.Errorf("%s: weekStart = %v, want %v", tc.name, got, tc.want)
		}
	}
}
