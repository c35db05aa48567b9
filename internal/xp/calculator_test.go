package xp

import (
	"errors"
	"strings"
	"testing"
)

func TestCompute_BaseOnly(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	award, err := calc.Compute(Event{
		Kind:            KindQuestionAnswered,
		BaseActivityKey: KeyQuestionCorrect,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if award.FinalXP != 10 {
		t.Errorf("FinalXP = %d, want 10", award.FinalXP)
	}
	if len(award.Bonuses) != 0 {
		t.Errorf("Bonuses = %v, want none", award.Bonuses)
	}
}

func TestCompute_MultiplierStacking(t *testing.T) {
	// Worked example: performance x2.0, streak x1.25 (10 >= 7, not >= 14),
	// group x1.3 stack to 3.25; no difficulty specified.
	calc := NewCalculator(DefaultConfig())
	award, err := calc.Compute(Event{
		Kind:               KindPracticeTest,
		BaseActivityKey:    KeyPracticeTestComplete,
		PerformancePercent: 96,
		StreakDays:         10,
		IsGroupActivity:    true,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if award.BaseXP != 200 {
		t.Errorf("BaseXP = %d, want 200", award.BaseXP)
	}
	if award.TotalMultiplier != 3.25 {
		t.Errorf("TotalMultiplier = %f, want 3.25", award.TotalMultiplier)
	}
	if award.FinalXP != 650 {
		t.Errorf("FinalXP = %d, want 650", award.FinalXP)
	}
	wantOrder := []BonusType{BonusPerformance, BonusStreak, BonusGroup}
	if len(award.Bonuses) != len(wantOrder) {
		t.Fatalf("Bonuses = %v, want %d entries", award.Bonuses, len(wantOrder))
	}
	for i, b := range award.Bonuses {
		if b.Type != wantOrder[i] {
			t.Errorf("Bonuses[%d].Type = %s, want %s", i, b.Type, wantOrder[i])
		}
	}
}

func TestCompute_DurationTiers(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	cases := []struct {
		minutes int
		want    int
	}{
		{10, 50},  // below lowest tier, table base stands
		{15, 25},
		{29, 25},
		{30, 50},
		{45, 50},
		{60, 100},
		{90, 150},
		{240, 150},
	}
	for _, tc := range cases {
		award, err := calc.Compute(Event{
			Kind:            KindStudySession,
			BaseActivityKey: KeySessionComplete30Min,
			DurationMinutes: tc.minutes,
		})
		if err != nil {
			t.Fatalf("Compute(%d min): %v", tc.minutes, err)
		}
		if award.FinalXP != tc.want {
			t.Errorf("FinalXP for %d min = %d, want %d", tc.minutes, award.FinalXP, tc.want)
		}
	}
}

func TestCompute_FlatBonusesBeforeMultiplication(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	award, err := calc.Compute(Event{
		Kind:            KindQuestionAnswered,
		BaseActivityKey: KeyQuestionCorrect,
		Difficulty:      DifficultyHard,
		TimeOfDay:       TimeEarly,
		IsWeekend:       true,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// Base 10 + early 15 + weekend 20 = 45, then hard x1.5 = 67.5 -> 67.
	if award.BaseXP != 45 {
		t.Errorf("BaseXP = %d, want 45", award.BaseXP)
	}
	if award.FinalXP != 67 {
		t.Errorf("FinalXP = %d, want 67", award.FinalXP)
	}
}

func TestCompute_EasyDifficultyNotRecorded(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	award, err := calc.Compute(Event{
		Kind:            KindQuestionAnswered,
		BaseActivityKey: KeyQuestionCorrect,
		Difficulty:      DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for _, b := range award.Bonuses {
		if b.Type == BonusDifficulty {
			t.Errorf("easy difficulty recorded a bonus: %v", b)
		}
	}
	if award.FinalXP != 10 {
		t.Errorf("FinalXP = %d, want 10", award.FinalXP)
	}
}

func TestCompute_PerformanceOnlyForPracticeTests(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	award, err := calc.Compute(Event{
		Kind:               KindStudySession,
		BaseActivityKey:    KeySessionStart,
		PerformancePercent: 99,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if award.TotalMultiplier != 1.0 {
		t.Errorf("TotalMultiplier = %f, want 1.0 for non-test kind", award.TotalMultiplier)
	}
}

func TestCompute_StreakTiers(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	cases := []struct {
		days int
		want float64
	}{
		{0, 1.0},
		{2, 1.0},
		{3, 1.1},
		{6, 1.1},
		{7, 1.25},
		{14, 1.5},
		{30, 2.0},
		{60, 2.5},
		{100, 3.0},
		{365, 3.0},
	}
	for _, tc := range cases {
		got, _ := calc.streakMultiplier(tc.days)
		if got != tc.want {
			t.Errorf("streakMultiplier(%d) = %f, want %f", tc.days, got, tc.want)
		}
	}
}

func TestCompute_UnknownKeySoftFails(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	award, err := calc.Compute(Event{
		Kind:            KindMilestone,
		BaseActivityKey: "NO_SUCH_ACTIVITY",
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if award.FinalXP != 0 {
		t.Errorf("FinalXP = %d, want 0", award.FinalXP)
	}
	if len(award.Bonuses) != 1 || award.Bonuses[0].Type != BonusUnknown {
		t.Errorf("Bonuses = %v, want single unknown-activity entry", award.Bonuses)
	}
}

func TestCompute_UnknownKind(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	_, err := calc.Compute(Event{Kind: "napping", BaseActivityKey: KeySessionStart})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("error = %v, want ErrUnknownKind", err)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	event := Event{
		Kind:               KindPracticeTest,
		BaseActivityKey:    KeyPracticeTestComplete,
		Difficulty:         DifficultyMedium,
		PerformancePercent: 88,
		StreakDays:         21,
		IsGroupActivity:    true,
		TimeOfDay:          TimeLate,
		IsWeekend:          true,
	}
	first, err := calc.Compute(event)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := calc.Compute(event)
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		if again.FinalXP != first.FinalXP || again.TotalMultiplier != first.TotalMultiplier {
			t.Fatalf("run %d: award %+v differs from first %+v", i, again, first)
		}
	}
}

func TestCompute_BreakdownMentionsEachBonus(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	award, err := calc.Compute(Event{
		Kind:               KindPracticeTest,
		BaseActivityKey:    KeyPracticeTestComplete,
		PerformancePercent: 96,
		StreakDays:         10,
		IsGroupActivity:    true,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for _, part := range []string{"base 200", "96% score", "10-day streak", "group activity", "= 650 XP"} {
		if !strings.Contains(award.Breakdown, part) {
			t.Errorf("breakdown %q missing %q", award.Breakdown, part)
		}
	}
}
