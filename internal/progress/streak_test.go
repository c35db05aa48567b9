package progress

import (
	"testing"
	"time"
)

func TestDayStreak(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	now := day(0)

	tests := []struct {
		name  string
		times []time.Time
		want  int
	}{
		{"no activity", nil, 0},
		{"only today", []time.Time{day(0)}, 1},
		{"three consecutive days", []time.Time{day(-2), day(-1), day(0)}, 3},
		{"alive from yesterday", []time.Time{day(-3), day(-2), day(-1)}, 3},
		{"broken by a missed day", []time.Time{day(-3), day(-2)}, 0},
		{"gap resets the count", []time.Time{day(-5), day(-4), day(-1), day(0)}, 2},
		{"multiple entries per day count once", []time.Time{day(-1), day(-1), day(0), day(0)}, 2},
		{"unordered input", []time.Time{day(0), day(-2), day(-1)}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayStreak(tt.times, now); got != tt.want {
				t.Errorf("DayStreak = %d, want %d", got, tt.want)
			}
		})
	}
}
