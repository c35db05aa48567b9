package progress

import "time"

// DayStreak computes the consecutive-day activity streak ending today or
// yesterday (a streak survives until a full calendar day is missed).
// times may be unordered and may contain many entries per day.
func DayStreak(times []time.Time, now time.Time) int {
	if len(times) == 0 {
		return 0
	}

	days := make(map[time.Time]bool, len(times))
	for _, t := range times {
		days[dayStart(t)] = true
	}

	cursor := dayStart(now)
	if !days[cursor] {
		// Nothing yet today; the streak may still be alive from yesterday.
		cursor = cursor.AddDate(0, 0, -1)
		if !days[cursor] {
			return 0
		}
	}

	streak := 0
	for days[cursor] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
