package tracker

import (
	"github.com/prepforge/prepforge/internal/achievements"
	"github.com/prepforge/prepforge/internal/store"
	"github.com/prepforge/prepforge/internal/xp"
)

// deriveStats folds the activity log into the counters the catalog reads.
// Streak is the best ever seen, not the current one, so a streak
// achievement stays satisfied after the streak breaks.
func deriveStats(activities []store.ActivityRecord) achievements.UserStats {
	stats := achievements.UserStats{
		SpecialMilestones: map[string]int{},
	}

	studyMinutes := 0
	firstTestScore := -1
	bestTestScore := 0

	for _, a := range activities {
		if a.StreakDays > stats.StudyStreakDays {
			stats.StudyStreakDays = a.StreakDays
		}

		switch xp.Kind(a.Kind) {
		case xp.KindStudySession:
			studyMinutes += a.DurationMinutes
			switch xp.TimeOfDay(a.TimeOfDay) {
			case xp.TimeEarly:
				stats.SpecialMilestones["early_sessions"]++
			case xp.TimeLate:
				stats.SpecialMilestones["late_sessions"]++
			}
		case xp.KindPracticeTest:
			stats.PracticeTestsCompleted++
			if firstTestScore < 0 {
				firstTestScore = a.PerformancePercent
			}
			if a.PerformancePercent > bestTestScore {
				bestTestScore = a.PerformancePercent
			}
		case xp.KindSocialActivity:
			stats.SocialActivityCount++
		case xp.KindMilestone:
			stats.SpecialMilestones[a.BaseActivityKey]++
		}
	}

	stats.StudyHours = studyMinutes / 60
	if firstTestScore >= 0 && bestTestScore > firstTestScore {
		stats.ScoreImprovement = bestTestScore - firstTestScore
	}
	return stats
}
