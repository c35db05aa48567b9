package achievements

import (
	"fmt"
	"sort"
	"time"
)

// Engine evaluates a catalog against user statistics. Stateless and safe
// for concurrent use.
type Engine struct {
	catalog *Catalog
}

// NewEngine creates an engine over the given catalog.
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Evaluate determines newly unlocked achievements and partial progress.
//
// Entries in alreadyUnlocked are skipped entirely. Idempotent: the same
// stats and unlocked set always produce the same results: no counters
// advance inside the engine, so the caller decides exactly once whether
// to persist an unlock and credit its XPReward.
//
// Progress covers locked entries only, clamped to [0,100]; entries at
// exactly 0% are omitted and the rest sort by descending progress.
func (e *Engine) Evaluate(stats UserStats, alreadyUnlocked map[string]bool, now time.Time) ([]Unlock, []Progress, error) {
	var unlocks []Unlock
	var progress []Progress

	for _, a := range e.catalog.All() {
		if alreadyUnlocked[a.ID] {
			continue
		}

		current, err := resolve(a.Requirement, stats)
		if err != nil {
			return nil, nil, fmt.Errorf("achievement %s: %w", a.ID, err)
		}

		if a.Requirement.Target > 0 && current >= a.Requirement.Target {
			unlocks = append(unlocks, Unlock{Achievement: a, UnlockedAt: now})
			continue
		}

		pct := 0.0
		if a.Requirement.Target > 0 {
			pct = 100 * float64(current) / float64(a.Requirement.Target)
		}
		if pct <= 0 {
			continue
		}
		if pct > 100 {
			pct = 100
		}
		progress = append(progress, Progress{AchievementID: a.ID, ProgressPercent: pct})
	}

	sort.SliceStable(progress, func(i, j int) bool {
		if progress[i].ProgressPercent != progress[j].ProgressPercent {
			return progress[i].ProgressPercent > progress[j].ProgressPercent
		}
		return progress[i].AchievementID < progress[j].AchievementID
	})

	return unlocks, progress, nil
}

// resolve reads the stats counter a requirement targets. The switch is
// exhaustive over RequirementType; an unknown type is an error, never a
// silent zero.
func resolve(req Requirement, stats UserStats) (int, error) {
	switch req.Type {
	case ReqStudyHours:
		return stats.StudyHours, nil
	case ReqStudyStreak:
		return stats.StudyStreakDays, nil
	case ReqPracticeTests:
		return stats.PracticeTestsCompleted, nil
	case ReqScoreImprovement:
		return stats.ScoreImprovement, nil
	case ReqSocialActivity:
		return stats.SocialActivityCount, nil
	case ReqMilestone:
		return stats.SpecialMilestones[req.CounterKey], nil
	default:
		return 0, fmt.Errorf("unhandled requirement type %q", req.Type)
	}
}
