// Package achievements evaluates a static achievement catalog against
// cumulative user statistics. The engine is stateless: unlock history
// lives with the caller, and repeated evaluation with the same inputs
// yields identical results.
package achievements

import "time"

// Tier is an achievement's qualitative rank. Descriptive only; it never
// affects evaluation.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// RequirementType is the closed set of requirement kinds.
type RequirementType string

const (
	ReqStudyHours       RequirementType = "study_hours"
	ReqStudyStreak      RequirementType = "study_streak"
	ReqPracticeTests    RequirementType = "practice_tests"
	ReqScoreImprovement RequirementType = "score_improvement"
	ReqSocialActivity   RequirementType = "social_activity"
	ReqMilestone        RequirementType = "milestone"
)

// Requirement is an achievement's unlock rule. Milestone requirements
// carry the stats counter key they read; all other kinds read a fixed
// UserStats field.
type Requirement struct {
	Type   RequirementType
	Target int

	// Timeframe optionally scopes the requirement ("weekly", "all-time").
	// Recorded for catalog readers; evaluation treats stats as already
	// scoped by the caller.
	Timeframe string

	// CounterKey selects the SpecialMilestones counter for milestone
	// requirements. Empty for every other type.
	CounterKey string
}

// Achievement is one immutable catalog entry.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Category    string
	Tier        Tier
	XPReward    int
	Requirement Requirement
}

// UserStats aggregates exactly the counters the catalog's requirement
// types read.
type UserStats struct {
	StudyHours             int
	StudyStreakDays        int
	PracticeTestsCompleted int
	ScoreImprovement       int
	SocialActivityCount    int

	// SpecialMilestones holds ad-hoc counters keyed by CounterKey,
	// e.g. "early_sessions" for pre-7am study sessions.
	SpecialMilestones map[string]int
}

// Unlock is a newly satisfied achievement. XPReward crediting is the
// caller's job; the engine only reports the amount.
type Unlock struct {
	Achievement Achievement
	UnlockedAt  time.Time
}

// Progress is the ephemeral partial-progress readout for one locked
// achievement. Recomputed on demand, never persisted.
type Progress struct {
	AchievementID   string
	ProgressPercent float64
}
