package xp

// Kind identifies the category of a scorable activity.
type Kind string

const (
	KindStudySession     Kind = "study-session"
	KindPracticeTest     Kind = "practice-test"
	KindQuestionAnswered Kind = "question-answered"
	KindSocialActivity   Kind = "social-activity"
	KindMilestone        Kind = "milestone"
)

// AllKinds returns every activity kind in display order.
func AllKinds() []Kind {
	return []Kind{
		KindStudySession,
		KindPracticeTest,
		KindQuestionAnswered,
		KindSocialActivity,
		KindMilestone,
	}
}

// Valid reports whether k is a known activity kind.
func (k Kind) Valid() bool {
	switch k {
	case KindStudySession, KindPracticeTest, KindQuestionAnswered,
		KindSocialActivity, KindMilestone:
		return true
	}
	return false
}

// Difficulty is the optional difficulty attached to an activity.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// TimeOfDay buckets when an activity happened for flat scheduling bonuses.
type TimeOfDay string

const (
	TimeEarly  TimeOfDay = "early"
	TimeNormal TimeOfDay = "normal"
	TimeLate   TimeOfDay = "late"
)

// Event is a single scorable occurrence, built by the caller from raw
// product events. Consumed once, never mutated.
type Event struct {
	Kind Kind

	// BaseActivityKey selects the base XP value from the activity table.
	BaseActivityKey string

	// Difficulty is empty when the activity has no difficulty attached.
	Difficulty Difficulty

	// DurationMinutes is 0 when unknown. For study sessions it selects
	// the duration tier that overrides the table base.
	DurationMinutes int

	// PerformancePercent is a 0-100 score, meaningful for practice tests.
	PerformancePercent int

	// StreakDays is the learner's consecutive-day activity streak.
	StreakDays int

	IsGroupActivity bool
	TimeOfDay       TimeOfDay
	IsWeekend       bool
}

// BonusType labels one entry in an award's breakdown.
type BonusType string

const (
	BonusDifficulty  BonusType = "difficulty"
	BonusPerformance BonusType = "performance"
	BonusStreak      BonusType = "streak"
	BonusGroup       BonusType = "group"
	BonusEarlyBird   BonusType = "early-bird"
	BonusNightOwl    BonusType = "night-owl"
	BonusWeekend     BonusType = "weekend"
	BonusUnknown     BonusType = "unknown-activity"
)

// Bonus records one applied bonus. Value is a multiplier for the
// multiplicative rules and 1.0 for flat bonuses, which adjust the base
// directly before multiplication.
type Bonus struct {
	Type        BonusType
	Value       float64
	Description string
}

// Award is the result of scoring one Event. Immutable once computed.
type Award struct {
	// BaseXP is the base after duration-tier resolution and flat bonuses.
	BaseXP int

	// Bonuses lists applied bonuses in evaluation order.
	Bonuses []Bonus

	// TotalMultiplier is the product of all multiplicative bonuses.
	TotalMultiplier float64

	// FinalXP is floor(BaseXP * TotalMultiplier), floored exactly once.
	FinalXP int

	// Breakdown is a human-readable audit line; never used for control flow.
	Breakdown string
}
