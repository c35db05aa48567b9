package xp

// Well-known activity table keys. The table itself is injected via Config
// so products can tune values without touching scoring logic.
const (
	KeySessionStart         = "STUDY_SESSION_START"
	KeySessionComplete30Min = "STUDY_SESSION_COMPLETE_30MIN"
	KeyPracticeTestComplete = "PRACTICE_TEST_COMPLETE"
	KeyQuestionCorrect      = "QUESTION_CORRECT"
	KeyQuestionAttempted    = "QUESTION_ATTEMPTED"
	KeyGroupSessionJoined   = "GROUP_SESSION_JOINED"
	KeyFriendHelped         = "FRIEND_HELPED"
	KeyMilestoneReached     = "MILESTONE_REACHED"
)

// DurationTier pairs a minimum study-session length with the base XP it
// awards. Tiers are matched highest-first.
type DurationTier struct {
	MinMinutes int
	BaseXP     int
}

// StreakTier pairs a minimum streak length with its multiplier.
type StreakTier struct {
	MinDays    int
	Multiplier float64
}

// PerformanceTier pairs a minimum practice-test score with its multiplier.
type PerformanceTier struct {
	MinPercent int
	Multiplier float64
}

// Config holds every tuning table the calculator reads. Treat as
// immutable after construction.
type Config struct {
	// ActivityTable maps BaseActivityKey to base XP.
	ActivityTable map[string]int

	// DurationTiers override the study-session base, matched highest-first.
	// Must be sorted ascending by MinMinutes.
	DurationTiers []DurationTier

	// DifficultyMultipliers keys easy/medium/hard to their multipliers.
	DifficultyMultipliers map[Difficulty]float64

	// PerformanceTiers are matched highest-first; only the first hit applies.
	// Must be sorted ascending by MinPercent.
	PerformanceTiers []PerformanceTier

	// StreakTiers are matched highest-first. Must be sorted ascending.
	StreakTiers []StreakTier

	// GroupMultiplier applies when the event is a group activity.
	GroupMultiplier float64

	// Flat bonuses added to the base before multiplication.
	EarlyBirdBonus int
	NightOwlBonus  int
	WeekendBonus   int
}

// DefaultConfig returns the production tuning tables.
func DefaultConfig() Config {
	return Config{
		ActivityTable: map[string]int{
			KeySessionStart:         10,
			KeySessionComplete30Min: 50,
			KeyPracticeTestComplete: 200,
			KeyQuestionCorrect:      10,
			KeyQuestionAttempted:    2,
			KeyGroupSessionJoined:   30,
			KeyFriendHelped:         25,
			KeyMilestoneReached:     100,
		},
		DurationTiers: []DurationTier{
			{MinMinutes: 15, BaseXP: 25},
			{MinMinutes: 30, BaseXP: 50},
			{MinMinutes: 60, BaseXP: 100},
			{MinMinutes: 90, BaseXP: 150},
		},
		DifficultyMultipliers: map[Difficulty]float64{
			DifficultyEasy:   1.0,
			DifficultyMedium: 1.2,
			DifficultyHard:   1.5,
		},
		PerformanceTiers: []PerformanceTier{
			{MinPercent: 75, Multiplier: 1.25},
			{MinPercent: 85, Multiplier: 1.5},
			{MinPercent: 95, Multiplier: 2.0},
		},
		StreakTiers: []StreakTier{
			{MinDays: 3, Multiplier: 1.1},
			{MinDays: 7, Multiplier: 1.25},
			{MinDays: 14, Multiplier: 1.5},
			{MinDays: 30, Multiplier: 2.0},
			{MinDays: 60, Multiplier: 2.5},
			{MinDays: 100, Multiplier: 3.0},
		},
		GroupMultiplier: 1.3,
		EarlyBirdBonus:  15,
		NightOwlBonus:   10,
		WeekendBonus:    20,
	}
}
