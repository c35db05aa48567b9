package store

import (
	"context"
	"time"

	"github.com/prepforge/prepforge/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // occurred_at >= From
	To     time.Time // occurred_at <= To
}

// ActivityRecord is one raw activity event as persisted.
type ActivityRecord struct {
	Sequence           int64
	UserID             string
	Kind               string
	BaseActivityKey    string
	Difficulty         string
	DurationMinutes    int
	PerformancePercent int
	StreakDays         int
	IsGroupActivity    bool
	TimeOfDay          string
	IsWeekend          bool
	OccurredAt         time.Time
}

// AwardRecord is one computed XP award as persisted.
type AwardRecord struct {
	Sequence         int64
	UserID           string
	Source           string // "activity" or "achievement"
	BaseXP           int
	TotalMultiplier  float64
	FinalXP          int
	Breakdown        string
	ActivitySequence int64
	AchievementID    string
	OccurredAt       time.Time
}

// Award sources.
const (
	AwardSourceActivity    = "activity"
	AwardSourceAchievement = "achievement"
)

// UnlockRecord is one achievement unlock as persisted.
type UnlockRecord struct {
	Sequence      int64
	UserID        string
	AchievementID string
	XPReward      int
	UnlockedAt    time.Time
}

// MasteryRecord is one mastery probability update as persisted.
type MasteryRecord struct {
	Sequence    int64
	UserID      string
	Subject     string
	Skill       string
	Probability float64
	Correct     bool
	QuestionID  string
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendActivity stores a raw activity event, returning its sequence.
	AppendActivity(ctx context.Context, rec ActivityRecord) (int64, error)

	// ActivitiesByUser returns a user's activity events in ascending
	// sequence order.
	ActivitiesByUser(ctx context.Context, userID string, opts QueryOpts) ([]ActivityRecord, error)

	// AppendAward stores a computed XP award, returning its sequence.
	AppendAward(ctx context.Context, rec AwardRecord) (int64, error)

	// AwardsByUser returns a user's awards in ascending sequence order.
	AwardsByUser(ctx context.Context, userID string, opts QueryOpts) ([]AwardRecord, error)

	// TotalXP sums a user's final XP across all awards.
	TotalXP(ctx context.Context, userID string) (int, error)

	// AppendUnlock stores an achievement unlock. Appending a duplicate
	// (user, achievement) pair fails on the unique index.
	AppendUnlock(ctx context.Context, rec UnlockRecord) error

	// UnlockedSet returns the user's unlocked achievement IDs.
	UnlockedSet(ctx context.Context, userID string) (map[string]bool, error)

	// UnlocksByUser returns a user's unlocks in ascending sequence order.
	UnlocksByUser(ctx context.Context, userID string) ([]UnlockRecord, error)

	// AppendMastery stores a mastery probability update.
	AppendMastery(ctx context.Context, rec MasteryRecord) error

	// LatestMastery returns the most recent probability per
	// (subject, skill) for a user. opts.After restricts the scan to
	// events past a snapshot's sequence.
	LatestMastery(ctx context.Context, userID string, opts QueryOpts) ([]MasteryRecord, error)

	// AppendUsage records one serving of a question.
	AppendUsage(ctx context.Context, questionID, userID string) error

	// UsageCounts returns serving counts per question across all users.
	UsageCounts(ctx context.Context) (map[string]int, error)
}

// Snapshot is a point-in-time capture of one user's derived state.
type Snapshot struct {
	ID        int
	UserID    string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotData is the JSON payload of a snapshot.
type SnapshotData struct {
	Version  int                `json:"version"`
	TotalXP  int                `json:"total_xp"`
	Unlocked []string           `json:"unlocked"`
	Mastery  map[string]float64 `json:"mastery"` // key "subject/skill"
}

// SnapshotRepo manages per-user state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the user's most recent snapshot, or nil if none.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the newest keep snapshots for the user.
	Prune(ctx context.Context, userID string, keep int) error
}

// eventRepo implements EventRepo with the ent client plus the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
