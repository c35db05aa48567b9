// Package progress folds experience awards into running per-user totals
// and derives level placement. Level fields are never stored on their
// own; they are recomputed from total XP so the two cannot drift apart.
package progress

import (
	"time"

	"github.com/prepforge/prepforge/internal/leveling"
	"github.com/prepforge/prepforge/internal/xp"
)

// Record is one timestamped activity event, as appended to a user's log.
type Record struct {
	Event xp.Event
	At    time.Time
}

// UserProgress is the per-user aggregate. CurrentLevel, CurrentLevelXP
// and XPToNextLevel are always derived from TotalXP.
type UserProgress struct {
	TotalXP        int
	WeeklyXP       int
	MonthlyXP      int
	CurrentLevel   int
	CurrentLevelXP int
	XPToNextLevel  int
	LastActivityAt time.Time
}

// LevelUp describes a detected level transition.
type LevelUp struct {
	LeveledUp bool
	FromLevel int
	ToLevel   int
}

// Aggregator folds activity records into UserProgress.
type Aggregator struct {
	calc *xp.Calculator
	lvl  leveling.Config
}

// NewAggregator creates an aggregator over the given scoring and leveling
// tuning.
func NewAggregator(calc *xp.Calculator, lvl leveling.Config) *Aggregator {
	return &Aggregator{calc: calc, lvl: lvl}
}

// Fold left-folds records (ordered by time) into a fresh UserProgress.
// Weekly and monthly totals count only records inside the calendar week
// (Monday start) and calendar month containing now.
func (a *Aggregator) Fold(records []Record, now time.Time) (UserProgress, error) {
	var p UserProgress
	for _, r := range records {
		if err := a.Apply(&p, r, now); err != nil {
			return UserProgress{}, err
		}
	}
	if err := a.derive(&p); err != nil {
		return UserProgress{}, err
	}
	return p, nil
}

// Apply folds a single record into p and re-derives level placement.
func (a *Aggregator) Apply(p *UserProgress, r Record, now time.Time) error {
	award, err := a.calc.Compute(r.Event)
	if err != nil {
		return err
	}
	a.Credit(p, award.FinalXP, r.At, now)
	return a.derive(p)
}

// Credited is one already-computed XP amount with its timestamp, as read
// back from a persisted award log.
type Credited struct {
	Amount int
	At     time.Time
}

// FoldAwards left-folds persisted award amounts into a fresh UserProgress.
// Unlike Fold it never rescores events; the amounts are taken as final.
func (a *Aggregator) FoldAwards(awards []Credited, now time.Time) (UserProgress, error) {
	var p UserProgress
	for _, c := range awards {
		a.Credit(&p, c.Amount, c.At, now)
	}
	if err := a.derive(&p); err != nil {
		return UserProgress{}, err
	}
	return p, nil
}

// Credit adds already-computed XP to the totals, used for awards that do
// not originate from a scored event (achievement rewards).
func (a *Aggregator) Credit(p *UserProgress, amount int, at, now time.Time) {
	p.TotalXP += amount
	if sameWeek(at, now) {
		p.WeeklyXP += amount
	}
	if sameMonth(at, now) {
		p.MonthlyXP += amount
	}
	if at.After(p.LastActivityAt) {
		p.LastActivityAt = at
	}
}

// derive recomputes the level fields from TotalXP.
func (a *Aggregator) derive(p *UserProgress) error {
	info, err := a.lvl.Level(p.TotalXP)
	if err != nil {
		return err
	}
	p.CurrentLevel = info.Level
	p.CurrentLevelXP = info.CurrentLevelXP
	p.XPToNextLevel = info.XPToNextLevel
	return nil
}

// CheckLevelUp compares level placement before and after an XP change.
func (a *Aggregator) CheckLevelUp(beforeXP, afterXP int) (LevelUp, error) {
	before, err := a.lvl.Level(beforeXP)
	if err != nil {
		return LevelUp{}, err
	}
	after, err := a.lvl.Level(afterXP)
	if err != nil {
		return LevelUp{}, err
	}
	return LevelUp{
		LeveledUp: after.Level > before.Level,
		FromLevel: before.Level,
		ToLevel:   after.Level,
	}, nil
}

// sameWeek reports whether a and b fall in the same Monday-start
// calendar week.
func sameWeek(a, b time.Time) bool {
	return weekStart(a).Equal(weekStart(b))
}

func weekStart(t time.Time) time.Time {
	year, month, day := t.Date()
	t = time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	// Sunday is 0 in time.Weekday; shift so Monday starts the week.
	offset := (weekday + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
