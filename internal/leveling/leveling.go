// Package leveling maps cumulative experience points to discrete levels.
//
// The curve is quadratic: the cost of advancing from level n-1 to n is
// Base + Step*n, so cumulative requirements grow super-linearly and every
// level is strictly more expensive than the last.
package leveling

import "errors"

// ErrNegativeXP is returned when a caller passes a negative XP total.
// Negative XP is a contract violation, not a state the engine can reach.
var ErrNegativeXP = errors.New("total XP must be non-negative")

const (
	// DefaultBase is the flat portion of each level's cost.
	DefaultBase = 150

	// DefaultStep is the per-level increment of each level's cost.
	DefaultStep = 50
)

// Config holds the leveling curve coefficients. Both the forward and the
// inverse lookup read the same Config, so Level(XPForLevel(n)) == n holds
// for any positive coefficients.
type Config struct {
	// Base is the flat XP cost component per level.
	Base int
	// Step scales the quadratic growth of the curve.
	Step int
}

// DefaultConfig returns the production tuning: level 2 costs 250 XP,
// level 3 a further 300, and so on.
func DefaultConfig() Config {
	return Config{Base: DefaultBase, Step: DefaultStep}
}

// Info describes a learner's position on the leveling curve.
type Info struct {
	// Level is the highest level whose threshold totalXP satisfies.
	Level int
	// CurrentLevelXP is XP earned since reaching Level.
	CurrentLevelXP int
	// XPToNextLevel is the full cost of the next level (not the remainder).
	XPToNextLevel int
}

// XPForLevel returns the cumulative XP required to reach level.
// Level 1 requires 0 XP; levels below 1 are clamped to 1.
func (c Config) XPForLevel(level int) int {
	c = c.normalized()
	if level <= 1 {
		return 0
	}
	// Sum of (Base + Step*k) for k = 2..level.
	n := level - 1
	return c.Base*n + c.Step*(level*(level+1)/2-1)
}

// normalized substitutes defaults for zero or negative coefficients so the
// curve stays strictly increasing.
func (c Config) normalized() Config {
	if c.Base <= 0 && c.Step <= 0 {
		return DefaultConfig()
	}
	if c.Base < 0 {
		c.Base = 0
	}
	if c.Step < 0 {
		c.Step = 0
	}
	return c
}

// Level resolves the level reached at totalXP, walking thresholds upward
// until the next level's requirement is not met.
func (c Config) Level(totalXP int) (Info, error) {
	if totalXP < 0 {
		return Info{}, ErrNegativeXP
	}

	level := 1
	for totalXP >= c.XPForLevel(level+1) {
		level++
	}

	return Info{
		Level:          level,
		CurrentLevelXP: totalXP - c.XPForLevel(level),
		XPToNextLevel:  c.XPForLevel(level+1) - c.XPForLevel(level),
	}, nil
}
