// Package xp converts raw activity events into experience awards through a
// composable bonus model: a base value from the activity table, flat
// schedule bonuses added to the base, and a chain of multiplicative rules
// evaluated in a fixed order so awards are bit-for-bit reproducible.
package xp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownKind is returned for events whose Kind is not in the closed
// activity-kind set. An unknown BaseActivityKey is deliberately not an
// error; it scores zero with a flagged breakdown entry.
var ErrUnknownKind = errors.New("unknown activity kind")

// Calculator scores activity events. Stateless and safe for concurrent use.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a calculator with the given tuning tables.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Compute scores a single event. Pure: identical events always produce
// identical awards.
func (c *Calculator) Compute(event Event) (Award, error) {
	if !event.Kind.Valid() {
		return Award{}, fmt.Errorf("%w: %q", ErrUnknownKind, event.Kind)
	}

	baseXP, known := c.cfg.ActivityTable[event.BaseActivityKey]
	if !known {
		award := Award{
			BaseXP:          0,
			TotalMultiplier: 1.0,
			FinalXP:         0,
			Bonuses: []Bonus{{
				Type:        BonusUnknown,
				Value:       1.0,
				Description: fmt.Sprintf("unknown activity %q", event.BaseActivityKey),
			}},
		}
		award.Breakdown = renderBreakdown(award)
		return award, nil
	}

	// Study sessions with a known duration take the highest tier base
	// not exceeding the duration; below the lowest tier the table value
	// stands.
	if event.Kind == KindStudySession && event.DurationMinutes > 0 {
		for i := len(c.cfg.DurationTiers) - 1; i >= 0; i-- {
			tier := c.cfg.DurationTiers[i]
			if event.DurationMinutes >= tier.MinMinutes {
				baseXP = tier.BaseXP
				break
			}
		}
	}

	var bonuses []Bonus

	// Flat schedule bonuses adjust the base before any multiplication.
	if event.TimeOfDay == TimeEarly && c.cfg.EarlyBirdBonus > 0 {
		baseXP += c.cfg.EarlyBirdBonus
		bonuses = append(bonuses, Bonus{
			Type:        BonusEarlyBird,
			Value:       1.0,
			Description: fmt.Sprintf("early bird +%d", c.cfg.EarlyBirdBonus),
		})
	}
	if event.TimeOfDay == TimeLate && c.cfg.NightOwlBonus > 0 {
		baseXP += c.cfg.NightOwlBonus
		bonuses = append(bonuses, Bonus{
			Type:        BonusNightOwl,
			Value:       1.0,
			Description: fmt.Sprintf("night owl +%d", c.cfg.NightOwlBonus),
		})
	}
	if event.IsWeekend && c.cfg.WeekendBonus > 0 {
		baseXP += c.cfg.WeekendBonus
		bonuses = append(bonuses, Bonus{
			Type:        BonusWeekend,
			Value:       1.0,
			Description: fmt.Sprintf("weekend +%d", c.cfg.WeekendBonus),
		})
	}

	// Multiplicative rules, fixed order: difficulty, performance, streak,
	// group. The order fixes the recorded breakdown and the float
	// accumulation sequence.
	total := 1.0

	if event.Difficulty != "" {
		if m, ok := c.cfg.DifficultyMultipliers[event.Difficulty]; ok && m > 1.0 {
			total *= m
			bonuses = append(bonuses, Bonus{
				Type:        BonusDifficulty,
				Value:       m,
				Description: fmt.Sprintf("%s difficulty x%.2g", event.Difficulty, m),
			})
		}
	}

	if event.Kind == KindPracticeTest {
		for i := len(c.cfg.PerformanceTiers) - 1; i >= 0; i-- {
			tier := c.cfg.PerformanceTiers[i]
			if event.PerformancePercent >= tier.MinPercent {
				total *= tier.Multiplier
				bonuses = append(bonuses, Bonus{
					Type:        BonusPerformance,
					Value:       tier.Multiplier,
					Description: fmt.Sprintf("%d%% score x%.2g", event.PerformancePercent, tier.Multiplier),
				})
				break
			}
		}
	}

	if m, days := c.streakMultiplier(event.StreakDays); m > 1.0 {
		total *= m
		bonuses = append(bonuses, Bonus{
			Type:        BonusStreak,
			Value:       m,
			Description: fmt.Sprintf("%d-day streak x%.2g (tier %d)", event.StreakDays, m, days),
		})
	}

	if event.IsGroupActivity && c.cfg.GroupMultiplier > 1.0 {
		total *= c.cfg.GroupMultiplier
		bonuses = append(bonuses, Bonus{
			Type:        BonusGroup,
			Value:       c.cfg.GroupMultiplier,
			Description: fmt.Sprintf("group activity x%.2g", c.cfg.GroupMultiplier),
		})
	}

	award := Award{
		BaseXP:          baseXP,
		Bonuses:         bonuses,
		TotalMultiplier: total,
		FinalXP:         int(math.Floor(float64(baseXP) * total)),
	}
	award.Breakdown = renderBreakdown(award)
	return award, nil
}

// streakMultiplier returns the multiplier of the largest streak tier not
// exceeding days, along with the matched tier's threshold.
func (c *Calculator) streakMultiplier(days int) (float64, int) {
	for i := len(c.cfg.StreakTiers) - 1; i >= 0; i-- {
		tier := c.cfg.StreakTiers[i]
		if days >= tier.MinDays {
			return tier.Multiplier, tier.MinDays
		}
	}
	return 1.0, 0
}

func renderBreakdown(a Award) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "base %d", a.BaseXP)
	for _, b := range a.Bonuses {
		sb.WriteString(", ")
		sb.WriteString(b.Description)
	}
	fmt.Fprintf(&sb, " = %d XP", a.FinalXP)
	return sb.String()
}
