// Package selector ranks candidate questions against a learner's mastery
// snapshot using zone-of-proximal-development scoring: the best question
// sits slightly above current mastery, hasn't been overused, and leans
// toward remediation when the skill is weak.
package selector

import (
	"errors"
	"sort"

	"github.com/prepforge/prepforge/internal/mastery"
	"github.com/prepforge/prepforge/internal/questionbank"
)

// ErrInvalidCount is returned when a caller requests a non-positive
// batch size.
var ErrInvalidCount = errors.New("requested count must be positive")

const (
	// optimalOffset lifts the challenge target above current mastery.
	optimalOffset = 0.2

	// optimalCap keeps the target below maximally punishing content.
	optimalCap = 0.9

	// usageSaturation is the use count at which the usage boost bottoms out.
	usageSaturation = 100

	// weakSkillThreshold marks mastery below which remediation is
	// over-weighted.
	weakSkillThreshold = 0.6

	// weakSkillBoost is the score multiplier for weak-skill questions.
	weakSkillBoost = 1.2
)

// Scored pairs a question with its computed selection score, exposed for
// callers that want to log or display ranking decisions.
type Scored struct {
	Question questionbank.Question
	Score    float64
}

// Score computes the ZPD score of one question against a mastery snapshot.
func Score(q questionbank.Question, snap mastery.Snapshot) float64 {
	masteryLevel := snap.Get(string(q.Subject), q.Skill)

	optimal := masteryLevel + optimalOffset
	if optimal > optimalCap {
		optimal = optimalCap
	}

	difficultyScore := 1 - abs(q.Difficulty.Midpoint()-optimal)

	usageBoost := 1 - float64(q.TimesUsed)/usageSaturation
	if usageBoost < 0 {
		usageBoost = 0
	}

	masteryBoost := 1.0
	if masteryLevel < weakSkillThreshold {
		masteryBoost = weakSkillBoost
	}

	return difficultyScore * usageBoost * masteryBoost
}

// SelectQuestions ranks the pool and returns the top count questions.
//
// Guarantees: the result has at most min(count, len(filtered pool))
// entries, contains no duplicate IDs, and is deterministic for identical
// inputs: ties break by ascending TimesUsed, then ascending ID.
// Filters apply before scoring. An empty result is valid, not an error.
func SelectQuestions(pool []questionbank.Question, snap mastery.Snapshot, count int, filters questionbank.Filters) ([]questionbank.Question, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	ranked, err := RankQuestions(pool, snap, filters)
	if err != nil {
		return nil, err
	}

	if count > len(ranked) {
		count = len(ranked)
	}
	result := make([]questionbank.Question, 0, count)
	for _, s := range ranked[:count] {
		result = append(result, s.Question)
	}
	return result, nil
}

// RankQuestions scores and orders the full filtered pool without
// truncation.
func RankQuestions(pool []questionbank.Question, snap mastery.Snapshot, filters questionbank.Filters) ([]Scored, error) {
	seen := make(map[string]bool, len(pool))
	var ranked []Scored
	for _, q := range pool {
		if !filters.Matches(q) {
			continue
		}
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		ranked = append(ranked, Scored{Question: q, Score: Score(q, snap)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Question.TimesUsed != ranked[j].Question.TimesUsed {
			return ranked[i].Question.TimesUsed < ranked[j].Question.TimesUsed
		}
		return ranked[i].Question.ID < ranked[j].Question.ID
	})

	return ranked, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
