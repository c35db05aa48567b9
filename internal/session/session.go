// Package session orchestrates one learner's practice flow: it hands out
// adaptively selected question batches, records answers into mastery and
// the activity log, and surfaces follow-up recommendations.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prepforge/prepforge/internal/contentgen"
	"github.com/prepforge/prepforge/internal/mastery"
	"github.com/prepforge/prepforge/internal/questionbank"
	"github.com/prepforge/prepforge/internal/selector"
	"github.com/prepforge/prepforge/internal/store"
	"github.com/prepforge/prepforge/internal/tracker"
	"github.com/prepforge/prepforge/internal/xp"
)

// Batch is one served set of questions.
type Batch struct {
	ID        string
	UserID    string
	Questions []questionbank.Question
}

// AnswerResult reports everything one recorded answer changed.
type AnswerResult struct {
	// Mastery is the updated probability for the question's skill.
	Mastery float64

	// Outcome is the progression outcome of the question-answered
	// activity, including XP and any unlocks.
	Outcome tracker.Outcome

	// FollowUps are recommended next questions, empty when the answer
	// earns neither remediation nor a challenge.
	FollowUps []selector.Recommendation
}

// Service wires the question pool, mastery state, and progression
// tracker into one practice surface.
type Service struct {
	pool      questionbank.Pool
	masteries mastery.Store
	tracker   *tracker.Tracker
	repo      store.EventRepo
	update    mastery.UpdateConfig
	gen       contentgen.Generator
}

// WithGenerator enables on-demand question authoring for batches the
// pool cannot fill. Generation is best effort; a failing generator never
// fails the batch.
func (s *Service) WithGenerator(g contentgen.Generator) *Service {
	s.gen = g
	return s
}

// NewService creates a practice service. repo receives mastery and usage
// events for durability; pass the same repo the tracker writes to.
func NewService(pool questionbank.Pool, masteries mastery.Store, tr *tracker.Tracker, repo store.EventRepo) *Service {
	return &Service{
		pool:      pool,
		masteries: masteries,
		tracker:   tr,
		repo:      repo,
		update:    mastery.DefaultUpdateConfig(),
	}
}

// NextBatch selects up to count questions for the user, records their
// serving, and returns them as a new batch.
func (s *Service) NextBatch(ctx context.Context, userID string, count int, filters questionbank.Filters) (Batch, error) {
	snap, err := s.masteries.Snapshot(ctx, userID)
	if err != nil {
		return Batch{}, fmt.Errorf("load mastery: %w", err)
	}

	candidates, err := s.pool.Fetch(ctx, filters)
	if err != nil {
		return Batch{}, fmt.Errorf("fetch questions: %w", err)
	}

	selected, err := selector.SelectQuestions(candidates, snap, count, filters)
	if err != nil {
		return Batch{}, err
	}
	selected = s.backfill(ctx, selected, count, filters)

	for _, q := range selected {
		if err := s.pool.RecordUse(ctx, q.ID); err != nil {
			return Batch{}, fmt.Errorf("record use of %s: %w", q.ID, err)
		}
		if err := s.repo.AppendUsage(ctx, q.ID, userID); err != nil {
			return Batch{}, fmt.Errorf("persist use of %s: %w", q.ID, err)
		}
	}

	return Batch{
		ID:        uuid.NewString(),
		UserID:    userID,
		Questions: selected,
	}, nil
}

// RecordAnswer applies one answer: nudges the skill's mastery
// probability, persists the update, credits XP through the tracker, and
// computes follow-up recommendations.
func (s *Service) RecordAnswer(ctx context.Context, userID string, q questionbank.Question, correct bool, responseTimeSeconds float64, at time.Time) (AnswerResult, error) {
	p, err := s.masteries.Get(ctx, userID, string(q.Subject), q.Skill)
	if err != nil {
		return AnswerResult{}, fmt.Errorf("read mastery: %w", err)
	}
	updated := mastery.Update(p, correct, s.update)
	if err := s.masteries.Put(ctx, userID, string(q.Subject), q.Skill, updated); err != nil {
		return AnswerResult{}, fmt.Errorf("write mastery: %w", err)
	}

	if err := s.repo.AppendMastery(ctx, store.MasteryRecord{
		UserID:      userID,
		Subject:     string(q.Subject),
		Skill:       q.Skill,
		Probability: updated,
		Correct:     correct,
		QuestionID:  q.ID,
	}); err != nil {
		return AnswerResult{}, fmt.Errorf("persist mastery: %w", err)
	}

	outcome, err := s.tracker.RecordActivity(ctx, userID, answerEvent(q, correct, at), at)
	if err != nil {
		return AnswerResult{}, err
	}

	followUps, err := s.followUps(ctx, q, correct, responseTimeSeconds)
	if err != nil {
		return AnswerResult{}, err
	}

	return AnswerResult{
		Mastery:   updated,
		Outcome:   outcome,
		FollowUps: followUps,
	}, nil
}

// backfill asks the generator for the batch shortfall. Generated
// questions join the pool so later selection and follow-ups see them.
func (s *Service) backfill(ctx context.Context, selected []questionbank.Question, count int, filters questionbank.Filters) []questionbank.Question {
	if s.gen == nil || len(selected) >= count {
		return selected
	}

	avoid := make([]string, 0, len(selected))
	for _, q := range selected {
		avoid = append(avoid, q.ID)
	}

	adder, _ := s.pool.(interface{ Add(questionbank.Question) })
	for len(selected) < count {
		q, err := s.gen.Generate(ctx, contentgen.Request{
			Subject:    filters.Subject,
			Skill:      filters.Skill,
			Difficulty: filters.Difficulty,
			AvoidIDs:   avoid,
		})
		if err != nil || q == nil {
			break
		}
		if adder != nil {
			adder.Add(*q)
		}
		selected = append(selected, *q)
		avoid = append(avoid, q.ID)
	}
	return selected
}

func (s *Service) followUps(ctx context.Context, q questionbank.Question, correct bool, responseTimeSeconds float64) ([]selector.Recommendation, error) {
	candidates, err := s.pool.Fetch(ctx, questionbank.Filters{Subject: q.Subject})
	if err != nil {
		return nil, fmt.Errorf("fetch follow-up candidates: %w", err)
	}
	return selector.RecommendFollowUp(candidates, q, correct, responseTimeSeconds), nil
}

// answerEvent maps one answered question onto a scorable activity event.
func answerEvent(q questionbank.Question, correct bool, at time.Time) xp.Event {
	key := xp.KeyQuestionAttempted
	if correct {
		key = xp.KeyQuestionCorrect
	}
	return xp.Event{
		Kind:            xp.KindQuestionAnswered,
		BaseActivityKey: key,
		Difficulty:      xp.Difficulty(q.Difficulty),
		TimeOfDay:       timeOfDay(at),
		IsWeekend:       isWeekend(at),
	}
}

// timeOfDay buckets a clock time: before 7am is early, 10pm or later is
// late.
func timeOfDay(t time.Time) xp.TimeOfDay {
	switch h := t.Hour(); {
	case h < 7:
		return xp.TimeEarly
	case h >= 22:
		return xp.TimeLate
	default:
		return xp.TimeNormal
	}
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
