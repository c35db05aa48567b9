package selector

import (
	"testing"

	"github.com/prepforge/prepforge/internal/questionbank"
)

func recommendPool() []questionbank.Question {
	return []questionbank.Question{
		question("q1", "quadratics", questionbank.DifficultyMedium, 0),
		question("q2", "quadratics", questionbank.DifficultyMedium, 1),
		question("q3", "quadratics", questionbank.DifficultyMedium, 2),
		question("q4", "quadratics", questionbank.DifficultyMedium, 3),
		question("q5", "quadratics", questionbank.DifficultyHard, 0),
		question("q6", "quadratics", questionbank.DifficultyHard, 1),
		question("q7", "quadratics", questionbank.DifficultyHard, 2),
		question("q8", "geometry", questionbank.DifficultyMedium, 0),
	}
}

func TestRecommendFollowUp_IncorrectGetsRemediation(t *testing.T) {
	answered := question("q1", "quadratics", questionbank.DifficultyMedium, 0)
	recs := RecommendFollowUp(recommendPool(), answered, false, 30)

	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	for _, r := range recs {
		if r.Tag != TagRemediation {
			t.Errorf("tag = %s, want remediation", r.Tag)
		}
		if r.Question.Skill != "quadratics" || r.Question.Subject != questionbank.SubjectMath {
			t.Errorf("recommended %s outside answered skill", r.Question.ID)
		}
		if r.Question.ID == "q1" {
			t.Error("recommended the question just answered")
		}
	}
}

func TestRecommendFollowUp_FastCorrectGetsChallenge(t *testing.T) {
	// Expected 60s; 40s is under the 0.8 ratio (48s).
	answered := question("q1", "quadratics", questionbank.DifficultyMedium, 0)
	recs := RecommendFollowUp(recommendPool(), answered, true, 40)

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	for _, r := range recs {
		if r.Tag != TagChallenge {
			t.Errorf("tag = %s, want challenge", r.Tag)
		}
		if r.Question.Difficulty != questionbank.DifficultyHard {
			t.Errorf("recommended %s is not one tier harder", r.Question.ID)
		}
	}
}

func TestRecommendFollowUp_SlowCorrectGetsNothing(t *testing.T) {
	answered := question("q1", "quadratics", questionbank.DifficultyMedium, 0)
	// 55s is above the 48s fast threshold for a 60s question.
	if recs := RecommendFollowUp(recommendPool(), answered, true, 55); len(recs) != 0 {
		t.Errorf("got %v, want no recommendations", recs)
	}
}

func TestRecommendFollowUp_HardHasNoHarderTier(t *testing.T) {
	answered := question("q5", "quadratics", questionbank.DifficultyHard, 0)
	if recs := RecommendFollowUp(recommendPool(), answered, true, 10); len(recs) != 0 {
		t.Errorf("got %v, want none above hard", recs)
	}
}

func TestRecommendFollowUp_CapsAtPoolSize(t *testing.T) {
	pool := []questionbank.Question{
		question("q1", "quadratics", questionbank.DifficultyMedium, 0),
		question("q2", "quadratics", questionbank.DifficultyMedium, 0),
	}
	answered := pool[0]
	recs := RecommendFollowUp(pool, answered, false, 30)
	if len(recs) != 1 || recs[0].Question.ID != "q2" {
		t.Errorf("recs = %v, want just q2", recs)
	}
}
