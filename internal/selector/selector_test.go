package selector

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/prepforge/prepforge/internal/mastery"
	"github.com/prepforge/prepforge/internal/questionbank"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func question(id string, skill string, d questionbank.Difficulty, used int) questionbank.Question {
	return questionbank.Question{
		ID:                      id,
		Subject:                 questionbank.SubjectMath,
		Skill:                   skill,
		Difficulty:              d,
		ExpectedDurationSeconds: 60,
		TimesUsed:               used,
		Type:                    questionbank.TypeMultipleChoice,
	}
}

func TestScore_ZPDWorkedExample(t *testing.T) {
	// Mastery 0.3: optimal = min(0.9, 0.5) = 0.5, weak-skill boost applies.
	snap := make(mastery.Snapshot)
	snap.Set(string(questionbank.SubjectMath), "quadratics", 0.3)

	medium := question("q-med", "quadratics", questionbank.DifficultyMedium, 0)
	easy := question("q-easy", "quadratics", questionbank.DifficultyEasy, 0)

	if got := Score(medium, snap); !almostEqual(got, 1.08) {
		t.Errorf("medium score = %f, want 1.08", got)
	}
	if got := Score(easy, snap); !almostEqual(got, 0.96) {
		t.Errorf("easy score = %f, want 0.96", got)
	}
}

func TestScore_OptimalDifficultyCapped(t *testing.T) {
	snap := make(mastery.Snapshot)
	snap.Set(string(questionbank.SubjectMath), "quadratics", 0.95)

	hard := question("q-hard", "quadratics", questionbank.DifficultyHard, 0)
	// Optimal caps at 0.9 even though mastery + 0.2 = 1.15; hard (0.9)
	// becomes the perfect fit and no weak-skill boost applies.
	if got := Score(hard, snap); !almostEqual(got, 1.0) {
		t.Errorf("hard score at high mastery = %f, want 1.0", got)
	}
}

func TestScore_UsageBoost(t *testing.T) {
	snap := make(mastery.Snapshot)
	snap.Set(string(questionbank.SubjectMath), "quadratics", 0.7)

	fresh := question("q1", "quadratics", questionbank.DifficultyHard, 0)
	worn := question("q2", "quadratics", questionbank.DifficultyHard, 50)
	spent := question("q3", "quadratics", questionbank.DifficultyHard, 150)

	if Score(worn, snap) >= Score(fresh, snap) {
		t.Error("worn question scored at or above fresh question")
	}
	if got := Score(spent, snap); got != 0 {
		t.Errorf("score with 150 uses = %f, want 0", got)
	}
}

func TestScore_DefaultMastery(t *testing.T) {
	// Unseen skills read 0.5: optimal = 0.7, weak-skill boost applies.
	q := question("q1", "never-seen", questionbank.DifficultyMedium, 0)
	want := (1 - math.Abs(0.6-0.7)) * 1.2
	if got := Score(q, nil); !almostEqual(got, want) {
		t.Errorf("score = %f, want %f", got, want)
	}
}

func TestSelectQuestions_BoundsAndNoDuplicates(t *testing.T) {
	pool := []questionbank.Question{
		question("a", "s1", questionbank.DifficultyEasy, 0),
		question("b", "s1", questionbank.DifficultyMedium, 1),
		question("c", "s1", questionbank.DifficultyHard, 2),
		question("c", "s1", questionbank.DifficultyHard, 2), // duplicate entry
	}

	got, err := SelectQuestions(pool, nil, 10, questionbank.Filters{})
	if err != nil {
		t.Fatalf("SelectQuestions: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("result size = %d, want 3 (pool-bounded, deduplicated)", len(got))
	}
	seen := map[string]bool{}
	for _, q := range got {
		if seen[q.ID] {
			t.Errorf("duplicate ID %s in result", q.ID)
		}
		seen[q.ID] = true
	}

	got, err = SelectQuestions(pool, nil, 2, questionbank.Filters{})
	if err != nil {
		t.Fatalf("SelectQuestions: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("result size = %d, want 2 (count-bounded)", len(got))
	}
}

func TestSelectQuestions_Deterministic(t *testing.T) {
	pool := []questionbank.Question{
		question("d", "s1", questionbank.DifficultyMedium, 3),
		question("a", "s1", questionbank.DifficultyMedium, 3),
		question("c", "s1", questionbank.DifficultyMedium, 1),
		question("b", "s1", questionbank.DifficultyEasy, 0),
	}
	snap := make(mastery.Snapshot)
	snap.Set(string(questionbank.SubjectMath), "s1", 0.4)

	first, err := SelectQuestions(pool, snap, 4, questionbank.Filters{})
	if err != nil {
		t.Fatalf("SelectQuestions: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := SelectQuestions(pool, snap, 4, questionbank.Filters{})
		if err != nil {
			t.Fatalf("SelectQuestions: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: order changed:\nfirst %v\nagain %v", i, first, again)
		}
	}

	// Equal-score ties break by TimesUsed then ID: c (1 use) before a and
	// d (3 uses each), a before d alphabetically.
	ids := []string{}
	for _, q := range first {
		if q.Difficulty == questionbank.DifficultyMedium {
			ids = append(ids, q.ID)
		}
	}
	want := []string{"c", "a", "d"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("medium tie-break order = %v, want %v", ids, want)
	}
}

func TestSelectQuestions_FiltersBeforeScoring(t *testing.T) {
	pool := []questionbank.Question{
		question("a", "s1", questionbank.DifficultyMedium, 0),
		question("b", "s2", questionbank.DifficultyMedium, 0),
	}
	got, err := SelectQuestions(pool, nil, 5, questionbank.Filters{Skill: "s2"})
	if err != nil {
		t.Fatalf("SelectQuestions: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("filtered result = %v, want only b", got)
	}
}

func TestSelectQuestions_EmptyPoolAfterFilters(t *testing.T) {
	pool := []questionbank.Question{
		question("a", "s1", questionbank.DifficultyMedium, 0),
	}
	got, err := SelectQuestions(pool, nil, 5, questionbank.Filters{Skill: "other"})
	if err != nil {
		t.Fatalf("SelectQuestions: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("result = %v, want empty", got)
	}
}

func TestSelectQuestions_InvalidCount(t *testing.T) {
	pool := []questionbank.Question{question("a", "s1", questionbank.DifficultyMedium, 0)}
	for _, count := range []int{0, -1} {
		if _, err := SelectQuestions(pool, nil, count, questionbank.Filters{}); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count %d: error = %v, want ErrInvalidCount", count, err)
		}
	}
}
