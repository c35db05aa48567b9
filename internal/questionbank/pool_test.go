package questionbank

import (
	"context"
	"testing"
)

func TestDifficulty_Midpoint(t *testing.T) {
	cases := []struct {
		d    Difficulty
		want float64
	}{
		{DifficultyEasy, 0.3},
		{DifficultyMedium, 0.6},
		{DifficultyHard, 0.9},
		{"", 0.6},
	}
	for _, tc := range cases {
		if got := tc.d.Midpoint(); got != tc.want {
			t.Errorf("Midpoint(%q) = %f, want %f", tc.d, got, tc.want)
		}
	}
}

func TestDifficulty_Harder(t *testing.T) {
	if DifficultyEasy.Harder() != DifficultyMedium {
		t.Error("easy.Harder() != medium")
	}
	if DifficultyMedium.Harder() != DifficultyHard {
		t.Error("medium.Harder() != hard")
	}
	if DifficultyHard.Harder() != DifficultyHard {
		t.Error("hard.Harder() != hard (cap)")
	}
}

func TestStaticPool_FetchFilters(t *testing.T) {
	pool := SeedPool()
	ctx := context.Background()

	math, err := pool.Fetch(ctx, Filters{Subject: SubjectMath})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(math) != 12 {
		t.Errorf("math questions = %d, want 12", len(math))
	}
	for _, q := range math {
		if q.Subject != SubjectMath {
			t.Errorf("question %s has subject %s", q.ID, q.Subject)
		}
	}

	skill, err := pool.Fetch(ctx, Filters{Skill: "grammar"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(skill) != 2 {
		t.Errorf("grammar questions = %d, want 2", len(skill))
	}

	excluded, err := pool.Fetch(ctx, Filters{Skill: "grammar", ExcludeIDs: []string{"w-gram-001"}})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(excluded) != 1 || excluded[0].ID != "w-gram-002" {
		t.Errorf("excluded fetch = %v, want only w-gram-002", excluded)
	}
}

func TestStaticPool_FetchEmptyResult(t *testing.T) {
	pool := SeedPool()
	got, err := pool.Fetch(context.Background(), Filters{Skill: "no-such-skill"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d questions, want empty", len(got))
	}
}

func TestStaticPool_RecordUse(t *testing.T) {
	pool := SeedPool()
	ctx := context.Background()

	if err := pool.RecordUse(ctx, "m-lin-001"); err != nil {
		t.Fatalf("RecordUse: %v", err)
	}
	if err := pool.RecordUse(ctx, "m-lin-001"); err != nil {
		t.Fatalf("RecordUse: %v", err)
	}
	q, ok := pool.Get("m-lin-001")
	if !ok {
		t.Fatal("question disappeared")
	}
	if q.TimesUsed != 2 {
		t.Errorf("TimesUsed = %d, want 2", q.TimesUsed)
	}

	// Unknown IDs are a no-op, not an error.
	if err := pool.RecordUse(ctx, "ghost"); err != nil {
		t.Errorf("RecordUse(ghost) = %v, want nil", err)
	}
}

func TestStaticPool_FetchReturnsCopies(t *testing.T) {
	pool := SeedPool()
	ctx := context.Background()

	first, _ := pool.Fetch(ctx, Filters{Skill: "grammar"})
	first[0].TimesUsed = 99

	again, _ := pool.Fetch(ctx, Filters{Skill: "grammar"})
	if again[0].TimesUsed != 0 {
		t.Errorf("pool state mutated through fetched slice")
	}
}
