package mastery

import (
	"context"
	"math"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestSnapshot_DefaultOnMiss(t *testing.T) {
	var snap Snapshot
	if got := snap.Get("math", "quadratics"); got != DefaultProbability {
		t.Errorf("Get on nil snapshot = %f, want %f", got, DefaultProbability)
	}

	snap = make(Snapshot)
	if got := snap.Get("math", "quadratics"); got != DefaultProbability {
		t.Errorf("Get on empty snapshot = %f, want %f", got, DefaultProbability)
	}
}

func TestSnapshot_SetClamps(t *testing.T) {
	snap := make(Snapshot)
	snap.Set("math", "quadratics", 1.7)
	if got := snap.Get("math", "quadratics"); got != 1.0 {
		t.Errorf("Get after Set(1.7) = %f, want 1.0", got)
	}
	snap.Set("math", "quadratics", -0.3)
	if got := snap.Get("math", "quadratics"); got != 0.0 {
		t.Errorf("Get after Set(-0.3) = %f, want 0.0", got)
	}
}

func TestUpdate_CorrectConvergesUpward(t *testing.T) {
	cfg := DefaultUpdateConfig()
	p := DefaultProbability
	for i := 0; i < 50; i++ {
		next := Update(p, true, cfg)
		if next <= p && p < 1.0 {
			t.Fatalf("iteration %d: Update did not increase (%f -> %f)", i, p, next)
		}
		if next > 1.0 {
			t.Fatalf("iteration %d: probability %f above 1", i, next)
		}
		p = next
	}
	if p < 0.99 {
		t.Errorf("after 50 correct answers p = %f, want near 1", p)
	}
}

func TestUpdate_IncorrectFloors(t *testing.T) {
	cfg := DefaultUpdateConfig()
	p := 0.9
	for i := 0; i < 20; i++ {
		p = Update(p, false, cfg)
	}
	if !almostEqual(p, cfg.Floor) {
		t.Errorf("after 20 incorrect answers p = %f, want floor %f", p, cfg.Floor)
	}
}

func TestUpdate_SingleSteps(t *testing.T) {
	cfg := DefaultUpdateConfig()
	// 0.5 + 0.15*(1-0.5) = 0.575
	if got := Update(0.5, true, cfg); !almostEqual(got, 0.575) {
		t.Errorf("Update(0.5, correct) = %f, want 0.575", got)
	}
	// 0.5 - 0.1 = 0.4
	if got := Update(0.5, false, cfg); !almostEqual(got, 0.4) {
		t.Errorf("Update(0.5, incorrect) = %f, want 0.4", got)
	}
	// 0.25 - 0.1 floors at 0.2
	if got := Update(0.25, false, cfg); !almostEqual(got, 0.2) {
		t.Errorf("Update(0.25, incorrect) = %f, want 0.2", got)
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p, err := store.Get(ctx, "u1", "math", "geometry")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p != DefaultProbability {
		t.Errorf("Get before Put = %f, want default", p)
	}

	if err := store.Put(ctx, "u1", "math", "geometry", 0.8); err != nil {
		t.Fatalf("Put: %v", err)
	}
	p, err = store.Get(ctx, "u1", "math", "geometry")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p != 0.8 {
		t.Errorf("Get after Put = %f, want 0.8", p)
	}

	// Other users are unaffected.
	p, _ = store.Get(ctx, "u2", "math", "geometry")
	if p != DefaultProbability {
		t.Errorf("other user probability = %f, want default", p)
	}
}

func TestMemoryStore_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Put(ctx, "u1", "math", "geometry", 0.7)

	snap, err := store.Snapshot(ctx, "u1")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	snap.Set("math", "geometry", 0.1)

	p, _ := store.Get(ctx, "u1", "math", "geometry")
	if p != 0.7 {
		t.Errorf("store mutated through snapshot copy: %f", p)
	}
}
