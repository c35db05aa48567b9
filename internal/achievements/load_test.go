package achievements

import (
	"strings"
	"testing"
)

const validCatalogJSON = `[
  {
    "id": "hours-10",
    "name": "Ten Hours",
    "description": "Log 10 study hours",
    "category": "study",
    "tier": "bronze",
    "xp_reward": 50,
    "requirement": {"type": "study_hours", "target": 10}
  },
  {
    "id": "dawn-patrol",
    "name": "Dawn Patrol",
    "category": "milestone",
    "tier": "gold",
    "xp_reward": 300,
    "requirement": {"type": "milestone", "target": 5, "counter_key": "early_sessions"}
  }
]`

func TestLoadCatalog_Valid(t *testing.T) {
	c, err := LoadCatalog([]byte(validCatalogJSON))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	a, ok := c.Get("dawn-patrol")
	if !ok {
		t.Fatal("dawn-patrol missing")
	}
	if a.Tier != TierGold || a.XPReward != 300 {
		t.Errorf("entry = %+v, want gold / 300 XP", a)
	}
	if a.Requirement.Type != ReqMilestone || a.Requirement.CounterKey != "early_sessions" {
		t.Errorf("requirement = %+v, want milestone/early_sessions", a.Requirement)
	}
}

func TestLoadCatalog_RejectsBadShape(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"not array", `{"id": "a"}`},
		{"missing tier", `[{"id": "a", "name": "A", "category": "c", "xp_reward": 1, "requirement": {"type": "study_hours", "target": 1}}]`},
		{"bad tier", `[{"id": "a", "name": "A", "category": "c", "tier": "diamond", "xp_reward": 1, "requirement": {"type": "study_hours", "target": 1}}]`},
		{"bad requirement type", `[{"id": "a", "name": "A", "category": "c", "tier": "bronze", "xp_reward": 1, "requirement": {"type": "vibes", "target": 1}}]`},
		{"zero target", `[{"id": "a", "name": "A", "category": "c", "tier": "bronze", "xp_reward": 1, "requirement": {"type": "study_hours", "target": 0}}]`},
		{"unknown field", `[{"id": "a", "name": "A", "category": "c", "tier": "bronze", "xp_reward": 1, "bonus": true, "requirement": {"type": "study_hours", "target": 1}}]`},
	}
	for _, tc := range cases {
		if _, err := LoadCatalog([]byte(tc.json)); err == nil {
			t.Errorf("%s: LoadCatalog accepted invalid JSON", tc.name)
		}
	}
}

func TestLoadCatalog_MilestoneRequiresCounterKey(t *testing.T) {
	bad := `[{"id": "a", "name": "A", "category": "c", "tier": "bronze", "xp_reward": 1,
	  "requirement": {"type": "milestone", "target": 1}}]`
	_, err := LoadCatalog([]byte(bad))
	if err == nil {
		t.Fatal("LoadCatalog accepted milestone without counter key")
	}
	if !strings.Contains(err.Error(), "counter key") {
		t.Errorf("error = %v, want counter key complaint", err)
	}
}

func TestLoadCatalog_InvalidJSON(t *testing.T) {
	if _, err := LoadCatalog([]byte(`[{`)); err == nil {
		t.Error("LoadCatalog accepted malformed JSON")
	}
}
