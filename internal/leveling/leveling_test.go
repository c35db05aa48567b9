package leveling

import "testing"

func TestXPForLevel_Thresholds(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 250},
		{3, 550},
		{4, 900},
		{5, 1300},
	}
	for _, tc := range cases {
		if got := cfg.XPForLevel(tc.level); got != tc.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestXPForLevel_StrictlyIncreasing(t *testing.T) {
	cfg := DefaultConfig()
	for level := 1; level < 100; level++ {
		if cfg.XPForLevel(level+1) <= cfg.XPForLevel(level) {
			t.Fatalf("XPForLevel(%d) = %d not above XPForLevel(%d) = %d",
				level+1, cfg.XPForLevel(level+1), level, cfg.XPForLevel(level))
		}
	}
}

func TestLevel_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	for level := 1; level <= 50; level++ {
		info, err := cfg.Level(cfg.XPForLevel(level))
		if err != nil {
			t.Fatalf("Level: %v", err)
		}
		if info.Level != level {
			t.Errorf("Level(XPForLevel(%d)) = %d, want %d", level, info.Level, level)
		}
		if info.CurrentLevelXP != 0 {
			t.Errorf("CurrentLevelXP at threshold %d = %d, want 0", level, info.CurrentLevelXP)
		}
	}
}

func TestLevel_Totality(t *testing.T) {
	cfg := DefaultConfig()
	for xp := 0; xp <= 5000; xp += 7 {
		info, err := cfg.Level(xp)
		if err != nil {
			t.Fatalf("Level(%d): %v", xp, err)
		}
		if info.CurrentLevelXP < 0 || info.CurrentLevelXP >= info.XPToNextLevel {
			t.Errorf("Level(%d): CurrentLevelXP %d outside [0, %d)",
				xp, info.CurrentLevelXP, info.XPToNextLevel)
		}
	}
}

func TestLevel_ZeroXP(t *testing.T) {
	info, err := DefaultConfig().Level(0)
	if err != nil {
		t.Fatalf("Level(0): %v", err)
	}
	if info.Level != 1 || info.CurrentLevelXP != 0 {
		t.Errorf("Level(0) = %+v, want level 1 with 0 current XP", info)
	}
}

func TestLevel_WorkedExample(t *testing.T) {
	// 350 XP sits between the level-2 (250) and level-3 (550) thresholds.
	info, err := DefaultConfig().Level(350)
	if err != nil {
		t.Fatalf("Level(350): %v", err)
	}
	if info.Level != 2 {
		t.Errorf("Level = %d, want 2", info.Level)
	}
	if info.CurrentLevelXP != 100 {
		t.Errorf("CurrentLevelXP = %d, want 100", info.CurrentLevelXP)
	}
	if info.XPToNextLevel != 300 {
		t.Errorf("XPToNextLevel = %d, want 300", info.XPToNextLevel)
	}
}

func TestLevel_NegativeXP(t *testing.T) {
	if _, err := DefaultConfig().Level(-1); err != ErrNegativeXP {
		t.Errorf("Level(-1) error = %v, want ErrNegativeXP", err)
	}
}

func TestLevel_CustomCurve(t *testing.T) {
	cfg := Config{Base: 10, Step: 5}
	// Level 2 costs 10 + 5*2 = 20, level 3 a further 10 + 5*3 = 25.
	if got := cfg.XPForLevel(2); got != 20 {
		t.Errorf("XPForLevel(2) = %d, want 20", got)
	}
	if got := cfg.XPForLevel(3); got != 45 {
		t.Errorf("XPForLevel(3) = %d, want 45", got)
	}
	info, err := cfg.Level(40)
	if err != nil {
		t.Fatalf("Level: %v", err)
	}
	if info.Level != 2 || info.CurrentLevelXP != 20 || info.XPToNextLevel != 25 {
		t.Errorf("Level(40) = %+v, want level 2, 20 into a 25 XP level", info)
	}
}
