package progress

import (
	"errors"
	"testing"
)

func TestAward(t *testing.T) {
	tests := []struct {
		name      string
		xp        int64
		level     int
		points    int
		wantXP    int64
		wantLevel int
	}{
		{"no level up", 10, 1, 50, 60, 1},
		{"exact threshold", 90, 1, 10, 0, 2},
		{"threshold with remainder", 95, 1, 10, 5, 2},
		{"higher level costs more", 150, 2, 60, 10, 3},
		{"multiple levels in one award", 0, 1, 350, 50, 3},
		{"zero points is a no-op", 40, 2, 0, 40, 2},
		{"negative points is a no-op", 40, 2, -10, 40, 2},
		{"corrupt level normalized to one", 0, 0, 50, 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotXP, gotLevel := Award(tt.xp, tt.level, tt.points)
			if gotXP != tt.wantXP || gotLevel != tt.wantLevel {
				t.Errorf("Award(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.xp, tt.level, tt.points, gotXP, gotLevel, tt.wantXP, tt.wantLevel)
			}
		})
	}
}

func TestAwardNeverDecreases(t *testing.T) {
	xp, level := int64(0), 1
	for i := 0; i < 100; i++ {
		newXP, newLevel := Award(xp, level, 37)
		if newLevel < level {
			t.Fatalf("level decreased from %d to %d", level, newLevel)
		}
		if newLevel == level && newXP < xp {
			t.Fatalf("xp decreased from %d to %d at level %d", xp, newXP, level)
		}
		xp, level = newXP, newLevel
	}
	if level == 1 {
		t.Error("expected repeated awards to level up")
	}
}

func TestSpend(t *testing.T) {
	remaining, err := Spend(100, 30)
	if err != nil {
		t.Fatalf("Spend() error = %v", err)
	}
	if remaining != 70 {
		t.Errorf("Spend(100, 30) = %d, want 70", remaining)
	}

	remaining, err = Spend(50, 50)
	if err != nil || remaining != 0 {
		t.Errorf("Spend(50, 50) = (%d, %v), want (0, nil)", remaining, err)
	}
}

func TestSpendInsufficient(t *testing.T) {
	remaining, err := Spend(20, 50)
	if !errors.Is(err, ErrInsufficientXP) {
		t.Fatalf("expected ErrInsufficientXP, got %v", err)
	}
	if remaining != 20 {
		t.Errorf("balance changed on failed spend: got %d, want 20", remaining)
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, 100},
		{-5, 100},
		{1, 1},
		{250, 250},
		{500, 500},
		{501, 100},
	}

	for _, tt := range tests {
		if got := clampLimit(tt.limit); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestNextLevelCost(t *testing.T) {
	if got := NextLevelCost(1); got != 100 {
		t.Errorf("NextLevelCost(1) = %d, want 100", got)
	}
	if got := NextLevelCost(7); got != 700 {
		t.Errorf("NextLevelCost(7) = %d, want 700", got)
	}
	if got := NextLevelCost(0); got != 100 {
		t.Errorf("NextLevelCost(0) = %d, want 100", got)
	}
}
