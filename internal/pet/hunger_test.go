package pet

import (
	"testing"
	"time"

	"github.com/studybuddy/backend/internal/models"
)

func TestHungerAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		stored  int
		lastFed time.Time
		rate    int
		want    int
	}{
		{
			name:    "just fed",
			stored:  10,
			lastFed: now,
			rate:    5,
			want:    10,
		},
		{
			name:    "three hours at default rate",
			stored:  10,
			lastFed: now.Add(-3 * time.Hour),
			rate:    5,
			want:    25,
		},
		{
			name:    "partial hour does not count",
			stored:  10,
			lastFed: now.Add(-90 * time.Minute),
			rate:    5,
			want:    15,
		},
		{
			name:    "capped at 100",
			stored:  90,
			lastFed: now.Add(-48 * time.Hour),
			rate:    5,
			want:    100,
		},
		{
			name:    "future feed time leaves hunger unchanged",
			stored:  30,
			lastFed: now.Add(2 * time.Hour),
			rate:    5,
			want:    30,
		},
		{
			name:    "zero rate falls back to default",
			stored:  0,
			lastFed: now.Add(-2 * time.Hour),
			rate:    0,
			want:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HungerAt(tt.stored, tt.lastFed, now, tt.rate)
			if got != tt.want {
				t.Errorf("HungerAt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestApplyFeeding(t *testing.T) {
	tests := []struct {
		name          string
		hunger        int
		happiness     int
		wantHunger    int
		wantHappiness int
	}{
		{"typical meal", 60, 70, 30, 80},
		{"hunger floors at zero", 20, 50, 0, 60},
		{"happiness caps at 100", 50, 95, 20, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHunger, gotHappiness := applyFeeding(tt.hunger, tt.happiness)
			if gotHunger != tt.wantHunger || gotHappiness != tt.wantHappiness {
				t.Errorf("applyFeeding(%d, %d) = (%d, %d), want (%d, %d)",
					tt.hunger, tt.happiness, gotHunger, gotHappiness, tt.wantHunger, tt.wantHappiness)
			}
		})
	}
}

func TestHungerGrowsLinearlyFromBaseline(t *testing.T) {
	lastFed := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	stored := 20

	// Hunger is always projected from the stored baseline, so reading at
	// hour N must equal reading at hour N-1 plus one hour of decay.
	prev := HungerAt(stored, lastFed, lastFed.Add(1*time.Hour), 5)
	for h := 2; h <= 10; h++ {
		got := HungerAt(stored, lastFed, lastFed.Add(time.Duration(h)*time.Hour), 5)
		if got != prev+5 {
			t.Fatalf("hour %d: hunger = %d, want %d", h, got, prev+5)
		}
		prev = got
	}
}

func TestHungerRepeatedReadsAreStable(t *testing.T) {
	lastFed := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	at := lastFed.Add(4 * time.Hour)

	first := HungerAt(20, lastFed, at, 5)
	for i := 0; i < 5; i++ {
		if got := HungerAt(20, lastFed, at, 5); got != first {
			t.Fatalf("read %d: hunger = %d, want %d", i+1, got, first)
		}
	}
}

func TestSelectableSpecies(t *testing.T) {
	for _, species := range []string{"cat", "dog", "dragon", "bunny", "fox"} {
		if !models.PetSpecies[species] {
			t.Errorf("expected %q to be selectable", species)
		}
	}
	for _, species := range []string{"hamster", "", "Cat "} {
		if models.PetSpecies[species] {
			t.Errorf("expected %q to be rejected", species)
		}
	}
}

func TestFindAccessory(t *testing.T) {
	a, ok := FindAccessory("crown")
	if !ok {
		t.Fatal("expected crown in catalog")
	}
	if a.Cost != 50 {
		t.Errorf("crown cost = %d, want 50", a.Cost)
	}

	if _, ok := FindAccessory("wings"); ok {
		t.Error("expected wings to be unknown")
	}
}
