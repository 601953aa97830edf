package yearbook

import (
	"strings"
	"testing"
	"time"

	"github.com/studybuddy/backend/internal/models"
)

func TestSchoolYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"october is the new year", time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"september starts the year", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"august belongs to the previous year", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"spring belongs to the previous year", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "2025-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SchoolYear(tt.date); got != tt.want {
				t.Errorf("SchoolYear(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestBuildUserPrompt(t *testing.T) {
	memories := []models.Memory{
		{Title: "First day", Journal: "Met Sam in homeroom.", MemoryDate: "2025-09-02", People: []string{"Sam"}},
		{Title: "Science fair", Journal: "Won second place.", MemoryDate: "2026-02-10", Sentiment: "proud"},
	}

	prompt, err := BuildUserPrompt("Riley", "2025-2026", memories)
	if err != nil {
		t.Fatalf("BuildUserPrompt() error = %v", err)
	}

	for _, want := range []string{"Riley", "2025-2026", "Met Sam in homeroom.", "proud"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
