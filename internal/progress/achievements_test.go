package progress

import (
	"testing"

	"github.com/studybuddy/backend/internal/models"
)

func titles(rules []Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Title
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		tally  Tally
		earned map[string]bool
		want   []string
	}{
		{
			name:  "no activity unlocks nothing",
			tally: Tally{Counts: map[models.ActivityType]int{}},
			want:  nil,
		},
		{
			name: "first activity unlocks first steps",
			tally: Tally{
				Counts: map[models.ActivityType]int{models.ActivityMoodLogged: 1},
				Total:  1,
			},
			want: []string{"First Steps"},
		},
		{
			name: "flashcard grinder",
			tally: Tally{
				Counts: map[models.ActivityType]int{
					models.ActivityFlashcardStudied: 10,
					models.ActivityAIChat:           2,
				},
				Total:  12,
				Streak: 3,
			},
			want: []string{"First Steps", "Flashcard Master"},
		},
		{
			name: "already earned rules are skipped",
			tally: Tally{
				Counts: map[models.ActivityType]int{
					models.ActivityFlashcardStudied: 10,
					models.ActivityAIChat:           2,
				},
				Total:  12,
				Streak: 3,
			},
			earned: map[string]bool{"First Steps": true},
			want:   []string{"Flashcard Master"},
		},
		{
			name: "streak unlocks week warrior",
			tally: Tally{
				Counts: map[models.ActivityType]int{models.ActivityMoodLogged: 7},
				Total:  7,
				Streak: 7,
			},
			want: []string{"First Steps", "Week Warrior"},
		},
		{
			name: "thresholds are inclusive",
			tally: Tally{
				Counts: map[models.ActivityType]int{
					models.ActivityAIChat:           5,
					models.ActivityResourceUploaded: 3,
					models.ActivityMessageSent:      20,
					models.ActivityEventCreated:     5,
				},
				Total: 33,
			},
			want: []string{"First Steps", "AI Enthusiast", "Resource Hero", "Chatterbox", "Event Planner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Evaluate(tt.tally, tt.earned))
			if len(got) != len(tt.want) {
				t.Fatalf("Evaluate() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Evaluate() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	tally := Tally{
		Counts: map[models.ActivityType]int{models.ActivityFlashcardStudied: 10},
		Total:  10,
	}

	earned := map[string]bool{}
	first := Evaluate(tally, earned)
	for _, r := range first {
		earned[r.Title] = true
	}

	if second := Evaluate(tally, earned); len(second) != 0 {
		t.Errorf("second evaluation unlocked %v, want nothing", titles(second))
	}
}

func TestRulesHaveUniqueTitles(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Rules {
		if seen[r.Title] {
			t.Errorf("duplicate rule title %q", r.Title)
		}
		seen[r.Title] = true
		if r.Qualifies == nil {
			t.Errorf("rule %q has no condition", r.Title)
		}
	}
}
