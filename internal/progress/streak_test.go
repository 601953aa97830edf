package progress

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestCurrentStreak(t *testing.T) {
	today := day(t, "2026-03-10")

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{
			name:  "no activity",
			dates: nil,
			want:  0,
		},
		{
			name:  "only today",
			dates: []string{"2026-03-10"},
			want:  1,
		},
		{
			name:  "three consecutive days ending today",
			dates: []string{"2026-03-08", "2026-03-09", "2026-03-10"},
			want:  3,
		},
		{
			name:  "yesterday's streak survives an empty today",
			dates: []string{"2026-03-07", "2026-03-08", "2026-03-09"},
			want:  3,
		},
		{
			name:  "gap before yesterday breaks the streak",
			dates: []string{"2026-03-10", "2026-03-09", "2026-03-07"},
			want:  2,
		},
		{
			name:  "streak ended two days ago counts as zero",
			dates: []string{"2026-03-07", "2026-03-08"},
			want:  0,
		},
		{
			name:  "duplicate dates count once",
			dates: []string{"2026-03-10", "2026-03-10", "2026-03-09"},
			want:  2,
		},
		{
			name:  "malformed dates are ignored",
			dates: []string{"2026-03-10", "03/09/2026", "not-a-date"},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(NewDateSet(tt.dates), today)
			if got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakWindowBound(t *testing.T) {
	today := day(t, "2026-03-10")

	// 60 consecutive active days, far longer than the window.
	var dates []string
	for i := 0; i < 60; i++ {
		dates = append(dates, today.AddDate(0, 0, -i).Format(DateLayout))
	}

	if got := CurrentStreak(NewDateSet(dates), today); got != streakWindowDays {
		t.Errorf("CurrentStreak() = %d, want window bound %d", got, streakWindowDays)
	}
}
