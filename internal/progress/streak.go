package progress

import "time"

const (
	// DateLayout is the calendar-date format activity records are keyed by.
	DateLayout = "2006-01-02"

	// streakWindowDays bounds the backward walk; streaks longer than the
	// window report the window size.
	streakWindowDays = 30
)

// DateSet is a deduplicated set of yyyy-mm-dd activity dates.
type DateSet map[string]struct{}

// NewDateSet builds a DateSet from raw stored date strings. Values that do
// not parse as calendar dates are excluded rather than failing the caller.
func NewDateSet(dates []string) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		if _, err := time.Parse(DateLayout, d); err != nil {
			continue
		}
		set[d] = struct{}{}
	}
	return set
}

// CurrentStreak returns the number of consecutive active days counting
// backward from today. A missing day breaks the streak, with one
// exception: today itself may be empty — a user who has not acted yet
// today keeps yesterday's streak instead of seeing it reset at midnight.
func CurrentStreak(active DateSet, today time.Time) int {
	streak := 0
	for offset := 0; offset < streakWindowDays; offset++ {
		day := today.AddDate(0, 0, -offset).Format(DateLayout)
		if _, ok := active[day]; ok {
			streak++
		} else if offset > 0 {
			break
		}
	}
	return streak
}
