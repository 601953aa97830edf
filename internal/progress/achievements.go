package progress

import "github.com/studybuddy/backend/internal/models"

// Tally is the accumulated activity picture a user is judged against.
type Tally struct {
	Counts map[models.ActivityType]int
	Total  int
	Streak int
}

func (t Tally) count(at models.ActivityType) int {
	return t.Counts[at]
}

// Rule defines a single achievement and the condition that earns it.
type Rule struct {
	Title       string
	Description string
	BadgeIcon   string
	Category    string
	Qualifies   func(Tally) bool
}

// Rules is the full achievement table, evaluated in declaration order.
var Rules = []Rule{
	{
		Title:       "First Steps",
		Description: "Used StudyBuddy for the first time",
		BadgeIcon:   "🌟",
		Category:    "milestone",
		Qualifies:   func(t Tally) bool { return t.Total >= 1 },
	},
	{
		Title:       "Flashcard Master",
		Description: "Studied 10 flashcard sets",
		BadgeIcon:   "🧠",
		Category:    "study",
		Qualifies:   func(t Tally) bool { return t.count(models.ActivityFlashcardStudied) >= 10 },
	},
	{
		Title:       "AI Enthusiast",
		Description: "Had 5 conversations with AI",
		BadgeIcon:   "🤖",
		Category:    "study",
		Qualifies:   func(t Tally) bool { return t.count(models.ActivityAIChat) >= 5 },
	},
	{
		Title:       "Resource Hero",
		Description: "Uploaded 3 resources",
		BadgeIcon:   "📚",
		Category:    "collaboration",
		Qualifies:   func(t Tally) bool { return t.count(models.ActivityResourceUploaded) >= 3 },
	},
	{
		Title:       "Chatterbox",
		Description: "Sent 20 messages",
		BadgeIcon:   "💬",
		Category:    "collaboration",
		Qualifies:   func(t Tally) bool { return t.count(models.ActivityMessageSent) >= 20 },
	},
	{
		Title:       "Event Planner",
		Description: "Created 5 events",
		BadgeIcon:   "📅",
		Category:    "milestone",
		Qualifies:   func(t Tally) bool { return t.count(models.ActivityEventCreated) >= 5 },
	},
	{
		Title:       "Week Warrior",
		Description: "Active for 7 consecutive days",
		BadgeIcon:   "🔥",
		Category:    "consistency",
		Qualifies:   func(t Tally) bool { return t.Streak >= 7 },
	},
}

// Evaluate returns the rules that qualify under the tally and are not
// already earned, in declaration order. It has no side effects; the caller
// persists grants, protected by the per-user title uniqueness constraint.
func Evaluate(t Tally, alreadyEarned map[string]bool) []Rule {
	var unlocked []Rule
	for _, rule := range Rules {
		if alreadyEarned[rule.Title] {
			continue
		}
		if rule.Qualifies(t) {
			unlocked = append(unlocked, rule)
		}
	}
	return unlocked
}
