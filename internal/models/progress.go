package models

import "time"

// ── Activity Types ────────────────────────────────────────

type ActivityType string

const (
	ActivityFlashcardStudied ActivityType = "flashcard_studied"
	ActivityAIChat           ActivityType = "ai_chat"
	ActivityResourceViewed   ActivityType = "resource_viewed"
	ActivityResourceUploaded ActivityType = "resource_uploaded"
	ActivityMessageSent      ActivityType = "message_sent"
	ActivityEventCreated     ActivityType = "event_created"
	ActivityMoodLogged       ActivityType = "mood_logged"
	ActivityTaskCompleted    ActivityType = "task_completed"
	ActivityMemoryAdded      ActivityType = "memory_added"
)

// ValidActivityTypes is the set of accepted activity type values.
var ValidActivityTypes = map[ActivityType]bool{
	ActivityFlashcardStudied: true,
	ActivityAIChat:           true,
	ActivityResourceViewed:   true,
	ActivityResourceUploaded: true,
	ActivityMessageSent:      true,
	ActivityEventCreated:     true,
	ActivityMoodLogged:       true,
	ActivityTaskCompleted:    true,
	ActivityMemoryAdded:      true,
}

// ── Core Progress Structs ─────────────────────────────────

type ActivityRecord struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"user_id"`
	ActivityType ActivityType `json:"activity_type"`
	ActivityDate string       `json:"activity_date"`
	Details      string       `json:"details,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

type Achievement struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BadgeIcon   string    `json:"badge_icon"`
	Category    string    `json:"category"`
	EarnedDate  string    `json:"earned_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type XPEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	EventType string    `json:"event_type"`
	Points    int       `json:"points"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Request Types ─────────────────────────────────────────

type RecordActivityRequest struct {
	ActivityType ActivityType `json:"activity_type"`
	ActivityDate string       `json:"activity_date,omitempty"`
	Details      string       `json:"details,omitempty"`
}

type AwardXPRequest struct {
	Points int    `json:"points"`
	Reason string `json:"reason,omitempty"`
}

type SpendXPRequest struct {
	Cost int    `json:"cost"`
	Item string `json:"item,omitempty"`
}

// ── Response Types ────────────────────────────────────────

type ProgressResponse struct {
	TotalXP         int64                `json:"total_xp"`
	Level           int                  `json:"level"`
	NextLevelCost   int                  `json:"next_level_cost"`
	CurrentStreak   int                  `json:"current_streak"`
	TotalActivities int                  `json:"total_activities"`
	ActivityCounts  map[ActivityType]int `json:"activity_counts"`
	Achievements    []Achievement        `json:"achievements"`
	NewlyUnlocked   []string             `json:"newly_unlocked"`
}

type XPResponse struct {
	TotalXP   int64 `json:"total_xp"`
	Level     int   `json:"level"`
	LeveledUp bool  `json:"leveled_up"`
}

type SpendResponse struct {
	TotalXP int64  `json:"total_xp"`
	Item    string `json:"item,omitempty"`
}
