package models

import "time"

type Memory struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Title      string    `json:"title"`
	Journal    string    `json:"journal"`
	MemoryDate string    `json:"memory_date"`
	Sentiment  string    `json:"sentiment,omitempty"`
	People     []string  `json:"mentioned_people"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateMemoryRequest struct {
	Title      string   `json:"title"`
	Journal    string   `json:"journal"`
	MemoryDate string   `json:"memory_date"`
	Sentiment  string   `json:"sentiment,omitempty"`
	People     []string `json:"mentioned_people,omitempty"`
	PhotoURL   string   `json:"photo_url,omitempty"`
}

type Yearbook struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Title           string    `json:"title"`
	SchoolYear      string    `json:"school_year"`
	ContentMarkdown string    `json:"content_markdown"`
	Themes          []string  `json:"themes_detected"`
	MemoryCount     int       `json:"memory_count"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type GenerateYearbookRequest struct {
	Title string `json:"title"`
}
