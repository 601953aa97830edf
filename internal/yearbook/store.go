package yearbook

import (
	"database/sql"
	"encoding/json"

	"github.com/studybuddy/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Memories ────────────────────────────────────────────

func (s *Store) CreateMemory(userID int64, req models.CreateMemoryRequest) (*models.Memory, error) {
	people := req.People
	if people == nil {
		people = []string{}
	}
	peopleJSON, err := json.Marshal(people)
	if err != nil {
		return nil, err
	}

	var m models.Memory
	var sentiment, photoURL sql.NullString
	var peopleRaw []byte
	err = s.db.QueryRow(
		`INSERT INTO memories (user_id, title, journal, memory_date, sentiment, people, photo_url)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''))
		 RETURNING id, user_id, title, journal, memory_date, sentiment, people, photo_url, created_at`,
		userID, req.Title, req.Journal, req.MemoryDate, req.Sentiment, string(peopleJSON), req.PhotoURL,
	).Scan(&m.ID, &m.UserID, &m.Title, &m.Journal, &m.MemoryDate, &sentiment, &peopleRaw, &photoURL, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Sentiment = sentiment.String
	m.PhotoURL = photoURL.String
	if err := json.Unmarshal(peopleRaw, &m.People); err != nil {
		m.People = []string{}
	}
	return &m, nil
}

func (s *Store) ListMemories(userID int64) ([]models.Memory, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, journal, memory_date, sentiment, people, photo_url, created_at
		 FROM memories WHERE user_id = $1
		 ORDER BY memory_date ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memories := []models.Memory{}
	for rows.Next() {
		var m models.Memory
		var sentiment, photoURL sql.NullString
		var peopleRaw []byte
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Journal, &m.MemoryDate, &sentiment, &peopleRaw, &photoURL, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Sentiment = sentiment.String
		m.PhotoURL = photoURL.String
		if err := json.Unmarshal(peopleRaw, &m.People); err != nil {
			m.People = []string{}
		}
		memories = append(memories, m)
	}
	return memories, rows.Err()
}

// ── Yearbooks ───────────────────────────────────────────

func (s *Store) CreateYearbook(userID int64, title, schoolYear, content string, themes []string, memoryCount int) (*models.Yearbook, error) {
	if themes == nil {
		themes = []string{}
	}
	themesJSON, err := json.Marshal(themes)
	if err != nil {
		return nil, err
	}

	var y models.Yearbook
	var themesRaw []byte
	err = s.db.QueryRow(
		`INSERT INTO yearbooks (user_id, title, school_year, content_markdown, themes, memory_count)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, title, school_year, content_markdown, themes, memory_count, status, created_at`,
		userID, title, schoolYear, content, string(themesJSON), memoryCount,
	).Scan(&y.ID, &y.UserID, &y.Title, &y.SchoolYear, &y.ContentMarkdown, &themesRaw, &y.MemoryCount, &y.Status, &y.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(themesRaw, &y.Themes); err != nil {
		y.Themes = []string{}
	}
	return &y, nil
}

func (s *Store) ListYearbooks(userID int64) ([]models.Yearbook, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, school_year, content_markdown, themes, memory_count, status, created_at
		 FROM yearbooks WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	yearbooks := []models.Yearbook{}
	for rows.Next() {
		var y models.Yearbook
		var themesRaw []byte
		if err := rows.Scan(&y.ID, &y.UserID, &y.Title, &y.SchoolYear, &y.ContentMarkdown, &themesRaw, &y.MemoryCount, &y.Status, &y.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(themesRaw, &y.Themes); err != nil {
			y.Themes = []string{}
		}
		yearbooks = append(yearbooks, y)
	}
	return yearbooks, rows.Err()
}

// UserName looks up the display name used to address the student.
func (s *Store) UserName(userID int64) (string, error) {
	var name string
	err := s.db.QueryRow(`SELECT name FROM users WHERE id = $1`, userID).Scan(&name)
	return name, err
}
