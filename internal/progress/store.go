package progress

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/studybuddy/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Activity Records ────────────────────────────────────

func (s *Store) CreateActivity(userID int64, activityType models.ActivityType, activityDate, details string) error {
	_, err := s.db.Exec(
		`INSERT INTO user_activities (user_id, activity_type, activity_date, details)
		 VALUES ($1, $2, $3, $4)`,
		userID, activityType, activityDate, details,
	)
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

func (s *Store) ListActivities(userID int64, limit int) ([]models.ActivityRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, activity_type, activity_date, COALESCE(details, ''), created_at
		 FROM user_activities
		 WHERE user_id = $1
		 ORDER BY activity_date DESC, created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var records []models.ActivityRecord
	for rows.Next() {
		var r models.ActivityRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.ActivityType, &r.ActivityDate, &r.Details, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if records == nil {
		records = []models.ActivityRecord{}
	}
	return records, rows.Err()
}

// ActivityDates returns the distinct calendar dates the user was active on.
func (s *Store) ActivityDates(userID int64) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT activity_date FROM user_activities WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("activity dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// ActivityCounts returns the per-type activity counts and the overall total.
func (s *Store) ActivityCounts(userID int64) (map[models.ActivityType]int, int, error) {
	rows, err := s.db.Query(
		`SELECT activity_type, COUNT(*) FROM user_activities
		 WHERE user_id = $1 GROUP BY activity_type`,
		userID,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("activity counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ActivityType]int)
	total := 0
	for rows.Next() {
		var at models.ActivityType
		var n int
		if err := rows.Scan(&at, &n); err != nil {
			return nil, 0, err
		}
		counts[at] = n
		total += n
	}
	return counts, total, rows.Err()
}

// ── Achievements ────────────────────────────────────────

func (s *Store) ListAchievements(userID int64) ([]models.Achievement, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, description, badge_icon, category, earned_date, created_at
		 FROM achievements WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.BadgeIcon, &a.Category, &a.EarnedDate, &a.CreatedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	if achievements == nil {
		achievements = []models.Achievement{}
	}
	return achievements, rows.Err()
}

func (s *Store) AchievementTitles(userID int64) (map[string]bool, error) {
	rows, err := s.db.Query(
		`SELECT title FROM achievements WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("achievement titles: %w", err)
	}
	defer rows.Close()

	titles := make(map[string]bool)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles[t] = true
	}
	return titles, rows.Err()
}

// GrantAchievement inserts an earned achievement. A concurrent duplicate
// grant is absorbed by the (user_id, title) unique constraint.
func (s *Store) GrantAchievement(userID int64, rule Rule, earnedDate string) error {
	_, err := s.db.Exec(
		`INSERT INTO achievements (user_id, title, description, badge_icon, category, earned_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, title) DO NOTHING`,
		userID, rule.Title, rule.Description, rule.BadgeIcon, rule.Category, earnedDate,
	)
	if err != nil {
		return fmt.Errorf("grant achievement: %w", err)
	}
	return nil
}

// ── XP Ledger ───────────────────────────────────────────

func (s *Store) GetLedger(userID int64) (int64, int, error) {
	var xp int64
	var level int
	err := s.db.QueryRow(
		`SELECT total_xp, level FROM users WHERE id = $1`,
		userID,
	).Scan(&xp, &level)
	if err != nil {
		return 0, 0, fmt.Errorf("get ledger: %w", err)
	}
	return xp, level, nil
}

func (s *Store) UpdateLedger(userID int64, xp int64, level int) error {
	_, err := s.db.Exec(
		`UPDATE users SET total_xp = $2, level = $3, updated_at = NOW() WHERE id = $1`,
		userID, xp, level,
	)
	if err != nil {
		return fmt.Errorf("update ledger: %w", err)
	}
	return nil
}

func (s *Store) LogXPEvent(userID int64, eventType string, points int, metadata map[string]interface{}) error {
	var metaJSON *string
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err == nil {
			str := string(b)
			metaJSON = &str
		}
	}
	_, err := s.db.Exec(
		`INSERT INTO xp_events (user_id, event_type, points, metadata)
		 VALUES ($1, $2, $3, $4)`,
		userID, eventType, points, metaJSON,
	)
	return err
}

// ListXPEvents returns the user's XP audit trail, newest first.
func (s *Store) ListXPEvents(userID int64, limit int) ([]models.XPEvent, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, event_type, points, COALESCE(metadata::text, ''), created_at
		 FROM xp_events
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list xp events: %w", err)
	}
	defer rows.Close()

	events := []models.XPEvent{}
	for rows.Next() {
		var e models.XPEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventType, &e.Points, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ── Reset ───────────────────────────────────────────────

// ResetProgress wipes the user's activity history, achievements, and XP
// audit trail, and returns the ledger to its initial state.
func (s *Store) ResetProgress(userID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM user_activities WHERE user_id = $1`,
		`DELETE FROM achievements WHERE user_id = $1`,
		`DELETE FROM xp_events WHERE user_id = $1`,
		`UPDATE users SET total_xp = 0, level = 1, updated_at = NOW() WHERE id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt, userID); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
	}

	return tx.Commit()
}

// ── Sweep Support ───────────────────────────────────────

func (s *Store) AllUserIDs() ([]int64, error) {
	rows, err := s.db.Query(`SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("all user ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
