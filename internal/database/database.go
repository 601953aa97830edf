package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/studybuddy/backend/internal/config"
)

func Connect(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxConns)
	db.SetMaxIdleConns(cfg.DBMinConns)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		email      VARCHAR(255) UNIQUE NOT NULL,
		name       VARCHAR(255) NOT NULL,
		class_name VARCHAR(100),
		password   VARCHAR(255) NOT NULL,
		total_xp   BIGINT NOT NULL DEFAULT 0 CHECK (total_xp >= 0),
		level      INT NOT NULL DEFAULT 1 CHECK (level >= 1),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS user_activities (
		id            BIGSERIAL PRIMARY KEY,
		user_id       BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		activity_type VARCHAR(50) NOT NULL,
		activity_date VARCHAR(10) NOT NULL,
		details       TEXT,
		created_at    TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_activities_user_date ON user_activities(user_id, activity_date);
	CREATE INDEX IF NOT EXISTS idx_activities_user_type ON user_activities(user_id, activity_type);

	CREATE TABLE IF NOT EXISTS achievements (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title       VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		badge_icon  VARCHAR(16) NOT NULL,
		category    VARCHAR(20) NOT NULL,
		earned_date VARCHAR(10) NOT NULL,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, title)
	);

	CREATE INDEX IF NOT EXISTS idx_achievements_user ON achievements(user_id);

	CREATE TABLE IF NOT EXISTS xp_events (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		event_type VARCHAR(50) NOT NULL,
		points     INT NOT NULL,
		metadata   JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_xp_events_user ON xp_events(user_id, created_at);

	CREATE TABLE IF NOT EXISTS pets (
		id               BIGSERIAL PRIMARY KEY,
		user_id          BIGINT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name             VARCHAR(50) NOT NULL,
		species          VARCHAR(20) NOT NULL DEFAULT 'cat',
		color            VARCHAR(10) NOT NULL DEFAULT '#FF6B9D',
		xp               BIGINT NOT NULL DEFAULT 0,
		level            INT NOT NULL DEFAULT 1,
		happiness        INT NOT NULL DEFAULT 80 CHECK (happiness >= 0 AND happiness <= 100),
		hunger           INT NOT NULL DEFAULT 20 CHECK (hunger >= 0 AND hunger <= 100),
		last_fed_at      TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		accessories      JSONB NOT NULL DEFAULT '[]',
		active_accessory VARCHAR(30) NOT NULL DEFAULT 'none',
		created_at       TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at       TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS memories (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title       VARCHAR(255) NOT NULL,
		journal     TEXT NOT NULL,
		memory_date VARCHAR(10) NOT NULL,
		sentiment   VARCHAR(20),
		people      JSONB NOT NULL DEFAULT '[]',
		photo_url   TEXT,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_memories_user ON memories(user_id, memory_date DESC);

	CREATE TABLE IF NOT EXISTS yearbooks (
		id               BIGSERIAL PRIMARY KEY,
		user_id          BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title            VARCHAR(255) NOT NULL,
		school_year      VARCHAR(9) NOT NULL,
		content_markdown TEXT NOT NULL,
		themes           JSONB NOT NULL DEFAULT '[]',
		memory_count     INT NOT NULL DEFAULT 0,
		status           VARCHAR(20) NOT NULL DEFAULT 'completed',
		created_at       TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_yearbooks_user ON yearbooks(user_id, created_at DESC);
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}
