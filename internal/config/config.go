// Package config loads all runtime settings from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// --- HTTP ---
	Port string `envconfig:"PORT" default:"8080"`

	// --- Database ---
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"studybuddy"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"studybuddy"`
	DBName     string `envconfig:"DB_NAME" default:"studybuddy"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int    `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns int    `envconfig:"DB_MIN_CONNS" default:"5"`

	// --- Auth ---
	JWTSecret string `envconfig:"JWT_SECRET" default:"studybuddy-staging-signing-key-2026"`

	// --- Logging ---
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// --- LLM ---
	AnthropicModel string `envconfig:"ANTHROPIC_MODEL" default:"claude-opus-4-5-20251101"`
	MockLLM        bool   `envconfig:"MOCK_LLM" default:"false"`

	// --- Pet ---
	// Hunger gained per hour since the pet was last fed.
	PetHungerRate int `envconfig:"PET_HUNGER_RATE" default:"5"`

	// --- Jobs ---
	// Cron expression for the nightly achievement sweep.
	SweepSchedule string `envconfig:"ACHIEVEMENT_SWEEP_CRON" default:"30 0 * * *"`
}

// DatabaseDSN returns the Postgres connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("invalid DB_MIN_CONNS/DB_MAX_CONNS")
	}
	if c.PetHungerRate < 0 {
		return fmt.Errorf("PET_HUNGER_RATE must be >= 0")
	}
	return nil
}

// Load reads the environment and returns a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
