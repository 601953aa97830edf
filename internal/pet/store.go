package pet

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

const petColumns = `id, user_id, name, species, color, xp, level, happiness, hunger,
	last_fed_at, accessories, active_accessory, created_at, updated_at`

func (s *Store) scanPet(row *sql.Row) (*models.Pet, error) {
	var p models.Pet
	var accessoriesJSON []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Species, &p.Color, &p.XP, &p.Level,
		&p.Happiness, &p.Hunger, &p.LastFedAt, &accessoriesJSON,
		&p.ActiveAccessory, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(accessoriesJSON, &p.Accessories); err != nil {
		p.Accessories = []string{}
	}
	return &p, nil
}

// GetPet returns the user's pet, or sql.ErrNoRows when none exists yet.
func (s *Store) GetPet(userID int64) (*models.Pet, error) {
	row := s.db.QueryRow(`SELECT `+petColumns+` FROM pets WHERE user_id = $1`, userID)
	return s.scanPet(row)
}

// CreatePet inserts a pet with the given name and species, relying on
// column defaults for the rest.
func (s *Store) CreatePet(userID int64, name, species string) (*models.Pet, error) {
	row := s.db.QueryRow(
		`INSERT INTO pets (user_id, name, species)
		 VALUES ($1, $2, $3)
		 RETURNING `+petColumns,
		userID, name, species,
	)
	return s.scanPet(row)
}

// UpdateVitals persists the recomputed hunger/happiness and the feeding
// ledger in one statement.
func (s *Store) UpdateVitals(userID int64, hunger, happiness int, xp int64, level int, fedNow bool) error {
	if fedNow {
		_, err := s.db.Exec(
			`UPDATE pets
			 SET hunger = $2, happiness = $3, xp = $4, level = $5,
			     last_fed_at = NOW(), updated_at = NOW()
			 WHERE user_id = $1`,
			userID, hunger, happiness, xp, level,
		)
		return err
	}
	_, err := s.db.Exec(
		`UPDATE pets
		 SET hunger = $2, happiness = $3, xp = $4, level = $5, updated_at = NOW()
		 WHERE user_id = $1`,
		userID, hunger, happiness, xp, level,
	)
	return err
}

func (s *Store) UpdateName(userID int64, name string) error {
	_, err := s.db.Exec(`UPDATE pets SET name = $2, updated_at = NOW() WHERE user_id = $1`, userID, name)
	return err
}

func (s *Store) UpdateSpecies(userID int64, species string) error {
	_, err := s.db.Exec(`UPDATE pets SET species = $2, updated_at = NOW() WHERE user_id = $1`, userID, species)
	return err
}

func (s *Store) UpdateColor(userID int64, color string) error {
	_, err := s.db.Exec(`UPDATE pets SET color = $2, updated_at = NOW() WHERE user_id = $1`, userID, color)
	return err
}

func (s *Store) UpdateActiveAccessory(userID int64, accessory string) error {
	_, err := s.db.Exec(`UPDATE pets SET active_accessory = $2, updated_at = NOW() WHERE user_id = $1`, userID, accessory)
	return err
}

// AddAccessory appends an accessory ID to the owned set.
func (s *Store) AddAccessory(userID int64, accessories []string) error {
	data, err := json.Marshal(accessories)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`UPDATE pets SET accessories = $2, updated_at = NOW() WHERE user_id = $1`,
		userID, string(data),
	)
	return err
}
