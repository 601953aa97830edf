package pet

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studybuddy/backend/internal/models"
	"github.com/studybuddy/backend/internal/progress"
)

const (
	defaultPetName  = "Buddy"
	defaultSpecies  = "cat"
	minHungerToFeed = 20
)

var ErrNotHungry = errors.New("pet is not hungry")

// Ledger is the slice of the progress service the pet feature needs.
type Ledger interface {
	SpendXP(userID int64, cost int, item string) (int64, error)
	RecordBestEffort(userID int64, activityType models.ActivityType, details string)
}

type Service struct {
	store         *Store
	ledger        Ledger
	hungerPerHour int
}

func NewService(store *Store, ledger Ledger, hungerPerHour int) *Service {
	return &Service{store: store, ledger: ledger, hungerPerHour: hungerPerHour}
}

// Get returns the user's pet, creating a default one on first access.
// Hunger is derived from the stored value and last_fed_at at read time;
// the stored row only changes when the pet is fed, so repeated reads
// always project from the same baseline.
func (s *Service) Get(userID int64, now time.Time) (*models.Pet, error) {
	p, err := s.store.GetPet(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return s.store.CreatePet(userID, defaultPetName, defaultSpecies)
	}
	if err != nil {
		return nil, err
	}

	p.Hunger = HungerAt(p.Hunger, p.LastFedAt, now, s.hungerPerHour)
	return p, nil
}

// Feed gives the pet a meal: hunger drops, happiness rises, and the pet
// earns XP toward its own level. Feeding a pet that is barely hungry is
// rejected.
func (s *Service) Feed(userID int64, now time.Time) (*models.FeedResponse, error) {
	p, err := s.Get(userID, now)
	if err != nil {
		return nil, err
	}

	if p.Hunger < minHungerToFeed {
		return nil, ErrNotHungry
	}

	hunger, happiness := applyFeeding(p.Hunger, p.Happiness)
	newXP, newLevel := progress.Award(p.XP, p.Level, FeedXP)

	if err := s.store.UpdateVitals(userID, hunger, happiness, newXP, newLevel, true); err != nil {
		return nil, err
	}

	leveledUp := newLevel > p.Level
	p.Hunger = hunger
	p.Happiness = happiness
	p.XP = newXP
	p.Level = newLevel
	p.LastFedAt = now

	s.ledger.RecordBestEffort(userID, models.ActivityTaskCompleted, "fed pet "+p.Name)

	return &models.FeedResponse{Pet: *p, LeveledUp: leveledUp}, nil
}

// Update applies profile edits. An active accessory must be "none" or
// one the pet already owns.
func (s *Service) Update(userID int64, req models.UpdatePetRequest, now time.Time) (*models.Pet, error) {
	p, err := s.Get(userID, now)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > 50 {
			return nil, fmt.Errorf("pet name must be 1-50 characters")
		}
		if err := s.store.UpdateName(userID, name); err != nil {
			return nil, err
		}
		p.Name = name
	}

	if req.Species != nil {
		species := strings.ToLower(strings.TrimSpace(*req.Species))
		if !models.PetSpecies[species] {
			return nil, fmt.Errorf("unknown species %q", species)
		}
		if err := s.store.UpdateSpecies(userID, species); err != nil {
			return nil, err
		}
		p.Species = species
	}

	if req.Color != nil {
		color := strings.TrimSpace(*req.Color)
		if !strings.HasPrefix(color, "#") || len(color) != 7 {
			return nil, fmt.Errorf("color must be a hex value like #FF6B9D")
		}
		if err := s.store.UpdateColor(userID, color); err != nil {
			return nil, err
		}
		p.Color = color
	}

	if req.ActiveAccessory != nil {
		accessory := *req.ActiveAccessory
		if accessory != "none" && !contains(p.Accessories, accessory) {
			return nil, fmt.Errorf("accessory %q is not unlocked", accessory)
		}
		if err := s.store.UpdateActiveAccessory(userID, accessory); err != nil {
			return nil, err
		}
		p.ActiveAccessory = accessory
	}

	return p, nil
}

// UnlockAccessory spends the owner's XP on a catalog item and adds it to
// the pet's wardrobe. The XP deduction and the wardrobe write are
// separate statements; a failure after the spend leaves the XP gone,
// which the audit trail makes recoverable.
func (s *Service) UnlockAccessory(userID int64, accessoryID string, now time.Time) (*models.UnlockAccessoryResponse, error) {
	accessory, ok := FindAccessory(accessoryID)
	if !ok {
		return nil, fmt.Errorf("unknown accessory %q", accessoryID)
	}

	p, err := s.Get(userID, now)
	if err != nil {
		return nil, err
	}
	if contains(p.Accessories, accessoryID) {
		return nil, fmt.Errorf("accessory %q already unlocked", accessoryID)
	}

	remaining, err := s.ledger.SpendXP(userID, accessory.Cost, "accessory:"+accessoryID)
	if err != nil {
		return nil, err
	}

	owned := append(p.Accessories, accessoryID)
	if err := s.store.AddAccessory(userID, owned); err != nil {
		return nil, err
	}
	p.Accessories = owned

	return &models.UnlockAccessoryResponse{Pet: *p, XPRemaining: remaining}, nil
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
