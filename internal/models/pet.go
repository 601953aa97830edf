package models

import "time"

type Pet struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	Species         string    `json:"species"`
	Color           string    `json:"color"`
	XP              int64     `json:"xp"`
	Level           int       `json:"level"`
	Happiness       int       `json:"happiness"`
	Hunger          int       `json:"hunger"`
	LastFedAt       time.Time `json:"last_fed_at"`
	Accessories     []string  `json:"accessories"`
	ActiveAccessory string    `json:"active_accessory"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PetSpecies are the selectable pet kinds.
var PetSpecies = map[string]bool{
	"cat":    true,
	"dog":    true,
	"dragon": true,
	"bunny":  true,
	"fox":    true,
}

type UpdatePetRequest struct {
	Name            *string `json:"name,omitempty"`
	Species         *string `json:"species,omitempty"`
	Color           *string `json:"color,omitempty"`
	ActiveAccessory *string `json:"active_accessory,omitempty"`
}

type UnlockAccessoryRequest struct {
	AccessoryID string `json:"accessory_id"`
}

type FeedResponse struct {
	Pet       Pet  `json:"pet"`
	LeveledUp bool `json:"leveled_up"`
}

type UnlockAccessoryResponse struct {
	Pet         Pet   `json:"pet"`
	XPRemaining int64 `json:"xp_remaining"`
}
