package models

import (
	"time"

	"github.com/google/uuid"
)

// Station представляет станцию скорой помощи с пулом машин
type Station struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Governorate         string    `json:"governorate"`
	District            string    `json:"district"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	Address             string    `json:"address"`
	ContactPhone        string    `json:"contact_phone"`
	TotalAmbulances     int       `json:"total_ambulances"`
	AvailableAmbulances int       `json:"available_ambulances"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
