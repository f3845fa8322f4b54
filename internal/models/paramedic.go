package models

import (
	"time"

	"github.com/google/uuid"
)

// Paramedic представляет фельдшера, закрепленного за машиной
type Paramedic struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	AmbulanceID *uuid.UUID `json:"ambulance_id,omitempty"`
	StationID   *uuid.UUID `json:"station_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
