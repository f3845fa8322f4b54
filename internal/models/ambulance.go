package models

import (
	"time"

	"github.com/google/uuid"
)

// AmbulanceStatus - статус машины скорой помощи
type AmbulanceStatus string

const (
	AmbulanceAvailable    AmbulanceStatus = "available"
	AmbulanceDispatched   AmbulanceStatus = "dispatched"
	AmbulanceEnRoute      AmbulanceStatus = "en_route"
	AmbulanceAtScene      AmbulanceStatus = "at_scene"
	AmbulanceReturning    AmbulanceStatus = "returning"
	AmbulanceOutOfService AmbulanceStatus = "out_of_service"
)

// Ambulance представляет машину скорой помощи, принадлежащую одной станции
type Ambulance struct {
	ID                uuid.UUID       `json:"id"`
	VehicleNumber     string          `json:"vehicle_number"`
	StationID         uuid.UUID       `json:"station_id"`
	Status            AmbulanceStatus `json:"status"`
	DriverName        string          `json:"driver_name"`
	DriverPhone       string          `json:"driver_phone"`
	CurrentLatitude   *float64        `json:"current_latitude,omitempty"`
	CurrentLongitude  *float64        `json:"current_longitude,omitempty"`
	LocationUpdatedAt *time.Time      `json:"location_updated_at,omitempty"`
	// Ссылка на отчет, который машина обслуживает в данный момент
	CurrentReportID *uuid.UUID `json:"current_report_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
