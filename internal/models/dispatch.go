package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchStatus - статус диспетчеризации
type DispatchStatus string

const (
	DispatchPending    DispatchStatus = "pending"
	DispatchDispatched DispatchStatus = "dispatched"
	DispatchAccepted   DispatchStatus = "accepted"
	DispatchEnRoute    DispatchStatus = "en_route"
	DispatchArrived    DispatchStatus = "arrived"
	DispatchCompleted  DispatchStatus = "completed"
	DispatchCancelled  DispatchStatus = "cancelled"
)

// IsTerminal сообщает, является ли статус конечным
func (s DispatchStatus) IsTerminal() bool {
	return s == DispatchCompleted || s == DispatchCancelled
}

// Timeline хранит момент каждого перехода жизненного цикла.
// Отметки никогда не перезаписываются и неубывают в порядке переходов.
type Timeline struct {
	Dispatched *time.Time `json:"dispatched,omitempty"`
	Accepted   *time.Time `json:"accepted,omitempty"`
	Departed   *time.Time `json:"departed,omitempty"`
	Arrived    *time.Time `json:"arrived,omitempty"`
	Completed  *time.Time `json:"completed,omitempty"`
	Cancelled  *time.Time `json:"cancelled,omitempty"`
}

// Dispatch связывает один отчет с одной станцией и (опционально)
// машиной и фельдшером, отслеживая весь цикл реагирования
type Dispatch struct {
	ID          uuid.UUID      `json:"id"`
	ReportID    uuid.UUID      `json:"report_id"`
	StationID   uuid.UUID      `json:"station_id"`
	AmbulanceID *uuid.UUID     `json:"ambulance_id,omitempty"`
	ParamedicID *uuid.UUID     `json:"paramedic_id,omitempty"`
	Status      DispatchStatus `json:"status"`
	Priority    string         `json:"priority"`
	Timeline    Timeline       `json:"timeline"`
	DistanceKm  float64        `json:"distance_km"`
	// Оценка времени прибытия в минутах
	EstimatedArrival int       `json:"estimated_arrival"`
	DriverNotes      string    `json:"driver_notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
