package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus - статус отчета об инциденте
type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportDispatched ReportStatus = "dispatched"
	ReportCompleted  ReportStatus = "completed"
	ReportCancelled  ReportStatus = "cancelled"
)

// Report представляет отчет гражданина об инциденте.
// Отчет никогда не удаляется - он является аудиторским следом,
// его статусные поля меняет только синхронизатор диспетчеризации.
type Report struct {
	ID uuid.UUID `json:"id"`

	// Ключи объектов с фотографиями в хранилище
	IncidentPhotoKey string `json:"incident_photo_key"`
	ReporterPhotoKey string `json:"reporter_photo_key"`

	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Governorate string  `json:"governorate"`
	District    string  `json:"district"`
	FullAddress string  `json:"full_address"`

	Status ReportStatus `json:"status"`
	// Денормализованный статус связанной диспетчеризации
	DispatchStatus    DispatchStatus `json:"dispatch_status"`
	DispatchID        *uuid.UUID     `json:"dispatch_id,omitempty"`
	AmbulanceNotified bool           `json:"ambulance_notified"`

	Notes     string    `json:"notes"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
