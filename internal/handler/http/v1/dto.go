package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

// SubmitReportRequest DTO для подачи отчета об инциденте
// @Description DTO для подачи отчета об инциденте. Фотографии передаются
// @Description как data URL (data:image/jpeg;base64,...) или чистый base64.
type SubmitReportRequest struct {
	IncidentPhoto string  `json:"incident_photo" validate:"required"`
	ReporterPhoto string  `json:"reporter_photo" validate:"required"`
	Latitude      float64 `json:"latitude" validate:"required,latitude"`
	Longitude     float64 `json:"longitude" validate:"required,longitude"`
	Governorate   string  `json:"governorate,omitempty"`
	District      string  `json:"district,omitempty"`
	FullAddress   string  `json:"full_address,omitempty"`
	Notes         string  `json:"notes,omitempty" validate:"max=500"`
}

// StationSummary - краткая информация о станции в ответе о назначении
type StationSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Governorate string    `json:"governorate"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
}

// AmbulanceSummary - краткая информация о машине в ответе о назначении
type AmbulanceSummary struct {
	ID            uuid.UUID `json:"id"`
	VehicleNumber string    `json:"vehicle_number"`
	DriverName    string    `json:"driver_name"`
	DriverPhone   string    `json:"driver_phone"`
}

// AssignmentResponse DTO для результата назначения диспетчеризации
type AssignmentResponse struct {
	DispatchID uuid.UUID         `json:"dispatch_id"`
	Station    StationSummary    `json:"station"`
	Ambulance  *AmbulanceSummary `json:"ambulance,omitempty"`
	DistanceKm float64           `json:"distance_km"`
	EtaMinutes int               `json:"eta_minutes"`
}

// SubmitReportResponse DTO для ответа на подачу отчета
type SubmitReportResponse struct {
	ReportID          uuid.UUID           `json:"report_id"`
	AmbulanceNotified bool                `json:"ambulance_notified"`
	Dispatch          *AssignmentResponse `json:"dispatch,omitempty"`
}

// ReportResponse DTO для ответа с информацией об отчете
type ReportResponse struct {
	ID                uuid.UUID             `json:"id"`
	IncidentPhotoKey  string                `json:"incident_photo_key,omitempty"`
	ReporterPhotoKey  string                `json:"reporter_photo_key,omitempty"`
	Latitude          float64               `json:"latitude"`
	Longitude         float64               `json:"longitude"`
	Governorate       string                `json:"governorate"`
	District          string                `json:"district"`
	FullAddress       string                `json:"full_address,omitempty"`
	Status            models.ReportStatus   `json:"status"`
	DispatchStatus    models.DispatchStatus `json:"dispatch_status"`
	DispatchID        *uuid.UUID            `json:"dispatch_id,omitempty"`
	AmbulanceNotified bool                  `json:"ambulance_notified"`
	Notes             string                `json:"notes,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// Pagination - метаданные пагинации списка
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ReportListResponse DTO для списка отчетов
type ReportListResponse struct {
	Reports    []*ReportResponse `json:"reports"`
	Pagination Pagination        `json:"pagination"`
}

// TransitionRequest DTO для действия полевого персонала
type TransitionRequest struct {
	Notes string `json:"notes,omitempty" validate:"max=1000"`
}

// DispatchResponse DTO для ответа с информацией о диспетчеризации
type DispatchResponse struct {
	ID               uuid.UUID             `json:"id"`
	ReportID         uuid.UUID             `json:"report_id"`
	StationID        uuid.UUID             `json:"station_id"`
	AmbulanceID      *uuid.UUID            `json:"ambulance_id,omitempty"`
	ParamedicID      *uuid.UUID            `json:"paramedic_id,omitempty"`
	Status           models.DispatchStatus `json:"status"`
	Priority         string                `json:"priority"`
	Timeline         models.Timeline       `json:"timeline"`
	DistanceKm       float64               `json:"distance_km"`
	EstimatedArrival int                   `json:"estimated_arrival"`
	DriverNotes      string                `json:"driver_notes,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

// IncidentInfo - сведения об инциденте в детальном ответе для водителя
type IncidentInfo struct {
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Governorate   string    `json:"governorate"`
	District      string    `json:"district"`
	FullAddress   string    `json:"full_address,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	IncidentPhoto string    `json:"incident_photo_key"`
	ReporterPhoto string    `json:"reporter_photo_key"`
	ReportedAt    time.Time `json:"reported_at"`
}

// DispatchDetailResponse DTO для детального ответа о диспетчеризации
type DispatchDetailResponse struct {
	Dispatch  DispatchResponse  `json:"dispatch"`
	Station   StationSummary    `json:"station"`
	Incident  IncidentInfo      `json:"incident"`
	Ambulance *AmbulanceSummary `json:"ambulance,omitempty"`
}

// AdminDispatchListResponse DTO для административного списка диспетчеризаций
type AdminDispatchListResponse struct {
	Dispatches []DispatchDetailResponse `json:"dispatches"`
}

// MapIncidentInfo - точка инцидента на карте реального времени
type MapIncidentInfo struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Governorate string    `json:"governorate"`
	District    string    `json:"district"`
	ReportedAt  time.Time `json:"reported_at"`
}

// MapStationInfo - станция на карте реального времени
type MapStationInfo struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapAmbulanceInfo - машина на карте реального времени
type MapAmbulanceInfo struct {
	VehicleNumber     string     `json:"vehicle_number"`
	CurrentLatitude   *float64   `json:"current_latitude,omitempty"`
	CurrentLongitude  *float64   `json:"current_longitude,omitempty"`
	LocationUpdatedAt *time.Time `json:"location_updated_at,omitempty"`
}

// MapDispatchEntry - один активный выезд на карте реального времени
type MapDispatchEntry struct {
	DispatchID       uuid.UUID             `json:"dispatch_id"`
	Status           models.DispatchStatus `json:"status"`
	Incident         MapIncidentInfo       `json:"incident"`
	Station          MapStationInfo        `json:"station"`
	Ambulance        *MapAmbulanceInfo     `json:"ambulance,omitempty"`
	DistanceKm       float64               `json:"distance_km"`
	EstimatedArrival int                   `json:"estimated_arrival"`
}

// MapResponse DTO для карты реального времени
type MapResponse struct {
	ActiveDispatches []MapDispatchEntry `json:"active_dispatches"`
}

// CreateStationRequest DTO для создания станции
type CreateStationRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=255"`
	Governorate     string  `json:"governorate" validate:"required"`
	District        string  `json:"district" validate:"required"`
	Latitude        float64 `json:"latitude" validate:"required,latitude"`
	Longitude       float64 `json:"longitude" validate:"required,longitude"`
	Address         string  `json:"address" validate:"required"`
	ContactPhone    string  `json:"contact_phone" validate:"required"`
	TotalAmbulances int     `json:"total_ambulances" validate:"required,gte=0"`
}

// StationResponse DTO для ответа с информацией о станции
type StationResponse struct {
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
}

// CreateAmbulanceRequest DTO для создания машины
type CreateAmbulanceRequest struct {
	VehicleNumber string    `json:"vehicle_number" validate:"required"`
	StationID     uuid.UUID `json:"station_id" validate:"required"`
	DriverName    string    `json:"driver_name,omitempty"`
	DriverPhone   string    `json:"driver_phone,omitempty"`
}

// AmbulanceResponse DTO для ответа с информацией о машине
type AmbulanceResponse struct {
	ID              uuid.UUID              `json:"id"`
	VehicleNumber   string                 `json:"vehicle_number"`
	StationID       uuid.UUID              `json:"station_id"`
	Status          models.AmbulanceStatus `json:"status"`
	DriverName      string                 `json:"driver_name,omitempty"`
	DriverPhone     string                 `json:"driver_phone,omitempty"`
	CurrentReportID *uuid.UUID             `json:"current_report_id,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// UpdateLocationRequest DTO для обновления координат машины
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// DashboardStatsResponse DTO для сводки административной панели
type DashboardStatsResponse struct {
	ReportsByStatus        map[models.ReportStatus]int `json:"reports_by_status"`
	ActiveDispatches       int                         `json:"active_dispatches"`
	AvailableAmbulances    int                         `json:"available_ambulances"`
	TotalAmbulances        int                         `json:"total_ambulances"`
	AverageResponseMinutes float64                     `json:"average_response_minutes"`
}
