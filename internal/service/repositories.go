package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

// StationRepository определяет контракт для работы с бд станций.
// Reserve и Release - единственный путь изменения счетчика свободных машин,
// оба выполняются как одно атомарное условное обновление.
type StationRepository interface {
	Create(ctx context.Context, station *models.Station) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Station, error)
	List(ctx context.Context) ([]*models.Station, error)
	// FindAvailable возвращает активные станции со свободными машинами.
	// Пустой governorate означает поиск по всем губернаторствам.
	FindAvailable(ctx context.Context, governorate string) ([]*models.Station, error)
	Reserve(ctx context.Context, id uuid.UUID) (bool, error)
	Release(ctx context.Context, id uuid.UUID) (bool, error)
	AvailabilityTotals(ctx context.Context) (available, total int, err error)
}

// AmbulanceRepository определяет контракт для работы с бд машин скорой помощи
type AmbulanceRepository interface {
	Create(ctx context.Context, ambulance *models.Ambulance) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ambulance, error)
	List(ctx context.Context) ([]*models.Ambulance, error)
	// ClaimAvailable атомарно захватывает одну свободную машину станции,
	// переводя ее в статус dispatched и привязывая к отчету.
	// Возвращает (nil, nil), если захватить нечего.
	ClaimAvailable(ctx context.Context, stationID, reportID uuid.UUID) (*models.Ambulance, error)
	CountByStation(ctx context.Context, stationID uuid.UUID) (int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.AmbulanceStatus) error
	// ReleaseFromDispatch возвращает машину в статус available и очищает привязку к отчету
	ReleaseFromDispatch(ctx context.Context, id uuid.UUID) error
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) error
}

// ReportRepository определяет контракт для работы с бд отчетов об инцидентах
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	List(ctx context.Context, page, pageSize int, governorate string) ([]*models.Report, int, error)
	LinkDispatch(ctx context.Context, reportID, dispatchID uuid.UUID, status models.ReportStatus, dispatchStatus models.DispatchStatus) error
	SyncStatus(ctx context.Context, reportID uuid.UUID, status models.ReportStatus, dispatchStatus models.DispatchStatus) error
	CountByStatus(ctx context.Context) (map[models.ReportStatus]int, error)
	GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.Report, error)
	SetReportCache(ctx context.Context, report *models.Report) error
	InvalidateReportCache(ctx context.Context, id uuid.UUID) error
}

// DispatchRepository определяет контракт для работы с бд диспетчеризаций
type DispatchRepository interface {
	Create(ctx context.Context, dispatch *models.Dispatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dispatch, error)
	Update(ctx context.Context, dispatch *models.Dispatch) error
	List(ctx context.Context, status models.DispatchStatus, limit int) ([]*models.Dispatch, error)
	ListActive(ctx context.Context) ([]*models.Dispatch, error)
	ListActiveByAmbulance(ctx context.Context, ambulanceID uuid.UUID) ([]*models.Dispatch, error)
	CountActive(ctx context.Context) (int, error)
	AverageResponseMinutes(ctx context.Context) (float64, error)
}

// ParamedicRepository определяет контракт для работы с бд фельдшеров
type ParamedicRepository interface {
	Create(ctx context.Context, paramedic *models.Paramedic) error
	// FindActiveByAmbulance возвращает (nil, nil), если за машиной никто не закреплен
	FindActiveByAmbulance(ctx context.Context, ambulanceID uuid.UUID) (*models.Paramedic, error)
}

// PhotoStore - хранилище фотографий отчетов
type PhotoStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, string, error)
}
