package service

import (
	"context"
	"fmt"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// DashboardStats - сводка для административной панели
type DashboardStats struct {
	ReportsByStatus        map[models.ReportStatus]int `json:"reports_by_status"`
	ActiveDispatches       int                         `json:"active_dispatches"`
	AvailableAmbulances    int                         `json:"available_ambulances"`
	TotalAmbulances        int                         `json:"total_ambulances"`
	AverageResponseMinutes float64                     `json:"average_response_minutes"`
}

// Предел выборки для административного списка диспетчеризаций
const dispatchListLimit = 100

// AdminService определяет контракт административных операций
type AdminService interface {
	CreateStation(ctx context.Context, station *models.Station) error
	ListStations(ctx context.Context) ([]*models.Station, error)
	CreateAmbulance(ctx context.Context, ambulance *models.Ambulance) error
	ListAmbulances(ctx context.Context) ([]*models.Ambulance, error)
	ListDispatches(ctx context.Context, status models.DispatchStatus) ([]*DispatchDetail, error)
	ListActiveDispatches(ctx context.Context) ([]*DispatchDetail, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type adminService struct {
	stations   StationRepository
	ambulances AmbulanceRepository
	reports    ReportRepository
	dispatches DispatchRepository
	logger     *logrus.Logger
}

func NewAdminService(
	stations StationRepository,
	ambulances AmbulanceRepository,
	reports ReportRepository,
	dispatches DispatchRepository,
	logger *logrus.Logger,
) AdminService {
	return &adminService{
		stations:   stations,
		ambulances: ambulances,
		reports:    reports,
		dispatches: dispatches,
		logger:     logger,
	}
}

// CreateStation регистрирует новую станцию. Свободные машины изначально
// равны общему числу машин.
func (s *adminService) CreateStation(ctx context.Context, station *models.Station) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "CreateStation",
		"name":    station.Name,
	})
	log.Info("Attempting to create a new station")

	station.IsActive = true
	station.AvailableAmbulances = station.TotalAmbulances

	if err := s.stations.Create(ctx, station); err != nil {
		log.WithError(err).Error("Failed to create station in repository")
		return fmt.Errorf("service: could not create station: %w", err)
	}

	log.WithField("station_id", station.ID).Info("Station created successfully")
	return nil
}

// ListStations возвращает все станции с их доступностью
func (s *adminService) ListStations(ctx context.Context) ([]*models.Station, error) {
	stations, err := s.stations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list stations: %w", err)
	}
	return stations, nil
}

// CreateAmbulance регистрирует новую машину на станции
func (s *adminService) CreateAmbulance(ctx context.Context, ambulance *models.Ambulance) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "admin",
		"method":         "CreateAmbulance",
		"vehicle_number": ambulance.VehicleNumber,
	})
	log.Info("Attempting to create a new ambulance")

	station, err := s.stations.GetByID(ctx, ambulance.StationID)
	if err != nil {
		log.WithError(err).Error("Failed to get station for new ambulance")
		return fmt.Errorf("service: could not get station %s: %w", ambulance.StationID, err)
	}
	if station == nil {
		log.Warn("Station not found for new ambulance")
		return fmt.Errorf("service: station %s: %w", ambulance.StationID, ErrEntityNotFound)
	}

	ambulance.Status = models.AmbulanceAvailable
	if err := s.ambulances.Create(ctx, ambulance); err != nil {
		log.WithError(err).Error("Failed to create ambulance in repository")
		return fmt.Errorf("service: could not create ambulance: %w", err)
	}

	log.WithField("ambulance_id", ambulance.ID).Info("Ambulance created successfully")
	return nil
}

// ListAmbulances возвращает все машины
func (s *adminService) ListAmbulances(ctx context.Context) ([]*models.Ambulance, error) {
	ambulances, err := s.ambulances.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list ambulances: %w", err)
	}
	return ambulances, nil
}

// GetDashboardStats собирает сводку для административной панели
// ListDispatches возвращает последние диспетчеризации со связанными
// отчетами, станциями и машинами. Пустой статус означает "все статусы".
func (s *adminService) ListDispatches(ctx context.Context, status models.DispatchStatus) ([]*DispatchDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "ListDispatches",
		"status":  status,
	})

	dispatches, err := s.dispatches.List(ctx, status, dispatchListLimit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list dispatches: %w", err)
	}
	return s.collectDispatchDetails(ctx, dispatches, log)
}

// ListActiveDispatches возвращает незавершенные диспетчеризации со
// связанными сущностями для карты реального времени
func (s *adminService) ListActiveDispatches(ctx context.Context) ([]*DispatchDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "ListActiveDispatches",
	})

	dispatches, err := s.dispatches.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active dispatches: %w", err)
	}
	return s.collectDispatchDetails(ctx, dispatches, log)
}

// collectDispatchDetails подтягивает отчет, станцию и машину для каждой
// диспетчеризации. Запись с недостающим отчетом или станцией пропускается
// с предупреждением о консистентности, отсутствие машины допустимо.
func (s *adminService) collectDispatchDetails(ctx context.Context, dispatches []*models.Dispatch, log *logrus.Entry) ([]*DispatchDetail, error) {
	details := make([]*DispatchDetail, 0, len(dispatches))
	for _, dispatch := range dispatches {
		report, err := s.reports.GetByID(ctx, dispatch.ReportID)
		if err != nil {
			return nil, fmt.Errorf("service: could not get report %s: %w", dispatch.ReportID, err)
		}
		station, err := s.stations.GetByID(ctx, dispatch.StationID)
		if err != nil {
			return nil, fmt.Errorf("service: could not get station %s: %w", dispatch.StationID, err)
		}
		if report == nil || station == nil {
			log.WithField("dispatch_id", dispatch.ID).Warn("Consistency warning: dispatch references a missing report or station")
			continue
		}

		detail := &DispatchDetail{
			Dispatch: dispatch,
			Report:   report,
			Station:  station,
		}
		if dispatch.AmbulanceID != nil {
			ambulance, err := s.ambulances.GetByID(ctx, *dispatch.AmbulanceID)
			if err != nil {
				return nil, fmt.Errorf("service: could not get ambulance %s: %w", *dispatch.AmbulanceID, err)
			}
			detail.Ambulance = ambulance
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "GetDashboardStats",
	})

	byStatus, err := s.reports.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count reports: %w", err)
	}

	active, err := s.dispatches.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count active dispatches: %w", err)
	}

	available, total, err := s.stations.AvailabilityTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get station availability: %w", err)
	}

	avgResponse, err := s.dispatches.AverageResponseMinutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not compute average response time: %w", err)
	}

	log.Info("Dashboard stats collected")
	return &DashboardStats{
		ReportsByStatus:        byStatus,
		ActiveDispatches:       active,
		AvailableAmbulances:    available,
		TotalAmbulances:        total,
		AverageResponseMinutes: avgResponse,
	}, nil
}
