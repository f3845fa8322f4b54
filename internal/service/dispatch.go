package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/webhook"
	"github.com/shenikar/ambulance_dispatch_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// Action - действие полевого персонала над диспетчеризацией
type Action string

const (
	ActionAccept   Action = "accept"
	ActionDepart   Action = "depart"
	ActionArrive   Action = "arrive"
	ActionComplete Action = "complete"
)

// allowedFrom перечисляет состояния, из которых разрешено каждое действие.
// Принятие (accept) опционально: выезд разрешен и сразу после назначения.
var allowedFrom = map[Action][]models.DispatchStatus{
	ActionAccept:   {models.DispatchPending, models.DispatchDispatched},
	ActionDepart:   {models.DispatchPending, models.DispatchDispatched, models.DispatchAccepted},
	ActionArrive:   {models.DispatchEnRoute},
	ActionComplete: {models.DispatchArrived},
}

// actionTarget - целевой статус каждого действия
var actionTarget = map[Action]models.DispatchStatus{
	ActionAccept:   models.DispatchAccepted,
	ActionDepart:   models.DispatchEnRoute,
	ActionArrive:   models.DispatchArrived,
	ActionComplete: models.DispatchCompleted,
}

// Assignment - результат назначения диспетчеризации на отчет
type Assignment struct {
	Dispatch   *models.Dispatch
	Station    *models.Station
	Ambulance  *models.Ambulance // nil, если машина не была назначена
	DistanceKm float64
	EtaMinutes int
}

// DispatchDetail - диспетчеризация вместе со связанными сущностями
type DispatchDetail struct {
	Dispatch  *models.Dispatch
	Report    *models.Report
	Station   *models.Station
	Ambulance *models.Ambulance
}

// DispatchService определяет контракт движка жизненного цикла диспетчеризации
type DispatchService interface {
	CreateDispatch(ctx context.Context, report *models.Report) (*Assignment, error)
	GetDispatch(ctx context.Context, id uuid.UUID) (*models.Dispatch, error)
	GetDispatchDetail(ctx context.Context, id uuid.UUID) (*DispatchDetail, error)
	Transition(ctx context.Context, id uuid.UUID, action Action, driverNotes string) (*models.Dispatch, error)
	Cancel(ctx context.Context, id uuid.UUID, notes string) (*models.Dispatch, error)
	ListActiveByAmbulance(ctx context.Context, ambulanceID uuid.UUID) ([]*models.Dispatch, error)
	UpdateAmbulanceLocation(ctx context.Context, ambulanceID uuid.UUID, lat, lon float64) error
}

type dispatchService struct {
	stations   StationRepository
	ambulances AmbulanceRepository
	reports    ReportRepository
	dispatches DispatchRepository
	paramedics ParamedicRepository
	events     webhook.EventPublisher
	logger     *logrus.Logger
	now        func() time.Time
}

func NewDispatchService(
	stations StationRepository,
	ambulances AmbulanceRepository,
	reports ReportRepository,
	dispatches DispatchRepository,
	paramedics ParamedicRepository,
	events webhook.EventPublisher,
	logger *logrus.Logger,
) DispatchService {
	return &dispatchService{
		stations:   stations,
		ambulances: ambulances,
		reports:    reports,
		dispatches: dispatches,
		paramedics: paramedics,
		events:     events,
		logger:     logger,
		now:        time.Now,
	}
}

// candidate - станция-кандидат с вычисленным расстоянием до инцидента
type candidate struct {
	station  *models.Station
	distance float64
}

// findBestStation выбирает станцию для выезда: сначала активные станции со
// свободными машинами в губернаторстве инцидента, при их отсутствии - по всем
// губернаторствам, затем ближайшая по прямой. Порядок детерминирован:
// при равных расстояниях побеждает меньший id станции.
func (s *dispatchService) findBestStation(ctx context.Context, lat, lon float64, governorate string) (*candidate, error) {
	stations, err := s.stations.FindAvailable(ctx, governorate)
	if err != nil {
		return nil, fmt.Errorf("service: could not find stations in governorate: %w", err)
	}

	if len(stations) == 0 && governorate != "" {
		s.logger.WithField("governorate", governorate).
			Info("No available ambulances in governorate, searching all governorates")
		stations, err = s.stations.FindAvailable(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("service: could not find stations: %w", err)
		}
	}

	if len(stations) == 0 {
		return nil, ErrNoCapacityAvailable
	}

	candidates := make([]candidate, 0, len(stations))
	for _, st := range stations {
		candidates = append(candidates, candidate{
			station:  st,
			distance: geo.DistanceKm(lat, lon, st.Latitude, st.Longitude),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].station.ID.String() < candidates[j].station.ID.String()
	})

	best := candidates[0]
	return &best, nil
}

// CreateDispatch назначает станцию и машину на отчет об инциденте.
// Возвращает ErrNoCapacityAvailable или ErrConcurrentReservationLost как
// мягкий отказ: отчет остается pending, вызывающая сторона не считает это
// ошибкой подачи отчета.
func (s *dispatchService) CreateDispatch(ctx context.Context, report *models.Report) (*Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "CreateDispatch",
		"report_id": report.ID,
	})
	log.Info("Attempting to create dispatch for report")

	best, err := s.findBestStation(ctx, report.Latitude, report.Longitude, report.Governorate)
	if err != nil {
		return nil, err
	}
	station := best.station
	distanceKm := math.Round(best.distance*100) / 100
	eta := geo.EstimatedArrivalMinutes(best.distance)

	log = log.WithFields(logrus.Fields{
		"station_id":  station.ID,
		"distance_km": distanceKm,
	})

	// Атомарный резерв места на станции. Отказ означает, что параллельный
	// запрос забрал последнюю машину между выбором станции и резервом.
	reserved, err := s.stations.Reserve(ctx, station.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not reserve station capacity: %w", err)
	}
	if !reserved {
		log.Warn("Station capacity consumed by a concurrent dispatch")
		return nil, ErrConcurrentReservationLost
	}

	// Атомарный захват конкретной машины: статус available -> dispatched
	// и привязка к отчету одним условным обновлением.
	ambulance, err := s.ambulances.ClaimAvailable(ctx, station.ID, report.ID)
	if err != nil {
		s.rollbackReservation(ctx, station.ID, log)
		return nil, fmt.Errorf("service: could not claim ambulance: %w", err)
	}

	if ambulance == nil {
		total, countErr := s.ambulances.CountByStation(ctx, station.ID)
		if countErr != nil {
			s.rollbackReservation(ctx, station.ID, log)
			return nil, fmt.Errorf("service: could not count station ambulances: %w", countErr)
		}
		if total > 0 {
			// Гонка проиграна после успешного резерва - компенсирующий откат
			s.rollbackReservation(ctx, station.ID, log)
			return nil, ErrConcurrentReservationLost
		}
		// Счетчик станции говорит о наличии машин, а записей о машинах нет.
		// Расхождение денормализации: фиксируем и продолжаем без машины.
		log.Warn("Consistency warning: station reports capacity but has no ambulance records")
	}

	var paramedicID *uuid.UUID
	if ambulance != nil {
		paramedic, err := s.paramedics.FindActiveByAmbulance(ctx, ambulance.ID)
		if err != nil {
			log.WithError(err).Warn("Failed to resolve paramedic for ambulance")
		} else if paramedic != nil {
			paramedicID = &paramedic.ID
		}
	}

	dispatchedAt := s.now()
	dispatch := &models.Dispatch{
		ReportID:         report.ID,
		StationID:        station.ID,
		Priority:         "high",
		Status:           models.DispatchPending,
		Timeline:         models.Timeline{Dispatched: &dispatchedAt},
		DistanceKm:       distanceKm,
		EstimatedArrival: eta,
	}
	if ambulance != nil {
		dispatch.Status = models.DispatchDispatched
		dispatch.AmbulanceID = &ambulance.ID
		dispatch.ParamedicID = paramedicID
	}

	if err := s.dispatches.Create(ctx, dispatch); err != nil {
		s.rollbackReservation(ctx, station.ID, log)
		if ambulance != nil {
			if relErr := s.ambulances.ReleaseFromDispatch(ctx, ambulance.ID); relErr != nil {
				log.WithError(relErr).Error("Failed to release claimed ambulance after dispatch create failure")
			}
		}
		return nil, fmt.Errorf("service: could not create dispatch: %w", err)
	}

	if err := s.reports.LinkDispatch(ctx, report.ID, dispatch.ID, models.ReportDispatched, models.DispatchDispatched); err != nil {
		log.WithError(err).Error("Failed to link dispatch to report")
		return nil, fmt.Errorf("service: could not link dispatch to report: %w", err)
	}
	if err := s.reports.InvalidateReportCache(ctx, report.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	s.publishEvent(ctx, webhook.EventDispatchCreated, dispatch, log)

	log.WithField("dispatch_id", dispatch.ID).Info("Dispatch created successfully")
	return &Assignment{
		Dispatch:   dispatch,
		Station:    station,
		Ambulance:  ambulance,
		DistanceKm: distanceKm,
		EtaMinutes: eta,
	}, nil
}

// rollbackReservation возвращает резерв станции после неудачного назначения
func (s *dispatchService) rollbackReservation(ctx context.Context, stationID uuid.UUID, log *logrus.Entry) {
	released, err := s.stations.Release(ctx, stationID)
	if err != nil {
		log.WithError(err).Error("Failed to roll back station reservation")
		return
	}
	if !released {
		log.Warn("Consistency warning: station already at full capacity during rollback")
	}
}

// GetDispatch возвращает диспетчеризацию по ID
func (s *dispatchService) GetDispatch(ctx context.Context, id uuid.UUID) (*models.Dispatch, error) {
	dispatch, err := s.dispatches.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get dispatch %s: %w", id, err)
	}
	if dispatch == nil {
		return nil, fmt.Errorf("service: dispatch %s: %w", id, ErrEntityNotFound)
	}
	return dispatch, nil
}

// GetDispatchDetail возвращает диспетчеризацию вместе с отчетом, станцией и машиной
func (s *dispatchService) GetDispatchDetail(ctx context.Context, id uuid.UUID) (*DispatchDetail, error) {
	dispatch, err := s.GetDispatch(ctx, id)
	if err != nil {
		return nil, err
	}

	report, err := s.reports.GetByID(ctx, dispatch.ReportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get report %s: %w", dispatch.ReportID, err)
	}
	if report == nil {
		return nil, fmt.Errorf("service: report %s: %w", dispatch.ReportID, ErrEntityNotFound)
	}
	station, err := s.stations.GetByID(ctx, dispatch.StationID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get station %s: %w", dispatch.StationID, err)
	}
	if station == nil {
		return nil, fmt.Errorf("service: station %s: %w", dispatch.StationID, ErrEntityNotFound)
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
		if ambulance == nil {
			return nil, fmt.Errorf("service: ambulance %s: %w", *dispatch.AmbulanceID, ErrEntityNotFound)
		}
		detail.Ambulance = ambulance
	}
	return detail, nil
}

// Transition выполняет действие полевого персонала над диспетчеризацией.
// Действие из неподходящего состояния отклоняется с ErrInvalidTransition
// без какой-либо мутации.
func (s *dispatchService) Transition(ctx context.Context, id uuid.UUID, action Action, driverNotes string) (*models.Dispatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Transition",
		"dispatch_id": id,
		"action":      action,
	})
	log.Info("Attempting dispatch transition")

	target, ok := actionTarget[action]
	if !ok {
		return nil, fmt.Errorf("service: unknown action %q: %w", action, ErrInvalidTransition)
	}

	dispatch, err := s.dispatches.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get dispatch for transition")
		return nil, fmt.Errorf("service: could not get dispatch %s: %w", id, err)
	}
	if dispatch == nil {
		log.Warn("Dispatch not found for transition")
		return nil, fmt.Errorf("service: dispatch %s: %w", id, ErrEntityNotFound)
	}

	if !transitionAllowed(action, dispatch.Status) {
		log.WithField("current_status", dispatch.Status).Warn("Transition rejected: wrong predecessor state")
		return nil, fmt.Errorf("service: action %s from status %s: %w", action, dispatch.Status, ErrInvalidTransition)
	}

	now := s.now()
	dispatch.Status = target
	stampTimeline(&dispatch.Timeline, target, now)
	if driverNotes != "" {
		dispatch.DriverNotes = driverNotes
	}

	if err := s.dispatches.Update(ctx, dispatch); err != nil {
		log.WithError(err).Error("Failed to update dispatch")
		return nil, fmt.Errorf("service: could not update dispatch: %w", err)
	}

	s.applySync(ctx, dispatch, log)
	s.publishEvent(ctx, webhook.EventDispatchStatusChanged, dispatch, log)

	log.WithField("status", dispatch.Status).Info("Dispatch transition applied")
	return dispatch, nil
}

// Cancel переводит диспетчеризацию в cancelled из любого неконечного
// состояния (административное вмешательство) с теми же компенсирующими
// действиями, что и завершение.
func (s *dispatchService) Cancel(ctx context.Context, id uuid.UUID, notes string) (*models.Dispatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Cancel",
		"dispatch_id": id,
	})
	log.Info("Attempting dispatch cancellation")

	dispatch, err := s.dispatches.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get dispatch %s: %w", id, err)
	}
	if dispatch == nil {
		return nil, fmt.Errorf("service: dispatch %s: %w", id, ErrEntityNotFound)
	}

	if dispatch.Status.IsTerminal() {
		log.WithField("current_status", dispatch.Status).Warn("Cancellation rejected: dispatch already terminal")
		return nil, fmt.Errorf("service: cancel from status %s: %w", dispatch.Status, ErrInvalidTransition)
	}

	now := s.now()
	dispatch.Status = models.DispatchCancelled
	dispatch.Timeline.Cancelled = &now
	if notes != "" {
		dispatch.DriverNotes = notes
	}

	if err := s.dispatches.Update(ctx, dispatch); err != nil {
		return nil, fmt.Errorf("service: could not cancel dispatch: %w", err)
	}

	s.applySync(ctx, dispatch, log)
	s.publishEvent(ctx, webhook.EventDispatchStatusChanged, dispatch, log)

	log.Info("Dispatch cancelled")
	return dispatch, nil
}

// ListActiveByAmbulance возвращает незавершенные диспетчеризации машины
func (s *dispatchService) ListActiveByAmbulance(ctx context.Context, ambulanceID uuid.UUID) ([]*models.Dispatch, error) {
	dispatches, err := s.dispatches.ListActiveByAmbulance(ctx, ambulanceID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list dispatches for ambulance: %w", err)
	}
	return dispatches, nil
}

// UpdateAmbulanceLocation обновляет текущие координаты машины
func (s *dispatchService) UpdateAmbulanceLocation(ctx context.Context, ambulanceID uuid.UUID, lat, lon float64) error {
	ambulance, err := s.ambulances.GetByID(ctx, ambulanceID)
	if err != nil {
		return fmt.Errorf("service: could not get ambulance %s: %w", ambulanceID, err)
	}
	if ambulance == nil {
		return fmt.Errorf("service: ambulance %s: %w", ambulanceID, ErrEntityNotFound)
	}
	if err := s.ambulances.UpdateLocation(ctx, ambulanceID, lat, lon); err != nil {
		return fmt.Errorf("service: could not update ambulance location: %w", err)
	}
	return nil
}

// applySync переносит статус диспетчеризации на денормализованные поля
// отчета и машины. Ошибки переноса логируются, но не откатывают переход:
// кросс-сущностных транзакций нет, расхождение чинится следующим переходом.
func (s *dispatchService) applySync(ctx context.Context, dispatch *models.Dispatch, log *logrus.Entry) {
	p, ok := propagationFor(dispatch.Status)
	if !ok {
		return
	}

	if err := s.reports.SyncStatus(ctx, dispatch.ReportID, p.ReportStatus, p.ReportDispatchStatus); err != nil {
		log.WithError(err).Error("Failed to sync report status")
	}
	if err := s.reports.InvalidateReportCache(ctx, dispatch.ReportID); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	if dispatch.AmbulanceID != nil {
		if p.ReleaseCapacity {
			if err := s.ambulances.ReleaseFromDispatch(ctx, *dispatch.AmbulanceID); err != nil {
				log.WithError(err).Error("Failed to release ambulance from dispatch")
			}
		} else {
			if err := s.ambulances.SetStatus(ctx, *dispatch.AmbulanceID, p.AmbulanceStatus); err != nil {
				log.WithError(err).Error("Failed to sync ambulance status")
			}
		}
	}

	if p.ReleaseCapacity {
		released, err := s.stations.Release(ctx, dispatch.StationID)
		if err != nil {
			log.WithError(err).Error("Failed to release station capacity")
		} else if !released {
			log.Warn("Consistency warning: station already at full capacity on release")
		}
	}
}

// publishEvent ставит событие диспетчеризации в очередь вебхуков
func (s *dispatchService) publishEvent(ctx context.Context, eventType string, dispatch *models.Dispatch, log *logrus.Entry) {
	event := webhook.Event{
		Type:       eventType,
		DispatchID: dispatch.ID,
		ReportID:   dispatch.ReportID,
		Status:     string(dispatch.Status),
		Timestamp:  s.now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish dispatch event")
	}
}

func transitionAllowed(action Action, from models.DispatchStatus) bool {
	for _, st := range allowedFrom[action] {
		if st == from {
			return true
		}
	}
	return false
}

// stampTimeline проставляет отметку времени перехода, не трогая уже
// существующие отметки
func stampTimeline(tl *models.Timeline, status models.DispatchStatus, at time.Time) {
	switch status {
	case models.DispatchDispatched:
		if tl.Dispatched == nil {
			tl.Dispatched = &at
		}
	case models.DispatchAccepted:
		tl.Accepted = &at
	case models.DispatchEnRoute:
		tl.Departed = &at
	case models.DispatchArrived:
		tl.Arrived = &at
	case models.DispatchCompleted:
		tl.Completed = &at
	case models.DispatchCancelled:
		tl.Cancelled = &at
	}
}
