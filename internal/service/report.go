package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// SubmitReportInput - данные подачи отчета об инциденте
type SubmitReportInput struct {
	IncidentPhoto     []byte
	IncidentPhotoType string
	ReporterPhoto     []byte
	ReporterPhotoType string

	Latitude    float64
	Longitude   float64
	Governorate string
	District    string
	FullAddress string
	Notes       string

	IPAddress string
	UserAgent string
}

// SubmitResult - результат подачи отчета. Assignment равен nil, если
// диспетчеризация не состоялась (мягкий отказ): сам отчет при этом принят.
type SubmitResult struct {
	Report     *models.Report
	Assignment *Assignment
}

// Виды фотографий отчета
const (
	PhotoKindIncident = "incident"
	PhotoKindReporter = "reporter"
)

// ReportService определяет контракт бизнес-логики отчетов об инцидентах
type ReportService interface {
	SubmitReport(ctx context.Context, input SubmitReportInput) (*SubmitResult, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	GetReportPhoto(ctx context.Context, id uuid.UUID, kind string) ([]byte, string, error)
	ListReports(ctx context.Context, page, pageSize int, governorate string) ([]*models.Report, int, error)
}

type reportService struct {
	reports     ReportRepository
	photos      PhotoStore
	dispatchSvc DispatchService
	logger      *logrus.Logger
}

func NewReportService(reports ReportRepository, photos PhotoStore, dispatchSvc DispatchService, logger *logrus.Logger) ReportService {
	return &reportService{
		reports:     reports,
		photos:      photos,
		dispatchSvc: dispatchSvc,
		logger:      logger,
	}
}

// SubmitReport принимает отчет гражданина: сохраняет фотографии, создает
// запись отчета и пытается назначить диспетчеризацию. Отказ назначения
// из-за отсутствия свободных машин не блокирует подачу отчета.
func (s *reportService) SubmitReport(ctx context.Context, input SubmitReportInput) (*SubmitResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "SubmitReport",
		"governorate": input.Governorate,
	})
	log.Info("Attempting to submit a new incident report")

	report := &models.Report{
		ID:             uuid.New(),
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Governorate:    fallbackUnknown(input.Governorate),
		District:       fallbackUnknown(input.District),
		FullAddress:    input.FullAddress,
		Status:         models.ReportPending,
		DispatchStatus: models.DispatchPending,
		Notes:          input.Notes,
		IPAddress:      input.IPAddress,
		UserAgent:      input.UserAgent,
	}

	incidentKey := fmt.Sprintf("reports/%s/incident%s", report.ID, photoExt(input.IncidentPhotoType))
	reporterKey := fmt.Sprintf("reports/%s/reporter%s", report.ID, photoExt(input.ReporterPhotoType))

	if err := s.photos.Put(ctx, incidentKey, input.IncidentPhoto, input.IncidentPhotoType); err != nil {
		log.WithError(err).Error("Failed to store incident photo")
		return nil, fmt.Errorf("service: could not store incident photo: %w", err)
	}
	if err := s.photos.Put(ctx, reporterKey, input.ReporterPhoto, input.ReporterPhotoType); err != nil {
		log.WithError(err).Error("Failed to store reporter photo")
		return nil, fmt.Errorf("service: could not store reporter photo: %w", err)
	}
	report.IncidentPhotoKey = incidentKey
	report.ReporterPhotoKey = reporterKey

	if err := s.reports.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}
	log = log.WithField("report_id", report.ID)

	result := &SubmitResult{Report: report}

	assignment, err := s.dispatchSvc.CreateDispatch(ctx, report)
	if err != nil {
		if errors.Is(err, ErrNoCapacityAvailable) || errors.Is(err, ErrConcurrentReservationLost) {
			// Мягкий отказ: отчет остается pending, диспетчеризация
			// будет назначена позднее вручную
			log.WithError(err).Warn("Report submitted without dispatch assignment")
			return result, nil
		}
		log.WithError(err).Error("Dispatch assignment failed")
		return result, nil
	}

	result.Assignment = assignment
	result.Report.DispatchID = &assignment.Dispatch.ID
	result.Report.Status = models.ReportDispatched
	result.Report.DispatchStatus = models.DispatchDispatched
	result.Report.AmbulanceNotified = true

	log.WithField("dispatch_id", assignment.Dispatch.ID).Info("Report submitted and dispatch assigned")
	return result, nil
}

// GetReport получает отчет по ID, сначала пробуя кеш
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	cached, err := s.reports.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read report from cache")
	}
	if cached != nil {
		return cached, nil
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get report from repository")
		return nil, fmt.Errorf("service: could not get report %s: %w", id, err)
	}
	if report == nil {
		log.Warn("Report not found")
		return nil, fmt.Errorf("service: report %s: %w", id, ErrEntityNotFound)
	}

	if err := s.reports.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to cache report")
	}
	return report, nil
}

// GetReportPhoto возвращает содержимое фотографии отчета из хранилища
func (s *reportService) GetReportPhoto(ctx context.Context, id uuid.UUID, kind string) ([]byte, string, error) {
	report, err := s.GetReport(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var key string
	switch kind {
	case PhotoKindIncident:
		key = report.IncidentPhotoKey
	case PhotoKindReporter:
		key = report.ReporterPhotoKey
	default:
		return nil, "", fmt.Errorf("service: unknown photo kind %q: %w", kind, ErrEntityNotFound)
	}
	if key == "" {
		return nil, "", fmt.Errorf("service: report %s has no %s photo: %w", id, kind, ErrEntityNotFound)
	}

	data, contentType, err := s.photos.Get(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("service: could not load report photo: %w", err)
	}
	return data, contentType, nil
}

// ListReports возвращает список отчетов с пагинацией и необязательным
// фильтром по губернаторству
func (s *reportService) ListReports(ctx context.Context, page, pageSize int, governorate string) ([]*models.Report, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	reports, total, err := s.reports.List(ctx, page, pageSize, governorate)
	if err != nil {
		return nil, 0, fmt.Errorf("service: could not list reports: %w", err)
	}
	return reports, total, nil
}

func fallbackUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}

// photoExt выбирает расширение файла по MIME-типу
func photoExt(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
