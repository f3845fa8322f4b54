package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/ambulance_dispatch_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReportService собирает сервис отчетов поверх настоящего сервиса
// диспетчеризации с мокированными репозиториями.
func newTestReportService(t *testing.T) (*reportService, *dispatchMocks, *mocks.MockPhotoStore) {
	ctrl := gomock.NewController(t)
	m := &dispatchMocks{
		stations:   mocks.NewMockStationRepository(ctrl),
		ambulances: mocks.NewMockAmbulanceRepository(ctrl),
		reports:    mocks.NewMockReportRepository(ctrl),
		dispatches: mocks.NewMockDispatchRepository(ctrl),
		paramedics: mocks.NewMockParamedicRepository(ctrl),
		events:     webhook_mocks.NewMockEventPublisher(ctrl),
	}
	photoStore := mocks.NewMockPhotoStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	dispatchSvc := NewDispatchService(m.stations, m.ambulances, m.reports, m.dispatches, m.paramedics, m.events, logger)
	service := NewReportService(m.reports, photoStore, dispatchSvc, logger)
	return service.(*reportService), m, photoStore
}

func testSubmitInput() SubmitReportInput {
	return SubmitReportInput{
		IncidentPhoto:     []byte("incident-bytes"),
		IncidentPhotoType: "image/jpeg",
		ReporterPhoto:     []byte("reporter-bytes"),
		ReporterPhotoType: "image/png",
		Latitude:          30.0444,
		Longitude:         31.2357,
		Governorate:       "Cairo",
		District:          "Downtown",
		FullAddress:       "26 Tahrir Square",
		Notes:             "traffic accident",
		IPAddress:         "192.0.2.10",
		UserAgent:         "test-agent",
	}
}

func TestSubmitReport_Success_WithDispatch(t *testing.T) {
	// Подготовка
	service, m, photoStore := newTestReportService(t)
	ctx := context.Background()
	input := testSubmitInput()
	station := testStation("Cairo", 30.0600, 31.2400)
	ambulance := &models.Ambulance{ID: uuid.New(), StationID: station.ID}

	// Ожидания: фотографии уходят в хранилище под ключами отчета
	photoStore.EXPECT().
		Put(ctx, gomock.Any(), input.IncidentPhoto, "image/jpeg").
		DoAndReturn(func(_ context.Context, key string, _ []byte, _ string) error {
			assert.True(t, strings.HasPrefix(key, "reports/"))
			assert.True(t, strings.HasSuffix(key, "/incident.jpg"))
			return nil
		})
	photoStore.EXPECT().
		Put(ctx, gomock.Any(), input.ReporterPhoto, "image/png").
		DoAndReturn(func(_ context.Context, key string, _ []byte, _ string) error {
			assert.True(t, strings.HasSuffix(key, "/reporter.png"))
			return nil
		})
	m.reports.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) error {
			assert.Equal(t, "Cairo", r.Governorate)
			assert.Equal(t, models.ReportPending, r.Status)
			assert.NotEmpty(t, r.IncidentPhotoKey)
			assert.NotEmpty(t, r.ReporterPhotoKey)
			return nil
		})

	// Назначение диспетчеризации
	m.stations.EXPECT().FindAvailable(ctx, "Cairo").Return([]*models.Station{station}, nil)
	m.stations.EXPECT().Reserve(ctx, station.ID).Return(true, nil)
	m.ambulances.EXPECT().ClaimAvailable(ctx, station.ID, gomock.Any()).Return(ambulance, nil)
	m.paramedics.EXPECT().FindActiveByAmbulance(ctx, ambulance.ID).Return(nil, nil)
	m.dispatches.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Dispatch) error {
		d.ID = uuid.New()
		return nil
	})
	m.reports.EXPECT().LinkDispatch(ctx, gomock.Any(), gomock.Any(), models.ReportDispatched, models.DispatchDispatched).Return(nil)
	m.reports.EXPECT().InvalidateReportCache(ctx, gomock.Any()).Return(nil)
	m.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	result, err := service.SubmitReport(ctx, input)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, result.Assignment)
	assert.Equal(t, models.ReportDispatched, result.Report.Status)
	assert.True(t, result.Report.AmbulanceNotified)
	require.NotNil(t, result.Report.DispatchID)
	assert.Equal(t, result.Assignment.Dispatch.ID, *result.Report.DispatchID)
}

func TestSubmitReport_NoCapacity_ReportStillAccepted(t *testing.T) {
	// Подготовка: свободных машин нет нигде, отчет все равно принимается
	service, m, photoStore := newTestReportService(t)
	ctx := context.Background()
	input := testSubmitInput()
	input.Governorate = ""
	input.District = ""

	// Ожидания
	photoStore.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.reports.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	// Пустое губернаторство заменяется на Unknown перед поиском станций
	m.stations.EXPECT().FindAvailable(ctx, "Unknown").Return(nil, nil)
	m.stations.EXPECT().FindAvailable(ctx, "").Return(nil, nil)

	// Действие
	result, err := service.SubmitReport(ctx, input)

	// Проверки: мягкий отказ, без ошибки подачи
	require.NoError(t, err)
	assert.Nil(t, result.Assignment)
	assert.Equal(t, models.ReportPending, result.Report.Status)
	assert.False(t, result.Report.AmbulanceNotified)
	assert.Equal(t, "Unknown", result.Report.Governorate)
	assert.Equal(t, "Unknown", result.Report.District)
}

func TestSubmitReport_PhotoStoreFailure(t *testing.T) {
	// Подготовка
	service, m, photoStore := newTestReportService(t)
	ctx := context.Background()
	input := testSubmitInput()

	// Ожидания: отказ хранилища прерывает подачу до создания отчета
	photoStore.EXPECT().Put(ctx, gomock.Any(), input.IncidentPhoto, "image/jpeg").Return(assert.AnError)
	m.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.SubmitReport(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestGetReport_Success_FromCache(t *testing.T) {
	// Подготовка
	service, m, _ := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	expected := &models.Report{ID: reportID, Governorate: "Cairo"}

	// Ожидания
	m.reports.EXPECT().GetReportFromCache(ctx, reportID).Return(expected, nil)

	// Действие
	report, err := service.GetReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestGetReport_Success_FromDB(t *testing.T) {
	// Подготовка
	service, m, _ := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	expected := &models.Report{ID: reportID, Governorate: "Giza"}

	// Ожидания: промах кеша, чтение из БД, запись в кеш
	m.reports.EXPECT().GetReportFromCache(ctx, reportID).Return(nil, nil)
	m.reports.EXPECT().GetByID(ctx, reportID).Return(expected, nil)
	m.reports.EXPECT().SetReportCache(ctx, expected).Return(nil)

	// Действие
	report, err := service.GetReport(ctx, reportID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestGetReport_NotFound(t *testing.T) {
	// Подготовка
	service, m, _ := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	// Ожидания
	m.reports.EXPECT().GetReportFromCache(ctx, reportID).Return(nil, nil)
	m.reports.EXPECT().GetByID(ctx, reportID).Return(nil, nil)

	// Действие
	report, err := service.GetReport(ctx, reportID)

	// Проверки
	require.ErrorIs(t, err, ErrEntityNotFound)
	assert.Nil(t, report)
}

func TestGetReport_RepositoryError(t *testing.T) {
	// Подготовка
	service, m, _ := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	// Ожидания: сбой БД не маскируется под "не найдено"
	m.reports.EXPECT().GetReportFromCache(ctx, reportID).Return(nil, nil)
	m.reports.EXPECT().GetByID(ctx, reportID).Return(nil, assert.AnError)

	// Действие
	report, err := service.GetReport(ctx, reportID)

	// Проверки
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEntityNotFound)
	assert.Nil(t, report)
}

func TestGetReportPhoto_Success(t *testing.T) {
	// Подготовка
	service, m, photoStore := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	report := &models.Report{
		ID:               reportID,
		IncidentPhotoKey: "reports/" + reportID.String() + "/incident.jpg",
	}

	// Ожидания
	m.reports.EXPECT().GetReportFromCache(ctx, reportID).Return(report, nil)
	photoStore.EXPECT().Get(ctx, report.IncidentPhotoKey).Return([]byte("jpeg-bytes"), "image/jpeg", nil)

	// Действие
	data, contentType, err := service.GetReportPhoto(ctx, reportID, PhotoKindIncident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestGetReportPhoto_UnknownKind(t *testing.T) {
	// Подготовка
	service, m, _ := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.reports.EXPECT().GetReportFromCache(ctx, reportID).Return(&models.Report{ID: reportID}, nil)

	// Действие
	_, _, err := service.GetReportPhoto(ctx, reportID, "selfie")

	// Проверки
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestListReports_ClampsPagination(t *testing.T) {
	// Подготовка
	service, m, _ := newTestReportService(t)
	ctx := context.Background()

	// Ожидания: некорректные значения пагинации приводятся к умолчаниям
	m.reports.EXPECT().List(ctx, 1, 20, "Cairo").Return([]*models.Report{}, 0, nil)

	// Действие
	_, _, err := service.ListReports(ctx, 0, 500, "Cairo")

	// Проверки
	require.NoError(t, err)
}
