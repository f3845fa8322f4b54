package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAdminService(t *testing.T) (*adminService, *dispatchMocks) {
	ctrl := gomock.NewController(t)
	m := &dispatchMocks{
		stations:   mocks.NewMockStationRepository(ctrl),
		ambulances: mocks.NewMockAmbulanceRepository(ctrl),
		reports:    mocks.NewMockReportRepository(ctrl),
		dispatches: mocks.NewMockDispatchRepository(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAdminService(m.stations, m.ambulances, m.reports, m.dispatches, logger)
	return service.(*adminService), m
}

func TestCreateStation_InitializesAvailability(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	station := &models.Station{
		Name:            "Nasr City Station",
		Governorate:     "Cairo",
		TotalAmbulances: 4,
	}

	// Ожидания
	m.stations.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, st *models.Station) error {
			st.ID = uuid.New()
			return nil
		})

	// Действие
	err := service.CreateStation(ctx, station)

	// Проверки: новая станция активна и со всеми машинами в наличии
	require.NoError(t, err)
	assert.True(t, station.IsActive)
	assert.Equal(t, 4, station.AvailableAmbulances)
}

func TestCreateAmbulance_UnknownStation(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	ambulance := &models.Ambulance{
		VehicleNumber: "CAI-042",
		StationID:     uuid.New(),
	}

	// Ожидания
	m.stations.EXPECT().GetByID(ctx, ambulance.StationID).Return(nil, nil)

	// Действие
	err := service.CreateAmbulance(ctx, ambulance)

	// Проверки
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestCreateAmbulance_StationLookupError(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	ambulance := &models.Ambulance{
		VehicleNumber: "CAI-042",
		StationID:     uuid.New(),
	}

	// Ожидания: сбой БД не должен маскироваться под "не найдено"
	m.stations.EXPECT().GetByID(ctx, ambulance.StationID).Return(nil, assert.AnError)

	// Действие
	err := service.CreateAmbulance(ctx, ambulance)

	// Проверки
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEntityNotFound)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCreateAmbulance_StartsAvailable(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	station := testStation("Cairo", 30.06, 31.24)
	ambulance := &models.Ambulance{
		VehicleNumber: "CAI-042",
		StationID:     station.ID,
		Status:        models.AmbulanceOutOfService, // игнорируется при создании
	}

	// Ожидания
	m.stations.EXPECT().GetByID(ctx, station.ID).Return(station, nil)
	m.ambulances.EXPECT().Create(ctx, ambulance).Return(nil)

	// Действие
	err := service.CreateAmbulance(ctx, ambulance)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AmbulanceAvailable, ambulance.Status)
}

func TestListDispatches_WithStatusFilter(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	ambulanceID := uuid.New()
	dispatch := &models.Dispatch{
		ID:          uuid.New(),
		ReportID:    uuid.New(),
		StationID:   uuid.New(),
		AmbulanceID: &ambulanceID,
		Status:      models.DispatchEnRoute,
	}
	report := &models.Report{ID: dispatch.ReportID, Governorate: "Cairo"}
	station := &models.Station{ID: dispatch.StationID, Name: "Nasr City Station"}
	ambulance := &models.Ambulance{ID: ambulanceID, VehicleNumber: "CAI-007"}

	// Ожидания: фильтр статуса и лимит доходят до репозитория
	m.dispatches.EXPECT().List(ctx, models.DispatchEnRoute, 100).Return([]*models.Dispatch{dispatch}, nil)
	m.reports.EXPECT().GetByID(ctx, dispatch.ReportID).Return(report, nil)
	m.stations.EXPECT().GetByID(ctx, dispatch.StationID).Return(station, nil)
	m.ambulances.EXPECT().GetByID(ctx, ambulanceID).Return(ambulance, nil)

	// Действие
	details, err := service.ListDispatches(ctx, models.DispatchEnRoute)

	// Проверки
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, dispatch, details[0].Dispatch)
	assert.Equal(t, report, details[0].Report)
	assert.Equal(t, station, details[0].Station)
	assert.Equal(t, ambulance, details[0].Ambulance)
}

func TestListDispatches_SkipsOrphanedDispatch(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	orphan := &models.Dispatch{
		ID:        uuid.New(),
		ReportID:  uuid.New(),
		StationID: uuid.New(),
		Status:    models.DispatchPending,
	}
	healthy := &models.Dispatch{
		ID:        uuid.New(),
		ReportID:  uuid.New(),
		StationID: uuid.New(),
		Status:    models.DispatchPending,
	}
	report := &models.Report{ID: healthy.ReportID}
	station := &models.Station{ID: healthy.StationID}

	// Ожидания: первый выезд ссылается на исчезнувший отчет
	m.dispatches.EXPECT().List(ctx, models.DispatchStatus(""), 100).Return([]*models.Dispatch{orphan, healthy}, nil)
	m.reports.EXPECT().GetByID(ctx, orphan.ReportID).Return(nil, nil)
	m.stations.EXPECT().GetByID(ctx, orphan.StationID).Return(nil, nil)
	m.reports.EXPECT().GetByID(ctx, healthy.ReportID).Return(report, nil)
	m.stations.EXPECT().GetByID(ctx, healthy.StationID).Return(station, nil)

	// Действие
	details, err := service.ListDispatches(ctx, "")

	// Проверки: запись без отчета пропущена, остальные возвращены
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, healthy, details[0].Dispatch)
}

func TestListActiveDispatches_WithoutAmbulance(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	dispatch := &models.Dispatch{
		ID:        uuid.New(),
		ReportID:  uuid.New(),
		StationID: uuid.New(),
		Status:    models.DispatchPending,
	}
	report := &models.Report{ID: dispatch.ReportID}
	station := &models.Station{ID: dispatch.StationID}

	// Ожидания
	m.dispatches.EXPECT().ListActive(ctx).Return([]*models.Dispatch{dispatch}, nil)
	m.reports.EXPECT().GetByID(ctx, dispatch.ReportID).Return(report, nil)
	m.stations.EXPECT().GetByID(ctx, dispatch.StationID).Return(station, nil)

	// Действие
	details, err := service.ListActiveDispatches(ctx)

	// Проверки: выезд без машины попадает на карту без маркера машины
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Nil(t, details[0].Ambulance)
}

func TestGetDashboardStats_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	byStatus := map[models.ReportStatus]int{
		models.ReportPending:    3,
		models.ReportDispatched: 2,
		models.ReportCompleted:  10,
	}

	// Ожидания
	m.reports.EXPECT().CountByStatus(ctx).Return(byStatus, nil)
	m.dispatches.EXPECT().CountActive(ctx).Return(2, nil)
	m.stations.EXPECT().AvailabilityTotals(ctx).Return(7, 12, nil)
	m.dispatches.EXPECT().AverageResponseMinutes(ctx).Return(8.5, nil)

	// Действие
	stats, err := service.GetDashboardStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, byStatus, stats.ReportsByStatus)
	assert.Equal(t, 2, stats.ActiveDispatches)
	assert.Equal(t, 7, stats.AvailableAmbulances)
	assert.Equal(t, 12, stats.TotalAmbulances)
	assert.InDelta(t, 8.5, stats.AverageResponseMinutes, 0.001)
}
