package v1

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/handler/http/v1/mocks"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	reports    *mocks.MockReportService
	dispatches *mocks.MockDispatchService
	admin      *mocks.MockAdminService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		reports:    mocks.NewMockReportService(ctrl),
		dispatches: mocks.NewMockDispatchService(ctrl),
		admin:      mocks.NewMockAdminService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.reports, m.dispatches, m.admin, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func photoDataURL(contentType, payload string) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString([]byte(payload)))
}

func TestSubmitReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reportID := uuid.New()
	dispatchID := uuid.New()
	stationID := uuid.New()

	reqBody := SubmitReportRequest{
		IncidentPhoto: photoDataURL("image/jpeg", "incident"),
		ReporterPhoto: photoDataURL("image/jpeg", "reporter"),
		Latitude:      30.0444,
		Longitude:     31.2357,
		Governorate:   "Cairo",
		District:      "Downtown",
	}

	m.reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.SubmitReportInput) (*service.SubmitResult, error) {
			assert.Equal(t, []byte("incident"), input.IncidentPhoto)
			assert.Equal(t, "image/jpeg", input.IncidentPhotoType)
			assert.Equal(t, "Cairo", input.Governorate)
			return &service.SubmitResult{
				Report: &models.Report{ID: reportID, Status: models.ReportDispatched},
				Assignment: &service.Assignment{
					Dispatch:   &models.Dispatch{ID: dispatchID, StationID: stationID},
					Station:    &models.Station{ID: stationID, Name: "Downtown Station"},
					Ambulance:  &models.Ambulance{ID: uuid.New(), VehicleNumber: "CAI-001"},
					DistanceKm: 1.78,
					EtaMinutes: 2,
				},
			}, nil
		})

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/reports", bytes.NewReader(body))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reportID, resp.ReportID)
	assert.True(t, resp.AmbulanceNotified)
	require.NotNil(t, resp.Dispatch)
	assert.Equal(t, dispatchID, resp.Dispatch.DispatchID)
	assert.Equal(t, 2, resp.Dispatch.EtaMinutes)
}

func TestSubmitReport_NoAssignment(t *testing.T) {
	_, m, router := newTestHandler(t)
	reportID := uuid.New()

	reqBody := SubmitReportRequest{
		IncidentPhoto: photoDataURL("image/jpeg", "incident"),
		ReporterPhoto: photoDataURL("image/jpeg", "reporter"),
		Latitude:      30.0444,
		Longitude:     31.2357,
	}

	m.reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(&service.SubmitResult{
			Report: &models.Report{ID: reportID, Status: models.ReportPending},
		}, nil)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/reports", bytes.NewReader(body))

	// Отчет принят даже без назначенной машины
	require.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.AmbulanceNotified)
	assert.Nil(t, resp.Dispatch)
}

func TestSubmitReport_MissingPhoto(t *testing.T) {
	_, _, router := newTestHandler(t)

	reqBody := SubmitReportRequest{
		ReporterPhoto: photoDataURL("image/jpeg", "reporter"),
		Latitude:      30.0444,
		Longitude:     31.2357,
	}

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/reports", bytes.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReport_InvalidBase64(t *testing.T) {
	_, _, router := newTestHandler(t)

	reqBody := SubmitReportRequest{
		IncidentPhoto: "data:image/jpeg;base64,%%%not-base64%%%",
		ReporterPhoto: photoDataURL("image/jpeg", "reporter"),
		Latitude:      30.0444,
		Longitude:     31.2357,
	}

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/reports", bytes.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReport_Unauthorized(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reportID := uuid.New()
	report := &models.Report{
		ID:          reportID,
		Governorate: "Cairo",
		Status:      models.ReportDispatched,
		CreatedAt:   time.Now(),
	}

	m.reports.EXPECT().GetReport(gomock.Any(), reportID).Return(report, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/"+reportID.String(), nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reportID, resp.ID)
	assert.Equal(t, models.ReportDispatched, resp.Status)
}

func TestGetReport_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	reportID := uuid.New()

	m.reports.EXPECT().GetReport(gomock.Any(), reportID).Return(nil, service.ErrEntityNotFound)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/"+reportID.String(), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReportPhoto_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reportID := uuid.New()

	m.reports.EXPECT().
		GetReportPhoto(gomock.Any(), reportID, "incident").
		Return([]byte("jpeg-bytes"), "image/jpeg", nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/"+reportID.String()+"/photos/incident", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg-bytes", w.Body.String())
}

func TestListReports_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reports := []*models.Report{
		{ID: uuid.New(), Governorate: "Cairo"},
		{ID: uuid.New(), Governorate: "Cairo"},
	}

	m.reports.EXPECT().ListReports(gomock.Any(), 2, 10, "Cairo").Return(reports, 12, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports?page=2&pageSize=10&governorate=Cairo", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp ReportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Reports, 2)
	assert.Equal(t, 12, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Pages)
}

func TestListReports_ZeroPageSizeNormalized(t *testing.T) {
	_, m, router := newTestHandler(t)

	// До сервиса должны дойти уже нормализованные значения
	m.reports.EXPECT().ListReports(gomock.Any(), 1, 20, "").Return([]*models.Report{}, 0, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports?page=0&pageSize=0", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp ReportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 20, resp.Pagination.Limit)
	assert.Equal(t, 0, resp.Pagination.Pages)
}

func TestListReports_OversizedPageSizeNormalized(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), 1, 20, "").Return([]*models.Report{}, 45, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports?pageSize=500", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp ReportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 20, resp.Pagination.Limit)
	assert.Equal(t, 3, resp.Pagination.Pages)
}

func TestTransitionDispatch_Accept(t *testing.T) {
	_, m, router := newTestHandler(t)
	dispatchID := uuid.New()
	now := time.Now()

	m.dispatches.EXPECT().
		Transition(gomock.Any(), dispatchID, service.ActionAccept, "").
		Return(&models.Dispatch{
			ID:       dispatchID,
			ReportID: uuid.New(),
			Status:   models.DispatchAccepted,
			Timeline: models.Timeline{Accepted: &now},
		}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/dispatches/"+dispatchID.String()+"/accept", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.DispatchAccepted, resp.Status)
	assert.NotNil(t, resp.Timeline.Accepted)
}

func TestTransitionDispatch_WithNotes(t *testing.T) {
	_, m, router := newTestHandler(t)
	dispatchID := uuid.New()

	m.dispatches.EXPECT().
		Transition(gomock.Any(), dispatchID, service.ActionComplete, "patient stable").
		Return(&models.Dispatch{ID: dispatchID, Status: models.DispatchCompleted, DriverNotes: "patient stable"}, nil)

	body, _ := json.Marshal(TransitionRequest{Notes: "patient stable"})
	w := makeRequest(router, http.MethodPost, "/api/v1/dispatches/"+dispatchID.String()+"/complete", bytes.NewReader(body), authHeader())

	require.Equal(t, http.StatusOK, w.Code)
}

func TestTransitionDispatch_InvalidTransition(t *testing.T) {
	_, m, router := newTestHandler(t)
	dispatchID := uuid.New()

	m.dispatches.EXPECT().
		Transition(gomock.Any(), dispatchID, service.ActionArrive, "").
		Return(nil, fmt.Errorf("service: action arrive from status accepted: %w", service.ErrInvalidTransition))

	w := makeRequest(router, http.MethodPost, "/api/v1/dispatches/"+dispatchID.String()+"/arrive", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTransitionDispatch_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	dispatchID := uuid.New()

	m.dispatches.EXPECT().
		Transition(gomock.Any(), dispatchID, service.ActionDepart, "").
		Return(nil, fmt.Errorf("service: dispatch %s: %w", dispatchID, service.ErrEntityNotFound))

	w := makeRequest(router, http.MethodPost, "/api/v1/dispatches/"+dispatchID.String()+"/depart", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelDispatch_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	dispatchID := uuid.New()

	m.dispatches.EXPECT().
		Cancel(gomock.Any(), dispatchID, "false alarm").
		Return(&models.Dispatch{ID: dispatchID, Status: models.DispatchCancelled}, nil)

	body, _ := json.Marshal(TransitionRequest{Notes: "false alarm"})
	w := makeRequest(router, http.MethodPost, "/api/v1/dispatches/"+dispatchID.String()+"/cancel", bytes.NewReader(body), authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.DispatchCancelled, resp.Status)
}

func TestCancelDispatch_AlreadyTerminal(t *testing.T) {
	_, m, router := newTestHandler(t)
	dispatchID := uuid.New()

	m.dispatches.EXPECT().
		Cancel(gomock.Any(), dispatchID, "").
		Return(nil, fmt.Errorf("service: cancel from status completed: %w", service.ErrInvalidTransition))

	w := makeRequest(router, http.MethodPost, "/api/v1/dispatches/"+dispatchID.String()+"/cancel", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetDispatch_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	dispatchID := uuid.New()
	ambulanceID := uuid.New()
	detail := &service.DispatchDetail{
		Dispatch: &models.Dispatch{
			ID:          dispatchID,
			ReportID:    uuid.New(),
			StationID:   uuid.New(),
			AmbulanceID: &ambulanceID,
			Status:      models.DispatchEnRoute,
		},
		Report:    &models.Report{ID: uuid.New(), Governorate: "Cairo", FullAddress: "26 Tahrir Square"},
		Station:   &models.Station{ID: uuid.New(), Name: "Downtown Station"},
		Ambulance: &models.Ambulance{ID: ambulanceID, VehicleNumber: "CAI-001"},
	}

	m.dispatches.EXPECT().GetDispatchDetail(gomock.Any(), dispatchID).Return(detail, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/dispatches/"+dispatchID.String(), nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp DispatchDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dispatchID, resp.Dispatch.ID)
	assert.Equal(t, "Downtown Station", resp.Station.Name)
	assert.Equal(t, "26 Tahrir Square", resp.Incident.FullAddress)
	require.NotNil(t, resp.Ambulance)
	assert.Equal(t, "CAI-001", resp.Ambulance.VehicleNumber)
}

func TestListAmbulanceDispatches_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	ambulanceID := uuid.New()
	dispatches := []*models.Dispatch{
		{ID: uuid.New(), Status: models.DispatchEnRoute},
	}

	m.dispatches.EXPECT().ListActiveByAmbulance(gomock.Any(), ambulanceID).Return(dispatches, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/ambulances/"+ambulanceID.String()+"/dispatches", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp []DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestUpdateAmbulanceLocation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	ambulanceID := uuid.New()

	m.dispatches.EXPECT().
		UpdateAmbulanceLocation(gomock.Any(), ambulanceID, 30.05, 31.23).
		Return(nil)

	body, _ := json.Marshal(UpdateLocationRequest{Latitude: 30.05, Longitude: 31.23})
	w := makeRequest(router, http.MethodPost, "/api/v1/ambulances/"+ambulanceID.String()+"/location", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAmbulanceLocation_InvalidLatitude(t *testing.T) {
	_, _, router := newTestHandler(t)
	ambulanceID := uuid.New()

	body, _ := json.Marshal(UpdateLocationRequest{Latitude: 123.0, Longitude: 31.23})
	w := makeRequest(router, http.MethodPost, "/api/v1/ambulances/"+ambulanceID.String()+"/location", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateStation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateStationRequest{
		Name:            "Nasr City Station",
		Governorate:     "Cairo",
		District:        "Nasr City",
		Latitude:        30.0626,
		Longitude:       31.3219,
		Address:         "12 Abbas El Akkad St",
		ContactPhone:    "+20212345678",
		TotalAmbulances: 4,
	}

	m.admin.EXPECT().
		CreateStation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st *models.Station) error {
			assert.Equal(t, reqBody.Name, st.Name)
			assert.Equal(t, reqBody.TotalAmbulances, st.TotalAmbulances)
			st.ID = uuid.New()
			st.IsActive = true
			st.AvailableAmbulances = st.TotalAmbulances
			return nil
		})

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/admin/stations", bytes.NewReader(body), authHeader())

	require.Equal(t, http.StatusCreated, w.Code)
	var resp StationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.AvailableAmbulances)
	assert.True(t, resp.IsActive)
}

func TestCreateStation_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)
	reqBody := CreateStationRequest{Name: "X"}

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/admin/stations", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAmbulance_StationNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateAmbulanceRequest{
		VehicleNumber: "CAI-042",
		StationID:     uuid.New(),
	}

	m.admin.EXPECT().
		CreateAmbulance(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: station %s: %w", reqBody.StationID, service.ErrEntityNotFound))

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/admin/ambulances", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDispatchesAdmin_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	detail := &service.DispatchDetail{
		Dispatch: &models.Dispatch{
			ID:        uuid.New(),
			ReportID:  uuid.New(),
			StationID: uuid.New(),
			Status:    models.DispatchEnRoute,
		},
		Report:  &models.Report{ID: uuid.New(), Governorate: "Cairo"},
		Station: &models.Station{ID: uuid.New(), Name: "Downtown Station"},
	}

	m.admin.EXPECT().
		ListDispatches(gomock.Any(), models.DispatchEnRoute).
		Return([]*service.DispatchDetail{detail}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/dispatches?status=en_route", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp AdminDispatchListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Dispatches, 1)
	assert.Equal(t, models.DispatchEnRoute, resp.Dispatches[0].Dispatch.Status)
	assert.Equal(t, "Downtown Station", resp.Dispatches[0].Station.Name)
	assert.Nil(t, resp.Dispatches[0].Ambulance)
}

func TestGetMapData_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	ambulanceID := uuid.New()
	lat, lon := 30.05, 31.24
	detail := &service.DispatchDetail{
		Dispatch: &models.Dispatch{
			ID:               uuid.New(),
			ReportID:         uuid.New(),
			StationID:        uuid.New(),
			AmbulanceID:      &ambulanceID,
			Status:           models.DispatchEnRoute,
			DistanceKm:       3.4,
			EstimatedArrival: 4,
		},
		Report:  &models.Report{ID: uuid.New(), Latitude: 30.0444, Longitude: 31.2357, Governorate: "Cairo"},
		Station: &models.Station{ID: uuid.New(), Name: "Downtown Station", Latitude: 30.06, Longitude: 31.24},
		Ambulance: &models.Ambulance{
			ID:               ambulanceID,
			VehicleNumber:    "CAI-001",
			CurrentLatitude:  &lat,
			CurrentLongitude: &lon,
		},
	}

	m.admin.EXPECT().
		ListActiveDispatches(gomock.Any()).
		Return([]*service.DispatchDetail{detail}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/map", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp MapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.ActiveDispatches, 1)
	entry := resp.ActiveDispatches[0]
	assert.Equal(t, models.DispatchEnRoute, entry.Status)
	assert.InDelta(t, 30.0444, entry.Incident.Latitude, 1e-9)
	assert.Equal(t, "Downtown Station", entry.Station.Name)
	require.NotNil(t, entry.Ambulance)
	assert.Equal(t, "CAI-001", entry.Ambulance.VehicleNumber)
	require.NotNil(t, entry.Ambulance.CurrentLatitude)
	assert.InDelta(t, 30.05, *entry.Ambulance.CurrentLatitude, 1e-9)
	assert.InDelta(t, 3.4, entry.DistanceKm, 1e-9)
	assert.Equal(t, 4, entry.EstimatedArrival)
}

func TestGetDashboardStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.admin.EXPECT().
		GetDashboardStats(gomock.Any()).
		Return(&service.DashboardStats{
			ReportsByStatus:        map[models.ReportStatus]int{models.ReportPending: 3},
			ActiveDispatches:       2,
			AvailableAmbulances:    7,
			TotalAmbulances:        12,
			AverageResponseMinutes: 8.5,
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/dashboard", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp DashboardStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ActiveDispatches)
	assert.Equal(t, 3, resp.ReportsByStatus[models.ReportPending])
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
