package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService   service.ReportService
	dispatchService service.DispatchService
	adminService    service.AdminService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	reportService service.ReportService,
	dispatchService service.DispatchService,
	adminService service.AdminService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		reportService:   reportService,
		dispatchService: dispatchService,
		adminService:    adminService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Submit a new incident report
// @Description Submit a citizen incident report with photos and location. Dispatch assignment is best-effort: the report is accepted even when no ambulance is available.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body SubmitReportRequest true "Report submission request"
// @Success 201 {object} SubmitReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidentPhoto, incidentType, err := decodePhoto(input.IncidentPhoto)
	if err != nil {
		log.WithError(err).Warn("Failed to decode incident photo")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident photo"})
		return
	}
	reporterPhoto, reporterType, err := decodePhoto(input.ReporterPhoto)
	if err != nil {
		log.WithError(err).Warn("Failed to decode reporter photo")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reporter photo"})
		return
	}

	result, err := h.reportService.SubmitReport(c.Request.Context(), service.SubmitReportInput{
		IncidentPhoto:     incidentPhoto,
		IncidentPhotoType: incidentType,
		ReporterPhoto:     reporterPhoto,
		ReporterPhotoType: reporterType,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		Governorate:       input.Governorate,
		District:          input.District,
		FullAddress:       input.FullAddress,
		Notes:             input.Notes,
		IPAddress:         c.ClientIP(),
		UserAgent:         c.Request.UserAgent(),
	})
	if err != nil {
		log.WithError(err).Error("Failed to submit report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := SubmitReportResponse{
		ReportID:          result.Report.ID,
		AmbulanceNotified: result.Assignment != nil,
	}
	if result.Assignment != nil {
		resp.Dispatch = AssignmentToResponse(result.Assignment)
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get report by ID
// @Description Get a single incident report by its ID. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get a report photo
// @Description Get the raw photo bytes of a report by kind (incident or reporter). Requires API key.
// @Tags Reports
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param kind path string true "Photo kind" Enums(incident, reporter)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /reports/{id}/photos/{kind} [get]
func (h *Handler) getReportPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	kind := c.Param("kind")
	log := h.logger.WithField("method", "getReportPhoto").
		WithField("id", id).
		WithField("kind", kind)

	data, contentType, err := h.reportService.GetReportPhoto(c.Request.Context(), id, kind)
	if err != nil {
		if errors.Is(err, service.ErrEntityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
			return
		}
		log.WithError(err).Error("Failed to load report photo from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

// @Summary Get a list of reports
// @Description Get a paginated list of incident reports. Photo keys are omitted. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param governorate query string false "Filter by governorate"
// @Success 200 {object} ReportListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	governorate := c.Query("governorate")

	// Нормализуем пагинацию до вызова сервиса, чтобы ответ отражал
	// фактически использованные значения
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	reports, total, err := h.reportService.ListReports(c.Request.Context(), page, pageSize, governorate)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	c.JSON(http.StatusOK, ReportListResponse{
		Reports: ModelsToReportResponses(reports),
		Pagination: Pagination{
			Page:  page,
			Limit: pageSize,
			Total: total,
			Pages: pages,
		},
	})
}

// @Summary Get dispatch details
// @Description Get a dispatch with its report, station and ambulance for the driver interface. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Dispatch ID"
// @Success 200 {object} DispatchDetailResponse
// @Failure 400 {object} map[string]string "Invalid dispatch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dispatch not found"
// @Router /dispatches/{id} [get]
func (h *Handler) getDispatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "getDispatch").WithField("id", id)

	detail, err := h.dispatchService.GetDispatchDetail(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get dispatch from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "dispatch not found"})
		return
	}
	c.JSON(http.StatusOK, DetailToResponse(detail))
}

// transition обрабатывает действие полевого персонала над диспетчеризацией
func (h *Handler) transition(action service.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
			return
		}
		log := h.logger.WithField("method", "transition").
			WithField("id", id).
			WithField("action", action)

		var input TransitionRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				log.WithError(err).Warn("Failed to bind JSON")
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
			if err := h.validate.Struct(input); err != nil {
				log.WithError(err).Warn("Validation failed")
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		dispatch, err := h.dispatchService.Transition(c.Request.Context(), id, action, input.Notes)
		if err != nil {
			h.respondDispatchError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelToDispatchResponse(dispatch))
	}
}

// @Summary Cancel a dispatch
// @Description Cancel a non-terminal dispatch (admin override). Releases the reserved ambulance and station capacity. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Dispatch ID"
// @Param body body TransitionRequest false "Cancellation notes"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid dispatch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dispatch not found"
// @Failure 409 {object} map[string]string "Dispatch already terminal"
// @Router /dispatches/{id}/cancel [post]
func (h *Handler) cancelDispatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "cancelDispatch").WithField("id", id)

	var input TransitionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	dispatch, err := h.dispatchService.Cancel(c.Request.Context(), id, input.Notes)
	if err != nil {
		h.respondDispatchError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDispatchResponse(dispatch))
}

// respondDispatchError переводит доменные ошибки в HTTP-статусы
func (h *Handler) respondDispatchError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrEntityNotFound):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "dispatch not found"})
	case errors.Is(err, service.ErrInvalidTransition):
		log.WithError(err).Warn("Invalid transition rejected")
		c.JSON(http.StatusConflict, gin.H{"error": "invalid transition for current dispatch state"})
	default:
		log.WithError(err).Error("Dispatch operation failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary List active dispatches for an ambulance
// @Description Get all non-terminal dispatches assigned to an ambulance. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Ambulance ID"
// @Success 200 {array} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid ambulance ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulances/{id}/dispatches [get]
func (h *Handler) listAmbulanceDispatches(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ambulance ID"})
		return
	}
	log := h.logger.WithField("method", "listAmbulanceDispatches").WithField("id", id)

	dispatches, err := h.dispatchService.ListActiveByAmbulance(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list ambulance dispatches from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToDispatchResponses(dispatches))
}

// @Summary Update ambulance location
// @Description Update the current coordinates of an ambulance for tracking. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Ambulance ID"
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id}/location [post]
func (h *Handler) updateAmbulanceLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ambulance ID"})
		return
	}
	log := h.logger.WithField("method", "updateAmbulanceLocation").WithField("id", id)

	var input UpdateLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.dispatchService.UpdateAmbulanceLocation(c.Request.Context(), id, input.Latitude, input.Longitude); err != nil {
		if errors.Is(err, service.ErrEntityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ambulance not found"})
			return
		}
		log.WithError(err).Error("Failed to update ambulance location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Create a new station
// @Description Create a new ambulance station. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param station body CreateStationRequest true "Station creation request"
// @Success 201 {object} StationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stations [post]
func (h *Handler) createStation(c *gin.Context) {
	var input CreateStationRequest
	log := h.logger.WithField("method", "createStation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToStationModel(input)
	if err := h.adminService.CreateStation(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create station in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToStationResponse(model))
}

// @Summary Get all stations
// @Description Get all stations with their current availability. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} StationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stations [get]
func (h *Handler) listStations(c *gin.Context) {
	log := h.logger.WithField("method", "listStations")

	stations, err := h.adminService.ListStations(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list stations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToStationResponses(stations))
}

// @Summary Create a new ambulance
// @Description Register a new ambulance at a station. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param ambulance body CreateAmbulanceRequest true "Ambulance creation request"
// @Success 201 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Station not found"
// @Router /admin/ambulances [post]
func (h *Handler) createAmbulance(c *gin.Context) {
	var input CreateAmbulanceRequest
	log := h.logger.WithField("method", "createAmbulance")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAmbulanceModel(input)
	if err := h.adminService.CreateAmbulance(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrEntityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "station not found"})
			return
		}
		log.WithError(err).Error("Failed to create ambulance in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToAmbulanceResponse(model))
}

// @Summary Get all ambulances
// @Description Get all ambulances with their statuses. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AmbulanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/ambulances [get]
func (h *Handler) listAmbulances(c *gin.Context) {
	log := h.logger.WithField("method", "listAmbulances")

	ambulances, err := h.adminService.ListAmbulances(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list ambulances from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAmbulanceResponses(ambulances))
}

// @Summary List dispatches
// @Description Get the latest dispatches with their report, station and ambulance, optionally filtered by status. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by dispatch status"
// @Success 200 {object} AdminDispatchListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/dispatches [get]
func (h *Handler) listDispatches(c *gin.Context) {
	log := h.logger.WithField("method", "listDispatches")
	status := models.DispatchStatus(c.Query("status"))

	details, err := h.adminService.ListDispatches(c.Request.Context(), status)
	if err != nil {
		log.WithError(err).Error("Failed to list dispatches from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DetailsToListResponse(details))
}

// @Summary Get real-time map data
// @Description Get all active dispatches with incident, station and ambulance locations for the live map. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MapResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/map [get]
func (h *Handler) getMapData(c *gin.Context) {
	log := h.logger.WithField("method", "getMapData")

	details, err := h.adminService.ListActiveDispatches(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get map data from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DetailsToMapResponse(details))
}

// @Summary Get dashboard statistics
// @Description Get aggregate statistics for the admin dashboard. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DashboardStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/dashboard [get]
func (h *Handler) getDashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboardStats")

	stats, err := h.adminService.GetDashboardStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get dashboard stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DashboardStatsResponse{
		ReportsByStatus:        stats.ReportsByStatus,
		ActiveDispatches:       stats.ActiveDispatches,
		AvailableAmbulances:    stats.AvailableAmbulances,
		TotalAmbulances:        stats.TotalAmbulances,
		AverageResponseMinutes: stats.AverageResponseMinutes,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
