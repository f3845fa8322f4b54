package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Приём заявок от граждан (публичный маршрут)
	api.POST("/reports", h.submitReport)

	// Просмотр заявок
	reports := api.Group("/reports", auth)
	{
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.GET("/:id/photos/:kind", h.getReportPhoto)
	}

	// Жизненный цикл диспетчеризации (интерфейс водителя)
	dispatches := api.Group("/dispatches", auth)
	{
		dispatches.GET("/:id", h.getDispatch)
		dispatches.POST("/:id/accept", h.transition(service.ActionAccept))
		dispatches.POST("/:id/depart", h.transition(service.ActionDepart))
		dispatches.POST("/:id/arrive", h.transition(service.ActionArrive))
		dispatches.POST("/:id/complete", h.transition(service.ActionComplete))
		dispatches.POST("/:id/cancel", h.cancelDispatch)
	}

	// Маршруты машин скорой помощи
	ambulances := api.Group("/ambulances", auth)
	{
		ambulances.GET("/:id/dispatches", h.listAmbulanceDispatches)
		ambulances.POST("/:id/location", h.updateAmbulanceLocation)
	}

	// Административные маршруты
	admin := api.Group("/admin", auth)
	{
		admin.POST("/stations", h.createStation)
		admin.GET("/stations", h.listStations)
		admin.POST("/ambulances", h.createAmbulance)
		admin.GET("/ambulances", h.listAmbulances)
		admin.GET("/dispatches", h.listDispatches)
		admin.GET("/map", h.getMapData)
		admin.GET("/dashboard", h.getDashboardStats)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
