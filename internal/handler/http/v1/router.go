package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		// Лента инцидентов и команды
		incidents := protected.Group("/incidents")
		{
			incidents.GET("", h.listIncidents)
			incidents.GET("/:id", h.getIncident)
			incidents.POST("/:id/commands", h.sendCommand)
		}

		// Состояние дашборда
		protected.PUT("/filters", h.setFilters)
		protected.PUT("/selection", h.setSelection)
		protected.GET("/analytics", h.getAnalytics)
		protected.GET("/queues", h.getQueues)
		protected.GET("/map", h.getMapPoints)
		protected.GET("/status", h.getStatus)
		protected.GET("/stream", h.streamIncidents)
		protected.POST("/system/reset", h.resetBuffer)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
