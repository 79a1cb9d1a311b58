package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Маршруты управления инцидентами
	emergencies := api.Group("/emergencies", auth)
	{
		emergencies.POST("", h.createEmergency)
		emergencies.GET("/active", h.getActiveEmergency)
		emergencies.DELETE("/active", h.clearEmergency)
		emergencies.POST("/active/resources/:id", h.toggleResource)
		emergencies.GET("/stats", h.getStats)
	}

	// Ресурсы и точки эвакуации
	api.GET("/units", auth, h.listUnits)
	api.GET("/evacuation-points", auth, h.listEvacuationPoints)
	api.POST("/evacuation-points", auth, h.proposeEvacuationPoint)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
