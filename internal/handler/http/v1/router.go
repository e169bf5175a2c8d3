package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check, доступен без ключа
	api.GET("/system/health", h.healthCheck)

	if len(h.cfg.APIKeys) > 0 {
		api.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	api.Use(ActorMiddleware(h.tokens, h.logger))

	api.POST("/auth/login", h.login)

	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/mine", h.listMyIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id/status", h.updateIncidentStatus)
		incidents.POST("/:id/comments", h.addIncidentComment)
		incidents.PATCH("/:id/assign", h.assignIncident)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("", h.createAlert)
		alerts.PUT("/:id", h.updateAlert)
		alerts.DELETE("/:id", h.deleteAlert)
	}

	guides := api.Group("/guides")
	{
		guides.GET("", h.listGuides)
		guides.GET("/:id", h.getGuide)
		guides.POST("", h.createGuide)
		guides.PUT("/:id", h.updateGuide)
		guides.DELETE("/:id", h.deleteGuide)
	}

	admins := api.Group("/admins")
	{
		admins.GET("", h.listAdmins)
		admins.GET("/active", h.listActiveAdmins)
		admins.POST("", h.createAdmin)
		admins.PUT("/:id", h.updateAdmin)
		admins.DELETE("/:id", h.deleteAdmin)
	}

	api.GET("/stats", h.getStats)
	api.POST("/classify", h.classifyImage)
	api.GET("/regions", h.listRegions)
}
