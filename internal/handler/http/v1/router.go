package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты чекина
	checkins := api.Group("/checkins")
	{
		checkins.POST("", h.checkIn)
		checkins.GET("/stats", h.getStats)
	}

	// Маршруты занятия: окно чекина, разрешения, напоминания, геозона
	classes := api.Group("/classes")
	{
		classes.GET("/:id/window", h.getCheckInWindow)
		classes.GET("/:id/permission", h.getPermissionAdvice)
		classes.GET("/:id/notifications", h.getNotificationPlan)
		classes.PUT("/:id/geofence", h.provisionGeoFence)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
