package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hobbyclass/geo_checkin_system/internal/config"
	"github.com/hobbyclass/geo_checkin_system/internal/models"
	"github.com/hobbyclass/geo_checkin_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	checkInService service.CheckInService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(checkInService service.CheckInService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		checkInService: checkInService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Attempt a check-in
// @Description Process a check-in attempt for a booking: time window, location quality, fraud and geo-fence checks. A denied check-in is a 200 with allowed=false. Requires API key.
// @Tags CheckIns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param checkin body CheckInRequestDTO true "Check-in attempt"
// @Success 200 {object} CheckInResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} CheckInResponse "Booking already checked in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkins [post]
func (h *Handler) checkIn(c *gin.Context) {
	var input CheckInRequestDTO
	log := h.logger.WithField("method", "checkIn")

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

	result, err := h.checkInService.CheckIn(c.Request.Context(), DTOToCheckInRequest(input))
	if err != nil {
		log.WithError(err).Error("Failed to process check-in in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusOK
	if result.AlreadyCheckedIn {
		status = http.StatusConflict
	}
	c.JSON(status, ResultToCheckInResponse(result))
}

// @Summary Get check-in window status
// @Description Get the current check-in window state for a class. Requires API key.
// @Tags Classes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Class ID"
// @Success 200 {object} models.CheckInWindowStatus
// @Failure 400 {object} map[string]string "Invalid class ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Class not found"
// @Router /classes/{id}/window [get]
func (h *Handler) getCheckInWindow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class ID"})
		return
	}
	log := h.logger.WithField("method", "getCheckInWindow").WithField("id", id)

	window, err := h.checkInService.GetCheckInWindow(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get check-in window from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
		return
	}
	c.JSON(http.StatusOK, window)
}

// @Summary Get location-permission advice
// @Description Advise the client whether to request location permission for a class and how urgently. Requires API key.
// @Tags Classes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Class ID"
// @Success 200 {object} models.PermissionAdvice
// @Failure 400 {object} map[string]string "Invalid class ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Class not found"
// @Router /classes/{id}/permission [get]
func (h *Handler) getPermissionAdvice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class ID"})
		return
	}
	log := h.logger.WithField("method", "getPermissionAdvice").WithField("id", id)

	advice, err := h.checkInService.GetPermissionAdvice(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get permission advice from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
		return
	}
	c.JSON(http.StatusOK, advice)
}

// @Summary Get notification plan
// @Description Get the pre-class notification schedule for a class. Travel time in minutes is optional. Requires API key.
// @Tags Classes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Class ID"
// @Param travel_minutes query int false "Estimated travel time to the venue in minutes"
// @Success 200 {object} models.NotificationPlan
// @Failure 400 {object} map[string]string "Invalid class ID or travel_minutes value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Class not found"
// @Router /classes/{id}/notifications [get]
func (h *Handler) getNotificationPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class ID"})
		return
	}
	log := h.logger.WithField("method", "getNotificationPlan").WithField("id", id)
	travelMinutes, err := strconv.Atoi(c.DefaultQuery("travel_minutes", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid travel_minutes value"})
		return
	}

	plan, err := h.checkInService.GetNotificationPlan(c.Request.Context(), id, travelMinutes)
	if err != nil {
		log.WithError(err).Warn("Failed to get notification plan from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// @Summary Provision geo-fence settings
// @Description Generate and store default geo-fence settings for a class from its venue type. Online venues get the geo-fence removed. Requires API key.
// @Tags Classes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Class ID"
// @Param settings body ProvisionGeoFenceRequest true "Provisioning request"
// @Success 200 {object} models.GeoFenceSettings
// @Success 204 "Geo-fence removed for online venue"
// @Failure 400 {object} map[string]string "Invalid class ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /classes/{id}/geofence [put]
func (h *Handler) provisionGeoFence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class ID"})
		return
	}
	log := h.logger.WithField("method", "provisionGeoFence").WithField("id", id)

	var input ProvisionGeoFenceRequest
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

	fence, err := h.checkInService.ProvisionGeoFence(c.Request.Context(), id, models.VenueType(input.VenueType), input.RadiusOverride)
	if err != nil {
		log.WithError(err).Error("Failed to provision geo-fence in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if fence == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, fence)
}

// @Summary Get check-in statistics
// @Description Get the count of distinct users attempting check-in within the configured time window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkins/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.checkInService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
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
