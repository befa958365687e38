package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hobbyclass/geo_checkin_system/internal/config"
	"github.com/hobbyclass/geo_checkin_system/internal/geofence"
	"github.com/hobbyclass/geo_checkin_system/internal/models"
	"github.com/hobbyclass/geo_checkin_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Сколько последних показаний геолокации поднимается для антифрода
const historyLimit = 50

// CheckInRepository определяет контракт для работы с хранилищем занятий,
// истории геолокации и попыток чекина
type CheckInRepository interface {
	GetClassByID(ctx context.Context, id uuid.UUID) (*models.Class, error)
	UpdateClassGeoFence(ctx context.Context, id uuid.UUID, fence *models.GeoFenceSettings) error
	ListLocationHistory(ctx context.Context, userID string, bookingID uuid.UUID, limit int) ([]models.LocationSample, error)
	SaveLocationSample(ctx context.Context, userID string, bookingID uuid.UUID, sample models.LocationSample) error
	SaveCheckInAttempt(ctx context.Context, attempt *models.CheckInAttempt) (bool, error)
	GetCheckInStats(ctx context.Context, minutes int) (int, error)
	GetClassFromCache(ctx context.Context, id uuid.UUID) (*models.Class, error)
	SetClassCache(ctx context.Context, class *models.Class) error
	InvalidateClassCache(ctx context.Context, id uuid.UUID) error
}

// CheckInService определяет контракт бизнес-логики чекина на занятия
type CheckInService interface {
	CheckIn(ctx context.Context, req *CheckInRequest) (*CheckInResult, error)
	ProvisionGeoFence(ctx context.Context, classID uuid.UUID, venueType models.VenueType, radiusOverride int) (*models.GeoFenceSettings, error)
	GetCheckInWindow(ctx context.Context, classID uuid.UUID) (*models.CheckInWindowStatus, error)
	GetPermissionAdvice(ctx context.Context, classID uuid.UUID) (*models.PermissionAdvice, error)
	GetNotificationPlan(ctx context.Context, classID uuid.UUID, travelTimeMinutes int) (*models.NotificationPlan, error)
	GetStats(ctx context.Context) (int, error)
}

// CheckInRequest - входные данные одной попытки чекина
type CheckInRequest struct {
	BookingID          uuid.UUID
	UserID             string
	ClassID            uuid.UUID
	Method             models.CheckInMethod
	Location           *models.LocationSample
	Device             models.DeviceInfo
	InstructorApproved bool
	EmergencyReason    string
}

// CheckInResult - решение по попытке чекина с диагностикой для клиента
type CheckInResult struct {
	Allowed            bool
	AlreadyCheckedIn   bool
	FailureReason      string
	Window             models.CheckInWindowStatus
	Quality            *models.LocationQualityReport
	Fraud              *models.FraudAssessment
	Validation         *models.GeoFenceValidationResult
	AlternativeMethods []string
}

type checkInService struct {
	repo      CheckInRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
}

func NewCheckInService(repo CheckInRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher) CheckInService {
	return &checkInService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// CheckIn обрабатывает попытку чекина: временное окно, качество геоданных,
// антифрод и геозона, затем фиксация попытки и публикация события.
// Отказ по любой из проверок - это не ошибка, а результат с причиной.
func (s *checkInService) CheckIn(ctx context.Context, req *CheckInRequest) (*CheckInResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "checkin",
		"method":     "CheckIn",
		"booking_id": req.BookingID,
		"user_id":    req.UserID,
	})
	log.Info("Processing check-in attempt")

	class, err := s.getClass(ctx, req.ClassID)
	if err != nil {
		log.WithError(err).Warn("Failed to load class for check-in")
		return nil, fmt.Errorf("service: could not load class: %w", err)
	}

	now := time.Now().UTC()
	method := req.Method
	if method == "" {
		method = models.MethodGeoFence
	}

	fence := class.GeoFence
	var fenceWindow *models.CheckInWindow
	if fence != nil {
		fenceWindow = fence.CheckInWindow
	}
	window := geofence.ComputeCheckInWindow(class.Schedule(), class.DurationMinutes, fenceWindow, now)

	attempt := &models.CheckInAttempt{
		ID:          uuid.New(),
		BookingID:   req.BookingID,
		UserID:      req.UserID,
		ClassID:     class.ID,
		AttemptedAt: now,
		Method:      method,
	}
	result := &CheckInResult{
		Window:             window,
		AlternativeMethods: alternativeMethods(fence),
	}

	// Экстренный чекин обходит и геозону, и временное окно,
	// но только если геозона занятия это явно разрешает
	if method == models.MethodEmergency {
		if fence == nil || fence.FallbackOptions == nil || !fence.FallbackOptions.EmergencyBypass {
			result.FailureReason = "Emergency check-in not allowed for this class"
		} else {
			result.Allowed = true
			result.FailureReason = fmt.Sprintf("Emergency bypass: %s", req.EmergencyReason)
			log.WithField("emergency_reason", req.EmergencyReason).Warn("Emergency check-in bypass used")
		}
		return s.finalize(ctx, log, req, attempt, result)
	}

	// Временное окно обязательно для остальных способов чекина
	if !window.IsCurrentlyOpen {
		if window.MinutesUntilOpens > 0 {
			result.FailureReason = fmt.Sprintf("Check-in opens in %d minute(s)", window.MinutesUntilOpens)
		} else {
			result.FailureReason = "Check-in window has closed"
		}
		return s.finalize(ctx, log, req, attempt, result)
	}

	switch method {
	case models.MethodGeoFence:
		if err := s.validateGeoFenceMethod(ctx, req, class, now, attempt, result); err != nil {
			return nil, err
		}
	case models.MethodManualOverride:
		if fence == nil || fence.FallbackOptions == nil || !fence.FallbackOptions.AllowManualOverride {
			result.FailureReason = "Manual override not allowed for this class"
		} else {
			result.Allowed = true
		}
	case models.MethodInstructorConfirmation:
		if !req.InstructorApproved {
			result.FailureReason = "Instructor approval required for manual check-in"
		} else {
			result.Allowed = true
		}
	default:
		result.FailureReason = fmt.Sprintf("Invalid check-in method: %s", method)
	}

	return s.finalize(ctx, log, req, attempt, result)
}

// validateGeoFenceMethod прогоняет геолокационную попытку через все проверки
// ядра в фиксированном порядке: качество, антифрод, геозона
func (s *checkInService) validateGeoFenceMethod(ctx context.Context, req *CheckInRequest, class *models.Class, now time.Time, attempt *models.CheckInAttempt, result *CheckInResult) error {
	if req.Location == nil {
		result.FailureReason = "Location data required for geo-fence check-in"
		return nil
	}

	fence := class.GeoFence
	if fence == nil || !fence.Enabled {
		result.FailureReason = "Geo-fencing is disabled for this class"
		return nil
	}

	quality := geofence.ValidateLocationQuality(*req.Location, now)
	result.Quality = &quality
	if !quality.IsValid {
		result.FailureReason = fmt.Sprintf("Invalid location: %s", strings.Join(quality.Issues, ", "))
		return nil
	}

	history, err := s.repo.ListLocationHistory(ctx, req.UserID, req.BookingID, historyLimit)
	if err != nil {
		return fmt.Errorf("service: could not load location history: %w", err)
	}

	fraud := geofence.DetectLocationFraud(*req.Location, history, req.Device)
	result.Fraud = &fraud
	attempt.FraudScore = fraud.FraudScore
	if fraud.SuspiciousActivity {
		result.FailureReason = fmt.Sprintf("Suspicious location activity: %s", strings.Join(fraud.Flags, ", "))
		return nil
	}

	validation := geofence.ValidateGeoFence(*req.Location, *fence, class.Schedule(), class.DurationMinutes, now)
	result.Validation = &validation
	attempt.DistanceMeters = validation.DistanceMeters
	if !validation.CheckInAllowed {
		result.FailureReason = strings.Join(validation.Reasons, ", ")
		return nil
	}

	result.Allowed = true
	return nil
}

// finalize фиксирует попытку, дописывает огрубленное показание в историю
// и публикует событие с решением
func (s *checkInService) finalize(ctx context.Context, log *logrus.Entry, req *CheckInRequest, attempt *models.CheckInAttempt, result *CheckInResult) (*CheckInResult, error) {
	attempt.Success = result.Allowed
	attempt.FailureReason = result.FailureReason

	// В хранилище координаты попадают только огрубленными
	if req.Location != nil {
		rounded := geofence.RoundForPrivacy(*req.Location, s.cfg.PrivacyPrecisionMeters)
		attempt.Location = &rounded
	}

	inserted, err := s.repo.SaveCheckInAttempt(ctx, attempt)
	if err != nil {
		log.WithError(err).Error("Failed to save check-in attempt")
		return nil, fmt.Errorf("service: could not save check-in attempt: %w", err)
	}

	// Конкурирующая попытка по той же брони успела раньше
	if attempt.Success && !inserted {
		log.Warn("Concurrent check-in already succeeded for this booking")
		result.Allowed = false
		result.AlreadyCheckedIn = true
		result.FailureReason = "Booking is already checked in"
	}

	if attempt.Location != nil {
		if err := s.repo.SaveLocationSample(ctx, req.UserID, req.BookingID, *attempt.Location); err != nil {
			// История - вспомогательный сигнал, решение уже зафиксировано
			log.WithError(err).Error("Failed to append location sample to history")
		}
	}

	event := webhook.CheckInEvent{
		BookingID:      attempt.BookingID,
		UserID:         attempt.UserID,
		ClassID:        attempt.ClassID,
		Success:        result.Allowed,
		Method:         string(attempt.Method),
		FailureReason:  result.FailureReason,
		FraudScore:     attempt.FraudScore,
		DistanceMeters: attempt.DistanceMeters,
		Timestamp:      attempt.AttemptedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish check-in event")
	}

	log.WithFields(logrus.Fields{
		"allowed":     result.Allowed,
		"fraud_score": attempt.FraudScore,
	}).Info("Check-in attempt processed")
	return result, nil
}

// ProvisionGeoFence генерирует дефолтную геозону по типу площадки занятия
// и сохраняет ее. Для онлайн-площадки геозона снимается (nil).
func (s *checkInService) ProvisionGeoFence(ctx context.Context, classID uuid.UUID, venueType models.VenueType, radiusOverride int) (*models.GeoFenceSettings, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "checkin",
		"method":     "ProvisionGeoFence",
		"class_id":   classID,
		"venue_type": venueType,
	})
	log.Info("Provisioning geo-fence settings")

	if !venueType.IsValid() {
		return nil, fmt.Errorf("service: unknown venue type %q", venueType)
	}

	class, err := s.repo.GetClassByID(ctx, classID)
	if err != nil {
		log.WithError(err).Warn("Attempted to provision geo-fence for a non-existent class")
		return nil, fmt.Errorf("service: class with id %s not found: %w", classID, err)
	}

	fence := geofence.GenerateGeoFenceSettings(class.Latitude, class.Longitude, venueType, radiusOverride)

	if err := s.repo.UpdateClassGeoFence(ctx, classID, fence); err != nil {
		log.WithError(err).Error("Failed to update class geo-fence in repository")
		return nil, fmt.Errorf("service: could not update geo-fence: %w", err)
	}

	if err := s.repo.InvalidateClassCache(ctx, classID); err != nil {
		log.WithError(err).Warn("Failed to invalidate class cache")
	}

	log.Info("Geo-fence settings provisioned successfully")
	return fence, nil
}

// GetCheckInWindow возвращает текущее состояние окна чекина для занятия
func (s *checkInService) GetCheckInWindow(ctx context.Context, classID uuid.UUID) (*models.CheckInWindowStatus, error) {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load class: %w", err)
	}

	var fenceWindow *models.CheckInWindow
	if class.GeoFence != nil {
		fenceWindow = class.GeoFence.CheckInWindow
	}
	window := geofence.ComputeCheckInWindow(class.Schedule(), class.DurationMinutes, fenceWindow, time.Now().UTC())
	return &window, nil
}

// GetPermissionAdvice возвращает рекомендацию по запросу разрешения на геолокацию
func (s *checkInService) GetPermissionAdvice(ctx context.Context, classID uuid.UUID) (*models.PermissionAdvice, error) {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load class: %w", err)
	}

	advice := geofence.ShouldRequestLocationPermission(class.GeoFence, class.ClassType)
	return &advice, nil
}

// GetNotificationPlan рассчитывает план напоминаний перед занятием
func (s *checkInService) GetNotificationPlan(ctx context.Context, classID uuid.UUID, travelTimeMinutes int) (*models.NotificationPlan, error) {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load class: %w", err)
	}

	var fenceWindow *models.CheckInWindow
	if class.GeoFence != nil {
		fenceWindow = class.GeoFence.CheckInWindow
	}
	plan := geofence.ScheduleLocationNotifications(class.Schedule(), fenceWindow, travelTimeMinutes)
	return &plan, nil
}

// GetStats возвращает число уникальных пользователей с попытками чекина
// за настроенное временное окно
func (s *checkInService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "GetStats",
	})

	count, err := s.repo.GetCheckInStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get check-in stats from repository")
		return 0, fmt.Errorf("service: could not get check-in stats: %w", err)
	}
	return count, nil
}

// getClass загружает занятие через кеш с прозрачным прогревом
func (s *checkInService) getClass(ctx context.Context, id uuid.UUID) (*models.Class, error) {
	cached, err := s.repo.GetClassFromCache(ctx, id)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read class from cache")
	}
	if cached != nil {
		return cached, nil
	}

	class, err := s.repo.GetClassByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetClassCache(ctx, class); err != nil {
		s.logger.WithError(err).Warn("Failed to set class in cache")
	}
	return class, nil
}

// alternativeMethods возвращает запасные способы чекина из настроек геозоны
func alternativeMethods(fence *models.GeoFenceSettings) []string {
	if fence == nil || fence.FallbackOptions == nil {
		return []string{}
	}
	return fence.FallbackOptions.AlternativeMethods
}
