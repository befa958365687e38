package v1

import (
	"time"

	"github.com/hobbyclass/geo_checkin_system/internal/models"
)

// LocationSampleDTO - показание геолокации в запросе чекина.
// Диапазоны координат намеренно не валидируются на входе:
// ядро проверки качества фиксирует их как причину отказа, а не как 400.
// @Description Показание геолокации клиента
type LocationSampleDTO struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy" validate:"gte=0"`
	Altitude  float64   `json:"altitude,omitempty"`
	Heading   float64   `json:"heading,omitempty"`
	Speed     float64   `json:"speed,omitempty"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Source    string    `json:"source" validate:"required,oneof=gps network passive"`
}

// DeviceInfoDTO - сведения об устройстве в запросе чекина
// @Description Сведения об устройстве клиента
type DeviceInfoDTO struct {
	UserAgent               string `json:"user_agent,omitempty"`
	Platform                string `json:"platform,omitempty"`
	AppVersion              string `json:"app_version,omitempty"`
	LocationServicesEnabled bool   `json:"location_services_enabled"`
	LocationPermission      string `json:"location_permission,omitempty"`
}

// CheckInRequestDTO DTO попытки чекина
// @Description DTO попытки чекина на занятие
type CheckInRequestDTO struct {
	BookingID          string             `json:"booking_id" validate:"required,uuid"`
	UserID             string             `json:"user_id" validate:"required"`
	ClassID            string             `json:"class_id" validate:"required,uuid"`
	Method             string             `json:"method,omitempty" validate:"omitempty,oneof=geo_fence manual_override instructor_confirmation emergency"`
	Location           *LocationSampleDTO `json:"location,omitempty"`
	Device             DeviceInfoDTO      `json:"device"`
	InstructorApproved bool               `json:"instructor_approved,omitempty"`
	EmergencyReason    string             `json:"emergency_reason,omitempty" validate:"required_if=Method emergency"`
}

// CheckInResponse DTO решения по попытке чекина
// @Description Решение по попытке чекина с диагностикой
type CheckInResponse struct {
	Allowed            bool                             `json:"allowed"`
	AlreadyCheckedIn   bool                             `json:"already_checked_in,omitempty"`
	FailureReason      string                           `json:"failure_reason,omitempty"`
	Window             models.CheckInWindowStatus       `json:"window"`
	Quality            *models.LocationQualityReport    `json:"quality,omitempty"`
	Fraud              *models.FraudAssessment          `json:"fraud,omitempty"`
	Validation         *models.GeoFenceValidationResult `json:"validation,omitempty"`
	AlternativeMethods []string                         `json:"alternative_methods"`
}

// ProvisionGeoFenceRequest DTO генерации геозоны по типу площадки
// @Description DTO генерации настроек геозоны
type ProvisionGeoFenceRequest struct {
	VenueType      string `json:"venue_type" validate:"required,oneof=indoor_studio home_studio outdoor_park large_facility online"`
	RadiusOverride int    `json:"radius_override,omitempty" validate:"gte=0"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}
