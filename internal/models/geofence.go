package models

import (
	"time"
)

// CheckInWindow - настройки временного окна чекина относительно начала занятия
type CheckInWindow struct {
	OpensMinutesBefore int  `json:"opens_minutes_before"`
	ClosesMinutesAfter int  `json:"closes_minutes_after,omitempty"`
	DynamicClosing     bool `json:"dynamic_closing"`
}

// GeoFenceFallbackOptions - запасные способы чекина при недоступной геолокации
type GeoFenceFallbackOptions struct {
	AllowManualOverride        bool     `json:"allow_manual_override"`
	InstructorOverrideRequired bool     `json:"instructor_override_required"`
	AlternativeMethods         []string `json:"alternative_methods"`
	EmergencyBypass            bool     `json:"emergency_bypass"`
}

// GeoFenceSettings - круговая геозона вокруг площадки занятия
type GeoFenceSettings struct {
	Enabled           bool                     `json:"enabled"`
	CenterLat         float64                  `json:"center_lat"`
	CenterLng         float64                  `json:"center_lng"`
	RadiusMeters      int                      `json:"radius_meters"`
	AccuracyThreshold int                      `json:"accuracy_threshold"` // максимально допустимая погрешность GPS, метры
	CheckInWindow     *CheckInWindow           `json:"check_in_window,omitempty"`
	FallbackOptions   *GeoFenceFallbackOptions `json:"fallback_options,omitempty"`
}

// CheckInWindowStatus - вычисленные границы окна чекина и положение
// текущего момента относительно них. MinutesUntil* заполняются только
// когда соответствующая граница впереди (ноль означает "не применимо").
type CheckInWindowStatus struct {
	OpensAt            time.Time `json:"opens_at"`
	ClosesAt           time.Time `json:"closes_at"`
	IsCurrentlyOpen    bool      `json:"is_currently_open"`
	MinutesUntilOpens  int       `json:"minutes_until_opens,omitempty"`
	MinutesUntilCloses int       `json:"minutes_until_closes,omitempty"`
}

// GeoFenceValidationResult - итог проверки геозоны для попытки чекина.
// CheckInAllowed всегда выводится из остальных полей и отдельно не хранится.
type GeoFenceValidationResult struct {
	WithinFence        bool     `json:"within_fence"`
	DistanceMeters     float64  `json:"distance_meters"`
	AccuracySufficient bool     `json:"accuracy_sufficient"`
	TimeWindowValid    bool     `json:"time_window_valid"`
	CheckInAllowed     bool     `json:"check_in_allowed"`
	Reasons            []string `json:"reasons"`
}

// FraudAssessment - эвристическая оценка подозрительности геоданных.
// Оценка является сигналом для политики вызывающей стороны и сама по себе
// попытку не блокирует.
type FraudAssessment struct {
	SuspiciousActivity bool     `json:"suspicious_activity"`
	FraudScore         int      `json:"fraud_score"` // 0-100, выше - подозрительнее
	Flags              []string `json:"flags"`
}

// PermissionUrgency - насколько настойчиво запрашивать разрешение на геолокацию
type PermissionUrgency string

const (
	UrgencyOptional    PermissionUrgency = "optional"
	UrgencyRecommended PermissionUrgency = "recommended"
	UrgencyRequired    PermissionUrgency = "required"
)

// PermissionAdvice - рекомендация клиенту по запросу разрешения на геолокацию
type PermissionAdvice struct {
	Required bool              `json:"required"`
	Reason   string            `json:"reason"`
	Urgency  PermissionUrgency `json:"urgency"`
}

// NotificationPlan - расчетные моменты напоминаний перед занятием.
// ApproachingVenueNotification присутствует только при известном времени в пути.
type NotificationPlan struct {
	InitialNotification          time.Time  `json:"initial_notification"`
	ApproachingVenueNotification *time.Time `json:"approaching_venue_notification,omitempty"`
	CheckInReminderNotification  time.Time  `json:"check_in_reminder_notification"`
}
