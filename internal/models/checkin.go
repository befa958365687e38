package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckInMethod - способ подтверждения присутствия на занятии
type CheckInMethod string

const (
	MethodGeoFence               CheckInMethod = "geo_fence"
	MethodManualOverride         CheckInMethod = "manual_override"
	MethodInstructorConfirmation CheckInMethod = "instructor_confirmation"
	MethodEmergency              CheckInMethod = "emergency"
)

// IsValid проверяет, что способ чекина входит в закрытый набор значений
func (m CheckInMethod) IsValid() bool {
	switch m {
	case MethodGeoFence, MethodManualOverride, MethodInstructorConfirmation, MethodEmergency:
		return true
	}
	return false
}

// CheckInAttempt представляет запись о попытке чекина на занятие.
// Location хранится уже огрубленным для приватности.
type CheckInAttempt struct {
	ID             uuid.UUID       `json:"id"`
	BookingID      uuid.UUID       `json:"booking_id"`
	UserID         string          `json:"user_id"`
	ClassID        uuid.UUID       `json:"class_id"`
	AttemptedAt    time.Time       `json:"attempted_at"`
	Success        bool            `json:"success"`
	Method         CheckInMethod   `json:"method"`
	FailureReason  string          `json:"failure_reason,omitempty"`
	DistanceMeters float64         `json:"distance_meters,omitempty"`
	FraudScore     int             `json:"fraud_score,omitempty"`
	Location       *LocationSample `json:"location,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
