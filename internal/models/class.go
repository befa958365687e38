package models

import (
	"time"

	"github.com/google/uuid"
)

// VenueType - классификация площадки, определяющая дефолтные параметры геозоны
type VenueType string

const (
	VenueIndoorStudio  VenueType = "indoor_studio"
	VenueHomeStudio    VenueType = "home_studio"
	VenueOutdoorPark   VenueType = "outdoor_park"
	VenueLargeFacility VenueType = "large_facility"
	VenueOnline        VenueType = "online"
)

// IsValid проверяет, что тип площадки входит в закрытый набор значений
func (v VenueType) IsValid() bool {
	switch v {
	case VenueIndoorStudio, VenueHomeStudio, VenueOutdoorPark, VenueLargeFacility, VenueOnline:
		return true
	}
	return false
}

// ClassType - формат проведения занятия
type ClassType string

const (
	ClassInPerson ClassType = "in_person"
	ClassOnline   ClassType = "online"
	ClassHybrid   ClassType = "hybrid"
)

// ClassSchedule - расписание занятия: дата и время начала
type ClassSchedule struct {
	StartDate string `json:"start_date"` // формат 2006-01-02
	StartTime string `json:"start_time"` // формат 15:04:05
}

// Start возвращает момент начала занятия. При некорректных строках
// возвращается нулевое время: ядро валидации не бросает ошибок,
// окно чекина в этом случае просто окажется закрытым.
func (s ClassSchedule) Start() time.Time {
	start, err := time.ParseInLocation("2006-01-02T15:04:05", s.StartDate+"T"+s.StartTime, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return start
}

// Class представляет занятие с привязкой к площадке и геозоне
type Class struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	VenueType       VenueType        `json:"venue_type"`
	ClassType       ClassType        `json:"class_type"`
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	DurationMinutes int              `json:"duration_minutes"`
	StartDate       string           `json:"start_date"`
	StartTime       string           `json:"start_time"`
	GeoFence        *GeoFenceSettings `json:"geo_fence,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Schedule возвращает расписание занятия в виде, потребляемом ядром
func (c *Class) Schedule() ClassSchedule {
	return ClassSchedule{StartDate: c.StartDate, StartTime: c.StartTime}
}
