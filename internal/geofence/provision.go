package geofence

import (
	"github.com/hobbyclass/geo_checkin_system/internal/models"
)

// Дефолтные радиусы геозоны по типу площадки, метры
var venueRadiusMeters = map[models.VenueType]int{
	models.VenueIndoorStudio:  100, // небольшие студии
	models.VenueHomeStudio:    50,  // частные дома
	models.VenueOutdoorPark:   300, // парки и открытые площадки
	models.VenueLargeFacility: 500, // залы и спортивные центры
}

// Дефолтные пороги точности GPS по типу площадки, метры
var venueAccuracyThreshold = map[models.VenueType]int{
	models.VenueIndoorStudio:  20, // в помещении GPS слабее, порог мягче
	models.VenueHomeStudio:    15,
	models.VenueOutdoorPark:   10, // на открытом воздухе ожидается хороший сигнал
	models.VenueLargeFacility: 30, // крупные здания экранируют сигнал
}

// GenerateGeoFenceSettings формирует дефолтные настройки геозоны по типу
// площадки. Для онлайн-занятий (и неизвестных типов) геозона не применима -
// возвращается nil. Настройки нигде не сохраняются, это чистая генерация.
func GenerateGeoFenceSettings(centerLat, centerLng float64, venueType models.VenueType, radiusOverride int) *models.GeoFenceSettings {
	radius, ok := venueRadiusMeters[venueType]
	if !ok {
		return nil
	}
	if radiusOverride > 0 {
		radius = radiusOverride
	}

	return &models.GeoFenceSettings{
		Enabled:           true,
		CenterLat:         centerLat,
		CenterLng:         centerLng,
		RadiusMeters:      radius,
		AccuracyThreshold: venueAccuracyThreshold[venueType],
		CheckInWindow: &models.CheckInWindow{
			OpensMinutesBefore: defaultOpensMinutesBefore,
			DynamicClosing:     true,
		},
		FallbackOptions: &models.GeoFenceFallbackOptions{
			AllowManualOverride:        true,
			InstructorOverrideRequired: venueType == models.VenueHomeStudio, // для домашних студий строже
			AlternativeMethods:         []string{"instructor_confirmation"},
			EmergencyBypass:            true,
		},
	}
}

// ShouldRequestLocationPermission подсказывает клиенту, нужно ли запрашивать
// разрешение на геолокацию для данного занятия и насколько настойчиво.
func ShouldRequestLocationPermission(fence *models.GeoFenceSettings, classType models.ClassType) models.PermissionAdvice {
	if fence == nil || classType == models.ClassOnline {
		return models.PermissionAdvice{
			Required: false,
			Reason:   "Location not needed for this class type",
			Urgency:  models.UrgencyOptional,
		}
	}

	if !fence.Enabled {
		return models.PermissionAdvice{
			Required: false,
			Reason:   "Geo-fence is disabled for this class",
			Urgency:  models.UrgencyOptional,
		}
	}

	hasAlternatives := fence.FallbackOptions != nil && len(fence.FallbackOptions.AlternativeMethods) > 0

	advice := models.PermissionAdvice{
		Required: true,
		Reason:   "Location is required for check-in at this venue",
		Urgency:  models.UrgencyRequired,
	}
	if hasAlternatives {
		advice.Reason = "Location is required for check-in, or use alternative method"
		advice.Urgency = models.UrgencyRecommended
	}
	return advice
}
