package geofence

import (
	"fmt"
	"math"
	"time"

	"github.com/hobbyclass/geo_checkin_system/internal/geo"
	"github.com/hobbyclass/geo_checkin_system/internal/models"
)

// Допустимая погрешность GPS по умолчанию, метры
const defaultAccuracyThreshold = 50

// ValidateGeoFence сводит расстояние до центра геозоны, точность GPS и
// временное окно в единое решение о допуске чекина. Причины отказа
// добавляются в фиксированном порядке: расстояние, точность, окно.
// Временное окно проверяется всегда; пространственные проверки
// пропускаются, только если сама геозона выключена.
func ValidateGeoFence(sample models.LocationSample, fence models.GeoFenceSettings, schedule models.ClassSchedule, durationMinutes int, now time.Time) models.GeoFenceValidationResult {
	reasons := []string{}

	distanceMeters := geo.DistanceMeters(sample.Latitude, sample.Longitude, fence.CenterLat, fence.CenterLng)

	withinFence := distanceMeters <= float64(fence.RadiusMeters)
	if !withinFence {
		reasons = append(reasons, fmt.Sprintf("Outside geo-fence: %dm from venue (limit: %dm)",
			int(math.Round(distanceMeters)), fence.RadiusMeters))
	}

	accuracyThreshold := fence.AccuracyThreshold
	if accuracyThreshold <= 0 {
		accuracyThreshold = defaultAccuracyThreshold
	}
	accuracySufficient := sample.Accuracy <= float64(accuracyThreshold)
	if !accuracySufficient {
		reasons = append(reasons, fmt.Sprintf("GPS accuracy insufficient: %gm (required: <%dm)",
			sample.Accuracy, accuracyThreshold))
	}

	window := ComputeCheckInWindow(schedule, durationMinutes, fence.CheckInWindow, now)
	timeWindowValid := window.IsCurrentlyOpen
	if !timeWindowValid {
		if window.MinutesUntilOpens > 0 {
			reasons = append(reasons, fmt.Sprintf("Check-in opens in %d minute(s)", window.MinutesUntilOpens))
		} else {
			reasons = append(reasons, "Check-in window has closed")
		}
	}

	checkInAllowed := timeWindowValid
	if fence.Enabled {
		checkInAllowed = withinFence && accuracySufficient && timeWindowValid
	}

	return models.GeoFenceValidationResult{
		WithinFence:        withinFence,
		DistanceMeters:     distanceMeters,
		AccuracySufficient: accuracySufficient,
		TimeWindowValid:    timeWindowValid,
		CheckInAllowed:     checkInAllowed,
		Reasons:            reasons,
	}
}
