package geofence

import (
	"math"

	"github.com/hobbyclass/geo_checkin_system/internal/models"
)

// Метров в одном градусе на экваторе
const metersPerDegree = 111320.0

// DefaultPrivacyPrecisionMeters - точность огрубления координат по умолчанию
const DefaultPrivacyPrecisionMeters = 10.0

// RoundForPrivacy огрубляет координаты показания до заданной точности в метрах
// перед хранением или отображением. Преобразование идемпотентно. Применять его
// до антифрода и проверки геозоны нельзя - им нужна полная точность.
func RoundForPrivacy(sample models.LocationSample, precisionMeters float64) models.LocationSample {
	if precisionMeters <= 0 {
		precisionMeters = DefaultPrivacyPrecisionMeters
	}

	precisionDegrees := precisionMeters / metersPerDegree
	roundTo := math.Pow(10, math.Ceil(math.Log10(1/precisionDegrees)))

	rounded := sample
	rounded.Latitude = math.Round(sample.Latitude*roundTo) / roundTo
	rounded.Longitude = math.Round(sample.Longitude*roundTo) / roundTo
	rounded.PrivacyRounded = true
	return rounded
}
