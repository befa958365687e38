package geofence

import (
	"math"
	"strings"
	"time"

	"github.com/hobbyclass/geo_checkin_system/internal/models"
)

// ValidateLocationQuality оценивает одно показание геолокации: базовую
// корректность координат и уровень качества по точности и свежести.
// Все проблемы собираются независимо, без короткого замыкания.
func ValidateLocationQuality(sample models.LocationSample, now time.Time) models.LocationQualityReport {
	issues := []string{}
	quality := models.QualityExcellent

	if math.Abs(sample.Latitude) > 90 {
		issues = append(issues, "Invalid latitude value")
	}
	if math.Abs(sample.Longitude) > 180 {
		issues = append(issues, "Invalid longitude value")
	}
	if sample.Accuracy < 0 {
		issues = append(issues, "Invalid accuracy value")
	}

	switch {
	case sample.Accuracy > 100:
		quality = models.QualityPoor
		issues = append(issues, "Very poor GPS accuracy")
	case sample.Accuracy > 50:
		quality = models.QualityFair
		issues = append(issues, "Poor GPS accuracy")
	case sample.Accuracy > 20:
		quality = models.QualityGood
	}

	// Деградация за устаревшие данные идет ступенями, по одной на каждый
	// пройденный порог, без перескакивания уровней.
	ageMinutes := now.Sub(sample.Timestamp).Minutes()
	if ageMinutes > 5 {
		issues = append(issues, "Location data is stale")
		if quality == models.QualityExcellent {
			quality = models.QualityGood
		}
	}
	if ageMinutes > 15 && quality == models.QualityGood {
		quality = models.QualityFair
	}
	if ageMinutes > 30 && quality == models.QualityFair {
		quality = models.QualityPoor
	}

	isValid := true
	for _, issue := range issues {
		if strings.Contains(issue, "Invalid") || strings.Contains(issue, "Very poor") {
			isValid = false
			break
		}
	}

	return models.LocationQualityReport{
		IsValid: isValid,
		Quality: quality,
		Issues:  issues,
	}
}
