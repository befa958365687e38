package geofence

import (
	"testing"
	"time"

	"github.com/hobbyclass/geo_checkin_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func freshSample(accuracy float64, now time.Time) models.LocationSample {
	return models.LocationSample{
		Latitude:  55.75583,
		Longitude: 37.61729,
		Accuracy:  accuracy,
		Timestamp: now,
		Source:    models.SourceGPS,
	}
}

func TestValidateLocationQuality_Excellent(t *testing.T) {
	now := time.Now()

	report := ValidateLocationQuality(freshSample(5, now), now)

	assert.True(t, report.IsValid)
	assert.Equal(t, models.QualityExcellent, report.Quality)
	assert.Empty(t, report.Issues)
}

func TestValidateLocationQuality_AccuracyTiers(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		accuracy float64
		want     models.LocationQuality
		valid    bool
	}{
		{"до 20 метров - excellent", 20, models.QualityExcellent, true},
		{"до 50 метров - good", 35, models.QualityGood, true},
		{"до 100 метров - fair", 75, models.QualityFair, true},
		{"больше 100 метров - poor и невалидно", 150, models.QualityPoor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ValidateLocationQuality(freshSample(tt.accuracy, now), now)
			assert.Equal(t, tt.want, report.Quality)
			assert.Equal(t, tt.valid, report.IsValid)
		})
	}
}

func TestValidateLocationQuality_InvalidCoordinates(t *testing.T) {
	now := time.Now()
	sample := freshSample(5, now)
	sample.Latitude = 91
	sample.Longitude = -181
	sample.Accuracy = -1

	report := ValidateLocationQuality(sample, now)

	assert.False(t, report.IsValid)
	assert.Contains(t, report.Issues, "Invalid latitude value")
	assert.Contains(t, report.Issues, "Invalid longitude value")
	assert.Contains(t, report.Issues, "Invalid accuracy value")
}

func TestValidateLocationQuality_StalenessLadder(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		age  time.Duration
		want models.LocationQuality
	}{
		{"свежие данные - excellent", 2 * time.Minute, models.QualityExcellent},
		{"старше 5 минут - good", 10 * time.Minute, models.QualityGood},
		{"старше 15 минут - fair", 20 * time.Minute, models.QualityFair},
		{"старше 30 минут - poor", 45 * time.Minute, models.QualityPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ValidateLocationQuality(freshSample(5, now.Add(-tt.age)), now)
			assert.Equal(t, tt.want, report.Quality)
		})
	}
}

func TestValidateLocationQuality_StaleButValid(t *testing.T) {
	// Устаревшие данные деградируют качество, но валидность не ломают
	now := time.Now()

	report := ValidateLocationQuality(freshSample(5, now.Add(-10*time.Minute)), now)

	assert.True(t, report.IsValid)
	assert.Contains(t, report.Issues, "Location data is stale")
}

func TestValidateLocationQuality_StalenessDoesNotSkipTiers(t *testing.T) {
	// Показание с good по точности и возрастом 20 минут падает ровно
	// на одну ступень, до fair, а не до poor
	now := time.Now()

	report := ValidateLocationQuality(freshSample(35, now.Add(-20*time.Minute)), now)

	assert.Equal(t, models.QualityFair, report.Quality)
}
