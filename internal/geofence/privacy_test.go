package geofence

import (
	"testing"
	"time"

	"github.com/hobbyclass/geo_checkin_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRoundForPrivacy_ReducesPrecision(t *testing.T) {
	sample := models.LocationSample{
		Latitude:  55.755831234,
		Longitude: 37.617298765,
		Accuracy:  5,
		Timestamp: time.Now(),
		Source:    models.SourceGPS,
	}

	rounded := RoundForPrivacy(sample, 10)

	assert.True(t, rounded.PrivacyRounded)
	// Точность 10 метров соответствует пяти знакам после запятой
	assert.InDelta(t, 55.75583, rounded.Latitude, 1e-9)
	assert.InDelta(t, 37.61730, rounded.Longitude, 1e-9)
	// Остальные поля не затрагиваются
	assert.Equal(t, sample.Accuracy, rounded.Accuracy)
	assert.Equal(t, sample.Source, rounded.Source)
}

func TestRoundForPrivacy_Idempotent(t *testing.T) {
	sample := models.LocationSample{
		Latitude:  55.755831234,
		Longitude: 37.617298765,
	}

	once := RoundForPrivacy(sample, 10)
	twice := RoundForPrivacy(once, 10)

	assert.Equal(t, once.Latitude, twice.Latitude)
	assert.Equal(t, once.Longitude, twice.Longitude)
}

func TestRoundForPrivacy_DefaultPrecision(t *testing.T) {
	sample := models.LocationSample{Latitude: 55.755831234, Longitude: 37.617298765}

	withDefault := RoundForPrivacy(sample, 0)
	explicit := RoundForPrivacy(sample, DefaultPrivacyPrecisionMeters)

	assert.Equal(t, explicit.Latitude, withDefault.Latitude)
	assert.Equal(t, explicit.Longitude, withDefault.Longitude)
}

func TestRoundForPrivacy_CoarserPrecision(t *testing.T) {
	sample := models.LocationSample{Latitude: 55.755831234, Longitude: 37.617298765}

	// Километровая точность оставляет три знака после запятой
	rounded := RoundForPrivacy(sample, 1000)

	assert.InDelta(t, 55.756, rounded.Latitude, 1e-9)
	assert.InDelta(t, 37.617, rounded.Longitude, 1e-9)
}
