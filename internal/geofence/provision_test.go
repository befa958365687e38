package geofence

import (
	"testing"

	"github.com/hobbyclass/geo_checkin_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGeoFenceSettings_Defaults(t *testing.T) {
	tests := []struct {
		venueType    models.VenueType
		wantRadius   int
		wantAccuracy int
	}{
		{models.VenueIndoorStudio, 100, 20},
		{models.VenueHomeStudio, 50, 15},
		{models.VenueOutdoorPark, 300, 10},
		{models.VenueLargeFacility, 500, 30},
	}

	for _, tt := range tests {
		t.Run(string(tt.venueType), func(t *testing.T) {
			fence := GenerateGeoFenceSettings(55.755831, 37.617298, tt.venueType, 0)

			require.NotNil(t, fence)
			assert.True(t, fence.Enabled)
			assert.Equal(t, 55.755831, fence.CenterLat)
			assert.Equal(t, 37.617298, fence.CenterLng)
			assert.Equal(t, tt.wantRadius, fence.RadiusMeters)
			assert.Equal(t, tt.wantAccuracy, fence.AccuracyThreshold)

			require.NotNil(t, fence.CheckInWindow)
			assert.Equal(t, 10, fence.CheckInWindow.OpensMinutesBefore)
			assert.True(t, fence.CheckInWindow.DynamicClosing)

			require.NotNil(t, fence.FallbackOptions)
			assert.True(t, fence.FallbackOptions.AllowManualOverride)
			assert.True(t, fence.FallbackOptions.EmergencyBypass)
			assert.Equal(t, []string{"instructor_confirmation"}, fence.FallbackOptions.AlternativeMethods)
		})
	}
}

func TestGenerateGeoFenceSettings_Online(t *testing.T) {
	fence := GenerateGeoFenceSettings(55.755831, 37.617298, models.VenueOnline, 0)

	assert.Nil(t, fence)
}

func TestGenerateGeoFenceSettings_RadiusOverride(t *testing.T) {
	fence := GenerateGeoFenceSettings(55.755831, 37.617298, models.VenueIndoorStudio, 250)

	require.NotNil(t, fence)
	assert.Equal(t, 250, fence.RadiusMeters)
	// Порог точности переопределение радиуса не трогает
	assert.Equal(t, 20, fence.AccuracyThreshold)
}

func TestGenerateGeoFenceSettings_HomeStudioRequiresInstructor(t *testing.T) {
	home := GenerateGeoFenceSettings(55.755831, 37.617298, models.VenueHomeStudio, 0)
	park := GenerateGeoFenceSettings(55.755831, 37.617298, models.VenueOutdoorPark, 0)

	require.NotNil(t, home)
	require.NotNil(t, park)
	assert.True(t, home.FallbackOptions.InstructorOverrideRequired)
	assert.False(t, park.FallbackOptions.InstructorOverrideRequired)
}

func TestShouldRequestLocationPermission(t *testing.T) {
	fence := GenerateGeoFenceSettings(55.755831, 37.617298, models.VenueIndoorStudio, 0)

	t.Run("без геозоны разрешение не нужно", func(t *testing.T) {
		advice := ShouldRequestLocationPermission(nil, models.ClassInPerson)
		assert.False(t, advice.Required)
		assert.Equal(t, models.UrgencyOptional, advice.Urgency)
	})

	t.Run("для онлайн-занятия разрешение не нужно", func(t *testing.T) {
		advice := ShouldRequestLocationPermission(fence, models.ClassOnline)
		assert.False(t, advice.Required)
		assert.Equal(t, models.UrgencyOptional, advice.Urgency)
	})

	t.Run("выключенная геозона", func(t *testing.T) {
		disabled := *fence
		disabled.Enabled = false
		advice := ShouldRequestLocationPermission(&disabled, models.ClassInPerson)
		assert.False(t, advice.Required)
		assert.Equal(t, "Geo-fence is disabled for this class", advice.Reason)
	})

	t.Run("с запасными способами - recommended", func(t *testing.T) {
		advice := ShouldRequestLocationPermission(fence, models.ClassInPerson)
		assert.True(t, advice.Required)
		assert.Equal(t, models.UrgencyRecommended, advice.Urgency)
	})

	t.Run("без запасных способов - required", func(t *testing.T) {
		strict := *fence
		strict.FallbackOptions = &models.GeoFenceFallbackOptions{}
		advice := ShouldRequestLocationPermission(&strict, models.ClassInPerson)
		assert.True(t, advice.Required)
		assert.Equal(t, models.UrgencyRequired, advice.Urgency)
	})
}
