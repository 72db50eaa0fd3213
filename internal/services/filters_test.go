package services

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZoneFiltersEmpty(t *testing.T) {
	f, err := ParseZoneFilters(url.Values{})
	require.NoError(t, err)

	assert.Empty(t, f.CountryCode)
	assert.Nil(t, f.SunnyDaysMin)
	assert.Nil(t, f.SwellSizeMeterMax)
	assert.False(t, f.HasConditionFilter())
}

func TestParseZoneFiltersFullQuery(t *testing.T) {
	q := url.Values{}
	q.Set("country_code", "FRA")
	q.Set("country_slug", "france")
	q.Set("traveler_type", "Solo")
	q.Set("safety", "High")
	q.Set("confort", "Premium")
	q.Set("cost", "Moderate")
	q.Set("month", "July")
	q.Set("surf_level", "Beginner")
	q.Set("crowd", "Low")
	q.Set("sunny_days_min", "15")
	q.Set("rain_days_max", "10")
	q.Set("water_temp_c_min", "18")
	q.Set("surf_rating_min", "4")
	q.Set("swell_size_meter_min", "1.5")

	f, err := ParseZoneFilters(q)
	require.NoError(t, err)

	assert.Equal(t, "FRA", f.CountryCode)
	assert.Equal(t, "france", f.CountrySlug)
	assert.Equal(t, "Premium", f.Comfort)
	assert.Equal(t, "July", f.Month)
	require.NotNil(t, f.SunnyDaysMin)
	assert.Equal(t, 15, *f.SunnyDaysMin)
	require.NotNil(t, f.RainDaysMax)
	assert.Equal(t, 10, *f.RainDaysMax)
	require.NotNil(t, f.SurfRatingMin)
	assert.Equal(t, 4, *f.SurfRatingMin)
	require.NotNil(t, f.SwellSizeMeterMin)
	assert.Equal(t, 1.5, *f.SwellSizeMeterMin)
	assert.True(t, f.HasConditionFilter())
}

func TestParseZoneFiltersBadNumbers(t *testing.T) {
	tests := []struct {
		param string
		value string
	}{
		{"sunny_days_min", "many"},
		{"rain_days_max", "1.5"},
		{"water_temp_c_max", ""},
		{"surf_rating_min", "four"},
		{"swell_size_meter_max", "big"},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			q := url.Values{}
			q.Set(tt.param, tt.value)

			f, err := ParseZoneFilters(q)
			if tt.value == "" {
				// Blank parameters are treated as absent, not invalid.
				require.NoError(t, err)
				assert.Nil(t, f.WaterTempCMax)
				return
			}
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.param)
		})
	}
}

func TestHasConditionFilterEachField(t *testing.T) {
	n := 7
	x := 1.2

	tests := []struct {
		name string
		f    ZoneFilters
	}{
		{"month", ZoneFilters{Month: "July"}},
		{"surf level", ZoneFilters{SurfLevel: "Beginner"}},
		{"crowd", ZoneFilters{Crowd: "Low"}},
		{"sunny days min", ZoneFilters{SunnyDaysMin: &n}},
		{"rain days max", ZoneFilters{RainDaysMax: &n}},
		{"water temp min", ZoneFilters{WaterTempCMin: &n}},
		{"surf rating min", ZoneFilters{SurfRatingMin: &n}},
		{"swell size max", ZoneFilters{SwellSizeMeterMax: &x}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.f.HasConditionFilter())
		})
	}

	zoneOnly := ZoneFilters{CountryCode: "FRA", Safety: "High", Comfort: "Premium"}
	assert.False(t, zoneOnly.HasConditionFilter())
}

func TestParseSpotFilters(t *testing.T) {
	q := url.Values{}
	q.Set("surfzone_slug", "hossegor")
	q.Set("best_month", "October")
	q.Set("break_type", "Beach break")
	q.Set("best_swell_size_meter_min", "0.5")
	q.Set("best_swell_size_meter_max", "3")

	f, err := ParseSpotFilters(q)
	require.NoError(t, err)

	assert.Equal(t, "hossegor", f.SurfZoneSlug)
	assert.Equal(t, "October", f.BestMonth)
	assert.Equal(t, "Beach break", f.BreakType)
	require.NotNil(t, f.BestSwellSizeMeterMin)
	assert.Equal(t, 0.5, *f.BestSwellSizeMeterMin)
	require.NotNil(t, f.BestSwellSizeMeterMax)
	assert.Equal(t, 3.0, *f.BestSwellSizeMeterMax)
}

func TestParseSpotFiltersBadNumber(t *testing.T) {
	q := url.Values{}
	q.Set("best_swell_size_meter_min", "huge")

	_, err := ParseSpotFilters(q)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "best_swell_size_meter_min")
}
