package services

import (
	"net/url"
	"strconv"
)

// ZoneFilters is the typed form of the surfzones-lite query string.
// Zero values mean "no constraint".
type ZoneFilters struct {
	CountryID         string
	CountryCode       string
	CountrySlug       string
	TravelerType      string
	Safety            string
	Comfort           string
	Cost              string
	MainWaveDirection string

	// Condition-level filters; any of these forces the conditions join.
	Month              string
	SurfLevel          string
	Crowd              string
	SunnyDaysMin       *int
	SunnyDaysMax       *int
	RainDaysMin        *int
	RainDaysMax        *int
	WaterTempCMin      *int
	WaterTempCMax      *int
	SurfRatingMin      *int // applies to world_surf_rating
	SwellSizeMeterMin  *float64
	SwellSizeMeterMax  *float64
}

// HasConditionFilter reports whether any filter touches the one-to-many
// conditions relation. The join multiplies parent rows, so the caller must
// de-duplicate whenever this is true, month given or not.
func (f *ZoneFilters) HasConditionFilter() bool {
	return f.Month != "" || f.SurfLevel != "" || f.Crowd != "" ||
		f.SunnyDaysMin != nil || f.SunnyDaysMax != nil ||
		f.RainDaysMin != nil || f.RainDaysMax != nil ||
		f.WaterTempCMin != nil || f.WaterTempCMax != nil ||
		f.SurfRatingMin != nil ||
		f.SwellSizeMeterMin != nil || f.SwellSizeMeterMax != nil
}

// ParseZoneFilters reads the recognized query parameters. A numeric parameter
// that fails to parse is a validation error, not a silent no-op.
func ParseZoneFilters(q url.Values) (*ZoneFilters, error) {
	f := &ZoneFilters{
		CountryID:         q.Get("country_id"),
		CountryCode:       q.Get("country_code"),
		CountrySlug:       q.Get("country_slug"),
		TravelerType:      q.Get("traveler_type"),
		Safety:            q.Get("safety"),
		Comfort:           q.Get("confort"),
		Cost:              q.Get("cost"),
		MainWaveDirection: q.Get("main_wave_direction"),
		Month:             q.Get("month"),
		SurfLevel:         q.Get("surf_level"),
		Crowd:             q.Get("crowd"),
	}

	var err error
	if f.SunnyDaysMin, err = intParam(q, "sunny_days_min"); err != nil {
		return nil, err
	}
	if f.SunnyDaysMax, err = intParam(q, "sunny_days_max"); err != nil {
		return nil, err
	}
	if f.RainDaysMin, err = intParam(q, "rain_days_min"); err != nil {
		return nil, err
	}
	if f.RainDaysMax, err = intParam(q, "rain_days_max"); err != nil {
		return nil, err
	}
	if f.WaterTempCMin, err = intParam(q, "water_temp_c_min"); err != nil {
		return nil, err
	}
	if f.WaterTempCMax, err = intParam(q, "water_temp_c_max"); err != nil {
		return nil, err
	}
	if f.SurfRatingMin, err = intParam(q, "surf_rating_min"); err != nil {
		return nil, err
	}
	if f.SwellSizeMeterMin, err = floatParam(q, "swell_size_meter_min"); err != nil {
		return nil, err
	}
	if f.SwellSizeMeterMax, err = floatParam(q, "swell_size_meter_max"); err != nil {
		return nil, err
	}
	return f, nil
}

// SpotFilters is the typed form of the surfspots-lite query string.
type SpotFilters struct {
	SurfZoneID            string
	SurfZoneSlug          string
	BestMonth             string
	SurfLevel             string
	BestTide              string
	BreakType             string
	WaveDirection         string
	BestWindDirection     string
	BestSwellDirection    string
	BestSwellSizeMeterMin *float64
	BestSwellSizeMeterMax *float64
}

// ParseSpotFilters reads the recognized surf spot query parameters.
func ParseSpotFilters(q url.Values) (*SpotFilters, error) {
	f := &SpotFilters{
		SurfZoneID:         q.Get("surfzone_id"),
		SurfZoneSlug:       q.Get("surfzone_slug"),
		BestMonth:          q.Get("best_month"),
		SurfLevel:          q.Get("surf_level"),
		BestTide:           q.Get("best_tide"),
		BreakType:          q.Get("break_type"),
		WaveDirection:      q.Get("wave_direction"),
		BestWindDirection:  q.Get("best_wind_direction"),
		BestSwellDirection: q.Get("best_swell_direction"),
	}

	var err error
	if f.BestSwellSizeMeterMin, err = floatParam(q, "best_swell_size_meter_min"); err != nil {
		return nil, err
	}
	if f.BestSwellSizeMeterMax, err = floatParam(q, "best_swell_size_meter_max"); err != nil {
		return nil, err
	}
	return f, nil
}

func intParam(q url.Values, key string) (*int, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, newValidationError(key, "must be an integer")
	}
	return &v, nil
}

func floatParam(q url.Values, key string) (*float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, newValidationError(key, "must be a number")
	}
	return &v, nil
}
