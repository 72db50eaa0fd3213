package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestConditionValidateRangesValid(t *testing.T) {
	c := Condition{
		Month:            "July",
		WaterTempC:       intPtr(22),
		WaterTempF:       intPtr(72),
		SwellSizeFt:      floatPtr(4.5),
		SwellSizeMeter:   floatPtr(1.4),
		SwellConsistency: intPtr(70),
		SwellDirection:   "N-NW",
		SurfLevel:        pq.StringArray{"Beginner", "Intermediate"},
		Crowd:            "Medium",
		LocalSurfRating:  4,
		WorldSurfRating:  3,
		MinAirTempC:      intPtr(15),
		MaxAirTempC:      intPtr(28),
		WindForce:        intPtr(2),
		WindDirection:    "E",
	}

	assert.Empty(t, c.ValidateRanges())
}

func TestConditionValidateRangesOptionalMetricsOmitted(t *testing.T) {
	c := Condition{Month: "January"}
	assert.Empty(t, c.ValidateRanges())
}

func TestConditionValidateRanges(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Condition)
		wantField string
	}{
		{"missing month", func(c *Condition) { c.Month = "" }, "month"},
		{"unknown month", func(c *Condition) { c.Month = "Juillet" }, "month"},
		{"water temp C too high", func(c *Condition) { c.WaterTempC = intPtr(31) }, "water_temp_c"},
		{"water temp C negative", func(c *Condition) { c.WaterTempC = intPtr(-1) }, "water_temp_c"},
		{"water temp F below freezing", func(c *Condition) { c.WaterTempF = intPtr(31) }, "water_temp_f"},
		{"water temp F too high", func(c *Condition) { c.WaterTempF = intPtr(87) }, "water_temp_f"},
		{"min air temp C out of range", func(c *Condition) { c.MinAirTempC = intPtr(-101) }, "min_air_temp_c"},
		{"min air temp F out of range", func(c *Condition) { c.MinAirTempF = intPtr(213) }, "min_air_temp_f"},
		{"max air temp C negative", func(c *Condition) { c.MaxAirTempC = intPtr(-1) }, "max_air_temp_c"},
		{"max air temp F too low", func(c *Condition) { c.MaxAirTempF = intPtr(20) }, "max_air_temp_f"},
		{"wind force zero", func(c *Condition) { c.WindForce = intPtr(0) }, "wind_force"},
		{"wind force too high", func(c *Condition) { c.WindForce = intPtr(6) }, "wind_force"},
		{"swell size ft too big", func(c *Condition) { c.SwellSizeFt = floatPtr(101) }, "swell_size_ft"},
		{"swell size meter too big", func(c *Condition) { c.SwellSizeMeter = floatPtr(30.5) }, "swell_size_meter"},
		{"local rating too high", func(c *Condition) { c.LocalSurfRating = 6 }, "local_surf_rating"},
		{"world rating negative", func(c *Condition) { c.WorldSurfRating = -1 }, "world_surf_rating"},
		{"unknown surf level", func(c *Condition) { c.SurfLevel = pq.StringArray{"Expert"} }, "surf_level"},
		{"unknown crowd", func(c *Condition) { c.Crowd = "Packed" }, "crowd"},
		{"unknown swell direction", func(c *Condition) { c.SwellDirection = "NNW" }, "swell_direction"},
		{"unknown wind direction", func(c *Condition) { c.WindDirection = "offshore" }, "wind_direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Condition{Month: "July"}
			tt.mutate(&c)

			problems := c.ValidateRanges()
			assert.Contains(t, problems, tt.wantField)
		})
	}
}

// Celsius and Fahrenheit are independent fields: a pair that disagrees
// physically is still accepted as long as each is within its own bounds.
func TestConditionValidateRangesNoCrossUnitCheck(t *testing.T) {
	c := Condition{
		Month:      "July",
		WaterTempC: intPtr(5),
		WaterTempF: intPtr(85),
	}
	assert.Empty(t, c.ValidateRanges())
}

func TestConditionSetSlug(t *testing.T) {
	c := Condition{Month: "July"}
	c.SetSlug("North Shore")
	assert.Equal(t, "north-shore-july", c.Slug)

	// Never regenerated once set.
	c.Month = "August"
	c.SetSlug("North Shore")
	assert.Equal(t, "north-shore-july", c.Slug)
}

func TestSurfSpotValidateRanges(t *testing.T) {
	spot := SurfSpot{
		BestSwellSizeFeet:  floatPtr(6),
		BestSwellSizeMeter: floatPtr(2),
	}
	assert.Empty(t, spot.ValidateRanges())

	spot.BestSwellSizeFeet = floatPtr(101)
	assert.Contains(t, spot.ValidateRanges(), "best_swell_size_feet")

	spot.BestSwellSizeFeet = floatPtr(6)
	spot.BestSwellSizeMeter = floatPtr(-0.1)
	assert.Contains(t, spot.ValidateRanges(), "best_swell_size_meter")
}
