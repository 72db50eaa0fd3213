package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Hossegor", "hossegor"},
		{"spaces", "North Shore", "north-shore"},
		{"accents", "Biarritz Côte des Basques", "biarritz-cote-des-basques"},
		{"mixed punctuation", "Uluwatu (Bali)!", "uluwatu-bali"},
		{"already a slug", "playa-grande", "playa-grande"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestTimestampedSlug(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 30, 9, 123456000, time.UTC)

	got := TimestampedSlug("North Shore", at)
	assert.Equal(t, "north-shore-20240305143009123456", got)
}

func TestTimestampedSlugDistinctWithinSameSecond(t *testing.T) {
	base := time.Date(2024, time.March, 5, 14, 30, 9, 0, time.UTC)

	first := TimestampedSlug("Hossegor", base)
	second := TimestampedSlug("Hossegor", base.Add(time.Microsecond))
	assert.NotEqual(t, first, second)
}
