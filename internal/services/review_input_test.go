package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestReviewInputValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     ReviewInput
		wantField string
	}{
		{
			name:  "zone only is valid",
			input: ReviewInput{SurfZone: strPtr("zone-1"), Rating: 4},
		},
		{
			name:  "spot only is valid",
			input: ReviewInput{SurfSpot: strPtr("spot-1"), Rating: 1},
		},
		{
			name:      "no target",
			input:     ReviewInput{Rating: 3},
			wantField: "surf_zone",
		},
		{
			name:      "both targets",
			input:     ReviewInput{SurfZone: strPtr("zone-1"), SurfSpot: strPtr("spot-1"), Rating: 3},
			wantField: "surf_zone",
		},
		{
			name:      "empty-string target counts as absent",
			input:     ReviewInput{SurfZone: strPtr(""), Rating: 3},
			wantField: "surf_zone",
		},
		{
			name:      "rating too low",
			input:     ReviewInput{SurfZone: strPtr("zone-1"), Rating: 0},
			wantField: "rating",
		},
		{
			name:      "rating too high",
			input:     ReviewInput{SurfZone: strPtr("zone-1"), Rating: 6},
			wantField: "rating",
		},
		{
			name:      "comment too long",
			input:     ReviewInput{SurfZone: strPtr("zone-1"), Rating: 5, Comment: strings.Repeat("x", 2001)},
			wantField: "comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestReviewInputValidateCommentAtLimit(t *testing.T) {
	in := ReviewInput{SurfSpot: strPtr("spot-1"), Rating: 5, Comment: strings.Repeat("x", 2000)}
	assert.NoError(t, in.validate())
}

// The comment limit is 2000 characters, not bytes: a multibyte comment of
// exactly 2000 runes is over 2000 bytes and must still pass.
func TestReviewInputValidateCommentCountsRunes(t *testing.T) {
	in := ReviewInput{SurfSpot: strPtr("spot-1"), Rating: 5, Comment: strings.Repeat("é", 2000)}
	assert.NoError(t, in.validate())

	in.Comment = strings.Repeat("é", 2001)
	err := in.validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "comment")
}
