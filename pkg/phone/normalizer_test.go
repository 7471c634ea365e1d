package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		want        string
		wantError   bool
	}{
		{
			name:        "US number with formatting",
			phone:       "(202) 456-1111",
			countryCode: "US",
			want:        "+12024561111",
		},
		{
			name:        "Already E.164",
			phone:       "+12024561111",
			countryCode: "",
			want:        "+12024561111",
		},
		{
			name:        "UK mobile",
			phone:       "+44 7911 123456",
			countryCode: "GB",
			want:        "+447911123456",
		},
		{
			name:      "Empty input",
			phone:     "",
			wantError: true,
		},
		{
			name:        "Garbage input",
			phone:       "not-a-phone",
			countryCode: "US",
			wantError:   true,
		},
		{
			name:        "Too short to be valid",
			phone:       "12345",
			countryCode: "US",
			wantError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.phone, tt.countryCode)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsLikelyMobile(t *testing.T) {
	// UK numbers have an unambiguous mobile range
	assert.True(t, IsLikelyMobile("+447911123456"))
	assert.False(t, IsLikelyMobile("garbage"))
}
