package common

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectCode   string
	}{
		{
			name:         "Invalid time range is bad request",
			err:          errors.InvalidTimeRange,
			expectStatus: http.StatusBadRequest,
			expectCode:   "INVALID_TIME_RANGE",
		},
		{
			name:         "Invalid configuration is bad request",
			err:          errors.InvalidConfiguration,
			expectStatus: http.StatusBadRequest,
			expectCode:   "INVALID_CONFIGURATION",
		},
		{
			name:         "Not found",
			err:          errors.NotFound,
			expectStatus: http.StatusNotFound,
			expectCode:   "NOT_FOUND",
		},
		{
			name:         "Unauthorized",
			err:          errors.Unauthorized,
			expectStatus: http.StatusUnauthorized,
			expectCode:   "UNAUTHORIZED",
		},
		{
			name:         "Store unavailable",
			err:          errors.StoreUnavailable,
			expectStatus: http.StatusServiceUnavailable,
			expectCode:   "STORE_UNAVAILABLE",
		},
		{
			name:         "Wrapped business error keeps its mapping",
			err:          fmt.Errorf("load settings: %w", errors.InvalidConfiguration),
			expectStatus: http.StatusBadRequest,
			expectCode:   "INVALID_CONFIGURATION",
		},
		{
			name:         "Unknown error is internal",
			err:          fmt.Errorf("dial tcp: connection refused"),
			expectStatus: http.StatusInternalServerError,
			expectCode:   "STORE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := MapError(tt.err)
			assert.Equal(t, tt.expectStatus, status)
			assert.Equal(t, tt.expectCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestDateOnlyRoundTrip(t *testing.T) {
	var d DateOnly
	assert.NoError(t, d.UnmarshalJSON([]byte(`"2024-02-12"`)))

	out, err := d.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2024-02-12"`, string(out))
}

func TestDateOnlyInvalid(t *testing.T) {
	var d DateOnly
	assert.Error(t, d.UnmarshalJSON([]byte(`"12/02/2024"`)))

	// empty is tolerated so optional fields bind cleanly
	assert.NoError(t, d.UnmarshalJSON([]byte(`""`)))
	assert.True(t, d.IsZero())
}
