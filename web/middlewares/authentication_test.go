package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shin-da/ojt-tracking-system-sub000/security"
)

func newTestRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Authentication(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthenticationValidToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := security.CreateIdentityToken(&security.TraineeIdentity{ID: 1, Username: "trainee"}, secret, time.Hour)
	require.NoError(t, err)

	r := newTestRouter(secret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticationRejections(t *testing.T) {
	secret := []byte("test-secret")
	goodToken, err := security.CreateIdentityToken(&security.TraineeIdentity{ID: 1, Username: "trainee"}, secret, time.Hour)
	require.NoError(t, err)

	wrongSecretToken, err := security.CreateIdentityToken(&security.TraineeIdentity{ID: 1, Username: "trainee"}, []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	expiredToken, err := security.CreateIdentityToken(&security.TraineeIdentity{ID: 1, Username: "trainee"}, secret, -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "Missing header", header: ""},
		{name: "Not bearer", header: "Basic " + goodToken},
		{name: "Wrong secret", header: "Bearer " + wrongSecretToken},
		{name: "Expired", header: "Bearer " + expiredToken},
		{name: "Garbage token", header: "Bearer not-a-jwt"},
	}

	r := newTestRouter(secret)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
