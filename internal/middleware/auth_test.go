package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ramahomes/config"
	"ramahomes/internal/auth"
	"ramahomes/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmins struct {
	admin *models.AdminUser
}

func (f *fakeAdmins) GetByID(id uint) (*models.AdminUser, error) {
	if f.admin != nil && f.admin.ID == id {
		return f.admin, nil
	}
	return nil, errors.New("record not found")
}

func protectedRouter(cfg *config.JWTConfig, admins AdminLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", AuthRequired(cfg, admins), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetAdmin(c).Email})
	})
	return r
}

func request(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "test"}
	admins := &fakeAdmins{admin: &models.AdminUser{ID: 3, Email: "admin@example.com"}}
	r := protectedRouter(cfg, admins)

	token, err := auth.GenerateToken(cfg, 3)
	require.NoError(t, err)

	t.Run("valid token passes", func(t *testing.T) {
		w := request(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin@example.com")
	})

	t.Run("missing header", func(t *testing.T) {
		w := request(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		w := request(r, "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := request(r, "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredCfg := &config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute, Issuer: "test"}
		expired, err := auth.GenerateToken(expiredCfg, 3)
		require.NoError(t, err)
		w := request(r, "Bearer "+expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		otherCfg := &config.JWTConfig{Secret: "other-secret", Expiry: time.Hour, Issuer: "test"}
		forged, err := auth.GenerateToken(otherCfg, 3)
		require.NoError(t, err)
		w := request(r, "Bearer "+forged)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for deleted admin", func(t *testing.T) {
		orphan, err := auth.GenerateToken(cfg, 42)
		require.NoError(t, err)
		w := request(r, "Bearer "+orphan)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
