package middleware

import (
	"net/http"
	"strings"

	"ramahomes/config"
	"ramahomes/internal/auth"
	"ramahomes/internal/models"

	"github.com/gin-gonic/gin"
)

const adminKey = "admin"

// AdminLoader resolves the admin an authenticated token names.
type AdminLoader interface {
	GetByID(id uint) (*models.AdminUser, error)
}

// AuthRequired validates the bearer token and loads the acting admin
// into the request context. Every failure mode is a plain 401.
func AuthRequired(cfg *config.JWTConfig, admins AdminLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Authentication required.")
			return
		}
		token := strings.TrimSpace(header[len("Bearer "):])
		if token == "" {
			abortUnauthorized(c, "Authentication required.")
			return
		}

		adminID, err := auth.ParseToken(cfg, token)
		if err != nil {
			abortUnauthorized(c, "Authentication failed.")
			return
		}
		admin, err := admins.GetByID(adminID)
		if err != nil {
			abortUnauthorized(c, "Authentication failed.")
			return
		}

		c.Set(adminKey, admin)
		c.Next()
	}
}

// GetAdmin returns the acting admin (must be used after AuthRequired).
func GetAdmin(c *gin.Context) *models.AdminUser {
	v, _ := c.Get(adminKey)
	if v == nil {
		return nil
	}
	return v.(*models.AdminUser)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
