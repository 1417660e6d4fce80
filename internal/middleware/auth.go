package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/auth"
	"github.com/careslot/clinic-scheduler/internal/config"
	"github.com/careslot/clinic-scheduler/internal/models"
)

const ContextSession = "session"

// SessionFrom extracts the per-request session set by AuthMiddleware.
func SessionFrom(c *gin.Context) auth.Session {
	return c.MustGet(ContextSession).(auth.Session)
}

// AuthMiddleware derives a session from the bearer token and rejects
// blocked accounts. Handlers pass the session explicitly into usecases.
func AuthMiddleware(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		sess, err := auth.DeriveSession(parts[1], cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if blocked(db, sess) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account_blocked"})
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c).Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_for_role"})
			return
		}
		c.Next()
	}
}

func blocked(db *gorm.DB, sess auth.Session) bool {
	switch sess.Role {
	case auth.RolePatient:
		var p models.Patient
		if err := db.First(&p, sess.UserID).Error; err != nil {
			return true
		}
		return p.Blocked
	case auth.RoleDoctor:
		var d models.Doctor
		if err := db.First(&d, sess.UserID).Error; err != nil {
			return true
		}
		return d.Blocked
	}
	return false
}
