package middleware

import (
	"net/http"
	"strings"

	"jobify/internal/auth"
	"jobify/internal/models"

	"github.com/gin-gonic/gin"
)

// Require aborts API requests whose caller does not satisfy req. Role
// mismatches answer 401 like a missing session does.
func Require(req auth.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.Authorize(auth.Current(c), req) != auth.Allowed {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc  { return Require(auth.AnyUser) }
func RequireAdmin() gin.HandlerFunc { return Require(auth.AdminOnly) }

// PageGate protects the dashboard pages: anonymous visitors go to the login
// page, non-admins asking for the admin dashboard go to their own.
func PageGate(loginPath, userHome string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.Current(c)
		if auth.Authorize(id, auth.AnyUser) != auth.Allowed {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/dashboard/admin") && id.Role != models.RoleAdmin {
			c.Redirect(http.StatusFound, userHome)
			c.Abort()
			return
		}
		c.Next()
	}
}
