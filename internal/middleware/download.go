package middleware

import "github.com/gin-gonic/gin"

// DownloadOnly makes browsers save stored files instead of rendering them
// on the API's origin.
func DownloadOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Disposition", "attachment")
		c.Next()
	}
}
