// Package middleware provides HTTP middleware for the auth service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityConfig holds configuration for the security middleware.
type SecurityConfig struct {
	// AllowedOrigins is the list of origins permitted for cross-origin requests.
	AllowedOrigins []string
	AllowedMethods string
	AllowedHeaders string
}

// Security returns middleware that applies CORS headers for allowed origins
// and sets baseline security response headers on every request.
func Security(config SecurityConfig) gin.HandlerFunc {
	// Build a set of allowed origins for O(1) lookup
	allowedSet := make(map[string]bool, len(config.AllowedOrigins))
	for _, origin := range config.AllowedOrigins {
		// Normalize: remove trailing slash, lowercase
		normalized := strings.TrimSuffix(strings.ToLower(origin), "/")
		allowedSet[normalized] = true
	}

	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")

		origin := c.GetHeader("Origin")
		if origin != "" && isAllowedOrigin(origin, allowedSet) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", config.AllowedMethods)
			c.Header("Access-Control-Allow-Headers", config.AllowedHeaders)
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the given origin is in the allowed set.
func isAllowedOrigin(origin string, allowedSet map[string]bool) bool {
	normalized := strings.TrimSuffix(strings.ToLower(origin), "/")
	return allowedSet[normalized]
}
