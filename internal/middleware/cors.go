package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewCORS builds a CORS policy for the solve API: a fixed allow-list of
// origins (or "*", every origin, when none is configured or the list
// contains "*"), the methods and headers the
// JSON solve/health endpoints actually use, and no credentialed-request
// support -- there is no session or auth header in this domain.
func NewCORS(origins []string) gin.HandlerFunc {
	allowAll := len(origins) == 0
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		reqOrigin := c.GetHeader("Origin")

		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", "*")
		case allowed[reqOrigin]:
			c.Header("Access-Control-Allow-Origin", reqOrigin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Max-Age", "3600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
