package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsMaxAge          = 24 * 60 * 60
	headerTransactionID = "X-Transaction-Id"
)

var corsAllowHeaders = strings.Join([]string{
	"Origin",
	"Accept",
	"Content-Type",
	"Content-Length",
	"Authorization",
	headerTransactionID,
}, ", ")

var corsAllowMethods = strings.Join([]string{http.MethodPost, http.MethodGet, http.MethodOptions}, ", ")

var corsExposeHeaders = strings.Join([]string{"Content-Length", headerTransactionID}, ", ")

// CORS answers preflight requests for trigger callers. origins may hold
// exact origins, "*.domain" suffixes or a single "*".
func CORS(origins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allow := allowOrigin(c.GetHeader("Origin"), origins); allow != "" {
			c.Header("Access-Control-Allow-Origin", allow)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Expose-Headers", corsExposeHeaders)

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))
		c.AbortWithStatus(http.StatusNoContent)
	}
}

// allowOrigin returns the value for Access-Control-Allow-Origin, or "" when
// origin is not permitted.
func allowOrigin(origin string, origins []string) string {
	for _, o := range origins {
		switch {
		case o == "*":
			if origin == "" {
				return "*"
			}
			return origin
		case origin == "":
			continue
		case o == origin:
			return origin
		case strings.HasPrefix(o, "*.") && strings.HasSuffix(origin, o[1:]):
			return origin
		}
	}
	return ""
}
