package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"recipient-srv/pkg/log"
	"recipient-srv/pkg/response"
	"recipient-srv/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the derived model.Scope in the
// request context. Tokens without a tenant are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.l.Warnf(ctx, "internal.middleware.Auth: missing or malformed Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth.Verify: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := scope.NewScope(payload)
		if !sc.HasTenant() {
			m.l.Warnf(ctx, "internal.middleware.Auth: token %s has no environment or organization", sc.JTI)
			response.Forbidden(c)
			c.Abort()
			return
		}

		ctx = scope.SetScopeToContext(ctx, sc)
		ctx = log.WithFields(ctx, "user_id", sc.UserID, "environment_id", sc.EnvironmentID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
