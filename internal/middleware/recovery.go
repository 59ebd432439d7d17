package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"recipient-srv/pkg/log"
	"recipient-srv/pkg/response"
)

func Recovery(l log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s\n%s",
					err, c.Request.Method, c.Request.URL.Path, strings.Join(response.StackTrace(2), "\n"))

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
