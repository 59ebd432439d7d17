package http

import (
	"github.com/gin-gonic/gin"

	"recipient-srv/internal/middleware"
)

// RegisterRoutes registers the trigger recipient routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	triggers := r.Group("/triggers", mw.Auth())
	{
		triggers.POST("/recipients", h.Resolve)
	}
}
