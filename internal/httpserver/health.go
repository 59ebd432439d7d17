package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipient-srv/pkg/errors"
	"recipient-srv/pkg/response"
)

const serviceName = "recipient-srv"

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service and its Postgres and Redis dependencies are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Failure 503 {object} response.Resp "A dependency is down"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	if !srv.checkDependencies(c) {
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"postgres": "connected",
		"redis":    "connected",
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to resolve recipients
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if !srv.checkDependencies(c) {
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}

// checkDependencies pings Postgres and Redis and writes a 503 on failure.
func (srv *HTTPServer) checkDependencies(c *gin.Context) bool {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.checkDependencies.PingContext: %v", err)
		response.Error(c, errors.NewHTTPError(50302, "PostgreSQL connection not available", http.StatusServiceUnavailable))
		return false
	}

	if err := srv.redis.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.checkDependencies.Ping: %v", err)
		response.Error(c, errors.NewHTTPError(50303, "Redis connection not available", http.StatusServiceUnavailable))
		return false
	}

	return true
}
