package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"recipient-srv/config"
	"recipient-srv/internal/auditlog"
	"recipient-srv/pkg/log"
	pkgRedis "recipient-srv/pkg/redis"
	"recipient-srv/pkg/scope"
)

const defaultShutdownTimeout = 15 * time.Second

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) maps handlers and serves until a shutdown signal.
type HTTPServer struct {
	// Server configuration
	gin  *gin.Engine
	l    log.Logger
	host string
	port int
	mode string

	corsOrigins []string
	registry    *prometheus.Registry

	// Database & cache
	postgresDB *sql.DB
	redis      pkgRedis.IRedis

	// Auth & security
	jwtManager scope.Manager

	// Recipient resolution configuration
	featureFlag config.FeatureFlagConfig
	resolver    config.ResolverConfig
	auditCfg    config.AuditConfig

	// Set by mapHandlers, drained on shutdown.
	audit auditlog.UseCase
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server Configuration
	Host string
	Port int
	Mode string

	CORSAllowedOrigins []string

	// Database Configuration
	PostgresDB *sql.DB
	Redis      pkgRedis.IRedis

	// Authentication & Security Configuration
	JWTManager scope.Manager

	// Recipient Resolution Configuration
	FeatureFlag config.FeatureFlagConfig
	Resolver    config.ResolverConfig
	Audit       config.AuditConfig
}

// New creates a new HTTPServer instance with the provided configuration.
// It does not start any goroutines.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &HTTPServer{
		gin:  gin.New(),
		l:    l,
		host: cfg.Host,
		port: cfg.Port,
		mode: cfg.Mode,

		corsOrigins: cfg.CORSAllowedOrigins,
		registry:    registry,

		postgresDB: cfg.PostgresDB,
		redis:      cfg.Redis,

		jwtManager: cfg.JWTManager,

		featureFlag: cfg.FeatureFlag,
		resolver:    cfg.Resolver,
		auditCfg:    cfg.Audit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redis == nil {
		return errors.New("redis is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	return nil
}
