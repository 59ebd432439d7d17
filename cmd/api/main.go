package main

import (
	"context"
	"fmt"

	"recipient-srv/config"
	"recipient-srv/config/postgre"
	"recipient-srv/config/redis"
	"recipient-srv/internal/httpserver"
	"recipient-srv/pkg/log"
	"recipient-srv/pkg/scope"
)

// @title Recipient Service API
// @description Resolves the final recipient list of a notification trigger.
// @version 1
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis
	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect(redisClient)
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Initialize JWT manager
	jwtManager, err := scope.New(cfg.JWT.SecretKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host: cfg.HTTPServer.Host,
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		CORSAllowedOrigins: cfg.HTTPServer.CORSAllowedOrigins,

		// Database Configuration
		PostgresDB: postgresDB,
		Redis:      redisClient,

		// Authentication & Security Configuration
		JWTManager: jwtManager,

		// Recipient Resolution Configuration
		FeatureFlag: cfg.FeatureFlag,
		Resolver:    cfg.Resolver,
		Audit:       cfg.Audit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
