package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "recipient-srv/docs"

	auditRepo "recipient-srv/internal/auditlog/repository/postgre"
	auditUC "recipient-srv/internal/auditlog/usecase"
	flagUC "recipient-srv/internal/featureflag/usecase"
	"recipient-srv/internal/middleware"
	recipientHTTP "recipient-srv/internal/recipient/delivery/http"
	"recipient-srv/internal/recipient/metrics"
	recipientUC "recipient-srv/internal/recipient/usecase"
	topicRepo "recipient-srv/internal/topic/repository/postgre"
)

const (
	Api = "/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.CORS(srv.corsOrigins))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories
	topicRepository := topicRepo.New(srv.l, srv.postgresDB)
	auditRepository := auditRepo.New(srv.l, srv.postgresDB)

	// Usecases
	flagUsecase := flagUC.New(srv.l, srv.redis, flagUC.Config{
		TopicNotificationEnabled: srv.featureFlag.IsTopicNotificationEnabled,
	})
	srv.audit = auditUC.New(srv.l, auditRepository, auditUC.Config{
		Enabled:      srv.auditCfg.Enabled,
		WriteTimeout: srv.auditCfg.WriteTimeout,
	})
	recipientUsecase := recipientUC.New(srv.l, topicRepository, flagUsecase, srv.audit, metrics.NewWithRegisterer(srv.registry), recipientUC.Config{
		TopicLookupConcurrency: srv.resolver.TopicLookupConcurrency,
	})

	// Handlers
	mw := middleware.New(srv.l, srv.jwtManager)
	recipientHandler := recipientHTTP.New(srv.l, recipientUsecase)

	api := srv.gin.Group(Api)
	recipientHandler.RegisterRoutes(api, mw)

	return nil
}
