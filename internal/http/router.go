package http

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"crud_api/internal/config"
	"crud_api/internal/http/controller"
	"crud_api/internal/http/middleware"
)

func NewRouter(cfg *config.Config, handler *controller.Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.ZapLogger(logger),
		middleware.ZapRecovery(logger),
		middleware.Metrics(),
		otelgin.Middleware(cfg.OTELServiceName),
		cors.New(corsConfig(cfg.CORSAllowOrigins)),
	)

	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/sse/logs/:level", handler.StreamLogs)

	api := router.Group(cfg.APIPrefix)
	api.POST("/logs/publish", handler.PublishLog)
	handler.RegisterResources(api)

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
