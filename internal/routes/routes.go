// Package routes defines HTTP routes for the auth service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spring-security-spring-cloud/auth-service/internal/config"
	"github.com/spring-security-spring-cloud/auth-service/internal/handlers"
	"github.com/spring-security-spring-cloud/auth-service/internal/metrics"
	"github.com/spring-security-spring-cloud/auth-service/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, authHandler *handlers.AuthHandler, healthHandler *handlers.HealthHandler, cfg *config.Config, metricsCollector *metrics.Metrics) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Security(middleware.SecurityConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: "GET,POST,OPTIONS",
		AllowedHeaders: "Content-Type,Authorization",
	}))
	if metricsCollector != nil {
		router.Use(metricsCollector.Handler())
	}

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
