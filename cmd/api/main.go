// Package main is the entry point for the auth service.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spring-security-spring-cloud/auth-service/internal/config"
	"github.com/spring-security-spring-cloud/auth-service/internal/database"
	"github.com/spring-security-spring-cloud/auth-service/internal/handlers"
	"github.com/spring-security-spring-cloud/auth-service/internal/metrics"
	"github.com/spring-security-spring-cloud/auth-service/internal/repository"
	"github.com/spring-security-spring-cloud/auth-service/internal/routes"
	"github.com/spring-security-spring-cloud/auth-service/internal/service"
)

// @title Auth Service API
// @version 1.0
// @description Username/password authentication service with role-based signup
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	if err := database.SeedRoles(db); err != nil {
		log.Fatal("Failed to seed role catalog: ", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, roleRepo, jwtService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Setup routes
	routes.Setup(router, authHandler, healthHandler, cfg, metrics.New())

	// Start server
	log.Printf("Starting auth service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
