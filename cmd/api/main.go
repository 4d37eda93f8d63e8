// Package main is the entry point for the ticket service.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-platform/ticket-service/internal/config"
	"github.com/helpdesk-platform/ticket-service/internal/handlers"
	"github.com/helpdesk-platform/ticket-service/internal/health"
	"github.com/helpdesk-platform/ticket-service/internal/metrics"
	"github.com/helpdesk-platform/ticket-service/internal/models"
	"github.com/helpdesk-platform/ticket-service/internal/repository"
	"github.com/helpdesk-platform/ticket-service/internal/routes"
	"github.com/helpdesk-platform/ticket-service/internal/service"
	"github.com/helpdesk-platform/ticket-service/pkg/database"
	"github.com/helpdesk-platform/ticket-service/pkg/redis"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.InternalSector{},
		&models.Dependency{},
		&models.UserRole{},
		&models.UserInternalSector{},
		&models.Ticket{},
		&models.ActionLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	actionLogRepo := repository.NewActionLogRepository(db)

	// Initialize services
	tokenService, err := service.NewTokenService(cfg.TokenSecret, cfg.TokenExpiry)
	if err != nil {
		log.Fatal("Failed to create token service:", err)
	}
	authService := service.NewAuthService(userRepo, tokenService, redisClient)
	ticketService := service.NewTicketService(ticketRepo)

	// Initialize metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize health checks
	healthAgg := health.NewAggregator(cfg.HealthTimeout())
	healthAgg.Register("postgres", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
	healthAgg.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	// Initialize handlers
	cookies := handlers.NewCookieHelper(cfg.Cookie)
	authHandler := handlers.NewAuthHandler(authService, cookies, actionLogRepo, m, cfg.TokenExpiry)
	ticketHandler := handlers.NewTicketHandler(ticketService)

	// Setup router
	router := gin.Default()

	// Setup routes
	routes.Setup(router, authHandler, ticketHandler, tokenService, cfg, m, healthAgg)

	// Start server
	log.Printf("Starting ticket service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
