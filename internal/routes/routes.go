// Package routes defines HTTP routes for the ticket service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/helpdesk-platform/ticket-service/internal/config"
	"github.com/helpdesk-platform/ticket-service/internal/handlers"
	"github.com/helpdesk-platform/ticket-service/internal/health"
	"github.com/helpdesk-platform/ticket-service/internal/metrics"
	"github.com/helpdesk-platform/ticket-service/internal/middleware"
	"github.com/helpdesk-platform/ticket-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	ticketHandler *handlers.TicketHandler,
	tokens service.TokenService,
	cfg *config.Config,
	m *metrics.Metrics,
	healthAgg *health.Aggregator,
) {
	// Credentials ride in a cookie, so state-changing browser requests must
	// pass origin validation. Enabled when an origin allow-list is
	// configured; otherwise non-browser clients could never POST.
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(middleware.CSRF(middleware.CSRFConfig{AllowedOrigins: cfg.AllowedOrigins}))
	}
	router.Use(middleware.RequestMetrics(m))

	// Health check
	router.GET("/health", healthAgg.Handler())
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireSession := middleware.RequireSession(tokens, handlers.SessionCookieName)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/profile", requireSession, authHandler.Profile)
		auth.GET("/verify", requireSession, authHandler.Verify)
	}

	tickets := v1.Group("/tickets", requireSession)
	{
		tickets.GET("", ticketHandler.ListByAuthor)
		tickets.GET("/internalsec", ticketHandler.ListByInternalSector)
		tickets.GET("/dependency", ticketHandler.ListByDependency)
		tickets.POST("", ticketHandler.Create)
	}
}
