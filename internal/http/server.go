// Package http provides the HTTP server and shared gin middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/invoices/internal/auth/http"
	authUseCase "github.com/allisson/invoices/internal/auth/usecase"
	"github.com/allisson/invoices/internal/config"
	invoiceHTTP "github.com/allisson/invoices/internal/invoice/http"
	"github.com/allisson/invoices/internal/metrics"
	userHTTP "github.com/allisson/invoices/internal/user/http"
)

// Server represents the main API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
	db     *sql.DB
}

// NewServer creates a new HTTP server with the full middleware chain and
// all API routes registered.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	sessionUseCase authUseCase.SessionUseCase,
	userHandler *userHTTP.UserHandler,
	invoiceHandler *invoiceHTTP.InvoiceHandler,
	metricsProvider *metrics.Provider,
) *Server {
	s := &Server{
		logger: logger,
		db:     db,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Authenticated API routes
	v1 := router.Group("/v1")
	v1.Use(authHTTP.AuthenticationMiddleware(sessionUseCase, logger))
	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	v1.POST("/onboarding", userHandler.OnboardHandler)
	v1.GET("/me", userHandler.MeHandler)

	v1.POST("/invoices", invoiceHandler.CreateHandler)
	v1.GET("/invoices", invoiceHandler.ListHandler)
	v1.GET("/invoices/:id", invoiceHandler.GetHandler)
	v1.PUT("/invoices/:id", invoiceHandler.UpdateHandler)
	v1.DELETE("/invoices/:id", invoiceHandler.DeleteHandler)
	v1.POST("/invoices/:id/paid", invoiceHandler.MarkPaidHandler)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness by checking the database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
