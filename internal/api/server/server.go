package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ticket-marketplace/internal/api/middleware"
	"github.com/feral-file/ticket-marketplace/internal/api/rest"
	"github.com/feral-file/ticket-marketplace/internal/logger"
	"github.com/feral-file/ticket-marketplace/internal/marketplace"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxUploadBytes int64
	CORSOrigins    []string
	Auth           middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   marketplace.Executor
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, exec marketplace.Executor) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() (*gin.Engine, error) {
	authenticator, err := middleware.NewAuthenticator(s.config.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}
	if !authenticator.Enabled() {
		logger.Warn("No JWT public key or API key configured, ticket writes will be rejected")
	}

	router := gin.New()
	router.MaxMultipartMemory = s.config.MaxUploadBytes

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.CORSOrigins))

	rest.SetupRoutes(router, rest.NewHandler(s.executor, s.config.MaxUploadBytes), authenticator)

	return router, nil
}

// Start initializes and starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := s.Router()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.InfoCtx(ctx, "Starting API server", zap.String("address", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.InfoCtx(ctx, "Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
