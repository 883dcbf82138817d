package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memo-whisper/internal/api/middleware"
	"memo-whisper/internal/api/v1/handlers"
	"memo-whisper/internal/app/config"
	"memo-whisper/internal/app/metrics"
	"memo-whisper/internal/app/repository"
)

// Server is the viewer interface: a read path over the ledger plus the
// idempotent soft-delete endpoint.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// New creates the viewer server. It shares the caller's ledger handle; it
// never opens its own.
func New(cfg *config.Config, db repository.RecordingDAO, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	h := handlers.NewRecordingHandler(db, logger)

	api := router.Group("/api/v1")
	{
		api.GET("/recordings", h.List)
		api.GET("/recordings/:id", h.Get)
		api.POST("/recordings/:id/delete", h.Delete)
	}
	router.GET("/audio/:id", h.Audio)

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // audio streaming may outlive any fixed deadline
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting viewer server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
