// Package server exposes the mirrored board to display devices: JSON
// views for the kitchen kanban and the pickup TV, operator actions
// that forward to the backend, and a WebSocket fanout that tells
// displays when to refetch.
package server

import (
	"context"
	"net/http"

	"cozinha/internal/mirror"
	"cozinha/internal/models"
	"cozinha/internal/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Backend is the slice of the upstream client the server forwards
// operator actions through.
type Backend interface {
	UpdateStatus(ctx context.Context, orderID int, status models.Status) error
	SetAntecipado(ctx context.Context, orderID int, antecipado bool) error
}

// Server handles display-facing HTTP and WebSocket traffic.
type Server struct {
	router    *gin.Engine
	mirror    *mirror.Mirror
	backend   Backend
	monitor   *monitoring.Monitor
	hub       *Hub
	logger    *zap.SugaredLogger
	jwtSecret string
}

// NewServer creates a display server around the given mirror. An empty
// jwtSecret disables auth on operator actions (local setups).
func NewServer(m *mirror.Mirror, backend Backend, monitor *monitoring.Monitor, jwtSecret string, logger *zap.SugaredLogger) *Server {
	s := &Server{
		router:    gin.Default(),
		mirror:    m,
		backend:   backend,
		monitor:   monitor,
		hub:       NewHub(logger),
		logger:    logger,
		jwtSecret: jwtSecret,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/ws", s.handleWebSocket)

	api := s.router.Group("/api")
	{
		api.GET("/board", s.handleBoard)
		api.GET("/tv", s.handleTV)
		api.GET("/summary", s.handleSummary)
		api.GET("/categories", s.handleCategories)
		api.GET("/stats", s.handleStats)
	}

	ops := s.router.Group("/api", AuthMiddleware(s.jwtSecret))
	{
		ops.POST("/orders/:id/advance", s.handleAdvance)
		ops.POST("/orders/:id/retreat", s.handleRetreat)
		ops.PATCH("/orders/:id/antecipado", s.handleAntecipado)
	}
}

// Router returns the gin router, mainly for tests and the main wiring.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the fanout loop feeding connected displays. Blocks until
// ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	changes, cancel := s.mirror.Subscribe()
	defer cancel()
	s.hub.Run(ctx, changes)
}
