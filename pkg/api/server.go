// Package api exposes the deliberation HTTP surface: council and superchat
// SSE streams, upload staging, attachment downloads, history, and cost
// accounting.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deepcouncil/made/pkg/database"
	"github.com/deepcouncil/made/pkg/engine"
	"github.com/deepcouncil/made/pkg/gateway"
	"github.com/deepcouncil/made/pkg/services"
	"github.com/deepcouncil/made/pkg/upload"
	"github.com/deepcouncil/made/pkg/version"
)

// Server wires the service layer to the HTTP routes.
type Server struct {
	db            *database.Client
	conversations *services.ConversationService
	nodes         *services.NodeService
	coordinator   *engine.Coordinator
	gateway       *gateway.Client
	staging       *upload.Staging

	// defaultAPIKey serves requests that carry no X-Gateway-Key header.
	defaultAPIKey string

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	conversations *services.ConversationService,
	nodes *services.NodeService,
	coordinator *engine.Coordinator,
	gw *gateway.Client,
	staging *upload.Staging,
	defaultAPIKey string,
) *Server {
	return &Server{
		db:            db,
		conversations: conversations,
		nodes:         nodes,
		coordinator:   coordinator,
		gateway:       gw,
		staging:       staging,
		defaultAPIKey: defaultAPIKey,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	api := r.Group("/api")
	{
		api.POST("/council/run", s.councilRunHandler)
		api.POST("/superchat/chat", s.superChatHandler)
		api.POST("/upload", s.uploadHandler)
		api.GET("/attachments/:id", s.getAttachmentHandler)
		api.GET("/history", s.listHistoryHandler)
		api.GET("/history/:id", s.getHistoryHandler)
		api.GET("/conversations/:id/cost", s.conversationCostHandler)
		api.DELETE("/conversations/:id", s.deleteConversationHandler)
		api.PUT("/nodes/:id/cost", s.updateNodeCostHandler)
		api.GET("/models", s.listModelsHandler)
		api.GET("/healthz", s.healthHandler)
	}
	return r
}

// Start begins serving on addr and blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// healthHandler handles GET /api/healthz.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
