package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepcouncil/made/pkg/engine"
)

// listModelsHandler handles GET /api/models: the gateway's model catalog,
// passed through for council configuration UIs.
func (s *Server) listModelsHandler(c *gin.Context) {
	apiKey := s.extractAPIKey(c)
	if apiKey == "" {
		mapServiceError(c, engine.ErrNoAPIKey)
		return
	}

	catalog, err := s.gateway.ListModels(c.Request.Context(), apiKey)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": catalog})
}
