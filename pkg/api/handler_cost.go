package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepcouncil/made/pkg/models"
)

// conversationCostHandler handles GET /api/conversations/:id/cost.
func (s *Server) conversationCostHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	total, err := s.conversations.TotalCost(c.Request.Context(), extractUser(c), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ConversationCostResponse{
		ConversationID: id,
		TotalCost:      total,
	})
}

// updateNodeCostHandler handles PUT /api/nodes/:id/cost, the post-hoc cost
// correction for gateways that report billing late.
func (s *Server) updateNodeCostHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateNodeCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.nodes.UpdateNodeCost(c.Request.Context(), extractUser(c), id, req.ActualCost)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	view := models.NewNodeView(n, nil)
	c.JSON(http.StatusOK, view)
}
