package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deepcouncil/made/pkg/models"
)

// pathID parses the :id path parameter; on failure it writes a 400 and
// returns false.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// listHistoryHandler handles GET /api/history.
func (s *Server) listHistoryHandler(c *gin.Context) {
	conversations, err := s.conversations.List(c.Request.Context(), extractUser(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	views := make([]models.ConversationView, 0, len(conversations))
	for _, conv := range conversations {
		views = append(views, models.NewConversationView(conv))
	}
	c.JSON(http.StatusOK, views)
}

// getHistoryHandler handles GET /api/history/:id: the conversation plus its
// full node tree with attachment metadata, in creation order.
func (s *Server) getHistoryHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	userID := extractUser(c)

	conv, err := s.conversations.GetOwned(ctx, userID, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	nodes, err := s.nodes.ListNodes(ctx, conv.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	views := make([]models.NodeView, 0, len(nodes))
	for _, n := range nodes {
		attachments, err := s.nodes.AttachmentsOf(ctx, n.ID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		views = append(views, models.NewNodeView(n, attachments))
	}

	c.JSON(http.StatusOK, models.HistoryDetailResponse{
		Conversation: models.NewConversationView(conv),
		Nodes:        views,
	})
}

// deleteConversationHandler handles DELETE /api/conversations/:id.
func (s *Server) deleteConversationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.conversations.Delete(c.Request.Context(), extractUser(c), id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
