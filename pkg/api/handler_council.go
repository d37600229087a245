package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepcouncil/made/pkg/models"
)

// councilRunHandler handles POST /api/council/run. Setup failures surface as
// HTTP errors; once the stream opens, failures are delivered in-band.
func (s *Server) councilRunHandler(c *gin.Context) {
	var req models.CouncilRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := s.coordinator.RunCouncil(
		c.Request.Context(), extractUser(c), s.extractAPIKey(c), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	streamEvents(c, events)
}

// superChatHandler handles POST /api/superchat/chat.
func (s *Server) superChatHandler(c *gin.Context) {
	var req models.SuperChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := s.coordinator.RunSuperChat(
		c.Request.Context(), extractUser(c), s.extractAPIKey(c), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	streamEvents(c, events)
}
