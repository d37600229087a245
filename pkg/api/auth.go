package api

import (
	"github.com/gin-gonic/gin"
)

// extractUser extracts the caller identity from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy) > "api-client"
func extractUser(c *gin.Context) string {
	if user := c.GetHeader("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.GetHeader("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.GetHeader("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}

// extractAPIKey resolves the gateway API key: a per-request X-Gateway-Key
// header wins over the server-wide default.
func (s *Server) extractAPIKey(c *gin.Context) string {
	if key := c.GetHeader("X-Gateway-Key"); key != "" {
		return key
	}
	return s.defaultAPIKey
}
