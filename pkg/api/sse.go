package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepcouncil/made/pkg/engine"
)

// streamEvents writes deliberation events as server-sent events, one
// "data: <json>" record per event, flushed immediately. After a client
// disconnect the channel is still drained so the deliberation goroutine can
// finish persisting in-flight artifacts.
func streamEvents(c *gin.Context, events <-chan engine.Event) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	writable := true
	for event := range events {
		if !writable {
			continue
		}
		select {
		case <-clientGone:
			writable = false
			continue
		default:
		}

		payload, err := json.Marshal(event)
		if err != nil {
			slog.Error("Failed to marshal stream event", "type", event.Type, "error", err)
			continue
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
			writable = false
			continue
		}
		c.Writer.Flush()
	}
}
