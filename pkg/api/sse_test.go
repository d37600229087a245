package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deepcouncil/made/pkg/engine"
)

func TestStreamEvents(t *testing.T) {
	t.Run("frames each event as a data record", func(t *testing.T) {
		events := make(chan engine.Event, 3)
		events <- engine.Event{Type: engine.EventStart, ConversationID: 7}
		events <- engine.Event{Type: engine.EventStatus, Message: "Council members are researching..."}
		events <- engine.Event{Type: engine.EventDone}
		close(events)

		w := httptest.NewRecorder()
		c := newTestContext(w, httptest.NewRequest(http.MethodPost, "/api/council/run", nil))
		streamEvents(c, events)

		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Equal(t, http.StatusOK, w.Code)
		want := `data: {"type":"start","conversation_id":7}` + "\n\n" +
			`data: {"type":"status","message":"Council members are researching..."}` + "\n\n" +
			`data: {"type":"done"}` + "\n\n"
		assert.Equal(t, want, w.Body.String())
	})

	t.Run("drains without writing after disconnect", func(t *testing.T) {
		events := make(chan engine.Event, 2)
		events <- engine.Event{Type: engine.EventStart, ConversationID: 1}
		events <- engine.Event{Type: engine.EventDone}
		close(events)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodPost, "/api/council/run", nil).WithContext(ctx)

		w := httptest.NewRecorder()
		c := newTestContext(w, req)
		// Must return despite the dead client, with the channel fully drained.
		streamEvents(c, events)

		assert.Empty(t, w.Body.String())
		_, open := <-events
		assert.False(t, open)
	})
}
