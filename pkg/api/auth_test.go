package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestContext(w *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestExtractUser(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "forwarded user wins",
			headers:  map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "a@example.com", "X-Remote-User": "remote"},
			expected: "alice",
		},
		{
			name:     "email before remote user",
			headers:  map[string]string{"X-Forwarded-Email": "a@example.com", "X-Remote-User": "remote"},
			expected: "a@example.com",
		},
		{
			name:     "remote user",
			headers:  map[string]string{"X-Remote-User": "remote"},
			expected: "remote",
		},
		{
			name:     "no headers falls back to api-client",
			headers:  nil,
			expected: "api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := newTestContext(httptest.NewRecorder(), req)
			assert.Equal(t, tt.expected, extractUser(c))
		})
	}
}

func TestExtractAPIKey(t *testing.T) {
	s := &Server{defaultAPIKey: "server-default"}

	t.Run("header overrides the default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/council/run", nil)
		req.Header.Set("X-Gateway-Key", "per-request")
		c := newTestContext(httptest.NewRecorder(), req)
		assert.Equal(t, "per-request", s.extractAPIKey(c))
	})

	t.Run("falls back to the server default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/council/run", nil)
		c := newTestContext(httptest.NewRecorder(), req)
		assert.Equal(t, "server-default", s.extractAPIKey(c))
	})
}
