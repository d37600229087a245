package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deepcouncil/made/pkg/engine"
	"github.com/deepcouncil/made/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("prompt", "required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "prompt",
		},
		{
			name:       "missing gateway key",
			err:        engine.ErrNoAPIKey,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Gateway API Key not configured",
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "resource not found",
		},
		{
			name:       "unsupported attachment type",
			err:        fmt.Errorf("%w: archive", services.ErrUnsupportedType),
			wantStatus: http.StatusBadRequest,
			wantBody:   "archive",
		},
		{
			name:       "oversized attachment",
			err:        fmt.Errorf("%w: big.txt", services.ErrAttachmentTooLarge),
			wantStatus: http.StatusBadRequest,
			wantBody:   "big.txt",
		},
		{
			name:       "unexpected error",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c := newTestContext(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))
			mapServiceError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestPathID(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		c := newTestContext(w, httptest.NewRequest(http.MethodGet, "/api/history/7", nil))
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		id, ok := pathID(c)
		assert.True(t, ok)
		assert.Equal(t, 7, id)
	})

	t.Run("rejects non-numeric and non-positive ids", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-3", ""} {
			w := httptest.NewRecorder()
			c := newTestContext(w, httptest.NewRequest(http.MethodGet, "/api/history/x", nil))
			c.Params = gin.Params{{Key: "id", Value: raw}}

			_, ok := pathID(c)
			assert.False(t, ok, raw)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	})
}
