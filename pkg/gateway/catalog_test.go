package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"id": "vendor/vision",
					"architecture": map[string]any{
						"input_modalities": []string{"text", "image", "file"},
					},
				},
				{
					"id": "vendor/text-only",
					"architecture": map[string]any{
						"input_modalities": []string{"text"},
					},
				},
			},
		})
	}))
}

func TestUnsupportedAttachments(t *testing.T) {
	ctx := context.Background()

	image := Attachment{Filename: "a.png", FileType: "image"}
	pdf := Attachment{Filename: "b.pdf", FileType: "pdf"}
	video := Attachment{Filename: "c.mp4", FileType: "video"}

	t.Run("no cached catalog emits no warnings", func(t *testing.T) {
		c := NewClient("http://unused.invalid")
		assert.Nil(t, c.UnsupportedAttachments("alice", "vendor/vision", []Attachment{image}))
	})

	t.Run("warnings per unsupported file type after refresh", func(t *testing.T) {
		srv := catalogServer(t)
		defer srv.Close()

		c := NewClient(srv.URL)
		require.NoError(t, c.RefreshCatalog(ctx, "sk", "alice"))

		// Vision model accepts images and files; video is rejected.
		warnings := c.UnsupportedAttachments("alice", "vendor/vision", []Attachment{image, pdf, video})
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "vendor/vision does not support video attachments")

		// Text-only model rejects both categories, one warning each.
		warnings = c.UnsupportedAttachments("alice", "vendor/text-only", []Attachment{image, image, pdf})
		require.Len(t, warnings, 2)
	})

	t.Run("unknown model in cached catalog emits no warnings", func(t *testing.T) {
		srv := catalogServer(t)
		defer srv.Close()

		c := NewClient(srv.URL)
		require.NoError(t, c.RefreshCatalog(ctx, "sk", "alice"))
		assert.Nil(t, c.UnsupportedAttachments("alice", "vendor/unknown", []Attachment{image}))
	})

	t.Run("catalog is per user", func(t *testing.T) {
		srv := catalogServer(t)
		defer srv.Close()

		c := NewClient(srv.URL)
		require.NoError(t, c.RefreshCatalog(ctx, "sk", "alice"))
		assert.Nil(t, c.UnsupportedAttachments("bob", "vendor/text-only", []Attachment{image}))
	})

	t.Run("invalidate drops the cached entry", func(t *testing.T) {
		srv := catalogServer(t)
		defer srv.Close()

		c := NewClient(srv.URL)
		require.NoError(t, c.RefreshCatalog(ctx, "sk", "alice"))
		require.NotEmpty(t, c.UnsupportedAttachments("alice", "vendor/text-only", []Attachment{image}))

		c.InvalidateCatalog("alice")
		assert.Nil(t, c.UnsupportedAttachments("alice", "vendor/text-only", []Attachment{image}))
	})
}

func TestCapabilitiesOf(t *testing.T) {
	t.Run("missing architecture means text only", func(t *testing.T) {
		caps := capabilitiesOf(CatalogModel{ID: "m"})
		assert.True(t, caps.Text)
		assert.False(t, caps.Image)
	})

	t.Run("modalities map onto capability flags", func(t *testing.T) {
		caps := capabilitiesOf(CatalogModel{
			ID:           "m",
			Architecture: &Architecture{InputModalities: []string{"image", "audio", "video", "file", "text"}},
		})
		assert.True(t, caps.Image)
		assert.True(t, caps.Audio)
		assert.True(t, caps.Video)
		assert.True(t, caps.File)
		assert.True(t, caps.Text)
	})
}
