package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMime(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/png", "image"},
		{"image/svg+xml", "image"},
		{"application/pdf", "pdf"},
		{"text/plain", "text"},
		{"application/json", "text"},
		{"text/x-python", "text"},
		{"application/octet-stream", "text"},
		{"audio/mpeg", "audio"},
		{"video/mp4", "video"},
		{"application/zip", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMime(tt.mime))
		})
	}
}

func TestSizeLimits(t *testing.T) {
	t.Run("limits per category", func(t *testing.T) {
		assert.Equal(t, int64(10<<20), MaxSizeFor("image"))
		assert.Equal(t, int64(20<<20), MaxSizeFor("pdf"))
		assert.Equal(t, int64(5<<20), MaxSizeFor("text"))
		assert.Equal(t, int64(25<<20), MaxSizeFor("audio"))
		assert.Equal(t, int64(50<<20), MaxSizeFor("video"))
		assert.Zero(t, MaxSizeFor("archive"))
	})

	t.Run("within limit is inclusive", func(t *testing.T) {
		assert.True(t, WithinLimit("image", 10<<20))
		assert.False(t, WithinLimit("image", 10<<20+1))
		assert.False(t, WithinLimit("archive", 1))
	})

	t.Run("valid file types", func(t *testing.T) {
		for _, ft := range []string{"image", "pdf", "text", "audio", "video", "file"} {
			assert.True(t, ValidFileType(ft), ft)
		}
		assert.False(t, ValidFileType("archive"))
	})
}
