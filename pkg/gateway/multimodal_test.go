package gateway

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMessages(t *testing.T) {
	messages := []Message{
		{Role: "user", Content: "describe this"},
		{Role: "assistant", Content: "sure"},
	}

	t.Run("no attachments passes through", func(t *testing.T) {
		out := encodeMessages(messages, nil)
		assert.Equal(t, messages, out)
	})

	t.Run("user message becomes content array, text part first", func(t *testing.T) {
		out := encodeMessages(messages, []Attachment{
			{Filename: "a.png", FileType: "image", MimeType: "image/png", Data: []byte{1, 2}},
			{Filename: "b.pdf", FileType: "pdf", MimeType: "application/pdf", Data: []byte{3}},
		})

		parts, ok := out[0].Content.([]Part)
		require.True(t, ok)
		require.Len(t, parts, 3)
		assert.Equal(t, "text", parts[0].Type)
		assert.Equal(t, "describe this", parts[0].Text)
		assert.Equal(t, "image_url", parts[1].Type)
		assert.Equal(t, "file", parts[2].Type)

		// Non-user messages are untouched.
		assert.Equal(t, "sure", out[1].Content)
	})
}

func TestEncodeAttachment(t *testing.T) {
	data := []byte("payload")
	b64 := base64.StdEncoding.EncodeToString(data)

	t.Run("image becomes data uri image_url", func(t *testing.T) {
		p := encodeAttachment(Attachment{FileType: "image", MimeType: "image/png", Data: data})
		assert.Equal(t, "image_url", p.Type)
		require.NotNil(t, p.ImageURL)
		assert.Equal(t, "data:image/png;base64,"+b64, p.ImageURL.URL)
	})

	t.Run("pdf and generic file carry filename and data uri", func(t *testing.T) {
		for _, ft := range []string{"pdf", "file"} {
			p := encodeAttachment(Attachment{
				Filename: "doc.pdf", FileType: ft, MimeType: "application/pdf", Data: data,
			})
			assert.Equal(t, "file", p.Type)
			require.NotNil(t, p.File)
			assert.Equal(t, "doc.pdf", p.File.Filename)
			assert.Equal(t, "data:application/pdf;base64,"+b64, p.File.FileData)
		}
	})

	t.Run("audio uses raw base64 and mime subtype as format", func(t *testing.T) {
		p := encodeAttachment(Attachment{FileType: "audio", MimeType: "audio/mpeg", Data: data})
		assert.Equal(t, "input_audio", p.Type)
		require.NotNil(t, p.InputAudio)
		assert.Equal(t, b64, p.InputAudio.Data)
		assert.Equal(t, "mpeg", p.InputAudio.Format)
	})

	t.Run("video becomes data uri video_url", func(t *testing.T) {
		p := encodeAttachment(Attachment{FileType: "video", MimeType: "video/mp4", Data: data})
		assert.Equal(t, "video_url", p.Type)
		require.NotNil(t, p.VideoURL)
		assert.Equal(t, "data:video/mp4;base64,"+b64, p.VideoURL.URL)
	})

	t.Run("text is inlined verbatim", func(t *testing.T) {
		p := encodeAttachment(Attachment{FileType: "text", MimeType: "text/plain", Data: []byte("hello")})
		assert.Equal(t, "text", p.Type)
		assert.Equal(t, "hello", p.Text)
	})
}

func TestMimeSubtype(t *testing.T) {
	assert.Equal(t, "wav", mimeSubtype("audio/wav"))
	assert.Equal(t, "noslash", mimeSubtype("noslash"))
}
