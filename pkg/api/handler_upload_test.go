package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcouncil/made/pkg/models"
	"github.com/deepcouncil/made/pkg/upload"
)

type multipartFile struct {
	field    string
	filename string
	mimeType string
	data     []byte
}

func multipartRequest(t *testing.T, files []multipartFile) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.mimeType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadHandler(t *testing.T) {
	t.Run("stages validated files and returns tokens", func(t *testing.T) {
		s := &Server{staging: upload.NewStaging(time.Hour)}
		req := multipartRequest(t, []multipartFile{
			{field: "files", filename: "notes.txt", mimeType: "text/plain", data: []byte("hello")},
			{field: "files", filename: "chart.png", mimeType: "image/png", data: []byte{0x89, 0x50}},
		})
		req.Header.Set("X-Forwarded-User", "alice")

		w := httptest.NewRecorder()
		s.uploadHandler(newTestContext(w, req))

		require.Equal(t, http.StatusOK, w.Code)
		var results []models.UploadResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		require.Len(t, results, 2)
		assert.Equal(t, "notes.txt", results[0].Filename)
		assert.Equal(t, "text", results[0].Type)
		assert.Equal(t, int64(5), results[0].Size)
		assert.Equal(t, "image", results[1].Type)
		assert.NotEqual(t, results[0].ID, results[1].ID)
		assert.Equal(t, 2, s.staging.Len())

		// The token belongs to the uploading user.
		entry, err := s.staging.Take(results[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", entry.UserID)
		assert.Equal(t, []byte("hello"), entry.FileData)
	})

	t.Run("rejects unclassifiable mime types", func(t *testing.T) {
		s := &Server{staging: upload.NewStaging(time.Hour)}
		req := multipartRequest(t, []multipartFile{
			{field: "files", filename: "a.zip", mimeType: "application/zip", data: []byte{1}},
		})

		w := httptest.NewRecorder()
		s.uploadHandler(newTestContext(w, req))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unsupported file type: application/zip")
		assert.Zero(t, s.staging.Len())
	})

	t.Run("rejects oversized files by name", func(t *testing.T) {
		s := &Server{staging: upload.NewStaging(time.Hour)}
		req := multipartRequest(t, []multipartFile{
			{field: "files", filename: "big.txt", mimeType: "text/plain", data: make([]byte, 5<<20+1)},
		})

		w := httptest.NewRecorder()
		s.uploadHandler(newTestContext(w, req))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "File too large: big.txt")
		assert.Zero(t, s.staging.Len())
	})

	t.Run("rejects an empty form", func(t *testing.T) {
		s := &Server{staging: upload.NewStaging(time.Hour)}
		req := multipartRequest(t, []multipartFile{
			{field: "other", filename: "x.txt", mimeType: "text/plain", data: []byte("x")},
		})

		w := httptest.NewRecorder()
		s.uploadHandler(newTestContext(w, req))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "no files provided")
	})
}
