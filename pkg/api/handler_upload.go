package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepcouncil/made/pkg/models"
	"github.com/deepcouncil/made/pkg/upload"
)

// uploadHandler handles POST /api/upload. Files arrive as multipart parts
// under the "files" field; each validated file is staged and its opaque
// token returned. Tokens are consumed by a subsequent run call.
func (s *Server) uploadHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form: " + err.Error()})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	userID := extractUser(c)
	results := make([]models.UploadResult, 0, len(files))
	for _, header := range files {
		mimeType := header.Header.Get("Content-Type")
		fileType := upload.ClassifyMime(mimeType)
		if fileType == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported file type: %s", mimeType)})
			return
		}
		if !upload.WithinLimit(fileType, header.Size) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File too large: %s", header.Filename)})
			return
		}

		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload: " + err.Error()})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload: " + err.Error()})
			return
		}

		token := s.staging.Put(upload.Entry{
			Filename: header.Filename,
			FileType: fileType,
			MimeType: mimeType,
			FileData: data,
			FileSize: int64(len(data)),
			UserID:   userID,
		})
		results = append(results, models.UploadResult{
			ID:       token,
			Filename: header.Filename,
			Size:     int64(len(data)),
			Type:     fileType,
		})
	}

	c.JSON(http.StatusOK, results)
}

// getAttachmentHandler handles GET /api/attachments/:id, a binary download
// scoped to the conversation owner.
func (s *Server) getAttachmentHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := s.nodes.GetAttachment(c.Request.Context(), extractUser(c), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
	c.Data(http.StatusOK, a.MimeType, a.FileData)
}
