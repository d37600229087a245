// Package upload provides the ephemeral staging area for uploaded files and
// the MIME classification and size-limit tables shared with the artifact
// store.
package upload

// Per-type size limits in bytes.
const (
	MaxImageSize = 10 << 20
	MaxPDFSize   = 20 << 20
	MaxTextSize  = 5 << 20
	MaxAudioSize = 25 << 20
	MaxVideoSize = 50 << 20
	// Generic files fall back to the PDF limit.
	MaxFileSize = 20 << 20
)

// maxSizeByType maps a file type category to its size limit.
var maxSizeByType = map[string]int64{
	"image": MaxImageSize,
	"pdf":   MaxPDFSize,
	"text":  MaxTextSize,
	"audio": MaxAudioSize,
	"video": MaxVideoSize,
	"file":  MaxFileSize,
}

// allowedMimeTypes maps known MIME types to their file type category.
var allowedMimeTypes = map[string]string{
	// Images
	"image/jpeg":    "image",
	"image/png":     "image",
	"image/gif":     "image",
	"image/webp":    "image",
	"image/svg+xml": "image",

	// PDF
	"application/pdf": "pdf",

	// Plain text, markdown, code, config and data files
	"text/plain":               "text",
	"text/markdown":            "text",
	"text/x-markdown":          "text",
	"text/x-python":            "text",
	"text/x-java":              "text",
	"text/x-c":                 "text",
	"text/x-c++":               "text",
	"text/javascript":          "text",
	"application/javascript":   "text",
	"application/x-javascript": "text",
	"text/typescript":          "text",
	"application/typescript":   "text",
	"text/html":                "text",
	"text/css":                 "text",
	"application/json":         "text",
	"application/xml":          "text",
	"text/xml":                 "text",
	"application/yaml":         "text",
	"text/yaml":                "text",
	"application/x-yaml":       "text",
	"text/x-yaml":              "text",
	"text/csv":                 "text",
	"application/csv":          "text",
	"text/x-log":               "text",
	// Often text files in practice
	"application/octet-stream": "text",

	// Audio
	"audio/mpeg": "audio",
	"audio/wav":  "audio",
	"audio/ogg":  "audio",

	// Video
	"video/mp4":  "video",
	"video/webm": "video",
}

// ClassifyMime returns the file type category for a MIME type, or "" when the
// MIME type is not accepted.
func ClassifyMime(mimeType string) string {
	return allowedMimeTypes[mimeType]
}

// MaxSizeFor returns the size limit for a file type category; unknown
// categories return 0 (nothing fits).
func MaxSizeFor(fileType string) int64 {
	return maxSizeByType[fileType]
}

// ValidFileType reports whether the category is one the store accepts.
func ValidFileType(fileType string) bool {
	_, ok := maxSizeByType[fileType]
	return ok
}

// WithinLimit reports whether size fits the category's limit.
func WithinLimit(fileType string, size int64) bool {
	limit, ok := maxSizeByType[fileType]
	return ok && size <= limit
}
