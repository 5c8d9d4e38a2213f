package constants

import (
	"path/filepath"
	"strings"
)

// MaxVideoUploadSize is the cap enforced on the multipart video field.
const MaxVideoUploadSize = 100 * 1024 * 1024 // 100MB

// videoContentTypes maps accepted video extensions to their MIME type.
var videoContentTypes = map[string]string{
	".webm": "video/webm",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
}

// DetectVideoContentType returns the MIME type for a recognized video
// filename, or "" when the extension is not an accepted video format.
func DetectVideoContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return videoContentTypes[ext]
}
