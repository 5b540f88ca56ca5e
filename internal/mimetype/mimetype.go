// Package mimetype maps file extensions to response content types for
// the audio formats the service handles.
package mimetype

import (
	"mime"
	"path/filepath"
	"strings"
)

var byExt = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".aiff": "audio/aiff",
	".au":   "audio/basic",
	".json": "application/json",
}

// ForFile returns the MIME type for a filename based on its extension,
// falling back to application/octet-stream.
func ForFile(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := byExt[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		return mt
	}
	return "application/octet-stream"
}
