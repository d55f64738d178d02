package service

import (
	"path/filepath"
	"strings"
)

const octetStream = "application/octet-stream"

// downloadTypes maps file extensions to MIME types on the download paths
// (direct and shared). Anything else streams as a generic binary.
var downloadTypes = map[string]string{
	".pdf":  "application/pdf",
	".xls":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// previewTypes is the wider table used by the preview path. Extensions that
// fall through to the octet-stream default are considered not previewable.
var previewTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".txt":  "text/plain",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".mp4":  "video/mp4",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".zip":  "application/zip",
	".rar":  "application/vnd.rar",
	".csv":  "text/csv",
}

func lookupType(table map[string]string, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := table[ext]; ok {
		return ct
	}
	return octetStream
}

// DownloadContentType infers the MIME type served on download paths from the
// original filename's extension, case-insensitively.
func DownloadContentType(filename string) string {
	return lookupType(downloadTypes, filename)
}

// PreviewContentType infers the MIME type for the preview path. Returning
// the octet-stream fallback means the type is not previewable.
func PreviewContentType(filename string) string {
	return lookupType(previewTypes, filename)
}
