package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// UploadResult carries the public locations of a stored blob.
type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Key          string `json:"-"`
}

// Uploader stores uploaded media blobs and returns their public URLs.
type Uploader interface {
	// Upload stores the blob under a generated key and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (*UploadResult, error)
}

// objectKey builds a collision-free storage key that keeps the original
// file extension.
func objectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s%s%s", prefix, uuid.New(), ext)
}

// isImage reports whether the content type is a thumbnail-able image.
func isImage(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif":
		return true
	}
	return false
}
