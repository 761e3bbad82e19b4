package storage

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// thumbnailMaxEdge bounds the longest edge of generated thumbnails.
const thumbnailMaxEdge = 320

// makeThumbnail decodes an image and re-encodes a bounded JPEG thumbnail.
func makeThumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fit(img, thumbnailMaxEdge, thumbnailMaxEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

// thumbnailKey derives the storage key of a thumbnail from its source key.
func thumbnailKey(key string) string {
	return key + ".thumb.jpg"
}
