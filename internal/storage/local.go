package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// localUploader implements Uploader against the local filesystem. Used when
// S3 is disabled, mirroring the blob API so handlers need no branching.
type localUploader struct {
	dir       string
	publicURL string
	logger    zerolog.Logger
}

// NewLocalUploader creates an uploader that writes into dir and serves
// files from publicURL.
func NewLocalUploader(dir, publicURL string, logger zerolog.Logger) (Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	logger = logger.With().Str("component", "local-uploader").Logger()
	logger.Info().Str("dir", dir).Msg("local uploader initialised")

	return &localUploader{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}, nil
}

// Upload writes the blob to the upload directory. Images additionally get a
// JPEG thumbnail written next to the original.
func (u *localUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (*UploadResult, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload body: %w", err)
	}

	key := objectKey("", filename)

	if err := os.WriteFile(filepath.Join(u.dir, key), data, 0o644); err != nil {
		u.logger.Error().Err(err).Str("key", key).Msg("failed to write upload")
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	result := &UploadResult{
		URL: u.publicURL + "/" + key,
		Key: key,
	}

	if isImage(contentType) {
		thumb, err := makeThumbnail(data)
		if err != nil {
			u.logger.Warn().Err(err).Str("key", key).Msg("failed to generate thumbnail")
		} else {
			tkey := thumbnailKey(key)
			if err := os.WriteFile(filepath.Join(u.dir, tkey), thumb, 0o644); err != nil {
				u.logger.Warn().Err(err).Str("key", tkey).Msg("failed to write thumbnail")
			} else {
				result.ThumbnailURL = u.publicURL + "/" + tkey
			}
		}
	}

	u.logger.Debug().
		Str("key", key).
		Int("size", len(data)).
		Msg("blob stored locally")

	return result, nil
}
