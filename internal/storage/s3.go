package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Uploader implements Uploader for AWS S3.
type s3Uploader struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3Uploader creates a new S3-backed media uploader.
func NewS3Uploader(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Uploader, error) {
	logger = logger.With().Str("component", "s3-uploader").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 uploader initialised")

	return &s3Uploader{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Upload stores the blob in S3. Images additionally get a JPEG thumbnail
// stored next to the original.
func (u *s3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (*UploadResult, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload body: %w", err)
	}

	key := objectKey(u.prefix, filename)

	if err := u.put(ctx, key, contentType, data); err != nil {
		return nil, err
	}

	result := &UploadResult{
		URL: u.publicURL(key),
		Key: key,
	}

	if isImage(contentType) {
		thumb, err := makeThumbnail(data)
		if err != nil {
			u.logger.Warn().Err(err).Str("key", key).Msg("failed to generate thumbnail")
		} else {
			tkey := thumbnailKey(key)
			if err := u.put(ctx, tkey, "image/jpeg", thumb); err != nil {
				u.logger.Warn().Err(err).Str("key", tkey).Msg("failed to store thumbnail")
			} else {
				result.ThumbnailURL = u.publicURL(tkey)
			}
		}
	}

	u.logger.Info().
		Str("key", key).
		Str("content_type", contentType).
		Int("size", len(data)).
		Msg("blob uploaded to S3")

	return result, nil
}

func (u *s3Uploader) put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		u.logger.Error().
			Err(err).
			Str("bucket", u.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", u.bucket, key, err)
	}
	return nil
}

func (u *s3Uploader) publicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
