package filestorage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/internhub/backend/internal/pkg/logger"
)

// S3Config holds the settings needed to reach an S3 bucket.
type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the AWS endpoint, for S3-compatible stores.
	Endpoint string
}

// S3Storage stores files in an S3 bucket. Objects are uploaded with public
// URLs of the form https://<bucket>.s3.<region>.amazonaws.com/<key>.
type S3Storage struct {
	client *s3.Client
	config S3Config
}

// NewS3Storage creates an S3-backed ObjectStorage.
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket name is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("S3 storage configured")
	return &S3Storage{client: client, config: cfg}, nil
}

// SaveFile uploads the file to the bucket under subPath and returns its URL.
func (s *S3Storage) SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	key := uuid.New().String() + ext
	if subPath != "" {
		key = strings.Trim(subPath, "/") + "/" + key
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Failed to upload object to S3")
		return "", fmt.Errorf("failed to upload file to s3: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("key", key).Msg("File uploaded to S3")
	return s.objectURL(key), nil
}

// DeleteFile removes the object identified by the URL SaveFile returned.
func (s *S3Storage) DeleteFile(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}

	key := s.keyFromURL(fileURL)
	if key == "" {
		return fmt.Errorf("invalid s3 object url: %s", fileURL)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Failed to delete object from S3")
		return fmt.Errorf("failed to delete file from s3: %w", err)
	}

	logger.Info().Str("key", key).Msg("Object deleted from S3")
	return nil
}

func (s *S3Storage) objectURL(key string) string {
	if s.config.Endpoint != "" {
		return strings.TrimRight(s.config.Endpoint, "/") + "/" + s.config.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.Bucket, s.config.Region, key)
}

func (s *S3Storage) keyFromURL(fileURL string) string {
	idx := strings.Index(fileURL, ".amazonaws.com/")
	if idx >= 0 {
		return fileURL[idx+len(".amazonaws.com/"):]
	}
	// Path-style URL from a custom endpoint
	marker := "/" + s.config.Bucket + "/"
	if idx = strings.Index(fileURL, marker); idx >= 0 {
		return fileURL[idx+len(marker):]
	}
	return ""
}
