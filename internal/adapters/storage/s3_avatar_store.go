package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/webcontacts/contacts-api/internal/config"
)

// S3AvatarStore writes avatar images to an S3-compatible bucket (AWS or
// minio) and returns the object's public URL.
type S3AvatarStore struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

func NewS3AvatarStore(ctx context.Context, cfg *config.Config) (*S3AvatarStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3AvatarStore{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: strings.TrimSuffix(cfg.S3BaseEndpoint, "/"),
	}, nil
}

func (s *S3AvatarStore) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

func (s *S3AvatarStore) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
