package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/incident-report/api-go/config"
)

// S3Store keeps evidence files in an S3-compatible bucket. Recorded paths are
// public URLs built from the bucket's configured base URL.
type S3Store struct {
	Client *s3.Client
	Config *config.S3Config
}

func NewS3Store(cfg *config.S3Config) *S3Store {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &S3Store{
		Client: client,
		Config: cfg,
	}
}

func (s *S3Store) Save(ctx context.Context, key string, r io.Reader) (string, error) {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Config.BucketName),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.Config.PublicURL, key), nil
}

func (s *S3Store) Delete(ctx context.Context, path string) error {
	key := strings.TrimPrefix(path, s.Config.PublicURL+"/")

	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Config.BucketName),
		Key:    aws.String(key),
	})
	return err
}
