package pkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

type MediaConfig struct {
	Bucket        string
	Region        string
	Endpoint      string // MinIO/自建时填
	AccessKey     string
	SecretKey     string
	UsePathStyle  bool
	PublicBaseURL string // 对外可访问的根地址
}

// MediaStore 头像和社区配图的对象存储
type MediaStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewMediaStore(ctx context.Context, cfg MediaConfig) (*MediaStore, error) {
	var awsCfg aws.Config
	var err error
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey, cfg.SecretKey, "")),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	}
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.UsePathStyle {
			o.UsePathStyle = true
		}
	})

	return &MediaStore{client: client, bucket: cfg.Bucket, baseURL: cfg.PublicBaseURL}, nil
}

// Store 上传并返回 (url, key)
func (m *MediaStore) Store(ctx context.Context, data []byte, contentType string) (url, key string, err error) {
	key = uuid.NewString()
	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}
	return fmt.Sprintf("%s/%s", m.baseURL, key), key, nil
}

// Remove 远端已经不存在视为成功：要的终态就是没有这个对象
func (m *MediaStore) Remove(ctx context.Context, key string) error {
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return nil
	}
	return err
}
