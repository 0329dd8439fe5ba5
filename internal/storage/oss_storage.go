package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weddingbook/internal/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type ossResolver struct {
	bucket *oss.Bucket
	expiry time.Duration
}

func NewOSSResolver(cfg config.Config, expiry time.Duration) (Resolver, error) {
	endpoint := strings.TrimSpace(cfg.StorageOSSEndpoint)
	if endpoint == "" {
		return nil, errors.New("storage: missing OSS endpoint")
	}
	bucketName := strings.TrimSpace(cfg.StorageOSSBucket)
	if bucketName == "" {
		return nil, errors.New("storage: missing OSS bucket")
	}
	accessKey := strings.TrimSpace(cfg.StorageOSSAccessKeyID)
	secretKey := strings.TrimSpace(cfg.StorageOSSAccessKeySecret)
	if accessKey == "" || secretKey == "" {
		return nil, errors.New("storage: missing OSS credentials")
	}

	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("storage: create OSS client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("storage: open OSS bucket: %w", err)
	}

	return &ossResolver{
		bucket: bucket,
		expiry: expiry,
	}, nil
}

func (s *ossResolver) ResolveURL(ctx context.Context, objectKey string) (string, error) {
	key := trimKey(objectKey)
	if key == "" {
		return "", errors.New("empty object key")
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	url, err := s.bucket.SignURL(key, oss.HTTPGet, int64(s.expiry.Seconds()))
	if err != nil {
		return "", fmt.Errorf("sign url: %w", err)
	}
	return url, nil
}

func (s *ossResolver) ResolveByPrefix(ctx context.Context, prefix string) ([]string, error) {
	result, err := s.bucket.ListObjectsV2(
		oss.Prefix(listPrefix(prefix)),
		oss.Delimiter("/"),
		oss.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	urls := make([]string, 0, len(result.Objects))
	for _, object := range result.Objects {
		url, err := s.ResolveURL(ctx, object.Key)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

var _ Resolver = (*ossResolver)(nil)
