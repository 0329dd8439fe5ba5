package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weddingbook/internal/config"

	"github.com/tencentyun/cos-go-sdk-v5"
)

type cosResolver struct {
	client    *cos.Client
	secretID  string
	secretKey string
	expiry    time.Duration
}

func NewCOSResolver(cfg config.Config, expiry time.Duration) (Resolver, error) {
	baseURL := strings.TrimSpace(cfg.StorageCOSBucketURL)
	if baseURL == "" {
		return nil, errors.New("storage: missing COS bucket URL")
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("storage: parse COS bucket URL: %w", err)
	}

	secretID := strings.TrimSpace(cfg.StorageCOSSecretID)
	secretKey := strings.TrimSpace(cfg.StorageCOSSecretKey)
	if secretID == "" || secretKey == "" {
		return nil, errors.New("storage: missing COS credentials")
	}

	transport := &cos.AuthorizationTransport{
		SecretID:  secretID,
		SecretKey: secretKey,
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: parsedURL}, &http.Client{Transport: transport})

	return &cosResolver{
		client:    client,
		secretID:  secretID,
		secretKey: secretKey,
		expiry:    expiry,
	}, nil
}

func (s *cosResolver) ResolveURL(ctx context.Context, objectKey string) (string, error) {
	key := trimKey(objectKey)
	if key == "" {
		return "", errors.New("empty object key")
	}

	presigned, err := s.client.Object.GetPresignedURL(ctx, http.MethodGet, key, s.secretID, s.secretKey, s.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object: %w", err)
	}
	return presigned.String(), nil
}

func (s *cosResolver) ResolveByPrefix(ctx context.Context, prefix string) ([]string, error) {
	opt := &cos.BucketGetOptions{
		Prefix:    listPrefix(prefix),
		Delimiter: "/",
	}
	result, resp, err := s.client.Bucket.Get(ctx, opt)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	urls := make([]string, 0, len(result.Contents))
	for _, object := range result.Contents {
		url, err := s.ResolveURL(ctx, object.Key)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

var _ Resolver = (*cosResolver)(nil)
