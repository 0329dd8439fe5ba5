package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weddingbook/internal/config"
)

const (
	// TypeLocal 表示本地文件系统存储。
	TypeLocal = "local"
	// TypeS3 表示 Amazon S3 或兼容的存储后端。
	TypeS3 = "s3"
	// TypeOSS 表示阿里云 OSS 存储。
	TypeOSS = "oss"
	// TypeCOS 表示腾讯云 COS 存储。
	TypeCOS = "cos"
	// TypeR2 表示 Cloudflare R2 存储。
	TypeR2 = "r2"
)

// Resolver 将不透明的对象 key 换为限时签名 URL。
//
// ResolveByPrefix 列出前缀下的全部对象并逐个签名。目录层级以 "/" 分隔，
// 仅返回前缀的直接子对象。
type Resolver interface {
	ResolveURL(ctx context.Context, objectKey string) (string, error)
	ResolveByPrefix(ctx context.Context, prefix string) ([]string, error)
}

// NewResolver 根据配置实例化签名 URL 后端。
func NewResolver(cfg config.Config) (Resolver, error) {
	ttl := time.Duration(cfg.SignedURLTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}

	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalResolver(cfg.StorageLocalDir, cfg.StoragePublicBaseURL)
	case TypeS3:
		return NewS3Resolver(cfg, ttl)
	case TypeOSS:
		return NewOSSResolver(cfg, ttl)
	case TypeCOS:
		return NewCOSResolver(cfg, ttl)
	case TypeR2:
		return NewR2Resolver(cfg, ttl)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
