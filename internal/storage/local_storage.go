package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// LocalResolver maps object keys onto a public base URL backed by a local
// directory. Development backend; the URLs are not actually time-boxed.
type LocalResolver struct {
	baseDir    string
	publicBase string
}

// NewLocalResolver creates a LocalResolver. The directory is created if it
// does not exist.
func NewLocalResolver(baseDir, publicBase string) (*LocalResolver, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		baseDir = "datas/images"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	publicBase = strings.TrimSpace(publicBase)
	if publicBase == "" {
		publicBase = "/files"
	}
	return &LocalResolver{baseDir: baseDir, publicBase: publicBase}, nil
}

// LocalBaseDir returns the root directory used for serving files.
func (s *LocalResolver) LocalBaseDir() string {
	return s.baseDir
}

// ResolveURL joins the public base with the key.
func (s *LocalResolver) ResolveURL(ctx context.Context, objectKey string) (string, error) {
	key := trimKey(objectKey)
	if key == "" {
		return "", errors.New("empty object key")
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	return joinURL(s.publicBase, key), nil
}

// ResolveByPrefix lists the files directly under the prefix directory.
func (s *LocalResolver) ResolveByPrefix(ctx context.Context, prefix string) ([]string, error) {
	cleaned := trimPrefix(prefix)
	dir := filepath.Join(s.baseDir, filepath.FromSlash(cleaned))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read dir: %w", err)
	}

	urls := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		url, err := s.ResolveURL(ctx, path.Join(cleaned, entry.Name()))
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls, nil
}

var _ Resolver = (*LocalResolver)(nil)
