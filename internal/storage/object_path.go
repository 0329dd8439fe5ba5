package storage

import (
	"path"
	"strings"
)

func trimKey(key string) string {
	return strings.TrimLeft(strings.TrimSpace(key), "/")
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

// listPrefix normalises a prefix for delimiter-based object listing: the
// trailing "/" makes the backend return the prefix's direct children only.
func listPrefix(prefix string) string {
	cleaned := trimPrefix(prefix)
	if cleaned == "" {
		return ""
	}
	return cleaned + "/"
}

func joinURL(base, key string) string {
	cleanedKey := trimKey(key)
	if base == "" {
		return "/" + cleanedKey
	}
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return strings.TrimRight(base, "/") + "/" + cleanedKey
	}
	return path.Join("/", strings.Trim(base, "/"), cleanedKey)
}
