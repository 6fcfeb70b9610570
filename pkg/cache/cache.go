// Package cache is a file-based response cache with a TTL, keyed by URL.
package cache

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores raw response bodies on disk. Entries older than the TTL are
// treated as misses. A TTL of zero makes every lookup a miss, which is how
// --force-fetch is implemented.
type Cache struct {
	dir string
	ttl time.Duration
}

// New creates the cache directory if needed and returns a Cache.
func New(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// key hashes the URL into a filesystem-safe name.
func (c *Cache) key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", sum)
}

// Get returns the cached body for url and true on a fresh hit.
func (c *Cache) Get(url string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	path := filepath.Join(c.dir, c.key(url))
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the body for url, overwriting any previous entry.
func (c *Cache) Set(url string, data []byte) error {
	path := filepath.Join(c.dir, c.key(url))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
