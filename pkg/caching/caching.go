// Package caching provides a file-based cache with a TTL, keyed by URL.
// It fronts slow-moving remote listings (the CoinGecko coin list) so daily
// runs don't refetch tens of thousands of entries.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores one file per key under a directory. Freshness is judged by
// file modification time, so entries need no embedded timestamp.
type Cache struct {
	dir string
	ttl time.Duration
}

func NewCache(dir string, ttl time.Duration) *Cache {
	return &Cache{dir: dir, ttl: ttl}
}

// key hashes the URL so any key is a safe filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", hash)
}

// Get returns the cached data and true when the entry exists and is younger
// than the TTL.
func (c *Cache) Get(url string) ([]byte, bool) {
	filePath := filepath.Join(c.dir, c.key(url))

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores data under the key, creating the cache directory on first use.
func (c *Cache) Set(url string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	filePath := filepath.Join(c.dir, c.key(url))
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
