// Package cache provides caching for rendered diagrams and fetched sources.
//
// # Overview
//
// The render pipeline caches at three points:
//
//   - Fetched remote manifests (short TTL, keyed by source URL)
//   - Rendered Mermaid text (keyed by manifest content hash)
//   - Exported artifacts such as SVG or PNG (keyed by hash and format)
//
// Keys are generated by a [Keyer] so that backends stay interchangeable.
//
// # Backends
//
// Three [Cache] implementations are provided:
//
//   - [FileCache]: files under the user cache directory, for CLI usage
//   - [RedisCache]: shared cache for multi-instance service deployments
//   - [NullCache]: no-op, for --no-cache runs and tests
//
// All backends store opaque byte slices with a per-entry TTL.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Cache stores opaque byte slices under string keys.
//
// Implementations must treat missing and expired entries identically: both
// are reported as a miss with hit=false and a nil error.
type Cache interface {
	// Get retrieves a value. hit is false when the key is absent or expired.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Cache lifetimes for the different artifact classes.
const (
	// TTLSource is how long fetched remote manifests stay valid.
	TTLSource = 15 * time.Minute

	// TTLRender is how long rendered Mermaid text stays valid.
	TTLRender = 24 * time.Hour

	// TTLExport is how long exported artifacts stay valid.
	TTLExport = 24 * time.Hour
)

// DefaultDir returns the default cache directory.
// Honors XDG_CACHE_HOME and falls back to ~/.cache/mermaid.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "mermaid"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "mermaid"), nil
}
