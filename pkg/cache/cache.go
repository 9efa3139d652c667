// Package cache provides byte-level caching for pipeline artifacts.
//
// Layout results and rendered pages are cached under content-hash keys so
// re-running the same job is cheap. Two backends exist: a file cache for
// CLI use and a null cache that disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Default TTLs per entry kind. Layout geometry is cheap to recompute, so
// it expires sooner than rendered artifacts.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// LayoutKeyOpts identifies a layout computation for caching.
type LayoutKeyOpts struct {
	TemplateID string
	PaperKey   string
	Unit       string
	Margin     float64
	ImagesHash string
}

// ArtifactKeyOpts identifies a rendered artifact for caching.
type ArtifactKeyOpts struct {
	Format  string
	FitMode string
	Anchor  string
	Scale   float64
}

// LayoutKey builds the cache key for a layout result.
func LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

// ArtifactKey builds the cache key for one rendered page, derived from the
// layout's content hash so any input change invalidates the artifact.
func ArtifactKey(layoutHash string, page int, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, page, opts)
}
