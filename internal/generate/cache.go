package generate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fpang/gemini-deck-cli/internal/prompt"
	"github.com/rs/zerolog/log"
)

// Cache is the content-addressable store consulted before any remote
// generation call. Entries are complete, previously validated images; a
// failure is never written, so retrying a request that previously exhausted
// its attempts will generate again instead of replaying the failure.
type Cache interface {
	Key(req prompt.GenerationRequest) string
	Get(digest string) ([]byte, bool)
	Put(digest string, data []byte) error
}

// Digest computes the deterministic cache key for a request: the sha256 of
// its canonical string form. Order-sensitive over the directive list.
func Digest(req prompt.GenerationRequest) string {
	sum := sha256.Sum256([]byte(req.CanonicalString()))
	return hex.EncodeToString(sum[:])
}

// DiskCache persists one file per digest under a directory,
// "<digest>.png". File presence is the sole existence check: no manifest,
// no TTL, no size cap. Entries survive across runs and are never evicted
// here. Single-process, single-writer assumption; no locking.
type DiskCache struct {
	dir string
}

// NewDiskCache creates the cache directory if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory path.
func (c *DiskCache) Dir() string {
	return c.dir
}

// Key implements Cache using the package digest.
func (c *DiskCache) Key(req prompt.GenerationRequest) string {
	return Digest(req)
}

// Get loads the entry for a digest, reporting whether it exists.
func (c *DiskCache) Get(digest string) ([]byte, bool) {
	data, err := os.ReadFile(c.entryPath(digest))
	if err != nil {
		return nil, false
	}
	log.Debug().
		Str("digest", digest).
		Int("bytes", len(data)).
		Msg("Cache hit")
	return data, true
}

// Put writes a validated image under its digest. Entries are written once
// and never updated in place.
func (c *DiskCache) Put(digest string, data []byte) error {
	path := c.entryPath(digest)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", digest, err)
	}
	log.Debug().
		Str("digest", digest).
		Int("bytes", len(data)).
		Msg("Cached generated image")
	return nil
}

func (c *DiskCache) entryPath(digest string) string {
	return filepath.Join(c.dir, digest+".png")
}
