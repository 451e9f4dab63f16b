package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DefaultTTL is how long a rendered frame stays valid
const DefaultTTL = 24 * time.Hour

// FileCache stores rendered frames on disk with a TTL
type FileCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// cacheEntry represents a rendered frame with expiration
type cacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewFileCache creates a new file cache
func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}

	return &FileCache{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// NewDefault opens the cache in DefaultCacheDir with DefaultTTL
func NewDefault() (*FileCache, error) {
	return NewFileCache(DefaultCacheDir(), DefaultTTL)
}

// DefaultCacheDir returns the default cache directory
func DefaultCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "flightframe")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "flightframe-cache")
	}

	return filepath.Join(home, ".cache", "flightframe")
}

// Key derives a cache key from the parts that determine a render
func Key(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		_, _ = h.Write(p)
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Dir returns the directory holding the entries
func (c *FileCache) Dir() string {
	return c.dir
}

func (c *FileCache) filename(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".json")
}

// Get retrieves a rendered frame from the cache
func (c *FileCache) Get(key string) ([]byte, bool) {
	filename := c.filename(key)

	// #nosec G304 -- filename is derived from hash of cache key, not user input
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(filename)
		return nil, false
	}

	if c.now().After(entry.ExpiresAt) {
		_ = os.Remove(filename)
		return nil, false
	}

	return entry.Data, true
}

// Set stores a rendered frame. The entry is written to a temp file and
// renamed into place so readers never see a partial entry.
func (c *FileCache) Set(key string, value []byte) error {
	entry := cacheEntry{
		Data:      value,
		ExpiresAt: c.now().Add(c.ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, ".entry-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, c.filename(key))
}

// Clear removes all cache entries
func (c *FileCache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			_ = os.Remove(filepath.Join(c.dir, entry.Name()))
		}
	}

	return nil
}

// Cleanup removes expired entries and returns how many were dropped
func (c *FileCache) Cleanup() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		filename := filepath.Join(c.dir, entry.Name())
		// #nosec G304 -- filename is from ReadDir within cache directory
		data, err := os.ReadFile(filename)
		if err != nil {
			continue
		}

		var ce cacheEntry
		if err := json.Unmarshal(data, &ce); err != nil || c.now().After(ce.ExpiresAt) {
			if os.Remove(filename) == nil {
				removed++
			}
		}
	}

	return removed, nil
}
