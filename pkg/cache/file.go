package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores one JSON entry file per key under a directory, sharded
// by the first two hex chars of the hashed key.
type FileCache struct {
	dir string
}

// NewFileCache opens (and creates if needed) a file cache rooted at dir.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

type fileEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Dir returns the cache root.
func (c *FileCache) Dir() string { return c.dir }

// Get retrieves a value. Corrupt or expired entries are removed and reported
// as a miss.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set stores a value. A ttl <= 0 never expires.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Data: data}
	if ttl > 0 {
		e.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Delete removes a value; deleting a missing key is not an error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes every entry and returns how many entry files were deleted.
// The root directory itself is kept.
func (c *FileCache) Clear() (int, error) {
	shards, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	n := 0
	for _, shard := range shards {
		p := filepath.Join(c.dir, shard.Name())
		if !shard.IsDir() {
			if os.Remove(p) == nil {
				n++
			}
			continue
		}
		files, err := os.ReadDir(p)
		if err != nil {
			continue
		}
		for _, f := range files {
			if os.Remove(filepath.Join(p, f.Name())) == nil {
				n++
			}
		}
		_ = os.Remove(p)
	}
	return n, nil
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
