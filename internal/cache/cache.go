// Package cache is a file-based result cache with per-category TTLs and
// hit/miss statistics. The scoring engine never reads it; the HTTP layer
// uses it to skip recomputation for repeated requests.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Default TTL per category; Get callers may override per call.
var DefaultTTL = map[string]time.Duration{
	"quality":   7 * 24 * time.Hour,
	"sentiment": 7 * 24 * time.Hour,
}

const fallbackTTL = 24 * time.Hour

type categoryStats struct {
	Hits   int `json:"hits"`
	Misses int `json:"misses"`
}

// Stats is a point-in-time snapshot of cache effectiveness.
type Stats struct {
	Hits          int                      `json:"hits"`
	Misses        int                      `json:"misses"`
	TotalRequests int                      `json:"total_requests"`
	HitRate       float64                  `json:"hit_rate"`
	ByCategory    map[string]categoryStats `json:"by_category"`
}

type envelope struct {
	CachedAt time.Time       `json:"cached_at"`
	Data     json.RawMessage `json:"data"`
}

// Cache stores JSON payloads under dir/<category>/<key>.json.
type Cache struct {
	dir string

	mu         sync.Mutex
	hits       int
	misses     int
	byCategory map[string]*categoryStats
}

// New creates a cache rooted at dir.
func New(dir string) *Cache {
	return &Cache{
		dir:        dir,
		byCategory: map[string]*categoryStats{},
	}
}

// Key builds a deterministic cache key from its parts.
func Key(parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(h[:])[:16]
}

// Get returns the cached payload for key if present and younger than the
// category TTL. Expired entries are removed on read.
func (c *Cache) Get(key, category string) (json.RawMessage, bool) {
	path := c.path(key, category)
	raw, err := os.ReadFile(path)
	if err != nil {
		c.record(category, false)
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.CachedAt.IsZero() {
		c.record(category, false)
		return nil, false
	}
	if time.Since(env.CachedAt) > ttlFor(category) {
		_ = os.Remove(path)
		c.record(category, false)
		return nil, false
	}

	c.record(category, true)
	return env.Data, true
}

// Put stores data under key in the given category.
func (c *Cache) Put(key, category string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal cache payload: %w", err)
	}
	raw, err := json.Marshal(envelope{CachedAt: time.Now().UTC(), Data: payload})
	if err != nil {
		return fmt.Errorf("marshal cache envelope: %w", err)
	}

	dir := filepath.Join(c.dir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(c.path(key, category), raw, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Cleanup removes every expired entry and reports how many were deleted.
func (c *Cache) Cleanup() (int, error) {
	removed := 0
	categories, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read cache dir: %w", err)
	}

	for _, cat := range categories {
		if !cat.IsDir() {
			continue
		}
		ttl := ttlFor(cat.Name())
		entries, err := os.ReadDir(filepath.Join(c.dir, cat.Name()))
		if err != nil {
			continue
		}
		for _, e := range entries {
			path := filepath.Join(c.dir, cat.Name(), e.Name())
			raw, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			var env envelope
			if err := json.Unmarshal(raw, &env); err != nil || time.Since(env.CachedAt) > ttl {
				if os.Remove(path) == nil {
					removed++
				}
			}
		}
	}
	return removed, nil
}

// Clear deletes every entry in a category and reports the count.
func (c *Cache) Clear(category string) (int, error) {
	dir := filepath.Join(c.dir, category)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read category dir: %w", err)
	}
	removed := 0
	for _, e := range entries {
		if os.Remove(filepath.Join(dir, e.Name())) == nil {
			removed++
		}
	}
	return removed, nil
}

// Snapshot returns current hit/miss statistics.
func (c *Cache) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	by := make(map[string]categoryStats, len(c.byCategory))
	for k, v := range c.byCategory {
		by[k] = *v
	}
	return Stats{
		Hits:          c.hits,
		Misses:        c.misses,
		TotalRequests: total,
		HitRate:       rate,
		ByCategory:    by,
	}
}

func (c *Cache) record(category string, hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cs, ok := c.byCategory[category]
	if !ok {
		cs = &categoryStats{}
		c.byCategory[category] = cs
	}
	if hit {
		c.hits++
		cs.Hits++
	} else {
		c.misses++
		cs.Misses++
	}
}

func (c *Cache) path(key, category string) string {
	return filepath.Join(c.dir, category, key+".json")
}

func ttlFor(category string) time.Duration {
	if ttl, ok := DefaultTTL[category]; ok {
		return ttl
	}
	return fallbackTTL
}
