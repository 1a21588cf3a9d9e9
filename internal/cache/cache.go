// Package cache provides the conversion result cache: an in-memory map
// keyed by content hash, with an optional sqlite-backed store for
// persistence between runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Entry is one cached conversion. It doubles as the gorm model for the
// persistent store.
type Entry struct {
	CodeHash     string `gorm:"primaryKey;size:64"`
	Converted    string
	CreatedAt    time.Time
	AccessCount  int
	LastAccessed time.Time
}

// Hash returns the cache key for a piece of source code.
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Stats is a point-in-time summary of cache contents.
type Stats struct {
	Size         int `json:"size"`
	MaxSize      int `json:"max_size"`
	TotalHits    int `json:"total_hits"`
	TotalEntries int `json:"total_entries"`
}

// Cache is a bounded in-memory conversion cache, safe for concurrent use.
// When full, the entry with the oldest last access is evicted; among equally
// old entries the one with the higher access count goes first, matching the
// persisted ordering this cache has always used.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Entry
	maxSize int
	hits    int
}

// New builds a cache holding at most maxSize entries. A non-positive
// maxSize falls back to 1000.
func New(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &Cache{
		entries: make(map[string]*Entry),
		maxSize: maxSize,
	}
}

// Get returns the cached conversion for source, if present, updating the
// entry's access statistics.
func (c *Cache) Get(source string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[Hash(source)]
	if !ok {
		return "", false
	}
	e.AccessCount++
	e.LastAccessed = time.Now()
	c.hits++
	return e.Converted, true
}

// Put stores a conversion result, evicting if the cache is full.
func (c *Cache) Put(source, converted string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Hash(source)
	if e, ok := c.entries[key]; ok {
		e.Converted = converted
		e.LastAccessed = time.Now()
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	now := time.Now()
	c.entries[key] = &Entry{
		CodeHash:     key,
		Converted:    converted,
		CreatedAt:    now,
		AccessCount:  1,
		LastAccessed: now,
	}
}

func (c *Cache) evictLocked() {
	var victim string
	var victimEntry *Entry
	for key, e := range c.entries {
		if victimEntry == nil || olderThan(e, victimEntry) {
			victim = key
			victimEntry = e
		}
	}
	if victim != "" {
		delete(c.entries, victim)
	}
}

// olderThan orders entries by (last accessed, -access count): earlier access
// wins; on a tie the more-accessed entry is considered older.
func olderThan(a, b *Entry) bool {
	if !a.LastAccessed.Equal(b.LastAccessed) {
		return a.LastAccessed.Before(b.LastAccessed)
	}
	return a.AccessCount > b.AccessCount
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Entry)
	c.hits = 0
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats summarizes the cache contents.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, e := range c.entries {
		total += e.AccessCount
	}
	return Stats{
		Size:         len(c.entries),
		MaxSize:      c.maxSize,
		TotalHits:    c.hits,
		TotalEntries: total,
	}
}

// Snapshot copies the current entries, for persistence.
func (c *Cache) Snapshot() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, *e)
	}
	return out
}

// Restore replaces the cache contents with the given entries, keeping at
// most maxSize of them.
func (c *Cache) Restore(entries []Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry, len(entries))
	for i := range entries {
		if len(c.entries) >= c.maxSize {
			break
		}
		e := entries[i]
		c.entries[e.CodeHash] = &e
	}
}
