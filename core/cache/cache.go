package cache

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// Cache is a thread-safe key-value store with optional TTL and tags.
type Cache struct {
	m sync.Map
	// tagIndex maps tag -> *sync.Map of keys
	tagIndex sync.Map
}

func NewCache() *Cache {
	return &Cache{}
}

type cacheItem struct {
	Value     interface{} `json:"value"`
	ExpiresAt int64       `json:"expires_at"` // unix nanoseconds; 0 means no expiration
}

func (i cacheItem) expired(now int64) bool {
	return i.ExpiresAt > 0 && now > i.ExpiresAt
}

// Set stores value under key. ttl is in seconds; 0 means no expiration.
func (c *Cache) Set(key string, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

// Get returns the value for key if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.expired(time.Now().UnixNano()) {
		c.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// Delete removes key and its tag memberships.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
	c.tagIndex.Range(func(_, val interface{}) bool {
		val.(*sync.Map).Delete(key)
		return true
	})
}

// KeysByTag returns the keys currently carrying tag.
func (c *Cache) KeysByTag(tag string) []string {
	var keys []string
	if val, ok := c.tagIndex.Load(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			keys = append(keys, key.(string))
			return true
		})
	}
	return keys
}

// DeleteByTag deletes every entry carrying tag.
func (c *Cache) DeleteByTag(tag string) {
	val, ok := c.tagIndex.LoadAndDelete(tag)
	if !ok {
		return
	}
	val.(*sync.Map).Range(func(key, _ interface{}) bool {
		c.Delete(key.(string))
		return true
	})
}

// DumpToFile writes all live entries to filename as JSON. Tags are not kept.
func (c *Cache) DumpToFile(filename string) error {
	now := time.Now().UnixNano()
	m := make(map[string]cacheItem)
	c.m.Range(func(key, value interface{}) bool {
		if item := value.(cacheItem); !item.expired(now) {
			m[key.(string)] = item
		}
		return true
	})
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// RestoreFromFile loads entries written by DumpToFile. Expired entries are skipped.
func (c *Cache) RestoreFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	m := make(map[string]cacheItem)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	now := time.Now().UnixNano()
	for k, item := range m {
		if !item.expired(now) {
			c.m.Store(k, item)
		}
	}
	return nil
}
