package utils

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheItem 包装缓存数据和过期时间
type cacheItem[V any] struct {
	data      V
	expiresAt time.Time
}

// Cache 本地 LRU 缓存，条目带 TTL
type Cache[K comparable, V any] struct {
	lruCache *lru.Cache[K, cacheItem[V]]
	ttl      time.Duration
	now      func() time.Time
}

// NewCache 创建容量为 size 的缓存，ttl <= 0 表示不过期
func NewCache[K comparable, V any](size int, ttl time.Duration) *Cache[K, V] {
	l, err := lru.New[K, cacheItem[V]](size)
	if err != nil {
		log.Fatalf("Failed to create LRU cache: %v", err)
	}
	return &Cache[K, V]{lruCache: l, ttl: ttl, now: time.Now}
}

func (c *Cache[K, V]) Set(key K, data V) {
	item := cacheItem[V]{data: data}
	if c.ttl > 0 {
		item.expiresAt = c.now().Add(c.ttl)
	}
	c.lruCache.Add(key, item)
}

// Get 获取缓存，若不存在或已过期则 ok 为 false
func (c *Cache[K, V]) Get(key K) (data V, ok bool) {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return data, false
	}

	if !val.expiresAt.IsZero() && c.now().After(val.expiresAt) {
		c.lruCache.Remove(key)
		return data, false
	}

	return val.data, true
}
