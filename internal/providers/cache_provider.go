package providers

import (
	"github.com/coocood/freecache"
	"scoreboard/internal/structures"
	"time"
)

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Clear()
}

// CacheProvider holds raw month responses. freecache rejects entries larger
// than 1/1024 of its size, so Size must leave room for a full month.
type CacheProvider struct {
	cache  *freecache.Cache
	ttl    int
	logger Logger
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Debugf(TypeApp, "Response cache disabled")
		return &noopCache{}
	}

	ttl := int(conf.Cache.TTL / time.Second)
	if ttl < 1 {
		ttl = 1
	}
	logger.Debugf(TypeApp, "Response cache: %dMB, entries expire after %ds", conf.Cache.Size, ttl)

	return &CacheProvider{
		cache:  freecache.NewCache(conf.Cache.Size << 20),
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *CacheProvider) Set(key string, value []byte) {
	if err := c.cache.Set([]byte(key), value, c.ttl); err != nil {
		c.logger.Warnf(TypeApp, "Not caching %s (%d bytes): %s", key, len(value), err)
	}
}

// Clear drops every month. Called after any write to the backend.
func (c *CacheProvider) Clear() {
	n := c.cache.EntryCount()
	c.cache.Clear()
	if n > 0 {
		c.logger.Debugf(TypeApp, "Dropped %d cached responses", n)
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
func (n *noopCache) Clear()                      {}
