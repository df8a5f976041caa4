package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Key hashes the normalized description. Descriptions that differ only in
// case or surrounding whitespace share a key.
func Key(description string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(description))))
	return hex.EncodeToString(sum[:])
}

// Store is a durable description-hash to category mapping.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, description, category string) error
}

// DefaultFrontTTL bounds how long another process's write to the store can
// stay hidden behind the in-process layer.
const DefaultFrontTTL = 5 * time.Minute

// Cache fronts a Store with an in-process map. Front entries expire after
// ttl (never when ttl <= 0); a put overwrites both layers.
type Cache struct {
	store Store
	front *gocache.Cache
	log   logrus.FieldLogger
}

func New(store Store, ttl time.Duration, log logrus.FieldLogger) *Cache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Cache{
		store: store,
		front: gocache.New(ttl, 2*ttl),
		log:   log,
	}
}

// Get returns the cached category. Store errors are logged and reported as a miss.
func (c *Cache) Get(ctx context.Context, description string) (string, bool) {
	key := Key(description)
	if v, ok := c.front.Get(key); ok {
		return v.(string), true
	}

	category, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("Cache.Get store error")
		return "", false
	}
	if ok {
		c.front.Set(key, category, gocache.DefaultExpiration)
	}
	return category, ok
}

// Put records category for description. Store errors are logged; the
// in-process entry is still updated.
func (c *Cache) Put(ctx context.Context, description, category string) {
	key := Key(description)
	c.front.Set(key, category, gocache.DefaultExpiration)
	if err := c.store.Put(ctx, key, description, category); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("Cache.Put store error")
	}
}
