package kvs

import (
	"time"

	gocache "github.com/pmylund/go-cache"
)

// MemoryStore is an in-process KeyValueStore. Expired keys are evicted every
// cleanup interval and are never returned by Get.
type MemoryStore struct {
	cache           *gocache.Cache
	cleanupInterval time.Duration
}

// NewDefaultMemoryStore creates a MemoryStore which cleans up every 30
// seconds.
func NewDefaultMemoryStore() *MemoryStore {
	return NewMemoryStore(30 * time.Second)
}

// NewMemoryStore creates a MemoryStore with the given cleanup interval.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache:           gocache.New(gocache.NoExpiration, cleanupInterval),
		cleanupInterval: cleanupInterval,
	}
}

// Set sets a key with time-to-live. Use TTLNever to keep the key until it is
// deleted.
func (store *MemoryStore) Set(key, value string, ttl time.Duration) error {
	if ttl == TTLNever {
		store.cache.Set(key, value, gocache.NoExpiration)
		return nil
	}
	if ttl < store.cleanupInterval && logger.IsDebug() {
		logger.Debug("TTL is shorter than the cleanup interval, memory is held until cleanup", "key", key, "ttl", ttl)
	}
	store.cache.Set(key, value, ttl)
	return nil
}

// Get retrieves a value given key.
func (store *MemoryStore) Get(key string) (string, error) {
	val, found := store.cache.Get(key)
	if !found {
		return "", ErrNotFound
	}
	return val.(string), nil
}

// Del deletes value given key.
func (store *MemoryStore) Del(key string) error {
	store.cache.Delete(key)
	return nil
}

// FlushDB clears all keys
func (store *MemoryStore) FlushDB() error {
	store.cache.Flush()
	return nil
}

// Len returns the number of keys held, including expired keys not yet
// cleaned up.
func (store *MemoryStore) Len() int {
	return store.cache.ItemCount()
}
