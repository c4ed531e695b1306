package tabula

import (
	"bytes"
	"encoding/json"

	"github.com/dbkit/tabula/kvs"
)

// Cache is the store used by SelectBuilder.Cache. Caching is disabled while
// it is nil.
var Cache kvs.KeyValueStore

// SetCache sets the store for cached select results.
func SetCache(store kvs.KeyValueStore) {
	Cache = store
}

// cached looks up the rows for a select. It returns the key to store the
// rows under after a miss, or "" when caching is off.
func (b *SelectBuilder) cached(sql string, args []interface{}) (string, []Row, bool) {
	if Cache == nil || b.cacheTTL <= 0 {
		return "", nil, false
	}

	key := b.cacheID
	if key == "" {
		fullSQL, err := Interpolate(sql, args)
		if err != nil {
			logger.Warn("Could not interpolate SQL for cache key. Continuing without cache", "err", err)
			return "", nil, false
		}
		key = kvs.Hash(fullSQL)
	}

	if b.cacheInvalidate {
		return key, nil, false
	}

	v, err := Cache.Get(key)
	if err != nil {
		if err != kvs.ErrNotFound {
			logger.Error("Unable to read cache key. Continuing with query", "key", key, "err", err)
		}
		return key, nil, false
	}

	var rows []Row
	dec := json.NewDecoder(bytes.NewBufferString(v))
	dec.UseNumber()
	if err := dec.Decode(&rows); err != nil {
		logger.Warn("Could not unmarshal cache data. Continuing with query", "key", key, "err", err)
		return key, nil, false
	}
	return key, rows, true
}

// setCache stores rows under key. Values round-trip through JSON, so cached
// numbers come back as json.Number and times as strings.
func (b *SelectBuilder) setCache(key string, rows []Row) {
	if key == "" {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		logger.Warn("Could not marshal data, clearing", "key", key, "err", err)
		if err = Cache.Del(key); err != nil {
			logger.Error("Could not delete cache key", "key", key, "err", err)
		}
		return
	}

	if err = Cache.Set(key, string(data), b.cacheTTL); err != nil {
		logger.Warn("Could not set cache. Query will proceed without caching", "err", err)
	}
}
