// Package kvs provides the key/value stores backing cached select results.
package kvs

import (
	"errors"
	"hash/fnv"
	"strconv"
	"time"
)

// KeyValueStore represents simple key value storage.
type KeyValueStore interface {
	Set(key, value string, ttl time.Duration) error
	// Get returns ErrNotFound for a missing or expired key.
	Get(key string) (string, error)
	Del(key string) error
	FlushDB() error
}

// TTLNever means do not expire a key
const TTLNever time.Duration = -1

// ErrNotFound is returned when a key is not in the store.
var ErrNotFound = errors.New("key not found")

// Hash returns the FNV-1a hash of s in hex. The returned value is useful
// as a key.
func Hash(s string) string {
	h := fnv.New64a()
	h.Write([]byte(s))
	return strconv.FormatUint(h.Sum64(), 16)
}
