package kvs

import (
	"time"

	"github.com/garyburd/redigo/redis"
)

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	// Addr is host:port of the server.
	Addr     string
	Password string
	// Namespace prefixes every key, separated by ":".
	Namespace string
	MaxIdle   int
}

func newRedisPool(conf *RedisConfig) *redis.Pool {
	maxIdle := conf.MaxIdle
	if maxIdle == 0 {
		maxIdle = 3
	}
	return &redis.Pool{
		MaxIdle:     maxIdle,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			c, err := redis.Dial("tcp", conf.Addr)
			if err != nil {
				return nil, err
			}
			if conf.Password != "" {
				if _, err := c.Do("AUTH", conf.Password); err != nil {
					c.Close()
					return nil, err
				}
			}
			return c, nil
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			_, err := c.Do("PING")
			return err
		},
	}
}

// RedisStore is a KeyValueStore backed by Redis.
type RedisStore struct {
	pool *redis.Pool
	ns   string
}

// NewDefaultRedisStore connects to a local Redis without a namespace.
func NewDefaultRedisStore() *RedisStore {
	return NewRedisStore(&RedisConfig{Addr: ":6379"})
}

// NewRedisStore creates a RedisStore. Connections are opened lazily.
func NewRedisStore(conf *RedisConfig) *RedisStore {
	logger.Info("Creating redis pool", "ns", conf.Namespace, "addr", conf.Addr, "usingPassword", conf.Password != "")
	ns := ""
	if conf.Namespace != "" {
		ns = conf.Namespace + ":"
	}
	return &RedisStore{ns: ns, pool: newRedisPool(conf)}
}

// Set sets a key's value with TTL. Use TTLNever to never expire.
func (rs *RedisStore) Set(key, value string, ttl time.Duration) error {
	conn := rs.pool.Get()
	defer conn.Close()
	var err error

	key = rs.ns + key

	if ttl == TTLNever {
		_, err = conn.Do("SET", key, value)
	} else {
		_, err = conn.Do("SET", key, value, "PX", int64(ttl/time.Millisecond))
	}
	return err
}

// Get gets a key's value.
func (rs *RedisStore) Get(key string) (string, error) {
	conn := rs.pool.Get()
	defer conn.Close()

	s, err := redis.String(conn.Do("GET", rs.ns+key))
	if err == redis.ErrNil {
		return "", ErrNotFound
	} else if err != nil {
		return "", err
	}
	return s, nil
}

// Del deletes a key
func (rs *RedisStore) Del(key string) error {
	conn := rs.pool.Get()
	defer conn.Close()
	_, err := conn.Do("DEL", rs.ns+key)
	return err
}

// FlushDB removes all keys. With a namespace only the namespaced keys are
// removed.
func (rs *RedisStore) FlushDB() error {
	conn := rs.pool.Get()
	defer conn.Close()

	if rs.ns == "" {
		_, err := conn.Do("FLUSHDB")
		return err
	}

	cursor := 0
	for {
		reply, err := redis.Values(conn.Do("SCAN", cursor, "MATCH", rs.ns+"*", "COUNT", 100))
		if err != nil {
			return err
		}
		var keys []string
		if _, err := redis.Scan(reply, &cursor, &keys); err != nil {
			return err
		}
		if len(keys) > 0 {
			args := redis.Args{}.AddFlat(keys)
			if _, err := conn.Do("DEL", args...); err != nil {
				return err
			}
		}
		if cursor == 0 {
			return nil
		}
	}
}

// Close releases the pool's connections.
func (rs *RedisStore) Close() error {
	return rs.pool.Close()
}
