package db

import "context"

// RedisClient defines the operations the cache layer needs from Redis.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
