package db

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// CacheRedisClient wraps a go-redis client behind the RedisClient interface.
type CacheRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewCacheRedisClient initializes the wrapper and verifies connectivity.
func NewCacheRedisClient(ctx context.Context, client *redis.Client) *CacheRedisClient {
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &CacheRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *CacheRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *CacheRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// GetContext returns the context the client operates under.
func (r *CacheRedisClient) GetContext() context.Context {
	return r.ctx
}

// Ping checks the Redis connection.
func (r *CacheRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

// Keys lists the keys matching the given pattern.
func (r *CacheRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *CacheRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
