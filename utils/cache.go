package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"dreamydestiny/config"
)

// CacheClient is the Redis client used for read caching. It stays nil when
// Redis is unreachable; callers must treat nil as "cache disabled" and fall
// back to the store.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. The cache is an optional
// layer, so a failed ping only logs a warning instead of aborting startup.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Redis cache unavailable, serving reads from the store: %v", err)
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
