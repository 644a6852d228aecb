package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects to Redis at addr. An empty addr disables caching and
// returns nil; callers must treat a nil client as "no cache".
func NewRedis(addr string) *redis.Client {
	if addr == "" {
		log.Println("REDIS_ADDR not set, count caching disabled.")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Redis ping failed: %v", err)
	}

	log.Println("Successfully connected to Redis!")
	return rdb
}
