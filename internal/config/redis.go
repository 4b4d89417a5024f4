package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// Redis is the shared client, nil when no server is reachable.
	// Callers must degrade gracefully on nil.
	Redis *redis.Client
)

// InitRedis connects to Redis using environment variables. Re-optimization
// suggestion sessions live there with a TTL; when the connection fails the
// service still runs with an in-process fallback store.
func InitRedis() {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	password := getEnv("REDIS_PASSWORD", "")

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s – suggestion sessions fall back to memory: %v", addr, err)
		return
	}

	Redis = client
}
