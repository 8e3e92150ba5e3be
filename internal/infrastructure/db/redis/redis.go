// Package redis holds the Redis client wiring and the idempotency store
// backing replay-safe payment creation.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the startup ping only; the idempotency store runs
// its commands on the request context.
const connectTimeout = 5 * time.Second

// Config selects the Redis instance. Mirrors the REDIS_* environment
// variables exposed by the config package.
type Config struct {
	Addr string
	DB   int
}

// Connect opens a client and verifies it with a ping, so a misconfigured
// address fails at startup rather than on the first replayed create.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
