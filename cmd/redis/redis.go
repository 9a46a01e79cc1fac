package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/GustavoWillian7/ecommerce-engine/cmd/config"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

const pingTimeout = 5 * time.Second

// New initializes the Redis client backing the product read cache and
// verifies connectivity. The engine runs without it; callers may treat a
// failure as non-fatal.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	client = c
	return nil
}

func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
