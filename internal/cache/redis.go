// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"inkwell/internal/observability"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// InitRedis initializes the Redis client with the given address. The
// application degrades to uncached operation when Redis is unreachable.
func InitRedis(addr string) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (continuing without cache)", addr, err)
			client = nil
			return
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client = redis.NewClient(opts)
	client.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

// SetClient overrides the client (used by tests with miniredis).
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the current Redis client instance.
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis client if one is connected.
func Close() {
	if client != nil {
		_ = client.Close()
	}
}

// Aside implements cache-aside: fill dest from cache on hit, otherwise run
// load (which must fill dest) and store the result. Cache failures fall
// through to the loader.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	if client != nil {
		raw, err := client.Get(ctx, key).Bytes()
		if err == nil {
			if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
				return nil
			}
			// Corrupt entry: drop it and reload.
			client.Del(ctx, key)
		}
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}
