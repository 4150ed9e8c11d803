package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ManuelReschke/StudioSite/internal/pkg/env"
	"github.com/ManuelReschke/StudioSite/internal/pkg/logger"
)

var client *redis.Client

// SetupCache connects to the redis compatible cache server.
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.L().Warn("could not connect to cache", zap.String("addr", client.Options().Addr), zap.Error(err))
		return
	}
	logger.L().Info("connected to cache", zap.String("addr", client.Options().Addr))
}

// SetClient replaces the client, e.g. with one pointing at a test server.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return GetClient().Set(ctx, key, value, expiration).Err()
}

func Get(ctx context.Context, key string) (string, error) {
	return GetClient().Get(ctx, key).Result()
}

func GetInt(ctx context.Context, key string) (int, error) {
	return GetClient().Get(ctx, key).Int()
}

func Delete(ctx context.Context, key string) error {
	return GetClient().Del(ctx, key).Err()
}

// SetJSON stores v encoded as JSON.
func SetJSON(ctx context.Context, key string, v interface{}, expiration time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache value %s: %w", key, err)
	}
	return Set(ctx, key, data, expiration)
}

// GetJSON decodes the value stored under key into v. A missing key
// returns redis.Nil.
func GetJSON(ctx context.Context, key string, v interface{}) error {
	data, err := GetClient().Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode cache value %s: %w", key, err)
	}
	return nil
}
