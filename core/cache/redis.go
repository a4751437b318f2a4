package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shoot-calendar-api/core/config"
	"shoot-calendar-api/core/constants"
	"shoot-calendar-api/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error

	GetCalendarToken(ctx context.Context, token string) (string, bool, error)
	SetCalendarToken(ctx context.Context, token string, userID string, ttl time.Duration) error
	DeleteCalendarToken(ctx context.Context, token string) error

	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func InitRedis(cfg config.RedisConfig) (Cache, error) {
	logger.Info("Initializing redis...", "addr", cfg.Addr, "db", cfg.DB)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to ping redis", "error", err)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis initialized successfully", "addr", cfg.Addr)
	return NewCache(client), nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) GetCalendarToken(ctx context.Context, token string) (string, bool, error) {
	return c.Get(ctx, constants.RedisKeyCalendarToken+token)
}

func (c *redisCache) SetCalendarToken(ctx context.Context, token string, userID string, ttl time.Duration) error {
	return c.Set(ctx, constants.RedisKeyCalendarToken+token, userID, ttl)
}

func (c *redisCache) DeleteCalendarToken(ctx context.Context, token string) error {
	return c.Del(ctx, constants.RedisKeyCalendarToken+token)
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
