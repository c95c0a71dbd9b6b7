package externalcalendar

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// RedisCache хранит окна в Redis в виде JSON с TTL.
// Ошибки Redis не пробрасываются: промах кэша просто ведет к запросу в провайдер.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisCache создает кэш. При ttl <= 0 кэш выключен.
func NewRedisCache(client *redis.Client, ttl time.Duration, prefix string) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, prefix: prefix}
}

// Get читает окна по ключу
func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.ExternalBusyWindow, bool) {
	if c.client == nil || c.ttl <= 0 {
		return nil, false
	}
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		return nil, false
	}
	var windows []domain.ExternalBusyWindow
	if err := json.Unmarshal([]byte(val), &windows); err != nil {
		return nil, false
	}
	return windows, true
}

// Set сохраняет окна по ключу
func (c *RedisCache) Set(ctx context.Context, key string, windows []domain.ExternalBusyWindow) {
	if c.client == nil || c.ttl <= 0 {
		return
	}
	if windows == nil {
		windows = []domain.ExternalBusyWindow{}
	}
	data, err := json.Marshal(windows)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.prefix+key, data, c.ttl).Err()
}
