package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tanakrit-dev/uninews-backend/internal/dto"
)

const (
	newsFeedKey = "news:feed"
	newsFeedTTL = 60 * time.Second
)

// RedisClient is a read-through cache for the public news feed. The
// portal works without it; callers must tolerate a nil *RedisClient.
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr, password string) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// GetNewsFeed returns the cached feed, or nil on miss or error.
func (r *RedisClient) GetNewsFeed(ctx context.Context) []dto.NewsRow {
	if r == nil {
		return nil
	}
	data, err := r.client.Get(ctx, newsFeedKey).Result()
	if err != nil {
		return nil
	}
	var rows []dto.NewsRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil
	}
	return rows
}

// SetNewsFeed caches the feed with a short TTL. Errors are dropped; the
// cache is best-effort.
func (r *RedisClient) SetNewsFeed(ctx context.Context, rows []dto.NewsRow) {
	if r == nil {
		return
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	r.client.Set(ctx, newsFeedKey, data, newsFeedTTL)
}

// InvalidateNewsFeed drops the cached feed after a write.
func (r *RedisClient) InvalidateNewsFeed(ctx context.Context) {
	if r == nil {
		return
	}
	r.client.Del(ctx, newsFeedKey)
}
